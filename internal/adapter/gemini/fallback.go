package gemini

import "github.com/fastflight/fastflight-reservation-system/internal/domain"

// apologyText is returned by the concierge whenever the model cannot be
// reached or answers with something unusable.
const apologyText = "I apologize, but I'm momentarily disconnected from our flight database. How else may I assist your travel plans?"

// FallbackFlight returns the canned flight served when live search is
// unavailable. Callers get a fresh copy each time.
func FallbackFlight() domain.Flight {
	return domain.Flight{
		ID:                "1",
		Airline:           "Air India",
		FlightNumber:      "AI-101",
		Origin:            "Mumbai",
		Destination:       "London",
		IATADepartureCode: "BOM",
		IATAArrivalCode:   "LHR",
		DepartureTime:     "10:00 AM",
		ArrivalTime:       "08:00 AM (+1)",
		Price:             85000,
		Class:             domain.ClassBusiness,
		Duration:          "10h 00m",
		Stops:             0,
		BaggageCabin:      "7 kg",
		BaggageChecked:    "30 kg",
	}
}

// FallbackFlights returns the degraded search result set.
func FallbackFlights() []domain.Flight {
	return []domain.Flight{FallbackFlight()}
}

// FallbackReply returns the degraded concierge answer.
func FallbackReply() domain.ChatReply {
	return domain.ChatReply{Text: apologyText}
}
