package http

import (
	"github.com/fastflight/fastflight-reservation-system/internal/domain"
	"github.com/fastflight/fastflight-reservation-system/internal/fare"
	"github.com/fastflight/fastflight-reservation-system/internal/usecase"
)

// FlightDTO is the data transfer object for flight responses. It carries the
// raw price alongside a display string formatted with Indian digit grouping.
type FlightDTO struct {
	ID                string `json:"id"`
	Airline           string `json:"airline"`
	FlightNumber      string `json:"flightNumber"`
	Origin            string `json:"origin"`
	Destination       string `json:"destination"`
	IATADepartureCode string `json:"iataDepartureCode"`
	IATAArrivalCode   string `json:"iataArrivalCode"`
	DepartureTime     string `json:"departureTime"`
	ArrivalTime       string `json:"arrivalTime"`
	Price             int    `json:"price"`
	PriceFormatted    string `json:"priceFormatted"`
	Class             string `json:"class"`
	Duration          string `json:"duration"`
	Stops             int    `json:"stops"`
	BaggageCabin      string `json:"baggageCabin"`
	BaggageChecked    string `json:"baggageChecked"`
}

// SearchResponseDTO is the data transfer object for search responses.
type SearchResponseDTO struct {
	Criteria        domain.SearchCriteria `json:"criteria"`
	Flights         []FlightDTO           `json:"flights"`
	TotalResults    int                   `json:"totalResults"`
	AlertsTriggered bool                  `json:"alertsTriggered"`
	SearchTimeMs    int64                 `json:"searchTimeMs"`
}

// BookingDTO is the data transfer object for booking responses.
type BookingDTO struct {
	ID             string    `json:"id"`
	Flight         FlightDTO `json:"flight"`
	PassengerName  string    `json:"passengerName"`
	SeatNumber     string    `json:"seatNumber"`
	Status         string    `json:"status"`
	PaymentMethod  string    `json:"paymentMethod"`
	BookingDate    int64     `json:"bookingDate"`
}

// ChatReplyDTO is the data transfer object for concierge replies.
type ChatReplyDTO struct {
	Text             string      `json:"text"`
	SuggestedFlights []FlightDTO `json:"suggestedFlights,omitempty"`
}

// AlertListDTO wraps the alert collection.
type AlertListDTO struct {
	Alerts []domain.PriceAlert `json:"alerts"`
}

// BookingListDTO wraps the booking collection.
type BookingListDTO struct {
	Bookings []BookingDTO `json:"bookings"`
}

// ToFlightDTO converts a domain Flight to a FlightDTO.
func ToFlightDTO(f domain.Flight) FlightDTO {
	return FlightDTO{
		ID:                f.ID,
		Airline:           f.Airline,
		FlightNumber:      f.FlightNumber,
		Origin:            f.Origin,
		Destination:       f.Destination,
		IATADepartureCode: f.IATADepartureCode,
		IATAArrivalCode:   f.IATAArrivalCode,
		DepartureTime:     f.DepartureTime,
		ArrivalTime:       f.ArrivalTime,
		Price:             f.Price,
		PriceFormatted:    fare.FormatINR(f.Price),
		Class:             string(f.Class),
		Duration:          f.Duration,
		Stops:             f.Stops,
		BaggageCabin:      f.BaggageCabin,
		BaggageChecked:    f.BaggageChecked,
	}
}

// ToFlightDTOs converts a slice of domain flights.
func ToFlightDTOs(flights []domain.Flight) []FlightDTO {
	dtos := make([]FlightDTO, len(flights))
	for i, f := range flights {
		dtos[i] = ToFlightDTO(f)
	}
	return dtos
}

// ToSearchResponseDTO converts a usecase search result.
func ToSearchResponseDTO(result *usecase.SearchResult) *SearchResponseDTO {
	if result == nil {
		return nil
	}
	return &SearchResponseDTO{
		Criteria:        result.Criteria,
		Flights:         ToFlightDTOs(result.Flights),
		TotalResults:    len(result.Flights),
		AlertsTriggered: result.AlertsTriggered,
		SearchTimeMs:    result.SearchTimeMs,
	}
}

// ToBookingDTO converts a domain Booking to a BookingDTO.
func ToBookingDTO(b domain.Booking) BookingDTO {
	return BookingDTO{
		ID:            b.ID,
		Flight:        ToFlightDTO(b.Flight),
		PassengerName: b.PassengerName,
		SeatNumber:    b.SeatNumber,
		Status:        string(b.Status),
		PaymentMethod: string(b.PaymentMethod),
		BookingDate:   b.BookingDate,
	}
}

// ToBookingListDTO converts a slice of domain bookings.
func ToBookingListDTO(bookings []domain.Booking) *BookingListDTO {
	dtos := make([]BookingDTO, len(bookings))
	for i, b := range bookings {
		dtos[i] = ToBookingDTO(b)
	}
	return &BookingListDTO{Bookings: dtos}
}

// ToChatReplyDTO converts a domain chat reply.
func ToChatReplyDTO(reply domain.ChatReply) *ChatReplyDTO {
	dto := &ChatReplyDTO{Text: reply.Text}
	if len(reply.SuggestedFlights) > 0 {
		dto.SuggestedFlights = ToFlightDTOs(reply.SuggestedFlights)
	}
	return dto
}
