package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/generative-ai-go/genai"

	"github.com/fastflight/fastflight-reservation-system/internal/domain"
	"github.com/fastflight/fastflight-reservation-system/internal/infrastructure/logger"
)

// searchPromptTemplate asks the model for a curated premium result set.
// The schema attached to the model enforces the response shape; the prompt
// covers the semantics the schema cannot express.
const searchPromptTemplate = `Generate 5 realistic flight options from %s to %s departing on %s.
The user wants a %s trip for %d travelers.
Make them high-end and premium airlines.
For 'origin' and 'destination', provide only the City Name.
Additionally, provide the corresponding 3-letter airport codes in 'iataDepartureCode' and 'iataArrivalCode' (e.g., "BOM", "LHR").
Include a 'stops' field: 0 for direct flights, 1 or 2 for layovers.
Provide all prices in Indian Rupees (INR).
Include baggage details: 'baggageCabin' (e.g., "7 kg") and 'baggageChecked' (e.g., "25 kg").`

// SearchGateway produces flight options for a set of search criteria.
// It never fails: when the model misbehaves it serves FallbackFlights.
type SearchGateway struct {
	gen     generator
	timeout time.Duration
}

var _ domain.FlightSearcher = (*SearchGateway)(nil)

// Search asks the model for flights matching the criteria. The result is
// always non-empty and every flight in it passes domain validation.
func (g *SearchGateway) Search(ctx context.Context, criteria domain.SearchCriteria) []domain.Flight {
	ctx, cancel := callContext(ctx, g.timeout)
	defer cancel()

	prompt := fmt.Sprintf(searchPromptTemplate,
		criteria.Origin, criteria.Destination, criteria.DepartureDate,
		criteria.TripType, criteria.Travelers)

	resp, err := g.gen.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		logger.Warn().Err(err).
			Str("origin", criteria.Origin).
			Str("destination", criteria.Destination).
			Msg("flight search request failed, serving fallback")
		return FallbackFlights()
	}

	flights, err := parseFlights(responseText(resp))
	if err != nil {
		logger.Warn().Err(err).Msg("flight search response unusable, serving fallback")
		return FallbackFlights()
	}

	return flights
}

// parseFlights decodes and validates a JSON array of flights. A single bad
// flight poisons the whole response; degraded results come from the fallback,
// not from a partially trusted model answer.
func parseFlights(raw string) ([]domain.Flight, error) {
	if raw == "" {
		return nil, fmt.Errorf("empty response")
	}

	var flights []domain.Flight
	if err := json.Unmarshal([]byte(raw), &flights); err != nil {
		return nil, fmt.Errorf("decode flights: %w", err)
	}
	if len(flights) == 0 {
		return nil, fmt.Errorf("response contains no flights")
	}

	for i := range flights {
		if err := flights[i].Validate(); err != nil {
			return nil, fmt.Errorf("flight %d: %w", i, err)
		}
	}

	return flights, nil
}
