package domain

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// TripType is the journey shape requested by the user.
type TripType string

// Supported trip types.
const (
	TripOneWay    TripType = "One Way"
	TripRoundTrip TripType = "Round Trip"
	TripMultiCity TripType = "Multi-City"
)

// IsValid checks if the trip type is one of the supported values.
func (t TripType) IsValid() bool {
	switch t {
	case TripOneWay, TripRoundTrip, TripMultiCity:
		return true
	default:
		return false
	}
}

// SearchCriteria defines the parameters for a flight search request.
// Origin and destination are city names, not airport codes; the AI gateway
// resolves the corresponding IATA codes itself.
type SearchCriteria struct {
	// Origin is the departure city name (e.g., "Mumbai")
	Origin string `json:"origin"`

	// Destination is the arrival city name (e.g., "London")
	Destination string `json:"destination"`

	// TripType is the journey shape (default: One Way)
	TripType TripType `json:"tripType"`

	// DepartureDate is the desired departure date in YYYY-MM-DD format
	DepartureDate string `json:"departureDate"`

	// ReturnDate is the return date for round trips (optional)
	ReturnDate string `json:"returnDate,omitempty"`

	// Travelers is the number of travelers (default: 1)
	Travelers int `json:"travelers"`
}

// dateRegex matches dates in YYYY-MM-DD format.
var dateRegex = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// Validate checks if the search criteria is valid.
// Returns a wrapped ErrInvalidRequest error if validation fails.
func (s *SearchCriteria) Validate() error {
	if strings.TrimSpace(s.Origin) == "" {
		return fmt.Errorf("%w: origin is required", ErrInvalidRequest)
	}
	if strings.TrimSpace(s.Destination) == "" {
		return fmt.Errorf("%w: destination is required", ErrInvalidRequest)
	}
	if strings.EqualFold(strings.TrimSpace(s.Origin), strings.TrimSpace(s.Destination)) {
		return fmt.Errorf("%w: origin and destination must be different", ErrInvalidRequest)
	}

	if !s.TripType.IsValid() {
		return fmt.Errorf("%w: tripType must be one of: One Way, Round Trip, Multi-City; got %q", ErrInvalidRequest, s.TripType)
	}

	if s.DepartureDate != "" {
		if !dateRegex.MatchString(s.DepartureDate) {
			return fmt.Errorf("%w: departureDate must be in YYYY-MM-DD format, got %q", ErrInvalidRequest, s.DepartureDate)
		}
		if _, err := time.Parse("2006-01-02", s.DepartureDate); err != nil {
			return fmt.Errorf("%w: departureDate is not a valid date: %s", ErrInvalidRequest, s.DepartureDate)
		}
	}

	if s.ReturnDate != "" {
		if !dateRegex.MatchString(s.ReturnDate) {
			return fmt.Errorf("%w: returnDate must be in YYYY-MM-DD format, got %q", ErrInvalidRequest, s.ReturnDate)
		}
		if _, err := time.Parse("2006-01-02", s.ReturnDate); err != nil {
			return fmt.Errorf("%w: returnDate is not a valid date: %s", ErrInvalidRequest, s.ReturnDate)
		}
	}

	if s.Travelers < 1 {
		return fmt.Errorf("%w: travelers must be at least 1", ErrInvalidRequest)
	}
	if s.Travelers > 9 {
		return fmt.Errorf("%w: travelers cannot exceed 9", ErrInvalidRequest)
	}

	return nil
}

// SetDefaults applies default values to empty optional fields.
func (s *SearchCriteria) SetDefaults() {
	if s.TripType == "" {
		s.TripType = TripOneWay
	}
	if s.Travelers == 0 {
		s.Travelers = 1
	}
}
