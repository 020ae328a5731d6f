// Package http provides the HTTP handler layer for the reservation API.
// It handles request parsing, validation, response formatting, and error mapping.
package http

import (
	"regexp"
	"strings"
	"time"

	"github.com/fastflight/fastflight-reservation-system/internal/domain"
	"github.com/fastflight/fastflight-reservation-system/internal/usecase"
)

// SearchFlightsRequest represents the request body for flight search.
type SearchFlightsRequest struct {
	// Origin is the departure city name (e.g., "Mumbai")
	Origin string `json:"origin"`

	// Destination is the arrival city name (e.g., "London")
	Destination string `json:"destination"`

	// TripType is One Way, Round Trip, or Multi-City (optional, default One Way)
	TripType string `json:"tripType,omitempty"`

	// DepartureDate is the desired departure date in YYYY-MM-DD format
	DepartureDate string `json:"departureDate"`

	// ReturnDate is the return date for round trips (optional)
	ReturnDate string `json:"returnDate,omitempty"`

	// Travelers is the number of travelers (1-9, default 1)
	Travelers int `json:"travelers,omitempty"`

	// Filters contains optional filtering criteria
	Filters *FilterDTO `json:"filters,omitempty"`

	// SortBy specifies how to sort results: relevance, price, duration
	SortBy string `json:"sortBy,omitempty"`
}

// FilterDTO represents optional filters for flight search.
// Example: {"maxPrice": 100000, "maxStops": 0, "airlines": ["Emirates"]}
type FilterDTO struct {
	// MaxPrice filters flights priced above this amount in INR
	MaxPrice *int `json:"maxPrice,omitempty" example:"100000"`

	// MaxStops filters flights with more stops than this value (0 = direct only)
	MaxStops *int `json:"maxStops,omitempty" example:"0"`

	// Airlines filters to only include flights from these airlines by name
	Airlines []string `json:"airlines,omitempty" example:"Emirates,Air India"`
}

// BookFlightRequest represents the request body for booking a flight.
type BookFlightRequest struct {
	// Flight is the flight to book, as returned by a search
	Flight domain.Flight `json:"flight"`

	// PassengerName is the passenger's full legal name
	PassengerName string `json:"passengerName"`

	// PaymentMethod is one of: Credit Card, UPI, Net Banking, Corporate
	PaymentMethod string `json:"paymentMethod"`
}

// CreateAlertRequest represents the request body for creating a price alert.
type CreateAlertRequest struct {
	// Origin and Destination are city names
	Origin      string `json:"origin"`
	Destination string `json:"destination"`

	// Date is the target travel date in YYYY-MM-DD format (optional)
	Date string `json:"date,omitempty"`

	// TargetPrice is the price ceiling in INR
	TargetPrice int `json:"targetPrice"`
}

// ChatRequest represents the request body for a concierge conversation.
// The full ordered history is sent on every call.
type ChatRequest struct {
	History []ChatTurnDTO `json:"history"`
}

// ChatTurnDTO is a single conversation turn.
type ChatTurnDTO struct {
	// Role is either user or model
	Role string `json:"role"`

	// Text is the turn's message
	Text string `json:"text"`
}

// UpdateProfileRequest represents the request body for updating the profile.
type UpdateProfileRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`

	// Tier is one of: Silver, Gold, Platinum
	Tier string `json:"tier"`
}

// datePattern matches YYYY-MM-DD date strings.
var datePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// Valid trip types keyed by the wire value.
var validTripTypes = map[string]bool{
	string(domain.TripOneWay):    true,
	string(domain.TripRoundTrip): true,
	string(domain.TripMultiCity): true,
	"":                           true, // Empty is valid (defaults to One Way)
}

// Valid sort options.
var validSortOptions = map[string]bool{
	"relevance": true,
	"price":     true,
	"duration":  true,
	"":          true, // Empty is valid (defaults to relevance)
}

// ValidationError represents a field-level validation error.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrors holds multiple validation errors.
type ValidationErrors struct {
	Errors []ValidationError `json:"errors"`
}

// Error implements the error interface.
func (v *ValidationErrors) Error() string {
	if len(v.Errors) == 0 {
		return "validation failed"
	}
	return v.Errors[0].Message
}

// Add adds a validation error.
func (v *ValidationErrors) Add(field, message string) {
	v.Errors = append(v.Errors, ValidationError{
		Field:   field,
		Message: message,
	})
}

// HasErrors returns true if there are validation errors.
func (v *ValidationErrors) HasErrors() bool {
	return len(v.Errors) > 0
}

// ToMap converts validation errors to a map for API response.
func (v *ValidationErrors) ToMap() map[string]string {
	result := make(map[string]string, len(v.Errors))
	for _, e := range v.Errors {
		result[e.Field] = e.Message
	}
	return result
}

// Validate validates the search request and returns any validation errors.
// The domain layer re-validates the converted criteria; this pass exists to
// report every bad field at once instead of failing on the first.
func (r *SearchFlightsRequest) Validate() error {
	errs := &ValidationErrors{}

	if strings.TrimSpace(r.Origin) == "" {
		errs.Add("origin", "origin is required")
	}
	if strings.TrimSpace(r.Destination) == "" {
		errs.Add("destination", "destination is required")
	}
	if r.Origin != "" && strings.EqualFold(strings.TrimSpace(r.Origin), strings.TrimSpace(r.Destination)) {
		errs.Add("destination", "origin and destination must be different")
	}

	r.validateDate("departureDate", r.DepartureDate, true, errs)
	r.validateDate("returnDate", r.ReturnDate, false, errs)

	if !validTripTypes[r.TripType] {
		errs.Add("tripType", "tripType must be one of: One Way, Round Trip, Multi-City")
	}

	if r.Travelers < 0 || r.Travelers > 9 {
		errs.Add("travelers", "travelers must be between 1 and 9")
	}

	if !validSortOptions[strings.ToLower(r.SortBy)] {
		errs.Add("sortBy", "sortBy must be one of: relevance, price, duration")
	}

	r.validateFilters(errs)

	if errs.HasErrors() {
		return errs
	}
	return nil
}

func (r *SearchFlightsRequest) validateDate(field, value string, required bool, errs *ValidationErrors) {
	if value == "" {
		if required {
			errs.Add(field, field+" is required")
		}
		return
	}

	if !datePattern.MatchString(value) {
		errs.Add(field, field+" must be in YYYY-MM-DD format")
		return
	}

	if _, err := time.Parse("2006-01-02", value); err != nil {
		errs.Add(field, field+" is not a valid date")
	}
}

func (r *SearchFlightsRequest) validateFilters(errs *ValidationErrors) {
	if r.Filters == nil {
		return
	}

	if r.Filters.MaxPrice != nil && *r.Filters.MaxPrice < 0 {
		errs.Add("filters.maxPrice", "maxPrice must be a positive number")
	}
	if r.Filters.MaxStops != nil && *r.Filters.MaxStops < 0 {
		errs.Add("filters.maxStops", "maxStops must be a non-negative number")
	}
	for _, airline := range r.Filters.Airlines {
		if strings.TrimSpace(airline) == "" {
			errs.Add("filters.airlines", "airline names must not be blank")
			break
		}
	}
}

// ToDomainCriteria converts a SearchFlightsRequest to domain.SearchCriteria.
func ToDomainCriteria(req *SearchFlightsRequest) domain.SearchCriteria {
	return domain.SearchCriteria{
		Origin:        strings.TrimSpace(req.Origin),
		Destination:   strings.TrimSpace(req.Destination),
		TripType:      domain.TripType(req.TripType),
		DepartureDate: req.DepartureDate,
		ReturnDate:    req.ReturnDate,
		Travelers:     req.Travelers,
	}
}

// ToSearchOptions converts request fields to usecase.SearchOptions.
func ToSearchOptions(req *SearchFlightsRequest) usecase.SearchOptions {
	opts := usecase.SearchOptions{
		SortBy: domain.ParseSortOption(strings.ToLower(req.SortBy)),
	}

	if req.Filters != nil {
		opts.Filters = &domain.FilterOptions{
			MaxPrice: req.Filters.MaxPrice,
			MaxStops: req.Filters.MaxStops,
			Airlines: req.Filters.Airlines,
		}
	}

	return opts
}

// ToDomainHistory converts the chat request to domain chat turns.
func ToDomainHistory(req *ChatRequest) []domain.ChatTurn {
	history := make([]domain.ChatTurn, len(req.History))
	for i, turn := range req.History {
		history[i] = domain.ChatTurn{
			Role: domain.ChatRole(turn.Role),
			Text: turn.Text,
		}
	}
	return history
}
