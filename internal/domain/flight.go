// Package domain contains the core business entities and rules for the reservation system.
// These entities are gateway-agnostic and form the foundation upon which all other components are built.
package domain

import (
	"fmt"
	"regexp"
)

// ServiceClass is the cabin class of a flight.
type ServiceClass string

// Supported service classes.
const (
	ClassEconomy  ServiceClass = "Economy"
	ClassBusiness ServiceClass = "Business"
	ClassFirst    ServiceClass = "First"
)

// IsValid checks if the service class is one of the supported values.
func (c ServiceClass) IsValid() bool {
	switch c {
	case ClassEconomy, ClassBusiness, ClassFirst:
		return true
	default:
		return false
	}
}

// MaxStops is the largest stop count the flight schema permits.
// 0 means a direct flight; the AI gateway constrains results to at most 2 layovers.
const MaxStops = 2

// Flight represents a single flight offering produced by an AI gateway.
// It is an immutable value object: once created it is never mutated, and
// bookings embed a snapshot of it. The JSON field names are the wire contract
// shared with the AI response schema.
type Flight struct {
	// ID is unique within a single result set
	ID string `json:"id"`

	// Airline is the full airline name (e.g., "Air India")
	Airline string `json:"airline"`

	// FlightNumber is the airline's flight number (e.g., "AI-101")
	FlightNumber string `json:"flightNumber"`

	// Origin and Destination are city names only, never airport codes
	Origin      string `json:"origin"`
	Destination string `json:"destination"`

	// IATADepartureCode and IATAArrivalCode are 3-letter airport codes
	IATADepartureCode string `json:"iataDepartureCode"`
	IATAArrivalCode   string `json:"iataArrivalCode"`

	// DepartureTime and ArrivalTime are display strings (e.g., "10:00 AM")
	DepartureTime string `json:"departureTime"`
	ArrivalTime   string `json:"arrivalTime"`

	// Price is the fare in Indian Rupees
	Price int `json:"price"`

	// Class is the cabin class
	Class ServiceClass `json:"class"`

	// Duration is a human-readable duration string (e.g., "10h 00m")
	Duration string `json:"duration"`

	// Stops is the number of layovers (0 = direct)
	Stops int `json:"stops"`

	// BaggageCabin and BaggageChecked are allowance strings (e.g., "7 kg")
	BaggageCabin   string `json:"baggageCabin"`
	BaggageChecked string `json:"baggageChecked"`
}

// iataCodeRegex matches valid IATA airport codes (3 uppercase letters).
var iataCodeRegex = regexp.MustCompile(`^[A-Z]{3}$`)

// Validate checks that a flight satisfies the wire schema contract.
// The AI gateways run this on every decoded flight so that non-conforming
// responses are rejected instead of trusted.
func (f *Flight) Validate() error {
	required := map[string]string{
		"id":             f.ID,
		"airline":        f.Airline,
		"flightNumber":   f.FlightNumber,
		"origin":         f.Origin,
		"destination":    f.Destination,
		"departureTime":  f.DepartureTime,
		"arrivalTime":    f.ArrivalTime,
		"duration":       f.Duration,
		"baggageCabin":   f.BaggageCabin,
		"baggageChecked": f.BaggageChecked,
	}
	for field, value := range required {
		if value == "" {
			return fmt.Errorf("%w: flight %s is required", ErrInvalidRequest, field)
		}
	}

	if !iataCodeRegex.MatchString(f.IATADepartureCode) {
		return fmt.Errorf("%w: iataDepartureCode must be a 3-letter IATA code, got %q", ErrInvalidRequest, f.IATADepartureCode)
	}
	if !iataCodeRegex.MatchString(f.IATAArrivalCode) {
		return fmt.Errorf("%w: iataArrivalCode must be a 3-letter IATA code, got %q", ErrInvalidRequest, f.IATAArrivalCode)
	}

	if f.Price <= 0 {
		return fmt.Errorf("%w: price must be positive, got %d", ErrInvalidRequest, f.Price)
	}

	if !f.Class.IsValid() {
		return fmt.Errorf("%w: class must be one of: Economy, Business, First; got %q", ErrInvalidRequest, f.Class)
	}

	if f.Stops < 0 || f.Stops > MaxStops {
		return fmt.Errorf("%w: stops must be between 0 and %d, got %d", ErrInvalidRequest, MaxStops, f.Stops)
	}

	return nil
}
