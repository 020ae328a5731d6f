// Package mock provides test doubles for the reservation system.
// These mocks are designed for integration testing where we need
// configurable behavior (canned results, call tracking).
package mock

import (
	"context"
	"fmt"
	"sync"

	"github.com/fastflight/fastflight-reservation-system/internal/domain"
)

// Searcher is a configurable mock implementation of domain.FlightSearcher.
// It is configured using the builder pattern methods and is safe for
// concurrent use.
type Searcher struct {
	mu        sync.Mutex
	flights   []domain.Flight
	callCount int
	lastSeen  domain.SearchCriteria
}

// NewSearcher creates a new mock searcher.
func NewSearcher() *Searcher {
	return &Searcher{}
}

// WithFlights configures the searcher to return the given flights.
func (s *Searcher) WithFlights(flights []domain.Flight) *Searcher {
	s.flights = flights
	return s
}

// Search implements domain.FlightSearcher.Search.
func (s *Searcher) Search(_ context.Context, criteria domain.SearchCriteria) []domain.Flight {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.callCount++
	s.lastSeen = criteria
	return s.flights
}

// CallCount returns the number of times Search was called.
func (s *Searcher) CallCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.callCount
}

// LastCriteria returns the criteria from the most recent Search call.
func (s *Searcher) LastCriteria() domain.SearchCriteria {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastSeen
}

var _ domain.FlightSearcher = (*Searcher)(nil)

// Concierge is a configurable mock implementation of domain.Concierge.
type Concierge struct {
	mu        sync.Mutex
	reply     domain.ChatReply
	callCount int
	lastSeen  []domain.ChatTurn
}

// NewConcierge creates a new mock concierge.
func NewConcierge() *Concierge {
	return &Concierge{reply: domain.ChatReply{Text: "How may I assist?"}}
}

// WithReply configures the concierge to return the given reply.
func (c *Concierge) WithReply(reply domain.ChatReply) *Concierge {
	c.reply = reply
	return c
}

// Chat implements domain.Concierge.Chat.
func (c *Concierge) Chat(_ context.Context, history []domain.ChatTurn) domain.ChatReply {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.callCount++
	c.lastSeen = history
	return c.reply
}

// CallCount returns the number of times Chat was called.
func (c *Concierge) CallCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.callCount
}

// LastHistory returns the history from the most recent Chat call.
func (c *Concierge) LastHistory() []domain.ChatTurn {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastSeen
}

var _ domain.Concierge = (*Concierge)(nil)

// SampleFlights returns a slice of sample flights for testing.
// The flights share a route and carry ascending prices so tests can make
// deterministic assertions about filtering, sorting, and alerts.
func SampleFlights(count int) []domain.Flight {
	flights := make([]domain.Flight, count)
	for i := 0; i < count; i++ {
		flights[i] = domain.Flight{
			ID:                fmt.Sprintf("flight-%d", i+1),
			Airline:           "Vistara",
			FlightNumber:      fmt.Sprintf("UK-%d", 900+i),
			Origin:            "Mumbai",
			Destination:       "London",
			IATADepartureCode: "BOM",
			IATAArrivalCode:   "LHR",
			DepartureTime:     "10:00 AM",
			ArrivalTime:       "08:00 PM",
			Price:             60000 + i*10000,
			Class:             domain.ClassBusiness,
			Duration:          fmt.Sprintf("%dh 30m", 9+i),
			Stops:             i % 3,
			BaggageCabin:      "7 kg",
			BaggageChecked:    "30 kg",
		}
	}
	return flights
}
