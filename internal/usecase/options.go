// Package usecase contains the application services of the reservation
// system: flight search with filtering and sorting, bookings, price alerts,
// concierge chat, and the traveler profile. Each use case orchestrates the
// domain entities, the AI gateways, and the reservation repository.
package usecase

import "github.com/fastflight/fastflight-reservation-system/internal/domain"

// SearchOptions contains optional parameters for a flight search.
type SearchOptions struct {
	// Filters contains optional filtering criteria to apply to results
	Filters *domain.FilterOptions

	// SortBy specifies how to sort the results (default: relevance)
	SortBy domain.SortOption
}

// DefaultSearchOptions returns SearchOptions with sensible defaults.
func DefaultSearchOptions() SearchOptions {
	return SearchOptions{
		Filters: nil,
		SortBy:  domain.SortByRelevance,
	}
}
