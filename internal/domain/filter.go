package domain

import "strings"

// SortOption defines the available orderings for flight results.
type SortOption string

// Available sort options.
const (
	// SortByRelevance keeps the order the gateway returned (default)
	SortByRelevance SortOption = "relevance"

	// SortByPrice sorts by price ascending (cheapest first)
	SortByPrice SortOption = "price"

	// SortByDuration sorts by flight duration ascending (shortest first)
	SortByDuration SortOption = "duration"
)

// IsValid checks if the sort option is a valid value.
func (s SortOption) IsValid() bool {
	switch s {
	case SortByRelevance, SortByPrice, SortByDuration:
		return true
	default:
		return false
	}
}

// ParseSortOption converts a string to a SortOption.
// Returns SortByRelevance if the string is empty or invalid.
func ParseSortOption(s string) SortOption {
	option := SortOption(s)
	if option.IsValid() {
		return option
	}
	return SortByRelevance
}

// FilterOptions defines optional filters to apply to flight results.
type FilterOptions struct {
	// MaxPrice filters out flights priced above this amount in INR
	MaxPrice *int `json:"maxPrice,omitempty"`

	// MaxStops filters out flights with more stops than this value
	// 0 = direct flights only, 1 = max 1 stop, etc.
	MaxStops *int `json:"maxStops,omitempty"`

	// Airlines filters to only include flights from these airlines,
	// matched case-insensitively by name. Empty means no airline filter.
	Airlines []string `json:"airlines,omitempty"`
}

// MatchesFlight checks if a flight passes all the filter criteria.
func (f *FilterOptions) MatchesFlight(flight Flight) bool {
	if f == nil {
		return true
	}

	if f.MaxPrice != nil && flight.Price > *f.MaxPrice {
		return false
	}

	if f.MaxStops != nil && flight.Stops > *f.MaxStops {
		return false
	}

	if len(f.Airlines) > 0 {
		found := false
		for _, airline := range f.Airlines {
			if strings.EqualFold(airline, flight.Airline) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}

	return true
}
