package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func intPtr(i int) *int { return &i }

func TestFilterOptionsMatchesFlight(t *testing.T) {
	flight := Flight{
		Airline: "Air India",
		Price:   85000,
		Stops:   1,
	}

	tests := []struct {
		name    string
		filters *FilterOptions
		want    bool
	}{
		{
			name:    "nil filters match everything",
			filters: nil,
			want:    true,
		},
		{
			name:    "empty filters match everything",
			filters: &FilterOptions{},
			want:    true,
		},
		{
			name:    "price at the ceiling",
			filters: &FilterOptions{MaxPrice: intPtr(85000)},
			want:    true,
		},
		{
			name:    "price above the ceiling",
			filters: &FilterOptions{MaxPrice: intPtr(84999)},
			want:    false,
		},
		{
			name:    "stops within limit",
			filters: &FilterOptions{MaxStops: intPtr(1)},
			want:    true,
		},
		{
			name:    "direct only rejects one stop",
			filters: &FilterOptions{MaxStops: intPtr(0)},
			want:    false,
		},
		{
			name:    "airline match is case-insensitive",
			filters: &FilterOptions{Airlines: []string{"air india"}},
			want:    true,
		},
		{
			name:    "airline not in list",
			filters: &FilterOptions{Airlines: []string{"Emirates", "Singapore Airlines"}},
			want:    false,
		},
		{
			name: "all filters combined",
			filters: &FilterOptions{
				MaxPrice: intPtr(90000),
				MaxStops: intPtr(2),
				Airlines: []string{"Air India"},
			},
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.filters.MatchesFlight(flight))
		})
	}
}

func TestParseSortOption(t *testing.T) {
	assert.Equal(t, SortByPrice, ParseSortOption("price"))
	assert.Equal(t, SortByDuration, ParseSortOption("duration"))
	assert.Equal(t, SortByRelevance, ParseSortOption("relevance"))
	assert.Equal(t, SortByRelevance, ParseSortOption(""))
	assert.Equal(t, SortByRelevance, ParseSortOption("cheapest"))
}

func TestPriceAlertMatches(t *testing.T) {
	alert := PriceAlert{Origin: "Mumbai", Destination: "London", TargetPrice: 85000}

	assert.True(t, alert.Matches(Flight{Origin: "mumbai", Destination: "LONDON", Price: 85000}))
	assert.True(t, alert.Matches(Flight{Origin: "Mumbai", Destination: "London", Price: 60000}))
	assert.False(t, alert.Matches(Flight{Origin: "Mumbai", Destination: "London", Price: 85001}))
	assert.False(t, alert.Matches(Flight{Origin: "Delhi", Destination: "London", Price: 50000}))
	assert.False(t, alert.Matches(Flight{Origin: "Mumbai", Destination: "Paris", Price: 50000}))
}
