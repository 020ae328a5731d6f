package usecase

import (
	"context"
	"regexp"
	"sort"
	"strconv"
	"time"

	"github.com/fastflight/fastflight-reservation-system/internal/domain"
	"github.com/fastflight/fastflight-reservation-system/internal/repository"
)

// FlightSearchUseCase defines the interface for flight search operations.
type FlightSearchUseCase interface {
	// Search queries the AI gateway, reconciles price alerts against the
	// full result set, then applies filters and sorting.
	Search(ctx context.Context, criteria domain.SearchCriteria, opts SearchOptions) (*SearchResult, error)
}

// SearchResult is the outcome of a flight search.
type SearchResult struct {
	// Criteria echoes the normalized criteria the search ran with
	Criteria domain.SearchCriteria `json:"criteria"`

	// Flights is the filtered, sorted result set
	Flights []domain.Flight `json:"flights"`

	// AlertsTriggered reports whether this search fired any price alert
	AlertsTriggered bool `json:"alertsTriggered"`

	// SearchTimeMs is the end-to-end search duration in milliseconds
	SearchTimeMs int64 `json:"searchTimeMs"`
}

type flightSearchUseCase struct {
	searcher domain.FlightSearcher
	repo     *repository.Repository
}

// NewFlightSearchUseCase creates a FlightSearchUseCase backed by the given
// gateway and reservation repository.
func NewFlightSearchUseCase(searcher domain.FlightSearcher, repo *repository.Repository) FlightSearchUseCase {
	return &flightSearchUseCase{searcher: searcher, repo: repo}
}

// Search implements FlightSearchUseCase.Search.
//
// Alert reconciliation runs against the unfiltered result set: a flight that
// satisfies an alert still fires it even when the traveler's filters would
// hide it from the response.
func (uc *flightSearchUseCase) Search(ctx context.Context, criteria domain.SearchCriteria, opts SearchOptions) (*SearchResult, error) {
	startTime := time.Now()

	criteria.SetDefaults()
	if err := criteria.Validate(); err != nil {
		return nil, err
	}

	flights := uc.searcher.Search(ctx, criteria)

	triggered := uc.repo.UpdateAlerts(flights)

	filtered := applyFilters(flights, opts.Filters)
	sorted := sortFlights(filtered, opts.SortBy)

	return &SearchResult{
		Criteria:        criteria,
		Flights:         sorted,
		AlertsTriggered: triggered,
		SearchTimeMs:    time.Since(startTime).Milliseconds(),
	}, nil
}

// applyFilters applies filter options to the flight list.
func applyFilters(flights []domain.Flight, opts *domain.FilterOptions) []domain.Flight {
	if opts == nil {
		return flights
	}

	result := make([]domain.Flight, 0, len(flights))
	for _, f := range flights {
		if opts.MatchesFlight(f) {
			result = append(result, f)
		}
	}
	return result
}

// sortFlights sorts flights according to the sort option. Relevance keeps
// the gateway's order. Sorting is stable so equal values preserve it too.
// Does not mutate the input slice.
func sortFlights(flights []domain.Flight, sortBy domain.SortOption) []domain.Flight {
	if len(flights) <= 1 || !sortBy.IsValid() || sortBy == domain.SortByRelevance {
		return flights
	}

	result := make([]domain.Flight, len(flights))
	copy(result, flights)

	switch sortBy {
	case domain.SortByPrice:
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].Price < result[j].Price
		})
	case domain.SortByDuration:
		sort.SliceStable(result, func(i, j int) bool {
			return durationMinutes(result[i].Duration) < durationMinutes(result[j].Duration)
		})
	}

	return result
}

// durationRegex extracts hours and optional minutes from display strings
// like "10h 00m" or "2h".
var durationRegex = regexp.MustCompile(`^(\d+)h(?:\s*(\d+)m)?$`)

// durationMinutes converts a display duration to total minutes for sorting.
// Unparseable strings sort last.
func durationMinutes(s string) int {
	m := durationRegex.FindStringSubmatch(s)
	if m == nil {
		return int(^uint(0) >> 1)
	}
	hours, _ := strconv.Atoi(m[1])
	minutes := 0
	if m[2] != "" {
		minutes, _ = strconv.Atoi(m[2])
	}
	return hours*60 + minutes
}
