package repository

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fastflight/fastflight-reservation-system/internal/domain"
)

// failingStore simulates a store whose reads or writes fail.
type failingStore struct {
	loadErr error
	saveErr error
}

func (s *failingStore) Load() ([]byte, error) { return nil, s.loadErr }
func (s *failingStore) Save([]byte) error     { return s.saveErr }

func testFlight(id string, origin, destination string, price int) domain.Flight {
	return domain.Flight{
		ID:                id,
		Airline:           "Air India",
		FlightNumber:      "AI-" + id,
		Origin:            origin,
		Destination:       destination,
		IATADepartureCode: "BOM",
		IATAArrivalCode:   "LHR",
		DepartureTime:     "10:00 AM",
		ArrivalTime:       "08:00 AM (+1)",
		Price:             price,
		Class:             domain.ClassBusiness,
		Duration:          "10h 00m",
		Stops:             0,
		BaggageCabin:      "7 kg",
		BaggageChecked:    "30 kg",
	}
}

func testBooking(id string) domain.Booking {
	return domain.Booking{
		ID:            id,
		Flight:        testFlight("1", "Mumbai", "London", 85000),
		PassengerName: "Asha Verma",
		SeatNumber:    "12C",
		Status:        domain.StatusConfirmed,
		PaymentMethod: domain.PaymentUPI,
		BookingDate:   1756300000000,
	}
}

func TestBookingsInsertionOrderAndReload(t *testing.T) {
	store := NewMemoryStore()
	repo := New(store)

	ids := []string{"FF-AAA111", "FF-BBB222", "FF-CCC333"}
	for _, id := range ids {
		repo.AddBooking(testBooking(id))
	}

	got := repo.Bookings()
	require.Len(t, got, 3)
	for i, id := range ids {
		assert.Equal(t, id, got[i].ID)
	}

	// A fresh repository over the same store sees the identical sequence.
	reloaded := New(store)
	got = reloaded.Bookings()
	require.Len(t, got, 3)
	for i, id := range ids {
		assert.Equal(t, id, got[i].ID)
	}
}

func TestBookingsReturnsCopy(t *testing.T) {
	repo := New(NewMemoryStore())
	repo.AddBooking(testBooking("FF-AAA111"))

	got := repo.Bookings()
	got[0].PassengerName = "tampered"

	assert.Equal(t, "Asha Verma", repo.Bookings()[0].PassengerName)
}

func TestDocumentRoundTripIsLossless(t *testing.T) {
	store := NewMemoryStore()
	repo := New(store)

	booking := testBooking("FF-AAA111")
	repo.AddBooking(booking)
	repo.AddAlert(domain.PriceAlert{
		ID:          "alert-1",
		Origin:      "Mumbai",
		Destination: "London",
		Date:        "2026-09-15",
		TargetPrice: 90000,
		CreatedAt:   1756300000000,
	})
	repo.SetProfile(domain.UserProfile{Name: "Asha Verma", Email: "asha@example.com", Tier: domain.TierGold})

	raw, err := store.Load()
	require.NoError(t, err)

	var doc Document
	require.NoError(t, json.Unmarshal(raw, &doc))

	require.Len(t, doc.Bookings, 1)
	assert.Equal(t, booking, doc.Bookings[0])
	require.Len(t, doc.Alerts, 1)
	assert.Equal(t, "alert-1", doc.Alerts[0].ID)
	assert.Equal(t, domain.TierGold, doc.User.Tier)
}

func TestCancelBooking(t *testing.T) {
	repo := New(NewMemoryStore())
	original := testBooking("FF-AAA111")
	repo.AddBooking(original)
	repo.AddBooking(testBooking("FF-BBB222"))

	cancelled, found := repo.CancelBooking("FF-AAA111")
	require.True(t, found)
	assert.Equal(t, domain.StatusCancelled, cancelled.Status)

	// Only the status field changed on the matching booking.
	got := repo.Bookings()
	want := original
	want.Status = domain.StatusCancelled
	assert.Equal(t, want, got[0])

	// The other booking is untouched.
	assert.Equal(t, domain.StatusConfirmed, got[1].Status)
}

func TestCancelBookingUnknownIDIsNoOp(t *testing.T) {
	store := NewMemoryStore()
	repo := New(store)
	repo.AddBooking(testBooking("FF-AAA111"))
	savesBefore := store.SaveCount()

	_, found := repo.CancelBooking("FF-ZZZ999")

	assert.False(t, found)
	assert.Equal(t, domain.StatusConfirmed, repo.Bookings()[0].Status)
	assert.Equal(t, savesBefore, store.SaveCount(), "no-op cancel must not persist")
}

func TestAlertsCreateListRemove(t *testing.T) {
	repo := New(NewMemoryStore())
	repo.AddAlert(domain.PriceAlert{ID: "a1", Origin: "Mumbai", Destination: "London", TargetPrice: 90000})
	repo.AddAlert(domain.PriceAlert{ID: "a2", Origin: "Delhi", Destination: "Tokyo", TargetPrice: 60000})

	alerts := repo.Alerts()
	require.Len(t, alerts, 2)
	assert.Equal(t, "a1", alerts[0].ID)
	assert.Equal(t, "a2", alerts[1].ID)

	assert.True(t, repo.RemoveAlert("a1"))
	assert.False(t, repo.RemoveAlert("a1"))

	alerts = repo.Alerts()
	require.Len(t, alerts, 1)
	assert.Equal(t, "a2", alerts[0].ID)
}

func TestUpdateAlerts(t *testing.T) {
	tests := []struct {
		name        string
		alert       domain.PriceAlert
		flights     []domain.Flight
		wantChanged bool
		wantPrice   *int
	}{
		{
			name:        "match at exactly the target price",
			alert:       domain.PriceAlert{ID: "a1", Origin: "Mumbai", Destination: "London", TargetPrice: 85000},
			flights:     []domain.Flight{testFlight("1", "Mumbai", "London", 85000)},
			wantChanged: true,
			wantPrice:   intPtr(85000),
		},
		{
			name:        "match below the target price",
			alert:       domain.PriceAlert{ID: "a1", Origin: "Mumbai", Destination: "London", TargetPrice: 85000},
			flights:     []domain.Flight{testFlight("1", "mumbai", "LONDON", 70000)},
			wantChanged: true,
			wantPrice:   intPtr(70000),
		},
		{
			name:        "price above the target",
			alert:       domain.PriceAlert{ID: "a1", Origin: "Mumbai", Destination: "London", TargetPrice: 85000},
			flights:     []domain.Flight{testFlight("1", "Mumbai", "London", 85001)},
			wantChanged: false,
		},
		{
			name:        "route does not match",
			alert:       domain.PriceAlert{ID: "a1", Origin: "Mumbai", Destination: "Paris", TargetPrice: 85000},
			flights:     []domain.Flight{testFlight("1", "Mumbai", "London", 50000)},
			wantChanged: false,
		},
		{
			name:  "first matching flight wins over a cheaper later one",
			alert: domain.PriceAlert{ID: "a1", Origin: "Mumbai", Destination: "London", TargetPrice: 85000},
			flights: []domain.Flight{
				testFlight("1", "Mumbai", "London", 80000),
				testFlight("2", "Mumbai", "London", 60000),
			},
			wantChanged: true,
			wantPrice:   intPtr(80000),
		},
		{
			name: "already triggered alert is never re-evaluated",
			alert: domain.PriceAlert{
				ID: "a1", Origin: "Mumbai", Destination: "London",
				TargetPrice: 85000, IsTriggered: true, CurrentPrice: intPtr(80000),
			},
			flights:     []domain.Flight{testFlight("1", "Mumbai", "London", 50000)},
			wantChanged: false,
			wantPrice:   intPtr(80000),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := NewMemoryStore()
			repo := New(store)
			repo.AddAlert(tt.alert)
			savesBefore := store.SaveCount()

			changed := repo.UpdateAlerts(tt.flights)

			assert.Equal(t, tt.wantChanged, changed)
			got := repo.Alerts()[0]
			if tt.wantPrice != nil {
				require.NotNil(t, got.CurrentPrice)
				assert.Equal(t, *tt.wantPrice, *got.CurrentPrice)
			}
			if tt.wantChanged {
				assert.True(t, got.IsTriggered)
				assert.Greater(t, store.SaveCount(), savesBefore)
			} else {
				assert.Equal(t, savesBefore, store.SaveCount(), "unchanged evaluation must not persist")
			}
		})
	}
}

func intPtr(i int) *int { return &i }

func TestNewFallsBackOnCorruptDocument(t *testing.T) {
	store := NewMemoryStoreWith([]byte(`{"bookings": [truncated`))

	repo := New(store)

	assert.Empty(t, repo.Bookings())
	assert.Empty(t, repo.Alerts())
	assert.Equal(t, domain.DefaultUserProfile(), repo.Profile())
}

func TestNewFallsBackOnLoadError(t *testing.T) {
	repo := New(&failingStore{loadErr: errors.New("disk on fire")})

	assert.Empty(t, repo.Bookings())
	assert.Equal(t, domain.DefaultUserProfile(), repo.Profile())
}

func TestMutationsSurviveSaveFailure(t *testing.T) {
	repo := New(&failingStore{saveErr: errors.New("disk full")})

	repo.AddBooking(testBooking("FF-AAA111"))

	// The in-memory state stays authoritative even when persistence fails.
	assert.Len(t, repo.Bookings(), 1)
}

func TestProfileDefaultsAppliedWhenAbsent(t *testing.T) {
	// A legacy document without a user field still yields the default profile.
	store := NewMemoryStoreWith([]byte(`{"bookings":[],"alerts":[]}`))

	repo := New(store)

	assert.Equal(t, domain.DefaultUserProfile(), repo.Profile())
}

func TestSingletonReturnsSameInstance(t *testing.T) {
	ResetInstance()
	t.Cleanup(ResetInstance)

	store := NewMemoryStore()
	first := Instance(store)
	second := Instance(store)

	require.Same(t, first, second)

	// Mutations through one reference are observed through the other.
	first.AddBooking(testBooking("FF-AAA111"))
	assert.Len(t, second.Bookings(), 1)
}

func TestResetInstance(t *testing.T) {
	ResetInstance()
	t.Cleanup(ResetInstance)

	first := Instance(NewMemoryStore())
	first.AddBooking(testBooking("FF-AAA111"))

	ResetInstance()
	second := Instance(NewMemoryStore())

	assert.NotSame(t, first, second)
	assert.Empty(t, second.Bookings())
}
