package repository

import (
	"encoding/json"
	"sync"

	"github.com/fastflight/fastflight-reservation-system/internal/domain"
	"github.com/fastflight/fastflight-reservation-system/internal/infrastructure/logger"
)

// Repository is the single source of truth for bookings, alerts, and the
// user profile. Every mutating operation synchronously serializes the whole
// document and writes it to the store before returning; there is no partial
// or incremental persistence. A crash between mutation and persistence loses
// that single mutation only.
//
// The original design served one logical caller at a time; this service
// handles HTTP requests concurrently, so the document is guarded by a mutex.
type Repository struct {
	mu    sync.RWMutex
	store Store
	doc   Document
}

// New constructs a repository backed by the given store. It attempts to load
// a previously persisted document; if the document is absent or unreadable
// it starts from the empty default state with the default user profile.
// Construction never fails.
func New(store Store) *Repository {
	r := &Repository{
		store: store,
		doc:   defaultDocument(),
	}
	r.load()
	return r
}

// load replaces the in-memory document with the persisted one when it can be
// read. Corruption is logged and swallowed: callers always get a usable
// repository.
func (r *Repository) load() {
	raw, err := r.store.Load()
	if err != nil {
		logger.Warn().Err(err).Msg("Could not read persisted reservations, starting empty")
		return
	}
	if len(raw) == 0 {
		return
	}

	var doc Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		logger.Warn().Err(err).Msg("Persisted reservation document is corrupt, starting empty")
		return
	}

	if doc.Bookings == nil {
		doc.Bookings = []domain.Booking{}
	}
	if doc.Alerts == nil {
		doc.Alerts = []domain.PriceAlert{}
	}
	if doc.User == (domain.UserProfile{}) {
		doc.User = domain.DefaultUserProfile()
	}
	r.doc = doc
}

// persist writes the whole document to the store. Callers hold the write
// lock. Persistence failures are logged, never surfaced: the in-memory state
// stays authoritative for the rest of the process lifetime.
func (r *Repository) persist() {
	data, err := json.Marshal(r.doc)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to serialize reservation document")
		return
	}
	if err := r.store.Save(data); err != nil {
		logger.Error().Err(err).Msg("Failed to persist reservation document")
	}
}

// AddBooking appends a booking and persists the document. The repository
// does not enforce id uniqueness; the caller supplies a locator code.
func (r *Repository) AddBooking(b domain.Booking) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.doc.Bookings = append(r.doc.Bookings, b)
	r.persist()
}

// Bookings returns the bookings in insertion order. The returned slice is a
// copy; mutating it does not affect the repository.
func (r *Repository) Bookings() []domain.Booking {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Booking, len(r.doc.Bookings))
	copy(out, r.doc.Bookings)
	return out
}

// CancelBooking transitions the named booking to Cancelled, leaving every
// other field untouched, and persists. Unknown ids are a no-op; the second
// return value reports whether the booking was found.
func (r *Repository) CancelBooking(id string) (domain.Booking, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.doc.Bookings {
		if r.doc.Bookings[i].ID == id {
			r.doc.Bookings[i].Status = domain.StatusCancelled
			r.persist()
			return r.doc.Bookings[i], true
		}
	}
	return domain.Booking{}, false
}

// AddAlert appends a price alert and persists the document.
func (r *Repository) AddAlert(a domain.PriceAlert) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.doc.Alerts = append(r.doc.Alerts, a)
	r.persist()
}

// Alerts returns the alerts in insertion order as a copy.
func (r *Repository) Alerts() []domain.PriceAlert {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.PriceAlert, len(r.doc.Alerts))
	copy(out, r.doc.Alerts)
	return out
}

// RemoveAlert deletes the named alert and persists. Unknown ids are a no-op;
// the return value reports whether the alert was found.
func (r *Repository) RemoveAlert(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.doc.Alerts {
		if r.doc.Alerts[i].ID == id {
			r.doc.Alerts = append(r.doc.Alerts[:i], r.doc.Alerts[i+1:]...)
			r.persist()
			return true
		}
	}
	return false
}

// UpdateAlerts evaluates every untriggered alert against the given flights.
// The first flight in iteration order whose route matches case-insensitively
// at or below the target price triggers the alert and records its price; no
// price minimization is attempted. Already-triggered alerts are never
// re-evaluated. Persists only if something changed, and reports whether it did.
func (r *Repository) UpdateAlerts(flights []domain.Flight) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	changed := false
	for i := range r.doc.Alerts {
		alert := &r.doc.Alerts[i]
		if alert.IsTriggered {
			continue
		}
		for _, f := range flights {
			if alert.Matches(f) {
				price := f.Price
				alert.IsTriggered = true
				alert.CurrentPrice = &price
				changed = true
				break
			}
		}
	}

	if changed {
		r.persist()
	}
	return changed
}

// Profile returns the user profile.
func (r *Repository) Profile() domain.UserProfile {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.doc.User
}

// SetProfile replaces the user profile and persists.
func (r *Repository) SetProfile(p domain.UserProfile) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.doc.User = p
	r.persist()
}
