package repository

import (
	"github.com/fastflight/fastflight-reservation-system/internal/domain"
)

// DefaultStorageKey is the versioned slot name the document is persisted
// under. Changing the suffix allows a future schema migration to start from
// an empty document without clobbering the previous version.
const DefaultStorageKey = "fastflight_db_v1"

// Document is the whole repository state as one serializable unit. It must
// round-trip losslessly through JSON: no field may be dropped on save/load.
type Document struct {
	Bookings []domain.Booking    `json:"bookings"`
	Alerts   []domain.PriceAlert `json:"alerts"`
	User     domain.UserProfile  `json:"user"`
}

// defaultDocument returns the empty state used when nothing has been
// persisted yet, or when the persisted document cannot be read.
func defaultDocument() Document {
	return Document{
		Bookings: []domain.Booking{},
		Alerts:   []domain.PriceAlert{},
		User:     domain.DefaultUserProfile(),
	}
}
