package domain

import "strings"

// PriceAlert is a user-created watch on a route. It triggers once a search
// observes a matching flight at or below the target price. The triggered
// flag is monotonic: once true it is never re-evaluated or reverted.
type PriceAlert struct {
	// ID uniquely identifies the alert within the repository
	ID string `json:"id"`

	// Origin and Destination are city names, matched case-insensitively
	Origin      string `json:"origin"`
	Destination string `json:"destination"`

	// Date is the target travel date in YYYY-MM-DD format
	Date string `json:"date"`

	// TargetPrice is the price ceiling in Indian Rupees
	TargetPrice int `json:"targetPrice"`

	// CurrentPrice is the price of the flight that triggered the alert.
	// Nil until the alert has been triggered.
	CurrentPrice *int `json:"currentPrice,omitempty"`

	// IsTriggered records whether the target condition has been observed
	IsTriggered bool `json:"isTriggered"`

	// CreatedAt is the creation timestamp in unix milliseconds
	CreatedAt int64 `json:"createdAt"`
}

// Matches reports whether the given flight satisfies this alert: same route
// (case-insensitive city comparison) at or below the target price.
func (a *PriceAlert) Matches(f Flight) bool {
	return strings.EqualFold(f.Origin, a.Origin) &&
		strings.EqualFold(f.Destination, a.Destination) &&
		f.Price <= a.TargetPrice
}
