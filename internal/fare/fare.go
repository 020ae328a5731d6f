// Package fare provides fare formatting and the random seat / locator
// generators used at booking time.
package fare

import (
	"fmt"
	"math/rand"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// inr renders numbers with en-IN digit grouping.
var inr = message.NewPrinter(language.MustParse("en-IN"))

// FormatINR renders a fare as an Indian-Rupee currency string with zero
// fractional digits, e.g. 85000 -> "₹85,000". Prices are INR regardless of
// what the caller assumed when producing them.
func FormatINR(price int) string {
	return inr.Sprintf("₹%v", number.Decimal(price))
}

// Seat layout: rows 1-30, columns A-F.
const seatRows = 30

var seatColumns = []string{"A", "B", "C", "D", "E", "F"}

// GenerateSeat produces a random seat label such as "14C". Purely random:
// there is no collision checking against already-issued seats, even within
// the same flight.
func GenerateSeat() string {
	row := rand.Intn(seatRows) + 1
	col := seatColumns[rand.Intn(len(seatColumns))]
	return fmt.Sprintf("%d%s", row, col)
}

// locatorCharset is the base36 alphabet used for locator codes.
const locatorCharset = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// locatorLength is the number of random characters after the "FF-" prefix.
const locatorLength = 6

// GenerateLocator produces a booking locator code such as "FF-K3J9ZQ".
// Unconstrained randomness with no collision check: acceptable for this
// scale, and a known non-uniqueness risk rather than a guarantee.
func GenerateLocator() string {
	b := make([]byte, locatorLength)
	for i := range b {
		b[i] = locatorCharset[rand.Intn(len(locatorCharset))]
	}
	return "FF-" + string(b)
}
