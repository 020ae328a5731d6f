package domain

// BookingStatus is the lifecycle state of a booking.
type BookingStatus string

// Booking statuses. A booking is created Confirmed and may only ever
// transition to Cancelled; no other field changes after creation.
const (
	StatusConfirmed BookingStatus = "Confirmed"
	StatusPending   BookingStatus = "Pending"
	StatusCancelled BookingStatus = "Cancelled"
)

// IsValid checks if the booking status is one of the supported values.
func (s BookingStatus) IsValid() bool {
	switch s {
	case StatusConfirmed, StatusPending, StatusCancelled:
		return true
	default:
		return false
	}
}

// PaymentMethod is the settlement option chosen at booking time.
type PaymentMethod string

// Supported payment methods.
const (
	PaymentCreditCard PaymentMethod = "Credit Card"
	PaymentUPI        PaymentMethod = "UPI"
	PaymentNetBanking PaymentMethod = "Net Banking"
	PaymentCorporate  PaymentMethod = "Corporate"
)

// IsValid checks if the payment method is one of the supported values.
func (m PaymentMethod) IsValid() bool {
	switch m {
	case PaymentCreditCard, PaymentUPI, PaymentNetBanking, PaymentCorporate:
		return true
	default:
		return false
	}
}

// Booking is a confirmed reservation for a single passenger on a single flight.
// The embedded Flight is a snapshot taken at booking time: later search results
// never retroactively alter a stored booking.
type Booking struct {
	// ID is the human-facing locator code (e.g., "FF-A1B2C3").
	// Generated from unconstrained randomness with no collision check.
	ID string `json:"id"`

	// Flight is an owned copy of the booked flight
	Flight Flight `json:"flight"`

	// PassengerName is the passenger's full legal name
	PassengerName string `json:"passengerName"`

	// SeatNumber is the assigned seat (row 1-30, column A-F)
	SeatNumber string `json:"seatNumber"`

	// Status is the booking lifecycle state
	Status BookingStatus `json:"status"`

	// PaymentMethod is the settlement option chosen at confirmation
	PaymentMethod PaymentMethod `json:"paymentMethod"`

	// BookingDate is the creation timestamp in unix milliseconds
	BookingDate int64 `json:"bookingDate"`
}
