package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/fastflight/fastflight-reservation-system/internal/domain"
	"github.com/fastflight/fastflight-reservation-system/internal/fare"
	"github.com/fastflight/fastflight-reservation-system/internal/infrastructure/logger"
	"github.com/fastflight/fastflight-reservation-system/internal/infrastructure/timeutil"
	"github.com/fastflight/fastflight-reservation-system/internal/repository"
)

// BookingUseCase defines the interface for booking operations.
type BookingUseCase interface {
	// Book confirms a reservation for the given flight and passenger,
	// assigning a locator code and a seat.
	Book(ctx context.Context, flight domain.Flight, passengerName string, payment domain.PaymentMethod) (domain.Booking, error)

	// List returns all bookings in creation order.
	List(ctx context.Context) []domain.Booking

	// Cancel marks the booking Cancelled. The record is kept.
	Cancel(ctx context.Context, id string) (domain.Booking, error)
}

type bookingUseCase struct {
	repo  *repository.Repository
	clock timeutil.Clock
}

// NewBookingUseCase creates a BookingUseCase over the reservation repository.
func NewBookingUseCase(repo *repository.Repository, clock timeutil.Clock) BookingUseCase {
	if clock == nil {
		clock = timeutil.NewRealClock()
	}
	return &bookingUseCase{repo: repo, clock: clock}
}

func (uc *bookingUseCase) Book(ctx context.Context, flight domain.Flight, passengerName string, payment domain.PaymentMethod) (domain.Booking, error) {
	if err := flight.Validate(); err != nil {
		return domain.Booking{}, err
	}
	if strings.TrimSpace(passengerName) == "" {
		return domain.Booking{}, fmt.Errorf("%w: passengerName is required", domain.ErrInvalidRequest)
	}
	if !payment.IsValid() {
		return domain.Booking{}, fmt.Errorf("%w: paymentMethod must be one of: Credit Card, UPI, Net Banking, Corporate; got %q", domain.ErrInvalidRequest, payment)
	}

	booking := domain.Booking{
		ID:            fare.GenerateLocator(),
		Flight:        flight,
		PassengerName: strings.TrimSpace(passengerName),
		SeatNumber:    fare.GenerateSeat(),
		Status:        domain.StatusConfirmed,
		PaymentMethod: payment,
		BookingDate:   uc.clock.Now().UnixMilli(),
	}

	uc.repo.AddBooking(booking)

	logger.Info().
		Str("bookingId", booking.ID).
		Str("flightNumber", flight.FlightNumber).
		Str("seat", booking.SeatNumber).
		Msg("booking confirmed")

	return booking, nil
}

func (uc *bookingUseCase) List(_ context.Context) []domain.Booking {
	return uc.repo.Bookings()
}

func (uc *bookingUseCase) Cancel(_ context.Context, id string) (domain.Booking, error) {
	booking, ok := uc.repo.CancelBooking(id)
	if !ok {
		return domain.Booking{}, fmt.Errorf("%w: booking %s", domain.ErrNotFound, id)
	}

	logger.Info().Str("bookingId", id).Msg("booking cancelled")
	return booking, nil
}
