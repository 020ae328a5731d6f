package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/fastflight/fastflight-reservation-system/internal/domain"
	"github.com/fastflight/fastflight-reservation-system/internal/infrastructure/timeutil"
	"github.com/fastflight/fastflight-reservation-system/internal/repository"
)

// AlertUseCase defines the interface for price alert operations.
type AlertUseCase interface {
	// Create registers a new price alert for a route.
	Create(ctx context.Context, origin, destination, date string, targetPrice int) (domain.PriceAlert, error)

	// List returns all alerts in creation order.
	List(ctx context.Context) []domain.PriceAlert

	// Remove deletes an alert permanently.
	Remove(ctx context.Context, id string) error
}

type alertUseCase struct {
	repo  *repository.Repository
	clock timeutil.Clock
}

// NewAlertUseCase creates an AlertUseCase over the reservation repository.
func NewAlertUseCase(repo *repository.Repository, clock timeutil.Clock) AlertUseCase {
	if clock == nil {
		clock = timeutil.NewRealClock()
	}
	return &alertUseCase{repo: repo, clock: clock}
}

func (uc *alertUseCase) Create(_ context.Context, origin, destination, date string, targetPrice int) (domain.PriceAlert, error) {
	origin = strings.TrimSpace(origin)
	destination = strings.TrimSpace(destination)

	if origin == "" {
		return domain.PriceAlert{}, fmt.Errorf("%w: origin is required", domain.ErrInvalidRequest)
	}
	if destination == "" {
		return domain.PriceAlert{}, fmt.Errorf("%w: destination is required", domain.ErrInvalidRequest)
	}
	if targetPrice <= 0 {
		return domain.PriceAlert{}, fmt.Errorf("%w: targetPrice must be positive, got %d", domain.ErrInvalidRequest, targetPrice)
	}

	alert := domain.PriceAlert{
		ID:          uuid.NewString(),
		Origin:      origin,
		Destination: destination,
		Date:        date,
		TargetPrice: targetPrice,
		CreatedAt:   uc.clock.Now().UnixMilli(),
	}

	uc.repo.AddAlert(alert)
	return alert, nil
}

func (uc *alertUseCase) List(_ context.Context) []domain.PriceAlert {
	return uc.repo.Alerts()
}

func (uc *alertUseCase) Remove(_ context.Context, id string) error {
	if !uc.repo.RemoveAlert(id) {
		return fmt.Errorf("%w: alert %s", domain.ErrNotFound, id)
	}
	return nil
}
