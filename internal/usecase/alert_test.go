package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fastflight/fastflight-reservation-system/internal/domain"
	"github.com/fastflight/fastflight-reservation-system/internal/infrastructure/timeutil"
)

func TestAlertUseCase_Create(t *testing.T) {
	createdAt := time.Date(2026, 9, 1, 8, 0, 0, 0, time.UTC)

	t.Run("registers an untriggered alert", func(t *testing.T) {
		repo := newTestRepo(t)
		uc := NewAlertUseCase(repo, timeutil.NewMockClock(createdAt))

		alert, err := uc.Create(context.Background(), " Mumbai ", "Tokyo", "2026-10-01", 70000)

		require.NoError(t, err)
		_, parseErr := uuid.Parse(alert.ID)
		assert.NoError(t, parseErr)
		assert.Equal(t, "Mumbai", alert.Origin)
		assert.Equal(t, "Tokyo", alert.Destination)
		assert.Equal(t, "2026-10-01", alert.Date)
		assert.Equal(t, 70000, alert.TargetPrice)
		assert.False(t, alert.IsTriggered)
		assert.Nil(t, alert.CurrentPrice)
		assert.Equal(t, createdAt.UnixMilli(), alert.CreatedAt)

		stored := uc.List(context.Background())
		require.Len(t, stored, 1)
		assert.Equal(t, alert, stored[0])
	})

	t.Run("rejects bad input", func(t *testing.T) {
		uc := NewAlertUseCase(newTestRepo(t), nil)

		tests := []struct {
			name                string
			origin, destination string
			targetPrice         int
		}{
			{"blank origin", " ", "Tokyo", 70000},
			{"blank destination", "Mumbai", "", 70000},
			{"zero price", "Mumbai", "Tokyo", 0},
			{"negative price", "Mumbai", "Tokyo", -5},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				_, err := uc.Create(context.Background(), tt.origin, tt.destination, "2026-10-01", tt.targetPrice)
				assert.ErrorIs(t, err, domain.ErrInvalidRequest)
			})
		}
	})
}

func TestAlertUseCase_Remove(t *testing.T) {
	repo := newTestRepo(t)
	uc := NewAlertUseCase(repo, nil)

	alert, err := uc.Create(context.Background(), "Mumbai", "Tokyo", "2026-10-01", 70000)
	require.NoError(t, err)

	require.NoError(t, uc.Remove(context.Background(), alert.ID))
	assert.Empty(t, uc.List(context.Background()))

	err = uc.Remove(context.Background(), alert.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
