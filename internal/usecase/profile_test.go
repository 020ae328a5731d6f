package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fastflight/fastflight-reservation-system/internal/domain"
)

func TestProfileUseCase(t *testing.T) {
	t.Run("defaults to the guest profile", func(t *testing.T) {
		uc := NewProfileUseCase(newTestRepo(t))

		profile := uc.Get(context.Background())

		assert.Equal(t, domain.DefaultUserProfile(), profile)
	})

	t.Run("update replaces the stored profile", func(t *testing.T) {
		uc := NewProfileUseCase(newTestRepo(t))

		updated, err := uc.Update(context.Background(), domain.UserProfile{
			Name:  "  Rohan Mehta ",
			Email: " rohan@example.com ",
			Tier:  domain.TierGold,
		})

		require.NoError(t, err)
		assert.Equal(t, "Rohan Mehta", updated.Name)
		assert.Equal(t, "rohan@example.com", updated.Email)
		assert.Equal(t, updated, uc.Get(context.Background()))
	})

	t.Run("rejects bad input", func(t *testing.T) {
		uc := NewProfileUseCase(newTestRepo(t))

		tests := []struct {
			name    string
			profile domain.UserProfile
		}{
			{"blank name", domain.UserProfile{Name: " ", Email: "a@b.com", Tier: domain.TierSilver}},
			{"blank email", domain.UserProfile{Name: "A", Email: "", Tier: domain.TierSilver}},
			{"email without at sign", domain.UserProfile{Name: "A", Email: "not-an-email", Tier: domain.TierSilver}},
			{"unknown tier", domain.UserProfile{Name: "A", Email: "a@b.com", Tier: "Diamond"}},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				_, err := uc.Update(context.Background(), tt.profile)
				assert.ErrorIs(t, err, domain.ErrInvalidRequest)
			})
		}

		assert.Equal(t, domain.DefaultUserProfile(), uc.Get(context.Background()))
	})
}
