package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/fastflight/fastflight-reservation-system/internal/domain"
	"github.com/fastflight/fastflight-reservation-system/internal/repository"
)

// ProfileUseCase defines the interface for traveler profile operations.
type ProfileUseCase interface {
	// Get returns the current profile, or the default when none is stored.
	Get(ctx context.Context) domain.UserProfile

	// Update replaces the stored profile.
	Update(ctx context.Context, profile domain.UserProfile) (domain.UserProfile, error)
}

type profileUseCase struct {
	repo *repository.Repository
}

// NewProfileUseCase creates a ProfileUseCase over the reservation repository.
func NewProfileUseCase(repo *repository.Repository) ProfileUseCase {
	return &profileUseCase{repo: repo}
}

func (uc *profileUseCase) Get(_ context.Context) domain.UserProfile {
	return uc.repo.Profile()
}

func (uc *profileUseCase) Update(_ context.Context, profile domain.UserProfile) (domain.UserProfile, error) {
	profile.Name = strings.TrimSpace(profile.Name)
	profile.Email = strings.TrimSpace(profile.Email)

	if profile.Name == "" {
		return domain.UserProfile{}, fmt.Errorf("%w: name is required", domain.ErrInvalidRequest)
	}
	if profile.Email == "" || !strings.Contains(profile.Email, "@") {
		return domain.UserProfile{}, fmt.Errorf("%w: a valid email is required", domain.ErrInvalidRequest)
	}
	if !profile.Tier.IsValid() {
		return domain.UserProfile{}, fmt.Errorf("%w: tier must be one of: Silver, Gold, Platinum; got %q", domain.ErrInvalidRequest, profile.Tier)
	}

	uc.repo.SetProfile(profile)
	return profile, nil
}
