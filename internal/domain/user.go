package domain

// LoyaltyTier is the frequent-flyer tier of a user.
type LoyaltyTier string

// Supported loyalty tiers.
const (
	TierSilver   LoyaltyTier = "Silver"
	TierGold     LoyaltyTier = "Gold"
	TierPlatinum LoyaltyTier = "Platinum"
)

// IsValid checks if the loyalty tier is one of the supported values.
func (t LoyaltyTier) IsValid() bool {
	switch t {
	case TierSilver, TierGold, TierPlatinum:
		return true
	default:
		return false
	}
}

// UserProfile is the single user profile held by the repository.
type UserProfile struct {
	Name  string      `json:"name"`
	Email string      `json:"email"`
	Tier  LoyaltyTier `json:"tier"`
}

// DefaultUserProfile returns the profile applied when none has been persisted.
func DefaultUserProfile() UserProfile {
	return UserProfile{
		Name:  "Guest Explorer",
		Email: "guest@fastflight.com",
		Tier:  TierSilver,
	}
}
