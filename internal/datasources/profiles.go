package datasources

import (
	"context"
	"time"

	"github.com/oneevent/oneevent-api/internal/domain"
)

// UserProfileGetter retrieves a profile, returning domain.ErrNotFound if the user has none.
type UserProfileGetter interface {
	GetUserProfile(ctx context.Context, userID string) (domain.UserProfile, error)
}

// UserProfileEnsurer creates an empty profile on first access and returns the stored one.
type UserProfileEnsurer interface {
	EnsureUserProfile(ctx context.Context, userID string, now time.Time) (domain.UserProfile, error)
}

// UserPreferencesSetter stores onboarding answers and marks onboarding complete.
type UserPreferencesSetter interface {
	SetUserPreferences(ctx context.Context, userID string, prefs domain.UserPreferences, now time.Time) error
}

// UserProfileRepository combines all profile operations.
type UserProfileRepository interface {
	UserProfileGetter
	UserProfileEnsurer
	UserPreferencesSetter
}
