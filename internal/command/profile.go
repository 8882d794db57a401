package command

import (
	"context"
	"fmt"
	"time"

	"github.com/oneevent/oneevent-api/internal/datasources"
	"github.com/oneevent/oneevent-api/internal/domain"
)

type GetProfileRequest struct {
	UserID string
}

// GetProfile returns the user's profile, creating an empty one on first access.
type GetProfile struct {
	ProfileEnsurer datasources.UserProfileEnsurer
	Now            func() time.Time
}

func NewGetProfile(profileEnsurer datasources.UserProfileEnsurer) *GetProfile {
	return &GetProfile{ProfileEnsurer: profileEnsurer, Now: time.Now}
}

func (c *GetProfile) Execute(ctx context.Context, req GetProfileRequest) (domain.UserProfile, error) {
	profile, err := c.ProfileEnsurer.EnsureUserProfile(ctx, req.UserID, c.Now())
	if err != nil {
		return domain.UserProfile{}, fmt.Errorf("ensuring user profile: %w", err)
	}
	return profile, nil
}

type UpdatePreferencesRequest struct {
	UserID      string
	Preferences domain.UserPreferences
}

// UpdatePreferences stores onboarding answers after validating every enum value.
type UpdatePreferences struct {
	PreferencesSetter datasources.UserPreferencesSetter
	ProfileGetter     datasources.UserProfileGetter
	Now               func() time.Time
}

func NewUpdatePreferences(
	preferencesSetter datasources.UserPreferencesSetter,
	profileGetter datasources.UserProfileGetter,
) *UpdatePreferences {
	return &UpdatePreferences{
		PreferencesSetter: preferencesSetter,
		ProfileGetter:     profileGetter,
		Now:               time.Now,
	}
}

func (c *UpdatePreferences) Execute(ctx context.Context, req UpdatePreferencesRequest) (domain.UserProfile, error) {
	prefs := req.Preferences.Normalize()
	if err := prefs.Validate(); err != nil {
		return domain.UserProfile{}, err
	}

	if err := c.PreferencesSetter.SetUserPreferences(ctx, req.UserID, prefs, c.Now()); err != nil {
		return domain.UserProfile{}, fmt.Errorf("storing preferences: %w", err)
	}

	profile, err := c.ProfileGetter.GetUserProfile(ctx, req.UserID)
	if err != nil {
		return domain.UserProfile{}, fmt.Errorf("fetching updated profile: %w", err)
	}
	return profile, nil
}
