package mysql

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/huandu/go-sqlbuilder"

	"github.com/oneevent/oneevent-api/internal/domain"
)

var profileColumns = []string{
	"user_id",
	"country",
	"career_field",
	"interests",
	"risk_tolerance",
	"onboarding_completed",
	"is_admin",
	"created_at",
	"updated_at",
}

func (r *Repository) GetUserProfile(ctx context.Context, userID string) (domain.UserProfile, error) {
	sb := sqlbuilder.Select(profileColumns...)
	sb.From("user_profiles")
	sb.Where(sb.Equal("user_id", userID))

	query, args := sb.Build()
	profile, err := scanProfile(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return domain.UserProfile{}, fmt.Errorf("profile for user [%s]: %w", userID, domain.ErrNotFound)
	}
	if err != nil {
		return domain.UserProfile{}, fmt.Errorf("fetching user profile: %w", err)
	}
	return profile, nil
}

func (r *Repository) EnsureUserProfile(ctx context.Context, userID string, now time.Time) (domain.UserProfile, error) {
	ib := sqlbuilder.InsertIgnoreInto("user_profiles")
	ib.Cols("user_id", "interests", "created_at", "updated_at")
	ib.Values(userID, "[]", now, now)

	query, args := ib.Build()
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return domain.UserProfile{}, fmt.Errorf("creating user profile: %w", err)
	}

	return r.GetUserProfile(ctx, userID)
}

func (r *Repository) SetUserPreferences(
	ctx context.Context,
	userID string,
	prefs domain.UserPreferences,
	now time.Time,
) error {
	interests, err := json.Marshal(prefs.Interests)
	if err != nil {
		return fmt.Errorf("encoding interests: %w", err)
	}

	ib := sqlbuilder.InsertInto("user_profiles")
	ib.Cols("user_id", "country", "career_field", "interests", "risk_tolerance",
		"onboarding_completed", "created_at", "updated_at")
	ib.Values(userID, prefs.Country, string(prefs.CareerField), string(interests), string(prefs.RiskTolerance),
		true, now, now)
	ib.SQL("ON DUPLICATE KEY UPDATE country = VALUES(country), career_field = VALUES(career_field), " +
		"interests = VALUES(interests), risk_tolerance = VALUES(risk_tolerance), " +
		"onboarding_completed = TRUE, updated_at = VALUES(updated_at)")

	query, args := ib.Build()
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("storing user preferences: %w", err)
	}
	return nil
}

func scanProfile(row rowScanner) (domain.UserProfile, error) {
	var (
		profile       domain.UserProfile
		careerField   string
		interestsJSON []byte
		riskTolerance string
	)
	if err := row.Scan(
		&profile.UserID,
		&profile.Country,
		&careerField,
		&interestsJSON,
		&riskTolerance,
		&profile.OnboardingCompleted,
		&profile.IsAdmin,
		&profile.CreatedAt,
		&profile.UpdatedAt,
	); err != nil {
		return domain.UserProfile{}, err
	}

	profile.CareerField = domain.CareerField(careerField)
	profile.RiskTolerance = domain.RiskTolerance(riskTolerance)
	profile.Interests = []domain.Interest{}
	if len(interestsJSON) > 0 {
		if err := json.Unmarshal(interestsJSON, &profile.Interests); err != nil {
			return domain.UserProfile{}, fmt.Errorf("decoding interests: %w", err)
		}
	}
	return profile, nil
}
