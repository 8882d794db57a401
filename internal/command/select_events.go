package command

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/oneevent/oneevent-api/internal/datasources"
	"github.com/oneevent/oneevent-api/internal/domain"
)

// SelectEventsConfig holds the scoring weights and threshold used by the event selectors.
type SelectEventsConfig struct {
	Relevance domain.RelevanceConfig

	// MinScore is the inclusive relevance threshold. Events below it are only shown through the
	// most-recent fallback.
	MinScore int
}

// eventRanker loads what a selector needs and ranks active events for one user.
type eventRanker struct {
	ProfileGetter datasources.UserProfileGetter
	EventLister   datasources.ActiveEventLister
	Formatter     ImplicationsFormatter
	Config        SelectEventsConfig
}

// rank returns the ranked events and the profile they were ranked for. A user without a
// profile gets no events and no error.
func (r eventRanker) rank(ctx context.Context, userID string, now time.Time) ([]domain.ScoredEvent, domain.UserProfile, error) {
	logger := domain.LoggerFromContext(ctx)

	profile, err := r.ProfileGetter.GetUserProfile(ctx, userID)
	if errors.Is(err, domain.ErrNotFound) {
		logger.DebugContext(ctx, "user has no profile, selecting nothing", "user_id", userID)
		return nil, domain.UserProfile{}, nil
	}
	if err != nil {
		return nil, domain.UserProfile{}, fmt.Errorf("fetching user profile: %w", err)
	}

	events, err := r.EventLister.ListActiveEvents(ctx, now)
	if err != nil {
		return nil, domain.UserProfile{}, fmt.Errorf("listing active events: %w", err)
	}

	ranked := domain.RankEvents(events, profile, r.Config.Relevance, r.Config.MinScore, now)
	logger.DebugContext(ctx, "ranked active events",
		"user_id", userID, "candidates", len(events), "ranked", len(ranked))

	return ranked, profile, nil
}

func (r eventRanker) personalize(scored domain.ScoredEvent, profile domain.UserProfile) domain.ScoredEvent {
	scored.Event.PersonalizedImplications = r.Formatter.FormatImplications(scored.Event, profile)
	return scored
}
