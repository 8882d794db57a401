package domain

import (
	"sort"
	"time"
)

// DefaultMinRelevanceScore is the inclusive threshold an event must reach to be ranked.
const DefaultMinRelevanceScore = 20

// RankEvents scores every active event for the profile, keeps those at or above minScore and
// orders them by score then creation time, newest first.
//
// When nothing reaches the threshold the single most recently created event is returned with its
// own score, so a non-empty input always yields a non-empty result.
func RankEvents(
	events []Event,
	profile UserProfile,
	config RelevanceConfig,
	minScore int,
	now time.Time,
) []ScoredEvent {
	if len(events) == 0 {
		return nil
	}

	scored := make([]ScoredEvent, 0, len(events))
	for _, event := range events {
		score := ScoreEvent(event, profile, config, now)
		if score < minScore {
			continue
		}
		scored = append(scored, ScoredEvent{Event: event, Score: score})
	}

	if len(scored) == 0 {
		fallback := mostRecentEvent(events)
		return []ScoredEvent{{
			Event: fallback,
			Score: ScoreEvent(fallback, profile, config, now),
		}}
	}

	sort.SliceStable(scored, func(i, j int) bool {
		a, b := scored[i], scored[j]
		if a.Score != b.Score {
			return a.Score > b.Score
		}
		if !a.Event.CreatedAt.Equal(b.Event.CreatedAt) {
			return a.Event.CreatedAt.After(b.Event.CreatedAt)
		}
		return a.Event.ID < b.Event.ID
	})

	return scored
}

func mostRecentEvent(events []Event) Event {
	latest := events[0]
	for _, event := range events[1:] {
		if event.CreatedAt.After(latest.CreatedAt) {
			latest = event
		}
	}
	return latest
}
