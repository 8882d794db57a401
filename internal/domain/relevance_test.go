package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestScoreEvent(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	config := DefaultRelevanceConfig()

	cases := []struct {
		name    string
		event   Event
		profile UserProfile
		want    int
	}{
		{
			name: "all_pools_match_clamped_to_100",
			event: Event{
				Title:     "Japan market news",
				Category:  CategoryEconomy,
				CreatedAt: now,
			},
			profile: UserProfile{
				Interests:   []Interest{InterestMoney},
				CareerField: CareerFinance,
				Country:     "Japan",
			},
			want: 100,
		},
		{
			name:    "nothing_matches_old_event",
			event:   Event{Title: "Rainfall report", Category: CategoryEnvironment, CreatedAt: now.AddDate(0, 0, -30)},
			profile: UserProfile{Interests: []Interest{InterestTech}, CareerField: CareerRetail, Country: "Peru"},
			want:    0,
		},
		{
			name:    "interest_only",
			event:   Event{Category: CategoryHealth, CreatedAt: now.AddDate(0, 0, -20)},
			profile: UserProfile{Interests: []Interest{InterestHealth}, CareerField: CareerOther},
			want:    40,
		},
		{
			name:    "multiple_interests_accumulate",
			event:   Event{Category: CategoryTechnology, CreatedAt: now.AddDate(0, 0, -20)},
			profile: UserProfile{Interests: []Interest{InterestTech, InterestWork}, CareerField: CareerOther},
			want:    80,
		},
		{
			name:    "duplicate_interest_counted_once",
			event:   Event{Category: CategoryTechnology, CreatedAt: now.AddDate(0, 0, -20)},
			profile: UserProfile{Interests: []Interest{InterestTech, InterestTech}, CareerField: CareerOther},
			want:    40,
		},
		{
			name:    "career_only",
			event:   Event{Category: CategoryPolitics, CreatedAt: now.AddDate(0, 0, -20)},
			profile: UserProfile{CareerField: CareerGovernment},
			want:    30,
		},
		{
			name:    "career_other_never_matches",
			event:   Event{Category: CategoryScience, CreatedAt: now.AddDate(0, 0, -20)},
			profile: UserProfile{CareerField: CareerOther},
			want:    0,
		},
		{
			name: "geo_match_in_narrative_field",
			event: Event{
				Category:      CategoryScience,
				WhyPeopleCare: "Farmers across FRANCE rely on it",
				CreatedAt:     now.AddDate(0, 0, -20),
			},
			profile: UserProfile{Country: "  france "},
			want:    20,
		},
		{
			name:    "blank_country_never_matches",
			event:   Event{Title: "   ", Category: CategoryScience, CreatedAt: now.AddDate(0, 0, -20)},
			profile: UserProfile{Country: "   "},
			want:    0,
		},
		{
			name:    "what_likely_does_not_change_is_not_searched",
			event:   Event{Category: CategoryScience, WhatLikelyDoesNotChange: strPtr("Chile"), CreatedAt: now.AddDate(0, 0, -20)},
			profile: UserProfile{Country: "Chile"},
			want:    0,
		},
		{
			name:    "interest_and_career_and_fresh",
			event:   Event{Category: CategoryEconomy, CreatedAt: now},
			profile: UserProfile{Interests: []Interest{InterestMoney, InterestWork}, CareerField: CareerRetail},
			want:    100,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ScoreEvent(tc.event, tc.profile, config, now)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestScoreEvent_Recency(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	config := DefaultRelevanceConfig()
	profile := UserProfile{}

	cases := []struct {
		name      string
		createdAt time.Time
		want      int
	}{
		{name: "created_now", createdAt: now, want: 10},
		{name: "one_second_ago_counts_as_a_day", createdAt: now.Add(-time.Second), want: 9},
		{name: "exactly_one_day", createdAt: now.Add(-24 * time.Hour), want: 9},
		{name: "three_and_a_half_days", createdAt: now.Add(-84 * time.Hour), want: 6},
		{name: "nine_days", createdAt: now.AddDate(0, 0, -9), want: 1},
		{name: "ten_days", createdAt: now.AddDate(0, 0, -10), want: 0},
		{name: "long_ago", createdAt: now.AddDate(-1, 0, 0), want: 0},
		{name: "future_uses_absolute_age", createdAt: now.Add(36 * time.Hour), want: 8},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			event := Event{Category: CategoryScience, CreatedAt: tc.createdAt}
			assert.Equal(t, tc.want, ScoreEvent(event, profile, config, now))
		})
	}
}

func TestScoreEvent_CapInterestSubtotal(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	event := Event{Category: CategoryEconomy, CreatedAt: now.AddDate(0, 0, -20)}
	profile := UserProfile{Interests: []Interest{InterestMoney, InterestWork}}

	uncapped := DefaultRelevanceConfig()
	assert.Equal(t, 80, ScoreEvent(event, profile, uncapped, now))

	capped := DefaultRelevanceConfig()
	capped.CapInterestSubtotal = true
	assert.Equal(t, 40, ScoreEvent(event, profile, capped, now))
}

func TestScoreEvent_AlwaysWithinBounds(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	config := DefaultRelevanceConfig()
	config.InterestMatchPoints = 90

	profile := UserProfile{
		Interests:   ValidInterests,
		CareerField: CareerTechnology,
		Country:     "Kenya",
	}

	for _, category := range ValidCategories {
		for _, age := range []time.Duration{0, time.Hour, 48 * time.Hour, 400 * time.Hour} {
			event := Event{Title: "Kenya update", Category: category, CreatedAt: now.Add(-age)}
			score := ScoreEvent(event, profile, config, now)
			assert.GreaterOrEqual(t, score, 0)
			assert.LessOrEqual(t, score, MaxRelevanceScore)
			assert.Equal(t, score, ScoreEvent(event, profile, config, now), "score must be deterministic")
		}
	}
}

func TestScoreEventBreakdown(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	event := Event{Title: "Japan market news", Category: CategoryEconomy, CreatedAt: now}
	profile := UserProfile{Interests: []Interest{InterestMoney}, CareerField: CareerFinance, Country: "Japan"}

	got := ScoreEventBreakdown(event, profile, DefaultRelevanceConfig(), now)

	assert.Equal(t, RelevanceBreakdown{Interest: 40, Career: 30, Geo: 20, Recency: 10}, got)
	assert.Equal(t, 100, got.Total())
}

func strPtr(s string) *string {
	return &s
}
