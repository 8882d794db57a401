package command

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/oneevent/oneevent-api/internal/content"
	"github.com/oneevent/oneevent-api/internal/datasources/mocks"
	"github.com/oneevent/oneevent-api/internal/domain"
)

func testSelectConfig() SelectEventsConfig {
	return SelectEventsConfig{
		Relevance: domain.DefaultRelevanceConfig(),
		MinScore:  domain.DefaultMinRelevanceScore,
	}
}

func japanProfile() domain.UserProfile {
	return domain.UserProfile{
		UserID:        "user1",
		Country:       "Japan",
		CareerField:   domain.CareerFinance,
		Interests:     []domain.Interest{domain.InterestMoney},
		RiskTolerance: domain.RiskToleranceLow,
	}
}

func testEvents() []domain.Event {
	return []domain.Event{
		{
			ID:            "weather",
			Title:         "Rainfall report",
			Category:      domain.CategoryEnvironment,
			WhatThisMeans: "Carry an umbrella.",
			CreatedAt:     testNow.Add(-time.Hour),
		},
		{
			ID:            "markets",
			Title:         "Japan market news",
			Category:      domain.CategoryEconomy,
			WhatThisMeans: "Stocks may wobble.",
			CreatedAt:     testNow.Add(-2 * time.Hour),
		},
		{
			ID:            "election",
			Title:         "Election results",
			Category:      domain.CategoryPolitics,
			WhatThisMeans: "New government.",
			CreatedAt:     testNow.Add(-3 * time.Hour),
		},
	}
}

func TestSelectActiveEvent_Execute(t *testing.T) {
	cases := []struct {
		name       string
		profileErr error
		events     []domain.Event
		wantID     string
		wantScore  int
	}{
		{
			name:      "selects_highest_score",
			events:    testEvents(),
			wantID:    "markets",
			wantScore: 99,
		},
		{
			name: "falls_back_to_most_recent",
			events: []domain.Event{
				{ID: "old", Category: domain.CategoryScience, CreatedAt: testNow.AddDate(0, 0, -3)},
				{ID: "new", Category: domain.CategoryScience, CreatedAt: testNow.AddDate(0, 0, -1)},
			},
			wantID:    "new",
			wantScore: 9,
		},
		{
			name:   "no_active_events",
			events: []domain.Event{},
		},
		{
			name:       "missing_profile_selects_nothing",
			profileErr: fmt.Errorf("profile: %w", domain.ErrNotFound),
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			profiles := mocks.NewMockUserProfileGetter(t)
			lister := mocks.NewMockActiveEventLister(t)
			receipts := mocks.NewMockReadReceiptRecorder(t)

			profiles.EXPECT().GetUserProfile(mock.Anything, "user1").Return(japanProfile(), tc.profileErr)
			if tc.profileErr == nil {
				lister.EXPECT().ListActiveEvents(mock.Anything, testNow).Return(tc.events, nil)
			}
			if tc.wantID != "" {
				receipts.EXPECT().RecordReadReceipt(mock.Anything, "user1", tc.wantID, testNow).Return(nil)
			}

			cmd := NewSelectActiveEvent(profiles, lister, receipts,
				content.NewImplicationsFormatter(domain.DefaultRelevanceConfig()), testSelectConfig())
			cmd.Now = fixedNow

			res, err := cmd.Execute(testContext(), SelectActiveEventRequest{UserID: "user1"})
			require.NoError(t, err)

			if tc.wantID == "" {
				assert.Nil(t, res.Event)
				return
			}
			require.NotNil(t, res.Event)
			assert.Equal(t, tc.wantID, res.Event.Event.ID)
			assert.Equal(t, tc.wantScore, res.Event.Score)
			assert.NotEmpty(t, res.Event.Event.PersonalizedImplications)
		})
	}
}

func TestSelectActiveEvent_Execute_ReceiptErrorSurfaced(t *testing.T) {
	profiles := mocks.NewMockUserProfileGetter(t)
	lister := mocks.NewMockActiveEventLister(t)
	receipts := mocks.NewMockReadReceiptRecorder(t)

	profiles.EXPECT().GetUserProfile(mock.Anything, "user1").Return(japanProfile(), nil)
	lister.EXPECT().ListActiveEvents(mock.Anything, testNow).Return(testEvents(), nil)
	receipts.EXPECT().RecordReadReceipt(mock.Anything, "user1", "markets", testNow).Return(errors.New("db down"))

	cmd := NewSelectActiveEvent(profiles, lister, receipts,
		content.NewImplicationsFormatter(domain.DefaultRelevanceConfig()), testSelectConfig())
	cmd.Now = fixedNow

	_, err := cmd.Execute(testContext(), SelectActiveEventRequest{UserID: "user1"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "recording read receipt")
}

func TestSelectActiveEvent_Execute_ProfileError(t *testing.T) {
	profiles := mocks.NewMockUserProfileGetter(t)
	lister := mocks.NewMockActiveEventLister(t)
	receipts := mocks.NewMockReadReceiptRecorder(t)

	profiles.EXPECT().GetUserProfile(mock.Anything, "user1").Return(domain.UserProfile{}, errors.New("db down"))

	cmd := NewSelectActiveEvent(profiles, lister, receipts,
		content.NewImplicationsFormatter(domain.DefaultRelevanceConfig()), testSelectConfig())

	_, err := cmd.Execute(testContext(), SelectActiveEventRequest{UserID: "user1"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "fetching user profile")
}

func TestSelectTopEvents_Execute(t *testing.T) {
	cases := []struct {
		name    string
		limit   int
		wantIDs []string
	}{
		{name: "no_limit", limit: 0, wantIDs: []string{"markets"}},
		{name: "limit_larger_than_results", limit: 5, wantIDs: []string{"markets"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			profiles := mocks.NewMockUserProfileGetter(t)
			lister := mocks.NewMockActiveEventLister(t)

			profiles.EXPECT().GetUserProfile(mock.Anything, "user1").Return(japanProfile(), nil)
			lister.EXPECT().ListActiveEvents(mock.Anything, testNow).Return(testEvents(), nil)

			cmd := NewSelectTopEvents(profiles, lister,
				content.NewImplicationsFormatter(domain.DefaultRelevanceConfig()), testSelectConfig())
			cmd.Now = fixedNow

			res, err := cmd.Execute(testContext(), SelectTopEventsRequest{UserID: "user1", Limit: tc.limit})
			require.NoError(t, err)

			ids := make([]string, 0, len(res.Events))
			for _, scored := range res.Events {
				ids = append(ids, scored.Event.ID)
			}
			assert.Equal(t, tc.wantIDs, ids)
		})
	}
}

func TestSelectTopEvents_Execute_Limit(t *testing.T) {
	profiles := mocks.NewMockUserProfileGetter(t)
	lister := mocks.NewMockActiveEventLister(t)

	profile := japanProfile()
	profile.Interests = []domain.Interest{domain.InterestMoney, domain.InterestEnvironment}
	profile.CareerField = domain.CareerGovernment

	profiles.EXPECT().GetUserProfile(mock.Anything, "user1").Return(profile, nil)
	lister.EXPECT().ListActiveEvents(mock.Anything, testNow).Return(testEvents(), nil)

	cmd := NewSelectTopEvents(profiles, lister,
		content.NewImplicationsFormatter(domain.DefaultRelevanceConfig()), testSelectConfig())
	cmd.Now = fixedNow

	res, err := cmd.Execute(testContext(), SelectTopEventsRequest{UserID: "user1", Limit: 2})
	require.NoError(t, err)

	require.Len(t, res.Events, 2)
	assert.Equal(t, "markets", res.Events[0].Event.ID)
	assert.Equal(t, "weather", res.Events[1].Event.ID)
	assert.Equal(t, 49, res.Events[1].Score)
}
