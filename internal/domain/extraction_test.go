package domain

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildExtractionPrompt(t *testing.T) {
	prompt := BuildExtractionPrompt("ARTICLE BODY")

	assert.Contains(t, prompt, "ARTICLE BODY")
	for _, key := range []string{"title", "date", "category", "what_happened", "why_people_care", "what_this_means", "what_likely_does_not_change"} {
		assert.Contains(t, prompt, `"`+key+`"`)
	}
	for _, category := range ValidCategories {
		assert.Contains(t, prompt, string(category))
	}
}

func TestParseModelOutput(t *testing.T) {
	cases := []struct {
		name      string
		raw       string
		wantTitle string
		wantErr   bool
	}{
		{name: "bare_object", raw: `{"title":"A"}`, wantTitle: "A"},
		{name: "json_fence", raw: "```json\n{\"title\":\"B\"}\n```", wantTitle: "B"},
		{name: "plain_fence", raw: "```\n{\"title\":\"C\"}\n```", wantTitle: "C"},
		{name: "surrounding_prose", raw: "Here is the result: {\"title\":\"D\"} hope it helps", wantTitle: "D"},
		{name: "whitespace", raw: "\n\n  {\"title\":\"E\"}  \n", wantTitle: "E"},
		{name: "no_object", raw: "I cannot help with that.", wantErr: true},
		{name: "broken_json", raw: `{"title": "F",}`, wantErr: true},
		{name: "empty", raw: "", wantErr: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			payload, raw, err := ParseModelOutput(tc.raw)
			if tc.wantErr {
				var parseErr *ParseError
				require.ErrorAs(t, err, &parseErr)
				assert.Equal(t, tc.raw, parseErr.Raw)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantTitle, payload["title"])
			assert.NotEmpty(t, raw)
		})
	}
}

func TestEventFieldsFromPayload(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

	valid := func() map[string]any {
		return map[string]any{
			"title":                       "Central bank holds rates",
			"date":                        "2025-03-09",
			"category":                    "economy",
			"what_happened":               "The bank kept rates unchanged.",
			"why_people_care":             "Mortgages depend on it.",
			"what_this_means":             "Borrowing costs stay put.",
			"what_likely_does_not_change": "Savings rates",
		}
	}

	t.Run("valid_payload", func(t *testing.T) {
		fields, err := EventFieldsFromPayload(valid(), now)

		require.NoError(t, err)
		assert.Equal(t, "Central bank holds rates", fields.Title)
		assert.Equal(t, "2025-03-09", fields.Date)
		assert.Equal(t, CategoryEconomy, fields.Category)
		require.NotNil(t, fields.WhatLikelyDoesNotChange)
		assert.Equal(t, "Savings rates", *fields.WhatLikelyDoesNotChange)
	})

	t.Run("missing_date_defaults_to_today", func(t *testing.T) {
		payload := valid()
		delete(payload, "date")

		fields, err := EventFieldsFromPayload(payload, now)

		require.NoError(t, err)
		assert.Equal(t, "2025-03-10", fields.Date)
	})

	t.Run("null_not_change_is_nil", func(t *testing.T) {
		payload := valid()
		payload["what_likely_does_not_change"] = nil

		fields, err := EventFieldsFromPayload(payload, now)

		require.NoError(t, err)
		assert.Nil(t, fields.WhatLikelyDoesNotChange)
	})

	t.Run("missing_field_and_bad_category_reported_together", func(t *testing.T) {
		payload := valid()
		delete(payload, "why_people_care")
		payload["category"] = "sports"

		_, err := EventFieldsFromPayload(payload, now)

		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrMissingFields))
		assert.True(t, errors.Is(err, ErrInvalidCategory))
		assert.False(t, errors.Is(err, ErrInvalidDate))

		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, []string{"why_people_care"}, verr.MissingFields)
		assert.Equal(t, "sports", verr.InvalidCategory)
		assert.Contains(t, err.Error(), "why_people_care")
		assert.Contains(t, err.Error(), "sports")
	})

	t.Run("null_and_blank_count_as_missing", func(t *testing.T) {
		payload := valid()
		payload["title"] = nil
		payload["what_this_means"] = "   "

		_, err := EventFieldsFromPayload(payload, now)

		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, []string{"title", "what_this_means"}, verr.MissingFields)
	})

	t.Run("category_match_is_case_sensitive", func(t *testing.T) {
		payload := valid()
		payload["category"] = "Economy"

		_, err := EventFieldsFromPayload(payload, now)

		assert.True(t, errors.Is(err, ErrInvalidCategory))
	})

	t.Run("malformed_date_is_rejected", func(t *testing.T) {
		payload := valid()
		payload["date"] = "March 9th"

		_, err := EventFieldsFromPayload(payload, now)

		assert.True(t, errors.Is(err, ErrInvalidDate))
	})
}

func TestNewEventFromFields(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	blank := "  "

	event := NewEventFromFields("evt-1", EventFields{
		Title:                   "  Title ",
		Category:                CategoryHealth,
		WhatHappened:            "a",
		WhyPeopleCare:           "b",
		WhatThisMeans:           "c",
		WhatLikelyDoesNotChange: &blank,
	}, now, 7*24*time.Hour)

	assert.Equal(t, "evt-1", event.ID)
	assert.Equal(t, "Title", event.Title)
	assert.Equal(t, "2025-03-10", event.Date)
	assert.Nil(t, event.WhatLikelyDoesNotChange)
	assert.Equal(t, now, event.CreatedAt)
	assert.Equal(t, now.AddDate(0, 0, 7), event.ExpiresAt)
}
