package domain

import (
	"slices"
	"strings"
	"time"
)

// Category classifies an event. Extraction output outside this set is rejected.
type Category string

const (
	CategoryEconomy     Category = "economy"
	CategoryHealth      Category = "health"
	CategoryEnvironment Category = "environment"
	CategoryTechnology  Category = "technology"
	CategoryPolitics    Category = "politics"
	CategorySocial      Category = "social"
	CategoryScience     Category = "science"
)

var ValidCategories = []Category{
	CategoryEconomy,
	CategoryHealth,
	CategoryEnvironment,
	CategoryTechnology,
	CategoryPolitics,
	CategorySocial,
	CategoryScience,
}

func (c Category) IsValid() bool {
	return slices.Contains(ValidCategories, c)
}

// DateLayout is the calendar date format used for event dates.
const DateLayout = "2006-01-02"

// Event is a published, time-bounded piece of content shown to users.
type Event struct {
	ID                      string    `json:"id"`
	Title                   string    `json:"title"`
	Date                    string    `json:"date"`
	Category                Category  `json:"category"`
	WhatHappened            string    `json:"what_happened"`
	WhyPeopleCare           string    `json:"why_people_care"`
	WhatThisMeans           string    `json:"what_this_means"`
	WhatLikelyDoesNotChange *string   `json:"what_likely_does_not_change,omitempty"`
	CreatedAt               time.Time `json:"created_at"`
	ExpiresAt               time.Time `json:"expires_at"`

	// PersonalizedImplications is filled per request by the selector and never persisted.
	PersonalizedImplications string `json:"personalized_implications,omitempty"`
}

// SearchableText is the text the geographic match looks in.
func (e Event) SearchableText() string {
	return strings.Join([]string{e.Title, e.WhatHappened, e.WhyPeopleCare, e.WhatThisMeans}, " ")
}

// ScoredEvent pairs an event with its relevance to one profile at one evaluation time.
type ScoredEvent struct {
	Event Event `json:"event"`
	Score int   `json:"score"`
}

// EventFields are the editable narrative fields shared by events, drafts and extraction output.
type EventFields struct {
	Title                   string   `json:"title"`
	Date                    string   `json:"date"`
	Category                Category `json:"category"`
	WhatHappened            string   `json:"what_happened"`
	WhyPeopleCare           string   `json:"why_people_care"`
	WhatThisMeans           string   `json:"what_this_means"`
	WhatLikelyDoesNotChange *string  `json:"what_likely_does_not_change"`
}

// ValidateEventFields applies the event creation contract: every required narrative field is
// non-blank, the category is in the fixed set and the date, when given, is a calendar date.
// All violations are reported together.
func ValidateEventFields(fields EventFields) error {
	verr := &ValidationError{}

	required := []struct {
		name  string
		value string
	}{
		{"title", fields.Title},
		{"what_happened", fields.WhatHappened},
		{"why_people_care", fields.WhyPeopleCare},
		{"what_this_means", fields.WhatThisMeans},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			verr.MissingFields = append(verr.MissingFields, r.name)
		}
	}

	if !fields.Category.IsValid() {
		verr.InvalidCategory = string(fields.Category)
		verr.CategoryInvalid = true
	}

	if fields.Date != "" {
		if _, err := time.Parse(DateLayout, fields.Date); err != nil {
			verr.InvalidDate = fields.Date
		}
	}

	if verr.HasViolations() {
		return verr
	}
	return nil
}

// NewEventFromFields builds an event ready for insertion. Date defaults to the current
// calendar date of now.
func NewEventFromFields(id string, fields EventFields, now time.Time, lifetime time.Duration) Event {
	date := fields.Date
	if date == "" {
		date = now.Format(DateLayout)
	}

	var notChange *string
	if fields.WhatLikelyDoesNotChange != nil && strings.TrimSpace(*fields.WhatLikelyDoesNotChange) != "" {
		trimmed := strings.TrimSpace(*fields.WhatLikelyDoesNotChange)
		notChange = &trimmed
	}

	return Event{
		ID:                      id,
		Title:                   strings.TrimSpace(fields.Title),
		Date:                    date,
		Category:                fields.Category,
		WhatHappened:            strings.TrimSpace(fields.WhatHappened),
		WhyPeopleCare:           strings.TrimSpace(fields.WhyPeopleCare),
		WhatThisMeans:           strings.TrimSpace(fields.WhatThisMeans),
		WhatLikelyDoesNotChange: notChange,
		CreatedAt:               now,
		ExpiresAt:               now.Add(lifetime),
	}
}
