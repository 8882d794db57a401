package domain

import (
	"encoding/json"
	"fmt"
	"time"
)

// DraftStatus is the lifecycle state of an EventDraft.
type DraftStatus string

const (
	DraftStatusExtracting DraftStatus = "extracting"
	DraftStatusDraft      DraftStatus = "draft"
	DraftStatusPublished  DraftStatus = "published"
	DraftStatusRejected   DraftStatus = "rejected"
)

var ValidDraftStatuses = []DraftStatus{
	DraftStatusExtracting,
	DraftStatusDraft,
	DraftStatusPublished,
	DraftStatusRejected,
}

func (s DraftStatus) IsValid() bool {
	for _, valid := range ValidDraftStatuses {
		if s == valid {
			return true
		}
	}
	return false
}

// IsTerminal reports whether no further transitions or edits are allowed.
func (s DraftStatus) IsTerminal() bool {
	return s == DraftStatusPublished || s == DraftStatusRejected
}

// CanTransitionTo enforces the forward-only lifecycle:
// extracting -> draft -> {published | rejected}, with extracting -> rejected for failed extractions.
func (s DraftStatus) CanTransitionTo(next DraftStatus) bool {
	switch s {
	case DraftStatusExtracting:
		return next == DraftStatusDraft || next == DraftStatusRejected
	case DraftStatusDraft:
		return next == DraftStatusPublished || next == DraftStatusRejected
	default:
		return false
	}
}

// CheckTransition returns ErrInvalidStatusTransition when from cannot move to to.
func CheckTransition(from, to DraftStatus) error {
	if !from.CanTransitionTo(to) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidStatusTransition, from, to)
	}
	return nil
}

// EventDraft is an editable precursor to an Event, usually produced by AI extraction.
// Narrative fields are filled progressively and are not validated until publishing.
type EventDraft struct {
	ID              string          `json:"id"`
	SourceURL       string          `json:"source_url"`
	RawPayload      json.RawMessage `json:"raw_payload,omitempty"`
	Fields          EventFields     `json:"fields"`
	Status          DraftStatus     `json:"status"`
	ExtractionError string          `json:"extraction_error,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// DraftPatch is a partial update of a draft's narrative fields; nil members are left unchanged.
type DraftPatch struct {
	Title                   *string   `json:"title,omitempty"`
	Date                    *string   `json:"date,omitempty"`
	Category                *Category `json:"category,omitempty"`
	WhatHappened            *string   `json:"what_happened,omitempty"`
	WhyPeopleCare           *string   `json:"why_people_care,omitempty"`
	WhatThisMeans           *string   `json:"what_this_means,omitempty"`
	WhatLikelyDoesNotChange *string   `json:"what_likely_does_not_change,omitempty"`
}

// IsEmpty reports whether the patch changes nothing.
func (p DraftPatch) IsEmpty() bool {
	return p == DraftPatch{}
}

// Apply returns fields with every non-nil patch member written over it.
func (p DraftPatch) Apply(fields EventFields) EventFields {
	if p.Title != nil {
		fields.Title = *p.Title
	}
	if p.Date != nil {
		fields.Date = *p.Date
	}
	if p.Category != nil {
		fields.Category = *p.Category
	}
	if p.WhatHappened != nil {
		fields.WhatHappened = *p.WhatHappened
	}
	if p.WhyPeopleCare != nil {
		fields.WhyPeopleCare = *p.WhyPeopleCare
	}
	if p.WhatThisMeans != nil {
		fields.WhatThisMeans = *p.WhatThisMeans
	}
	if p.WhatLikelyDoesNotChange != nil {
		value := *p.WhatLikelyDoesNotChange
		fields.WhatLikelyDoesNotChange = &value
	}
	return fields
}

// DraftFilter narrows a draft listing. A nil Status lists every draft.
type DraftFilter struct {
	Status *DraftStatus
}
