package command

import (
	"context"
	"fmt"
	"time"

	"github.com/oneevent/oneevent-api/internal/content"
	"github.com/oneevent/oneevent-api/internal/datasources"
	"github.com/oneevent/oneevent-api/internal/domain"
)

type ExtractDraftRequest struct {
	URL string
}

// ExtractDraft records an extraction as a draft. The draft is stored as extracting first, then
// moves to draft with the extracted fields, or to rejected with the failure message.
type ExtractDraft struct {
	Extractor     Command[ExtractEventRequest, domain.ExtractedEvent]
	DraftInserter datasources.DraftInserter
	DraftUpdater  datasources.DraftUpdater
	Now           func() time.Time
	NewID         func() string
}

func NewExtractDraft(
	extractor Command[ExtractEventRequest, domain.ExtractedEvent],
	draftInserter datasources.DraftInserter,
	draftUpdater datasources.DraftUpdater,
) *ExtractDraft {
	return &ExtractDraft{
		Extractor:     extractor,
		DraftInserter: draftInserter,
		DraftUpdater:  draftUpdater,
		Now:           time.Now,
		NewID:         newID,
	}
}

// Execute returns the stored draft. When extraction fails the rejected draft is returned along
// with the stage-tagged extraction error.
func (c *ExtractDraft) Execute(ctx context.Context, req ExtractDraftRequest) (domain.EventDraft, error) {
	logger := domain.LoggerFromContext(ctx)

	url, err := content.NormalizeURL(req.URL)
	if err != nil {
		return domain.EventDraft{}, &domain.ExtractionError{Stage: domain.StageFetch, Err: err}
	}

	now := c.Now()
	draft := domain.EventDraft{
		ID:        c.NewID(),
		SourceURL: url,
		Status:    domain.DraftStatusExtracting,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := c.DraftInserter.InsertDraft(ctx, draft); err != nil {
		return domain.EventDraft{}, fmt.Errorf("inserting extracting draft: %w", err)
	}

	extracted, extractErr := c.Extractor.Execute(ctx, ExtractEventRequest{URL: url})

	next := domain.DraftStatusDraft
	if extractErr != nil {
		next = domain.DraftStatusRejected
	}
	if err := domain.CheckTransition(draft.Status, next); err != nil {
		return domain.EventDraft{}, err
	}

	draft.Status = next
	draft.UpdatedAt = c.Now()
	if extractErr != nil {
		draft.ExtractionError = extractErr.Error()
		logger.InfoContext(ctx, "extraction failed, draft rejected",
			"draft_id", draft.ID, "url", url, "stage", domain.ExtractionStageOf(extractErr), "error", extractErr)
	} else {
		draft.SourceURL = extracted.SourceURL
		draft.Fields = extracted.Fields
		draft.RawPayload = extracted.RawPayload
	}

	if err := c.DraftUpdater.UpdateDraft(ctx, draft); err != nil {
		if extractErr != nil {
			logger.ErrorContext(ctx, "failed to record extraction failure on draft",
				"draft_id", draft.ID, "error", err)
			return draft, extractErr
		}
		return domain.EventDraft{}, fmt.Errorf("storing extracted draft: %w", err)
	}

	return draft, extractErr
}
