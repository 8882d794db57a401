package command

import (
	"context"
	"fmt"
	"time"

	"github.com/oneevent/oneevent-api/internal/datasources"
	"github.com/oneevent/oneevent-api/internal/domain"
)

type PublishDraftRequest struct {
	DraftID string
}

// PublishDraft validates a draft like a manually created event, stores the event and marks the
// draft published.
type PublishDraft struct {
	DraftGetter    datasources.DraftGetter
	DraftPublisher datasources.DraftPublisher
	Config         EventConfig
	Now            func() time.Time
	NewID          func() string
}

func NewPublishDraft(
	draftGetter datasources.DraftGetter,
	draftPublisher datasources.DraftPublisher,
	config EventConfig,
) *PublishDraft {
	return &PublishDraft{
		DraftGetter:    draftGetter,
		DraftPublisher: draftPublisher,
		Config:         config,
		Now:            time.Now,
		NewID:          newID,
	}
}

func (c *PublishDraft) Execute(ctx context.Context, req PublishDraftRequest) (domain.Event, error) {
	draft, err := c.DraftGetter.GetDraft(ctx, req.DraftID)
	if err != nil {
		return domain.Event{}, fmt.Errorf("fetching draft: %w", err)
	}
	if err := domain.CheckTransition(draft.Status, domain.DraftStatusPublished); err != nil {
		return domain.Event{}, err
	}
	if err := domain.ValidateEventFields(draft.Fields); err != nil {
		return domain.Event{}, err
	}

	event := domain.NewEventFromFields(c.NewID(), draft.Fields, c.Now(), c.Config.Lifetime)
	if err := c.DraftPublisher.PublishDraft(ctx, draft.ID, event); err != nil {
		return domain.Event{}, fmt.Errorf("publishing draft: %w", err)
	}

	domain.LoggerFromContext(ctx).InfoContext(ctx, "draft published",
		"draft_id", draft.ID, "event_id", event.ID, "category", event.Category)
	return event, nil
}
