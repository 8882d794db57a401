package datasources

import (
	"context"

	"github.com/oneevent/oneevent-api/internal/domain"
)

type DraftInserter interface {
	InsertDraft(ctx context.Context, draft domain.EventDraft) error
}

// DraftGetter retrieves a draft, returning domain.ErrNotFound if it does not exist.
type DraftGetter interface {
	GetDraft(ctx context.Context, draftID string) (domain.EventDraft, error)
}

// DraftUpdater overwrites a draft's fields, payload, status and extraction error.
// It returns domain.ErrNotFound if the draft does not exist.
type DraftUpdater interface {
	UpdateDraft(ctx context.Context, draft domain.EventDraft) error
}

// DraftLister lists drafts newest first.
type DraftLister interface {
	ListDrafts(ctx context.Context, filter domain.DraftFilter) ([]domain.EventDraft, error)
}

// DraftDeleter removes a draft, returning domain.ErrNotFound if it does not exist.
type DraftDeleter interface {
	DeleteDraft(ctx context.Context, draftID string) error
}

// DraftPublisher inserts the event and marks the draft published atomically. It fails with
// domain.ErrInvalidStatusTransition if the draft is no longer in draft status.
type DraftPublisher interface {
	PublishDraft(ctx context.Context, draftID string, event domain.Event) error
}

// DraftRepository combines all draft operations.
type DraftRepository interface {
	DraftInserter
	DraftGetter
	DraftUpdater
	DraftLister
	DraftDeleter
	DraftPublisher
}
