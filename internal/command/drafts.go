package command

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/oneevent/oneevent-api/internal/datasources"
	"github.com/oneevent/oneevent-api/internal/domain"
)

// CreateDraftRequest holds a possibly partial draft; fields are not validated until publishing.
type CreateDraftRequest struct {
	SourceURL  string
	RawPayload json.RawMessage
	Fields     domain.EventFields
}

type CreateDraft struct {
	DraftInserter datasources.DraftInserter
	Now           func() time.Time
	NewID         func() string
}

func NewCreateDraft(draftInserter datasources.DraftInserter) *CreateDraft {
	return &CreateDraft{DraftInserter: draftInserter, Now: time.Now, NewID: newID}
}

func (c *CreateDraft) Execute(ctx context.Context, req CreateDraftRequest) (domain.EventDraft, error) {
	now := c.Now()
	draft := domain.EventDraft{
		ID:         c.NewID(),
		SourceURL:  req.SourceURL,
		RawPayload: req.RawPayload,
		Fields:     req.Fields,
		Status:     domain.DraftStatusDraft,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := c.DraftInserter.InsertDraft(ctx, draft); err != nil {
		return domain.EventDraft{}, fmt.Errorf("inserting draft: %w", err)
	}
	return draft, nil
}

type UpdateDraftRequest struct {
	DraftID string
	Patch   domain.DraftPatch
}

// UpdateDraft applies a partial edit to a draft that has not been published or rejected.
type UpdateDraft struct {
	DraftGetter  datasources.DraftGetter
	DraftUpdater datasources.DraftUpdater
	Now          func() time.Time
}

func NewUpdateDraft(draftGetter datasources.DraftGetter, draftUpdater datasources.DraftUpdater) *UpdateDraft {
	return &UpdateDraft{DraftGetter: draftGetter, DraftUpdater: draftUpdater, Now: time.Now}
}

func (c *UpdateDraft) Execute(ctx context.Context, req UpdateDraftRequest) (domain.EventDraft, error) {
	draft, err := c.DraftGetter.GetDraft(ctx, req.DraftID)
	if err != nil {
		return domain.EventDraft{}, fmt.Errorf("fetching draft: %w", err)
	}
	if draft.Status.IsTerminal() {
		return domain.EventDraft{}, fmt.Errorf("%w: draft [%s] is %s", domain.ErrDraftNotEditable, draft.ID, draft.Status)
	}
	if req.Patch.IsEmpty() {
		return draft, nil
	}

	draft.Fields = req.Patch.Apply(draft.Fields)
	draft.UpdatedAt = c.Now()

	if err := c.DraftUpdater.UpdateDraft(ctx, draft); err != nil {
		return domain.EventDraft{}, fmt.Errorf("updating draft: %w", err)
	}
	return draft, nil
}

type ListDraftsRequest struct {
	Status *domain.DraftStatus
}

type ListDrafts struct {
	DraftLister datasources.DraftLister
}

func NewListDrafts(draftLister datasources.DraftLister) *ListDrafts {
	return &ListDrafts{DraftLister: draftLister}
}

func (c *ListDrafts) Execute(ctx context.Context, req ListDraftsRequest) ([]domain.EventDraft, error) {
	if req.Status != nil && !req.Status.IsValid() {
		return nil, fmt.Errorf("%w: [%s]", domain.ErrInvalidDraftStatus, *req.Status)
	}

	drafts, err := c.DraftLister.ListDrafts(ctx, domain.DraftFilter{Status: req.Status})
	if err != nil {
		return nil, fmt.Errorf("listing drafts: %w", err)
	}
	return drafts, nil
}

type DeleteDraftRequest struct {
	DraftID string
}

// DeleteDraft removes a draft in any status.
type DeleteDraft struct {
	DraftDeleter datasources.DraftDeleter
}

func NewDeleteDraft(draftDeleter datasources.DraftDeleter) *DeleteDraft {
	return &DeleteDraft{DraftDeleter: draftDeleter}
}

func (c *DeleteDraft) Execute(ctx context.Context, req DeleteDraftRequest) (Empty, error) {
	if err := c.DraftDeleter.DeleteDraft(ctx, req.DraftID); err != nil {
		return Empty{}, fmt.Errorf("deleting draft: %w", err)
	}
	return Empty{}, nil
}

type RejectDraftRequest struct {
	DraftID string
}

type RejectDraft struct {
	DraftGetter  datasources.DraftGetter
	DraftUpdater datasources.DraftUpdater
	Now          func() time.Time
}

func NewRejectDraft(draftGetter datasources.DraftGetter, draftUpdater datasources.DraftUpdater) *RejectDraft {
	return &RejectDraft{DraftGetter: draftGetter, DraftUpdater: draftUpdater, Now: time.Now}
}

func (c *RejectDraft) Execute(ctx context.Context, req RejectDraftRequest) (domain.EventDraft, error) {
	draft, err := c.DraftGetter.GetDraft(ctx, req.DraftID)
	if err != nil {
		return domain.EventDraft{}, fmt.Errorf("fetching draft: %w", err)
	}
	if err := domain.CheckTransition(draft.Status, domain.DraftStatusRejected); err != nil {
		return domain.EventDraft{}, err
	}

	draft.Status = domain.DraftStatusRejected
	draft.UpdatedAt = c.Now()
	if err := c.DraftUpdater.UpdateDraft(ctx, draft); err != nil {
		return domain.EventDraft{}, fmt.Errorf("rejecting draft: %w", err)
	}
	return draft, nil
}
