package mysql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/huandu/go-sqlbuilder"

	"github.com/oneevent/oneevent-api/internal/domain"
)

var draftColumns = []string{
	"id",
	"source_url",
	"raw_payload",
	"title",
	"event_date",
	"category",
	"what_happened",
	"why_people_care",
	"what_this_means",
	"what_likely_does_not_change",
	"status",
	"extraction_error",
	"created_at",
	"updated_at",
}

func (r *Repository) InsertDraft(ctx context.Context, draft domain.EventDraft) error {
	ib := sqlbuilder.InsertInto("event_drafts")
	ib.Cols(draftColumns...)
	ib.Values(
		draft.ID,
		draft.SourceURL,
		rawPayload(draft.RawPayload),
		draft.Fields.Title,
		draft.Fields.Date,
		string(draft.Fields.Category),
		draft.Fields.WhatHappened,
		draft.Fields.WhyPeopleCare,
		draft.Fields.WhatThisMeans,
		nullString(draft.Fields.WhatLikelyDoesNotChange),
		string(draft.Status),
		draft.ExtractionError,
		draft.CreatedAt,
		draft.UpdatedAt,
	)

	query, args := ib.Build()
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("inserting draft: %w", err)
	}
	return nil
}

func (r *Repository) GetDraft(ctx context.Context, draftID string) (domain.EventDraft, error) {
	sb := sqlbuilder.Select(draftColumns...)
	sb.From("event_drafts")
	sb.Where(sb.Equal("id", draftID))

	query, args := sb.Build()
	draft, err := scanDraft(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return domain.EventDraft{}, fmt.Errorf("draft [%s]: %w", draftID, domain.ErrNotFound)
	}
	if err != nil {
		return domain.EventDraft{}, fmt.Errorf("fetching draft: %w", err)
	}
	return draft, nil
}

func (r *Repository) UpdateDraft(ctx context.Context, draft domain.EventDraft) error {
	ub := sqlbuilder.Update("event_drafts")
	ub.Set(
		ub.Assign("raw_payload", rawPayload(draft.RawPayload)),
		ub.Assign("title", draft.Fields.Title),
		ub.Assign("event_date", draft.Fields.Date),
		ub.Assign("category", string(draft.Fields.Category)),
		ub.Assign("what_happened", draft.Fields.WhatHappened),
		ub.Assign("why_people_care", draft.Fields.WhyPeopleCare),
		ub.Assign("what_this_means", draft.Fields.WhatThisMeans),
		ub.Assign("what_likely_does_not_change", nullString(draft.Fields.WhatLikelyDoesNotChange)),
		ub.Assign("status", string(draft.Status)),
		ub.Assign("extraction_error", draft.ExtractionError),
		ub.Assign("updated_at", draft.UpdatedAt),
	)
	ub.Where(ub.Equal("id", draft.ID))

	query, args := ub.Build()
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("updating draft: %w", err)
	}

	// Connections use clientFoundRows, so this counts matched rows rather than changed ones.
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking updated rows: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("draft [%s]: %w", draft.ID, domain.ErrNotFound)
	}
	return nil
}

func (r *Repository) ListDrafts(ctx context.Context, filter domain.DraftFilter) ([]domain.EventDraft, error) {
	sb := sqlbuilder.Select(draftColumns...)
	sb.From("event_drafts")
	if filter.Status != nil {
		sb.Where(sb.Equal("status", string(*filter.Status)))
	}
	sb.OrderBy("created_at DESC", "id ASC")

	query, args := sb.Build()
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("running drafts query: %w", err)
	}
	defer func() { _ = rows.Close() }()

	drafts := []domain.EventDraft{}
	for rows.Next() {
		draft, err := scanDraft(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning drafts: %w", err)
		}
		drafts = append(drafts, draft)
	}
	if err := closeRows(rows); err != nil {
		return nil, err
	}

	return drafts, nil
}

func (r *Repository) DeleteDraft(ctx context.Context, draftID string) error {
	db := sqlbuilder.DeleteFrom("event_drafts")
	db.Where(db.Equal("id", draftID))

	query, args := db.Build()
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("deleting draft: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking deleted rows: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("draft [%s]: %w", draftID, domain.ErrNotFound)
	}
	return nil
}

func (r *Repository) PublishDraft(ctx context.Context, draftID string, event domain.Event) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("starting transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	ub := sqlbuilder.Update("event_drafts")
	ub.Set(
		ub.Assign("status", string(domain.DraftStatusPublished)),
		ub.Assign("updated_at", event.CreatedAt),
	)
	ub.Where(
		ub.Equal("id", draftID),
		ub.Equal("status", string(domain.DraftStatusDraft)),
	)

	query, args := ub.Build()
	res, err := tx.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("marking draft published: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking updated rows: %w", err)
	}
	if affected == 0 {
		return r.explainUnpublishable(ctx, tx, draftID)
	}

	if err := insertEvent(ctx, tx, event); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	return nil
}

// explainUnpublishable distinguishes a missing draft from one that has left draft status.
func (r *Repository) explainUnpublishable(ctx context.Context, tx *sql.Tx, draftID string) error {
	sb := sqlbuilder.Select("status")
	sb.From("event_drafts")
	sb.Where(sb.Equal("id", draftID))

	query, args := sb.Build()
	var status string
	err := tx.QueryRowContext(ctx, query, args...).Scan(&status)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("draft [%s]: %w", draftID, domain.ErrNotFound)
	}
	if err != nil {
		return fmt.Errorf("fetching draft status: %w", err)
	}
	return domain.CheckTransition(domain.DraftStatus(status), domain.DraftStatusPublished)
}

func scanDraft(row rowScanner) (domain.EventDraft, error) {
	var (
		draft     domain.EventDraft
		payload   []byte
		category  string
		notChange sql.NullString
		status    string
	)
	if err := row.Scan(
		&draft.ID,
		&draft.SourceURL,
		&payload,
		&draft.Fields.Title,
		&draft.Fields.Date,
		&category,
		&draft.Fields.WhatHappened,
		&draft.Fields.WhyPeopleCare,
		&draft.Fields.WhatThisMeans,
		&notChange,
		&status,
		&draft.ExtractionError,
		&draft.CreatedAt,
		&draft.UpdatedAt,
	); err != nil {
		return domain.EventDraft{}, err
	}

	if len(payload) > 0 {
		draft.RawPayload = payload
	}
	draft.Fields.Category = domain.Category(category)
	draft.Fields.WhatLikelyDoesNotChange = stringPtr(notChange)
	draft.Status = domain.DraftStatus(status)
	return draft, nil
}

func rawPayload(payload []byte) any {
	if len(payload) == 0 {
		return nil
	}
	return string(payload)
}
