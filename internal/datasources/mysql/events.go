package mysql

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/huandu/go-sqlbuilder"

	"github.com/oneevent/oneevent-api/internal/domain"
)

var eventColumns = []string{
	"id",
	"title",
	"event_date",
	"category",
	"what_happened",
	"why_people_care",
	"what_this_means",
	"what_likely_does_not_change",
	"created_at",
	"expires_at",
}

func (r *Repository) ListActiveEvents(ctx context.Context, now time.Time) ([]domain.Event, error) {
	sb := sqlbuilder.Select(eventColumns...)
	sb.From("events")
	sb.Where(sb.GreaterThan("expires_at", now))
	sb.OrderBy("created_at DESC", "id ASC")

	query, args := sb.Build()
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("running active events query: %w", err)
	}
	defer func() { _ = rows.Close() }()

	events := []domain.Event{}
	for rows.Next() {
		event, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning events: %w", err)
		}
		events = append(events, event)
	}
	if err := closeRows(rows); err != nil {
		return nil, err
	}

	return events, nil
}

func (r *Repository) InsertEvent(ctx context.Context, event domain.Event) error {
	return insertEvent(ctx, r.db, event)
}

func insertEvent(ctx context.Context, db execer, event domain.Event) error {
	ib := sqlbuilder.InsertInto("events")
	ib.Cols(eventColumns...)
	ib.Values(
		event.ID,
		event.Title,
		event.Date,
		string(event.Category),
		event.WhatHappened,
		event.WhyPeopleCare,
		event.WhatThisMeans,
		nullString(event.WhatLikelyDoesNotChange),
		event.CreatedAt,
		event.ExpiresAt,
	)

	query, args := ib.Build()
	if _, err := db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("inserting event: %w", err)
	}
	return nil
}

func (r *Repository) RecordReadReceipt(ctx context.Context, userID, eventID string, readAt time.Time) error {
	ib := sqlbuilder.InsertIgnoreInto("read_receipts")
	ib.Cols("user_id", "event_id", "read_at")
	ib.Values(userID, eventID, readAt)

	query, args := ib.Build()
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("recording read receipt: %w", err)
	}
	return nil
}

func scanEvent(row rowScanner) (domain.Event, error) {
	var (
		event     domain.Event
		eventDate time.Time
		category  string
		notChange sql.NullString
	)
	if err := row.Scan(
		&event.ID,
		&event.Title,
		&eventDate,
		&category,
		&event.WhatHappened,
		&event.WhyPeopleCare,
		&event.WhatThisMeans,
		&notChange,
		&event.CreatedAt,
		&event.ExpiresAt,
	); err != nil {
		return domain.Event{}, err
	}

	event.Date = eventDate.Format(domain.DateLayout)
	event.Category = domain.Category(category)
	event.WhatLikelyDoesNotChange = stringPtr(notChange)
	return event, nil
}
