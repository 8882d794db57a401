package datasources

import (
	"context"
	"time"

	"github.com/oneevent/oneevent-api/internal/domain"
)

// ActiveEventLister lists events whose expiration is strictly after now, newest first.
type ActiveEventLister interface {
	ListActiveEvents(ctx context.Context, now time.Time) ([]domain.Event, error)
}

type EventInserter interface {
	InsertEvent(ctx context.Context, event domain.Event) error
}

// ReadReceiptRecorder records that a user was shown an event. Recording the same pair twice is
// not an error.
type ReadReceiptRecorder interface {
	RecordReadReceipt(ctx context.Context, userID, eventID string, readAt time.Time) error
}

// EventRepository combines all event operations.
type EventRepository interface {
	ActiveEventLister
	EventInserter
	ReadReceiptRecorder
}
