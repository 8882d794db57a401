package command

import (
	"context"
	"fmt"
	"time"

	"github.com/oneevent/oneevent-api/internal/datasources"
	"github.com/oneevent/oneevent-api/internal/domain"
)

type SelectActiveEventRequest struct {
	UserID string
}

// SelectActiveEventResponse holds the single event to show. Event is nil when the user has no
// profile or no event is active.
type SelectActiveEventResponse struct {
	Event *domain.ScoredEvent
}

// SelectActiveEvent picks the one event a user should see now and records that it was shown.
type SelectActiveEvent struct {
	ranker              eventRanker
	ReadReceiptRecorder datasources.ReadReceiptRecorder
	Now                 func() time.Time
}

func NewSelectActiveEvent(
	profileGetter datasources.UserProfileGetter,
	eventLister datasources.ActiveEventLister,
	readReceiptRecorder datasources.ReadReceiptRecorder,
	formatter ImplicationsFormatter,
	config SelectEventsConfig,
) *SelectActiveEvent {
	return &SelectActiveEvent{
		ranker: eventRanker{
			ProfileGetter: profileGetter,
			EventLister:   eventLister,
			Formatter:     formatter,
			Config:        config,
		},
		ReadReceiptRecorder: readReceiptRecorder,
		Now:                 time.Now,
	}
}

func (c *SelectActiveEvent) Execute(ctx context.Context, req SelectActiveEventRequest) (SelectActiveEventResponse, error) {
	now := c.Now()

	ranked, profile, err := c.ranker.rank(ctx, req.UserID, now)
	if err != nil {
		return SelectActiveEventResponse{}, err
	}
	if len(ranked) == 0 {
		return SelectActiveEventResponse{}, nil
	}

	selected := c.ranker.personalize(ranked[0], profile)

	if err := c.ReadReceiptRecorder.RecordReadReceipt(ctx, req.UserID, selected.Event.ID, now); err != nil {
		return SelectActiveEventResponse{}, fmt.Errorf("recording read receipt: %w", err)
	}

	return SelectActiveEventResponse{Event: &selected}, nil
}
