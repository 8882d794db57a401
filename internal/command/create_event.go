package command

import (
	"context"
	"fmt"
	"time"

	"github.com/oneevent/oneevent-api/internal/datasources"
	"github.com/oneevent/oneevent-api/internal/domain"
)

type CreateEventRequest struct {
	Fields domain.EventFields
}

// CreateEvent publishes an event directly, without going through a draft.
type CreateEvent struct {
	EventInserter datasources.EventInserter
	Config        EventConfig
	Now           func() time.Time
	NewID         func() string
}

func NewCreateEvent(eventInserter datasources.EventInserter, config EventConfig) *CreateEvent {
	return &CreateEvent{
		EventInserter: eventInserter,
		Config:        config,
		Now:           time.Now,
		NewID:         newID,
	}
}

func (c *CreateEvent) Execute(ctx context.Context, req CreateEventRequest) (domain.Event, error) {
	if err := domain.ValidateEventFields(req.Fields); err != nil {
		return domain.Event{}, err
	}

	event := domain.NewEventFromFields(c.NewID(), req.Fields, c.Now(), c.Config.Lifetime)
	if err := c.EventInserter.InsertEvent(ctx, event); err != nil {
		return domain.Event{}, fmt.Errorf("inserting event: %w", err)
	}
	return event, nil
}
