package command

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/oneevent/oneevent-api/internal/domain"
)

// Command is the generic interface for all commands.
// Req is the request type and Res is the result type.
type Command[Req, Res any] interface {
	Execute(ctx context.Context, req Req) (Res, error)
}

// Empty is used as the result type for commands that only return an error.
type Empty struct{}

// ImplicationsFormatter renders an event's implications for one reader.
type ImplicationsFormatter interface {
	FormatImplications(event domain.Event, profile domain.UserProfile) string
}

// EventConfig holds settings shared by the commands that create events.
type EventConfig struct {
	// Lifetime is how long a new event stays in the feed before it expires.
	Lifetime time.Duration
}

// DefaultEventLifetime is one week.
const DefaultEventLifetime = 7 * 24 * time.Hour

func newID() string {
	return uuid.NewString()
}
