package command

import (
	"context"
	"time"

	"github.com/oneevent/oneevent-api/internal/datasources"
	"github.com/oneevent/oneevent-api/internal/domain"
)

// SelectTopEventsRequest asks for the best Limit events; Limit <= 0 returns every ranked event.
type SelectTopEventsRequest struct {
	UserID string
	Limit  int
}

type SelectTopEventsResponse struct {
	Events []domain.ScoredEvent
}

// SelectTopEvents ranks active events for a user without recording anything.
type SelectTopEvents struct {
	ranker eventRanker
	Now    func() time.Time
}

func NewSelectTopEvents(
	profileGetter datasources.UserProfileGetter,
	eventLister datasources.ActiveEventLister,
	formatter ImplicationsFormatter,
	config SelectEventsConfig,
) *SelectTopEvents {
	return &SelectTopEvents{
		ranker: eventRanker{
			ProfileGetter: profileGetter,
			EventLister:   eventLister,
			Formatter:     formatter,
			Config:        config,
		},
		Now: time.Now,
	}
}

func (c *SelectTopEvents) Execute(ctx context.Context, req SelectTopEventsRequest) (SelectTopEventsResponse, error) {
	ranked, profile, err := c.ranker.rank(ctx, req.UserID, c.Now())
	if err != nil {
		return SelectTopEventsResponse{}, err
	}

	if req.Limit > 0 && len(ranked) > req.Limit {
		ranked = ranked[:req.Limit]
	}

	events := make([]domain.ScoredEvent, 0, len(ranked))
	for _, scored := range ranked {
		events = append(events, c.ranker.personalize(scored, profile))
	}

	return SelectTopEventsResponse{Events: events}, nil
}
