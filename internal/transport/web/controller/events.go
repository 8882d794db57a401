package controller

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/oneevent/oneevent-api/internal/command"
	"github.com/oneevent/oneevent-api/internal/domain"
)

// topEventsLimit caps n on the top events endpoint.
const topEventsLimit = 50

// ActiveEventGet serves the single event the user should see now, or null data when nothing is
// active.
type ActiveEventGet struct {
	Command command.Command[command.SelectActiveEventRequest, command.SelectActiveEventResponse]
}

func (c ActiveEventGet) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	res, err := c.Command.Execute(ctx, command.SelectActiveEventRequest{UserID: domain.UserIDFromContext(ctx)})
	if err != nil {
		writeError(ctx, w, err, "unable to select active event")
		return
	}

	if res.Event == nil {
		writeJSON(ctx, w, http.StatusOK, dataResponse{Data: nil})
		return
	}

	event, err := newScoredEventResponse(*res.Event)
	if err != nil {
		writeError(ctx, w, err, "unable to render active event")
		return
	}

	w.Header().Set("Cache-Control", "no-store")
	writeJSON(ctx, w, http.StatusOK, dataResponse{Data: event})
}

type TopEventsList struct {
	Command command.Command[command.SelectTopEventsRequest, command.SelectTopEventsResponse]
}

func (c TopEventsList) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := domain.LoggerFromContext(ctx)

	limit, err := limitFromQuery(r)
	if err != nil {
		logger.WarnContext(ctx, "unable to parse limit in query string", "error", err)
		writeJSON(ctx, w, http.StatusBadRequest, errorResponse{Message: err.Error()})
		return
	}

	res, err := c.Command.Execute(ctx, command.SelectTopEventsRequest{
		UserID: domain.UserIDFromContext(ctx),
		Limit:  limit,
	})
	if err != nil {
		writeError(ctx, w, err, "unable to select top events")
		return
	}

	events := make([]scoredEventResponse, 0, len(res.Events))
	for _, scored := range res.Events {
		event, err := newScoredEventResponse(scored)
		if err != nil {
			writeError(ctx, w, err, "unable to render event")
			return
		}
		events = append(events, event)
	}

	w.Header().Set("Cache-Control", "no-store")
	writeJSON(ctx, w, http.StatusOK, dataResponse{Data: events})
}

func limitFromQuery(r *http.Request) (int, error) {
	q := r.URL.Query()
	if !q.Has("n") {
		return 0, nil
	}

	n, err := strconv.Atoi(q.Get("n"))
	if err != nil {
		return 0, fmt.Errorf("unable to parse n from query: %w", err)
	}
	if n < 1 || n > topEventsLimit {
		return 0, fmt.Errorf("n [%d] must be between 1 and %d", n, topEventsLimit)
	}
	return n, nil
}
