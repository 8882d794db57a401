package controller

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/oneevent/oneevent-api/internal/content"
	"github.com/oneevent/oneevent-api/internal/domain"
)

type dataResponse struct {
	Data any `json:"data"`
}

type errorResponse struct {
	Message string                 `json:"message"`
	Stage   domain.ExtractionStage `json:"stage,omitempty"`
	Draft   *domain.EventDraft     `json:"draft,omitempty"`
}

func writeJSON(ctx context.Context, w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger := domain.LoggerFromContext(ctx)
		logger.ErrorContext(ctx, "unable to write response", "error", err)
	}
}

// writeError logs err and writes it with the status statusForError picks. Server errors get a
// generic message; everything else is actionable and returned as is.
func writeError(ctx context.Context, w http.ResponseWriter, err error, logMessage string) {
	status := statusForError(err)
	logger := domain.LoggerFromContext(ctx)

	resp := errorResponse{Message: err.Error(), Stage: domain.ExtractionStageOf(err)}
	if status >= http.StatusInternalServerError && status != http.StatusBadGateway {
		logger.ErrorContext(ctx, logMessage, "error", err)
		resp.Message = "internal server error"
	} else {
		logger.WarnContext(ctx, logMessage, "error", err, "status", status)
	}

	writeJSON(ctx, w, status, resp)
}

func statusForError(err error) int {
	var fetchErr *domain.FetchError
	var parseErr *domain.ParseError
	var validationErr *domain.ValidationError

	switch {
	case errors.Is(err, domain.ErrInvalidURL),
		errors.Is(err, domain.ErrInvalidPreferences),
		errors.Is(err, domain.ErrInvalidDraftStatus):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrInvalidStatusTransition),
		errors.Is(err, domain.ErrDraftNotEditable):
		return http.StatusConflict
	case errors.As(err, &validationErr),
		errors.As(err, &parseErr),
		errors.Is(err, domain.ErrInsufficientContent):
		return http.StatusUnprocessableEntity
	case errors.As(err, &fetchErr):
		return http.StatusBadGateway
	}

	switch domain.ExtractionStageOf(err) {
	case domain.StageFetch, domain.StageModel:
		return http.StatusBadGateway
	case domain.StageContent, domain.StageParse, domain.StageValidation:
		return http.StatusUnprocessableEntity
	}
	return http.StatusInternalServerError
}

func decodeBody(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}

type eventResponse struct {
	domain.Event
	WhatThisMeansHTML string `json:"what_this_means_html"`
}

type scoredEventResponse struct {
	Event            eventResponse `json:"event"`
	Score            int           `json:"score"`
	ImplicationsHTML string        `json:"implications_html,omitempty"`
}

func newEventResponse(event domain.Event) (eventResponse, error) {
	html, err := content.RenderMarkdown(event.WhatThisMeans)
	if err != nil {
		return eventResponse{}, err
	}
	return eventResponse{Event: event, WhatThisMeansHTML: html}, nil
}

func newScoredEventResponse(scored domain.ScoredEvent) (scoredEventResponse, error) {
	event, err := newEventResponse(scored.Event)
	if err != nil {
		return scoredEventResponse{}, err
	}

	var implications string
	if scored.Event.PersonalizedImplications != "" {
		implications, err = content.RenderMarkdown(scored.Event.PersonalizedImplications)
		if err != nil {
			return scoredEventResponse{}, err
		}
	}

	return scoredEventResponse{Event: event, Score: scored.Score, ImplicationsHTML: implications}, nil
}
