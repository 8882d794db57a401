package controller

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/oneevent/oneevent-api/internal/command"
	"github.com/oneevent/oneevent-api/internal/domain"
)

type extractionCreateBody struct {
	URL string `json:"url"`
}

// ExtractionCreate runs an extraction for a URL and stores the outcome as a draft. A failed
// extraction still returns the rejected draft next to the stage-tagged error.
type ExtractionCreate struct {
	Command command.Command[command.ExtractDraftRequest, domain.EventDraft]
}

func (c ExtractionCreate) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := domain.LoggerFromContext(ctx)

	var body extractionCreateBody
	if err := decodeBody(r, &body); err != nil {
		logger.WarnContext(ctx, "unable to decode extraction request", "error", err)
		writeJSON(ctx, w, http.StatusBadRequest, errorResponse{Message: "invalid request body"})
		return
	}

	draft, err := c.Command.Execute(ctx, command.ExtractDraftRequest{URL: body.URL})
	if err != nil {
		status := statusForError(err)
		resp := errorResponse{Message: err.Error(), Stage: domain.ExtractionStageOf(err)}
		if draft.ID != "" {
			resp.Draft = &draft
		}
		if status == http.StatusInternalServerError {
			logger.ErrorContext(ctx, "unable to extract event", "error", err)
			resp.Message = "internal server error"
		} else {
			logger.WarnContext(ctx, "extraction failed", "error", err, "stage", resp.Stage)
		}
		writeJSON(ctx, w, status, resp)
		return
	}

	writeJSON(ctx, w, http.StatusCreated, dataResponse{Data: draft})
}

type DraftsList struct {
	Command command.Command[command.ListDraftsRequest, []domain.EventDraft]
}

func (c DraftsList) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req command.ListDraftsRequest
	if q := r.URL.Query(); q.Has("status") {
		status := domain.DraftStatus(q.Get("status"))
		req.Status = &status
	}

	drafts, err := c.Command.Execute(ctx, req)
	if err != nil {
		writeError(ctx, w, err, "unable to list drafts")
		return
	}
	if drafts == nil {
		drafts = []domain.EventDraft{}
	}

	writeJSON(ctx, w, http.StatusOK, dataResponse{Data: drafts})
}

type draftCreateBody struct {
	SourceURL  string          `json:"source_url"`
	RawPayload json.RawMessage `json:"raw_payload"`
	domain.EventFields
}

type DraftCreate struct {
	Command command.Command[command.CreateDraftRequest, domain.EventDraft]
}

func (c DraftCreate) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := domain.LoggerFromContext(ctx)

	var body draftCreateBody
	if err := decodeBody(r, &body); err != nil {
		logger.WarnContext(ctx, "unable to decode draft", "error", err)
		writeJSON(ctx, w, http.StatusBadRequest, errorResponse{Message: "invalid request body"})
		return
	}

	draft, err := c.Command.Execute(ctx, command.CreateDraftRequest{
		SourceURL:  body.SourceURL,
		RawPayload: body.RawPayload,
		Fields:     body.EventFields,
	})
	if err != nil {
		writeError(ctx, w, err, "unable to create draft")
		return
	}

	writeJSON(ctx, w, http.StatusCreated, dataResponse{Data: draft})
}

type DraftUpdate struct {
	Command command.Command[command.UpdateDraftRequest, domain.EventDraft]
}

func (c DraftUpdate) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["draft_id"]
	logger := domain.LoggerFromContext(r.Context()).With("draft_id", id)
	ctx := domain.ContextWithLogger(r.Context(), logger)

	var patch domain.DraftPatch
	if err := decodeBody(r, &patch); err != nil {
		logger.WarnContext(ctx, "unable to decode draft patch", "error", err)
		writeJSON(ctx, w, http.StatusBadRequest, errorResponse{Message: "invalid request body"})
		return
	}

	draft, err := c.Command.Execute(ctx, command.UpdateDraftRequest{DraftID: id, Patch: patch})
	if err != nil {
		writeError(ctx, w, err, "unable to update draft")
		return
	}

	writeJSON(ctx, w, http.StatusOK, dataResponse{Data: draft})
}

type DraftDelete struct {
	Command command.Command[command.DeleteDraftRequest, command.Empty]
}

func (c DraftDelete) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["draft_id"]
	ctx := domain.ContextWithLogger(r.Context(), domain.LoggerFromContext(r.Context()).With("draft_id", id))

	if _, err := c.Command.Execute(ctx, command.DeleteDraftRequest{DraftID: id}); err != nil {
		writeError(ctx, w, err, "unable to delete draft")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

type DraftPublish struct {
	Command command.Command[command.PublishDraftRequest, domain.Event]
}

func (c DraftPublish) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["draft_id"]
	ctx := domain.ContextWithLogger(r.Context(), domain.LoggerFromContext(r.Context()).With("draft_id", id))

	event, err := c.Command.Execute(ctx, command.PublishDraftRequest{DraftID: id})
	if err != nil {
		writeError(ctx, w, err, "unable to publish draft")
		return
	}

	writeJSON(ctx, w, http.StatusCreated, dataResponse{Data: event})
}

type DraftReject struct {
	Command command.Command[command.RejectDraftRequest, domain.EventDraft]
}

func (c DraftReject) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["draft_id"]
	ctx := domain.ContextWithLogger(r.Context(), domain.LoggerFromContext(r.Context()).With("draft_id", id))

	draft, err := c.Command.Execute(ctx, command.RejectDraftRequest{DraftID: id})
	if err != nil {
		writeError(ctx, w, err, "unable to reject draft")
		return
	}

	writeJSON(ctx, w, http.StatusOK, dataResponse{Data: draft})
}

// EventCreate publishes an event directly from admin-entered fields.
type EventCreate struct {
	Command command.Command[command.CreateEventRequest, domain.Event]
}

func (c EventCreate) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := domain.LoggerFromContext(ctx)

	var fields domain.EventFields
	if err := decodeBody(r, &fields); err != nil {
		logger.WarnContext(ctx, "unable to decode event", "error", err)
		writeJSON(ctx, w, http.StatusBadRequest, errorResponse{Message: "invalid request body"})
		return
	}

	event, err := c.Command.Execute(ctx, command.CreateEventRequest{Fields: fields})
	if err != nil {
		writeError(ctx, w, err, "unable to create event")
		return
	}

	writeJSON(ctx, w, http.StatusCreated, dataResponse{Data: event})
}
