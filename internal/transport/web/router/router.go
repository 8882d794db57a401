package router

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/oneevent/oneevent-api/internal/command"
	"github.com/oneevent/oneevent-api/internal/datasources"
	"github.com/oneevent/oneevent-api/internal/domain"
	"github.com/oneevent/oneevent-api/internal/transport/web/controller"
)

// Commands groups the commands the HTTP surface dispatches to.
type Commands struct {
	GetProfile        command.Command[command.GetProfileRequest, domain.UserProfile]
	UpdatePreferences command.Command[command.UpdatePreferencesRequest, domain.UserProfile]
	SelectActiveEvent command.Command[command.SelectActiveEventRequest, command.SelectActiveEventResponse]
	SelectTopEvents   command.Command[command.SelectTopEventsRequest, command.SelectTopEventsResponse]
	ExtractDraft      command.Command[command.ExtractDraftRequest, domain.EventDraft]
	ListDrafts        command.Command[command.ListDraftsRequest, []domain.EventDraft]
	CreateDraft       command.Command[command.CreateDraftRequest, domain.EventDraft]
	UpdateDraft       command.Command[command.UpdateDraftRequest, domain.EventDraft]
	DeleteDraft       command.Command[command.DeleteDraftRequest, command.Empty]
	PublishDraft      command.Command[command.PublishDraftRequest, domain.Event]
	RejectDraft       command.Command[command.RejectDraftRequest, domain.EventDraft]
	CreateEvent       command.Command[command.CreateEventRequest, domain.Event]
}

type RSSConfig struct {
	BaseURL     string
	AuthorName  string
	AuthorEmail string
	CacheMaxAge time.Duration
}

func MakeRouter(
	profiles datasources.UserProfileGetter,
	events datasources.ActiveEventLister,
	commands Commands,
	rss RSSConfig,
	extractionsPerMinute int,
	authMiddleware func(http.Handler) http.Handler,
) (http.Handler, error) {
	r := mux.NewRouter()
	r.Use(corsMiddleware)
	r.Use(authMiddleware)

	r.Handle("/v1/profile", requireAuthMiddleware(controller.ProfileGet{
		Command: commands.GetProfile,
	})).Methods(http.MethodGet, http.MethodOptions)

	r.Handle("/v1/profile/preferences", requireAuthMiddleware(controller.PreferencesUpdate{
		Command: commands.UpdatePreferences,
	})).Methods(http.MethodPut, http.MethodOptions)

	r.Handle("/v1/events/active", requireAuthMiddleware(controller.ActiveEventGet{
		Command: commands.SelectActiveEvent,
	})).Methods(http.MethodGet, http.MethodOptions)

	r.Handle("/v1/events/top", requireAuthMiddleware(controller.TopEventsList{
		Command: commands.SelectTopEvents,
	})).Methods(http.MethodGet, http.MethodOptions)

	admin := r.PathPrefix("/v1/admin").Subrouter()
	admin.Use(requireAdminMiddleware(profiles))

	admin.Handle("/extractions", perUserRateLimit(extractionsPerMinute)(controller.ExtractionCreate{
		Command: commands.ExtractDraft,
	})).Methods(http.MethodPost, http.MethodOptions)

	admin.Handle("/drafts", controller.DraftsList{
		Command: commands.ListDrafts,
	}).Methods(http.MethodGet, http.MethodOptions)

	admin.Handle("/drafts", controller.DraftCreate{
		Command: commands.CreateDraft,
	}).Methods(http.MethodPost, http.MethodOptions)

	admin.Handle("/drafts/{draft_id}", controller.DraftUpdate{
		Command: commands.UpdateDraft,
	}).Methods(http.MethodPatch, http.MethodOptions)

	admin.Handle("/drafts/{draft_id}", controller.DraftDelete{
		Command: commands.DeleteDraft,
	}).Methods(http.MethodDelete, http.MethodOptions)

	admin.Handle("/drafts/{draft_id}/publish", controller.DraftPublish{
		Command: commands.PublishDraft,
	}).Methods(http.MethodPost, http.MethodOptions)

	admin.Handle("/drafts/{draft_id}/reject", controller.DraftReject{
		Command: commands.RejectDraft,
	}).Methods(http.MethodPost, http.MethodOptions)

	admin.Handle("/events", controller.EventCreate{
		Command: commands.CreateEvent,
	}).Methods(http.MethodPost, http.MethodOptions)

	r.Handle("/rss", controller.RSS{
		FeedHostname:    rss.BaseURL,
		FeedPath:        "/rss",
		FeedAuthorName:  rss.AuthorName,
		FeedAuthorEmail: rss.AuthorEmail,
		Lister:          events,
		CacheMaxAge:     rss.CacheMaxAge,
	}).Methods(http.MethodGet, http.MethodOptions)

	return r, nil
}
