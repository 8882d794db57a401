package controller

import (
	"net/http"

	"github.com/oneevent/oneevent-api/internal/command"
	"github.com/oneevent/oneevent-api/internal/domain"
)

type ProfileGet struct {
	Command command.Command[command.GetProfileRequest, domain.UserProfile]
}

func (c ProfileGet) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	profile, err := c.Command.Execute(ctx, command.GetProfileRequest{UserID: domain.UserIDFromContext(ctx)})
	if err != nil {
		writeError(ctx, w, err, "unable to get profile")
		return
	}

	writeJSON(ctx, w, http.StatusOK, dataResponse{Data: profile})
}

type PreferencesUpdate struct {
	Command command.Command[command.UpdatePreferencesRequest, domain.UserProfile]
}

func (c PreferencesUpdate) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := domain.LoggerFromContext(ctx)

	var prefs domain.UserPreferences
	if err := decodeBody(r, &prefs); err != nil {
		logger.WarnContext(ctx, "unable to decode preferences", "error", err)
		writeJSON(ctx, w, http.StatusBadRequest, errorResponse{Message: "invalid request body"})
		return
	}

	profile, err := c.Command.Execute(ctx, command.UpdatePreferencesRequest{
		UserID:      domain.UserIDFromContext(ctx),
		Preferences: prefs,
	})
	if err != nil {
		writeError(ctx, w, err, "unable to update preferences")
		return
	}

	writeJSON(ctx, w, http.StatusOK, dataResponse{Data: profile})
}
