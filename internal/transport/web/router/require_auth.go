package router

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/oneevent/oneevent-api/internal/datasources"
	"github.com/oneevent/oneevent-api/internal/domain"
)

func requireAuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID := domain.UserIDFromContext(r.Context())
		if userID == "" {
			logger := domain.LoggerFromContext(r.Context())
			logger.WarnContext(r.Context(), "attempt to use endpoint requiring auth without user ID")
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// requireAdminMiddleware allows only users whose profile carries the admin flag. The loaded
// profile is attached to the request context.
func requireAdminMiddleware(profiles datasources.UserProfileGetter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return requireAuthMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			logger := domain.LoggerFromContext(ctx)
			userID := domain.UserIDFromContext(ctx)

			profile, err := profiles.GetUserProfile(ctx, userID)
			if err != nil && !errors.Is(err, domain.ErrNotFound) {
				logger.ErrorContext(ctx, "unable to load profile for admin check", "error", err)
				w.WriteHeader(http.StatusInternalServerError)
				return
			}
			if err != nil || !profile.IsAdmin {
				logger.WarnContext(ctx, "non-admin attempted admin endpoint", "path", r.URL.Path)
				writeMessage(w, http.StatusForbidden, "admin access required")
				return
			}

			next.ServeHTTP(w, r.WithContext(domain.ContextWithUserProfile(ctx, profile)))
		}))
	}
}

func writeMessage(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = fmt.Fprintf(w, `{"message":%q}`, message)
}
