package middleware

import (
	"context"
	"net/http"

	"github.com/gearhub/gearhub/internal/api/apierr"
	"github.com/gearhub/gearhub/internal/model"
	"github.com/gearhub/gearhub/internal/services/session"
)

type contextKey string

const profileContextKey contextKey = "profile"

// Session loads the persisted active session and injects its profile into
// the request context. Requests without an active session get a 401.
func Session(sessionService *session.Service) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			profile, err := sessionService.ActiveProfile(r.Context())
			if err != nil {
				apierr.WriteError(w, err)
				return
			}

			ctx := context.WithValue(r.Context(), profileContextKey, profile)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireRole rejects requests whose session profile does not hold one of
// the given roles. Must run after Session.
func RequireRole(roles ...model.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			profile := GetProfile(r.Context())
			if profile == nil {
				apierr.WriteError(w, apierr.NewUnauthorizedError())
				return
			}

			for _, role := range roles {
				if profile.Role == role {
					next.ServeHTTP(w, r)
					return
				}
			}

			apierr.WriteError(w, apierr.NewForbiddenError())
		})
	}
}

// GetProfile returns the session profile from the request context
func GetProfile(ctx context.Context) *model.UserProfile {
	profile, _ := ctx.Value(profileContextKey).(*model.UserProfile)
	return profile
}

// MustGetProfile returns the session profile or panics
func MustGetProfile(ctx context.Context) *model.UserProfile {
	profile := GetProfile(ctx)
	if profile == nil {
		panic("no profile in context - session middleware not applied?")
	}
	return profile
}
