package middleware

import (
	"context"
	"net/http"
	"strings"

	"sitelog/internal/http/api"
	"sitelog/internal/lib/access"
	"sitelog/internal/lib/credentials"
	"sitelog/internal/models"

	"github.com/go-chi/render"
)

type key int

const actorKey key = 1

type Authenticator interface {
	Authenticate(token string) (*credentials.Claims, error)
}

// Auth resolves the bearer token into an access.Actor stored in the request
// context. Requests without a valid token are rejected with 401.
func Auth(authenticator Authenticator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenString, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
			if !ok || strings.TrimSpace(tokenString) == "" {
				Unauthorized(w, r)
				return
			}

			claims, err := authenticator.Authenticate(strings.TrimSpace(tokenString))
			if err != nil {
				Unauthorized(w, r)
				return
			}

			actor := access.Actor{
				UserID: claims.Subject,
				Email:  claims.Email,
				Role:   models.Role(claims.Role),
				TeamID: claims.TeamID,
			}

			next.ServeHTTP(w, r.WithContext(WithActor(r.Context(), actor)))
		})
	}
}

func AdminOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		actor, ok := ActorFromContext(r.Context())
		if !ok {
			Unauthorized(w, r)
			return
		}

		if err := access.RequireAdmin(actor); err != nil {
			render.Status(r, http.StatusForbidden)
			render.JSON(w, r, api.Error(api.ErrCodeForbidden, "admin role required"))
			return
		}

		next.ServeHTTP(w, r)
	})
}

func WithActor(ctx context.Context, actor access.Actor) context.Context {
	return context.WithValue(ctx, actorKey, actor)
}

func ActorFromContext(ctx context.Context) (access.Actor, bool) {
	actor, ok := ctx.Value(actorKey).(access.Actor)
	return actor, ok
}

func Unauthorized(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("WWW-Authenticate", "Bearer")
	render.Status(r, http.StatusUnauthorized)
	render.JSON(w, r, api.Error(api.ErrCodeUnauthorized, credentials.ErrUnauthenticated.Error()))
}
