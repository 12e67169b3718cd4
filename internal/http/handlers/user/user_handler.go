package user

import (
	"context"
	"log/slog"
	"net/http"

	"sitelog/internal/http/api"
	"sitelog/internal/http/handlers"
	"sitelog/internal/lib/access"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
)

type userService interface {
	List(ctx context.Context, actor access.Actor) ([]api.UserSchema, error)
	Get(ctx context.Context, actor access.Actor, userID string) (*api.UserSchema, error)
}

type UserHandler struct {
	log     *slog.Logger
	service userService
}

func NewUserHandler(log *slog.Logger, s userService) *UserHandler {
	return &UserHandler{
		log:     log,
		service: s,
	}
}

func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.user.List"
	log := handlers.OpLogger(h.log, op, r)

	actor, ok := handlers.Actor(w, r)
	if !ok {
		return
	}

	resp, err := h.service.List(r.Context(), actor)
	if err != nil {
		handlers.RenderError(w, r, log, err)
		return
	}

	log.Info("users listed", slog.Int("count", len(resp)))
	render.JSON(w, r, resp)
}

func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.user.Get"
	log := handlers.OpLogger(h.log, op, r)

	actor, ok := handlers.Actor(w, r)
	if !ok {
		return
	}

	resp, err := h.service.Get(r.Context(), actor, chi.URLParam(r, "id"))
	if err != nil {
		handlers.RenderError(w, r, log, err)
		return
	}

	render.JSON(w, r, resp)
}
