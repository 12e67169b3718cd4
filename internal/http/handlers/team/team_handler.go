package team

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

type teamService interface {
	Add(ctx context.Context, actor access.Actor, name, managerID string) (*api.TeamSchema, error)
	Get(ctx context.Context, teamID string) (*api.TeamSchema, error)
	List(ctx context.Context) ([]api.TeamSchema, error)
}

type TeamHandler struct {
	log     *slog.Logger
	service teamService
}

func NewTeamHandler(log *slog.Logger, s teamService) *TeamHandler {
	return &TeamHandler{
		log:     log,
		service: s,
	}
}

type TeamAddRequest struct {
	Name      string `json:"name"       validate:"required,max=128"`
	ManagerID string `json:"manager_id" validate:"required,max=36"`
}

func (h *TeamHandler) Add(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.team.Add"
	log := handlers.OpLogger(h.log, op, r)

	actor, ok := handlers.Actor(w, r)
	if !ok {
		return
	}

	var input TeamAddRequest
	if !handlers.DecodeAndValidate(w, r, log, &input) {
		return
	}

	resp, err := h.service.Add(r.Context(), actor, input.Name, input.ManagerID)
	if err != nil {
		handlers.RenderError(w, r, log, err)
		return
	}

	log.Info("team created successfully", slog.String("team_id", resp.ID))
	render.Status(r, http.StatusCreated)
	render.JSON(w, r, resp)
}

func (h *TeamHandler) Get(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.team.Get"
	log := handlers.OpLogger(h.log, op, r)

	resp, err := h.service.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handlers.RenderError(w, r, log, err)
		return
	}

	log.Info("team retrieved")
	render.JSON(w, r, resp)
}

func (h *TeamHandler) List(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.team.List"
	log := handlers.OpLogger(h.log, op, r)

	resp, err := h.service.List(r.Context())
	if err != nil {
		handlers.RenderError(w, r, log, err)
		return
	}

	render.JSON(w, r, resp)
}
