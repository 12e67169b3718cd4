package worker

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

type workerService interface {
	List(ctx context.Context, actor access.Actor, requestedTeamID string) ([]api.WorkerSchema, error)
	Create(ctx context.Context, name, teamID string) (*api.WorkerSchema, error)
	Get(ctx context.Context, workerID string) (*api.WorkerSchema, error)
	Delete(ctx context.Context, workerID string) error
}

type WorkerHandler struct {
	log     *slog.Logger
	service workerService
}

func NewWorkerHandler(log *slog.Logger, s workerService) *WorkerHandler {
	return &WorkerHandler{
		log:     log,
		service: s,
	}
}

type WorkerCreateRequest struct {
	Name   string `json:"name"    validate:"required,max=255"`
	TeamID string `json:"team_id" validate:"required,max=36"`
}

func (h *WorkerHandler) List(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.worker.List"
	log := handlers.OpLogger(h.log, op, r)

	actor, ok := handlers.Actor(w, r)
	if !ok {
		return
	}

	resp, err := h.service.List(r.Context(), actor, r.URL.Query().Get("team_id"))
	if err != nil {
		handlers.RenderError(w, r, log, err)
		return
	}

	render.JSON(w, r, resp)
}

func (h *WorkerHandler) Create(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.worker.Create"
	log := handlers.OpLogger(h.log, op, r)

	var input WorkerCreateRequest
	if !handlers.DecodeAndValidate(w, r, log, &input) {
		return
	}

	resp, err := h.service.Create(r.Context(), input.Name, input.TeamID)
	if err != nil {
		handlers.RenderError(w, r, log, err)
		return
	}

	log.Info("worker created", slog.String("worker_id", resp.ID))
	render.Status(r, http.StatusCreated)
	render.JSON(w, r, resp)
}

func (h *WorkerHandler) Get(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.worker.Get"
	log := handlers.OpLogger(h.log, op, r)

	resp, err := h.service.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handlers.RenderError(w, r, log, err)
		return
	}

	render.JSON(w, r, resp)
}

func (h *WorkerHandler) Delete(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.worker.Delete"
	log := handlers.OpLogger(h.log, op, r)

	workerID := chi.URLParam(r, "id")
	if err := h.service.Delete(r.Context(), workerID); err != nil {
		handlers.RenderError(w, r, log, err)
		return
	}

	log.Info("worker deleted", slog.String("worker_id", workerID))
	render.JSON(w, r, api.MessageResponse{Message: "Worker deleted successfully"})
}
