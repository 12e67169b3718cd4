package workrecord

import (
	"context"
	"log/slog"
	"net/http"

	"sitelog/internal/http/api"
	"sitelog/internal/http/handlers"
	"sitelog/internal/lib/access"
	"sitelog/internal/models"
	recordsvc "sitelog/internal/service/workrecord"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
)

type workRecordService interface {
	List(ctx context.Context, actor access.Actor, requestedTeamID string, workDate *models.Date) ([]api.WorkRecordSchema, error)
	Create(ctx context.Context, actor access.Actor, in recordsvc.CreateInput) (*api.WorkRecordSchema, error)
	Get(ctx context.Context, actor access.Actor, recordID string) (*api.WorkRecordSchema, error)
	Update(ctx context.Context, actor access.Actor, recordID string, in recordsvc.UpdateInput) (*api.WorkRecordSchema, error)
	Delete(ctx context.Context, actor access.Actor, recordID string) error
}

type WorkRecordHandler struct {
	log     *slog.Logger
	service workRecordService
}

func NewWorkRecordHandler(log *slog.Logger, s workRecordService) *WorkRecordHandler {
	return &WorkRecordHandler{
		log:     log,
		service: s,
	}
}

type WorkRecordCreateRequest struct {
	WorkerID   string       `json:"worker_id"   validate:"required,max=36"`
	WorkerName string       `json:"worker_name" validate:"required,max=255"`
	SiteName   string       `json:"site_name"   validate:"required,max=255"`
	WorkDate   *models.Date `json:"work_date"   validate:"required"`
	WorkHours  *float64     `json:"work_hours"  validate:"required,gte=0,lte=24"`
	Notes      *string      `json:"notes"       validate:"omitempty,max=1000"`
	TeamID     string       `json:"team_id"     validate:"omitempty,max=36"`
}

type WorkRecordUpdateRequest struct {
	WorkerID   *string  `json:"worker_id"   validate:"omitempty,min=1,max=36"`
	WorkerName *string  `json:"worker_name" validate:"omitempty,min=1,max=255"`
	SiteName   *string  `json:"site_name"   validate:"omitempty,min=1,max=255"`
	WorkHours  *float64 `json:"work_hours"  validate:"omitempty,gte=0,lte=24"`
	Notes      *string  `json:"notes"       validate:"omitempty,max=1000"`
}

func (h *WorkRecordHandler) List(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.workrecord.List"
	log := handlers.OpLogger(h.log, op, r)

	actor, ok := handlers.Actor(w, r)
	if !ok {
		return
	}

	workDate, err := handlers.WorkDateQuery(r)
	if err != nil {
		handlers.RenderError(w, r, log, err)
		return
	}

	resp, err := h.service.List(r.Context(), actor, r.URL.Query().Get("team_id"), workDate)
	if err != nil {
		handlers.RenderError(w, r, log, err)
		return
	}

	render.JSON(w, r, resp)
}

func (h *WorkRecordHandler) Create(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.workrecord.Create"
	log := handlers.OpLogger(h.log, op, r)

	actor, ok := handlers.Actor(w, r)
	if !ok {
		return
	}

	var input WorkRecordCreateRequest
	if !handlers.DecodeAndValidate(w, r, log, &input) {
		return
	}

	resp, err := h.service.Create(r.Context(), actor, recordsvc.CreateInput{
		WorkerID:   input.WorkerID,
		WorkerName: input.WorkerName,
		SiteName:   input.SiteName,
		WorkDate:   *input.WorkDate,
		WorkHours:  *input.WorkHours,
		Notes:      input.Notes,
		TeamID:     input.TeamID,
	})
	if err != nil {
		handlers.RenderError(w, r, log, err)
		return
	}

	log.Info("work record created", slog.String("record_id", resp.ID), slog.String("team_id", resp.TeamID))
	render.Status(r, http.StatusCreated)
	render.JSON(w, r, resp)
}

func (h *WorkRecordHandler) Get(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.workrecord.Get"
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

func (h *WorkRecordHandler) Update(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.workrecord.Update"
	log := handlers.OpLogger(h.log, op, r)

	actor, ok := handlers.Actor(w, r)
	if !ok {
		return
	}

	var input WorkRecordUpdateRequest
	if !handlers.DecodeAndValidate(w, r, log, &input) {
		return
	}

	resp, err := h.service.Update(r.Context(), actor, chi.URLParam(r, "id"), recordsvc.UpdateInput(input))
	if err != nil {
		handlers.RenderError(w, r, log, err)
		return
	}

	log.Info("work record updated", slog.String("record_id", resp.ID))
	render.JSON(w, r, resp)
}

func (h *WorkRecordHandler) Delete(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.workrecord.Delete"
	log := handlers.OpLogger(h.log, op, r)

	actor, ok := handlers.Actor(w, r)
	if !ok {
		return
	}

	recordID := chi.URLParam(r, "id")
	if err := h.service.Delete(r.Context(), actor, recordID); err != nil {
		handlers.RenderError(w, r, log, err)
		return
	}

	log.Info("work record deleted", slog.String("record_id", recordID))
	render.JSON(w, r, api.MessageResponse{Message: "Work record deleted successfully"})
}
