package equipment

import (
	"context"
	"log/slog"
	"net/http"

	"sitelog/internal/http/api"
	"sitelog/internal/http/handlers"
	"sitelog/internal/lib/access"
	"sitelog/internal/models"
	equipsvc "sitelog/internal/service/equipment"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
)

type equipmentService interface {
	List(ctx context.Context, actor access.Actor, requestedTeamID string, workDate *models.Date) ([]api.EquipmentRecordSchema, error)
	Create(ctx context.Context, actor access.Actor, in equipsvc.CreateInput) (*api.EquipmentRecordSchema, bool, error)
	Get(ctx context.Context, actor access.Actor, recordID string) (*api.EquipmentRecordSchema, error)
	Update(ctx context.Context, actor access.Actor, recordID string, in equipsvc.UpdateInput) (*api.EquipmentRecordSchema, error)
	Delete(ctx context.Context, actor access.Actor, recordID string) error
}

type EquipmentHandler struct {
	log     *slog.Logger
	service equipmentService
}

func NewEquipmentHandler(log *slog.Logger, s equipmentService) *EquipmentHandler {
	return &EquipmentHandler{
		log:     log,
		service: s,
	}
}

type EquipmentCreateRequest struct {
	WorkDate      *models.Date `json:"work_date"      validate:"required"`
	EquipmentType string       `json:"equipment_type" validate:"required,max=50"`
	Quantity      int          `json:"quantity"       validate:"gt=0"`
	TeamID        string       `json:"team_id"        validate:"omitempty,max=36"`
}

type EquipmentUpdateRequest struct {
	WorkDate      *models.Date `json:"work_date"`
	EquipmentType *string      `json:"equipment_type" validate:"omitempty,min=1,max=50"`
	Quantity      *int         `json:"quantity"       validate:"omitempty,gt=0"`
}

func (h *EquipmentHandler) List(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.equipment.List"
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

// Create answers 201 for a new record and 200 when the quantity was merged
// into an existing one.
func (h *EquipmentHandler) Create(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.equipment.Create"
	log := handlers.OpLogger(h.log, op, r)

	actor, ok := handlers.Actor(w, r)
	if !ok {
		return
	}

	var input EquipmentCreateRequest
	if !handlers.DecodeAndValidate(w, r, log, &input) {
		return
	}

	resp, created, err := h.service.Create(r.Context(), actor, equipsvc.CreateInput{
		WorkDate:      *input.WorkDate,
		EquipmentType: input.EquipmentType,
		Quantity:      input.Quantity,
		TeamID:        input.TeamID,
	})
	if err != nil {
		handlers.RenderError(w, r, log, err)
		return
	}

	log.Info("equipment recorded",
		slog.String("record_id", resp.ID),
		slog.Bool("created", created),
		slog.Int("quantity", resp.Quantity),
	)

	if created {
		render.Status(r, http.StatusCreated)
	}
	render.JSON(w, r, resp)
}

func (h *EquipmentHandler) Get(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.equipment.Get"
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

func (h *EquipmentHandler) Update(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.equipment.Update"
	log := handlers.OpLogger(h.log, op, r)

	actor, ok := handlers.Actor(w, r)
	if !ok {
		return
	}

	var input EquipmentUpdateRequest
	if !handlers.DecodeAndValidate(w, r, log, &input) {
		return
	}

	resp, err := h.service.Update(r.Context(), actor, chi.URLParam(r, "id"), equipsvc.UpdateInput(input))
	if err != nil {
		handlers.RenderError(w, r, log, err)
		return
	}

	log.Info("equipment record updated", slog.String("record_id", resp.ID))
	render.JSON(w, r, resp)
}

func (h *EquipmentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.equipment.Delete"
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

	log.Info("equipment record deleted", slog.String("record_id", recordID))
	render.JSON(w, r, api.MessageResponse{Message: "Equipment record deleted successfully"})
}
