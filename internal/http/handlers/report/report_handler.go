package report

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"sitelog/internal/http/api"
	"sitelog/internal/http/handlers"
	"sitelog/internal/lib/access"

	"github.com/go-chi/render"
)

type reportService interface {
	Monthly(ctx context.Context, actor access.Actor, month, requestedTeamID string) (*api.MonthlyReportResponse, error)
}

type ReportHandler struct {
	log     *slog.Logger
	service reportService
}

func NewReportHandler(log *slog.Logger, s reportService) *ReportHandler {
	return &ReportHandler{
		log:     log,
		service: s,
	}
}

func (h *ReportHandler) Monthly(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.report.Monthly"
	log := handlers.OpLogger(h.log, op, r)

	actor, ok := handlers.Actor(w, r)
	if !ok {
		return
	}

	month := strings.TrimSpace(r.URL.Query().Get("month"))
	if month == "" {
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, api.Error(api.ErrBadRequest, "month is required, expected YYYY-MM"))
		return
	}

	resp, err := h.service.Monthly(r.Context(), actor, month, r.URL.Query().Get("team_id"))
	if err != nil {
		handlers.RenderError(w, r, log, err)
		return
	}

	log.Info("monthly report built",
		slog.String("month", month),
		slog.Int("sites", len(resp.Sites)),
		slog.Int("equipment_types", len(resp.Equipment)),
	)
	render.JSON(w, r, resp)
}
