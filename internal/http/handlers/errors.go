package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"sitelog/internal/http/api"
	"sitelog/internal/lib/access"
	"sitelog/internal/lib/credentials"
	"sitelog/internal/lib/sl"
	"sitelog/internal/models"
	repo "sitelog/internal/repository"

	"github.com/go-chi/render"
)

type errorMapping struct {
	target error
	status int
	code   string
}

var errorMappings = []errorMapping{
	{credentials.ErrUnauthenticated, http.StatusUnauthorized, api.ErrCodeUnauthorized},
	{credentials.ErrInvalidCredentials, http.StatusUnauthorized, api.ErrCodeUnauthorized},
	{access.ErrForbidden, http.StatusForbidden, api.ErrCodeForbidden},
	{repo.ErrNotFound, http.StatusNotFound, api.ErrCodeNotFound},
	{access.ErrTeamRequired, http.StatusBadRequest, api.ErrCodeTeamRequired},
	{repo.ErrEmailExists, http.StatusBadRequest, api.ErrCodeEmailExists},
	{repo.ErrEquipmentExists, http.StatusBadRequest, api.ErrCodeEquipmentExists},
	{repo.ErrTeamExists, http.StatusBadRequest, api.ErrCodeTeamExists},
	{models.ErrInvalidDate, http.StatusBadRequest, api.ErrBadRequest},
}

// RenderError writes the error envelope for err. Known domain errors keep their
// message; anything else becomes a generic 500.
func RenderError(w http.ResponseWriter, r *http.Request, log *slog.Logger, err error) {
	for _, m := range errorMappings {
		if errors.Is(err, m.target) {
			log.Info("request rejected", slog.Int("status", m.status), sl.Err(err))

			render.Status(r, m.status)
			render.JSON(w, r, api.Error(m.code, err.Error()))
			return
		}
	}

	log.Error("request failed", sl.Err(err))

	render.Status(r, http.StatusInternalServerError)
	render.JSON(w, r, api.InternalError())
}
