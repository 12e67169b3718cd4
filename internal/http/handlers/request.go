package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"sitelog/internal/http/api"
	mw "sitelog/internal/http/middleware"
	"sitelog/internal/lib/access"
	"sitelog/internal/lib/sl"
	"sitelog/internal/models"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// OpLogger returns log annotated with the handler op and request id.
func OpLogger(log *slog.Logger, op string, r *http.Request) *slog.Logger {
	return log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)
}

// DecodeAndValidate reads a JSON body into dst and runs struct validation.
// On failure the 400 response is already written and false is returned.
func DecodeAndValidate(w http.ResponseWriter, r *http.Request, log *slog.Logger, dst any) bool {
	if err := render.DecodeJSON(r.Body, dst); err != nil {
		log.Info("failed to decode request body", sl.Err(err))

		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, api.Error(api.ErrBadRequest, "bad request"))
		return false
	}

	if err := validate.Struct(dst); err != nil {
		var validateErr validator.ValidationErrors
		if !errors.As(err, &validateErr) {
			log.Error("validator failed", sl.Err(err))

			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, api.InternalError())
			return false
		}

		log.Info("invalid request", sl.Err(err))

		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, api.ValidationError(validateErr))
		return false
	}

	return true
}

// Actor returns the authenticated actor, writing 401 when there is none.
func Actor(w http.ResponseWriter, r *http.Request) (access.Actor, bool) {
	actor, ok := mw.ActorFromContext(r.Context())
	if !ok {
		mw.Unauthorized(w, r)
		return access.Actor{}, false
	}
	return actor, true
}

// WorkDateQuery parses the optional work_date query parameter.
func WorkDateQuery(r *http.Request) (*models.Date, error) {
	raw := strings.TrimSpace(r.URL.Query().Get("work_date"))
	if raw == "" {
		return nil, nil
	}

	d, err := models.ParseDate(raw)
	if err != nil {
		return nil, err
	}
	return &d, nil
}
