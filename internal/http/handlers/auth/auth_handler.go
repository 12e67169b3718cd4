package auth

import (
	"context"
	"log/slog"
	"net/http"

	"sitelog/internal/http/api"
	"sitelog/internal/http/handlers"
	"sitelog/internal/lib/access"
	"sitelog/internal/models"
	authsvc "sitelog/internal/service/auth"

	"github.com/go-chi/render"
)

type authService interface {
	Register(ctx context.Context, in authsvc.RegisterInput) (*api.UserSchema, error)
	Login(ctx context.Context, email, password string) (*api.LoginResponse, error)
	Me(ctx context.Context, actor access.Actor) (*api.UserSchema, error)
}

type AuthHandler struct {
	log     *slog.Logger
	service authService
}

func NewAuthHandler(log *slog.Logger, s authService) *AuthHandler {
	return &AuthHandler{
		log:     log,
		service: s,
	}
}

type RegisterRequest struct {
	Email    string  `json:"email"     validate:"required,max=255"`
	Password string  `json:"password"  validate:"required,min=4,max=128"`
	Role     string  `json:"role"      validate:"required,oneof=admin manager"`
	TeamID   *string `json:"team_id"   validate:"omitempty,max=36"`
	TeamName *string `json:"team_name" validate:"omitempty,max=128"`
}

type LoginRequest struct {
	Email    string `json:"email"    validate:"required"`
	Password string `json:"password" validate:"required"`
}

// Register creates an account. Also mounted as the admin-only POST /users.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.auth.Register"
	log := handlers.OpLogger(h.log, op, r)

	var input RegisterRequest
	if !handlers.DecodeAndValidate(w, r, log, &input) {
		return
	}

	resp, err := h.service.Register(r.Context(), authsvc.RegisterInput{
		Email:    input.Email,
		Password: input.Password,
		Role:     models.Role(input.Role),
		TeamID:   input.TeamID,
		TeamName: input.TeamName,
	})
	if err != nil {
		handlers.RenderError(w, r, log, err)
		return
	}

	log.Info("user registered", slog.String("user_id", resp.ID))
	render.Status(r, http.StatusCreated)
	render.JSON(w, r, resp)
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.auth.Login"
	log := handlers.OpLogger(h.log, op, r)

	var input LoginRequest
	if !handlers.DecodeAndValidate(w, r, log, &input) {
		return
	}

	resp, err := h.service.Login(r.Context(), input.Email, input.Password)
	if err != nil {
		handlers.RenderError(w, r, log, err)
		return
	}

	log.Info("user logged in", slog.String("user_id", resp.User.ID))
	render.JSON(w, r, resp)
}

func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.auth.Me"
	log := handlers.OpLogger(h.log, op, r)

	actor, ok := handlers.Actor(w, r)
	if !ok {
		return
	}

	resp, err := h.service.Me(r.Context(), actor)
	if err != nil {
		handlers.RenderError(w, r, log, err)
		return
	}

	render.JSON(w, r, resp)
}
