package auth_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"sitelog/internal/http/api"
	"sitelog/internal/http/handlers"
	"sitelog/internal/http/handlers/auth"
	"sitelog/internal/http/handlers/mocks"
	"sitelog/internal/lib/access"
	"sitelog/internal/lib/credentials"
	"sitelog/internal/models"
	repo "sitelog/internal/repository"
	authsvc "sitelog/internal/service/auth"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestAuthHandler_Register_Success(t *testing.T) {
	mockService := mocks.NewMockAuthService(t)
	h := auth.NewAuthHandler(handlers.NewLogger(), mockService)

	teamID := "team-1"
	body, _ := json.Marshal(auth.RegisterRequest{Email: "team9", Password: "secret", Role: "manager", TeamID: &teamID})
	req := httptest.NewRequest(http.MethodPost, "/auth/register", bytes.NewReader(body))
	w := httptest.NewRecorder()

	mockService.On("Register", mock.Anything, mock.MatchedBy(func(in authsvc.RegisterInput) bool {
		return in.Email == "team9" && in.Role == models.RoleManager && in.TeamID != nil && *in.TeamID == "team-1"
	})).Return(&api.UserSchema{ID: "u-9", Email: "team9", Role: "manager", TeamID: &teamID}, nil).Once()

	h.Register(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	var resp api.UserSchema
	assert.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(t, "u-9", resp.ID)
	assert.Equal(t, "team-1", *resp.TeamID)
}

func TestAuthHandler_Register_Validation(t *testing.T) {
	tests := []struct {
		name string
		body string
		code string
	}{
		{name: "bad json", body: "{oops", code: api.ErrBadRequest},
		{name: "missing email", body: `{"password":"secret","role":"admin"}`, code: api.ErrValidationErr},
		{name: "short password", body: `{"email":"x","password":"abc","role":"admin"}`, code: api.ErrValidationErr},
		{name: "unknown role", body: `{"email":"x","password":"secret","role":"owner"}`, code: api.ErrValidationErr},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := mocks.NewMockAuthService(t)
			h := auth.NewAuthHandler(handlers.NewLogger(), mockService)

			req := httptest.NewRequest(http.MethodPost, "/auth/register", bytes.NewReader([]byte(tt.body)))
			w := httptest.NewRecorder()

			h.Register(w, req)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			resp := handlers.DecodeErrorResponse(t, w.Body)
			assert.Equal(t, tt.code, resp.Error.Code)
		})
	}
}

func TestAuthHandler_Register_EmailExists(t *testing.T) {
	mockService := mocks.NewMockAuthService(t)
	h := auth.NewAuthHandler(handlers.NewLogger(), mockService)

	body := []byte(`{"email":"admin","password":"admin","role":"admin"}`)
	req := httptest.NewRequest(http.MethodPost, "/auth/register", bytes.NewReader(body))
	w := httptest.NewRecorder()

	mockService.On("Register", mock.Anything, mock.Anything).Return(nil, repo.ErrEmailExists).Once()

	h.Register(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	resp := handlers.DecodeErrorResponse(t, w.Body)
	assert.Equal(t, api.ErrCodeEmailExists, resp.Error.Code)
}

func TestAuthHandler_Login_Success(t *testing.T) {
	mockService := mocks.NewMockAuthService(t)
	h := auth.NewAuthHandler(handlers.NewLogger(), mockService)

	body, _ := json.Marshal(auth.LoginRequest{Email: "team1", Password: "team1"})
	req := httptest.NewRequest(http.MethodPost, "/auth/login", bytes.NewReader(body))
	w := httptest.NewRecorder()

	mockService.On("Login", mock.Anything, "team1", "team1").Return(&api.LoginResponse{
		AccessToken: "tok",
		TokenType:   "bearer",
		User:        api.UserSchema{ID: "2", Email: "team1", Role: "manager"},
	}, nil).Once()

	h.Login(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp api.LoginResponse
	assert.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(t, "tok", resp.AccessToken)
	assert.Equal(t, "bearer", resp.TokenType)
	assert.Equal(t, "2", resp.User.ID)
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	mockService := mocks.NewMockAuthService(t)
	h := auth.NewAuthHandler(handlers.NewLogger(), mockService)

	body := []byte(`{"email":"team1","password":"nope"}`)
	req := httptest.NewRequest(http.MethodPost, "/auth/login", bytes.NewReader(body))
	w := httptest.NewRecorder()

	mockService.On("Login", mock.Anything, "team1", "nope").Return(nil, credentials.ErrInvalidCredentials).Once()

	h.Login(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	resp := handlers.DecodeErrorResponse(t, w.Body)
	assert.Equal(t, api.ErrCodeUnauthorized, resp.Error.Code)
}

func TestAuthHandler_Me(t *testing.T) {
	actor := access.Actor{UserID: "1", Email: "admin", Role: models.RoleAdmin}

	mockService := mocks.NewMockAuthService(t)
	h := auth.NewAuthHandler(handlers.NewLogger(), mockService)

	mockService.On("Me", mock.Anything, actor).Return(&api.UserSchema{ID: "1", Email: "admin", Role: "admin"}, nil).Once()

	w := httptest.NewRecorder()
	h.Me(w, handlers.NewRequest(http.MethodGet, "/auth/me", nil, actor))

	assert.Equal(t, http.StatusOK, w.Code)
	var resp api.UserSchema
	assert.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(t, "admin", resp.Email)
}

func TestAuthHandler_Me_NoActor(t *testing.T) {
	mockService := mocks.NewMockAuthService(t)
	h := auth.NewAuthHandler(handlers.NewLogger(), mockService)

	w := httptest.NewRecorder()
	h.Me(w, httptest.NewRequest(http.MethodGet, "/auth/me", nil))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthHandler_Me_InternalError(t *testing.T) {
	actor := access.Actor{UserID: "1", Email: "admin", Role: models.RoleAdmin}

	mockService := mocks.NewMockAuthService(t)
	h := auth.NewAuthHandler(handlers.NewLogger(), mockService)

	mockService.On("Me", mock.Anything, actor).Return(nil, errors.New("db down")).Once()

	w := httptest.NewRecorder()
	h.Me(w, handlers.NewRequest(http.MethodGet, "/auth/me", nil, actor))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	resp := handlers.DecodeErrorResponse(t, w.Body)
	assert.Equal(t, api.ErrInternalErr, resp.Error.Code)
}
