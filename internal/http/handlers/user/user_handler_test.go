package user_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"sitelog/internal/http/api"
	"sitelog/internal/http/handlers"
	"sitelog/internal/http/handlers/mocks"
	"sitelog/internal/http/handlers/user"
	"sitelog/internal/lib/access"
	"sitelog/internal/models"
	repo "sitelog/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

var (
	admin   = access.Actor{UserID: "1", Email: "admin", Role: models.RoleAdmin}
	manager = access.Actor{UserID: "2", Email: "team1", Role: models.RoleManager, TeamID: "team-1"}
)

func TestUserHandler_List_Success(t *testing.T) {
	mockService := mocks.NewMockUserService(t)
	h := user.NewUserHandler(handlers.NewLogger(), mockService)

	mockService.On("List", mock.Anything, admin).Return([]api.UserSchema{
		{ID: "1", Email: "admin", Role: "admin"},
		{ID: "2", Email: "team1", Role: "manager"},
	}, nil).Once()

	w := httptest.NewRecorder()
	h.List(w, handlers.NewRequest(http.MethodGet, "/users", nil, admin))

	assert.Equal(t, http.StatusOK, w.Code)
	var resp []api.UserSchema
	assert.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Len(t, resp, 2)
}

func TestUserHandler_List_Forbidden(t *testing.T) {
	mockService := mocks.NewMockUserService(t)
	h := user.NewUserHandler(handlers.NewLogger(), mockService)

	mockService.On("List", mock.Anything, manager).Return(nil, access.ErrForbidden).Once()

	w := httptest.NewRecorder()
	h.List(w, handlers.NewRequest(http.MethodGet, "/users", nil, manager))

	assert.Equal(t, http.StatusForbidden, w.Code)
	resp := handlers.DecodeErrorResponse(t, w.Body)
	assert.Equal(t, api.ErrCodeForbidden, resp.Error.Code)
}

func TestUserHandler_Get(t *testing.T) {
	tests := []struct {
		name     string
		userID   string
		resp     *api.UserSchema
		err      error
		wantCode int
	}{
		{name: "self", userID: "2", resp: &api.UserSchema{ID: "2", Email: "team1"}, wantCode: http.StatusOK},
		{name: "other", userID: "3", err: access.ErrForbidden, wantCode: http.StatusForbidden},
		{name: "missing", userID: "42", err: repo.ErrNotFound, wantCode: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := mocks.NewMockUserService(t)
			h := user.NewUserHandler(handlers.NewLogger(), mockService)

			mockService.On("Get", mock.Anything, manager, tt.userID).Return(tt.resp, tt.err).Once()

			req := handlers.NewRequest(http.MethodGet, "/users/"+tt.userID, nil, manager)
			req = handlers.WithURLParam(req, "id", tt.userID)
			w := httptest.NewRecorder()

			h.Get(w, req)

			assert.Equal(t, tt.wantCode, w.Code)
		})
	}
}
