package team_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"sitelog/internal/http/api"
	"sitelog/internal/http/handlers"
	"sitelog/internal/http/handlers/mocks"
	"sitelog/internal/http/handlers/team"
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

// Add

func TestTeamHandler_Add_Success(t *testing.T) {
	mockService := mocks.NewMockTeamService(t)
	h := team.NewTeamHandler(handlers.NewLogger(), mockService)

	body, _ := json.Marshal(team.TeamAddRequest{Name: "Team 4", ManagerID: "5"})
	expected := &api.TeamSchema{ID: "t-4", Name: "Team 4", ManagerID: "5"}
	mockService.On("Add", mock.Anything, admin, "Team 4", "5").Return(expected, nil).Once()

	w := httptest.NewRecorder()
	h.Add(w, handlers.NewRequest(http.MethodPost, "/teams", body, admin))

	assert.Equal(t, http.StatusCreated, w.Code)
	var resp api.TeamSchema
	err := json.NewDecoder(w.Body).Decode(&resp)
	assert.NoError(t, err)
	assert.Equal(t, *expected, resp)
}

func TestTeamHandler_Add_BadJSON(t *testing.T) {
	mockService := mocks.NewMockTeamService(t)
	h := team.NewTeamHandler(handlers.NewLogger(), mockService)

	w := httptest.NewRecorder()
	h.Add(w, handlers.NewRequest(http.MethodPost, "/teams", []byte("{invalid json"), admin))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	resp := handlers.DecodeErrorResponse(t, w.Body)
	assert.Equal(t, api.ErrBadRequest, resp.Error.Code)
}

func TestTeamHandler_Add_ValidationError(t *testing.T) {
	mockService := mocks.NewMockTeamService(t)
	h := team.NewTeamHandler(handlers.NewLogger(), mockService)

	body, _ := json.Marshal(team.TeamAddRequest{Name: "", ManagerID: "5"})

	w := httptest.NewRecorder()
	h.Add(w, handlers.NewRequest(http.MethodPost, "/teams", body, admin))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	resp := handlers.DecodeErrorResponse(t, w.Body)
	assert.Equal(t, api.ErrValidationErr, resp.Error.Code)
	assert.Contains(t, resp.Error.Message, "Name")
}

func TestTeamHandler_Add_ManagerForbidden(t *testing.T) {
	mockService := mocks.NewMockTeamService(t)
	h := team.NewTeamHandler(handlers.NewLogger(), mockService)

	body, _ := json.Marshal(team.TeamAddRequest{Name: "Team 4", ManagerID: "5"})
	mockService.On("Add", mock.Anything, manager, "Team 4", "5").Return(nil, access.ErrForbidden).Once()

	w := httptest.NewRecorder()
	h.Add(w, handlers.NewRequest(http.MethodPost, "/teams", body, manager))

	assert.Equal(t, http.StatusForbidden, w.Code)
	resp := handlers.DecodeErrorResponse(t, w.Body)
	assert.Equal(t, api.ErrCodeForbidden, resp.Error.Code)
}

func TestTeamHandler_Add_InternalError(t *testing.T) {
	mockService := mocks.NewMockTeamService(t)
	h := team.NewTeamHandler(handlers.NewLogger(), mockService)

	body, _ := json.Marshal(team.TeamAddRequest{Name: "Team 4", ManagerID: "5"})
	mockService.On("Add", mock.Anything, admin, "Team 4", "5").Return(nil, errors.New("db error")).Once()

	w := httptest.NewRecorder()
	h.Add(w, handlers.NewRequest(http.MethodPost, "/teams", body, admin))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	resp := handlers.DecodeErrorResponse(t, w.Body)
	assert.Equal(t, api.ErrInternalErr, resp.Error.Code)
	assert.Equal(t, "internal server error", resp.Error.Message)
}

// Get

func TestTeamHandler_Get_Success(t *testing.T) {
	mockService := mocks.NewMockTeamService(t)
	h := team.NewTeamHandler(handlers.NewLogger(), mockService)

	mockService.On("Get", mock.Anything, "team-1").Return(&api.TeamSchema{ID: "team-1", Name: "Team 1"}, nil).Once()

	req := handlers.WithURLParam(httptest.NewRequest(http.MethodGet, "/teams/team-1", nil), "id", "team-1")
	w := httptest.NewRecorder()

	h.Get(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestTeamHandler_Get_NotFound(t *testing.T) {
	mockService := mocks.NewMockTeamService(t)
	h := team.NewTeamHandler(handlers.NewLogger(), mockService)

	mockService.On("Get", mock.Anything, "team-9").Return(nil, repo.ErrNotFound).Once()

	req := handlers.WithURLParam(httptest.NewRequest(http.MethodGet, "/teams/team-9", nil), "id", "team-9")
	w := httptest.NewRecorder()

	h.Get(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	resp := handlers.DecodeErrorResponse(t, w.Body)
	assert.Equal(t, api.ErrCodeNotFound, resp.Error.Code)
}

// List

func TestTeamHandler_List(t *testing.T) {
	mockService := mocks.NewMockTeamService(t)
	h := team.NewTeamHandler(handlers.NewLogger(), mockService)

	mockService.On("List", mock.Anything).Return([]api.TeamSchema{{ID: "team-1"}, {ID: "team-2"}}, nil).Once()

	w := httptest.NewRecorder()
	h.List(w, httptest.NewRequest(http.MethodGet, "/teams", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	var resp []api.TeamSchema
	assert.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Len(t, resp, 2)
}

func TestTeamHandler_List_Empty(t *testing.T) {
	mockService := mocks.NewMockTeamService(t)
	h := team.NewTeamHandler(handlers.NewLogger(), mockService)

	mockService.On("List", mock.Anything).Return([]api.TeamSchema{}, nil).Once()

	w := httptest.NewRecorder()
	h.List(w, httptest.NewRequest(http.MethodGet, "/teams", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, "[]", w.Body.String())
}
