package equipment_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"sitelog/internal/http/api"
	"sitelog/internal/http/handlers"
	"sitelog/internal/http/handlers/equipment"
	"sitelog/internal/http/handlers/mocks"
	"sitelog/internal/lib/access"
	"sitelog/internal/models"
	repo "sitelog/internal/repository"
	equipsvc "sitelog/internal/service/equipment"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var (
	admin   = access.Actor{UserID: "1", Email: "admin", Role: models.RoleAdmin}
	manager = access.Actor{UserID: "2", Email: "team1", Role: models.RoleManager, TeamID: "team-1"}
)

const excavatorBody = `{"work_date":"2024-05-10","equipment_type":"excavator","quantity":3}`

func isExcavator(quantity int) any {
	return mock.MatchedBy(func(in equipsvc.CreateInput) bool {
		return in.WorkDate.String() == "2024-05-10" &&
			in.EquipmentType == "excavator" &&
			in.Quantity == quantity
	})
}

func TestEquipmentHandler_Create_StatusByOutcome(t *testing.T) {
	tests := []struct {
		name     string
		created  bool
		wantCode int
	}{
		{name: "fresh insert", created: true, wantCode: http.StatusCreated},
		{name: "merged", created: false, wantCode: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := mocks.NewMockEquipmentService(t)
			h := equipment.NewEquipmentHandler(handlers.NewLogger(), mockService)

			mockService.On("Create", mock.Anything, manager, isExcavator(3)).
				Return(&api.EquipmentRecordSchema{ID: "e1", EquipmentType: "excavator", Quantity: 8, TeamID: "team-1"}, tt.created, nil).
				Once()

			w := httptest.NewRecorder()
			h.Create(w, handlers.NewRequest(http.MethodPost, "/equipment-records", []byte(excavatorBody), manager))

			assert.Equal(t, tt.wantCode, w.Code)
			var resp api.EquipmentRecordSchema
			require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
			assert.Equal(t, 8, resp.Quantity)
		})
	}
}

func TestEquipmentHandler_Create_Invalid(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "zero quantity", body: `{"work_date":"2024-05-10","equipment_type":"crane","quantity":0}`},
		{name: "negative quantity", body: `{"work_date":"2024-05-10","equipment_type":"crane","quantity":-2}`},
		{name: "missing type", body: `{"work_date":"2024-05-10","quantity":1}`},
		{name: "missing date", body: `{"equipment_type":"crane","quantity":1}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := mocks.NewMockEquipmentService(t)
			h := equipment.NewEquipmentHandler(handlers.NewLogger(), mockService)

			w := httptest.NewRecorder()
			h.Create(w, handlers.NewRequest(http.MethodPost, "/equipment-records", []byte(tt.body), manager))

			assert.Equal(t, http.StatusBadRequest, w.Code)
			resp := handlers.DecodeErrorResponse(t, w.Body)
			assert.Equal(t, api.ErrValidationErr, resp.Error.Code)
		})
	}
}

func TestEquipmentHandler_Create_ForeignTeam(t *testing.T) {
	mockService := mocks.NewMockEquipmentService(t)
	h := equipment.NewEquipmentHandler(handlers.NewLogger(), mockService)

	body := []byte(`{"work_date":"2024-05-10","equipment_type":"crane","quantity":1,"team_id":"team-2"}`)
	mockService.On("Create", mock.Anything, manager, mock.Anything).Return(nil, false, access.ErrForbidden).Once()

	w := httptest.NewRecorder()
	h.Create(w, handlers.NewRequest(http.MethodPost, "/equipment-records", body, manager))

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestEquipmentHandler_List(t *testing.T) {
	mockService := mocks.NewMockEquipmentService(t)
	h := equipment.NewEquipmentHandler(handlers.NewLogger(), mockService)

	mockService.On("List", mock.Anything, admin, "", (*models.Date)(nil)).Return([]api.EquipmentRecordSchema{
		{ID: "e1", TeamID: "team-1"},
		{ID: "e2", TeamID: "team-2"},
	}, nil).Once()

	w := httptest.NewRecorder()
	h.List(w, handlers.NewRequest(http.MethodGet, "/equipment-records", nil, admin))

	assert.Equal(t, http.StatusOK, w.Code)
	var resp []api.EquipmentRecordSchema
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Len(t, resp, 2)
}

func TestEquipmentHandler_Update_KeyCollision(t *testing.T) {
	mockService := mocks.NewMockEquipmentService(t)
	h := equipment.NewEquipmentHandler(handlers.NewLogger(), mockService)

	crane := "crane"
	mockService.On("Update", mock.Anything, manager, "e1", equipsvc.UpdateInput{EquipmentType: &crane}).
		Return(nil, repo.ErrEquipmentExists).Once()

	req := handlers.NewRequest(http.MethodPut, "/equipment-records/e1", []byte(`{"equipment_type":"crane"}`), manager)
	req = handlers.WithURLParam(req, "id", "e1")
	w := httptest.NewRecorder()

	h.Update(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	resp := handlers.DecodeErrorResponse(t, w.Body)
	assert.Equal(t, api.ErrCodeEquipmentExists, resp.Error.Code)
}

func TestEquipmentHandler_Update_Success(t *testing.T) {
	mockService := mocks.NewMockEquipmentService(t)
	h := equipment.NewEquipmentHandler(handlers.NewLogger(), mockService)

	mockService.On("Update", mock.Anything, admin, "e1", mock.MatchedBy(func(in equipsvc.UpdateInput) bool {
		return in.Quantity != nil && *in.Quantity == 12 && in.WorkDate == nil && in.EquipmentType == nil
	})).Return(&api.EquipmentRecordSchema{ID: "e1", Quantity: 12}, nil).Once()

	req := handlers.NewRequest(http.MethodPut, "/equipment-records/e1", []byte(`{"quantity":12}`), admin)
	req = handlers.WithURLParam(req, "id", "e1")
	w := httptest.NewRecorder()

	h.Update(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestEquipmentHandler_Get_NotFound(t *testing.T) {
	mockService := mocks.NewMockEquipmentService(t)
	h := equipment.NewEquipmentHandler(handlers.NewLogger(), mockService)

	mockService.On("Get", mock.Anything, admin, "e404").Return(nil, repo.ErrNotFound).Once()

	req := handlers.WithURLParam(handlers.NewRequest(http.MethodGet, "/equipment-records/e404", nil, admin), "id", "e404")
	w := httptest.NewRecorder()

	h.Get(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestEquipmentHandler_Delete(t *testing.T) {
	mockService := mocks.NewMockEquipmentService(t)
	h := equipment.NewEquipmentHandler(handlers.NewLogger(), mockService)

	mockService.On("Delete", mock.Anything, manager, "e1").Return(nil).Once()

	req := handlers.WithURLParam(handlers.NewRequest(http.MethodDelete, "/equipment-records/e1", nil, manager), "id", "e1")
	w := httptest.NewRecorder()

	h.Delete(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"Equipment record deleted successfully"}`, w.Body.String())
}
