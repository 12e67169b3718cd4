package mocks

import (
	context "context"

	api "sitelog/internal/http/api"
	access "sitelog/internal/lib/access"
	models "sitelog/internal/models"
	equipsvc "sitelog/internal/service/equipment"

	mock "github.com/stretchr/testify/mock"
)

// MockEquipmentService is a mock type for the equipmentService type
type MockEquipmentService struct {
	mock.Mock
}

func (_m *MockEquipmentService) List(ctx context.Context, actor access.Actor, requestedTeamID string, workDate *models.Date) ([]api.EquipmentRecordSchema, error) {
	ret := _m.Called(ctx, actor, requestedTeamID, workDate)

	var r0 []api.EquipmentRecordSchema
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]api.EquipmentRecordSchema)
	}
	return r0, ret.Error(1)
}

func (_m *MockEquipmentService) Create(ctx context.Context, actor access.Actor, in equipsvc.CreateInput) (*api.EquipmentRecordSchema, bool, error) {
	ret := _m.Called(ctx, actor, in)

	var r0 *api.EquipmentRecordSchema
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*api.EquipmentRecordSchema)
	}
	return r0, ret.Bool(1), ret.Error(2)
}

func (_m *MockEquipmentService) Get(ctx context.Context, actor access.Actor, recordID string) (*api.EquipmentRecordSchema, error) {
	ret := _m.Called(ctx, actor, recordID)

	var r0 *api.EquipmentRecordSchema
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*api.EquipmentRecordSchema)
	}
	return r0, ret.Error(1)
}

func (_m *MockEquipmentService) Update(ctx context.Context, actor access.Actor, recordID string, in equipsvc.UpdateInput) (*api.EquipmentRecordSchema, error) {
	ret := _m.Called(ctx, actor, recordID, in)

	var r0 *api.EquipmentRecordSchema
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*api.EquipmentRecordSchema)
	}
	return r0, ret.Error(1)
}

func (_m *MockEquipmentService) Delete(ctx context.Context, actor access.Actor, recordID string) error {
	ret := _m.Called(ctx, actor, recordID)
	return ret.Error(0)
}

// NewMockEquipmentService creates a new instance of MockEquipmentService. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewMockEquipmentService(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockEquipmentService {
	m := &MockEquipmentService{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
