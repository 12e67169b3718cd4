package mocks

import (
	context "context"

	api "sitelog/internal/http/api"
	access "sitelog/internal/lib/access"
	models "sitelog/internal/models"
	recordsvc "sitelog/internal/service/workrecord"

	mock "github.com/stretchr/testify/mock"
)

// MockWorkRecordService is a mock type for the workRecordService type
type MockWorkRecordService struct {
	mock.Mock
}

func (_m *MockWorkRecordService) List(ctx context.Context, actor access.Actor, requestedTeamID string, workDate *models.Date) ([]api.WorkRecordSchema, error) {
	ret := _m.Called(ctx, actor, requestedTeamID, workDate)

	var r0 []api.WorkRecordSchema
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]api.WorkRecordSchema)
	}
	return r0, ret.Error(1)
}

func (_m *MockWorkRecordService) Create(ctx context.Context, actor access.Actor, in recordsvc.CreateInput) (*api.WorkRecordSchema, error) {
	ret := _m.Called(ctx, actor, in)

	var r0 *api.WorkRecordSchema
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*api.WorkRecordSchema)
	}
	return r0, ret.Error(1)
}

func (_m *MockWorkRecordService) Get(ctx context.Context, actor access.Actor, recordID string) (*api.WorkRecordSchema, error) {
	ret := _m.Called(ctx, actor, recordID)

	var r0 *api.WorkRecordSchema
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*api.WorkRecordSchema)
	}
	return r0, ret.Error(1)
}

func (_m *MockWorkRecordService) Update(ctx context.Context, actor access.Actor, recordID string, in recordsvc.UpdateInput) (*api.WorkRecordSchema, error) {
	ret := _m.Called(ctx, actor, recordID, in)

	var r0 *api.WorkRecordSchema
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*api.WorkRecordSchema)
	}
	return r0, ret.Error(1)
}

func (_m *MockWorkRecordService) Delete(ctx context.Context, actor access.Actor, recordID string) error {
	ret := _m.Called(ctx, actor, recordID)
	return ret.Error(0)
}

// NewMockWorkRecordService creates a new instance of MockWorkRecordService. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewMockWorkRecordService(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockWorkRecordService {
	m := &MockWorkRecordService{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
