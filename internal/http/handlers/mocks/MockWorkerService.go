package mocks

import (
	context "context"

	api "sitelog/internal/http/api"
	access "sitelog/internal/lib/access"

	mock "github.com/stretchr/testify/mock"
)

// MockWorkerService is a mock type for the workerService type
type MockWorkerService struct {
	mock.Mock
}

func (_m *MockWorkerService) List(ctx context.Context, actor access.Actor, requestedTeamID string) ([]api.WorkerSchema, error) {
	ret := _m.Called(ctx, actor, requestedTeamID)

	var r0 []api.WorkerSchema
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]api.WorkerSchema)
	}
	return r0, ret.Error(1)
}

func (_m *MockWorkerService) Create(ctx context.Context, name, teamID string) (*api.WorkerSchema, error) {
	ret := _m.Called(ctx, name, teamID)

	var r0 *api.WorkerSchema
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*api.WorkerSchema)
	}
	return r0, ret.Error(1)
}

func (_m *MockWorkerService) Get(ctx context.Context, workerID string) (*api.WorkerSchema, error) {
	ret := _m.Called(ctx, workerID)

	var r0 *api.WorkerSchema
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*api.WorkerSchema)
	}
	return r0, ret.Error(1)
}

func (_m *MockWorkerService) Delete(ctx context.Context, workerID string) error {
	ret := _m.Called(ctx, workerID)
	return ret.Error(0)
}

// NewMockWorkerService creates a new instance of MockWorkerService. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewMockWorkerService(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockWorkerService {
	m := &MockWorkerService{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
