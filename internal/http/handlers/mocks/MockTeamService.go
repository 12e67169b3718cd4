package mocks

import (
	context "context"

	api "sitelog/internal/http/api"
	access "sitelog/internal/lib/access"

	mock "github.com/stretchr/testify/mock"
)

// MockTeamService is a mock type for the teamService type
type MockTeamService struct {
	mock.Mock
}

func (_m *MockTeamService) Add(ctx context.Context, actor access.Actor, name, managerID string) (*api.TeamSchema, error) {
	ret := _m.Called(ctx, actor, name, managerID)

	var r0 *api.TeamSchema
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*api.TeamSchema)
	}
	return r0, ret.Error(1)
}

func (_m *MockTeamService) Get(ctx context.Context, teamID string) (*api.TeamSchema, error) {
	ret := _m.Called(ctx, teamID)

	var r0 *api.TeamSchema
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*api.TeamSchema)
	}
	return r0, ret.Error(1)
}

func (_m *MockTeamService) List(ctx context.Context) ([]api.TeamSchema, error) {
	ret := _m.Called(ctx)

	var r0 []api.TeamSchema
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]api.TeamSchema)
	}
	return r0, ret.Error(1)
}

// NewMockTeamService creates a new instance of MockTeamService. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewMockTeamService(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockTeamService {
	m := &MockTeamService{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
