package mocks

import (
	context "context"

	api "sitelog/internal/http/api"
	access "sitelog/internal/lib/access"

	mock "github.com/stretchr/testify/mock"
)

// MockUserService is a mock type for the userService type
type MockUserService struct {
	mock.Mock
}

func (_m *MockUserService) List(ctx context.Context, actor access.Actor) ([]api.UserSchema, error) {
	ret := _m.Called(ctx, actor)

	var r0 []api.UserSchema
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]api.UserSchema)
	}
	return r0, ret.Error(1)
}

func (_m *MockUserService) Get(ctx context.Context, actor access.Actor, userID string) (*api.UserSchema, error) {
	ret := _m.Called(ctx, actor, userID)

	var r0 *api.UserSchema
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*api.UserSchema)
	}
	return r0, ret.Error(1)
}

// NewMockUserService creates a new instance of MockUserService. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewMockUserService(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockUserService {
	m := &MockUserService{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
