package mocks

import (
	context "context"

	api "sitelog/internal/http/api"
	access "sitelog/internal/lib/access"
	auth "sitelog/internal/service/auth"

	mock "github.com/stretchr/testify/mock"
)

// MockAuthService is a mock type for the authService type
type MockAuthService struct {
	mock.Mock
}

func (_m *MockAuthService) Register(ctx context.Context, in auth.RegisterInput) (*api.UserSchema, error) {
	ret := _m.Called(ctx, in)

	var r0 *api.UserSchema
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*api.UserSchema)
	}
	return r0, ret.Error(1)
}

func (_m *MockAuthService) Login(ctx context.Context, email, password string) (*api.LoginResponse, error) {
	ret := _m.Called(ctx, email, password)

	var r0 *api.LoginResponse
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*api.LoginResponse)
	}
	return r0, ret.Error(1)
}

func (_m *MockAuthService) Me(ctx context.Context, actor access.Actor) (*api.UserSchema, error) {
	ret := _m.Called(ctx, actor)

	var r0 *api.UserSchema
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*api.UserSchema)
	}
	return r0, ret.Error(1)
}

// NewMockAuthService creates a new instance of MockAuthService. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewMockAuthService(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockAuthService {
	m := &MockAuthService{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
