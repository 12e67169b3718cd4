package mocks

import (
	context "context"

	models "sitelog/internal/models"

	mock "github.com/stretchr/testify/mock"
)

// UserSeeder is a mock type for the UserSeeder type
type UserSeeder struct {
	mock.Mock
}

func (_m *UserSeeder) Count(ctx context.Context) (int, error) {
	ret := _m.Called(ctx)
	return ret.Int(0), ret.Error(1)
}

func (_m *UserSeeder) Create(ctx context.Context, user *models.User) error {
	ret := _m.Called(ctx, user)
	return ret.Error(0)
}

// NewUserSeeder creates a new instance of UserSeeder. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewUserSeeder(t interface {
	mock.TestingT
	Cleanup(func())
}) *UserSeeder {
	m := &UserSeeder{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
