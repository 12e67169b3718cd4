package mocks

import (
	context "context"

	models "sitelog/internal/models"

	mock "github.com/stretchr/testify/mock"
)

// TeamSeeder is a mock type for the TeamSeeder type
type TeamSeeder struct {
	mock.Mock
}

func (_m *TeamSeeder) Create(ctx context.Context, team *models.Team) error {
	ret := _m.Called(ctx, team)
	return ret.Error(0)
}

// NewTeamSeeder creates a new instance of TeamSeeder. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewTeamSeeder(t interface {
	mock.TestingT
	Cleanup(func())
}) *TeamSeeder {
	m := &TeamSeeder{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
