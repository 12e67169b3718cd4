package mocks

import (
	context "context"

	models "sitelog/internal/models"

	mock "github.com/stretchr/testify/mock"
)

// TeamProvider is a mock type for the TeamProvider type
type TeamProvider struct {
	mock.Mock
}

func (_m *TeamProvider) Create(ctx context.Context, team *models.Team) error {
	ret := _m.Called(ctx, team)
	return ret.Error(0)
}

func (_m *TeamProvider) GetByID(ctx context.Context, teamID string) (*models.Team, error) {
	ret := _m.Called(ctx, teamID)

	var r0 *models.Team
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*models.Team)
	}
	return r0, ret.Error(1)
}

func (_m *TeamProvider) List(ctx context.Context) ([]*models.Team, error) {
	ret := _m.Called(ctx)

	var r0 []*models.Team
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]*models.Team)
	}
	return r0, ret.Error(1)
}

// NewTeamProvider creates a new instance of TeamProvider. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewTeamProvider(t interface {
	mock.TestingT
	Cleanup(func())
}) *TeamProvider {
	m := &TeamProvider{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
