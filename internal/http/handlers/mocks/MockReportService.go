package mocks

import (
	context "context"

	api "sitelog/internal/http/api"
	access "sitelog/internal/lib/access"

	mock "github.com/stretchr/testify/mock"
)

// MockReportService is a mock type for the reportService type
type MockReportService struct {
	mock.Mock
}

func (_m *MockReportService) Monthly(ctx context.Context, actor access.Actor, month, requestedTeamID string) (*api.MonthlyReportResponse, error) {
	ret := _m.Called(ctx, actor, month, requestedTeamID)

	var r0 *api.MonthlyReportResponse
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*api.MonthlyReportResponse)
	}
	return r0, ret.Error(1)
}

// NewMockReportService creates a new instance of MockReportService. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewMockReportService(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockReportService {
	m := &MockReportService{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
