package mocks

import (
	context "context"

	models "sitelog/internal/models"

	mock "github.com/stretchr/testify/mock"
)

// ReportProvider is a mock type for the ReportProvider type
type ReportProvider struct {
	mock.Mock
}

func (_m *ReportProvider) SiteHours(ctx context.Context, from, to models.Date, teamID *string) ([]*models.SiteHours, error) {
	ret := _m.Called(ctx, from, to, teamID)

	var r0 []*models.SiteHours
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]*models.SiteHours)
	}
	return r0, ret.Error(1)
}

func (_m *ReportProvider) EquipmentTotals(ctx context.Context, from, to models.Date, teamID *string) ([]*models.EquipmentTotal, error) {
	ret := _m.Called(ctx, from, to, teamID)

	var r0 []*models.EquipmentTotal
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]*models.EquipmentTotal)
	}
	return r0, ret.Error(1)
}

// NewReportProvider creates a new instance of ReportProvider. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewReportProvider(t interface {
	mock.TestingT
	Cleanup(func())
}) *ReportProvider {
	m := &ReportProvider{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
