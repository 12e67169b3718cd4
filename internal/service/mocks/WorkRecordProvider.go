package mocks

import (
	context "context"

	models "sitelog/internal/models"

	mock "github.com/stretchr/testify/mock"
)

// WorkRecordProvider is a mock type for the WorkRecordProvider type
type WorkRecordProvider struct {
	mock.Mock
}

func (_m *WorkRecordProvider) Create(ctx context.Context, rec *models.WorkRecord) error {
	ret := _m.Called(ctx, rec)
	return ret.Error(0)
}

func (_m *WorkRecordProvider) GetByID(ctx context.Context, recordID string) (*models.WorkRecord, error) {
	ret := _m.Called(ctx, recordID)

	var r0 *models.WorkRecord
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*models.WorkRecord)
	}
	return r0, ret.Error(1)
}

func (_m *WorkRecordProvider) List(ctx context.Context, filter models.RecordFilter) ([]*models.WorkRecord, error) {
	ret := _m.Called(ctx, filter)

	var r0 []*models.WorkRecord
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]*models.WorkRecord)
	}
	return r0, ret.Error(1)
}

func (_m *WorkRecordProvider) Update(ctx context.Context, rec *models.WorkRecord) error {
	ret := _m.Called(ctx, rec)
	return ret.Error(0)
}

func (_m *WorkRecordProvider) Delete(ctx context.Context, recordID string) error {
	ret := _m.Called(ctx, recordID)
	return ret.Error(0)
}

// NewWorkRecordProvider creates a new instance of WorkRecordProvider. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewWorkRecordProvider(t interface {
	mock.TestingT
	Cleanup(func())
}) *WorkRecordProvider {
	m := &WorkRecordProvider{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
