package mocks

import (
	context "context"

	models "sitelog/internal/models"

	mock "github.com/stretchr/testify/mock"
)

// EquipmentRecordProvider is a mock type for the EquipmentRecordProvider type
type EquipmentRecordProvider struct {
	mock.Mock
}

func (_m *EquipmentRecordProvider) Accumulate(ctx context.Context, rec *models.EquipmentRecord) (*models.EquipmentRecord, error) {
	ret := _m.Called(ctx, rec)

	if rf, ok := ret.Get(0).(func(context.Context, *models.EquipmentRecord) (*models.EquipmentRecord, error)); ok {
		return rf(ctx, rec)
	}

	var r0 *models.EquipmentRecord
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*models.EquipmentRecord)
	}
	return r0, ret.Error(1)
}

func (_m *EquipmentRecordProvider) GetByID(ctx context.Context, recordID string) (*models.EquipmentRecord, error) {
	ret := _m.Called(ctx, recordID)

	var r0 *models.EquipmentRecord
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*models.EquipmentRecord)
	}
	return r0, ret.Error(1)
}

func (_m *EquipmentRecordProvider) List(ctx context.Context, filter models.RecordFilter) ([]*models.EquipmentRecord, error) {
	ret := _m.Called(ctx, filter)

	var r0 []*models.EquipmentRecord
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]*models.EquipmentRecord)
	}
	return r0, ret.Error(1)
}

func (_m *EquipmentRecordProvider) Update(ctx context.Context, rec *models.EquipmentRecord) error {
	ret := _m.Called(ctx, rec)
	return ret.Error(0)
}

func (_m *EquipmentRecordProvider) Delete(ctx context.Context, recordID string) error {
	ret := _m.Called(ctx, recordID)
	return ret.Error(0)
}

// NewEquipmentRecordProvider creates a new instance of EquipmentRecordProvider. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewEquipmentRecordProvider(t interface {
	mock.TestingT
	Cleanup(func())
}) *EquipmentRecordProvider {
	m := &EquipmentRecordProvider{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
