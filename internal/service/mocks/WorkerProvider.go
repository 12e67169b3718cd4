package mocks

import (
	context "context"

	models "sitelog/internal/models"

	mock "github.com/stretchr/testify/mock"
)

// WorkerProvider is a mock type for the WorkerProvider type
type WorkerProvider struct {
	mock.Mock
}

func (_m *WorkerProvider) Create(ctx context.Context, worker *models.Worker) error {
	ret := _m.Called(ctx, worker)
	return ret.Error(0)
}

func (_m *WorkerProvider) GetByID(ctx context.Context, workerID string) (*models.Worker, error) {
	ret := _m.Called(ctx, workerID)

	var r0 *models.Worker
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*models.Worker)
	}
	return r0, ret.Error(1)
}

func (_m *WorkerProvider) List(ctx context.Context, teamID *string) ([]*models.Worker, error) {
	ret := _m.Called(ctx, teamID)

	var r0 []*models.Worker
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]*models.Worker)
	}
	return r0, ret.Error(1)
}

func (_m *WorkerProvider) Delete(ctx context.Context, workerID string) error {
	ret := _m.Called(ctx, workerID)
	return ret.Error(0)
}

// NewWorkerProvider creates a new instance of WorkerProvider. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewWorkerProvider(t interface {
	mock.TestingT
	Cleanup(func())
}) *WorkerProvider {
	m := &WorkerProvider{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
