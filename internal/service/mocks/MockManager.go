package mocks

import (
	context "context"

	"github.com/stretchr/testify/assert"
	mock "github.com/stretchr/testify/mock"
)

// MockManager stands in for the transaction manager in service tests.
type MockManager struct {
	mock.Mock

	t mock.TestingT
}

func (m *MockManager) Do(ctx context.Context, fn func(context.Context) error) error {
	args := m.Called(ctx, fn)
	return args.Error(0)
}

// ExpectTx registers one Do call that runs the callback with ctx, checks the
// callback's error against want and returns want to the caller.
func (m *MockManager) ExpectTx(ctx context.Context, want error) *mock.Call {
	return m.On("Do", ctx, mock.AnythingOfType("func(context.Context) error")).
		Run(func(args mock.Arguments) {
			fn := args.Get(1).(func(context.Context) error)
			err := fn(ctx)
			if want == nil {
				assert.NoError(m.t, err)
				return
			}
			assert.ErrorIs(m.t, err, want)
		}).
		Return(want).
		Once()
}

// NewMockManager creates a new instance of MockManager. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewMockManager(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockManager {
	m := &MockManager{t: t}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
