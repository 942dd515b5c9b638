// Package mocks provides testify mocks for the adapter package.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	m "pegsolve.dev/pkg/pegsolve/internal/model"
)

// MockReportStore is a mock implementation of adapter.ReportStore.
type MockReportStore struct {
	mock.Mock
}

// NewMockReportStore creates a MockReportStore and registers expectation checks on t.
func NewMockReportStore(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockReportStore {
	store := &MockReportStore{}
	store.Mock.Test(t)

	t.Cleanup(func() { store.AssertExpectations(t) })

	return store
}

// SaveTraces mocks adapter.ReportStore.SaveTraces.
func (_m *MockReportStore) SaveTraces(ctx context.Context, dir m.Path, traces []m.Trace) error {
	ret := _m.Called(ctx, dir, traces)
	return ret.Error(0)
}

// LoadTraces mocks adapter.ReportStore.LoadTraces.
func (_m *MockReportStore) LoadTraces(ctx context.Context, dir m.Path) ([]m.Trace, error) {
	ret := _m.Called(ctx, dir)

	var traces []m.Trace
	if v, ok := ret.Get(0).([]m.Trace); ok {
		traces = v
	}

	return traces, ret.Error(1)
}
