// Package mocks provides testify mocks for the controller package.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"pegsolve.dev/pkg/pegsolve/internal/controller"
	m "pegsolve.dev/pkg/pegsolve/internal/model"
)

// MockUI is a mock implementation of controller.UI.
type MockUI struct {
	mock.Mock
}

// NewMockUI creates a MockUI and registers expectation checks on t.
func NewMockUI(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockUI {
	mockUI := &MockUI{}
	mockUI.Mock.Test(t)

	t.Cleanup(func() { mockUI.AssertExpectations(t) })

	return mockUI
}

// Start mocks controller.UI.Start.
func (_m *MockUI) Start(ctx context.Context, options ...controller.StartOption) error {
	ret := _m.Called(ctx, options)
	return ret.Error(0)
}

// Close mocks controller.UI.Close.
func (_m *MockUI) Close(ctx context.Context) {
	_m.Called(ctx)
}

// Wait mocks controller.UI.Wait.
func (_m *MockUI) Wait(ctx context.Context) {
	_m.Called(ctx)
}

// DisplayWarning mocks controller.UI.DisplayWarning.
func (_m *MockUI) DisplayWarning(ctx context.Context, message string) {
	_m.Called(ctx, message)
}

// DisplayTrace mocks controller.UI.DisplayTrace.
func (_m *MockUI) DisplayTrace(ctx context.Context, trace m.Trace) error {
	ret := _m.Called(ctx, trace)
	return ret.Error(0)
}

// DisplaySummary mocks controller.UI.DisplaySummary.
func (_m *MockUI) DisplaySummary(ctx context.Context, traces []m.Trace) error {
	ret := _m.Called(ctx, traces)
	return ret.Error(0)
}

// DisplayVerification mocks controller.UI.DisplayVerification.
func (_m *MockUI) DisplayVerification(ctx context.Context, index int, trace m.Trace, err error) {
	_m.Called(ctx, index, trace, err)
}

// DisplayMoveTable mocks controller.UI.DisplayMoveTable.
func (_m *MockUI) DisplayMoveTable(ctx context.Context, table [][]m.Jump) error {
	ret := _m.Called(ctx, table)
	return ret.Error(0)
}
