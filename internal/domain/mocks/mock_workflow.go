// Package mocks provides testify mocks for the domain package.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"pegsolve.dev/pkg/pegsolve/internal/domain"
)

// MockWorkflow is a mock implementation of domain.Workflow.
type MockWorkflow struct {
	mock.Mock
}

// NewMockWorkflow creates a MockWorkflow and registers expectation checks on t.
func NewMockWorkflow(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockWorkflow {
	workflow := &MockWorkflow{}
	workflow.Mock.Test(t)

	t.Cleanup(func() { workflow.AssertExpectations(t) })

	return workflow
}

// Solve mocks domain.Workflow.Solve.
func (_m *MockWorkflow) Solve(ctx context.Context, args domain.SolveArgs) error {
	ret := _m.Called(ctx, args)
	return ret.Error(0)
}

// View mocks domain.Workflow.View.
func (_m *MockWorkflow) View(ctx context.Context, args domain.ViewArgs) error {
	ret := _m.Called(ctx, args)
	return ret.Error(0)
}

// Verify mocks domain.Workflow.Verify.
func (_m *MockWorkflow) Verify(ctx context.Context, args domain.VerifyArgs) error {
	ret := _m.Called(ctx, args)
	return ret.Error(0)
}

// Moves mocks domain.Workflow.Moves.
func (_m *MockWorkflow) Moves(ctx context.Context) error {
	ret := _m.Called(ctx)
	return ret.Error(0)
}
