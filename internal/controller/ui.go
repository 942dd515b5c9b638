// Package controller provides output adapters for displaying solver results.
package controller

import (
	"context"

	"github.com/spf13/cobra"

	m "pegsolve.dev/pkg/pegsolve/internal/model"
)

// StartMode defines the mode of operation for the UI.
type StartMode int

// Available StartMode values.
const (
	ModeSolve StartMode = iota
	ModeView
	ModeVerify
	ModeMoves
)

// StartOption is a functional option for Start method.
type StartOption func(*StartConfig)

// StartConfig holds configuration for starting the UI.
type StartConfig struct {
	mode  StartMode
	plain bool
}

// WithSolveMode sets the UI to display freshly solved traces.
func WithSolveMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeSolve
	}
}

// WithViewMode sets the UI to display traces loaded from disk.
func WithViewMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeView
	}
}

// WithVerifyMode sets the UI to report trace verification.
func WithVerifyMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeVerify
	}
}

// WithMovesMode sets the UI to display the move table.
func WithMovesMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeMoves
	}
}

// WithPlainOutput forces line-oriented output even on a terminal.
func WithPlainOutput(plain bool) StartOption {
	return func(c *StartConfig) {
		c.plain = plain
	}
}

func newStartConfig(options ...StartOption) StartConfig {
	config := StartConfig{mode: ModeSolve}
	for _, option := range options {
		option(&config)
	}

	return config
}

// UI defines how solver results reach the user.
// Implementations can use different output methods (simple text, TUI, etc).
type UI interface {
	Start(ctx context.Context, options ...StartOption) error
	Close(ctx context.Context)
	Wait(ctx context.Context) // Wait for UI to finish (user closes it)
	DisplayWarning(ctx context.Context, message string)
	DisplayTrace(ctx context.Context, trace m.Trace) error
	DisplaySummary(ctx context.Context, traces []m.Trace) error
	DisplayVerification(ctx context.Context, index int, trace m.Trace, err error)
	DisplayMoveTable(ctx context.Context, table [][]m.Jump) error
}

// NewUI returns the interactive UI when writing to a terminal and the
// plain UI otherwise.
func NewUI(cmd *cobra.Command, tty bool) UI {
	if tty {
		return NewTUI(cmd)
	}

	return NewSimpleUI(cmd)
}
