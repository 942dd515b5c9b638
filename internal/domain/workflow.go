// Package domain holds the peg solitaire engine (move table, board and
// backtracking search) and the workflow that drives it from the CLI.
package domain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"pegsolve.dev/pkg/pegsolve/internal/adapter"
	"pegsolve.dev/pkg/pegsolve/internal/controller"
	m "pegsolve.dev/pkg/pegsolve/internal/model"
)

// DefaultHoles are the starting holes solved when none are requested.
var DefaultHoles = []int{0, 1, 2, 3, 4}

// SolveArgs contains the arguments for solving a set of starting holes.
type SolveArgs struct {
	Holes   []int
	Threads int
	Reports m.Path
	Save    bool
	Plain   bool
}

// ViewArgs contains the arguments for displaying saved traces.
type ViewArgs struct {
	Reports m.Path
	Plain   bool
}

// VerifyArgs contains the arguments for checking saved traces.
type VerifyArgs struct {
	Reports m.Path
}

// Workflow defines the operations exposed to the CLI.
type Workflow interface {
	Solve(ctx context.Context, args SolveArgs) error
	View(ctx context.Context, args ViewArgs) error
	Verify(ctx context.Context, args VerifyArgs) error
	Moves(ctx context.Context) error
}

type workflow struct {
	adapter.ReportStore
	controller.UI
	Solver
}

// NewWorkflow creates a new Workflow instance with the provided dependencies.
func NewWorkflow(
	reportStore adapter.ReportStore,
	ui controller.UI,
	solver Solver,
) Workflow {
	return &workflow{
		ReportStore: reportStore,
		UI:          ui,
		Solver:      solver,
	}
}

func (w *workflow) Solve(ctx context.Context, args SolveArgs) error {
	holes := args.Holes
	if len(holes) == 0 {
		holes = DefaultHoles
	}

	if err := w.Start(ctx, controller.WithSolveMode(), controller.WithPlainOutput(args.Plain)); err != nil {
		slog.Error("Failed to start workflow UI", "error", err)
		return err
	}
	defer w.Close(ctx)

	traces, err := w.solveAll(ctx, holes, args.Threads)
	if err != nil {
		slog.Error("Failed to solve", "holes", holes, "error", err)
		return fmt.Errorf("solve: %w", err)
	}

	if err := w.display(ctx, traces); err != nil {
		return err
	}

	if args.Save {
		if err := w.SaveTraces(ctx, args.Reports, traces); err != nil {
			slog.Error("Failed to save traces", "reports", args.Reports, "error", err)
			return fmt.Errorf("save traces: %w", err)
		}

		slog.Info("saved traces", "reports", args.Reports, "count", len(traces))
	}

	w.Wait(ctx)

	return unsolvedError(traces)
}

// solveAll solves every hole, keeping results in request order. Each
// solve owns its own board, so holes can be searched concurrently.
func (w *workflow) solveAll(ctx context.Context, holes []int, threads int) ([]m.Trace, error) {
	traces := make([]m.Trace, len(holes))

	group, groupCtx := errgroup.WithContext(ctx)
	if threads > 0 {
		group.SetLimit(threads)
	}

	for i, hole := range holes {
		group.Go(func() error {
			trace, err := w.Solver.Solve(groupCtx, hole)
			if err != nil {
				return fmt.Errorf("hole %d: %w", hole, err)
			}

			traces[i] = trace

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}

	return traces, nil
}

func (w *workflow) display(ctx context.Context, traces []m.Trace) error {
	for _, trace := range traces {
		if trace.Substituted {
			w.DisplayWarning(ctx, fmt.Sprintf("hole %d is not on the board, using %d", trace.Requested, trace.Hole))
		}
	}

	for _, trace := range traces {
		if err := w.DisplayTrace(ctx, trace); err != nil {
			slog.Error("Failed to display trace", "hole", trace.Hole, "error", err)
			return fmt.Errorf("display: %w", err)
		}
	}

	if err := w.DisplaySummary(ctx, traces); err != nil {
		slog.Error("Failed to display summary", "error", err)
		return fmt.Errorf("display: %w", err)
	}

	return nil
}

func unsolvedError(traces []m.Trace) error {
	var unsolved []m.Position

	for _, trace := range traces {
		if !trace.Solved {
			unsolved = append(unsolved, trace.Hole)
		}
	}

	if len(unsolved) == 0 {
		return nil
	}

	return fmt.Errorf("%w from holes %v", ErrUnsolved, unsolved)
}

func (w *workflow) View(ctx context.Context, args ViewArgs) error {
	traces, err := w.LoadTraces(ctx, args.Reports)
	if err != nil {
		slog.Error("Failed to load traces", "reports", args.Reports, "error", err)
		return fmt.Errorf("load traces: %w", err)
	}

	if err := w.Start(ctx, controller.WithViewMode(), controller.WithPlainOutput(args.Plain)); err != nil {
		slog.Error("Failed to start workflow UI", "error", err)
		return err
	}
	defer w.Close(ctx)

	if len(traces) == 0 {
		w.DisplayWarning(ctx, fmt.Sprintf("no traces saved in %s", args.Reports))
		return nil
	}

	if err := w.display(ctx, traces); err != nil {
		return err
	}

	w.Wait(ctx)

	return nil
}

func (w *workflow) Verify(ctx context.Context, args VerifyArgs) error {
	traces, err := w.LoadTraces(ctx, args.Reports)
	if err != nil {
		slog.Error("Failed to load traces", "reports", args.Reports, "error", err)
		return fmt.Errorf("load traces: %w", err)
	}

	if err := w.Start(ctx, controller.WithVerifyMode()); err != nil {
		slog.Error("Failed to start workflow UI", "error", err)
		return err
	}
	defer w.Close(ctx)

	var errs []error

	for i, trace := range traces {
		verifyErr := VerifyTrace(trace)
		if verifyErr != nil {
			slog.Warn("trace failed verification", "index", i, "hole", trace.Hole, "error", verifyErr)
			errs = append(errs, fmt.Errorf("trace %d: %w", i, verifyErr))
		}

		w.DisplayVerification(ctx, i, trace, verifyErr)
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidTrace, errors.Join(errs...))
	}

	return nil
}

func (w *workflow) Moves(ctx context.Context) error {
	if err := w.Start(ctx, controller.WithMovesMode()); err != nil {
		slog.Error("Failed to start workflow UI", "error", err)
		return err
	}
	defer w.Close(ctx)

	if err := w.DisplayMoveTable(ctx, MoveTable()); err != nil {
		slog.Error("Failed to display move table", "error", err)
		return fmt.Errorf("display: %w", err)
	}

	return nil
}
