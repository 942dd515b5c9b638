package domain

import (
	"context"
	"log/slog"
	"time"

	m "pegsolve.dev/pkg/pegsolve/internal/model"
)

// Solver finds a sequence of jumps that leaves a single peg on the board.
type Solver interface {
	// Solve searches from a full board with one hole at requested. A
	// requested hole off the board is replaced by m.DefaultHole and the
	// returned trace is marked Substituted.
	Solve(ctx context.Context, requested int) (m.Trace, error)
}

type solver struct{}

// NewSolver returns the depth-first backtracking solver.
func NewSolver() Solver {
	return &solver{}
}

func (s *solver) Solve(ctx context.Context, requested int) (m.Trace, error) {
	if err := ctx.Err(); err != nil {
		return m.Trace{}, err
	}

	hole, substituted := ResolveHole(requested)
	if substituted {
		slog.Warn("starting hole is off the board, using default", "requested", requested, "hole", hole)
	}

	trace := Search(NewBoard(hole))
	trace.Requested = requested
	trace.Hole = hole
	trace.Substituted = substituted

	slog.Debug("search finished", "hole", hole, "solved", trace.Solved, "steps", trace.Steps(),
		"nodes", trace.Stats.Nodes, "duration", trace.Stats.Duration)

	return trace, nil
}

// ResolveHole maps a requested starting hole onto the board, reporting
// whether the default had to be substituted.
func ResolveHole(requested int) (m.Position, bool) {
	hole := m.Position(requested)
	if !hole.Valid() {
		return m.DefaultHole, true
	}

	return hole, false
}

// Search runs the depth-first search from start. Candidate jumps are
// tried by ascending starting position and then in table order, so the
// same start always yields the same trace. An unsolved trace holds only
// the starting board.
func Search(start Board) m.Trace {
	begin := time.Now()

	s := &search{
		board:  start,
		boards: []string{start.Render()},
	}
	s.run()

	return m.Trace{
		Solved: s.solved,
		Boards: s.boards,
		Jumps:  s.jumps,
		Stats:  m.Stats{Nodes: s.nodes, Duration: time.Since(begin)},
	}
}

type search struct {
	board  Board
	boards []string
	jumps  []m.Jump
	nodes  int
	solved bool
}

func (s *search) run() bool {
	if s.board.PegCount() == 1 {
		s.solved = true
		return true
	}

	for from := range moveTable {
		for _, jump := range moveTable[from] {
			s.nodes++

			saved := s.board
			if !s.board.ApplyJump(jump.From, jump.Over, jump.To) {
				continue
			}

			s.boards = append(s.boards, s.board.Render())
			s.jumps = append(s.jumps, jump)

			if s.run() {
				return true
			}

			s.board = saved
			s.boards = s.boards[:len(s.boards)-1]
			s.jumps = s.jumps[:len(s.jumps)-1]
		}
	}

	return false
}
