package domain

import (
	"fmt"

	m "pegsolve.dev/pkg/pegsolve/internal/model"
)

// VerifyTrace checks that a trace is a legal line of play: it starts from
// a full board with one hole at trace.Hole, every step is a single jump
// from the move table, a solved trace ends with one peg, and an unsolved
// trace holds only its starting board.
func VerifyTrace(trace m.Trace) error {
	if len(trace.Boards) == 0 {
		return ErrEmptyTrace
	}

	if !trace.Hole.Valid() {
		return fmt.Errorf("%w: hole %d is off the board", ErrBadStart, trace.Hole)
	}

	boards := make([]Board, 0, len(trace.Boards))

	for i, text := range trace.Boards {
		board, err := ParseBoard(text)
		if err != nil {
			return fmt.Errorf("board %d: %w", i, err)
		}

		boards = append(boards, board)
	}

	if boards[0] != NewBoard(trace.Hole) {
		return fmt.Errorf("%w: hole %d", ErrBadStart, trace.Hole)
	}

	if len(trace.Jumps) > 0 && len(trace.Jumps) != len(boards)-1 {
		return fmt.Errorf("%w: %d jumps for %d steps", ErrJumpMismatch, len(trace.Jumps), len(boards)-1)
	}

	for i := 1; i < len(boards); i++ {
		jump, err := stepBetween(boards[i-1], boards[i])
		if err != nil {
			return fmt.Errorf("step %d: %w", i, err)
		}

		if len(trace.Jumps) > 0 && trace.Jumps[i-1] != jump {
			return fmt.Errorf("step %d: %w: recorded %s, boards show %s", i, ErrJumpMismatch, trace.Jumps[i-1], jump)
		}
	}

	last := boards[len(boards)-1]

	switch {
	case trace.Solved && last.PegCount() != 1:
		return fmt.Errorf("%w: %d pegs left", ErrNotTerminal, last.PegCount())
	case !trace.Solved && last.PegCount() == 1:
		return fmt.Errorf("%w: one peg left but marked unsolved", ErrResultMismatch)
	case !trace.Solved && len(boards) > 1:
		return fmt.Errorf("%w: unsolved trace records %d jumps", ErrResultMismatch, len(boards)-1)
	}

	return nil
}

// stepBetween finds the table jump that turns before into after.
func stepBetween(before, after Board) (m.Jump, error) {
	var cleared, filled []m.Position

	for pos := range before {
		switch {
		case before[pos] && !after[pos]:
			cleared = append(cleared, m.Position(pos))
		case !before[pos] && after[pos]:
			filled = append(filled, m.Position(pos))
		}
	}

	if len(cleared) != 2 || len(filled) != 1 {
		return m.Jump{}, fmt.Errorf("%w: %d cleared, %d filled", ErrIllegalStep, len(cleared), len(filled))
	}

	to := filled[0]

	for i, from := range cleared {
		over := cleared[1-i]

		jump, ok := findJump(from, to)
		if ok && jump.Over == over {
			return jump, nil
		}
	}

	return m.Jump{}, fmt.Errorf("%w: %v to %d is not in the move table", ErrIllegalStep, cleared, to)
}
