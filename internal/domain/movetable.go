package domain

import (
	"slices"

	m "pegsolve.dev/pkg/pegsolve/internal/model"
)

// moveTable lists, for every starting position, the legal (over, to)
// pairs in the order the search tries them. It is never mutated.
var moveTable = [m.BoardSize][]m.Jump{
	jumps(0, 1, 3, 2, 5),
	jumps(1, 3, 6, 4, 8),
	jumps(2, 4, 7, 5, 9),
	jumps(3, 1, 0, 6, 10, 7, 12, 4, 5),
	jumps(4, 7, 11, 8, 13),
	jumps(5, 2, 0, 4, 3, 8, 12, 9, 14),
	jumps(6, 3, 1, 7, 8),
	jumps(7, 4, 2, 8, 9),
	jumps(8, 4, 1, 7, 6),
	jumps(9, 8, 7, 5, 2),
	jumps(10, 11, 12, 6, 3),
	jumps(11, 7, 4, 12, 13),
	jumps(12, 7, 3, 8, 5, 11, 10, 13, 14),
	jumps(13, 8, 4, 12, 11),
	jumps(14, 9, 5, 13, 12),
}

func jumps(from m.Position, pairs ...m.Position) []m.Jump {
	out := make([]m.Jump, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		out = append(out, m.Jump{From: from, Over: pairs[i], To: pairs[i+1]})
	}

	return out
}

// JumpsFrom returns the jumps that start at from, in search order.
// It returns nil for positions off the board.
func JumpsFrom(from m.Position) []m.Jump {
	if !from.Valid() {
		return nil
	}

	return slices.Clone(moveTable[from])
}

// MoveTable returns a copy of the whole move table indexed by starting position.
func MoveTable() [][]m.Jump {
	table := make([][]m.Jump, m.BoardSize)
	for from := range moveTable {
		table[from] = slices.Clone(moveTable[from])
	}

	return table
}

// findJump returns the table entry that moves a peg from -> to.
func findJump(from, to m.Position) (m.Jump, bool) {
	if !from.Valid() {
		return m.Jump{}, false
	}

	for _, jump := range moveTable[from] {
		if jump.To == to {
			return jump, true
		}
	}

	return m.Jump{}, false
}
