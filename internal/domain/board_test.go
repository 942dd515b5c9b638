package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "pegsolve.dev/pkg/pegsolve/internal/model"
)

func TestNewBoard_SingleHole(t *testing.T) {
	for hole := m.Position(0); hole < m.BoardSize; hole++ {
		board := NewBoard(hole)

		assert.Equal(t, 14, board.PegCount(), "hole %d", hole)
		assert.True(t, board.IsOpen(hole), "hole %d", hole)

		for pos := m.Position(0); pos < m.BoardSize; pos++ {
			if pos != hole {
				assert.True(t, board.IsOccupied(pos), "hole %d pos %d", hole, pos)
			}
		}
	}
}

func TestBoard_ReadsOnReturnedValue(t *testing.T) {
	assert.Equal(t, 14, NewBoard(5).PegCount())
	assert.True(t, NewBoard(5).IsOpen(5))
	assert.True(t, NewBoard(5).IsOccupied(0))
	assert.Equal(t, "     x\n    x x\n   x x .\n  x x x x\n x x x x x\n", NewBoard(5).Render())
}

func TestBoard_OutOfRange(t *testing.T) {
	board := NewBoard(0)

	for _, pos := range []m.Position{-1, 15, 100} {
		assert.False(t, board.IsOccupied(pos), "pos %d", pos)
		assert.True(t, board.IsOpen(pos), "pos %d", pos)
	}

	before := board
	board.Open(-1)
	board.Open(15)
	assert.Equal(t, before, board)
}

func TestBoard_Reset(t *testing.T) {
	var board Board
	assert.Equal(t, 0, board.PegCount())

	board.Reset()
	assert.Equal(t, m.BoardSize, board.PegCount())
}

func TestBoard_ApplyJump(t *testing.T) {
	t.Run("legal jump moves the peg and removes the hopped one", func(t *testing.T) {
		board := NewBoard(8)

		require.True(t, board.ApplyJump(1, 4, 8))
		assert.True(t, board.IsOpen(1))
		assert.True(t, board.IsOpen(4))
		assert.True(t, board.IsOccupied(8))
		assert.Equal(t, 13, board.PegCount())
	})

	t.Run("hopped position open leaves the board untouched", func(t *testing.T) {
		board := NewBoard(4)
		before := board

		require.False(t, board.ApplyJump(1, 4, 8))
		assert.Equal(t, before, board)
		assert.Equal(t, 14, board.PegCount())
	})

	tests := []struct {
		name           string
		hole           m.Position
		from, over, to m.Position
	}{
		{"source empty", 0, 0, 1, 3},
		{"hopped empty", 1, 0, 1, 3},
		{"landing occupied", 5, 0, 1, 3},
		{"landing off board", 0, 14, 13, 15},
		{"source off board", 0, -1, 0, 1},
		{"hopped off board", 0, 14, 15, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board := NewBoard(tt.hole)
			before := board

			assert.False(t, board.ApplyJump(tt.from, tt.over, tt.to))
			assert.Equal(t, before, board)
		})
	}
}

func TestBoard_Render(t *testing.T) {
	board := NewBoard(0)
	assert.Equal(t, "     .\n    x x\n   x x x\n  x x x x\n x x x x x\n", board.Render())

	board = NewBoard(12)
	assert.Equal(t, "     x\n    x x\n   x x x\n  x x x x\n x x . x x\n", board.Render())
}

func TestParseBoard(t *testing.T) {
	t.Run("round trips every single-hole board", func(t *testing.T) {
		for hole := m.Position(0); hole < m.BoardSize; hole++ {
			board := NewBoard(hole)

			parsed, err := ParseBoard(board.Render())
			require.NoError(t, err)
			assert.Equal(t, board, parsed)
		}
	})

	tests := []struct {
		name string
		text string
	}{
		{"empty", ""},
		{"too few rows", "     x\n    x x\n"},
		{"row too long", "     x x\n    x x\n   x x x\n  x x x x\n x x x x x\n"},
		{"bad symbol", "     o\n    x x\n   x x x\n  x x x x\n x x x x x\n"},
		{"too many rows", "     x\n    x x\n   x x x\n  x x x x\n x x x x x\nx\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseBoard(tt.text)
			require.ErrorIs(t, err, ErrMalformedBoard)
		})
	}
}
