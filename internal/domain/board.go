package domain

import (
	"fmt"
	"strings"

	m "pegsolve.dev/pkg/pegsolve/internal/model"
)

const (
	occupiedSymbol = 'x'
	openSymbol     = '.'
)

// Board is the occupancy of every position, true meaning a peg is present.
// It is a value type: assigning a Board copies it, which is how the search
// snapshots and restores state.
type Board [m.BoardSize]bool

// NewBoard returns a full board with a single hole at hole.
func NewBoard(hole m.Position) Board {
	var b Board

	b.Reset()
	b.Open(hole)

	return b
}

// IsOccupied reports whether pos holds a peg. Positions off the board are never occupied.
func (b Board) IsOccupied(pos m.Position) bool {
	if !pos.Valid() {
		return false
	}

	return b[pos]
}

// IsOpen reports whether pos is empty. Positions off the board are always open.
func (b Board) IsOpen(pos m.Position) bool {
	return !b.IsOccupied(pos)
}

// PegCount returns the number of occupied positions.
func (b Board) PegCount() int {
	count := 0

	for _, occupied := range b {
		if occupied {
			count++
		}
	}

	return count
}

// Reset fills every position.
func (b *Board) Reset() {
	for pos := range b {
		b[pos] = true
	}
}

// Open removes the peg at pos. Positions off the board are ignored.
func (b *Board) Open(pos m.Position) {
	b.set(pos, false)
}

func (b *Board) set(pos m.Position, occupied bool) {
	if !pos.Valid() {
		return
	}

	b[pos] = occupied
}

// ApplyJump moves the peg at from over the peg at over onto to.
// The board is only changed when from and over are occupied and to is
// open; otherwise it returns false and leaves the board untouched.
func (b *Board) ApplyJump(from, over, to m.Position) bool {
	if b.IsOpen(from) || b.IsOpen(over) || b.IsOccupied(to) || !to.Valid() {
		return false
	}

	b.set(from, false)
	b.set(over, false)
	b.set(to, true)

	return true
}

// Render draws the board as a triangle, one row per line.
func (b Board) Render() string {
	var sb strings.Builder

	pos := m.Position(0)

	for row := range m.BoardRows {
		sb.WriteString(strings.Repeat(" ", m.BoardRows-row))

		for col := 0; col <= row; col++ {
			if col > 0 {
				sb.WriteByte(' ')
			}

			sb.WriteByte(b.symbol(pos))
			pos++
		}

		sb.WriteByte('\n')
	}

	return sb.String()
}

func (b Board) symbol(pos m.Position) byte {
	if b.IsOccupied(pos) {
		return occupiedSymbol
	}

	return openSymbol
}

// ParseBoard reads a board back from its rendering. Leading and trailing
// blanks on each row are ignored; the row shape and symbols are not.
func ParseBoard(text string) (Board, error) {
	var b Board

	rows := strings.Split(strings.TrimRight(text, "\n"), "\n")
	if len(rows) != m.BoardRows {
		return b, fmt.Errorf("%w: want %d rows, got %d", ErrMalformedBoard, m.BoardRows, len(rows))
	}

	pos := m.Position(0)

	for row, line := range rows {
		symbols := strings.Fields(line)
		if len(symbols) != row+1 {
			return b, fmt.Errorf("%w: row %d has %d positions", ErrMalformedBoard, row, len(symbols))
		}

		for _, symbol := range symbols {
			switch symbol {
			case string(occupiedSymbol):
				b[pos] = true
			case string(openSymbol):
				b[pos] = false
			default:
				return b, fmt.Errorf("%w: unexpected symbol %q in row %d", ErrMalformedBoard, symbol, row)
			}

			pos++
		}
	}

	return b, nil
}
