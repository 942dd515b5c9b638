// Package model defines the data structures for the peg solitaire solver.
package model

import "fmt"

// BoardSize is the number of positions on the triangular board.
const BoardSize = 15

// BoardRows is the number of rows on the triangular board.
const BoardRows = 5

// DefaultHole is used when a requested starting hole is off the board.
const DefaultHole Position = 0

// Position identifies one of the board positions in row-major order:
// row r starts at r(r+1)/2 and holds r+1 positions.
type Position int

// Valid reports whether p lies on the board.
func (p Position) Valid() bool {
	return p >= 0 && p < BoardSize
}

// Jump is a single move: the peg at From hops over the peg at Over
// and lands on the empty position To. The hopped peg is removed.
type Jump struct {
	From Position `yaml:"from"`
	Over Position `yaml:"over"`
	To   Position `yaml:"to"`
}

func (j Jump) String() string {
	return fmt.Sprintf("%d over %d to %d", j.From, j.Over, j.To)
}
