package domain

import "errors"

var (
	// ErrEmptyTrace is returned when a trace holds no boards.
	ErrEmptyTrace = errors.New("trace is empty")
	// ErrMalformedBoard is returned when a rendering cannot be parsed.
	ErrMalformedBoard = errors.New("malformed board")
	// ErrBadStart is returned when a trace does not begin with a single hole.
	ErrBadStart = errors.New("trace does not start from a single hole")
	// ErrIllegalStep is returned when two consecutive boards are not one jump apart.
	ErrIllegalStep = errors.New("boards are not one legal jump apart")
	// ErrJumpMismatch is returned when a recorded jump disagrees with the boards.
	ErrJumpMismatch = errors.New("recorded jump does not match boards")
	// ErrNotTerminal is returned when a solved trace does not end with one peg.
	ErrNotTerminal = errors.New("solved trace does not end with one peg")
	// ErrResultMismatch is returned when an unsolved trace carries a line of play.
	ErrResultMismatch = errors.New("trace is marked unsolved but records a line of play")
	// ErrUnsolved is returned when the search is exhausted for a starting hole.
	ErrUnsolved = errors.New("no solution found")
	// ErrInvalidTrace is returned when one or more saved traces fail verification.
	ErrInvalidTrace = errors.New("invalid trace")
)
