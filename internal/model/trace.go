package model

import "time"

// Stats captures how much work a search did.
type Stats struct {
	Nodes    int           `yaml:"nodes"`
	Duration time.Duration `yaml:"duration"`
}

// Trace is the ordered record of board renderings from the starting
// board to the board the search ended on.
type Trace struct {
	Requested   int
	Hole        Position
	Substituted bool
	Solved      bool
	Boards      []string
	Jumps       []Jump
	Stats       Stats
}

// Final returns the last rendering, or an empty string for an empty trace.
func (t Trace) Final() string {
	if len(t.Boards) == 0 {
		return ""
	}

	return t.Boards[len(t.Boards)-1]
}

// Steps returns the number of jumps recorded in the trace.
func (t Trace) Steps() int {
	if len(t.Boards) == 0 {
		return 0
	}

	return len(t.Boards) - 1
}
