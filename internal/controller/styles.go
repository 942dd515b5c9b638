package controller

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	m "pegsolve.dev/pkg/pegsolve/internal/model"
)

var (
	colorPeg     = lipgloss.Color("#2CD7C7")
	colorHole    = lipgloss.Color("#2C4A54")
	colorMoved   = lipgloss.Color("#F4D03F")
	colorRemoved = lipgloss.Color("#E74C3C")
	colorBorder  = lipgloss.Color("#16858E")
)

var styles = struct {
	Title   lipgloss.Style
	Status  lipgloss.Style
	Success lipgloss.Style
	Failure lipgloss.Style
	Help    lipgloss.Style
	Board   lipgloss.Style
	Peg     lipgloss.Style
	Hole    lipgloss.Style
	Landed  lipgloss.Style
	Removed lipgloss.Style
}{
	Title:   lipgloss.NewStyle().Bold(true).Foreground(colorPeg),
	Status:  lipgloss.NewStyle().Foreground(colorPeg),
	Success: lipgloss.NewStyle().Bold(true).Foreground(colorPeg),
	Failure: lipgloss.NewStyle().Bold(true).Foreground(colorRemoved),
	Help:    lipgloss.NewStyle().Foreground(colorHole),
	Board: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorBorder).
		Padding(0, 1),
	Peg:     lipgloss.NewStyle().Foreground(colorPeg),
	Hole:    lipgloss.NewStyle().Foreground(colorHole),
	Landed:  lipgloss.NewStyle().Bold(true).Foreground(colorMoved),
	Removed: lipgloss.NewStyle().Foreground(colorRemoved),
}

// styleBoard colours a board rendering. When jump is set, the landing
// position and the two emptied positions are highlighted.
func styleBoard(board string, jump *m.Jump) string {
	var b strings.Builder

	pos := m.Position(0)

	for _, r := range board {
		switch r {
		case 'x', '.':
			b.WriteString(symbolStyle(pos, r == 'x', jump).Render(string(r)))
			pos++
		default:
			b.WriteRune(r)
		}
	}

	return styles.Board.Render(strings.TrimRight(b.String(), "\n"))
}

func symbolStyle(pos m.Position, occupied bool, jump *m.Jump) lipgloss.Style {
	if jump != nil {
		switch pos {
		case jump.To:
			return styles.Landed
		case jump.From, jump.Over:
			return styles.Removed
		}
	}

	if occupied {
		return styles.Peg
	}

	return styles.Hole
}
