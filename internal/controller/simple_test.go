package controller

import (
	"bytes"
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "pegsolve.dev/pkg/pegsolve/internal/model"
)

const (
	startBoard = "     .\n    x x\n   x x x\n  x x x x\n x x x x x\n"
	afterBoard = "     x\n    . x\n   . x x\n  x x x x\n x x x x x\n"
)

func newTestSimpleUI() (*SimpleUI, *bytes.Buffer) {
	var buf bytes.Buffer

	cmd := &cobra.Command{}
	cmd.SetOut(&buf)

	return NewSimpleUI(cmd), &buf
}

func TestSimpleUI_DisplayTrace(t *testing.T) {
	tests := []struct {
		name  string
		trace m.Trace
		want  string
	}{
		{
			name: "solved trace prints every board followed by a blank line",
			trace: m.Trace{
				Hole:   0,
				Solved: true,
				Boards: []string{startBoard, afterBoard},
			},
			want: " === 0 ===\n" + startBoard + "\n" + afterBoard + "\n\n",
		},
		{
			name: "unsolved trace reports the failure",
			trace: m.Trace{
				Hole:   0,
				Solved: false,
				Boards: []string{startBoard},
			},
			want: " === 0 ===\n" + startBoard + "\nno solution from hole 0 (14 pegs left)\n\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ui, buf := newTestSimpleUI()

			require.NoError(t, ui.DisplayTrace(context.Background(), tt.trace))
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestSimpleUI_DisplaySummary(t *testing.T) {
	ui, buf := newTestSimpleUI()

	traces := []m.Trace{
		{Hole: 0, Solved: true, Boards: make([]string, 14), Stats: m.Stats{Nodes: 13416, Duration: 1500 * time.Microsecond}},
		{Hole: 0, Requested: 99, Substituted: true, Solved: true, Boards: make([]string, 14)},
		{Hole: 6, Solved: false, Boards: make([]string, 1), Stats: m.Stats{Nodes: 42}},
	}

	require.NoError(t, ui.DisplaySummary(context.Background(), traces))

	out := buf.String()
	for _, want := range []string{"Hole", "Solved", "Jumps", "Nodes", "13416", "1.5ms", "0 (asked 99)", "yes", "no", "42", "Solved 2/3"} {
		assert.Contains(t, out, want)
	}
}

func TestSimpleUI_DisplayWarning(t *testing.T) {
	ui, buf := newTestSimpleUI()

	ui.DisplayWarning(context.Background(), "hole 20 is not on the board, using 0")
	assert.Equal(t, "warning: hole 20 is not on the board, using 0\n", buf.String())
}

func TestSimpleUI_DisplayVerification(t *testing.T) {
	ui, buf := newTestSimpleUI()
	trace := m.Trace{Hole: 3, Boards: make([]string, 14)}

	ui.DisplayVerification(context.Background(), 0, trace, nil)
	ui.DisplayVerification(context.Background(), 1, trace, errors.New("step 4: boards are not one legal jump apart"))

	assert.Equal(t,
		"trace 0 (hole 3): ok, 13 jumps\n"+
			"trace 1 (hole 3): FAILED: step 4: boards are not one legal jump apart\n",
		buf.String())
}

func TestSimpleUI_DisplayMoveTable(t *testing.T) {
	ui, buf := newTestSimpleUI()

	table := [][]m.Jump{
		{{From: 0, Over: 1, To: 3}, {From: 0, Over: 2, To: 5}},
		{{From: 1, Over: 3, To: 6}},
	}

	require.NoError(t, ui.DisplayMoveTable(context.Background(), table))

	out := buf.String()
	for _, want := range []string{"From", "Over", "To", "Jumps", "3"} {
		assert.Contains(t, out, want)
	}

	assert.Equal(t, 1, bytes.Count(buf.Bytes(), []byte(" 0 ")), "starting position labelled once")
}

func TestSimpleUI_CanceledContext(t *testing.T) {
	ui, buf := newTestSimpleUI()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	require.Error(t, ui.Start(ctx))
	require.Error(t, ui.DisplayTrace(ctx, m.Trace{}))
	require.Error(t, ui.DisplaySummary(ctx, nil))
	require.Error(t, ui.DisplayMoveTable(ctx, nil))
	ui.DisplayWarning(ctx, "ignored")
	ui.DisplayVerification(ctx, 0, m.Trace{}, nil)
	ui.Wait(ctx)
	ui.Close(ctx)

	assert.Empty(t, buf.String())
}

func TestNewUI(t *testing.T) {
	cmd := &cobra.Command{}

	assert.IsType(t, &SimpleUI{}, NewUI(cmd, false))
	assert.IsType(t, &TUI{}, NewUI(cmd, true))
}

func TestIsTTY(t *testing.T) {
	assert.False(t, IsTTY(nil))

	f, err := os.CreateTemp(t.TempDir(), "tty")
	require.NoError(t, err)
	defer f.Close()

	assert.False(t, IsTTY(f))
}
