package controller

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	m "pegsolve.dev/pkg/pegsolve/internal/model"
)

// TUI implements UI with an interactive Bubble Tea trace stepper. Output
// that is not a trace (warnings, tables, verification) is printed as plain text.
type TUI struct {
	cmd     *cobra.Command
	simple  *SimpleUI
	config  StartConfig
	traces  []m.Trace
	summary []m.Trace
}

// NewTUI creates a new TUI.
func NewTUI(cmd *cobra.Command) *TUI {
	return &TUI{
		cmd:    cmd,
		simple: NewSimpleUI(cmd),
		config: newStartConfig(),
	}
}

// Start resets collected traces and applies options.
func (t *TUI) Start(ctx context.Context, options ...StartOption) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	t.config = newStartConfig(options...)
	t.traces = nil
	t.summary = nil

	return nil
}

// Close finalizes the UI.
func (t *TUI) Close(ctx context.Context) {
	if err := ctx.Err(); err != nil {
		return
	}
}

// Wait runs the interactive stepper over the collected traces until the user quits.
func (t *TUI) Wait(ctx context.Context) {
	if err := ctx.Err(); err != nil {
		return
	}

	if !t.interactive() || len(t.traces) == 0 {
		return
	}

	program := tea.NewProgram(
		newTraceModel(t.traces),
		tea.WithContext(ctx),
		tea.WithOutput(t.cmd.OutOrStdout()),
		tea.WithAltScreen(),
	)
	if _, err := program.Run(); err != nil {
		t.simple.DisplayWarning(ctx, fmt.Sprintf("interactive view failed: %v", err))

		for _, trace := range t.traces {
			_ = t.simple.DisplayTrace(ctx, trace)
		}
	}

	if t.summary != nil {
		_ = t.simple.DisplaySummary(ctx, t.summary)
	}
}

func (t *TUI) interactive() bool {
	if t.config.plain {
		return false
	}

	return t.config.mode == ModeSolve || t.config.mode == ModeView
}

// DisplayWarning prints a warning line.
func (t *TUI) DisplayWarning(ctx context.Context, message string) {
	t.simple.DisplayWarning(ctx, message)
}

// DisplayTrace queues the trace for the stepper, or prints it in plain mode.
func (t *TUI) DisplayTrace(ctx context.Context, trace m.Trace) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if !t.interactive() {
		return t.simple.DisplayTrace(ctx, trace)
	}

	t.traces = append(t.traces, trace)

	return nil
}

// DisplaySummary prints the summary table once the stepper has closed.
func (t *TUI) DisplaySummary(ctx context.Context, traces []m.Trace) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if !t.interactive() {
		return t.simple.DisplaySummary(ctx, traces)
	}

	t.summary = traces

	return nil
}

// DisplayVerification prints the verification result.
func (t *TUI) DisplayVerification(ctx context.Context, index int, trace m.Trace, err error) {
	t.simple.DisplayVerification(ctx, index, trace, err)
}

// DisplayMoveTable prints the move table.
func (t *TUI) DisplayMoveTable(ctx context.Context, table [][]m.Jump) error {
	return t.simple.DisplayMoveTable(ctx, table)
}

type keyMap struct {
	Next      key.Binding
	Prev      key.Binding
	NextTrace key.Binding
	PrevTrace key.Binding
	First     key.Binding
	Last      key.Binding
	Quit      key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Next:      key.NewBinding(key.WithKeys("right", "l", " "), key.WithHelp("→/l", "next jump")),
		Prev:      key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "prev jump")),
		NextTrace: key.NewBinding(key.WithKeys("tab", "down", "j"), key.WithHelp("tab/j", "next hole")),
		PrevTrace: key.NewBinding(key.WithKeys("shift+tab", "up", "k"), key.WithHelp("shift+tab/k", "prev hole")),
		First:     key.NewBinding(key.WithKeys("g", "home"), key.WithHelp("g", "start")),
		Last:      key.NewBinding(key.WithKeys("G", "end"), key.WithHelp("G", "end")),
		Quit:      key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) bindings() []key.Binding {
	return []key.Binding{k.Prev, k.Next, k.PrevTrace, k.NextTrace, k.First, k.Last, k.Quit}
}

// traceModel is the Bubble Tea model stepping through trace boards.
type traceModel struct {
	traces   []m.Trace
	keys     keyMap
	trace    int
	step     int
	width    int
	height   int
	quitting bool
}

func newTraceModel(traces []m.Trace) traceModel {
	return traceModel{
		traces: traces,
		keys:   defaultKeyMap(),
	}
}

func (tm traceModel) Init() tea.Cmd {
	return nil
}

func (tm traceModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		tm.width = msg.Width
		tm.height = msg.Height

		return tm, nil

	case tea.KeyMsg:
		return tm.handleKeyPress(msg)
	}

	return tm, nil
}

func (tm traceModel) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, tm.keys.Quit):
		tm.quitting = true
		return tm, tea.Quit

	case key.Matches(msg, tm.keys.Next):
		tm.step = min(tm.step+1, tm.lastStep())

	case key.Matches(msg, tm.keys.Prev):
		tm.step = max(tm.step-1, 0)

	case key.Matches(msg, tm.keys.NextTrace):
		tm.trace = (tm.trace + 1) % len(tm.traces)
		tm.step = 0

	case key.Matches(msg, tm.keys.PrevTrace):
		tm.trace = (tm.trace - 1 + len(tm.traces)) % len(tm.traces)
		tm.step = 0

	case key.Matches(msg, tm.keys.First):
		tm.step = 0

	case key.Matches(msg, tm.keys.Last):
		tm.step = tm.lastStep()
	}

	return tm, nil
}

func (tm traceModel) current() m.Trace {
	return tm.traces[tm.trace]
}

func (tm traceModel) lastStep() int {
	return max(len(tm.current().Boards)-1, 0)
}

// jumpAt returns the jump that produced the board at step, if recorded.
func (tm traceModel) jumpAt(step int) *m.Jump {
	trace := tm.current()
	if step == 0 || step > len(trace.Jumps) {
		return nil
	}

	jump := trace.Jumps[step-1]

	return &jump
}

func (tm traceModel) View() string {
	if tm.quitting {
		return ""
	}

	var b strings.Builder

	trace := tm.current()

	b.WriteString(styles.Title.Render(fmt.Sprintf("Peg solitaire · hole %d", trace.Hole)))
	b.WriteString("\n")
	b.WriteString(styles.Status.Render(fmt.Sprintf("Trace %d/%d · Step %d/%d",
		tm.trace+1, len(tm.traces), tm.step, tm.lastStep())))
	b.WriteString("\n\n")

	if len(trace.Boards) > 0 {
		jump := tm.jumpAt(tm.step)
		b.WriteString(styleBoard(trace.Boards[tm.step], jump))
		b.WriteString("\n\n")
		b.WriteString(tm.describeStep(jump))
		b.WriteString("\n\n")
	}

	b.WriteString(tm.helpLine())
	b.WriteString("\n")

	return b.String()
}

func (tm traceModel) describeStep(jump *m.Jump) string {
	trace := tm.current()

	if tm.step == tm.lastStep() {
		if trace.Solved {
			return styles.Success.Render("Solved: one peg left")
		}

		return styles.Failure.Render(fmt.Sprintf("No solution from hole %d", trace.Hole))
	}

	if jump == nil {
		return styles.Status.Render(fmt.Sprintf("Start: hole at %d", trace.Hole))
	}

	return styles.Status.Render("Jump " + jump.String())
}

func (tm traceModel) helpLine() string {
	parts := make([]string, 0, len(tm.keys.bindings()))
	for _, binding := range tm.keys.bindings() {
		help := binding.Help()
		parts = append(parts, help.Key+": "+help.Desc)
	}

	return styles.Help.Render(strings.Join(parts, " | "))
}
