package controller

import (
	"bytes"
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	m "pegsolve.dev/pkg/pegsolve/internal/model"
)

// SimpleUI implements UI by writing plain text to the cobra command output.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// Start initializes the UI.
func (s *SimpleUI) Start(ctx context.Context, _ ...StartOption) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return nil
}

// Close finalizes the UI.
func (s *SimpleUI) Close(ctx context.Context) {
	if err := ctx.Err(); err != nil {
		return
	}
}

// Wait blocks until the UI is closed (no-op for SimpleUI).
func (s *SimpleUI) Wait(ctx context.Context) {
	if err := ctx.Err(); err != nil {
		return
	}
	// SimpleUI doesn't block - it just prints and continues
}

// DisplayWarning prints a warning line.
func (s *SimpleUI) DisplayWarning(ctx context.Context, message string) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.printf("warning: %s\n", message)
}

// DisplayTrace prints every board of the trace, each followed by a blank line.
func (s *SimpleUI) DisplayTrace(ctx context.Context, trace m.Trace) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.printf("%s", formatTrace(trace))

	return nil
}

func formatTrace(trace m.Trace) string {
	var b strings.Builder

	fmt.Fprintf(&b, " === %d ===\n", trace.Hole)

	for _, board := range trace.Boards {
		b.WriteString(board)
		b.WriteString("\n")
	}

	if !trace.Solved {
		fmt.Fprintf(&b, "no solution from hole %d (%d pegs left)\n", trace.Hole, pegsIn(trace.Final()))
	}

	b.WriteString("\n")

	return b.String()
}

// DisplaySummary prints a table with one row per trace.
func (s *SimpleUI) DisplaySummary(ctx context.Context, traces []m.Trace) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.printf("%s", renderSummaryTable(traces))

	return nil
}

func renderSummaryTable(traces []m.Trace) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetAutoFormatHeaders(false)
	table.SetHeader([]string{"Hole", "Solved", "Jumps", "Nodes", "Time"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_CENTER,
		tablewriter.ALIGN_CENTER,
		tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_RIGHT,
	})

	solved := 0

	for _, trace := range traces {
		if trace.Solved {
			solved++
		}

		table.Append([]string{
			holeLabel(trace),
			yesNo(trace.Solved),
			strconv.Itoa(trace.Steps()),
			strconv.Itoa(trace.Stats.Nodes),
			trace.Stats.Duration.Round(time.Microsecond).String(),
		})
	}

	table.SetFooter([]string{"", fmt.Sprintf("Solved %d/%d", solved, len(traces)), "", "", ""})
	table.Render()

	return tableBuffer.String()
}

// DisplayVerification prints whether a saved trace passed verification.
func (s *SimpleUI) DisplayVerification(ctx context.Context, index int, trace m.Trace, err error) {
	if ctxErr := ctx.Err(); ctxErr != nil {
		return
	}

	if err != nil {
		s.printf("trace %d (hole %d): FAILED: %v\n", index, trace.Hole, err)
		return
	}

	s.printf("trace %d (hole %d): ok, %d jumps\n", index, trace.Hole, trace.Steps())
}

// DisplayMoveTable prints the jumps available from every position.
func (s *SimpleUI) DisplayMoveTable(ctx context.Context, table [][]m.Jump) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.printf("%s", renderMoveTable(table))

	return nil
}

func renderMoveTable(moves [][]m.Jump) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetAutoFormatHeaders(false)
	table.SetHeader([]string{"From", "Over", "To"})
	table.SetBorder(false)
	table.SetCenterSeparator("")

	total := 0

	for from, jumps := range moves {
		for i, jump := range jumps {
			label := ""
			if i == 0 {
				label = strconv.Itoa(from)
			}

			table.Append([]string{label, strconv.Itoa(int(jump.Over)), strconv.Itoa(int(jump.To))})
			total++
		}
	}

	table.SetFooter([]string{"", "Jumps", strconv.Itoa(total)})
	table.Render()

	return tableBuffer.String()
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}

func holeLabel(trace m.Trace) string {
	if trace.Substituted {
		return fmt.Sprintf("%d (asked %d)", trace.Hole, trace.Requested)
	}

	return strconv.Itoa(int(trace.Hole))
}

func yesNo(v bool) string {
	if v {
		return "yes"
	}

	return "no"
}

func pegsIn(board string) int {
	return strings.Count(board, "x")
}
