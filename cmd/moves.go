package cmd

import (
	"github.com/spf13/cobra"
)

// movesCmd represents the moves command.
var movesCmd = newMovesCmd()

func newMovesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "moves",
		Short: "List the jumps available from every position",
		Long:  "List the move table the solver searches, grouped by starting position.\n\n" + boardHelp,
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			return workflow.Moves(cmd.Context())
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(movesCmd)
}
