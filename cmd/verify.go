package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"pegsolve.dev/pkg/pegsolve/internal/domain"
	m "pegsolve.dev/pkg/pegsolve/internal/model"
)

// verifyCmd represents the verify command.
var verifyCmd = newVerifyCmd()

func newVerifyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Check that saved traces are legal lines of play",
		Long: `Replay every trace saved in the output directory and check that each step
is a single jump from the move table and that solved traces end with one peg.`,
		Args: cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			return workflow.Verify(cmd.Context(), domain.VerifyArgs{
				Reports: m.Path(viper.GetString(outputFlagName)),
			})
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(verifyCmd)
}
