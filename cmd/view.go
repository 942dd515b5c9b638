package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"pegsolve.dev/pkg/pegsolve/internal/domain"
	m "pegsolve.dev/pkg/pegsolve/internal/model"
)

// viewCmd represents the view command.
var viewCmd = newViewCmd()

func newViewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "view",
		Short: "View previously saved traces",
		Long:  "View traces saved by 'solve --save' from the output directory.",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			return workflow.View(cmd.Context(), domain.ViewArgs{
				Reports: m.Path(viper.GetString(outputFlagName)),
				Plain:   viper.GetBool(plainConfigKey),
			})
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(viewCmd)
}
