package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"pegsolve.dev/pkg/pegsolve/internal/domain"
	m "pegsolve.dev/pkg/pegsolve/internal/model"
)

var solveParallelFlag int
var solveSaveFlag bool

// solveCmd represents the solve command.
var solveCmd = newSolveCmd()

func newSolveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "solve [holes...]",
		Short: "Solve the puzzle from one or more starting holes",
		Long:  solveLongDescription,
		RunE: func(cmd *cobra.Command, args []string) error {
			holes, err := solveHoles(args)
			if err != nil {
				return err
			}

			return workflow.Solve(cmd.Context(), domain.SolveArgs{
				Holes:   holes,
				Threads: solveThreads(),
				Reports: m.Path(viper.GetString(outputFlagName)),
				Save:    viper.GetBool(solveSaveConfigKey),
				Plain:   viper.GetBool(plainConfigKey),
			})
		},
	}

	configureSolveFlags(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(solveCmd)
}

func configureSolveFlags(cmd *cobra.Command) {
	cmd.Flags().IntVarP(&solveParallelFlag, solveParallelFlagName, "p", viper.GetInt(solveParallelConfigKey), "number of starting holes solved concurrently")
	bindFlagToConfig(cmd.Flags().Lookup(solveParallelFlagName), solveParallelConfigKey)

	cmd.Flags().BoolVar(&solveSaveFlag, solveSaveFlagName, viper.GetBool(solveSaveConfigKey), "save traces to the output directory")
	bindFlagToConfig(cmd.Flags().Lookup(solveSaveFlagName), solveSaveConfigKey)
}
