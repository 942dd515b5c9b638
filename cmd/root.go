// Package cmd provides the root command and CLI setup for pegsolve.
package cmd

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"pegsolve.dev/pkg/pegsolve/internal/adapter"
	"pegsolve.dev/pkg/pegsolve/internal/controller"
	"pegsolve.dev/pkg/pegsolve/internal/domain"
)

var reportStore adapter.ReportStore
var solver domain.Solver
var workflow domain.Workflow
var ui controller.UI

// reportsOutputDirFlag is a root-level flag shared by commands that read/write traces.
var reportsOutputDirFlag string

// plainFlag disables the interactive terminal UI.
var plainFlag bool

var verboseFlag bool
var logFileFlag string

func init() {
	// Initialize shared dependencies.
	ui = controller.NewUI(rootCmd, controller.IsTTY(os.Stdout))
	reportStore = adapter.NewReportStore()
	solver = domain.NewSolver()
	workflow = domain.NewWorkflow(reportStore, ui, solver)
}

const boardHelp = `The board is a triangle of 15 positions numbered row by row:

         0
        1 2
       3 4 5
      6 7 8 9
    10 11 12 13 14`

const rootLongDescription = `pegsolve solves the 15-hole triangular peg solitaire puzzle. Starting
from a full board with one hole, it searches depth-first for a sequence
of jumps that leaves exactly one peg.

` + boardHelp

const solveLongDescription = `Solve the puzzle for each starting hole (default: holes from config,
0 1 2 3 4 out of the box). A hole off the board is replaced by hole 0.

` + boardHelp

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pegsolve",
		Short: "Triangular peg solitaire solver",
		Long:  rootLongDescription,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			configureLogger(readLogSettings(viper.GetString(logFilenameKey), viper.GetBool(logVerboseKey)))
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
		SilenceUsage: true,
	}

	configureRootFlags(cmd)

	return cmd
}

func configureRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().
		StringVarP(
			&reportsOutputDirFlag, outputFlagName, "o",
			viper.GetString(outputFlagName),
			"directory where solved traces are saved and read back",
		)
	bindFlagToConfig(cmd.PersistentFlags().Lookup(outputFlagName), outputFlagName)

	cmd.PersistentFlags().BoolVar(&plainFlag, plainFlagName, viper.GetBool(plainConfigKey), "print plain text instead of the interactive viewer")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(plainFlagName), plainConfigKey)

	cmd.PersistentFlags().BoolVarP(&verboseFlag, verboseFlagName, "v", viper.GetBool(logVerboseKey), "log at debug level")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(verboseFlagName), logVerboseKey)

	cmd.PersistentFlags().StringVar(&logFileFlag, logFileFlagName, viper.GetString(logFilenameKey), "log file path")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(logFileFlagName), logFilenameKey)
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func parseHoles(args []string) ([]int, error) {
	holes := make([]int, 0, len(args))

	for _, arg := range args {
		hole, err := strconv.Atoi(arg)
		if err != nil {
			return nil, fmt.Errorf("invalid hole %q: must be an integer", arg)
		}

		holes = append(holes, hole)
	}

	return holes, nil
}
