package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const initForceFlagName = "force"

// initCmd represents the init command.
var initCmd = newInitCmd()

func newInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a pegsolve.yaml with the current settings",
		Long: `Create pegsolve.yaml in the current directory holding the holes solved by
default, the solve parallelism, the reports directory and the log settings,
so they can be edited instead of passed as flags every run.`,
		Args: cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			force, err := cmd.Flags().GetBool(initForceFlagName)
			if err != nil {
				return err
			}

			return writeConfigFile(cmd, filepath.Join(configFolderPath, configFileName), force)
		},
	}

	cmd.Flags().Bool(initForceFlagName, false, "overwrite an existing "+configFileName)

	return cmd
}

func writeConfigFile(cmd *cobra.Command, path string, force bool) error {
	write := viper.SafeWriteConfigAs
	if force {
		write = viper.WriteConfigAs
	}

	if err := write(path); err != nil {
		var exists viper.ConfigFileAlreadyExistsError
		if errors.As(err, &exists) {
			return fmt.Errorf("%s already exists, use --%s to overwrite it", path, initForceFlagName)
		}

		slog.Error("failed to write config file", "path", path, "error", err)

		return fmt.Errorf("failed to write config file: %w", err)
	}

	slog.Info("wrote config file", "path", path, "holes", viper.GetIntSlice(solveHolesConfigKey))
	fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)

	return nil
}

func init() {
	rootCmd.AddCommand(initCmd)
}
