// Package cli implements the prettier-options command surface: a small
// tool for normalizing option mappings against a descriptor file.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/GuillemALba/prettier/pkg/logger"
)

// Run executes the root command and returns the process exit code.
func Run() int {
	if err := RootCmd().Execute(); err != nil {
		return 1
	}
	return 0
}

// RootCmd builds the root command.
func RootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "prettier-options",
		Short:        "Normalize and validate option mappings against a descriptor schema",
		SilenceUsage: true,
	}

	cmd.PersistentFlags().String("log-level", "warn", "Log level (debug, info, warn, error)")
	cmd.PersistentFlags().Bool("log-json", false, "Emit logs as JSON")

	cmd.AddCommand(NormalizeCmd())
	return cmd
}

// loggerFromFlags builds the logger configured by the persistent flags.
func loggerFromFlags(cmd *cobra.Command) (logger.Logger, error) {
	level, err := cmd.Flags().GetString("log-level")
	if err != nil {
		return nil, fmt.Errorf("failed to get log-level flag: %w", err)
	}
	logJSON, err := cmd.Flags().GetBool("log-json")
	if err != nil {
		return nil, fmt.Errorf("failed to get log-json flag: %w", err)
	}
	return logger.NewLogger(&logger.Config{
		Level:  logger.LogLevel(level),
		Output: cmd.ErrOrStderr(),
		JSON:   logJSON,
	}), nil
}
