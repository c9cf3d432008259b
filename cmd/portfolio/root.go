package main

import (
	"fmt"
	"os"

	"github.com/gukin-han/portfolio/internal/config"
	"github.com/spf13/cobra"
)

// newRootCmd builds the portfolio command tree.
func newRootCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:           "portfolio [command] [flags]",
		Short:         "Personal portfolio site server",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVarP(&configPath, "config", "c", config.BaseConfigFile, "base configuration file")

	cmd.AddCommand(newServeCmd(&configPath))
	cmd.AddCommand(newRoutesCmd(&configPath))

	return cmd
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
