// Package main provides the command line interface of the LAFAOM-MAO portal.
package main

import (
	"fmt"
	"os"

	"github.com/lafaom-mao/portal/internal/config"
	"github.com/lafaom-mao/portal/internal/logger"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "portal",
	Short: "LAFAOM-MAO portal client",
	Long: "Browse trainings, job offers and news of the LAFAOM-MAO institute, " +
		"and submit applications and enrollments from the terminal.",
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		cfg = config.Get()
		logger.Setup(cfg.Logger)
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		logger.Cleanup()
	},
}

var cfg *config.Config

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
