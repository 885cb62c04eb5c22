package main

import (
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/taskpanel/core/cmd/taskpanel/commands"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "taskpanel",
		Short: "TaskPanel personal task manager",
		Long:  `TaskPanel manages personal task categories, one-off and daily tasks with sub-task checklists, an archive, and aggregate statistics, all persisted in one local document.`,
	}

	// Add commands
	rootCmd.AddCommand(commands.NewListCommand())
	rootCmd.AddCommand(commands.NewAddCommand())
	rootCmd.AddCommand(commands.NewArchiveCommand())
	rootCmd.AddCommand(commands.NewRestoreCommand())
	rootCmd.AddCommand(commands.NewDeleteCommand())
	rootCmd.AddCommand(commands.NewStatsCommand())
	rootCmd.AddCommand(commands.NewSeedCommand())
	rootCmd.AddCommand(commands.NewVersionCommand())

	// Execute root command
	if err := rootCmd.Execute(); err != nil {
		log.Printf("Command execution failed: %v", err)
		os.Exit(1)
	}
}
