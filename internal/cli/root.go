package cli

import (
	"github.com/spf13/cobra"

	"github.com/pvaldes/rumbo/internal/cli/plan"
	"github.com/pvaldes/rumbo/internal/version"
)

var rootCmd = &cobra.Command{
	Use:     "rumbo",
	Short:   "Plan timeline tracker for the terminal",
	Long:    `Rumbo tracks long-horizon plans and their stages and tasks, and renders them as a kanban board, a monthly calendar, or a Gantt-style timeline.`,
	Version: version.Version,
}

func init() {
	rootCmd.AddCommand(plan.PlanCmd)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
