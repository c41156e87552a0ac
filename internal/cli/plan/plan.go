package plan

import (
	"github.com/spf13/cobra"
)

// PlanCmd is the parent command for plan-related subcommands.
var PlanCmd = &cobra.Command{
	Use:   "plan",
	Short: "Inspect stored plans",
	Long:  `Commands for listing stored plans and showing one plan's stages and tasks.`,
}

func init() {
	PlanCmd.AddCommand(listCmd)
	PlanCmd.AddCommand(showCmd)
}
