package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/pvaldes/rumbo/internal/config"
	"github.com/pvaldes/rumbo/internal/dateutil"
	"github.com/pvaldes/rumbo/internal/display"
	"github.com/pvaldes/rumbo/internal/kanban"
	"github.com/pvaldes/rumbo/internal/plan"
	"github.com/pvaldes/rumbo/internal/schedule"
)

var boardCmd = &cobra.Command{
	Use:   "board",
	Short: "Print the kanban board",
	Long:  `Print a three-column board (To Do, In Progress, Completed) of every task across all plans.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		plans, err := plan.LoadPlans()
		if err != nil {
			return err
		}

		today := dateutil.Today(time.Now())
		items := schedule.Collect(plans, today)
		board := kanban.BuildBoard(items)

		fmt.Println(display.Board(board, cfg.TypeStyles()))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(boardCmd)
}
