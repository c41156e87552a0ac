package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/pvaldes/rumbo/internal/dateutil"
	"github.com/pvaldes/rumbo/internal/display"
	"github.com/pvaldes/rumbo/internal/plan"
	"github.com/pvaldes/rumbo/internal/timeline"
)

var timelineMonth string

var timelineCmd = &cobra.Command{
	Use:   "timeline",
	Short: "Print the Gantt timeline",
	Long:  `Print one row per stage with task bars positioned across the visible month. Bars overrunning the month are clamped to its edges.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		plans, err := plan.LoadPlans()
		if err != nil {
			return err
		}

		today := dateutil.Today(time.Now())
		year, month, err := parseMonthFlag(timelineMonth, today)
		if err != nil {
			return err
		}

		view := timeline.Build(year, month, plans, today)

		fmt.Println(display.Timeline(view))
		return nil
	},
}

func init() {
	timelineCmd.Flags().StringVar(&timelineMonth, "month", "", "Month to show as YYYY-MM (default: current month)")
	rootCmd.AddCommand(timelineCmd)
}
