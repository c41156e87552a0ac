package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/pvaldes/rumbo/internal/calendar"
	"github.com/pvaldes/rumbo/internal/dateutil"
	"github.com/pvaldes/rumbo/internal/display"
	"github.com/pvaldes/rumbo/internal/plan"
	"github.com/pvaldes/rumbo/internal/schedule"
)

var calendarMonth string

var calendarCmd = &cobra.Command{
	Use:   "calendar",
	Short: "Print the monthly calendar",
	Long:  `Print a month grid with task markers on each day. Tasks are placed on their deadline, or their start date when no deadline is set.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		plans, err := plan.LoadPlans()
		if err != nil {
			return err
		}

		today := dateutil.Today(time.Now())
		year, month, err := parseMonthFlag(calendarMonth, today)
		if err != nil {
			return err
		}

		items := schedule.Collect(plans, today)
		grid := calendar.BuildGrid(year, month, items)

		fmt.Println(display.Calendar(grid, today))
		return nil
	},
}

func init() {
	calendarCmd.Flags().StringVar(&calendarMonth, "month", "", "Month to show as YYYY-MM (default: current month)")
	rootCmd.AddCommand(calendarCmd)
}
