package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/pvaldes/rumbo/internal/dateutil"
	"github.com/pvaldes/rumbo/internal/plan"
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Seed sample plans",
	Long: `Write three sample plans into the rumbo home directory so every view
has something to show. Dates are relative to today, so the samples always
include an urgent task and an overdue one.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		today := dateutil.Today(time.Now())
		plans := plan.SampleData(today)

		for i := range plans {
			if err := plan.SavePlan(&plans[i]); err != nil {
				return err
			}
			fmt.Printf("Created plan: %s\n", plans[i].Name)
		}

		fmt.Println("\nRun 'rumbo' to open the TUI.")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(demoCmd)
}
