package plan

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pvaldes/rumbo/internal/config"
	"github.com/pvaldes/rumbo/internal/display"
	"github.com/pvaldes/rumbo/internal/plan"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored plans",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		plans, err := plan.LoadPlans()
		if err != nil {
			return err
		}
		if len(plans) == 0 {
			fmt.Println("No plans found. Run 'rumbo demo' to create sample plans.")
			return nil
		}

		fmt.Println(display.PlanList(plans, cfg.TypeStyles()))
		return nil
	},
}
