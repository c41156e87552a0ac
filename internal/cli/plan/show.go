package plan

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/pvaldes/rumbo/internal/config"
	"github.com/pvaldes/rumbo/internal/dateutil"
	"github.com/pvaldes/rumbo/internal/display"
	"github.com/pvaldes/rumbo/internal/plan"
)

var showCmd = &cobra.Command{
	Use:   "show <name>",
	Short: "Show one plan's stages and tasks",
	Long:  `Show a plan by its kebab-case name or ID, with per-stage progress and task deadlines.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		p, err := plan.FindPlan(args[0])
		if err != nil {
			return err
		}

		today := dateutil.Today(time.Now())
		fmt.Println(display.PlanDetail(*p, today, cfg.TypeStyles()))
		return nil
	},
}
