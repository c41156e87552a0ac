package cli

import (
	"fmt"
	"time"

	"github.com/pvaldes/rumbo/internal/dateutil"
)

// parseMonthFlag resolves the --month flag. Empty means today's month.
func parseMonthFlag(value string, today dateutil.Date) (int, time.Month, error) {
	if value == "" {
		return today.Year, today.Month, nil
	}

	t, err := time.Parse("2006-01", value)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid month %q, expected YYYY-MM", value)
	}
	return t.Year(), t.Month(), nil
}
