// Package testutil provides testing utilities for the rumbo project.
package testutil

import (
	"testing"

	"github.com/pvaldes/rumbo/internal/plan"
)

// SetupHome points RUMBO_HOME at a fresh temp directory for the duration of
// the test and returns it.
func SetupHome(t *testing.T) string {
	t.Helper()

	tmpDir := t.TempDir()
	t.Setenv(plan.HomeEnv, tmpDir)
	return tmpDir
}
