package plan

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pvaldes/rumbo/internal/util"
)

const (
	rumboDirName = ".rumbo"
	plansDirName = "plans"
)

// HomeEnv overrides the rumbo home directory, mainly for tests.
const HomeEnv = "RUMBO_HOME"

// Home returns the rumbo data directory: $RUMBO_HOME if set, otherwise
// ~/.rumbo.
func Home() (string, error) {
	if dir := os.Getenv(HomeEnv); dir != "" {
		return dir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve home directory: %w", err)
	}
	return filepath.Join(home, rumboDirName), nil
}

// PlansDir returns the directory holding plan files.
func PlansDir() (string, error) {
	home, err := Home()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, plansDirName), nil
}

// FileName returns the storage file name for a plan: <id>-<kebab-name>.json.
func FileName(p *Plan) string {
	return fmt.Sprintf("%s-%s.json", p.ID, util.KebabCase(p.Name))
}

// LoadPlans reads every plan file from the plans directory, sorted by file
// name. Files that cannot be read or parsed are skipped. A missing plans
// directory yields an empty slice, not an error.
func LoadPlans() ([]Plan, error) {
	dir, err := PlansDir()
	if err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read plans directory: %w", err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		names = append(names, entry.Name())
	}
	sort.Strings(names)

	var plans []Plan
	for _, name := range names {
		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			continue
		}
		var p Plan
		if err := json.Unmarshal(data, &p); err != nil {
			continue
		}
		normalize(&p)
		plans = append(plans, p)
	}
	return plans, nil
}

// FindPlan locates a single plan by name suffix match on its file name,
// mirroring how plans are addressed on the command line.
func FindPlan(name string) (*Plan, error) {
	plans, err := LoadPlans()
	if err != nil {
		return nil, err
	}
	if len(plans) == 0 {
		return nil, fmt.Errorf("no plans found. Run 'rumbo demo' to create sample plans")
	}

	needle := util.KebabCase(name)
	var matches []*Plan
	for i := range plans {
		if util.KebabCase(plans[i].Name) == needle || plans[i].ID == name {
			matches = append(matches, &plans[i])
		}
	}

	if len(matches) == 0 {
		return nil, fmt.Errorf("plan not found: %s", name)
	}
	if len(matches) > 1 {
		var ids []string
		for _, m := range matches {
			ids = append(ids, m.ID)
		}
		return nil, fmt.Errorf("multiple plans match '%s': %v", name, ids)
	}
	return matches[0], nil
}

// SavePlan atomically writes a plan file into the plans directory, creating
// it if needed. Uses a temp file + rename to ensure atomic writes.
func SavePlan(p *Plan) error {
	dir, err := PlansDir()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create plans directory: %w", err)
	}

	planPath := filepath.Join(dir, FileName(p))
	tmpPath := fmt.Sprintf("%s.tmp.%d", planPath, os.Getpid())

	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal plan: %w", err)
	}

	if err := os.WriteFile(tmpPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write temp file: %w", err)
	}

	if err := os.Rename(tmpPath, planPath); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to rename temp file: %w", err)
	}

	return nil
}

// normalize fills derived fields the wire format omits: denormalized plan
// references on each task and the default priority.
func normalize(p *Plan) {
	for si := range p.Stages {
		for ti := range p.Stages[si].Tasks {
			t := &p.Stages[si].Tasks[ti]
			t.PlanID = p.ID
			t.PlanName = p.Name
			t.Priority = NormalizePriority(t.Priority)
		}
	}
}
