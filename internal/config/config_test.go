package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pvaldes/rumbo/internal/plan"
	"github.com/pvaldes/rumbo/internal/testutil"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	testutil.SetupHome(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.DefaultView != ViewBoard {
		t.Errorf("got default view %q, want %q", cfg.DefaultView, ViewBoard)
	}
}

func TestLoad_ParsesOverrides(t *testing.T) {
	home := testutil.SetupHome(t)

	content := `default_view: timeline
types:
  study:
    label: School
    color: "#FFFFFF"
`
	if err := os.WriteFile(filepath.Join(home, fileName), []byte(content), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.DefaultView != ViewTimeline {
		t.Errorf("got %q, want timeline", cfg.DefaultView)
	}

	styles := cfg.TypeStyles()
	study := styles.ForType(plan.TypeStudy)
	if study.Label != "School" || study.Color != "#FFFFFF" {
		t.Errorf("override not applied: %+v", study)
	}
	if study.Icon == "" {
		t.Error("unset override field should keep the built-in icon")
	}
	// Untouched types keep their defaults.
	if work := styles.ForType(plan.TypeWork); work.Label != "Work" {
		t.Errorf("got %q, want Work", work.Label)
	}
}

func TestLoad_UnknownViewFallsBack(t *testing.T) {
	home := testutil.SetupHome(t)
	if err := os.WriteFile(filepath.Join(home, fileName), []byte("default_view: dashboard\n"), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.DefaultView != ViewBoard {
		t.Errorf("got %q, want board fallback", cfg.DefaultView)
	}
}

func TestLoad_MalformedYAML(t *testing.T) {
	home := testutil.SetupHome(t)
	if err := os.WriteFile(filepath.Join(home, fileName), []byte("types: [not map"), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	if _, err := Load(); err == nil {
		t.Fatal("expected error for malformed yaml")
	}
}
