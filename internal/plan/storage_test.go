package plan

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/pvaldes/rumbo/internal/dateutil"
)

func setupHome(t *testing.T) string {
	t.Helper()
	tmpDir := t.TempDir()
	t.Setenv(HomeEnv, tmpDir)
	return tmpDir
}

func samplePlan(id, name string) *Plan {
	return &Plan{
		ID:   id,
		Name: name,
		Type: TypeWork,
		Stages: []Stage{{
			ID:    "s1",
			Title: "Stage",
			Tasks: []Task{{ID: "t01", Title: "Task", Deadline: dateutil.NewDate(2025, time.June, 10)}},
		}},
	}
}

func TestSaveAndLoadPlans(t *testing.T) {
	setupHome(t)

	if err := SavePlan(samplePlan("abc123", "My Plan")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	plans, err := LoadPlans()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(plans) != 1 {
		t.Fatalf("got %d plans, want 1", len(plans))
	}
	if plans[0].ID != "abc123" {
		t.Errorf("got ID %q, want abc123", plans[0].ID)
	}
}

func TestSavePlan_FileName(t *testing.T) {
	home := setupHome(t)

	if err := SavePlan(samplePlan("abc123", "US Master's Study")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := filepath.Join(home, "plans", "abc123-us-masters-study.json")
	if _, err := os.Stat(want); err != nil {
		t.Errorf("expected plan file at %s: %v", want, err)
	}
}

func TestLoadPlans_NoDirectory(t *testing.T) {
	setupHome(t)

	plans, err := LoadPlans()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(plans) != 0 {
		t.Errorf("got %d plans, want 0", len(plans))
	}
}

func TestLoadPlans_SkipsMalformedFiles(t *testing.T) {
	home := setupHome(t)

	plansDir := filepath.Join(home, "plans")
	if err := os.MkdirAll(plansDir, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(plansDir, "broken.json"), []byte("{nope"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := SavePlan(samplePlan("ok1234", "Fine Plan")); err != nil {
		t.Fatal(err)
	}

	plans, err := LoadPlans()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(plans) != 1 || plans[0].ID != "ok1234" {
		t.Errorf("got %+v, want only the valid plan", plans)
	}
}

func TestLoadPlans_DenormalizesTasks(t *testing.T) {
	setupHome(t)

	if err := SavePlan(samplePlan("abc123", "My Plan")); err != nil {
		t.Fatal(err)
	}

	plans, err := LoadPlans()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	task := plans[0].Stages[0].Tasks[0]
	if task.PlanID != "abc123" || task.PlanName != "My Plan" {
		t.Errorf("denormalized refs missing: %+v", task)
	}
	if task.Priority != PriorityMedium {
		t.Errorf("got priority %q, want medium default", task.Priority)
	}
}

func TestFindPlan(t *testing.T) {
	setupHome(t)

	if err := SavePlan(samplePlan("abc123", "My Plan")); err != nil {
		t.Fatal(err)
	}
	if err := SavePlan(samplePlan("def456", "Other Plan")); err != nil {
		t.Fatal(err)
	}

	p, err := FindPlan("my-plan")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.ID != "abc123" {
		t.Errorf("got %q, want abc123", p.ID)
	}

	if p, err = FindPlan("def456"); err != nil || p.Name != "Other Plan" {
		t.Errorf("lookup by ID failed: %v %v", p, err)
	}
}

func TestFindPlan_NotFound(t *testing.T) {
	setupHome(t)

	if err := SavePlan(samplePlan("abc123", "My Plan")); err != nil {
		t.Fatal(err)
	}

	_, err := FindPlan("missing")
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !strings.Contains(err.Error(), "plan not found: missing") {
		t.Errorf("unexpected error message: %v", err)
	}
}

func TestFindPlan_NoPlans(t *testing.T) {
	setupHome(t)

	_, err := FindPlan("anything")
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !strings.Contains(err.Error(), "no plans found") {
		t.Errorf("unexpected error message: %v", err)
	}
}
