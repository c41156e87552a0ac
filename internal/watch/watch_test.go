package watch

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestPlans_SignalsOnPlanFileWrite(t *testing.T) {
	dir := t.TempDir()

	w, err := Plans(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(filepath.Join(dir, "abc123-my-plan.json"), []byte("{}"), 0644); err != nil {
		t.Fatal(err)
	}

	select {
	case <-w.Changes():
	case <-time.After(2 * time.Second):
		t.Fatal("no change signal after writing a plan file")
	}
}

func TestPlans_IgnoresTempFiles(t *testing.T) {
	dir := t.TempDir()

	w, err := Plans(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(filepath.Join(dir, "plan.json.tmp.1234"), []byte("{}"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	select {
	case <-w.Changes():
		t.Fatal("unexpected signal for non-plan files")
	case <-time.After(300 * time.Millisecond):
	}
}

func TestPlans_CreatesMissingDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "plans")

	w, err := Plans(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer w.Close()

	if _, err := os.Stat(dir); err != nil {
		t.Errorf("expected directory to exist: %v", err)
	}
}

func TestIsPlanFile(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"abc123-plan.json", true},
		{"/some/dir/abc123-plan.json", true},
		{"abc123-plan.json.tmp.99", false},
		{"README.md", false},
	}
	for _, tt := range tests {
		if got := isPlanFile(tt.name); got != tt.want {
			t.Errorf("isPlanFile(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}
