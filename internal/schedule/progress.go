package schedule

import (
	"math"

	"github.com/pvaldes/rumbo/internal/plan"
)

// percent converts a completed/total ratio to a rounded percentage,
// clamped to [0, 100]. A zero total yields 0, never a division error.
func percent(completed, total int) int {
	if total <= 0 {
		return 0
	}
	p := int(math.Round(float64(completed) / float64(total) * 100))
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}

// StageProgress returns the stage's completed-task percentage.
func StageProgress(s plan.Stage) int {
	return percent(s.CompletedTaskCount(), len(s.Tasks))
}

// PlanProgress averages stage progress across the plan's stages, rounded to
// the nearest integer percentage. A plan with no stages is at 0.
func PlanProgress(p plan.Plan) int {
	if len(p.Stages) == 0 {
		return 0
	}
	sum := 0
	for _, s := range p.Stages {
		sum += StageProgress(s)
	}
	avg := int(math.Round(float64(sum) / float64(len(p.Stages))))
	if avg < 0 {
		return 0
	}
	if avg > 100 {
		return 100
	}
	return avg
}

// SubtaskProgress returns the completed-subtask percentage for one task.
func SubtaskProgress(t plan.Task) int {
	completed, total := SubtaskCounts(t)
	return percent(completed, total)
}

// SubtaskCounts returns how many of the task's subtasks are done and how
// many exist.
func SubtaskCounts(t plan.Task) (completed, total int) {
	for _, st := range t.Subtasks {
		if st.Completed {
			completed++
		}
	}
	return completed, len(t.Subtasks)
}
