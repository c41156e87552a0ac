package plan

import "github.com/pvaldes/rumbo/internal/dateutil"

// SampleData returns one fixture plan per plan type, dated relative to
// today so the views always have something past, current, and upcoming to
// show. Used by 'rumbo demo' and by tests.
func SampleData(today dateutil.Date) []Plan {
	return []Plan{
		{
			ID:         "d3mo01",
			Name:       "US Masters Study",
			Type:       TypeStudy,
			CreatedAt:  today.AddDays(-60),
			TargetDate: today.AddDays(300),
			Stages: []Stage{
				{
					ID:        "s1",
					Title:     "Language Tests",
					StartDate: today.AddDays(-60),
					EndDate:   today.AddDays(-10),
					Tasks: []Task{
						{ID: "t01", Title: "Register for TOEFL", Deadline: today.AddDays(-50), Priority: PriorityHigh, Completed: true},
						{ID: "t02", Title: "Take TOEFL", Deadline: today.AddDays(-15), Priority: PriorityHigh, Completed: true},
					},
				},
				{
					ID:        "s2",
					Title:     "Applications",
					StartDate: today.AddDays(-10),
					EndDate:   today.AddDays(40),
					Tasks: []Task{
						{ID: "t03", Title: "Draft statement of purpose", StartDate: today.AddDays(-8), Deadline: today.AddDays(2), Priority: PriorityHigh,
							Subtasks: []Subtask{
								{Title: "Outline", Completed: true},
								{Title: "First draft", Completed: true},
								{Title: "Review pass", Completed: false},
							}},
						{ID: "t04", Title: "Request recommendation letters", Deadline: today.AddDays(10), Priority: PriorityMedium},
						{ID: "t05", Title: "Submit applications", Deadline: today.AddDays(35), Priority: PriorityHigh},
					},
				},
			},
		},
		{
			ID:         "d3mo02",
			Name:       "Backend Migration",
			Type:       TypeWork,
			CreatedAt:  today.AddDays(-30),
			TargetDate: today.AddDays(90),
			Stages: []Stage{
				{
					ID:        "s1",
					Title:     "Discovery",
					StartDate: today.AddDays(-30),
					EndDate:   today.AddDays(-5),
					Tasks: []Task{
						{ID: "t01", Title: "Inventory current services", Deadline: today.AddDays(-20), Completed: true},
						{ID: "t02", Title: "Write migration RFC", Deadline: today.AddDays(-7), Completed: false},
					},
				},
				{
					ID:        "s2",
					Title:     "Execution",
					StartDate: today.AddDays(-5),
					EndDate:   today.AddDays(60),
					Tasks: []Task{
						{ID: "t03", Title: "Migrate auth service", StartDate: today.AddDays(-3), Deadline: today.AddDays(14), Priority: PriorityHigh},
						{ID: "t04", Title: "Migrate billing service", Deadline: today.AddDays(45), Priority: PriorityLow},
					},
				},
			},
		},
		{
			ID:         "d3mo03",
			Name:       "Visa Renewal",
			Type:       TypeImmigration,
			CreatedAt:  today.AddDays(-14),
			TargetDate: today.AddDays(120),
			Stages: []Stage{
				{
					ID:        "s1",
					Title:     "Paperwork",
					StartDate: today.AddDays(-14),
					EndDate:   today.AddDays(20),
					Tasks: []Task{
						{ID: "t01", Title: "Gather bank statements", StartDate: today.AddDays(-14), Deadline: today.AddDays(1), Priority: PriorityHigh},
						{ID: "t02", Title: "Book biometrics appointment", Deadline: today.AddDays(18)},
					},
				},
			},
		},
	}
}
