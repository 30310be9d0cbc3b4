package task_test

import (
	"testing"
	"time"

	"quartz/internal/model"
	"quartz/internal/task"
)

func timePtr(t time.Time) *time.Time { return &t }

func TestScore(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		task model.Task
		want int
	}{
		{
			name: "critical urgent overdue",
			task: model.Task{
				Priority:     model.TaskPriorityCritical,
				DeadlineType: model.DeadlineUrgent,
				DueDate:      timePtr(now.Add(-time.Hour)),
			},
			want: 40 + 15 + 20,
		},
		{
			name: "high due within two days",
			task: model.Task{
				Priority:     model.TaskPriorityHigh,
				DeadlineType: model.DeadlineFlexible,
				DueDate:      timePtr(now.Add(24 * time.Hour)),
			},
			want: 30 + 5 + 15,
		},
		{
			name: "medium due this week",
			task: model.Task{
				Priority: model.TaskPriorityMedium,
				DueDate:  timePtr(now.Add(5 * 24 * time.Hour)),
			},
			want: 20 + 10,
		},
		{
			name: "low due far out",
			task: model.Task{
				Priority: model.TaskPriorityLow,
				DueDate:  timePtr(now.Add(30 * 24 * time.Hour)),
			},
			want: 10 + 5,
		},
		{
			name: "no due date no deadline",
			task: model.Task{
				Priority:     model.TaskPriorityMedium,
				DeadlineType: model.DeadlineNone,
			},
			want: 20,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := task.Score(tc.task, now); got != tc.want {
				t.Errorf("Score() = %d, want %d", got, tc.want)
			}
		})
	}
}

func TestSortByScore(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	tasks := []model.Task{
		{ID: "low", Priority: model.TaskPriorityLow},
		{ID: "critical", Priority: model.TaskPriorityCritical},
		{ID: "medium-a", Priority: model.TaskPriorityMedium},
		{ID: "medium-b", Priority: model.TaskPriorityMedium},
	}

	task.SortByScore(tasks, now)

	wantOrder := []string{"critical", "medium-a", "medium-b", "low"}
	for i, want := range wantOrder {
		if tasks[i].ID != want {
			t.Errorf("position %d = %s, want %s", i, tasks[i].ID, want)
		}
	}
}
