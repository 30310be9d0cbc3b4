package task

import (
	"sort"
	"time"

	"quartz/internal/model"
)

// Scoring weights for board ordering. The numbers only matter relative to
// each other; the resulting order is what the UI shows.
var priorityWeight = map[model.TaskPriority]int{
	model.TaskPriorityCritical: 40,
	model.TaskPriorityHigh:     30,
	model.TaskPriorityMedium:   20,
	model.TaskPriorityLow:      10,
}

var deadlineWeight = map[model.DeadlineType]int{
	model.DeadlineUrgent:   15,
	model.DeadlineFlexible: 5,
	model.DeadlineNone:     0,
}

// Score computes the display-ordering score for a task. Higher sorts first.
func Score(t model.Task, now time.Time) int {
	score := priorityWeight[t.Priority] + deadlineWeight[t.DeadlineType]

	if t.DueDate != nil {
		until := t.DueDate.Sub(now)
		switch {
		case until <= 0:
			score += 20 // overdue
		case until <= 48*time.Hour:
			score += 15
		case until <= 7*24*time.Hour:
			score += 10
		default:
			score += 5
		}
	}

	return score
}

// SortByScore orders tasks score-descending, stable on input order so equal
// scores keep their creation order.
func SortByScore(tasks []model.Task, now time.Time) {
	sort.SliceStable(tasks, func(i, j int) bool {
		return Score(tasks[i], now) > Score(tasks[j], now)
	})
}
