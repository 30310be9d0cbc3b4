package model

import "time"

// TaskStatus is the kanban column a task lives in.
type TaskStatus string

const (
	TaskStatusTodo       TaskStatus = "todo"
	TaskStatusInProgress TaskStatus = "in_progress"
	TaskStatusDone       TaskStatus = "done"
)

// Active reports whether the task still shows up on the board's active list.
func (s TaskStatus) Active() bool {
	return s == TaskStatusTodo || s == TaskStatusInProgress
}

// TaskPriority mirrors the priority vocabulary the command parser extracts.
type TaskPriority string

const (
	TaskPriorityCritical TaskPriority = "critical"
	TaskPriorityHigh     TaskPriority = "high"
	TaskPriorityMedium   TaskPriority = "medium"
	TaskPriorityLow      TaskPriority = "low"
)

// DeadlineType classifies how hard a task's deadline is.
type DeadlineType string

const (
	DeadlineUrgent   DeadlineType = "urgent"
	DeadlineFlexible DeadlineType = "flexible"
	DeadlineNone     DeadlineType = "none"
)

// EnergyLevel is the energy a task demands from the user.
type EnergyLevel string

const (
	EnergyHigh   EnergyLevel = "high"
	EnergyMedium EnergyLevel = "medium"
	EnergyLow    EnergyLevel = "low"
)

// Task is a Quartz task with its paired AI helper.
type Task struct {
	ID           string
	Title        string
	Description  string
	Status       TaskStatus
	Priority     TaskPriority
	DeadlineType DeadlineType
	EnergyLevel  EnergyLevel
	DueDate      *time.Time
	AgentName    string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
