package parser

import (
	"regexp"
	"time"

	"quartz/internal/model"
)

// Intent is the classified purpose of a user message.
type Intent string

const (
	IntentSwitchTask      Intent = "switch_task"
	IntentCreateTask      Intent = "create_task"
	IntentUpdateTask      Intent = "update_task"
	IntentDeleteTask      Intent = "delete_task"
	IntentCompleteTask    Intent = "complete_task"
	IntentListTasks       Intent = "list_tasks"
	IntentAnalyzeDocument Intent = "analyze_document"
	IntentGoldenTime      Intent = "golden_time"
	IntentHelp            Intent = "help"
	IntentStatus          Intent = "status"
	IntentChat            Intent = "chat"
)

// ParsedCommand is the classifier's output for a single message.
type ParsedCommand struct {
	Intent       Intent
	Confidence   float64 // 0..1
	Parameters   CommandParameters
	OriginalText string
}

// CommandParameters is the bag of intent-specific fields extracted from a
// message. Every field is optional; a zero value means "not specified in this
// message", not "cleared".
type CommandParameters struct {
	TaskNumber        *int // 1-based ordinal into the caller's active-task list
	TaskTitle         string
	SearchQuery       string
	Priority          model.TaskPriority
	DeadlineType      model.DeadlineType
	EnergyLevel       model.EnergyLevel
	DueDate           *time.Time
	DocumentReference string
	Duration          *int // minutes
	UpdateField       string
	UpdateValue       string
}

// PatternRule is one entry of the static pattern table. A rule is attempted
// only when at least one keyword is a substring of the lowercased message;
// its regexes are then tried in order against the original-case message and
// the first match wins within the rule.
type PatternRule struct {
	Intent   Intent
	Keywords []string
	Regexes  []*regexp.Regexp
	Priority int // higher wins the scan order; must exceed chatTiePriority to displace chat
}
