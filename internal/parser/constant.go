package parser

import "regexp"

// Confidence scoring constants. Purely syntactic; no ML.
const (
	confidenceBase        = 0.7
	confidenceTaskBonus   = 0.15
	confidenceVerbBonus   = 0.10
	confidenceLongPenalty = 0.20
	confidenceShortBonus  = 0.05

	longMessageLen  = 100
	shortMessageLen = 30

	// chatConfidence is the fallback's fixed score. Only rules with a
	// priority above chatTiePriority ever displace it.
	chatConfidence  = 1.0
	chatTiePriority = 5
)

// Shared extraction patterns, compiled once.
var (
	reTaskNumber    = regexp.MustCompile(`(?i)task\s*#?\s*(\d+)`)
	reAllDigits     = regexp.MustCompile(`^\d+$`)
	reUpdateField   = regexp.MustCompile(`(?i)\b(priority|deadline|due date|energy|status)\b`)
	reWeekdayPhrase = regexp.MustCompile(`(?i)\b(next|this)\s+(monday|tuesday|wednesday|thursday|friday|saturday|sunday)\b`)
	reFilename      = regexp.MustCompile(`(?i)\b([\w\-.]+\.(?:pdf|docx|doc|txt|md))\b`)
	reDuration      = regexp.MustCompile(`(?i)\b(\d+)\s*(?:minutes?|mins?|m)\b`)
)

// leadingVerbs earn the verb bonus when the message starts with one of them.
var leadingVerbs = []string{"create", "delete", "switch", "update", "complete"}

// wordEntry maps a set of key phrases to a canonical value. Lookups take the
// first key, in declared order, that is a substring of the lowercased
// message — not the longest or earliest-in-text match.
type wordEntry struct {
	value string
	keys  []string
}

var priorityWords = []wordEntry{
	{value: "critical", keys: []string{"critical", "urgent", "very important", "top priority"}},
	{value: "high", keys: []string{"high", "important", "high priority"}},
	{value: "medium", keys: []string{"medium", "normal", "regular"}},
	{value: "low", keys: []string{"low", "not urgent", "whenever", "low priority"}},
}

var energyWords = []wordEntry{
	{value: "high", keys: []string{"high", "high energy", "energized", "fresh"}},
	{value: "medium", keys: []string{"medium", "normal", "average"}},
	{value: "low", keys: []string{"low", "low energy", "tired", "easy"}},
}

var deadlineWords = []wordEntry{
	{value: "urgent", keys: []string{"urgent", "asap", "today", "immediately"}},
	{value: "flexible", keys: []string{"flexible", "no rush", "whenever"}},
	{value: "none", keys: []string{"none", "no deadline"}},
}

// patternTable returns the static rule set. Order within equal priorities is
// the declared order; the classifier stable-sorts by priority descending.
func patternTable() []PatternRule {
	return []PatternRule{
		{
			Intent:   IntentSwitchTask,
			Priority: 10,
			Keywords: []string{"switch", "show task", "open task", "go to task", "work on"},
			Regexes: []*regexp.Regexp{
				regexp.MustCompile(`(?i)\b(?:switch to|show|open|go to|work on)\s+(?:the\s+)?task\s*#?\s*(\d+)\b`),
				regexp.MustCompile(`(?i)\b(?:switch to|work on)\s+(?:the\s+)?(.+?)\s+task\b`),
				regexp.MustCompile(`(?i)\b(?:switch to|work on)\s+(?:the\s+)?(.+)$`),
			},
		},
		{
			Intent:   IntentCreateTask,
			Priority: 9,
			Keywords: []string{"create", "add", "new task", "make a task"},
			Regexes: []*regexp.Regexp{
				regexp.MustCompile(`(?i)\bcreate\s+(?:an?\s+)?(?:\w+\s+)?task\s+(?:to|for|about|called|named)\s+(.+)$`),
				regexp.MustCompile(`(?i)\bcreate\s+(?:an?\s+)?(?:\w+\s+)?task\s*:?\s*(.+)$`),
				regexp.MustCompile(`(?i)\badd\s+(?:a\s+)?(?:new\s+)?task\s*(?:to|for|:)?\s*(.+)$`),
				regexp.MustCompile(`(?i)\bnew\s+task\s*:?\s*(.+)$`),
				regexp.MustCompile(`(?i)\bmake\s+a\s+task\s+(?:to|for)?\s*(.+)$`),
			},
		},
		{
			Intent:   IntentGoldenTime,
			Priority: 9,
			Keywords: []string{"golden time", "minute", "pomodoro", "focus session", "free time"},
			Regexes: []*regexp.Regexp{
				regexp.MustCompile(`(?i)\bI\s+have\s+(\d+)\s*(?:minutes?|mins?|m)\b`),
				regexp.MustCompile(`(?i)\b(\d+)\s*(?:minutes?|mins?)\s+(?:free|available|to\s+(?:work|focus|spare))\b`),
				regexp.MustCompile(`(?i)\b(?:start|begin)\s+(?:a\s+)?(?:golden\s+time|focus|pomodoro)(?:\s+session)?\b`),
				regexp.MustCompile(`(?i)\bgolden\s+time\b`),
			},
		},
		{
			Intent:   IntentCompleteTask,
			Priority: 8,
			Keywords: []string{"complete", "done", "finish", "mark"},
			Regexes: []*regexp.Regexp{
				regexp.MustCompile(`(?i)\b(?:complete|finish)\s+(?:the\s+)?task\s*#?\s*(\d+)\b`),
				regexp.MustCompile(`(?i)\bmark\s+task\s*#?\s*(\d+)\s+as\s+(?:done|complete|completed|finished)\b`),
				regexp.MustCompile(`(?i)\btask\s*#?\s*(\d+)\s+(?:is\s+)?(?:done|complete|completed|finished)\b`),
				regexp.MustCompile(`(?i)\b(?:complete|finished|finish)\s+(?:the\s+)?(.+)$`),
			},
		},
		{
			Intent:   IntentDeleteTask,
			Priority: 8,
			Keywords: []string{"delete", "remove", "get rid of"},
			Regexes: []*regexp.Regexp{
				regexp.MustCompile(`(?i)\b(?:delete|remove)\s+(?:the\s+)?task\s*#?\s*(\d+)\b`),
				regexp.MustCompile(`(?i)\b(?:delete|remove|get rid of)\s+(?:the\s+)?(.+?)\s+task\b`),
				regexp.MustCompile(`(?i)\b(?:delete|remove|get rid of)\s+(?:the\s+)?(.+)$`),
			},
		},
		{
			Intent:   IntentUpdateTask,
			Priority: 7,
			Keywords: []string{"update", "change", "set", "modify", "reschedule", "due"},
			Regexes: []*regexp.Regexp{
				regexp.MustCompile(`(?i)\b(?:update|change|modify)\s+(?:the\s+)?task\s*#?\s*(\d+)\b`),
				regexp.MustCompile(`(?i)\b(?:set|change|update)\s+(?:the\s+)?(priority|deadline|due date|energy|status)\b`),
				regexp.MustCompile(`(?i)\btask\s*#?\s*(\d+)\s+(?:is\s+)?due\b`),
				regexp.MustCompile(`(?i)\breschedule\b`),
			},
		},
		{
			Intent:   IntentAnalyzeDocument,
			Priority: 7,
			Keywords: []string{"analyze", "document", "file", "pdf", "summarize", "upload", "attach"},
			Regexes: []*regexp.Regexp{
				regexp.MustCompile(`(?i)\b(?:analyze|summarize|review|read)\s+(?:this\s+|the\s+|my\s+)?(?:document|file|doc|pdf|attachment)\b`),
				regexp.MustCompile(`(?i)\b(?:analyze|summarize)\s+([\w\-.]+\.(?:pdf|docx|doc|txt|md))\b`),
				regexp.MustCompile(`(?i)\bwhat(?:'s| is)\s+in\s+(?:this|the)\s+(?:document|file|pdf)\b`),
			},
		},
		{
			Intent:   IntentListTasks,
			Priority: 6,
			Keywords: []string{"list", "tasks", "on my plate"},
			Regexes: []*regexp.Regexp{
				regexp.MustCompile(`(?i)\b(?:list|show)\s+(?:me\s+)?(?:all\s+)?(?:my\s+)?tasks\b`),
				regexp.MustCompile(`(?i)\bwhat\s+tasks\b`),
				regexp.MustCompile(`(?i)\bwhat(?:'s| is)\s+on\s+my\s+(?:plate|list|board)\b`),
				regexp.MustCompile(`(?i)\b(?:my|all|active)\s+tasks\b`),
			},
		},
		{
			Intent:   IntentStatus,
			Priority: 6,
			Keywords: []string{"status", "progress", "how am i doing", "overview"},
			Regexes: []*regexp.Regexp{
				regexp.MustCompile(`(?i)\b(?:my\s+)?(?:status|progress|overview)\b`),
				regexp.MustCompile(`(?i)\bhow\s+am\s+I\s+doing\b`),
			},
		},
		{
			Intent:   IntentHelp,
			Priority: 6,
			Keywords: []string{"help", "what can you do", "command"},
			Regexes: []*regexp.Regexp{
				regexp.MustCompile(`(?i)^\s*help[\s!.?]*$`),
				regexp.MustCompile(`(?i)\bwhat\s+can\s+you\s+do\b`),
				regexp.MustCompile(`(?i)\b(?:available\s+)?commands\b`),
				regexp.MustCompile(`(?i)\bhow\s+do\s+I\s+use\b`),
				regexp.MustCompile(`(?i)\bhelp\s+me\b`),
			},
		},
	}
}
