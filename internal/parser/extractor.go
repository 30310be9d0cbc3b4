package parser

import (
	"strconv"
	"strings"

	"quartz/internal/model"
)

// Extract derives the typed parameters for an intent from the winning regex
// match and the full message. Pure function of its inputs and the parser's
// clock; repeated calls yield identical output.
func (p *Parser) Extract(intent Intent, match []string, message string) CommandParameters {
	params := CommandParameters{}
	lower := strings.ToLower(message)

	switch intent {
	case IntentSwitchTask:
		capture := firstCapture(match)
		if reAllDigits.MatchString(capture) {
			params.TaskNumber = parseIntPtr(capture)
		} else if capture != "" {
			params.SearchQuery = strings.TrimSpace(capture)
		}

	case IntentCreateTask:
		params.TaskTitle = strings.TrimSpace(firstCapture(match))
		if v, ok := lookupWordTable(priorityWords, lower); ok {
			params.Priority = model.TaskPriority(v)
		}
		if v, ok := lookupWordTable(deadlineWords, lower); ok {
			params.DeadlineType = model.DeadlineType(v)
		}

	case IntentUpdateTask:
		if m := reTaskNumber.FindStringSubmatch(message); m != nil {
			params.TaskNumber = parseIntPtr(m[1])
		}
		if m := reUpdateField.FindStringSubmatch(message); m != nil {
			params.UpdateField = strings.ToLower(m[1])
		}
		// First table that hits wins; the value is mirrored into UpdateValue.
		if v, ok := lookupWordTable(priorityWords, lower); ok {
			params.Priority = model.TaskPriority(v)
			params.UpdateValue = v
		} else if v, ok := lookupWordTable(energyWords, lower); ok {
			params.EnergyLevel = model.EnergyLevel(v)
			params.UpdateValue = v
		} else if v, ok := lookupWordTable(deadlineWords, lower); ok {
			params.DeadlineType = model.DeadlineType(v)
			params.UpdateValue = v
		}
		if reWeekdayPhrase.MatchString(message) {
			due := p.dates.ResolveRelative(message, p.now())
			params.DueDate = &due
		}

	case IntentCompleteTask, IntentDeleteTask:
		if m := reTaskNumber.FindStringSubmatch(message); m != nil {
			params.TaskNumber = parseIntPtr(m[1])
		} else if capture := firstCapture(match); capture != "" {
			if reAllDigits.MatchString(capture) {
				params.TaskNumber = parseIntPtr(capture)
			} else {
				params.SearchQuery = strings.TrimSpace(capture)
			}
		}

	case IntentAnalyzeDocument:
		if m := reTaskNumber.FindStringSubmatch(message); m != nil {
			params.TaskNumber = parseIntPtr(m[1])
		}
		if m := reFilename.FindStringSubmatch(message); m != nil {
			params.DocumentReference = m[1]
		}

	case IntentGoldenTime:
		if m := reDuration.FindStringSubmatch(message); m != nil {
			params.Duration = parseIntPtr(m[1])
		}
	}

	return params
}

// lookupWordTable returns the value of the first entry, in declared order,
// with a key that is a substring of the lowercased message.
func lookupWordTable(table []wordEntry, lower string) (string, bool) {
	for _, entry := range table {
		for _, key := range entry.keys {
			if strings.Contains(lower, key) {
				return entry.value, true
			}
		}
	}
	return "", false
}

func firstCapture(match []string) string {
	if len(match) > 1 {
		return strings.TrimSpace(match[1])
	}
	return ""
}

func parseIntPtr(s string) *int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return nil
	}
	return &n
}
