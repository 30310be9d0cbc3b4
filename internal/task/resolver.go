package task

import (
	"strings"

	"quartz/internal/model"
)

// FindByQuery locates a task by approximate textual match against a snapshot
// of the task list. The fallback chain, first success wins:
//
//  1. case-insensitive exact title equality
//  2. case-insensitive substring: title contains query
//  3. all-words-present: every token of the query appears in the title
//  4. case-insensitive substring of the query within the description
//
// Within a stage the first qualifying task in input order wins. Returns nil
// when no stage matches.
func FindByQuery(tasks []model.Task, query string) *model.Task {
	query = strings.TrimSpace(strings.ToLower(query))
	if query == "" {
		return nil
	}

	for i := range tasks {
		if strings.ToLower(tasks[i].Title) == query {
			return &tasks[i]
		}
	}

	for i := range tasks {
		if strings.Contains(strings.ToLower(tasks[i].Title), query) {
			return &tasks[i]
		}
	}

	words := strings.Fields(query)
	for i := range tasks {
		title := strings.ToLower(tasks[i].Title)
		all := true
		for _, w := range words {
			if !strings.Contains(title, w) {
				all = false
				break
			}
		}
		if all && len(words) > 0 {
			return &tasks[i]
		}
	}

	for i := range tasks {
		if tasks[i].Description == "" {
			continue
		}
		if strings.Contains(strings.ToLower(tasks[i].Description), query) {
			return &tasks[i]
		}
	}

	return nil
}
