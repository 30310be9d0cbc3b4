package usecase

import (
	"fmt"
	"strings"
	"time"

	"quartz/internal/session"
	"quartz/internal/task"
)

const helpText = `Here's what you can say to me:

- "create a task to write the report" - add a task (mention priority or a day to set them)
- "show task 2" or "work on the report" - switch to a task
- "task 3 is done" or "complete the report" - finish a task
- "delete task 1" - remove a task
- "set task 2 priority to high" or "task 2 is due next friday" - change a task
- "what tasks do I have" - see your board
- "I have 25 minutes" - start a golden time focus session
- "status" - see where things stand
- "summarize report.pdf for task 4" - get help with a document

Anything else, just chat with me.`

// renderBoard formats the task list the way the chat panel shows it: active
// tasks numbered in display order, then a short done tally.
func renderBoard(board task.ListOutput) string {
	if len(board.Active) == 0 && len(board.Done) == 0 {
		return "Your board is empty. Say \"create a task to ...\" to get started."
	}

	var b strings.Builder
	if len(board.Active) == 0 {
		b.WriteString("Nothing active right now.")
	} else {
		b.WriteString(fmt.Sprintf("You have %d active task(s):\n", len(board.Active)))
		for i, t := range board.Active {
			b.WriteString(fmt.Sprintf("%d. %s (%s priority", i+1, t.Title, t.Priority))
			if t.DueDate != nil {
				b.WriteString(", due " + t.DueDate.Format("Mon Jan 2"))
			}
			b.WriteString(")\n")
		}
	}
	if len(board.Done) > 0 {
		b.WriteString(fmt.Sprintf("\n%d task(s) done.", len(board.Done)))
	}
	return strings.TrimRight(b.String(), "\n")
}

// renderStatus summarizes the board plus any running focus session.
func renderStatus(board task.ListOutput, active session.Session, hasSession bool, now time.Time) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("%d active, %d done.", len(board.Active), len(board.Done)))

	if len(board.Active) > 0 {
		b.WriteString(fmt.Sprintf(" Top of the board: %q.", board.Active[0].Title))
	}

	if hasSession {
		left := active.Remaining(now).Round(time.Minute)
		b.WriteString(fmt.Sprintf(" Focus session running, %d minute(s) left.", int(left/time.Minute)))
	}

	return b.String()
}
