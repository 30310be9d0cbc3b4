package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"quartz/internal/chat"
	"quartz/internal/model"
	"quartz/internal/parser"
	"quartz/internal/session"
	"quartz/internal/task"
	"quartz/pkg/gemini"
)

// HandleMessage parses one user message, executes the command it carries and
// returns the assistant's reply.
func (uc *implUseCase) HandleMessage(ctx context.Context, sc model.Scope, input chat.MessageInput) (chat.MessageOutput, error) {
	if strings.TrimSpace(input.Message) == "" {
		return chat.MessageOutput{}, chat.ErrEmptyMessage
	}

	cmd := uc.parser.Classify(input.Message)
	uc.l.Debugf(ctx, "chat usecase: message classified as %s (%.2f) for user %s", cmd.Intent, cmd.Confidence, sc.UserID)

	out := chat.MessageOutput{Command: cmd}

	var err error
	switch cmd.Intent {
	case parser.IntentCreateTask:
		err = uc.handleCreate(ctx, sc, cmd, &out)
	case parser.IntentSwitchTask:
		err = uc.handleSwitch(ctx, sc, cmd, &out)
	case parser.IntentCompleteTask:
		err = uc.handleComplete(ctx, sc, cmd, &out)
	case parser.IntentDeleteTask:
		err = uc.handleDelete(ctx, sc, cmd, &out)
	case parser.IntentUpdateTask:
		err = uc.handleUpdate(ctx, sc, cmd, &out)
	case parser.IntentListTasks:
		err = uc.handleList(ctx, sc, &out)
	case parser.IntentStatus:
		err = uc.handleStatus(ctx, sc, &out)
	case parser.IntentGoldenTime:
		err = uc.handleGoldenTime(ctx, sc, cmd, &out)
	case parser.IntentAnalyzeDocument:
		err = uc.handleAnalyzeDocument(ctx, sc, cmd, &out)
	case parser.IntentHelp:
		out.Reply = helpText
	default:
		uc.handleChat(ctx, sc, input.Message, &out)
	}
	if err != nil {
		return chat.MessageOutput{}, err
	}

	uc.remember(sc.UserID, input.Message, out.Reply)
	return out, nil
}

func (uc *implUseCase) handleCreate(ctx context.Context, sc model.Scope, cmd parser.ParsedCommand, out *chat.MessageOutput) error {
	title := strings.TrimSpace(cmd.Parameters.TaskTitle)
	if title == "" {
		out.Reply = "What should the task be called? Try \"create a task to write the report\"."
		return nil
	}

	created, err := uc.taskUC.Create(ctx, sc, task.CreateInput{
		Title:        title,
		Priority:     cmd.Parameters.Priority,
		DeadlineType: cmd.Parameters.DeadlineType,
		EnergyLevel:  cmd.Parameters.EnergyLevel,
		DueDate:      cmd.Parameters.DueDate,
	})
	if err != nil {
		return err
	}

	out.Task = &created
	out.Reply = fmt.Sprintf("Created %q with %s priority. %s is paired with it.", created.Title, created.Priority, created.AgentName)
	if created.DueDate != nil {
		out.Reply += fmt.Sprintf(" Due %s.", created.DueDate.Format("Monday, Jan 2"))
	}
	return nil
}

func (uc *implUseCase) handleSwitch(ctx context.Context, sc model.Scope, cmd parser.ParsedCommand, out *chat.MessageOutput) error {
	target, err := uc.resolveTask(ctx, sc, cmd.Parameters)
	if err != nil {
		return err
	}
	if target == nil {
		out.Reply = uc.notFoundReply(cmd.Parameters)
		return nil
	}

	inProgress := model.TaskStatusInProgress
	updated, err := uc.taskUC.Update(ctx, sc, task.UpdateInput{ID: target.ID, Status: &inProgress})
	if err != nil {
		return err
	}

	out.Task = &updated
	out.Reply = fmt.Sprintf("Switching to %q. %s is ready when you are.", updated.Title, updated.AgentName)
	return nil
}

func (uc *implUseCase) handleComplete(ctx context.Context, sc model.Scope, cmd parser.ParsedCommand, out *chat.MessageOutput) error {
	target, err := uc.resolveTask(ctx, sc, cmd.Parameters)
	if err != nil {
		return err
	}
	if target == nil {
		out.Reply = uc.notFoundReply(cmd.Parameters)
		return nil
	}

	completed, err := uc.taskUC.Complete(ctx, sc, target.ID)
	if err != nil {
		return err
	}

	out.Task = &completed
	out.Reply = fmt.Sprintf("Marked %q as done. Nice work!", completed.Title)
	return nil
}

func (uc *implUseCase) handleDelete(ctx context.Context, sc model.Scope, cmd parser.ParsedCommand, out *chat.MessageOutput) error {
	target, err := uc.resolveTask(ctx, sc, cmd.Parameters)
	if err != nil {
		return err
	}
	if target == nil {
		out.Reply = uc.notFoundReply(cmd.Parameters)
		return nil
	}

	if err := uc.taskUC.Delete(ctx, sc, target.ID); err != nil {
		return err
	}

	out.Task = target
	out.Reply = fmt.Sprintf("Deleted %q.", target.Title)
	return nil
}

func (uc *implUseCase) handleUpdate(ctx context.Context, sc model.Scope, cmd parser.ParsedCommand, out *chat.MessageOutput) error {
	target, err := uc.resolveTask(ctx, sc, cmd.Parameters)
	if err != nil {
		return err
	}
	if target == nil {
		out.Reply = uc.notFoundReply(cmd.Parameters)
		return nil
	}

	in := task.UpdateInput{ID: target.ID}
	var changed []string
	if cmd.Parameters.Priority != "" {
		p := cmd.Parameters.Priority
		in.Priority = &p
		changed = append(changed, fmt.Sprintf("priority to %s", p))
	}
	if cmd.Parameters.EnergyLevel != "" {
		e := cmd.Parameters.EnergyLevel
		in.EnergyLevel = &e
		changed = append(changed, fmt.Sprintf("energy to %s", e))
	}
	if cmd.Parameters.DeadlineType != "" {
		d := cmd.Parameters.DeadlineType
		in.DeadlineType = &d
		changed = append(changed, fmt.Sprintf("deadline to %s", d))
	}
	if cmd.Parameters.DueDate != nil {
		in.DueDate = cmd.Parameters.DueDate
		changed = append(changed, fmt.Sprintf("due date to %s", cmd.Parameters.DueDate.Format("Monday, Jan 2")))
	}

	if len(changed) == 0 {
		out.Reply = fmt.Sprintf("What should I change on %q? You can set priority, energy, deadline or a due date.", target.Title)
		return nil
	}

	updated, err := uc.taskUC.Update(ctx, sc, in)
	if err != nil {
		return err
	}

	out.Task = &updated
	out.Reply = fmt.Sprintf("Updated %q: set %s.", updated.Title, strings.Join(changed, ", "))
	return nil
}

func (uc *implUseCase) handleList(ctx context.Context, sc model.Scope, out *chat.MessageOutput) error {
	board, err := uc.taskUC.List(ctx, sc)
	if err != nil {
		return err
	}
	out.Reply = renderBoard(board)
	return nil
}

func (uc *implUseCase) handleStatus(ctx context.Context, sc model.Scope, out *chat.MessageOutput) error {
	board, err := uc.taskUC.List(ctx, sc)
	if err != nil {
		return err
	}

	active, hasSession := uc.sessions.Active(ctx, sc)
	out.Reply = renderStatus(board, active, hasSession, uc.sessions.Now())
	return nil
}

func (uc *implUseCase) handleGoldenTime(ctx context.Context, sc model.Scope, cmd parser.ParsedCommand, out *chat.MessageOutput) error {
	minutes := 0 // session manager applies its configured default
	if cmd.Parameters.Duration != nil {
		minutes = *cmd.Parameters.Duration
	}

	board, err := uc.taskUC.List(ctx, sc)
	if err != nil {
		return err
	}

	var taskID string
	var suggestion string
	if len(board.Active) > 0 {
		pick := board.Active[0]
		taskID = pick.ID
		out.Task = &pick
		suggestion = fmt.Sprintf(" Best use of it: %q.", pick.Title)
	}

	s, err := uc.sessions.Start(ctx, sc, minutes, taskID)
	if err != nil {
		if errors.Is(err, session.ErrAlreadyActive) {
			out.Reply = "You already have a focus session running. Say \"status\" to see how it's going."
			return nil
		}
		return err
	}

	out.Reply = fmt.Sprintf("Golden time! Starting a %d minute focus session.%s", s.Minutes, suggestion)
	return nil
}

func (uc *implUseCase) handleAnalyzeDocument(ctx context.Context, sc model.Scope, cmd parser.ParsedCommand, out *chat.MessageOutput) error {
	doc := cmd.Parameters.DocumentReference
	if doc == "" {
		out.Reply = "Which document should I look at? Mention the file name, like \"summarize report.pdf\"."
		return nil
	}

	target, err := uc.resolveTask(ctx, sc, cmd.Parameters)
	if err != nil {
		return err
	}

	prompt := fmt.Sprintf("The user wants help with a document called %q.", doc)
	if target != nil {
		out.Task = target
		prompt += fmt.Sprintf(" It relates to their task %q.", target.Title)
	}
	prompt += " Briefly tell them how you would approach summarizing it and ask them to paste the part they care about."

	reply, err := uc.generate(ctx, prompt)
	if err != nil {
		uc.l.Warnf(ctx, "chat usecase: document analysis generation failed: %v", err)
		out.Reply = fmt.Sprintf("I can't open %s myself yet. Paste the part you care about and I'll summarize it.", doc)
		return nil
	}
	out.Reply = reply
	return nil
}

func (uc *implUseCase) handleChat(ctx context.Context, sc model.Scope, message string, out *chat.MessageOutput) {
	lines, _ := uc.history.Get(sc.UserID)
	reply, err := uc.generate(ctx, gemini.BuildChatPrompt(lines, message))
	if err != nil {
		uc.l.Warnf(ctx, "chat usecase: chat generation failed: %v", err)
		out.Reply = fallbackChatReply
		return
	}
	out.Reply = reply
}

func (uc *implUseCase) generate(ctx context.Context, prompt string) (string, error) {
	resp, err := uc.llm.GenerateContent(ctx, gemini.GenerateRequest{
		SystemInstruction: &gemini.Content{Parts: []gemini.Part{{Text: gemini.ChatSystemPrompt}}},
		Contents: []gemini.Content{
			{Role: "user", Parts: []gemini.Part{{Text: prompt}}},
		},
	})
	if err != nil {
		return "", err
	}
	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return "", fmt.Errorf("empty generation result")
	}
	return text, nil
}

// resolveTask finds the task a command refers to: an explicit 1-based task
// number indexes the active board in display order, otherwise the search
// query or title is fuzzy-matched. Returns nil when nothing matches.
func (uc *implUseCase) resolveTask(ctx context.Context, sc model.Scope, params parser.CommandParameters) (*model.Task, error) {
	board, err := uc.taskUC.List(ctx, sc)
	if err != nil {
		return nil, err
	}

	if params.TaskNumber != nil {
		n := *params.TaskNumber
		if n >= 1 && n <= len(board.Active) {
			return &board.Active[n-1], nil
		}
		return nil, nil
	}

	if q := strings.TrimSpace(params.SearchQuery); q != "" {
		return task.FindByQuery(board.Active, q), nil
	}
	if q := strings.TrimSpace(params.TaskTitle); q != "" {
		return task.FindByQuery(board.Active, q), nil
	}
	return nil, nil
}

func (uc *implUseCase) notFoundReply(params parser.CommandParameters) string {
	if params.TaskNumber != nil {
		return fmt.Sprintf("I couldn't find task %d on your board. Say \"list my tasks\" to see the numbers.", *params.TaskNumber)
	}
	return "I couldn't find a matching task. Say \"list my tasks\" to see what's on your board."
}

// remember appends the exchange to the user's rolling conversation buffer.
func (uc *implUseCase) remember(userID, message, reply string) {
	lines, _ := uc.history.Get(userID)
	lines = append(lines, "User: "+message, "Quartz: "+reply)
	if len(lines) > historyDepth {
		lines = lines[len(lines)-historyDepth:]
	}
	uc.history.Add(userID, lines)
}
