package chat

import (
	"quartz/internal/model"
	"quartz/internal/parser"
)

// MessageInput is one user message from the chat panel.
type MessageInput struct {
	Message string
}

// MessageOutput is the assistant's turn: the reply text plus what the
// command parser made of the message, so the UI can react (highlight a
// task, refresh the board) without re-parsing.
type MessageOutput struct {
	Reply   string
	Command parser.ParsedCommand
	Task    *model.Task // the task the command acted on, when there is one
}
