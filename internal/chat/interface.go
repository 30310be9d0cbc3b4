package chat

import (
	"context"

	"quartz/internal/model"
)

// UseCase defines the business logic interface for the chat domain.
type UseCase interface {
	// HandleMessage parses one user message, executes the command it carries
	// and returns the assistant's reply.
	HandleMessage(ctx context.Context, sc model.Scope, input MessageInput) (MessageOutput, error)
}
