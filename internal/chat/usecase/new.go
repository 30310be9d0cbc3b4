package usecase

import (
	lru "github.com/hashicorp/golang-lru/v2"

	"quartz/internal/chat"
	"quartz/internal/parser"
	"quartz/internal/session"
	"quartz/internal/task"
	"quartz/pkg/gemini"
	pkgLog "quartz/pkg/log"
)

type implUseCase struct {
	l        pkgLog.Logger
	parser   *parser.Parser
	taskUC   task.UseCase
	sessions *session.Manager
	llm      gemini.Generator

	// history keeps the last few conversation lines per user so free-form
	// chat replies stay coherent across turns. LRU bounds memory when many
	// users come and go.
	history *lru.Cache[string, []string]
}

var _ chat.UseCase = (*implUseCase)(nil)

// New creates a new chat UseCase instance.
func New(l pkgLog.Logger, p *parser.Parser, taskUC task.UseCase, sessions *session.Manager, llm gemini.Generator) (*implUseCase, error) {
	history, err := lru.New[string, []string](historyUsers)
	if err != nil {
		return nil, err
	}
	return &implUseCase{
		l:        l,
		parser:   p,
		taskUC:   taskUC,
		sessions: sessions,
		llm:      llm,
		history:  history,
	}, nil
}
