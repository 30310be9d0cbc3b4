package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	chatHTTP "quartz/internal/chat/delivery/http"
	chatUC "quartz/internal/chat/usecase"
	"quartz/internal/middleware"
	"quartz/internal/parser"
	"quartz/internal/session"
	taskHTTP "quartz/internal/task/delivery/http"
	"quartz/internal/task/repository/memory"
	taskUC "quartz/internal/task/usecase"
	"quartz/pkg/datemath"
)

// setupDomains initializes the task and chat domains and registers their
// routes. Chat reuses the task use case so commands act on the same board the
// REST endpoints serve.
//
// Pattern to follow when adding a new domain:
//  1. Create Repository:   repo := mydomainRepo.New(...)
//  2. Create UseCase:      uc := mydomainUC.New(srv.l, repo)
//  3. Create HTTP Handler: h := mydomainHTTP.New(srv.l, uc)
//  4. Register Routes:     mydomainHTTP.RegisterRoutes(api, h, mw)
func (srv *HTTPServer) setupDomains(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) error {
	// Task domain
	taskRepo := memory.New()
	tasks := taskUC.New(srv.l, taskRepo)
	taskHTTP.RegisterRoutes(api, taskHTTP.New(srv.l, tasks), mw)
	srv.l.Infof(ctx, "task domain registered")

	// Chat domain: command parser + golden-time sessions + LLM fallback
	dates, err := datemath.NewResolver(srv.timezone)
	if err != nil {
		return err
	}
	chats, err := chatUC.New(srv.l, parser.New(dates), tasks, session.NewManager(srv.l, srv.goldenMinutes), srv.llm)
	if err != nil {
		return err
	}
	chatHTTP.RegisterRoutes(api, chatHTTP.New(srv.l, chats), mw)
	srv.l.Infof(ctx, "chat domain registered")

	return nil
}
