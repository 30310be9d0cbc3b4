package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	"quartz/internal/middleware"
	"quartz/pkg/gemini"
	"quartz/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	llm           gemini.Generator
	timezone      string
	goldenMinutes int
	mw            middleware.Config
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	// LLM client used for free-form chat replies
	Gemini gemini.Generator

	// IANA timezone for relative due dates ("" means UTC)
	Timezone string

	// Default golden-time session length (0 means the built-in default)
	GoldenMinutes int

	Middleware middleware.Config
}

// New creates a new HTTPServer instance.
func New(cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:           cfg.Logger,
		gin:         gin.New(),
		port:        cfg.Port,
		mode:        cfg.Mode,
		environment: cfg.Environment,
		llm:           cfg.Gemini,
		timezone:      cfg.Timezone,
		goldenMinutes: cfg.GoldenMinutes,
		mw:            cfg.Middleware,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv *HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.llm == nil {
		return errors.New("gemini client is required")
	}
	return nil
}
