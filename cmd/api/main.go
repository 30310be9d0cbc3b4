package main

import (
	"context"
	"fmt"

	"quartz/config"
	_ "quartz/docs" // Swagger docs
	"quartz/internal/httpserver"
	"quartz/internal/middleware"
	"quartz/pkg/gemini"
	"quartz/pkg/log"
)

// @title       Quartz API
// @description Task management with a natural-language chat assistant backed by Gemini.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx := context.Background()
	logger.Info(ctx, "Starting Quartz...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Gemini LLM client
	if cfg.Gemini.APIKey == "" {
		logger.Warn(ctx, "gemini.api_key is empty; chat replies will use the canned fallback")
	}
	llm := gemini.NewClient(cfg.Gemini.APIKey)
	llm.SetModel(cfg.Gemini.Model)
	logger.Infof(ctx, "Gemini model: %s", llm.Model())

	// 4. HTTP server
	srv, err := httpserver.New(httpserver.Config{
		Logger:        logger,
		Port:          cfg.HTTPServer.Port,
		Mode:          cfg.HTTPServer.Mode,
		Environment:   cfg.Environment.Name,
		Gemini:        llm,
		Timezone:      cfg.Gemini.Timezone,
		GoldenMinutes: cfg.GoldenTime.Minutes,
		Middleware: middleware.Config{
			AllowedOrigins: cfg.CORS.AllowedOrigins,
			RateLimitRPS:   cfg.Rate.RPS,
			RateLimitBurst: cfg.Rate.Burst,
		},
	})
	if err != nil {
		logger.Fatalf(ctx, "Failed to create http server: %v", err)
	}

	if err := srv.Run(); err != nil {
		logger.Fatalf(ctx, "HTTP server stopped: %v", err)
	}
}
