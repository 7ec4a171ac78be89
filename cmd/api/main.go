package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	_ "modernc.org/sqlite"

	"agentic-task-planner/config"
	_ "agentic-task-planner/docs" // Swagger docs
	chatRepo "agentic-task-planner/internal/chat/repository/sqlite"
	"agentic-task-planner/internal/httpserver"
	taskRepo "agentic-task-planner/internal/task/repository/sqlite"
	"agentic-task-planner/pkg/datemath"
	"agentic-task-planner/pkg/gcalendar"
	"agentic-task-planner/pkg/log"
	"agentic-task-planner/pkg/mailer"
	"agentic-task-planner/pkg/ollama"
)

// @title       Agentic Task Planner API
// @description LLM-driven task planner: classifies prompts into email, calendar, and chat actions.
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

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Agentic Task Planner...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Ollama URL: %s model: %s", cfg.Ollama.URL, cfg.Ollama.Model)

	// 3. Storage
	db, err := sql.Open("sqlite", cfg.Database.Path)
	if err != nil {
		logger.Fatalf(ctx, "Failed to open database %q: %v", cfg.Database.Path, err)
	}
	defer db.Close()

	if err := chatRepo.Migrate(ctx, db); err != nil {
		logger.Fatalf(ctx, "Failed to migrate chat tables: %v", err)
	}
	if err := taskRepo.Migrate(ctx, db); err != nil {
		logger.Fatalf(ctx, "Failed to migrate task tables: %v", err)
	}

	// 4. Clients
	llmClient, err := ollama.New(ollama.Config{
		BaseURL: cfg.Ollama.URL,
		Model:   cfg.Ollama.Model,
	})
	if err != nil {
		logger.Fatalf(ctx, "Failed to create Ollama client: %v", err)
	}

	mailerClient := mailer.NewClient(cfg.Mailer.URL)

	calendarClient, err := gcalendar.NewClientFromCredentialsFile(ctx, cfg.GoogleCalendar.CredentialsPath)
	if err != nil {
		logger.Fatalf(ctx, "Failed to initialize Google Calendar: %v", err)
	}

	dateMathParser, err := datemath.NewParser(cfg.GoogleCalendar.Timezone)
	if err != nil {
		logger.Warnf(ctx, "Invalid timezone %q, falling back to UTC: %v", cfg.GoogleCalendar.Timezone, err)
		dateMathParser, _ = datemath.NewParser("UTC")
	}

	// 5. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:      logger,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		DB:          db,
		LLM:         llmClient,
		Calendar:    calendarClient,
		Mailer:      mailerClient,
		DateMath:    dateMathParser,
		Timezone:    dateMathParser.Location().String(),
		CalendarID:  cfg.GoogleCalendar.CalendarID,
		Chat:        cfg.Chat,
		RateLimit:   cfg.RateLimit,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 6. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
