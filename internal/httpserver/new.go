package httpserver

import (
	"database/sql"
	"errors"

	"github.com/gin-gonic/gin"

	"agentic-task-planner/config"
	"agentic-task-planner/pkg/datemath"
	"agentic-task-planner/pkg/gcalendar"
	"agentic-task-planner/pkg/log"
	"agentic-task-planner/pkg/mailer"
	"agentic-task-planner/pkg/ollama"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	// Shared infrastructure
	db       *sql.DB
	llm      ollama.IOllama
	calendar *gcalendar.Client
	mailer   mailer.IMailer
	dateMath *datemath.Parser

	// Domain configuration
	timezone   string
	calendarID string
	chat       config.ChatConfig
	rateLimit  config.RateLimitConfig
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	DB       *sql.DB
	LLM      ollama.IOllama
	Calendar *gcalendar.Client
	Mailer   mailer.IMailer
	DateMath *datemath.Parser

	Timezone   string
	CalendarID string
	Chat       config.ChatConfig
	RateLimit  config.RateLimitConfig
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:           logger,
		gin:         gin.Default(),
		port:        cfg.Port,
		mode:        cfg.Mode,
		environment: cfg.Environment,
		db:          cfg.DB,
		llm:         cfg.LLM,
		calendar:    cfg.Calendar,
		mailer:      cfg.Mailer,
		dateMath:    cfg.DateMath,
		timezone:    cfg.Timezone,
		calendarID:  cfg.CalendarID,
		chat:        cfg.Chat,
		rateLimit:   cfg.RateLimit,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.db == nil {
		return errors.New("database is required")
	}
	if srv.llm == nil {
		return errors.New("LLM client is required")
	}
	if srv.mailer == nil {
		return errors.New("mailer client is required")
	}
	if srv.calendar == nil {
		return errors.New("calendar client is required")
	}
	if srv.dateMath == nil {
		return errors.New("date parser is required")
	}
	return nil
}
