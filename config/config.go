package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Task planner specifics
	Ollama         OllamaConfig
	Mailer         MailerConfig
	GoogleCalendar GoogleCalendarConfig
	Chat           ChatConfig
	Database       DatabaseConfig
	RateLimit      RateLimitConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// OllamaConfig points at the locally hosted LLM.
type OllamaConfig struct {
	URL   string
	Model string
}

// MailerConfig points at the email sender microservice.
type MailerConfig struct {
	URL string
}

type GoogleCalendarConfig struct {
	CredentialsPath string
	CalendarID      string
	Timezone        string
}

// ChatConfig controls the cached chat entry point.
type ChatConfig struct {
	CacheTTL  time.Duration
	CacheSize int
}

type DatabaseConfig struct {
	Path string
}

type RateLimitConfig struct {
	PerMin int
}

// Load loads configuration using Viper.
// Config file name: config.yaml — searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Ollama
	cfg.Ollama.URL = viper.GetString("ollama.url")
	cfg.Ollama.Model = viper.GetString("ollama.model")
	if ollamaURL := viper.GetString("ollama_url"); ollamaURL != "" {
		cfg.Ollama.URL = ollamaURL
	}

	// Email sender service
	cfg.Mailer.URL = viper.GetString("mailer.url")
	if mailerURL := viper.GetString("email_sender_service_url"); mailerURL != "" {
		cfg.Mailer.URL = mailerURL
	}

	// Google Calendar
	cfg.GoogleCalendar.CredentialsPath = viper.GetString("google_calendar.credentials_path")
	cfg.GoogleCalendar.CalendarID = viper.GetString("google_calendar.calendar_id")
	cfg.GoogleCalendar.Timezone = viper.GetString("google_calendar.timezone")
	if googleCreds := viper.GetString("google_calendar_credentials"); googleCreds != "" {
		cfg.GoogleCalendar.CredentialsPath = googleCreds
	}

	// Chat cache
	cfg.Chat.CacheTTL = viper.GetDuration("chat.cache_ttl")
	cfg.Chat.CacheSize = viper.GetInt("chat.cache_size")

	// Database
	cfg.Database.Path = viper.GetString("database.path")
	if dbPath := viper.GetString("database_path"); dbPath != "" {
		cfg.Database.Path = dbPath
	}

	// Rate limiting
	cfg.RateLimit.PerMin = viper.GetInt("rate_limit.per_min")

	if cfg.Mailer.URL == "" {
		return nil, fmt.Errorf("mailer.url is required - please add it to config.yaml")
	}

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)
	viper.SetDefault("ollama.url", "http://localhost:11434")
	viper.SetDefault("ollama.model", "llama3")
	viper.SetDefault("google_calendar.calendar_id", "primary")
	viper.SetDefault("google_calendar.timezone", "Asia/Kolkata")
	viper.SetDefault("chat.cache_ttl", "30s")
	viper.SetDefault("chat.cache_size", 1024)
	viper.SetDefault("database.path", "taskplanner.db")
	viper.SetDefault("rate_limit.per_min", 60)
}
