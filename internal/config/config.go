// Package config loads the process configuration from the environment.
package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"spolek/internal/core"
)

type Config struct {
	// HTTP server
	Port string

	// Database
	SQLiteDBPath string

	// AMQP audit pipeline. Empty URL disables publishing.
	AMQPURL      string
	AMQPExchange string
	AMQPQueue    string

	// Gemini assistant. Empty key switches the assistant to local
	// fallbacks.
	GeminiAPIKey string
	GeminiModel  string

	// Google Sheets snapshot sink (optional, see export.NewSheetsFromEnv).
	GoogleSpreadsheetID string
	GoogleSheetName     string

	// UI defaults
	DefaultLanguage core.Language

	// Assistant answer cache
	UpdatesCacheTTL time.Duration
}

func Load() *Config {
	return &Config{
		Port:         getEnv("PORT", "8081"),
		SQLiteDBPath: getEnv("SQLITE_DB_PATH", "./data/spolek.db"),

		AMQPURL:      getEnv("AMQP_URL", ""),
		AMQPExchange: getEnv("AMQP_EXCHANGE", "spolek"),
		AMQPQueue:    getEnv("AMQP_QUEUE", "ledger_events"),

		GeminiAPIKey: getEnv("GEMINI_API_KEY", ""),
		GeminiModel:  getEnv("GEMINI_MODEL", "gemini-2.5-flash"),

		GoogleSpreadsheetID: getEnv("GOOGLE_SPREADSHEET_ID", ""),
		GoogleSheetName:     getEnv("GOOGLE_SHEET_NAME", ""),

		DefaultLanguage: core.NormalizeLanguage(getEnv("DEFAULT_LANGUAGE", "cs")),

		UpdatesCacheTTL: getEnvDuration("UPDATES_CACHE_TTL", time.Hour),
	}
}

// Validate reports every problem at once so a misconfigured deployment
// fails with the full picture.
func (c *Config) Validate() error {
	var problems []string

	if port, err := strconv.Atoi(c.Port); err != nil {
		problems = append(problems, fmt.Sprintf("invalid port '%s': must be a number", c.Port))
	} else if port < 1 || port > 65535 {
		problems = append(problems, fmt.Sprintf("invalid port %d: must be between 1 and 65535", port))
	}

	if c.SQLiteDBPath == "" {
		problems = append(problems, "SQLite database path cannot be empty")
	} else {
		dir := filepath.Dir(c.SQLiteDBPath)
		if dir != "." && dir != "" {
			if _, err := os.Stat(dir); os.IsNotExist(err) {
				if err := os.MkdirAll(dir, 0755); err != nil {
					problems = append(problems, fmt.Sprintf("cannot create SQLite database directory '%s': %v", dir, err))
				}
			}
		}
	}

	if c.AMQPURL != "" {
		if parsed, err := url.Parse(c.AMQPURL); err != nil {
			problems = append(problems, fmt.Sprintf("invalid AMQP URL '%s': %v", c.AMQPURL, err))
		} else if parsed.Scheme != "amqp" && parsed.Scheme != "amqps" {
			problems = append(problems, fmt.Sprintf("invalid AMQP URL scheme '%s': must be 'amqp' or 'amqps'", parsed.Scheme))
		}
		if c.AMQPExchange == "" {
			problems = append(problems, "AMQP exchange name cannot be empty when AMQP URL is provided")
		}
		if c.AMQPQueue == "" {
			problems = append(problems, "AMQP queue name cannot be empty when AMQP URL is provided")
		}
	}

	if c.GeminiAPIKey != "" && c.GeminiModel == "" {
		problems = append(problems, "Gemini model name cannot be empty when an API key is provided")
	}

	if c.UpdatesCacheTTL < time.Minute {
		problems = append(problems, fmt.Sprintf("invalid updates cache TTL %v: must be at least 1 minute", c.UpdatesCacheTTL))
	} else if c.UpdatesCacheTTL > 7*24*time.Hour {
		problems = append(problems, fmt.Sprintf("invalid updates cache TTL %v: must be at most 7 days", c.UpdatesCacheTTL))
	}

	if len(problems) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(problems, "\n- "))
	}
	return nil
}

// AMQPEnabled reports whether the audit pipeline should connect.
func (c *Config) AMQPEnabled() bool {
	return c.AMQPURL != ""
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
