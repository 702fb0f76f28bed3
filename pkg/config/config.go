package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	DefaultAPIPort         = "8080"
	DefaultEntryTopic      = "calorie-tracker.log-entries"
	DefaultSummaryTopic    = "calorie-tracker.daily-summaries"
	DefaultSummaryCron     = "0 5 0 * * *"
	DefaultSummaryTimezone = "UTC"
	defaultEnvironment     = "production"
	defaultLogLevel        = "info"
	defaultDotEnvFile      = ".env"
)

// App holds runtime configuration derived from env vars or files.
type App struct {
	Environment       string   `yaml:"environment"`
	LogLevel          string   `yaml:"log_level"`
	APIPort           string   `yaml:"api_port"`
	DatabaseURL       string   `yaml:"database_url"`
	CORSOrigins       []string `yaml:"cors_origins"`
	KafkaBrokers      []string `yaml:"kafka_brokers"`
	KafkaEntryTopic   string   `yaml:"kafka_entry_topic"`
	KafkaSummaryTopic string   `yaml:"kafka_summary_topic"`
	SummaryCron       string   `yaml:"summary_cron"`
	SummaryTimezone   string   `yaml:"summary_timezone"`
	RunMigrations     bool     `yaml:"run_migrations"`
}

// Defaults returns the configuration used when nothing is set.
func Defaults() App {
	return App{
		Environment:       defaultEnvironment,
		LogLevel:          defaultLogLevel,
		APIPort:           DefaultAPIPort,
		CORSOrigins:       []string{"*"},
		KafkaEntryTopic:   DefaultEntryTopic,
		KafkaSummaryTopic: DefaultSummaryTopic,
		SummaryCron:       DefaultSummaryCron,
		SummaryTimezone:   DefaultSummaryTimezone,
	}
}

// FromEnv loads the application configuration from environment variables.
func FromEnv() App {
	cfg := Defaults()
	cfg.applyEnv()
	return cfg
}

// Load builds the configuration in layers: defaults, a .env file in the
// working directory if present, the YAML file at path if path is not empty,
// then environment variables. A .env file never overrides variables that are
// already set.
func Load(path string) (App, error) {
	if err := godotenv.Load(defaultDotEnvFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return App{}, fmt.Errorf("load %s: %w", defaultDotEnvFile, err)
	}

	cfg := Defaults()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return App{}, fmt.Errorf("read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return App{}, fmt.Errorf("parse config file %s: %w", path, err)
		}
	}

	cfg.applyEnv()
	return cfg, nil
}

// Location resolves SummaryTimezone. Empty means UTC.
func (c App) Location() (*time.Location, error) {
	if c.SummaryTimezone == "" {
		return time.UTC, nil
	}
	loc, err := time.LoadLocation(c.SummaryTimezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %s: %w", c.SummaryTimezone, err)
	}
	return loc, nil
}

// KafkaEnabled reports whether events should be published.
func (c App) KafkaEnabled() bool {
	return len(c.KafkaBrokers) > 0
}

func (c *App) applyEnv() {
	c.Environment = getEnv("ENVIRONMENT", c.Environment)
	c.LogLevel = getEnv("LOG_LEVEL", c.LogLevel)
	c.APIPort = getEnv("API_PORT", c.APIPort)
	c.DatabaseURL = getEnv("DATABASE_URL", c.DatabaseURL)
	c.KafkaEntryTopic = getEnv("KAFKA_ENTRY_TOPIC", c.KafkaEntryTopic)
	c.KafkaSummaryTopic = getEnv("KAFKA_SUMMARY_TOPIC", c.KafkaSummaryTopic)
	c.SummaryCron = getEnv("SUMMARY_CRON", c.SummaryCron)
	c.SummaryTimezone = getEnv("SUMMARY_TIMEZONE", c.SummaryTimezone)

	if v, ok := os.LookupEnv("CORS_ORIGINS"); ok && v != "" {
		c.CORSOrigins = splitList(v)
	}
	if v, ok := os.LookupEnv("KAFKA_BROKERS"); ok && v != "" {
		c.KafkaBrokers = splitList(v)
	}
	if v := os.Getenv("RUN_MIGRATIONS"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.RunMigrations = b
		}
	}
}

// getEnv returns the variable's value, or defaultValue when it is unset or empty.
func getEnv(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}

// splitList splits a comma separated value, dropping blank items.
func splitList(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
