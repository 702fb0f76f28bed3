package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

var configEnvKeys = []string{
	"ENVIRONMENT", "LOG_LEVEL", "API_PORT", "DATABASE_URL", "CORS_ORIGINS",
	"KAFKA_BROKERS", "KAFKA_ENTRY_TOPIC", "KAFKA_SUMMARY_TOPIC",
	"SUMMARY_CRON", "SUMMARY_TIMEZONE", "RUN_MIGRATIONS",
}

func clearConfigEnv(t *testing.T) {
	t.Helper()
	for _, key := range configEnvKeys {
		t.Setenv(key, "")
	}
}

func writeConfigFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestFromEnv_WhenAllVariablesSet_ThenReturnsConfigWithSetValues(t *testing.T) {
	// Arrange
	clearConfigEnv(t)
	t.Setenv("DATABASE_URL", "user:pass@tcp(localhost:3306)/calories")
	t.Setenv("KAFKA_BROKERS", "kafka1:9092,kafka2:9092")
	t.Setenv("API_PORT", "9000")
	t.Setenv("ENVIRONMENT", "development")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("CORS_ORIGINS", "http://localhost:3000,https://example.com")
	t.Setenv("SUMMARY_CRON", "0 0 1 * * *")
	t.Setenv("SUMMARY_TIMEZONE", "Europe/Berlin")
	t.Setenv("RUN_MIGRATIONS", "true")

	// Act
	config := FromEnv()

	// Assert
	if config.DatabaseURL != "user:pass@tcp(localhost:3306)/calories" {
		t.Errorf("expected DatabaseURL to be set, got '%s'", config.DatabaseURL)
	}
	if len(config.KafkaBrokers) != 2 || config.KafkaBrokers[1] != "kafka2:9092" {
		t.Errorf("expected two kafka brokers, got %v", config.KafkaBrokers)
	}
	if config.APIPort != "9000" {
		t.Errorf("expected APIPort to be '9000', got '%s'", config.APIPort)
	}
	if config.Environment != "development" {
		t.Errorf("expected Environment to be 'development', got '%s'", config.Environment)
	}
	if config.LogLevel != "debug" {
		t.Errorf("expected LogLevel to be 'debug', got '%s'", config.LogLevel)
	}
	if len(config.CORSOrigins) != 2 || config.CORSOrigins[0] != "http://localhost:3000" {
		t.Errorf("expected two CORS origins, got %v", config.CORSOrigins)
	}
	if config.SummaryCron != "0 0 1 * * *" {
		t.Errorf("expected SummaryCron override, got '%s'", config.SummaryCron)
	}
	if config.SummaryTimezone != "Europe/Berlin" {
		t.Errorf("expected SummaryTimezone override, got '%s'", config.SummaryTimezone)
	}
	if !config.RunMigrations {
		t.Error("expected RunMigrations to be true")
	}
	if !config.KafkaEnabled() {
		t.Error("expected kafka to be enabled")
	}
}

func TestFromEnv_WhenNoVariablesSet_ThenReturnsDefaults(t *testing.T) {
	// Arrange
	clearConfigEnv(t)

	// Act
	config := FromEnv()

	// Assert
	if config.DatabaseURL != "" {
		t.Errorf("expected DatabaseURL to be empty, got '%s'", config.DatabaseURL)
	}
	if config.KafkaEnabled() {
		t.Errorf("expected no kafka brokers, got %v", config.KafkaBrokers)
	}
	if config.APIPort != DefaultAPIPort {
		t.Errorf("expected APIPort to be '%s', got '%s'", DefaultAPIPort, config.APIPort)
	}
	if config.Environment != "production" {
		t.Errorf("expected Environment to be 'production', got '%s'", config.Environment)
	}
	if config.LogLevel != "info" {
		t.Errorf("expected LogLevel to be 'info', got '%s'", config.LogLevel)
	}
	if len(config.CORSOrigins) != 1 || config.CORSOrigins[0] != "*" {
		t.Errorf("expected CORS origins to be ['*'], got %v", config.CORSOrigins)
	}
	if config.SummaryCron != DefaultSummaryCron {
		t.Errorf("expected default summary cron, got '%s'", config.SummaryCron)
	}
	if config.KafkaEntryTopic != DefaultEntryTopic || config.KafkaSummaryTopic != DefaultSummaryTopic {
		t.Errorf("expected default topics, got '%s' and '%s'", config.KafkaEntryTopic, config.KafkaSummaryTopic)
	}
	if config.RunMigrations {
		t.Error("expected RunMigrations to default to false")
	}
}

func TestLoad_WhenYAMLFileGiven_ThenEnvironmentStillWins(t *testing.T) {
	// Arrange
	clearConfigEnv(t)
	path := writeConfigFile(t, `
environment: development
api_port: "7070"
database_url: "root:secret@tcp(db:3306)/calories"
kafka_brokers: ["kafka:9092"]
summary_timezone: America/New_York
run_migrations: true
`)
	t.Setenv("API_PORT", "9090")

	// Act
	config, err := Load(path)

	// Assert
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if config.APIPort != "9090" {
		t.Errorf("expected env API_PORT to win, got '%s'", config.APIPort)
	}
	if config.Environment != "development" {
		t.Errorf("expected Environment from file, got '%s'", config.Environment)
	}
	if config.DatabaseURL != "root:secret@tcp(db:3306)/calories" {
		t.Errorf("expected DatabaseURL from file, got '%s'", config.DatabaseURL)
	}
	if len(config.KafkaBrokers) != 1 || config.KafkaBrokers[0] != "kafka:9092" {
		t.Errorf("expected brokers from file, got %v", config.KafkaBrokers)
	}
	if !config.RunMigrations {
		t.Error("expected RunMigrations from file")
	}
	if config.LogLevel != "info" {
		t.Errorf("expected default LogLevel to survive, got '%s'", config.LogLevel)
	}
}

func TestLoad_WhenFileMissing_ThenReturnsError(t *testing.T) {
	clearConfigEnv(t)

	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))

	if err == nil {
		t.Fatal("expected an error for a missing config file")
	}
}

func TestLoad_WhenFileMalformed_ThenReturnsError(t *testing.T) {
	clearConfigEnv(t)
	path := writeConfigFile(t, "api_port: [unterminated")

	_, err := Load(path)

	if err == nil {
		t.Fatal("expected a parse error")
	}
}

func TestLoad_WhenNoPath_ThenUsesDefaultsAndEnv(t *testing.T) {
	clearConfigEnv(t)
	t.Setenv("LOG_LEVEL", "warn")

	config, err := Load("")

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if config.LogLevel != "warn" {
		t.Errorf("expected LogLevel 'warn', got '%s'", config.LogLevel)
	}
}

func TestLocation(t *testing.T) {
	utc, err := App{}.Location()
	if err != nil || utc != time.UTC {
		t.Errorf("expected UTC for empty timezone, got %v, %v", utc, err)
	}

	berlin, err := App{SummaryTimezone: "Europe/Berlin"}.Location()
	if err != nil || berlin.String() != "Europe/Berlin" {
		t.Errorf("expected Europe/Berlin, got %v, %v", berlin, err)
	}

	if _, err := (App{SummaryTimezone: "Mars/Olympus"}).Location(); err == nil {
		t.Error("expected an error for an unknown timezone")
	}
}

func TestRunMigrations_WhenUnparseable_ThenKeepsPreviousValue(t *testing.T) {
	clearConfigEnv(t)
	t.Setenv("RUN_MIGRATIONS", "sometimes")

	config := FromEnv()

	if config.RunMigrations {
		t.Error("expected RunMigrations to stay false")
	}
}

func TestSplitList_WhenMultipleItemsWithWhitespace_ThenTrimsCorrectly(t *testing.T) {
	// Act
	origins := splitList(" http://localhost:3000 , https://example.com ,  ")

	// Assert
	if len(origins) != 2 {
		t.Fatalf("expected 2 origins after trimming, got %d", len(origins))
	}
	if origins[0] != "http://localhost:3000" {
		t.Errorf("expected first origin to be 'http://localhost:3000', got '%s'", origins[0])
	}
	if origins[1] != "https://example.com" {
		t.Errorf("expected second origin to be 'https://example.com', got '%s'", origins[1])
	}
}

func TestSplitList_WhenOnlyWhitespace_ThenReturnsEmpty(t *testing.T) {
	origins := splitList("   ,  ,  ")

	if len(origins) != 0 {
		t.Errorf("expected empty slice, got %v", origins)
	}
}

func TestGetEnv_WhenVariableSet_ThenReturnsValue(t *testing.T) {
	t.Setenv("TEST_VAR", "custom_value")

	if result := getEnv("TEST_VAR", "default_value"); result != "custom_value" {
		t.Errorf("expected 'custom_value', got '%s'", result)
	}
}

func TestGetEnv_WhenVariableEmpty_ThenReturnsDefault(t *testing.T) {
	t.Setenv("EMPTY_VAR", "")

	if result := getEnv("EMPTY_VAR", "default_value"); result != "default_value" {
		t.Errorf("expected 'default_value', got '%s'", result)
	}
}
