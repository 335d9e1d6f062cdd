package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"strings"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

// Config holds all service settings. Values come from the environment,
// optionally seeded from a .env file.
type Config struct {
	HTTPPort string `env:"HTTP_PORT" env-default:"8080"`
	LogLevel string `env:"LOG_LEVEL" env-default:"info"`

	// Raw data set
	DataDir string `env:"DATA_DIR" env-default:"data/csv"`

	// Database
	DBHost     string `env:"DB_HOST" env-default:"localhost"`
	DBPort     string `env:"DB_PORT" env-default:"5432"`
	DBUser     string `env:"DB_USER" env-default:"postgres"`
	DBPassword string `env:"DB_PASSWORD"`
	DBName     string `env:"DB_NAME" env-default:"orderfeatures"`
	DBSslMode  string `env:"DB_SSLMODE" env-default:"disable"`

	// Export
	ExportEnabled         bool   `env:"EXPORT_ENABLED" env-default:"true"`
	ExportSchedule        string `env:"EXPORT_SCHEDULE" env-default:"0 0 3 * * *"`
	ExportDeliveredOnly   bool   `env:"EXPORT_DELIVERED_ONLY" env-default:"true"`
	ExportIncludeDistance bool   `env:"EXPORT_INCLUDE_DISTANCE" env-default:"false"`
	ExportCSVDir          string `env:"EXPORT_CSV_DIR"`
	ExportKeepRuns        int    `env:"EXPORT_KEEP_RUNS" env-default:"10"`
	PruneSchedule         string `env:"PRUNE_SCHEDULE" env-default:"0 30 3 * * *"`

	// Kafka
	KafkaBrokers string `env:"KAFKA_BROKERS"`
	KafkaTopic   string `env:"KAFKA_TOPIC" env-default:"order-features"`
}

// LoadConfig reads the configuration. A missing .env file is not an error.
func LoadConfig(envFile string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("failed to load %s: %w", envFile, err)
		}
	}

	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to read environment: %w", err)
	}
	return cfg, nil
}

// DSN returns the postgres connection string.
func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}

// SlogLevel maps LOG_LEVEL onto a slog level. Unknown values mean info.
func (c Config) SlogLevel() slog.Level {
	switch strings.ToLower(strings.TrimSpace(c.LogLevel)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
