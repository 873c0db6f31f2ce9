package cmd

import (
	"fmt"
	"log/slog"
	"time"

	"loadplanner/internal/adapters/out/postgres"
	"loadplanner/internal/core/domain/services"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config is the service configuration, read from the environment after an
// optional .env file.
type Config struct {
	HTTPPort        string        `env:"HTTP_PORT"        envDefault:"8080"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
	LogLevel        string        `env:"LOG_LEVEL"        envDefault:"info"`

	DBHost     string `env:"DB_HOST"     envDefault:"localhost"`
	DBPort     string `env:"DB_PORT"     envDefault:"5432"`
	DBUser     string `env:"DB_USER"     envDefault:"postgres"`
	DBPassword string `env:"DB_PASSWORD"`
	DBName     string `env:"DB_NAME"     envDefault:"loadplanner"`
	DBSslMode  string `env:"DB_SSLMODE"  envDefault:"disable"`

	SnapshotEnabled     bool   `env:"SNAPSHOT_ENABLED"     envDefault:"true"`
	SnapshotCron        string `env:"SNAPSHOT_CRON"        envDefault:"0 0 6 * * *"`
	SnapshotConcurrency int    `env:"SNAPSHOT_CONCURRENCY" envDefault:"4"`

	ScoreFootprintWeight float64 `env:"SCORE_FOOTPRINT_WEIGHT" envDefault:"1000"`
	ScoreShelfWeight     float64 `env:"SCORE_SHELF_WEIGHT"     envDefault:"10"`
	ScoreCornerWeight    float64 `env:"SCORE_CORNER_WEIGHT"    envDefault:"1"`
}

// LoadConfig reads envFile when it exists, then parses the environment.
// Variables already set in the environment win over the file.
func LoadConfig(envFile string) (Config, error) {
	if envFile != "" {
		// A missing file is not an error.
		_ = godotenv.Load(envFile)
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.SnapshotConcurrency < 1 {
		return Config{}, fmt.Errorf("parse env: SNAPSHOT_CONCURRENCY must be at least 1, got %d", cfg.SnapshotConcurrency)
	}
	if err := cfg.ScoreWeights().Validate(); err != nil {
		return Config{}, fmt.Errorf("parse env: SCORE_*_WEIGHT: %w", err)
	}
	return cfg, nil
}

// DSN returns the database connection string.
func (c Config) DSN() string {
	return postgres.DSN(c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}

// ScoreWeights returns the placement heuristic weights.
func (c Config) ScoreWeights() services.ScoreWeights {
	return services.ScoreWeights{
		FootprintFit: c.ScoreFootprintWeight,
		Shelf:        c.ScoreShelfWeight,
		Corner:       c.ScoreCornerWeight,
	}
}

// SlogLevel maps LOG_LEVEL to a slog level. Unknown values mean INFO.
func (c Config) SlogLevel() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo
	}
	return level
}
