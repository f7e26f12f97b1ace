package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Engine   EngineConfig
	Worker   WorkerConfig
	Log      LogConfig
}
type ServerConfig struct {
	Port            string        `env:"SERVER_PORT" envDefault:"8080"`
	ReadTimeout     time.Duration `env:"SERVER_READ_TIMEOUT" envDefault:"10s"`
	WriteTimeout    time.Duration `env:"SERVER_WRITE_TIMEOUT" envDefault:"10s"`
	ShutdownTimeout time.Duration `env:"SERVER_SHUTDOWN_TIMEOUT" envDefault:"30s"`
}
type DatabaseConfig struct {
	Host            string        `env:"DB_HOST" envDefault:"localhost"`
	Port            string        `env:"DB_PORT" envDefault:"5432"`
	User            string        `env:"DB_USER" envDefault:"postgres"`
	Password        string        `env:"DB_PASSWORD" envDefault:"postgres"`
	Name            string        `env:"DB_NAME" envDefault:"numbers_game"`
	MaxOpenConns    int           `env:"DB_MAX_OPEN_CONNS" envDefault:"25"`
	MaxIdleConns    int           `env:"DB_MAX_IDLE_CONNS" envDefault:"5"`
	ConnMaxLifetime time.Duration `env:"DB_CONN_MAX_LIFETIME" envDefault:"5m"`
	ConnMaxIdleTime time.Duration `env:"DB_CONN_MAX_IDLE_TIME" envDefault:"5m"`
	TxIsolation     string        `env:"DB_TX_ISOLATION" envDefault:"read committed"`
	AutoMigrate     bool          `env:"DB_AUTO_MIGRATE" envDefault:"true"`
}
type EngineConfig struct {
	TxMaxRetries       uint64        `env:"ENGINE_TX_MAX_RETRIES" envDefault:"3"`
	TxRetryBaseDelay   time.Duration `env:"ENGINE_TX_RETRY_BASE_DELAY" envDefault:"20ms"`
	PlacementTimeout   time.Duration `env:"ENGINE_PLACEMENT_TIMEOUT" envDefault:"5s"`
	DrawsPerDay        int           `env:"ENGINE_DRAWS_PER_DAY" envDefault:"3"`
	AutoBetConcurrency int           `env:"ENGINE_AUTOBET_CONCURRENCY" envDefault:"8"`
}
type WorkerConfig struct {
	DrawCloseInterval time.Duration `env:"WORKER_DRAW_CLOSE_INTERVAL" envDefault:"30s"`
	AutoBetInterval   time.Duration `env:"WORKER_AUTOBET_INTERVAL" envDefault:"1m"`
}
type LogConfig struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Pretty bool   `env:"LOG_PRETTY" envDefault:"true"`
}

// Load reads an optional .env file and then the process environment.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if cfg.Engine.DrawsPerDay <= 0 {
		return nil, fmt.Errorf("ENGINE_DRAWS_PER_DAY must be positive, got %d", cfg.Engine.DrawsPerDay)
	}
	if cfg.Engine.AutoBetConcurrency <= 0 {
		cfg.Engine.AutoBetConcurrency = 1
	}
	return cfg, nil
}
