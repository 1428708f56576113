package config

import (
	"errors"
	"os"
	"time"

	env "github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	HTTPPort         int    `env:"HTTP_PORT"          envDefault:"8080"`
	PostgresDSN      string `env:"POSTGRES_DSN"`
	PostgresMaxConns int32  `env:"POSTGRES_MAX_CONNS" envDefault:"10"`
	LogLevel         string `env:"LOG_LEVEL"          envDefault:"info"`

	JWTSecret string        `env:"JWT_SECRET"`
	TokenTTL  time.Duration `env:"TOKEN_TTL" envDefault:"720h"`

	TokenCleanupInterval time.Duration `env:"TOKEN_CLEANUP_INTERVAL" envDefault:"1h"`

	KafkaBrokers     []string `env:"KAFKA_BROKERS" envSeparator:","`
	KafkaOrdersTopic string   `env:"KAFKA_ORDERS_TOPIC" envDefault:"laundry.orders"`
}

func New(envPath string) (Config, error) {
	var c Config

	err := godotenv.Load(envPath)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, err
	}

	err = env.Parse(&c)
	if err != nil {
		return Config{}, err
	}

	return c, nil
}
