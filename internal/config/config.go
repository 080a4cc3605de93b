package config

import (
	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"mesa-placements/internal/config/configs"
)

// Store drivers selectable through STORE_DRIVER.
const (
	StorePostgres = "postgres"
	StoreMemory   = "memory"
)

// Config aggregates all configuration sections for the application. Fields
// are populated from environment variables using the caarlos0/env library.
// Nested structs are tagged with envPrefix so their fields are parsed with
// the given prefix. Use Load to construct a Config.
type Config struct {
	// Env names the deployment environment (e.g. prod, dev).
	Env string `env:"ENV" envDefault:"prod"`

	// StoreDriver selects the persistence backend: "postgres" or "memory".
	// The memory driver keeps everything in process and seeds the demo
	// catalog on start.
	StoreDriver string `env:"STORE_DRIVER" envDefault:"postgres"`

	HTTP     configs.HTTP     `envPrefix:"HTTP_"`
	Log      configs.Logger   `envPrefix:"LOG_"`
	Psql     configs.Postgres `envPrefix:"PSQL_"`
	Redis    configs.Redis    `envPrefix:"REDIS_"`
	Kafka    configs.Kafka    `envPrefix:"KAFKA_"`
	Auth     configs.Auth     `envPrefix:"AUTH_"`
	Booking  configs.Booking  `envPrefix:"BOOKING_"`
	Tracking configs.Tracking `envPrefix:"TRACKING_"`
}

// Load reads an optional .env file and then the process environment into a
// Config. Variables already set in the environment win over the file.
func Load() (Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
