package config

import (
	"os"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"

	"github.com/tenderboard/tenderboard/storage"
)

type Config struct {
	Storage  storage.Config
	LogLevel string `yaml:"LOG_LEVEL" env:"LOG_LEVEL" env-default:"info"`
}

// New loads configuration from a .env file (if present) and the process
// environment. Everything has a default except DATABASE_URL, which is only
// required for the postgres storage backend.
func New() (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, err
	}

	var config Config
	if err := cleanenv.ReadEnv(&config); err != nil {
		return nil, err
	}
	return &config, nil
}
