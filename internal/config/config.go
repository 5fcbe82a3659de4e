package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds the startup configuration for the service. It is built once
// in main and passed by reference into the components that need it.
type Config struct {
	DatabaseURL string `envconfig:"DATABASE_URL" required:"true"`
	SalesFile   string `envconfig:"SALES_FILE"   required:"true"`
	HTTPAddr    string `envconfig:"HTTP_ADDR"    default:":8081"`
}

// Load reads the configuration from the environment. A .env file in the
// working directory is loaded first when present.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("loading .env file: %w", err)
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("processing environment: %w", err)
	}

	return &cfg, nil
}
