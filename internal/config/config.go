package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App struct {
		Name string `envconfig:"APP_NAME" default:"Rebill"`
		Env  string `envconfig:"APP_ENV" default:"development"`
		Port int    `envconfig:"PORT" default:"8080"`
	}

	DB struct {
		Host     string `envconfig:"DB_HOST" default:"localhost"`
		Port     int    `envconfig:"DB_PORT" default:"5432"`
		User     string `envconfig:"DB_USER" default:"postgres"`
		Password string `envconfig:"DB_PASSWORD" default:""`
		Name     string `envconfig:"DB_NAME" default:"rebill"`
	}

	Provider struct {
		BaseURL string `envconfig:"PROVIDER_BASE_URL" default:"https://api.provider.example/2.0"`
		Token   string `envconfig:"PROVIDER_TOKEN"`
		// PageDelay is the pause between paginated calls; the billing API
		// enforces a request-rate ceiling.
		PageDelay       time.Duration `envconfig:"PROVIDER_PAGE_DELAY" default:"500ms"`
		RateLimitPause  time.Duration `envconfig:"PROVIDER_RATE_LIMIT_PAUSE" default:"30s"`
		MaxPageAttempts int           `envconfig:"PROVIDER_MAX_PAGE_ATTEMPTS" default:"3"`
	}

	Extract struct {
		Dir string `envconfig:"EXTRACT_DIR" default:"./extracts"`
	}

	Pipeline struct {
		Workers int `envconfig:"PIPELINE_WORKERS" default:"4"`
	}

	Log struct {
		Level string `envconfig:"LOG_LEVEL" default:"info"`
	}
}

func (c *Config) ConnectionString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		c.DB.User, c.DB.Password, c.DB.Host, c.DB.Port, c.DB.Name)
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	return &cfg, nil
}
