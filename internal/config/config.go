package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

const (
	TransportHTTP  = "http"
	TransportStdio = "stdio"
)

type Config struct {
	APIBaseURL     string        `yaml:"api_base_url" env:"API_BASE_URL" env-default:"http://localhost:5001"`
	APITimeout     time.Duration `yaml:"api_timeout" env:"API_TIMEOUT" env-default:"30s"`
	Port           string        `yaml:"port" env:"PORT" env-default:"8000"`
	Transport      string        `yaml:"transport" env:"MCP_TRANSPORT" env-default:"http"`
	GinMode        string        `yaml:"gin_mode" env:"GIN_MODE" env-default:"release"`
	LogLevel       string        `yaml:"log_level" env:"LOG_LEVEL" env-default:"info"`
	LogFormat      string        `yaml:"log_format" env:"LOG_FORMAT" env-default:"json"`
	ServiceName    string        `yaml:"service_name" env:"SERVICE_NAME" env-default:"card-rewards-gateway"`
	Environment    string        `yaml:"environment" env:"ENVIRONMENT" env-default:"development"`
	TracingEnabled bool          `yaml:"tracing_enabled" env:"TRACING_ENABLED" env-default:"false"`
	JaegerEndpoint string        `yaml:"jaeger_endpoint" env:"JAEGER_ENDPOINT" env-default:"http://localhost:14268/api/traces"`
	MaxBodyBytes   int64         `yaml:"max_body_bytes" env:"MAX_BODY_BYTES" env-default:"1048576"`
}

// Load reads configuration from an optional .env file, an optional YAML file
// named by CONFIG_PATH, and the process environment. Environment wins.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	var cfg Config
	if path, ok := os.LookupEnv("CONFIG_PATH"); ok && path != "" {
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("read config file %s: %w", path, err)
		}
	} else if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("read env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	u, err := url.Parse(c.APIBaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("invalid API_BASE_URL %q", c.APIBaseURL)
	}
	if c.APITimeout <= 0 {
		return fmt.Errorf("API_TIMEOUT must be positive, got %s", c.APITimeout)
	}
	switch c.Transport {
	case TransportHTTP, TransportStdio:
	default:
		return fmt.Errorf("unknown MCP_TRANSPORT %q (want %s or %s)", c.Transport, TransportHTTP, TransportStdio)
	}
	if c.Transport == TransportHTTP && c.Port == "" {
		return errors.New("PORT is required for http transport")
	}
	return nil
}
