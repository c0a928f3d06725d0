package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type Config struct {
	Server  ServerConfig
	Seismic SeismicConfig
	Weather WeatherConfig
	Model   ModelConfig
	Worker  WorkerConfig
	API     APIConfig
	Logging LoggingConfig
}

type ServerConfig struct {
	Host string
	Port int
}

type SeismicConfig struct {
	BaseURL string
	Timeout time.Duration
}

type WeatherConfig struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
	// SyntheticFallback substitutes a locally generated, explicitly
	// flagged snapshot when the upstream weather call fails. Off by
	// default; opt-in for demo environments only.
	SyntheticFallback bool
}

type ModelConfig struct {
	// URL of the external tsunami model service. Empty disables the
	// model collaborator and classification uses the heuristic only.
	URL     string
	Timeout time.Duration
}

type WorkerConfig struct {
	Count      int
	BufferSize int
}

type APIConfig struct {
	RateLimitRPS int
}

type LoggingConfig struct {
	Level string
}

func Load() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Host: getEnv("SERVER_HOST", "localhost"),
			Port: getEnvInt("SERVER_PORT", 8080),
		},
		Seismic: SeismicConfig{
			BaseURL: getEnv("USGS_BASE_URL", "https://earthquake.usgs.gov/earthquakes/feed/v1.0/summary"),
			Timeout: getEnvDuration("USGS_TIMEOUT", 15*time.Second),
		},
		Weather: WeatherConfig{
			BaseURL:           getEnv("OPENWEATHER_BASE_URL", "https://api.openweathermap.org/data/2.5"),
			APIKey:            getEnv("OPENWEATHER_API_KEY", ""),
			Timeout:           getEnvDuration("OPENWEATHER_TIMEOUT", 15*time.Second),
			SyntheticFallback: getEnvBool("WEATHER_SYNTHETIC_FALLBACK", false),
		},
		Model: ModelConfig{
			URL:     getEnv("MODEL_SERVICE_URL", ""),
			Timeout: getEnvDuration("MODEL_SERVICE_TIMEOUT", 15*time.Second),
		},
		Worker: WorkerConfig{
			Count:      getEnvInt("WORKER_COUNT", 4),
			BufferSize: getEnvInt("WORKER_BUFFER_SIZE", 32),
		},
		API: APIConfig{
			RateLimitRPS: getEnvInt("RATE_LIMIT_RPS", 5),
		},
		Logging: LoggingConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[c.Logging.Level] {
		return fmt.Errorf("invalid log level: %s", c.Logging.Level)
	}

	if c.Seismic.Timeout < time.Second {
		return fmt.Errorf("USGS timeout must be at least 1 second")
	}
	if c.Weather.Timeout < time.Second {
		return fmt.Errorf("weather timeout must be at least 1 second")
	}

	if c.Worker.Count < 1 {
		return fmt.Errorf("worker count must be at least 1")
	}
	if c.API.RateLimitRPS < 1 {
		return fmt.Errorf("rate limit must be at least 1 req/s")
	}

	return nil
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if val := os.Getenv(key); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if val := os.Getenv(key); val != "" {
		if b, err := strconv.ParseBool(val); err == nil {
			return b
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if val := os.Getenv(key); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			return d
		}
	}
	return fallback
}
