package config

import (
	"errors"
	"io/fs"

	"github.com/joho/godotenv"
)

// Config holds runtime configuration for the server.
type Config struct {
	Port            string
	SeedFile        string
	ShutdownTimeout Duration
	Logging         LoggingConfig
	Metrics         MetricsConfig
	Tracing         TracingConfig
}

// LoggingConfig selects the log level, output format and optional log file.
type LoggingConfig struct {
	Level  string
	Format string
	File   string
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	return Config{
		Port:            envOrDefault(envPort, defaultPort),
		SeedFile:        envOrDefault(envSeedFile, ""),
		ShutdownTimeout: durationEnvOrDefault(envShutdownTimeout, defaultShutdownTimeout),
		Logging: LoggingConfig{
			Level:  envOrDefault(envLogLevel, defaultLogLevel),
			Format: envOrDefault(envLogFormat, defaultLogFormat),
			File:   envOrDefault(envLogFile, ""),
		},
		Metrics: loadMetrics(),
		Tracing: loadTracing(),
	}
}

// LoadDotEnv populates the environment from the given .env files (".env" when none
// are given) before calling Load. Variables already set win, and a missing file is ignored.
func LoadDotEnv(files ...string) (Config, error) {
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Load(), err
	}
	return Load(), nil
}
