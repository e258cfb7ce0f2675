package config

import "time"

const (
	envPort            = "PORT"
	envSeedFile        = "SEED_FILE"
	envShutdownTimeout = "SHUTDOWN_TIMEOUT"
	envLogLevel        = "LOG_LEVEL"
	envLogFormat       = "LOG_FORMAT"
	envLogFile         = "LOG_FILE"
	envMetricsPort     = "METRICS_PORT"
	envMetricsOn       = "METRICS_ENABLED"
	envOtelEndpoint    = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService     = "OTEL_SERVICE_NAME"
	envOtelInsecure    = "OTEL_EXPORTER_OTLP_INSECURE"
	envTracingOn       = "TRACING_ENABLED"
	envTracesEndpoint  = "OTEL_EXPORTER_OTLP_TRACES_ENDPOINT"

	defaultPort            = "4000"
	defaultShutdownTimeout = 10 * Duration(time.Second)
	defaultLogLevel        = "info"
	defaultLogFormat       = "text"
	defaultMetricsPort     = "9090"
	defaultServiceName     = "game-reviews-service"
)
