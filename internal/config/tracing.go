package config

// TracingConfig controls span export. Tracing stays off unless enabled and an endpoint is set.
type TracingConfig struct {
	Enabled     bool
	Endpoint    string
	ServiceName string
}

func loadTracing() TracingConfig {
	return TracingConfig{
		Enabled:     boolEnvOrDefault(envTracingOn, false),
		Endpoint:    envOrDefault(envTracesEndpoint, ""),
		ServiceName: envOrDefault(envOtelService, defaultServiceName),
	}
}
