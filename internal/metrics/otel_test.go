package metrics

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
)

func TestSetupDisabledReturnsNoHandler(t *testing.T) {
	rec, handler, shutdown, err := Setup(context.Background(), TelemetryConfig{
		Enabled: false,
	})
	if err != nil {
		t.Fatalf("expected no error when disabled, got %v", err)
	}
	if rec == nil {
		t.Fatalf("expected recorder")
	}
	if handler != nil {
		t.Fatalf("expected nil handler when disabled")
	}
	if shutdown == nil {
		t.Fatalf("expected shutdown function")
	}
}

func TestSetupEnabledInitializesRecorderAndHandler(t *testing.T) {
	rec, handler, shutdown, err := Setup(context.Background(), TelemetryConfig{
		Enabled:     true,
		ServiceName: "game-reviews-service",
		// No OTLP endpoint; uses Prometheus exporter only.
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if rec == nil {
		t.Fatalf("expected recorder")
	}
	if handler == nil {
		t.Fatalf("expected handler when enabled")
	}
	if shutdown == nil {
		t.Fatalf("expected shutdown function")
	}

	// Exercise otel-backed recorders to ensure no panic.
	rec.RecordHTTPRequest("POST", "/query", 200, time.Millisecond)
	rec.RecordResolver("Query.game", time.Millisecond, OutcomeMiss)
	rec.RecordGameMutation("add")

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	body := rr.Body.String()
	for _, name := range []string{"resolver_calls", "resolver_misses", "game_mutations", "http_requests"} {
		if !strings.Contains(body, name) {
			t.Fatalf("expected %s in prometheus output", name)
		}
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown failed: %v", err)
	}
}

func TestSetupPropagatesReaderError(t *testing.T) {
	orig := promReaderFactory
	t.Cleanup(func() { promReaderFactory = orig })
	promReaderFactory = func() (sdkmetric.Reader, http.Handler, error) {
		return nil, nil, errors.New("boom")
	}

	if _, _, _, err := Setup(context.Background(), TelemetryConfig{Enabled: true}); err == nil {
		t.Fatalf("expected error from reader factory")
	}
}

func TestSetupPropagatesInstrumentError(t *testing.T) {
	orig := instrumentFactory
	t.Cleanup(func() { instrumentFactory = orig })
	instrumentFactory = func(metric.MeterProvider) (*otelInstruments, error) {
		return nil, errors.New("boom")
	}

	if _, _, _, err := Setup(context.Background(), TelemetryConfig{Enabled: true}); err == nil {
		t.Fatalf("expected error from instrument factory")
	}
}
