package middleware

import (
	"net/http"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// TracingMiddleware starts a server span per request, named after the method and normalized path.
// Without a configured tracer provider the spans are no-ops.
func TracingMiddleware(service string, next http.Handler, opts ...otelhttp.Option) http.Handler {
	all := append([]otelhttp.Option{
		otelhttp.WithSpanNameFormatter(func(_ string, r *http.Request) string {
			return r.Method + " " + normalizePath(r.URL.Path)
		}),
	}, opts...)
	return otelhttp.NewHandler(next, service, all...)
}
