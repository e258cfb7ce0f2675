package logging

import "log/slog"

// Log attribute keys shared across packages.
const (
	FieldService    = "service"
	FieldVersion    = "version"
	FieldStatusCode = "status_code"
	FieldDurationMS = "duration_ms"
	FieldRequestID  = "request_id"
	FieldOperation  = "operation"
	FieldGameID     = "game_id"
)

// WithCommon appends the service and version attributes, skipping empty values.
func WithCommon(attrs []slog.Attr, service, version string) []slog.Attr {
	if service != "" {
		attrs = append(attrs, slog.String(FieldService, service))
	}
	if version != "" {
		attrs = append(attrs, slog.String(FieldVersion, version))
	}
	return attrs
}
