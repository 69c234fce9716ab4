package logging

import "log/slog"

// Common structured log field keys to keep logs searchable/consistent.
const (
	FieldService    = "service"
	FieldVersion    = "version"
	FieldLeague     = "league"
	FieldMode       = "mode"
	FieldAttempt    = "attempt"
	FieldPriority   = "priority"
	FieldCount      = "count"
	FieldDurationMS = "duration_ms"
	FieldStatusCode = "status_code"
	FieldPath       = "path"
	FieldMethod     = "method"
)

// WithCommon appends service/version fields when provided.
func WithCommon(attrs []slog.Attr, service, version string) []slog.Attr {
	if service != "" {
		attrs = append(attrs, slog.String(FieldService, service))
	}
	if version != "" {
		attrs = append(attrs, slog.String(FieldVersion, version))
	}
	return attrs
}
