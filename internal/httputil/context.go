package httputil

import (
	"context"
	"log/slog"
	"net/http"
)

// Context key type to avoid collisions
type contextKey string

const requestIDKey contextKey = "requestID"

// RequestIDHeader carries the request ID in both directions
const RequestIDHeader = "X-Request-ID"

// WithRequestID adds the request ID to the request context
func WithRequestID(r *http.Request, id string) *http.Request {
	ctx := context.WithValue(r.Context(), requestIDKey, id)
	return r.WithContext(ctx)
}

// GetRequestID retrieves the request ID from context, or "" if not set
func GetRequestID(r *http.Request) string {
	id, _ := r.Context().Value(requestIDKey).(string)
	return id
}

// Logger returns logger annotated with the request ID, when there is one
func Logger(r *http.Request, logger *slog.Logger) *slog.Logger {
	if id := GetRequestID(r); id != "" {
		return logger.With("request_id", id)
	}
	return logger
}
