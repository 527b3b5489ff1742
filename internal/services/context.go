package services

import "context"

type contextKey string

const (
	studentKey   contextKey = "student"
	stageKey     contextKey = "stage"
	requestIDKey contextKey = "request_id"
)

// WithStudent annotates context with the student name being processed.
func WithStudent(ctx context.Context, name string) context.Context {
	if name == "" {
		return ctx
	}
	return context.WithValue(ctx, studentKey, name)
}

// StudentFromContext returns the student name if present.
func StudentFromContext(ctx context.Context) (string, bool) {
	if v, ok := ctx.Value(studentKey).(string); ok && v != "" {
		return v, true
	}
	return "", false
}

// WithStage annotates context with the admission stage name.
func WithStage(ctx context.Context, stage string) context.Context {
	if stage == "" {
		return ctx
	}
	return context.WithValue(ctx, stageKey, stage)
}

// StageFromContext returns the stage name if present.
func StageFromContext(ctx context.Context) (string, bool) {
	if v, ok := ctx.Value(stageKey).(string); ok && v != "" {
		return v, true
	}
	return "", false
}

// WithRequestID annotates context with a correlation identifier.
func WithRequestID(ctx context.Context, id string) context.Context {
	if id == "" {
		return ctx
	}
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestIDFromContext extracts the correlation identifier if present.
func RequestIDFromContext(ctx context.Context) (string, bool) {
	if v, ok := ctx.Value(requestIDKey).(string); ok && v != "" {
		return v, true
	}
	return "", false
}
