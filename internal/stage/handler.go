package stage

import (
	"context"
	"log/slog"

	"warden/internal/student"
)

// Handler describes the contract the admission pipeline needs from each stage.
// Implementations are stateless between invocations and composable in any
// order the pipeline owner chooses.
type Handler interface {
	Name() string
	Evaluate(context.Context, *student.Student) error
}

// LoggerAware lets the pipeline inject a stage-scoped logger before evaluation.
type LoggerAware interface {
	SetLogger(*slog.Logger)
}

// HealthReporter lets stages expose readiness diagnostics.
type HealthReporter interface {
	HealthCheck(context.Context) Health
}

// Func adapts a plain function into a Handler; used for inline and test stages.
type Func struct {
	StageName string
	Fn        func(context.Context, *student.Student) error
}

func (f Func) Name() string { return f.StageName }

func (f Func) Evaluate(ctx context.Context, st *student.Student) error {
	if f.Fn == nil {
		return nil
	}
	return f.Fn(ctx, st)
}
