package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"warden/internal/logging"
	"warden/internal/notifications"
	"warden/internal/services"
	"warden/internal/stage"
	"warden/internal/student"
)

// Runner walks an ordered sequence of admission stages over a single student.
// The first failing stage aborts the walk; no later stage runs. Evaluation is
// strictly sequential so the first-failure-wins guarantee holds.
type Runner struct {
	stages   []stage.Handler
	logger   *slog.Logger
	notifier notifications.Service
}

// New constructs a runner owning the given stage order. The notifier may be
// nil when no delivery surface is wired.
func New(logger *slog.Logger, notifier notifications.Service, stages ...stage.Handler) *Runner {
	if logger == nil {
		logger = logging.NewNop()
	}
	owned := make([]stage.Handler, len(stages))
	copy(owned, stages)
	return &Runner{
		stages:   owned,
		logger:   logging.NewComponentLogger(logger, "pipeline"),
		notifier: notifier,
	}
}

// Stages returns the stage order. The returned slice is a copy.
func (r *Runner) Stages() []stage.Handler {
	cp := make([]stage.Handler, len(r.stages))
	copy(cp, r.stages)
	return cp
}

// Run evaluates every stage in insertion order against st. Side effects a
// stage performs happen immediately during its evaluation, interleaved with
// the walk, never buffered. A pipeline with zero stages succeeds trivially.
//
// The failure produced by the first failing stage is surfaced to the caller
// unchanged; callers distinguish expected validation outcomes from defects
// with stage.AsFailure.
func (r *Runner) Run(ctx context.Context, st *student.Student) error {
	if st == nil {
		return errors.New("student is required")
	}

	runCtx := services.WithStudent(ctx, st.Name)
	runCtx = services.WithRequestID(runCtx, uuid.NewString())

	for _, handler := range r.stages {
		if err := r.runStage(runCtx, handler, st); err != nil {
			return err
		}
	}

	logging.WithContext(runCtx, r.logger).Info(
		"admission pipeline completed",
		logging.String(logging.FieldEventType, "pipeline_complete"),
		logging.Int("stage_count", len(r.stages)),
	)
	return nil
}

func (r *Runner) runStage(ctx context.Context, handler stage.Handler, st *student.Student) error {
	if handler == nil {
		return errors.New("stage handler unavailable")
	}

	stageCtx := services.WithStage(ctx, handler.Name())
	stageLogger := logging.WithContext(stageCtx, r.logger)
	if aware, ok := handler.(stage.LoggerAware); ok {
		aware.SetLogger(stageLogger)
	}

	stageStart := time.Now()
	stageLogger.Info(
		"stage started",
		logging.String(logging.FieldEventType, "stage_start"),
	)

	if err := handler.Evaluate(stageCtx, st); err != nil {
		return r.handleFailure(stageCtx, stageLogger, handler.Name(), st, err)
	}

	stageLogger.Info(
		"stage completed",
		logging.String(logging.FieldEventType, "stage_complete"),
		logging.Duration("stage_duration", time.Since(stageStart)),
	)
	return nil
}

func (r *Runner) handleFailure(ctx context.Context, logger *slog.Logger, stageName string, st *student.Student, stageErr error) error {
	if failure, ok := stage.AsFailure(stageErr); ok {
		logger.Warn(
			"stage rejected student",
			logging.String(logging.FieldEventType, "stage_failure"),
			logging.String("rule", failure.Rule),
			logging.String("reason", failure.Reason),
		)
		if r.notifier != nil {
			if err := r.notifier.Publish(ctx, notifications.EventAdmissionRejected, notifications.Payload{
				"student": st.Name,
				"reason":  failure.Reason,
			}); err != nil {
				logger.Debug("rejection notification failed", logging.Error(err))
			}
		}
		return stageErr
	}

	logger.Error(
		"stage failed",
		logging.String(logging.FieldEventType, "stage_failure"),
		logging.Error(stageErr),
	)
	if r.notifier != nil {
		contextLabel := fmt.Sprintf("%s (%s)", stageName, st.Name)
		if err := r.notifier.Publish(ctx, notifications.EventError, notifications.Payload{
			"error":   stageErr,
			"context": contextLabel,
		}); err != nil {
			logger.Debug("stage error notification failed", logging.Error(err))
		}
	}
	return stageErr
}

// Health reports the readiness of every stage in pipeline order.
func (r *Runner) Health(ctx context.Context) []stage.Health {
	checks := make([]stage.Health, 0, len(r.stages))
	for _, handler := range r.stages {
		if reporter, ok := handler.(stage.HealthReporter); ok {
			checks = append(checks, reporter.HealthCheck(ctx))
			continue
		}
		checks = append(checks, stage.Healthy(handler.Name()))
	}
	return checks
}
