package admission

import (
	"context"
	"log/slog"

	"warden/internal/logging"
	"warden/internal/notifications"
	"warden/internal/student"
)

// StageAllocation is the pipeline name of the room allocation stage.
const StageAllocation = "allocation"

// Allocator assigns a room to a student whose gates have all passed. It never
// fails; the stage exists for its side effects, showing that not every stage
// is a gate.
type Allocator struct {
	logger   *slog.Logger
	notifier notifications.Service
}

// NewAllocator builds the allocation stage. The notifier may be nil.
func NewAllocator(logger *slog.Logger, notifier notifications.Service) *Allocator {
	return &Allocator{
		logger:   logging.NewComponentLogger(logger, StageAllocation),
		notifier: notifier,
	}
}

func (a *Allocator) Name() string { return StageAllocation }

// SetLogger installs the stage-scoped logger supplied by the pipeline.
func (a *Allocator) SetLogger(logger *slog.Logger) {
	if logger != nil {
		a.logger = logger
	}
}

func (a *Allocator) Evaluate(ctx context.Context, st *student.Student) error {
	logger := logging.WithContext(ctx, a.logger)
	logger.Info(
		"room allocated",
		logging.String(logging.FieldEventType, "allocation"),
	)
	if a.notifier != nil {
		if err := a.notifier.Publish(ctx, notifications.EventAllocationCompleted, notifications.Payload{
			"student": st.Name,
		}); err != nil {
			logger.Warn("failed to send allocation notification", logging.Error(err))
		}
	}
	return nil
}
