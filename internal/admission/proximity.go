package admission

import (
	"context"
	"fmt"
	"log/slog"

	"warden/internal/config"
	"warden/internal/logging"
	"warden/internal/stage"
	"warden/internal/student"
)

// StageProximity is the pipeline name of the proximity gate.
const StageProximity = "proximity"

// ProximityCheck rejects students who live too close to the hostel to need a
// room. The threshold comparison is strict: a distance equal to the threshold
// passes.
type ProximityCheck struct {
	threshold int
	logger    *slog.Logger
}

// NewProximityCheck builds the gate from the configured threshold.
func NewProximityCheck(cfg *config.Config, logger *slog.Logger) *ProximityCheck {
	threshold := 0
	if cfg != nil {
		threshold = cfg.Admission.ProximityThreshold
	}
	return &ProximityCheck{
		threshold: threshold,
		logger:    logging.NewComponentLogger(logger, StageProximity),
	}
}

func (p *ProximityCheck) Name() string { return StageProximity }

// SetLogger installs the stage-scoped logger supplied by the pipeline.
func (p *ProximityCheck) SetLogger(logger *slog.Logger) {
	if logger != nil {
		p.logger = logger
	}
}

func (p *ProximityCheck) Evaluate(ctx context.Context, st *student.Student) error {
	logger := logging.WithContext(ctx, p.logger)
	if st.Distance < p.threshold {
		return stage.Fail(st, StageProximity, fmt.Sprintf(
			"%s lives %d units from the hostel; admission requires at least %d",
			st.Name, st.Distance, p.threshold,
		))
	}
	logger.Info(
		"proximity check passed",
		logging.Int("distance", st.Distance),
		logging.Int("threshold", p.threshold),
	)
	return nil
}

// HealthCheck reports whether the gate has a usable threshold.
func (p *ProximityCheck) HealthCheck(context.Context) stage.Health {
	if p.threshold < 0 {
		return stage.Unhealthy(StageProximity, fmt.Sprintf("negative threshold %d", p.threshold))
	}
	return stage.Healthy(StageProximity)
}
