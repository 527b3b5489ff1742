package admission

import (
	"context"
	"fmt"
	"log/slog"

	"warden/internal/logging"
	"warden/internal/stage"
	"warden/internal/student"
)

// StagePayment is the pipeline name of the fee gate.
const StagePayment = "payment"

// PaymentCheck rejects students whose admission fee is outstanding.
type PaymentCheck struct {
	logger *slog.Logger
}

// NewPaymentCheck builds the fee gate.
func NewPaymentCheck(logger *slog.Logger) *PaymentCheck {
	return &PaymentCheck{logger: logging.NewComponentLogger(logger, StagePayment)}
}

func (p *PaymentCheck) Name() string { return StagePayment }

// SetLogger installs the stage-scoped logger supplied by the pipeline.
func (p *PaymentCheck) SetLogger(logger *slog.Logger) {
	if logger != nil {
		p.logger = logger
	}
}

func (p *PaymentCheck) Evaluate(ctx context.Context, st *student.Student) error {
	logger := logging.WithContext(ctx, p.logger)
	if !st.FeePaid {
		return stage.Fail(st, StagePayment, fmt.Sprintf("%s has not paid the admission fee", st.Name))
	}
	logger.Info("payment check passed")
	return nil
}
