package admission_test

import (
	"context"
	"strings"
	"testing"

	"warden/internal/admission"
	"warden/internal/config"
	"warden/internal/notifications"
	"warden/internal/pipeline"
	"warden/internal/stage"
	"warden/internal/student"
)

func defaultStages(cfg *config.Config, notifier notifications.Service) []stage.Handler {
	return []stage.Handler{
		admission.NewProximityCheck(cfg, nil),
		admission.NewPaymentCheck(nil),
		admission.NewAllocator(nil, notifier),
	}
}

func TestProximityCheckRejectsNearbyStudent(t *testing.T) {
	cfg := config.Default()
	check := admission.NewProximityCheck(&cfg, nil)

	st := student.New("Jane", 5, true)
	err := check.Evaluate(context.Background(), st)
	failure, ok := stage.AsFailure(err)
	if !ok {
		t.Fatalf("expected validation failure, got %v", err)
	}
	if failure.Student != "Jane" {
		t.Fatalf("failure must name the student, got %q", failure.Student)
	}
	if !strings.Contains(failure.Reason, "5 units") {
		t.Fatalf("failure must cite proximity, got %q", failure.Reason)
	}
}

func TestProximityCheckThresholdIsStrict(t *testing.T) {
	cfg := config.Default()
	check := admission.NewProximityCheck(&cfg, nil)

	atThreshold := student.New("Edge", cfg.Admission.ProximityThreshold, true)
	if err := check.Evaluate(context.Background(), atThreshold); err != nil {
		t.Fatalf("distance equal to threshold must pass, got %v", err)
	}

	justUnder := student.New("Close", cfg.Admission.ProximityThreshold-1, true)
	if err := check.Evaluate(context.Background(), justUnder); err == nil {
		t.Fatal("distance below threshold must fail")
	}
}

func TestPaymentCheckRejectsUnpaidFee(t *testing.T) {
	check := admission.NewPaymentCheck(nil)

	err := check.Evaluate(context.Background(), student.New("Jane", 15, false))
	failure, ok := stage.AsFailure(err)
	if !ok {
		t.Fatalf("expected validation failure, got %v", err)
	}
	if !strings.Contains(failure.Reason, "fee") {
		t.Fatalf("failure must cite the fee, got %q", failure.Reason)
	}

	if err := check.Evaluate(context.Background(), student.New("John Doe", 15, true)); err != nil {
		t.Fatalf("paid fee must pass, got %v", err)
	}
}

func TestAllocatorNeverFailsAndNotifies(t *testing.T) {
	hub := notifications.NewHub()
	captured := &capturingObserver{}
	hub.Register(captured)
	cfg := config.Default()
	notifier := notifications.NewServiceWithHub(&cfg, hub)

	allocator := admission.NewAllocator(nil, notifier)
	if err := allocator.Evaluate(context.Background(), student.New("John Doe", 15, true)); err != nil {
		t.Fatalf("allocator must not fail, got %v", err)
	}
	if len(captured.messages) != 1 || !strings.Contains(captured.messages[0], "John Doe") {
		t.Fatalf("unexpected notifications: %v", captured.messages)
	}
}

func TestFullAdmissionScenarios(t *testing.T) {
	cfg := config.Default()

	tests := []struct {
		name       string
		st         *student.Student
		wantRule   string
		wantReason string
	}{
		{
			name: "all stages pass",
			st:   student.New("John Doe", 15, true),
		},
		{
			name:       "proximity fails first",
			st:         student.New("Jane", 5, true),
			wantRule:   admission.StageProximity,
			wantReason: "Jane",
		},
		{
			name:       "payment fails after proximity passes",
			st:         student.New("Late Payer", 15, false),
			wantRule:   admission.StagePayment,
			wantReason: "fee",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			hub := notifications.NewHub()
			captured := &capturingObserver{}
			hub.Register(captured)
			notifier := notifications.NewServiceWithHub(&cfg, hub)

			runner := pipeline.New(nil, notifier, defaultStages(&cfg, notifier)...)
			err := runner.Run(context.Background(), tc.st)

			if tc.wantRule == "" {
				if err != nil {
					t.Fatalf("expected success, got %v", err)
				}
				// Allocation notification is the observable final action.
				if len(captured.messages) != 1 || !strings.Contains(captured.messages[0], "Room allocated") {
					t.Fatalf("unexpected notifications: %v", captured.messages)
				}
				return
			}

			failure, ok := stage.AsFailure(err)
			if !ok {
				t.Fatalf("expected validation failure, got %v", err)
			}
			if failure.Rule != tc.wantRule {
				t.Fatalf("unexpected rule: got %q want %q", failure.Rule, tc.wantRule)
			}
			if !strings.Contains(failure.Reason, tc.wantReason) {
				t.Fatalf("expected reason to mention %q, got %q", tc.wantReason, failure.Reason)
			}
		})
	}
}

type capturingObserver struct {
	messages []string
}

func (c *capturingObserver) Name() string { return "capture" }

func (c *capturingObserver) Notify(_ context.Context, message string) error {
	c.messages = append(c.messages, message)
	return nil
}
