package roster

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"warden/internal/config"
	"warden/internal/logging"
	"warden/internal/notifications"
	"warden/internal/services"
)

// Service is the business layer over the roster store. It owns the
// registration rules: names are required and unique, and students who live
// closer than the proximity threshold are turned away before a record is
// created. The admission pipeline applies its own copy of the proximity rule;
// the two are tuned from the same configuration but enforced independently.
type Service struct {
	store    *Store
	cfg      *config.Config
	logger   *slog.Logger
	notifier notifications.Service
}

// NewService builds the roster business service.
func NewService(store *Store, cfg *config.Config, logger *slog.Logger, notifier notifications.Service) *Service {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Service{
		store:    store,
		cfg:      cfg,
		logger:   logger.With(logging.String(logging.FieldComponent, "roster")),
		notifier: notifier,
	}
}

// Register validates and persists a new registration.
func (s *Service) Register(ctx context.Context, name string, distance int, feePaid bool) (*Record, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, services.Wrap(services.ErrValidation, "roster", "register", "student name is required", nil)
	}
	if distance < 0 {
		return nil, services.Wrap(services.ErrValidation, "roster", "register", "distance cannot be negative", nil)
	}

	threshold := s.cfg.Admission.ProximityThreshold
	if distance < threshold {
		return nil, services.Wrap(services.ErrValidation, "roster", "register",
			fmt.Sprintf("%s lives %d units from the hostel; registration requires at least %d", name, distance, threshold), nil)
	}

	ctx = services.WithStudent(ctx, name)
	record, err := s.store.Add(ctx, name, distance, feePaid)
	if err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "student registered",
		logging.Int64("record_id", record.ID),
		logging.Int("distance", record.Distance),
		logging.Bool("fee_paid", record.FeePaid))

	if s.notifier != nil {
		if err := s.notifier.Publish(ctx, notifications.EventRegistrationCompleted, notifications.Payload{
			"student": record.Name,
		}); err != nil {
			s.logger.WarnContext(ctx, "registration notification failed", logging.Error(err))
		}
	}

	return record, nil
}

// Lookup returns the record for a student name or services.ErrNotFound.
func (s *Service) Lookup(ctx context.Context, name string) (*Record, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, services.Wrap(services.ErrValidation, "roster", "lookup", "student name is required", nil)
	}
	record, err := s.store.GetByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, services.Wrap(services.ErrNotFound, "roster", "lookup",
			fmt.Sprintf("student %q is not registered", name), nil)
	}
	return record, nil
}

// Roster lists records, optionally filtered by status.
func (s *Service) Roster(ctx context.Context, statuses ...Status) ([]*Record, error) {
	return s.store.List(ctx, statuses...)
}

// Withdraw removes a student's registration.
func (s *Service) Withdraw(ctx context.Context, name string) error {
	record, err := s.Lookup(ctx, name)
	if err != nil {
		return err
	}
	removed, err := s.store.Remove(ctx, record.ID)
	if err != nil {
		return err
	}
	if !removed {
		return services.Wrap(services.ErrNotFound, "roster", "withdraw",
			fmt.Sprintf("student %q is not registered", name), nil)
	}
	s.logger.InfoContext(ctx, "student withdrawn",
		logging.String(logging.FieldStudent, record.Name),
		logging.Int64("record_id", record.ID))
	return nil
}

// Clear removes every record from the roster and returns the count removed.
func (s *Service) Clear(ctx context.Context) (int64, error) {
	removed, err := s.store.Clear(ctx)
	if err != nil {
		return 0, err
	}
	s.logger.InfoContext(ctx, "roster cleared", logging.Int64("removed", removed))
	return removed, nil
}
