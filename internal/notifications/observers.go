package notifications

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"warden/internal/logging"
)

// ConsoleObserver writes an acknowledgment including its own name to w.
type ConsoleObserver struct {
	name string
	w    io.Writer
}

// NewConsoleObserver builds an observer printing to w.
func NewConsoleObserver(name string, w io.Writer) *ConsoleObserver {
	return &ConsoleObserver{name: name, w: w}
}

func (c *ConsoleObserver) Name() string { return c.name }

func (c *ConsoleObserver) Notify(_ context.Context, message string) error {
	if c.w == nil {
		return nil
	}
	if _, err := fmt.Fprintf(c.w, "[%s] %s\n", c.name, message); err != nil {
		return fmt.Errorf("console observer %s: %w", c.name, err)
	}
	return nil
}

// LogObserver records deliveries through slog.
type LogObserver struct {
	name   string
	logger *slog.Logger
}

// NewLogObserver builds an observer that logs each delivery.
func NewLogObserver(name string, logger *slog.Logger) *LogObserver {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &LogObserver{name: name, logger: logging.NewComponentLogger(logger, "notifications")}
}

func (l *LogObserver) Name() string { return l.name }

func (l *LogObserver) Notify(_ context.Context, message string) error {
	l.logger.Info("notification delivered",
		logging.String("observer", l.name),
		logging.String("message", message),
	)
	return nil
}
