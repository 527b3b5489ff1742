package notifications

import (
	"context"
	"fmt"
	"strings"
	"time"

	"warden/internal/config"
)

// Event enumerates the registrar milestones observers can be told about.
type Event string

const (
	EventRegistrationCompleted Event = "registration_completed"
	EventAdmissionCompleted    Event = "admission_completed"
	EventAdmissionRejected     Event = "admission_rejected"
	EventAllocationCompleted   Event = "allocation_completed"
	EventError                 Event = "error"
	EventTest                  Event = "test"
)

// Payload carries event-specific values used to format the broadcast message.
type Payload map[string]any

// Service is the notification surface exposed to the pipeline and roster
// layers. It decouples event producers from whoever is listening.
type Service interface {
	Publish(ctx context.Context, event Event, payload Payload) error
}

// HubService formats events into human-readable messages and broadcasts them
// through a Hub.
type HubService struct {
	hub     *Hub
	enabled map[Event]bool
}

// NewService builds a notification service backed by the config's ntfy topic
// when one is set. With no topic the hub starts empty, which makes Publish a
// no-op until callers register their own observers.
func NewService(cfg *config.Config) *HubService {
	hub := NewHub()
	if cfg != nil {
		if topic := strings.TrimSpace(cfg.Notifications.NtfyTopic); topic != "" {
			timeout := time.Duration(cfg.Notifications.RequestTimeout) * time.Second
			hub.Register(NewNtfyObserver(topic, timeout))
		}
	}
	return NewServiceWithHub(cfg, hub)
}

// NewServiceWithHub builds a service over a caller-supplied hub.
func NewServiceWithHub(cfg *config.Config, hub *Hub) *HubService {
	if hub == nil {
		hub = NewHub()
	}
	enabled := map[Event]bool{
		EventRegistrationCompleted: true,
		EventAdmissionCompleted:    true,
		EventAdmissionRejected:     true,
		EventAllocationCompleted:   true,
		EventError:                 true,
		EventTest:                  true,
	}
	if cfg != nil {
		enabled[EventRegistrationCompleted] = cfg.Notifications.Registration
		enabled[EventAdmissionCompleted] = cfg.Notifications.Admission
		enabled[EventAdmissionRejected] = cfg.Notifications.Admission
		enabled[EventAllocationCompleted] = cfg.Notifications.Admission
		enabled[EventError] = cfg.Notifications.Errors
	}
	return &HubService{hub: hub, enabled: enabled}
}

// Hub exposes the underlying observer registry so drivers can attach
// additional observers.
func (s *HubService) Hub() *Hub {
	return s.hub
}

// Publish formats the event into a message and broadcasts it. Events disabled
// by configuration are skipped silently.
func (s *HubService) Publish(ctx context.Context, event Event, payload Payload) error {
	if s == nil || s.hub == nil {
		return nil
	}
	if on, known := s.enabled[event]; known && !on {
		return nil
	}
	return s.hub.Broadcast(ctx, FormatMessage(event, payload))
}

// FormatMessage renders the user-facing text for an event. Wording is
// presentation, not a compatibility contract.
func FormatMessage(event Event, payload Payload) string {
	get := func(key string) string {
		if payload == nil {
			return ""
		}
		switch v := payload[key].(type) {
		case nil:
			return ""
		case string:
			return strings.TrimSpace(v)
		case error:
			return strings.TrimSpace(v.Error())
		default:
			return strings.TrimSpace(fmt.Sprint(v))
		}
	}

	switch event {
	case EventRegistrationCompleted:
		return fmt.Sprintf("📝 Registered: %s", get("student"))
	case EventAdmissionCompleted:
		return fmt.Sprintf("✅ Admitted: %s", get("student"))
	case EventAdmissionRejected:
		message := fmt.Sprintf("🚫 Admission rejected: %s", get("student"))
		if reason := get("reason"); reason != "" {
			message = fmt.Sprintf("%s\nReason: %s", message, reason)
		}
		return message
	case EventAllocationCompleted:
		return fmt.Sprintf("🛏️ Room allocated: %s", get("student"))
	case EventError:
		var builder strings.Builder
		builder.WriteString("❌ Error")
		if contextLabel := get("context"); contextLabel != "" {
			builder.WriteString(" with ")
			builder.WriteString(contextLabel)
		}
		builder.WriteString(": ")
		if detail := get("error"); detail != "" {
			builder.WriteString(detail)
		} else {
			builder.WriteString("unknown")
		}
		return builder.String()
	case EventTest:
		return "🧪 Notification system test"
	default:
		return string(event)
	}
}
