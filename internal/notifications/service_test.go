package notifications_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"warden/internal/config"
	"warden/internal/notifications"
)

func TestNewServicePublishesNothingWhenTopicMissing(t *testing.T) {
	cfg := config.Default()
	cfg.Notifications.NtfyTopic = ""
	svc := notifications.NewService(&cfg)
	if svc.Hub().Len() != 0 {
		t.Fatalf("expected empty hub, got %d observers", svc.Hub().Len())
	}
	if err := svc.Publish(context.Background(), notifications.EventTest, nil); err != nil {
		t.Fatalf("expected no-op publish to return nil, got %v", err)
	}
}

func TestFormatMessagePerEvent(t *testing.T) {
	tests := []struct {
		name    string
		event   notifications.Event
		payload notifications.Payload
		expect  string
	}{
		{
			name:    "registration completed",
			event:   notifications.EventRegistrationCompleted,
			payload: notifications.Payload{"student": "John Doe"},
			expect:  "📝 Registered: John Doe",
		},
		{
			name:    "admission completed",
			event:   notifications.EventAdmissionCompleted,
			payload: notifications.Payload{"student": "John Doe"},
			expect:  "✅ Admitted: John Doe",
		},
		{
			name:  "admission rejected",
			event: notifications.EventAdmissionRejected,
			payload: notifications.Payload{
				"student": "Jane",
				"reason":  "lives too close to the hostel",
			},
			expect: "🚫 Admission rejected: Jane\nReason: lives too close to the hostel",
		},
		{
			name:    "allocation completed",
			event:   notifications.EventAllocationCompleted,
			payload: notifications.Payload{"student": "John Doe"},
			expect:  "🛏️ Room allocated: John Doe",
		},
		{
			name:  "error",
			event: notifications.EventError,
			payload: notifications.Payload{
				"context": "proximity (Jane)",
				"error":   errors.New("too close"),
			},
			expect: "❌ Error with proximity (Jane): too close",
		},
		{
			name:   "test",
			event:  notifications.EventTest,
			expect: "🧪 Notification system test",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := notifications.FormatMessage(tc.event, tc.payload); got != tc.expect {
				t.Fatalf("unexpected message: got %q want %q", got, tc.expect)
			}
		})
	}
}

func TestPublishSkipsDisabledEvents(t *testing.T) {
	cfg := config.Default()
	cfg.Notifications.Registration = false

	hub := notifications.NewHub()
	o := &recordingObserver{name: "desk"}
	hub.Register(o)
	svc := notifications.NewServiceWithHub(&cfg, hub)

	err := svc.Publish(context.Background(), notifications.EventRegistrationCompleted, notifications.Payload{"student": "Jane"})
	if err != nil {
		t.Fatalf("Publish returned error: %v", err)
	}
	if len(o.received) != 0 {
		t.Fatalf("expected disabled event to be skipped, got %v", o.received)
	}

	if err := svc.Publish(context.Background(), notifications.EventTest, nil); err != nil {
		t.Fatalf("Publish returned error: %v", err)
	}
	if len(o.received) != 1 {
		t.Fatalf("expected test event delivery, got %v", o.received)
	}
}

func TestNtfyObserverPostsMessage(t *testing.T) {
	var captured struct {
		title string
		tags  string
		body  string
	}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured.title = r.Header.Get("Title")
		captured.tags = r.Header.Get("Tags")
		body, _ := io.ReadAll(r.Body)
		captured.body = string(body)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	cfg := config.Default()
	cfg.Notifications.NtfyTopic = server.URL
	svc := notifications.NewService(&cfg)
	if svc.Hub().Len() != 1 {
		t.Fatalf("expected ntfy observer to be registered, got %d", svc.Hub().Len())
	}

	err := svc.Publish(context.Background(), notifications.EventAllocationCompleted, notifications.Payload{"student": "John Doe"})
	if err != nil {
		t.Fatalf("Publish returned error: %v", err)
	}

	if captured.title != "Warden" {
		t.Fatalf("unexpected title: %q", captured.title)
	}
	if captured.tags != "warden,hostel" {
		t.Fatalf("unexpected tags: %q", captured.tags)
	}
	if captured.body != "🛏️ Room allocated: John Doe" {
		t.Fatalf("unexpected body: %q", captured.body)
	}
}

func TestNtfyObserverSurfacesHTTPErrors(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "topic quota exceeded", http.StatusTooManyRequests)
	}))
	defer server.Close()

	o := notifications.NewNtfyObserver(server.URL, 0)
	if err := o.Notify(context.Background(), "hello"); err == nil {
		t.Fatal("expected error for non-2xx response")
	}
}
