package notifications_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"warden/internal/notifications"
)

type recordingObserver struct {
	name     string
	received []string
	err      error
}

func (r *recordingObserver) Name() string { return r.name }

func (r *recordingObserver) Notify(_ context.Context, message string) error {
	r.received = append(r.received, message)
	return r.err
}

func TestBroadcastDeliversInRegistrationOrder(t *testing.T) {
	hub := notifications.NewHub()
	first := &recordingObserver{name: "first"}
	second := &recordingObserver{name: "second"}
	third := &recordingObserver{name: "third"}
	hub.Register(first)
	hub.Register(second)
	hub.Register(third)

	if err := hub.Broadcast(context.Background(), "room ready"); err != nil {
		t.Fatalf("Broadcast returned error: %v", err)
	}

	for _, o := range []*recordingObserver{first, second, third} {
		if len(o.received) != 1 || o.received[0] != "room ready" {
			t.Fatalf("observer %s received %v", o.name, o.received)
		}
	}
}

func TestUnregisterRemovesObserver(t *testing.T) {
	hub := notifications.NewHub()
	a := &recordingObserver{name: "a"}
	b := &recordingObserver{name: "b"}
	hub.Register(a)
	hub.Register(b)

	hub.Unregister(a)
	if err := hub.Broadcast(context.Background(), "hello"); err != nil {
		t.Fatalf("Broadcast returned error: %v", err)
	}

	if len(a.received) != 0 {
		t.Fatalf("unregistered observer received %v", a.received)
	}
	if len(b.received) != 1 {
		t.Fatalf("remaining observer received %v", b.received)
	}
}

func TestUnregisterAbsentObserverIsNoop(t *testing.T) {
	hub := notifications.NewHub()
	hub.Register(&recordingObserver{name: "present"})

	hub.Unregister(&recordingObserver{name: "absent"})
	if hub.Len() != 1 {
		t.Fatalf("unexpected observer count: %d", hub.Len())
	}
}

func TestDuplicateRegistrationReceivesDuplicateDelivery(t *testing.T) {
	hub := notifications.NewHub()
	o := &recordingObserver{name: "dup"}
	hub.Register(o)
	hub.Register(o)

	if err := hub.Broadcast(context.Background(), "twice"); err != nil {
		t.Fatalf("Broadcast returned error: %v", err)
	}
	if len(o.received) != 2 {
		t.Fatalf("expected two deliveries, got %d", len(o.received))
	}

	// Unregister removes a single registration at a time.
	hub.Unregister(o)
	if hub.Len() != 1 {
		t.Fatalf("unexpected observer count after unregister: %d", hub.Len())
	}
}

func TestBroadcastZeroObserversIsNoop(t *testing.T) {
	hub := notifications.NewHub()
	if err := hub.Broadcast(context.Background(), "nobody listening"); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
}

func TestBroadcastContinuesPastFailingObserver(t *testing.T) {
	hub := notifications.NewHub()
	failing := &recordingObserver{name: "failing", err: errors.New("delivery refused")}
	after := &recordingObserver{name: "after"}
	hub.Register(failing)
	hub.Register(after)

	err := hub.Broadcast(context.Background(), "keep going")
	if err == nil {
		t.Fatal("expected joined delivery error")
	}
	if len(after.received) != 1 {
		t.Fatalf("expected delivery to continue past failure, got %v", after.received)
	}
}

type selfRemovingObserver struct {
	hub      *notifications.Hub
	received int
}

func (s *selfRemovingObserver) Name() string { return "self-removing" }

func (s *selfRemovingObserver) Notify(_ context.Context, _ string) error {
	s.received++
	s.hub.Unregister(s)
	return nil
}

func TestObserverMayMutateHubDuringDelivery(t *testing.T) {
	hub := notifications.NewHub()
	oneShot := &selfRemovingObserver{hub: hub}
	after := &recordingObserver{name: "after"}
	hub.Register(oneShot)
	hub.Register(after)

	// Must not deadlock, and the in-flight broadcast still reaches everyone.
	if err := hub.Broadcast(context.Background(), "first"); err != nil {
		t.Fatalf("Broadcast returned error: %v", err)
	}
	if oneShot.received != 1 || len(after.received) != 1 {
		t.Fatalf("unexpected deliveries: oneShot=%d after=%v", oneShot.received, after.received)
	}

	if err := hub.Broadcast(context.Background(), "second"); err != nil {
		t.Fatalf("Broadcast returned error: %v", err)
	}
	if oneShot.received != 1 {
		t.Fatalf("self-removed observer delivered again: %d", oneShot.received)
	}
	if len(after.received) != 2 {
		t.Fatalf("remaining observer missed a broadcast: %v", after.received)
	}
}

func TestConsoleObserverIncludesOwnName(t *testing.T) {
	var buf bytes.Buffer
	o := notifications.NewConsoleObserver("warden-desk", &buf)

	if err := o.Notify(context.Background(), "John Doe admitted"); err != nil {
		t.Fatalf("Notify returned error: %v", err)
	}
	if got := buf.String(); got != "[warden-desk] John Doe admitted\n" {
		t.Fatalf("unexpected output: %q", got)
	}
}
