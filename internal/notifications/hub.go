package notifications

import (
	"context"
	"errors"
	"sync"
)

// Observer is a registered recipient of broadcast messages. The name is for
// the observer's own presentation; the hub never uses it for deduplication,
// so two observers may share a name and each receives the broadcast.
type Observer interface {
	Name() string
	Notify(ctx context.Context, message string) error
}

// Hub is an ordered registry of observers with synchronous delivery.
// Register, Unregister, and Broadcast are serialized under a single mutex so a
// hub can be shared across goroutines without extra coordination.
type Hub struct {
	mu        sync.Mutex
	observers []Observer
}

// NewHub returns an empty hub.
func NewHub() *Hub {
	return &Hub{}
}

// Register appends an observer to the delivery list. Duplicate registrations
// are allowed and receive duplicate deliveries.
func (h *Hub) Register(o Observer) {
	if o == nil {
		return
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	h.observers = append(h.observers, o)
}

// Unregister removes the first registration of o, matched by reference
// identity. Unregistering an observer not present is a no-op.
func (h *Hub) Unregister(o Observer) {
	if o == nil {
		return
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	for i, existing := range h.observers {
		if existing == o {
			h.observers = append(h.observers[:i], h.observers[i+1:]...)
			return
		}
	}
}

// Len reports the number of registered observers.
func (h *Hub) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.observers)
}

// Broadcast delivers message to every registered observer in registration
// order before returning. A failing delivery does not stop the remaining
// observers; all delivery errors are joined and returned. Broadcasting with
// zero observers is a no-op.
//
// Delivery runs against a snapshot taken under the lock, so an observer may
// register or unregister observers from inside Notify without deadlocking.
// Mutations during a broadcast take effect from the next broadcast.
func (h *Hub) Broadcast(ctx context.Context, message string) error {
	h.mu.Lock()
	observers := make([]Observer, len(h.observers))
	copy(observers, h.observers)
	h.mu.Unlock()

	var errs []error
	for _, o := range observers {
		if err := o.Notify(ctx, message); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
