package events

import (
	"errors"
	"fmt"
	"sync"

	"github.com/hashicorp/go-multierror"
)

// ErrListenerGone is returned from Notify by a listener whose owner has
// released it. The bus holds only non-owning references; this sentinel is
// the explicit stand-in for a collected weak reference — the bus prunes the
// entry silently and does not report it as a delivery failure.
var ErrListenerGone = errors.New("events: listener released by its owner")

// Listener receives posted events. Notify is called synchronously during
// Post; a slow listener blocks the whole frame. Returning a non-nil error
// (other than ErrListenerGone) marks the delivery failed for this listener
// without aborting delivery to the rest.
type Listener interface {
	Notify(Event) error
}

// Bus delivers each posted event synchronously to all registered listeners
// in registration order.
//
// Delivery uses snapshot semantics: the listener set is captured when Post
// is entered. A listener registered during delivery is not notified within
// that Post; a listener unregistered during delivery is skipped for the
// remainder of that Post. The order of the snapshot is the registration
// order, which is stable across Posts.
//
// The registration set is guarded by a mutex so producers on other
// goroutines stay safe; delivery itself runs outside the critical section,
// which is what lets listeners re-enter Register/Unregister from Notify.
type Bus struct {
	mu        sync.Mutex
	listeners []Listener
	members   map[Listener]struct{}
}

// NewBus creates an empty event bus
func NewBus() *Bus {
	return &Bus{
		members: make(map[Listener]struct{}),
	}
}

// Register adds a listener to the registration set. Registering an already
// present listener is a no-op: one registration, one delivery per Post.
func (b *Bus) Register(l Listener) {
	if l == nil {
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	if _, ok := b.members[l]; ok {
		return
	}
	b.members[l] = struct{}{}
	b.listeners = append(b.listeners, l)
}

// Unregister removes a listener; no-op if it was never registered
func (b *Bus) Unregister(l Listener) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.remove(l)
}

// remove drops l from both the order slice and the membership map.
// Caller holds b.mu.
func (b *Bus) remove(l Listener) {
	if _, ok := b.members[l]; !ok {
		return
	}
	delete(b.members, l)
	for i, reg := range b.listeners {
		if reg == l {
			b.listeners = append(b.listeners[:i], b.listeners[i+1:]...)
			break
		}
	}
}

// Post delivers event to every listener registered at call time, in
// registration order, and returns after all of them have been attempted.
//
// A listener returning ErrListenerGone is pruned silently. Any other Notify
// error is collected; the aggregate is returned to the caller once delivery
// has been attempted for the whole snapshot, so one failing listener never
// starves the rest.
func (b *Bus) Post(event Event) error {
	b.mu.Lock()
	snapshot := make([]Listener, len(b.listeners))
	copy(snapshot, b.listeners)
	b.mu.Unlock()

	var result *multierror.Error
	for _, l := range snapshot {
		b.mu.Lock()
		_, registered := b.members[l]
		b.mu.Unlock()
		if !registered {
			continue
		}

		if err := l.Notify(event); err != nil {
			if errors.Is(err, ErrListenerGone) {
				b.Unregister(l)
				continue
			}
			result = multierror.Append(result,
				fmt.Errorf("deliver %s: %w", event.Type(), err))
		}
	}
	return result.ErrorOrNil()
}

// Len returns the current number of registered listeners
func (b *Bus) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.listeners)
}
