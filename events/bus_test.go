package events

import (
	"errors"
	"testing"

	"github.com/hashicorp/go-multierror"
)

// recorder is a listener that records every event it receives
type recorder struct {
	got []Event
	err error // returned from Notify when set
}

func (r *recorder) Notify(e Event) error {
	r.got = append(r.got, e)
	return r.err
}

// TestPostDeliversToAllListeners verifies fan-out to the full registration set
func TestPostDeliversToAllListeners(t *testing.T) {
	bus := NewBus()
	a, b, c := &recorder{}, &recorder{}, &recorder{}
	bus.Register(a)
	bus.Register(b)
	bus.Register(c)

	if err := bus.Post(Tick{DT: 16}); err != nil {
		t.Fatalf("Post returned error: %v", err)
	}

	for i, r := range []*recorder{a, b, c} {
		if len(r.got) != 1 {
			t.Errorf("Listener %d: expected 1 delivery, got %d", i, len(r.got))
			continue
		}
		if tick, ok := r.got[0].(Tick); !ok || tick.DT != 16 {
			t.Errorf("Listener %d: expected Tick{16}, got %#v", i, r.got[0])
		}
	}
}

// TestRegisterIdempotent verifies double registration yields exactly one
// delivery per Post
func TestRegisterIdempotent(t *testing.T) {
	bus := NewBus()
	r := &recorder{}
	bus.Register(r)
	bus.Register(r)

	if err := bus.Post(Quit{}); err != nil {
		t.Fatalf("Post returned error: %v", err)
	}
	if len(r.got) != 1 {
		t.Errorf("Expected 1 delivery, got %d", len(r.got))
	}
	if bus.Len() != 1 {
		t.Errorf("Expected 1 registered listener, got %d", bus.Len())
	}
}

// TestUnregisterNeverRegistered verifies unregistering an unknown listener
// is a silent no-op
func TestUnregisterNeverRegistered(t *testing.T) {
	bus := NewBus()
	bus.Register(&recorder{})
	bus.Unregister(&recorder{})

	if bus.Len() != 1 {
		t.Errorf("Expected 1 registered listener, got %d", bus.Len())
	}
}

// TestDeliveryOrderIsRegistrationOrder verifies stable fan-out order
func TestDeliveryOrderIsRegistrationOrder(t *testing.T) {
	bus := NewBus()
	var order []int
	for i := 0; i < 5; i++ {
		bus.Register(&orderedListener{id: i, order: &order})
	}

	if err := bus.Post(Quit{}); err != nil {
		t.Fatalf("Post returned error: %v", err)
	}

	for i, id := range order {
		if id != i {
			t.Fatalf("Expected delivery order 0..4, got %v", order)
		}
	}
	if len(order) != 5 {
		t.Fatalf("Expected 5 deliveries, got %d", len(order))
	}
}

type orderedListener struct {
	id    int
	order *[]int
}

func (o *orderedListener) Notify(Event) error {
	*o.order = append(*o.order, o.id)
	return nil
}

// mutator runs a hook against the bus when notified
type mutator struct {
	hook func()
}

func (m *mutator) Notify(Event) error {
	if m.hook != nil {
		m.hook()
	}
	return nil
}

// TestRegisterDuringDelivery verifies a listener registered inside Notify is
// not delivered to within the same Post (snapshot semantics), but is on the
// next one
func TestRegisterDuringDelivery(t *testing.T) {
	bus := NewBus()
	late := &recorder{}
	first := &mutator{hook: func() { bus.Register(late) }}
	bus.Register(first)

	if err := bus.Post(Quit{}); err != nil {
		t.Fatalf("Post returned error: %v", err)
	}
	if len(late.got) != 0 {
		t.Errorf("Expected no delivery to late registrant, got %d", len(late.got))
	}

	if err := bus.Post(Quit{}); err != nil {
		t.Fatalf("Post returned error: %v", err)
	}
	if len(late.got) != 1 {
		t.Errorf("Expected 1 delivery on next Post, got %d", len(late.got))
	}
}

// TestUnregisterDuringDelivery verifies a listener unregistered inside
// Notify is skipped for the remainder of the same Post
func TestUnregisterDuringDelivery(t *testing.T) {
	bus := NewBus()
	victim := &recorder{}
	first := &mutator{hook: func() { bus.Unregister(victim) }}
	bus.Register(first)
	bus.Register(victim)

	if err := bus.Post(Quit{}); err != nil {
		t.Fatalf("Post returned error: %v", err)
	}
	if len(victim.got) != 0 {
		t.Errorf("Expected no delivery to unregistered victim, got %d", len(victim.got))
	}
	if bus.Len() != 1 {
		t.Errorf("Expected 1 remaining listener, got %d", bus.Len())
	}
}

// TestSelfUnregisterDuringDelivery verifies a listener can unregister itself
// from its own Notify without disturbing delivery to the others
func TestSelfUnregisterDuringDelivery(t *testing.T) {
	bus := NewBus()
	var self *mutator
	self = &mutator{}
	self.hook = func() { bus.Unregister(self) }
	after := &recorder{}
	bus.Register(self)
	bus.Register(after)

	if err := bus.Post(Quit{}); err != nil {
		t.Fatalf("Post returned error: %v", err)
	}
	if len(after.got) != 1 {
		t.Errorf("Expected 1 delivery to remaining listener, got %d", len(after.got))
	}
	if bus.Len() != 1 {
		t.Errorf("Expected 1 registered listener, got %d", bus.Len())
	}
}

// TestListenerFailureDoesNotAbortDelivery verifies per-listener error
// isolation: failures are collected, the rest of the snapshot still runs
func TestListenerFailureDoesNotAbortDelivery(t *testing.T) {
	bus := NewBus()
	failing := &recorder{err: errors.New("boom")}
	healthy := &recorder{}
	bus.Register(failing)
	bus.Register(healthy)

	err := bus.Post(Quit{})
	if err == nil {
		t.Fatal("Expected aggregated error, got nil")
	}
	if len(healthy.got) != 1 {
		t.Errorf("Expected delivery to healthy listener, got %d", len(healthy.got))
	}

	var merr *multierror.Error
	if !errors.As(err, &merr) {
		t.Fatalf("Expected *multierror.Error, got %T", err)
	}
	if len(merr.Errors) != 1 {
		t.Errorf("Expected 1 collected failure, got %d", len(merr.Errors))
	}
	// Failure does not evict the listener
	if bus.Len() != 2 {
		t.Errorf("Expected 2 registered listeners, got %d", bus.Len())
	}
}

// TestListenerGonePrunedSilently verifies the weak-membership contract:
// ErrListenerGone drops the entry without surfacing an error
func TestListenerGonePrunedSilently(t *testing.T) {
	bus := NewBus()
	gone := &recorder{err: ErrListenerGone}
	alive := &recorder{}
	bus.Register(gone)
	bus.Register(alive)

	if err := bus.Post(Quit{}); err != nil {
		t.Fatalf("Expected silent prune, got error: %v", err)
	}
	if bus.Len() != 1 {
		t.Errorf("Expected released listener pruned, have %d registered", bus.Len())
	}
	if len(alive.got) != 1 {
		t.Errorf("Expected delivery to live listener, got %d", len(alive.got))
	}

	// The dead listener is not attempted again
	if err := bus.Post(Quit{}); err != nil {
		t.Fatalf("Post returned error: %v", err)
	}
	if len(gone.got) != 1 {
		t.Errorf("Expected pruned listener untouched by second Post, got %d deliveries", len(gone.got))
	}
}
