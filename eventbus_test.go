package ecc

import (
	"testing"
)

// EventBus test components
type TestEvent struct {
	Value int
}

func TestEventBusSubscribeAndPublish(t *testing.T) {
	bus := &EventBus{}
	received := 0
	Subscribe(bus, func(e TestEvent) {
		received += e.Value
	})
	Subscribe(bus, func(e TestEvent) {
		received += e.Value * 2
	})
	Publish(bus, TestEvent{Value: 1})
	if received != 3 {
		t.Errorf("expected received 3, got %d", received)
	}
	Publish(bus, TestEvent{Value: 2})
	if received != 3+6 {
		t.Errorf("expected received 9, got %d", received)
	}
}

func TestEventBusMultipleTypes(t *testing.T) {
	bus := &EventBus{}
	received1 := 0
	received2 := 0
	Subscribe(bus, func(e TestEvent) {
		received1 += e.Value
	})
	Subscribe(bus, func(p Position) {
		received2 += int(p.X)
	})
	Publish(bus, TestEvent{Value: 42})
	Publish(bus, Position{X: 10})
	if received1 != 42 {
		t.Errorf("expected received1 42, got %d", received1)
	}
	if received2 != 10 {
		t.Errorf("expected received2 10, got %d", received2)
	}
}

func TestEventBusNoHandlers(t *testing.T) {
	bus := &EventBus{}
	if bus.active() {
		t.Error("empty bus reports active")
	}
	// No panic expected
	Publish(bus, TestEvent{Value: 42})
}

func TestEventBusUnsubscribedType(t *testing.T) {
	bus := &EventBus{}
	received := 0
	Subscribe(bus, func(e TestEvent) { received++ })
	Publish(bus, Position{X: 1})
	if received != 0 {
		t.Errorf("handler for TestEvent ran on Position, received %d", received)
	}
	if !bus.active() {
		t.Error("bus with a subscriber reports inactive")
	}
}

func TestEventBusSubscriptionOrder(t *testing.T) {
	bus := &EventBus{}
	var order []int
	for i := range 3 {
		Subscribe(bus, func(e TestEvent) { order = append(order, i) })
	}
	Publish(bus, TestEvent{})
	if len(order) != 3 {
		t.Fatalf("expected 3 handler calls, got %d", len(order))
	}
	for i, v := range order {
		if v != i {
			t.Fatalf("handlers ran in order %v", order)
		}
	}
}

func TestEventBusManySubscribers(t *testing.T) {
	bus := &EventBus{}
	const numSubs = 100
	received := 0
	for i := 0; i < numSubs; i++ {
		Subscribe(bus, func(e TestEvent) {
			received += e.Value
		})
	}
	Publish(bus, TestEvent{Value: 1})
	if received != numSubs {
		t.Errorf("expected %d, got %d", numSubs, received)
	}
}

func TestEventBusBucketComponentEvents(t *testing.T) {
	b := setupBucket(t, 4)
	pos, _ := RegisterComponent[Position](b)
	var added, removed []Entity
	Subscribe(b.Events(), func(ev ComponentAdded) {
		if ev.Type == pos.ComponentType {
			added = append(added, ev.Entity)
		}
	})
	Subscribe(b.Events(), func(ev ComponentRemoved) {
		removed = append(removed, ev.Entity)
	})

	e0 := mustCreate(t, b)
	e1 := mustCreate(t, b)
	_ = pos.Set(b, e1, Position{X: 1})
	_ = pos.Set(b, e1, Position{X: 2}) // update, not an add
	_ = pos.Set(b, e0, Position{})
	pos.Remove(b, e1)

	if len(added) != 2 || added[0] != e1 || added[1] != e0 {
		t.Errorf("ComponentAdded entities = %v, want [%d %d]", added, e1, e0)
	}
	if len(removed) != 1 || removed[0] != e1 {
		t.Errorf("ComponentRemoved entities = %v, want [%d]", removed, e1)
	}
}
