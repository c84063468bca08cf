package ecc

import "reflect"

// MaxEventTypes defines the maximum number of unique event types that can be
// registered in the EventBus.
const MaxEventTypes = 256

// EntityCreated is published by a bucket after CreateEntity succeeds.
type EntityCreated struct {
	Entity Entity
}

// EntityDeleted is published by a bucket after DeleteEntity removes a live
// entity.
type EntityDeleted struct {
	Entity Entity
}

// ComponentAdded is published after a component is attached to an entity.
type ComponentAdded struct {
	Type   *ComponentType
	Entity Entity
}

// ComponentRemoved is published after a component is detached from an
// entity. Removing a component the entity did not have publishes nothing.
type ComponentRemoved struct {
	Type   *ComponentType
	Entity Entity
}

// EventBus is a synchronous, type-keyed publish/subscribe hub. Handlers
// run on the publisher's goroutine, in subscription order. Every bucket
// owns one and publishes its lifecycle events on it; client code may
// publish its own event types too.
type EventBus struct {
	eventTypeMap    map[reflect.Type]uint8
	handlers        [MaxEventTypes][]any
	subscribers     int
	nextEventTypeID int
}

// Subscribe registers a handler function to be called when an event of type
// T is published.
//
// It panics if more than MaxEventTypes distinct event types are subscribed
// to; that is a programming error, not a runtime condition.
//
// Parameters:
//   - bus: The EventBus instance to subscribe to.
//   - handler: A function that takes a single argument of type T.
func Subscribe[T any](bus *EventBus, handler func(T)) {
	id := bus.getEventTypeID(reflect.TypeFor[T]())
	bus.handlers[id] = append(bus.handlers[id], handler)
	bus.subscribers++
}

// Publish broadcasts event to all handlers subscribed to T. It does not
// allocate.
func Publish[T any](bus *EventBus, event T) {
	if bus.subscribers == 0 {
		return
	}
	id, ok := bus.eventTypeMap[reflect.TypeFor[T]()]
	if !ok {
		return
	}
	for _, h := range bus.handlers[id] {
		h.(func(T))(event)
	}
}

// active reports whether any handler is subscribed, letting hot paths skip
// building events nobody listens to.
func (bus *EventBus) active() bool {
	return bus.subscribers > 0
}

func (bus *EventBus) getEventTypeID(t reflect.Type) uint8 {
	if bus.eventTypeMap == nil {
		bus.eventTypeMap = make(map[reflect.Type]uint8)
	}
	if id, ok := bus.eventTypeMap[t]; ok {
		return id
	}
	if bus.nextEventTypeID >= MaxEventTypes {
		panic("ecc: too many event types")
	}
	id := uint8(bus.nextEventTypeID)
	bus.nextEventTypeID++
	bus.eventTypeMap[t] = id
	return id
}
