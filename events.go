package mabara

import "reflect"

// ComponentAdded is published after a successful Add or AddOrReplace on a
// Set constructed with WithEvents.
type ComponentAdded struct {
	Index uint16
}

// ComponentRemoved is published after a successful Remove on a Set
// constructed with WithEvents.
type ComponentRemoved struct {
	Index uint16
}

// EventBus delivers typed events to subscribed handlers. Handlers run
// synchronously on the publishing goroutine, in subscription order. Like
// Set, an EventBus is not safe for concurrent use.
type EventBus struct {
	handlers map[reflect.Type][]any
}

// NewEventBus creates an empty bus.
func NewEventBus() *EventBus {
	return &EventBus{handlers: make(map[reflect.Type][]any)}
}

// Subscribe registers a handler for events of type T.
func Subscribe[T any](bus *EventBus, handler func(T)) {
	if bus.handlers == nil {
		bus.handlers = make(map[reflect.Type][]any)
	}
	t := reflect.TypeOf((*T)(nil)).Elem()
	if bus.handlers[t] == nil {
		bus.handlers[t] = make([]any, 0, 4)
	}
	bus.handlers[t] = append(bus.handlers[t], handler)
}

// Publish delivers the event to every handler registered for type T.
func Publish[T any](bus *EventBus, event T) {
	for _, h := range bus.handlers[reflect.TypeOf((*T)(nil)).Elem()] {
		h.(func(T))(event)
	}
}
