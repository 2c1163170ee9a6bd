package mabara

// Option does work on a Set while it is being created.
type Option interface {
	apply(s *Set)
}

type eventsOption struct {
	bus *EventBus
}

func (op eventsOption) apply(s *Set) {
	s.events = op.bus
}

// WithEvents attaches an event bus to the Set. The Set publishes a
// ComponentAdded event after every successful Add or AddOrReplace and a
// ComponentRemoved event after every successful Remove. Failed operations
// publish nothing.
func WithEvents(bus *EventBus) Option {
	return eventsOption{bus}
}
