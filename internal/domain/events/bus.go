package events

import (
	"sync"

	"github.com/ritikkamerkar15/residential-security-system/pkg/logger"
)

// Event names published by the directory service. dataUpdated always follows
// the more specific event for the same change.
const (
	DataUpdated           = "dataUpdated"
	VisitorRequestAdded   = "visitorRequestAdded"
	VisitorRequestUpdated = "visitorRequestUpdated"
	GuardStatusUpdated    = "guardStatusUpdated"
)

// Handler receives the event payload. The payload is the affected entity, or
// nil for dataUpdated.
type Handler func(payload interface{})

// Subscription identifies one registered handler so it can be removed again.
type Subscription struct {
	event string
	id    uint64
}

type subscriber struct {
	id      uint64
	handler Handler
}

// Bus is a volatile in-process publish/subscribe channel. Delivery is
// synchronous and in registration order; a panicking subscriber does not
// stop delivery to the remaining subscribers. Nothing survives a restart.
type Bus struct {
	mu          sync.RWMutex
	nextID      uint64
	subscribers map[string][]subscriber
}

// NewBus creates an empty event bus
func NewBus() *Bus {
	return &Bus{
		subscribers: make(map[string][]subscriber),
	}
}

// Subscribe registers a handler for an event name and returns its handle.
// Multiple handlers per event are allowed.
func (b *Bus) Subscribe(event string, handler Handler) *Subscription {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextID++
	b.subscribers[event] = append(b.subscribers[event], subscriber{
		id:      b.nextID,
		handler: handler,
	})
	return &Subscription{event: event, id: b.nextID}
}

// Unsubscribe removes exactly the handler identified by the subscription.
// Unknown handles are ignored.
func (b *Bus) Unsubscribe(sub *Subscription) {
	if sub == nil {
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	subs := b.subscribers[sub.event]
	for i, s := range subs {
		if s.id == sub.id {
			b.subscribers[sub.event] = append(subs[:i:i], subs[i+1:]...)
			return
		}
	}
}

// Publish delivers the payload to every handler currently registered for the
// event, in registration order, on the caller's goroutine.
func (b *Bus) Publish(event string, payload interface{}) {
	b.mu.RLock()
	subs := make([]subscriber, len(b.subscribers[event]))
	copy(subs, b.subscribers[event])
	b.mu.RUnlock()

	for _, s := range subs {
		deliver(event, s, payload)
	}
}

// deliver isolates subscriber faults so one bad handler cannot break the rest
func deliver(event string, s subscriber, payload interface{}) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("event subscriber panicked on %s: %v", event, r)
		}
	}()
	s.handler(payload)
}
