package events

import (
	"sync"

	"github.com/hostplay/input-bridge/internal/uuid"
)

// HandlerFunc processes an event payload. The payload is passed through from
// Emit unchanged.
type HandlerFunc func(data ...any)

type subscription struct {
	id string
	fn HandlerFunc
}

// Bus manages event distribution. Handlers for the same event name run in
// subscription order; handlers across different names have no defined
// relative order.
//
// Dispatch is synchronous and re-entrant: a handler may itself Emit, and the
// inner dispatch fully resolves before the outer one continues. The handler
// list is snapshotted when Emit starts, so a handler subscribed during a
// dispatch does not receive the event already in flight.
type Bus struct {
	mu       sync.RWMutex
	ids      uuid.Generator
	handlers map[string][]subscription
}

// NewBus creates a new event bus. A nil generator falls back to random UUIDs.
func NewBus(ids uuid.Generator) *Bus {
	if ids == nil {
		ids = uuid.NewGoogleUUIDGenerator()
	}
	return &Bus{
		ids:      ids,
		handlers: make(map[string][]subscription),
	}
}

// Subscribe adds a handler for the named event and returns its subscription
// ID.
func (b *Bus) Subscribe(event string, fn HandlerFunc) string {
	b.mu.Lock()
	defer b.mu.Unlock()

	id := b.ids.New()
	b.handlers[event] = append(b.handlers[event], subscription{id: id, fn: fn})
	return id
}

// Unsubscribe removes the subscription with the given ID from the named
// event. Unknown IDs are ignored.
func (b *Bus) Unsubscribe(event, id string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	subs := b.handlers[event]
	for i, s := range subs {
		if s.id != id {
			continue
		}
		b.handlers[event] = append(subs[:i:i], subs[i+1:]...)
		return
	}
}

// Emit invokes every handler currently registered for the named event, in
// subscription order, passing the payload through unchanged. Emitting an
// event nobody subscribed to is a no-op.
func (b *Bus) Emit(event string, data ...any) {
	b.mu.RLock()
	subs := make([]subscription, len(b.handlers[event]))
	copy(subs, b.handlers[event])
	b.mu.RUnlock()

	for _, s := range subs {
		s.fn(data...)
	}
}

// Clear removes all subscriptions
func (b *Bus) Clear() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers = make(map[string][]subscription)
}
