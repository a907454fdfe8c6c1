package keyboard

import "sync"

// Manual implements Bridge for testing with scripted key events.
type Manual struct {
	mu         sync.Mutex
	press      []func(Event)
	release    []func(Event)
	suppressed []int
}

// NewManual creates a new manual keyboard bridge
func NewManual() *Manual {
	return &Manual{}
}

// OnKeyPress subscribes to key-down notifications
func (m *Manual) OnKeyPress(fn func(Event)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.press = append(m.press, fn)
}

// OnKeyRelease subscribes to key-up notifications
func (m *Manual) OnKeyRelease(fn func(Event)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.release = append(m.release, fn)
}

// Press simulates a physical key press with the given code
func (m *Manual) Press(code int) {
	for _, fn := range m.snapshot(&m.press) {
		fn(m.event(code))
	}
}

// Release simulates a physical key release with the given code
func (m *Manual) Release(code int) {
	for _, fn := range m.snapshot(&m.release) {
		fn(m.event(code))
	}
}

// Suppressed returns the codes whose default handling was suppressed, in
// order of suppression
func (m *Manual) Suppressed() []int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]int(nil), m.suppressed...)
}

// Reset clears handlers and recorded suppressions
func (m *Manual) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.press = nil
	m.release = nil
	m.suppressed = nil
}

func (m *Manual) event(code int) Event {
	return NewEvent(code, func() {
		m.mu.Lock()
		defer m.mu.Unlock()
		m.suppressed = append(m.suppressed, code)
	})
}

func (m *Manual) snapshot(handlers *[]func(Event)) []func(Event) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append(([]func(Event))(nil), *handlers...)
}
