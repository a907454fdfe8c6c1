package input

import (
	"github.com/hostplay/input-bridge/internal/events"
)

// NoKeyCode marks a button with no associated physical key. All catalog
// layouts use non-zero key codes.
const NoKeyCode = 0

// Button is a single two-state logical input. Its key is the lookup identity
// inside a controller and is immutable after construction.
type Button struct {
	bus     *events.Bus
	key     string
	keyCode int
	pressed bool
}

// NewButton creates a button. Pass NoKeyCode for buttons without a physical
// key.
//
// A new button reads as pressed until its first keyup event arrives.
func NewButton(key string, keyCode int) *Button {
	b := &Button{
		bus:     events.NewBus(nil),
		key:     key,
		keyCode: keyCode,
		pressed: true,
	}

	// state tracking and game notification are the same dispatch
	b.bus.Subscribe(KeyDown, func(data ...any) {
		b.pressed = true
	})
	b.bus.Subscribe(KeyUp, func(data ...any) {
		b.pressed = false
	})

	return b
}

// Key returns the button's name
func (b *Button) Key() string {
	return b.key
}

// KeyCode returns the associated physical key code, or NoKeyCode
func (b *Button) KeyCode() int {
	return b.keyCode
}

// IsDown reports whether the button is currently pressed
func (b *Button) IsDown() bool {
	return b.pressed
}

// On subscribes a handler to the named button event and returns the
// subscription ID
func (b *Button) On(event string, fn events.HandlerFunc) string {
	return b.bus.Subscribe(event, fn)
}

// Trigger emits the named event on the button
func (b *Button) Trigger(event string, data ...any) {
	b.bus.Emit(event, data...)
}
