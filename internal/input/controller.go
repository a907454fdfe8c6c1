package input

import (
	"github.com/hostplay/input-bridge/internal/errors"
	"github.com/hostplay/input-bridge/internal/events"
	"github.com/hostplay/input-bridge/internal/keyboard"
)

// Controller owns a named collection of buttons and relays host-originated
// private events to the public button events games subscribe to.
//
// Controllers are meant to be configured (AddButton, RemapButton,
// EnableKeyboard) during setup, before steady-state event dispatch begins.
type Controller struct {
	bus     *events.Bus
	buttons map[string]*Button
	aliases map[string]string
}

// Remap renames a button as seen by the game. The host bridge keeps
// referencing the button by its original name; the controller translates.
type Remap struct {
	Name string
}

// NewController creates an empty controller with the host relay and button
// forwarding handlers installed.
func NewController() *Controller {
	c := &Controller{
		bus:     events.NewBus(nil),
		buttons: make(map[string]*Button),
		aliases: make(map[string]string),
	}

	c.bus.Subscribe(HostKeyDown, c.relayHostKey(KeyDown))
	c.bus.Subscribe(HostKeyUp, c.relayHostKey(KeyUp))

	c.bus.Subscribe(KeyDown, c.forwardToButton(KeyDown))
	c.bus.Subscribe(KeyUp, c.forwardToButton(KeyUp))

	return c
}

// relayHostKey rewrites the button name of a host-originated event through
// the alias table and re-emits it as the corresponding public event.
func (c *Controller) relayHostKey(public string) events.HandlerFunc {
	return func(data ...any) {
		ev, ok := buttonEventFrom(data)
		if !ok {
			c.bus.Emit(public, data...)
			return
		}
		if target, ok := c.aliases[ev.Button]; ok {
			ev.Button = target
		}
		c.bus.Emit(public, ev)
	}
}

// forwardToButton routes a public keydown/keyup event to the named button.
// Events with no payload, a malformed payload, or an unknown button name are
// silently dropped: host bridge traffic is trusted but may reference buttons
// not present in the current remap state.
func (c *Controller) forwardToButton(event string) events.HandlerFunc {
	return func(data ...any) {
		ev, ok := buttonEventFrom(data)
		if !ok {
			return
		}
		b, ok := c.buttons[ev.Button]
		if !ok {
			return
		}
		b.Trigger(event)
	}
}

// buttonEventFrom extracts a ButtonEvent from an event payload. The returned
// value is a copy; rewriting it never mutates the caller's payload.
func buttonEventFrom(data []any) (ButtonEvent, bool) {
	if len(data) == 0 {
		return ButtonEvent{}, false
	}
	switch ev := data[0].(type) {
	case ButtonEvent:
		return ev, true
	case *ButtonEvent:
		if ev == nil {
			return ButtonEvent{}, false
		}
		return *ev, true
	}
	return ButtonEvent{}, false
}

// Button returns the button stored under the given name, or nil
func (c *Controller) Button(name string) *Button {
	return c.buttons[name]
}

// Buttons returns a copy of the current name to button mapping
func (c *Controller) Buttons() map[string]*Button {
	buttons := make(map[string]*Button, len(c.buttons))
	for name, b := range c.buttons {
		buttons[name] = b
	}
	return buttons
}

// AddButton stores the button under its key. A later add silently replaces
// an earlier button with the same key.
func (c *Controller) AddButton(b *Button) {
	c.buttons[b.Key()] = b
}

// EnableKeyboard bridges physical key presses into this controller. Each
// physical event whose code matches a button flows through the same public
// keydown/keyup path as host-originated presses, so remapping applies
// uniformly. Unknown codes are ignored.
func (c *Controller) EnableKeyboard(bridge keyboard.Bridge) error {
	if bridge == nil {
		return errors.InvalidArgument("keyboard bridge is required to enable keyboard input")
	}

	byCode := make(map[int]*Button)
	for _, b := range c.buttons {
		if b.KeyCode() != NoKeyCode {
			byCode[b.KeyCode()] = b
		}
	}

	bridge.OnKeyPress(func(ev keyboard.Event) {
		c.relayKey(byCode, ev, KeyDown)
	})
	bridge.OnKeyRelease(func(ev keyboard.Event) {
		c.relayKey(byCode, ev, KeyUp)
	})

	return nil
}

func (c *Controller) relayKey(byCode map[int]*Button, ev keyboard.Event, event string) {
	b, ok := byCode[ev.Code]
	if !ok {
		return
	}
	ev.SuppressDefault()

	// a button's key never changes, so a button remapped after keyboard
	// setup is still known here by its original name. Resolve the alias the
	// same way the host relay does.
	key := b.Key()
	if target, ok := c.aliases[key]; ok {
		key = target
	}
	c.bus.Emit(event, ButtonEvent{Button: key})
}

// RemapButton renames a button. Host-originated events referencing oldName
// are redirected to the button now stored under its new name. Silent no-op
// when oldName is absent.
func (c *Controller) RemapButton(oldName string, to Remap) {
	b, ok := c.buttons[oldName]
	if !ok {
		return
	}
	c.aliases[oldName] = to.Name
	c.buttons[to.Name] = b
	delete(c.buttons, oldName)
}

// On subscribes a handler to the named controller event and returns the
// subscription ID
func (c *Controller) On(event string, fn events.HandlerFunc) string {
	return c.bus.Subscribe(event, fn)
}

// Trigger emits the named event on the controller. This is the entry point
// the host bridge uses for private $keydown/$keyup and touch events.
func (c *Controller) Trigger(event string, data ...any) {
	c.bus.Emit(event, data...)
}
