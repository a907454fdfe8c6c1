package input

import (
	"github.com/hostplay/input-bridge/internal/errors"
	"github.com/hostplay/input-bridge/internal/keyboard"
)

// Options configures a freshly constructed controller.
type Options struct {
	// EnableKeyboard bridges physical key input into the controller
	EnableKeyboard bool

	// Keyboard is the bridge used when EnableKeyboard is set
	Keyboard keyboard.Bridge

	// Buttons remaps catalog button names to game-chosen names. Entries are
	// applied in map iteration order; the order only matters when remap
	// chains overlap.
	Buttons map[string]Remap
}

// New builds a controller of the given type and applies the options.
func New(t Type, opts *Options) (*Controller, error) {
	layout, ok := catalog[t]
	if !ok {
		return nil, errors.UnsupportedControllerTypef("unsupported controller type %q", t)
	}

	var c *Controller
	if t == Touch {
		c = newTouchController()
	} else {
		c = NewController()
		for _, lb := range layout {
			c.AddButton(NewButton(lb.key, lb.code))
		}
	}

	if opts == nil {
		return c, nil
	}

	if opts.EnableKeyboard {
		if err := c.EnableKeyboard(opts.Keyboard); err != nil {
			return nil, err
		}
	}
	for oldName, to := range opts.Buttons {
		c.RemapButton(oldName, to)
	}

	return c, nil
}

// newTouchController builds the layout-less Touch variant: no buttons, the
// five touch phases relayed from their private host events with the payload
// passed through unchanged.
func newTouchController() *Controller {
	c := NewController()
	for _, phase := range touchPhases {
		public := phase
		c.bus.Subscribe("$"+public, func(data ...any) {
			c.bus.Emit(public, data...)
		})
	}
	return c
}
