// Package keyboard adapts physical key press/release input so a controller
// can treat it like any other event source.
package keyboard

//go:generate mockgen -destination=mock/mock_bridge.go -package=mockkeyboard -source=keyboard.go

import (
	"context"
	"runtime"

	"github.com/hostplay/input-bridge/internal/errors"
)

// Event is a single physical key notification.
type Event struct {
	// Code is the key code in the same numbering the controller layouts use
	Code int

	suppress func()
}

// NewEvent creates an event carrying a default-suppression handle. A nil
// handle is allowed; SuppressDefault is then a no-op.
func NewEvent(code int, suppress func()) Event {
	return Event{Code: code, suppress: suppress}
}

// SuppressDefault stops the host from applying its own handling of the key
// (scrolling on arrow keys, and so on).
func (e Event) SuppressDefault() {
	if e.suppress != nil {
		e.suppress()
	}
}

// Bridge delivers physical key press/release notifications to subscribers.
// Handlers are invoked synchronously in subscription order.
type Bridge interface {
	// OnKeyPress subscribes to key-down notifications
	OnKeyPress(fn func(Event))

	// OnKeyRelease subscribes to key-up notifications
	OnKeyRelease(fn func(Event))
}

// Device is a Bridge backed by a physical input device. Run blocks reading
// the device until the context is cancelled or the device goes away.
type Device interface {
	Bridge

	Run(ctx context.Context) error
}

// DeviceConfig configures a physical keyboard device.
type DeviceConfig struct {
	// Path is the device node to read, e.g. /dev/input/event0
	Path string

	// Grab claims the device exclusively at open time instead of waiting
	// for the first SuppressDefault call
	Grab bool
}

// NewDevice opens the platform keyboard device.
func NewDevice(cfg *DeviceConfig) (Device, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("device config is required")
	}

	switch runtime.GOOS {
	case "linux":
		d, err := newEvdevDevice(cfg)
		if err != nil {
			return nil, err
		}
		return d, nil
	default:
		return nil, errors.Unimplementedf("no keyboard device support on %s", runtime.GOOS)
	}
}
