// Package input models controllers and buttons so a game receives the same
// normalized events no matter which physical device the host provides.
package input

// Public event names games subscribe to on controllers and buttons.
const (
	KeyDown = "keydown"
	KeyUp   = "keyup"

	TouchStart  = "touchstart"
	TouchEnd    = "touchend"
	TouchMove   = "touchmove"
	TouchLeave  = "touchleave"
	TouchCancel = "touchcancel"
)

// Host-originated private events. The "$" prefix marks traffic injected by
// the host bridge, distinct from the public events of the same meaning.
const (
	HostKeyDown = "$" + KeyDown
	HostKeyUp   = "$" + KeyUp

	HostTouchStart  = "$" + TouchStart
	HostTouchEnd    = "$" + TouchEnd
	HostTouchMove   = "$" + TouchMove
	HostTouchLeave  = "$" + TouchLeave
	HostTouchCancel = "$" + TouchCancel
)

// touchPhases lists the touch events a Touch controller relays from the host.
var touchPhases = []string{TouchStart, TouchEnd, TouchMove, TouchLeave, TouchCancel}

// ButtonEvent is the payload of keydown/keyup events at the controller level.
// Button-level keydown/keyup events carry no payload.
type ButtonEvent struct {
	// Button names the target button. For host-originated events this is
	// the original name; the controller rewrites it through its alias table
	// before re-emitting publicly.
	Button string
}

// Position is a touch location, each coordinate normalized to [0, 1].
type Position struct {
	X float64
	Y float64
}

// TouchEvent is the payload of touch-phase events.
type TouchEvent struct {
	Position Position
}
