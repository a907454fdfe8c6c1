//go:build linux

package keyboard

import (
	"context"
	"encoding/binary"
	"errors"
	"io"
	"log"
	"os"
	"sync"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sys/unix"

	apperr "github.com/hostplay/input-bridge/internal/errors"
)

// evdev event types and key-event values, from linux/input-event-codes.h.
const (
	evKey = 0x01

	// eviocgrab is EVIOCGRAB from linux/input.h (_IOW('E', 0x90, int));
	// golang.org/x/sys/unix does not define it.
	eviocgrab = 0x40044590

	evValueRelease = 0
	evValuePress   = 1
	evValueRepeat  = 2
)

// inputEvent mirrors the kernel's struct input_event on 64-bit platforms.
type inputEvent struct {
	Sec   int64
	Usec  int64
	Type  uint16
	Code  uint16
	Value int32
}

// scancodeKeyCodes translates evdev scancodes to the key codes used by the
// controller layouts.
var scancodeKeyCodes = map[uint16]int{
	29:  17, // KEY_LEFTCTRL
	97:  17, // KEY_RIGHTCTRL
	57:  32, // KEY_SPACE
	103: 38, // KEY_UP
	105: 37, // KEY_LEFT
	106: 39, // KEY_RIGHT
	108: 40, // KEY_DOWN
}

// keyCodeForScancode returns the layout key code for an evdev scancode.
func keyCodeForScancode(scancode uint16) (int, bool) {
	code, ok := scancodeKeyCodes[scancode]
	return code, ok
}

// evdevDevice reads key events directly from a /dev/input node.
type evdevDevice struct {
	mu      sync.Mutex
	path    string
	file    *os.File
	grabbed bool
	press   []func(Event)
	release []func(Event)
}

func newEvdevDevice(cfg *DeviceConfig) (*evdevDevice, error) {
	if cfg.Path == "" {
		return nil, apperr.InvalidArgument("device path is required")
	}

	file, err := os.OpenFile(cfg.Path, os.O_RDONLY, 0)
	if err != nil {
		return nil, apperr.Wrapf(err, "open keyboard device %s", cfg.Path)
	}

	d := &evdevDevice{
		path: cfg.Path,
		file: file,
	}

	if cfg.Grab {
		if err := d.grab(); err != nil {
			_ = file.Close()
			return nil, err
		}
	}

	log.Printf("keyboard: reading %s", cfg.Path)
	return d, nil
}

// OnKeyPress subscribes to key-down notifications
func (d *evdevDevice) OnKeyPress(fn func(Event)) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.press = append(d.press, fn)
}

// OnKeyRelease subscribes to key-up notifications
func (d *evdevDevice) OnKeyRelease(fn func(Event)) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.release = append(d.release, fn)
}

// Run reads the device until the context is cancelled. Handlers run
// synchronously on the read loop.
func (d *evdevDevice) Run(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		<-ctx.Done()
		return d.close()
	})

	g.Go(func() error {
		return d.readLoop()
	})

	return g.Wait()
}

func (d *evdevDevice) readLoop() error {
	var ev inputEvent
	for {
		if err := binary.Read(d.file, binary.LittleEndian, &ev); err != nil {
			// the closer shutting down the file is the normal exit
			if errors.Is(err, os.ErrClosed) || errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
				return nil
			}
			return apperr.Wrapf(err, "read %s", d.path)
		}

		if ev.Type != evKey {
			continue
		}

		code, ok := keyCodeForScancode(ev.Code)
		if !ok {
			continue
		}

		switch ev.Value {
		case evValuePress:
			d.dispatch(d.snapshotPress(), code)
		case evValueRelease:
			d.dispatch(d.snapshotRelease(), code)
		case evValueRepeat:
			// autorepeat never reaches controllers
		}
	}
}

func (d *evdevDevice) dispatch(handlers []func(Event), code int) {
	ev := NewEvent(code, d.suppressDefault)
	for _, fn := range handlers {
		fn(ev)
	}
}

func (d *evdevDevice) snapshotPress() []func(Event) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append(([]func(Event))(nil), d.press...)
}

func (d *evdevDevice) snapshotRelease() []func(Event) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append(([]func(Event))(nil), d.release...)
}

// suppressDefault grabs the device so the rest of the system stops seeing
// its keys. evdev has no per-key suppression; the first call grabs the whole
// device and later calls are no-ops.
func (d *evdevDevice) suppressDefault() {
	if err := d.grab(); err != nil {
		log.Printf("keyboard: %v", err)
	}
}

func (d *evdevDevice) grab() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.grabbed {
		return nil
	}
	if err := unix.IoctlSetInt(int(d.file.Fd()), eviocgrab, 1); err != nil {
		return apperr.Wrapf(err, "grab %s", d.path)
	}
	d.grabbed = true
	log.Printf("keyboard: grabbed %s", d.path)
	return nil
}

func (d *evdevDevice) close() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.grabbed {
		_ = unix.IoctlSetInt(int(d.file.Fd()), eviocgrab, 0)
		d.grabbed = false
	}
	return d.file.Close()
}
