//go:build !linux

package keyboard

import (
	"github.com/hostplay/input-bridge/internal/errors"
)

func newEvdevDevice(cfg *DeviceConfig) (Device, error) {
	return nil, errors.Unimplementedf("evdev keyboard devices are linux-only")
}
