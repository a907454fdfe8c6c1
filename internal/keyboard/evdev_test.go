//go:build linux

package keyboard

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyCodeForScancode(t *testing.T) {
	tests := []struct {
		name     string
		scancode uint16
		want     int
		known    bool
	}{
		{name: "up arrow", scancode: 103, want: 38, known: true},
		{name: "left arrow", scancode: 105, want: 37, known: true},
		{name: "right arrow", scancode: 106, want: 39, known: true},
		{name: "down arrow", scancode: 108, want: 40, known: true},
		{name: "space", scancode: 57, want: 32, known: true},
		{name: "left ctrl", scancode: 29, want: 17, known: true},
		{name: "right ctrl", scancode: 97, want: 17, known: true},
		{name: "unmapped letter", scancode: 30, known: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, ok := keyCodeForScancode(tt.scancode)
			assert.Equal(t, tt.known, ok)
			if tt.known {
				assert.Equal(t, tt.want, code)
			}
		})
	}
}

func TestInputEventDecode(t *testing.T) {
	raw := inputEvent{
		Sec:   1700000000,
		Usec:  123456,
		Type:  evKey,
		Code:  103,
		Value: evValuePress,
	}

	var buf bytes.Buffer
	require.NoError(t, binary.Write(&buf, binary.LittleEndian, raw))

	var decoded inputEvent
	require.NoError(t, binary.Read(&buf, binary.LittleEndian, &decoded))
	assert.Equal(t, raw, decoded)
}
