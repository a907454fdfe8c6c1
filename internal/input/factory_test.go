package input_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperr "github.com/hostplay/input-bridge/internal/errors"
	"github.com/hostplay/input-bridge/internal/input"
	"github.com/hostplay/input-bridge/internal/keyboard"
)

func TestNew_CatalogLayouts(t *testing.T) {
	tests := []struct {
		controllerType input.Type
		buttons        map[string]int
	}{
		{
			controllerType: input.OneButton,
			buttons:        map[string]int{"button": 32},
		},
		{
			controllerType: input.TwoButtons,
			buttons:        map[string]int{"left": 37, "right": 39},
		},
		{
			controllerType: input.FourButtons,
			buttons:        map[string]int{"up": 38, "left": 37, "right": 39, "A": 32},
		},
		{
			controllerType: input.FiveButtons,
			buttons:        map[string]int{"up": 38, "left": 37, "right": 39, "down": 40, "A": 32},
		},
		{
			controllerType: input.SixButtons,
			buttons:        map[string]int{"up": 38, "left": 37, "right": 39, "down": 40, "A": 32, "B": 17},
		},
		{
			controllerType: input.Touch,
			buttons:        map[string]int{},
		},
	}

	for _, tt := range tests {
		t.Run(string(tt.controllerType), func(t *testing.T) {
			c, err := input.New(tt.controllerType, nil)
			require.NoError(t, err)

			got := make(map[string]int)
			for name, b := range c.Buttons() {
				got[name] = b.KeyCode()
			}
			assert.Equal(t, tt.buttons, got)
		})
	}
}

func TestNew_UnsupportedType(t *testing.T) {
	c, err := input.New("Bogus", nil)

	require.Error(t, err)
	assert.Nil(t, c)
	assert.True(t, apperr.IsUnsupportedControllerType(err))
}

func TestNew_AppliesRemapOptions(t *testing.T) {
	c, err := input.New(input.TwoButtons, &input.Options{
		Buttons: map[string]input.Remap{
			"left":  {Name: "brake"},
			"right": {Name: "throttle"},
		},
	})
	require.NoError(t, err)

	assert.Nil(t, c.Button("left"))
	assert.Nil(t, c.Button("right"))
	assert.NotNil(t, c.Button("brake"))
	assert.NotNil(t, c.Button("throttle"))
}

func TestNew_AppliesKeyboardOption(t *testing.T) {
	kb := keyboard.NewManual()
	c, err := input.New(input.OneButton, &input.Options{
		EnableKeyboard: true,
		Keyboard:       kb,
	})
	require.NoError(t, err)

	b := c.Button("button")
	b.Trigger(input.KeyUp)

	kb.Press(input.CodeSpace)
	assert.True(t, b.IsDown())
}

func TestNew_EnableKeyboardWithoutBridgeFails(t *testing.T) {
	c, err := input.New(input.OneButton, &input.Options{EnableKeyboard: true})

	require.Error(t, err)
	assert.Nil(t, c)
	assert.True(t, apperr.IsInvalidArgument(err))
}

func TestSupported(t *testing.T) {
	for _, controllerType := range input.Types() {
		assert.True(t, input.Supported(controllerType))
	}
	assert.False(t, input.Supported("Bogus"))
}
