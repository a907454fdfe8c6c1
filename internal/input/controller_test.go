package input_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hostplay/input-bridge/internal/input"
	"github.com/hostplay/input-bridge/internal/keyboard"
	"github.com/hostplay/input-bridge/internal/testutils"
)

func TestController_HostEventReachesButton(t *testing.T) {
	c, err := input.New(input.TwoButtons, nil)
	require.NoError(t, err)

	left := c.Button("left")
	require.NotNil(t, left)
	left.Trigger(input.KeyUp)
	require.False(t, left.IsDown())

	c.Trigger(input.HostKeyDown, input.ButtonEvent{Button: "left"})
	assert.True(t, left.IsDown())

	c.Trigger(input.HostKeyUp, input.ButtonEvent{Button: "left"})
	assert.False(t, left.IsDown())
}

func TestController_UnknownButtonSilentlyDropped(t *testing.T) {
	c, err := input.New(input.TwoButtons, nil)
	require.NoError(t, err)

	events := 0
	c.Button("left").On(input.KeyDown, func(data ...any) {
		events++
	})
	c.Button("right").On(input.KeyDown, func(data ...any) {
		events++
	})

	assert.NotPanics(t, func() {
		c.Trigger(input.KeyDown, input.ButtonEvent{Button: "fire"})
		c.Trigger(input.KeyDown) // no payload at all
		c.Trigger(input.KeyDown, "not a button event")
	})
	assert.Equal(t, 0, events)
}

func TestController_RemapRoundTrip(t *testing.T) {
	c, err := input.New(input.TwoButtons, nil)
	require.NoError(t, err)

	c.RemapButton("left", input.Remap{Name: "throttle"})

	assert.Nil(t, c.Button("left"))
	throttle := c.Button("throttle")
	require.NotNil(t, throttle)

	throttleDowns := 0
	throttle.On(input.KeyDown, func(data ...any) {
		throttleDowns++
	})

	// the host bridge still references the original name
	c.Trigger(input.HostKeyDown, input.ButtonEvent{Button: "left"})

	assert.Equal(t, 1, throttleDowns, "alias must redirect the host event")
	assert.True(t, throttle.IsDown())
}

func TestController_RemapUnknownNameIsNoOp(t *testing.T) {
	c, err := input.New(input.TwoButtons, nil)
	require.NoError(t, err)

	c.RemapButton("fire", input.Remap{Name: "boost"})

	assert.Nil(t, c.Button("boost"))
	assert.Len(t, c.Buttons(), 2)
}

func TestController_AddButtonReplacesSameKey(t *testing.T) {
	c := input.NewController()

	first := input.NewButton("A", input.CodeSpace)
	second := input.NewButton("A", input.CodeCtrl)
	c.AddButton(first)
	c.AddButton(second)

	require.Len(t, c.Buttons(), 1)
	assert.Same(t, second, c.Button("A"))
}

func TestController_AliasRewriteDoesNotMutateCallerPayload(t *testing.T) {
	c, err := input.New(input.TwoButtons, nil)
	require.NoError(t, err)
	c.RemapButton("left", input.Remap{Name: "throttle"})

	payload := &input.ButtonEvent{Button: "left"}
	c.Trigger(input.HostKeyDown, payload)

	assert.Equal(t, "left", payload.Button)
}

func TestController_EnableKeyboard(t *testing.T) {
	c := testutils.NewController(t, input.FourButtons, nil)
	testutils.ReleaseAll(c)

	kb := keyboard.NewManual()
	require.NoError(t, c.EnableKeyboard(kb))

	up := c.Button("up")

	downs := 0
	up.On(input.KeyDown, func(data ...any) {
		downs++
	})

	kb.Press(input.CodeUp)
	assert.Equal(t, 1, downs)
	assert.True(t, up.IsDown())

	kb.Release(input.CodeUp)
	assert.False(t, up.IsDown())

	// known codes get their default handling suppressed
	assert.Equal(t, []int{input.CodeUp, input.CodeUp}, kb.Suppressed())
}

func TestController_EnableKeyboardIgnoresUnknownCodes(t *testing.T) {
	c, err := input.New(input.FourButtons, nil)
	require.NoError(t, err)

	kb := keyboard.NewManual()
	require.NoError(t, c.EnableKeyboard(kb))

	events := 0
	for _, b := range c.Buttons() {
		b.On(input.KeyDown, func(data ...any) {
			events++
		})
	}

	kb.Press(99)
	assert.Equal(t, 0, events)
	assert.Empty(t, kb.Suppressed(), "unknown codes keep their default handling")
}

func TestController_EnableKeyboardRespectsRemap(t *testing.T) {
	c, err := input.New(input.FourButtons, nil)
	require.NoError(t, err)

	kb := keyboard.NewManual()
	require.NoError(t, c.EnableKeyboard(kb))

	// remap after enabling: physical input flows through the same public
	// keydown path, so the alias applies to keyboard presses too
	c.RemapButton("up", input.Remap{Name: "jump"})

	jump := c.Button("jump")
	require.NotNil(t, jump)
	jump.Trigger(input.KeyUp)

	kb.Press(input.CodeUp)
	assert.True(t, jump.IsDown())
}

func TestController_EnableKeyboardRequiresBridge(t *testing.T) {
	c := input.NewController()

	err := c.EnableKeyboard(nil)
	require.Error(t, err)
}

func TestController_TouchRelay(t *testing.T) {
	c, err := input.New(input.Touch, nil)
	require.NoError(t, err)
	require.Empty(t, c.Buttons())

	var got []input.TouchEvent
	c.On(input.TouchMove, func(data ...any) {
		ev, ok := data[0].(input.TouchEvent)
		require.True(t, ok)
		got = append(got, ev)
	})

	want := input.TouchEvent{Position: input.Position{X: 0.25, Y: 0.75}}
	c.Trigger(input.HostTouchMove, want)

	require.Len(t, got, 1)
	assert.Equal(t, want, got[0])
}

func TestController_TouchRelayAllPhases(t *testing.T) {
	c, err := input.New(input.Touch, nil)
	require.NoError(t, err)

	phases := map[string]string{
		input.HostTouchStart:  input.TouchStart,
		input.HostTouchEnd:    input.TouchEnd,
		input.HostTouchMove:   input.TouchMove,
		input.HostTouchLeave:  input.TouchLeave,
		input.HostTouchCancel: input.TouchCancel,
	}

	seen := make(map[string]int)
	for _, public := range phases {
		public := public
		c.On(public, func(data ...any) {
			seen[public]++
		})
	}

	for private := range phases {
		c.Trigger(private, input.TouchEvent{})
	}

	for _, public := range phases {
		assert.Equal(t, 1, seen[public], public)
	}
}
