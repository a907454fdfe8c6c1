// Package testutils provides shared fixtures for tests.
package testutils

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hostplay/input-bridge/internal/input"
)

// NewController builds a controller of the given type, failing the test on
// error.
func NewController(t *testing.T, controllerType input.Type, opts *input.Options) *input.Controller {
	t.Helper()

	c, err := input.New(controllerType, opts)
	require.NoError(t, err)
	return c
}

// ReleaseAll drives every button of the controller to the released state.
// New buttons read as pressed until their first keyup, which gets in the way
// of press assertions.
func ReleaseAll(c *input.Controller) {
	for _, b := range c.Buttons() {
		b.Trigger(input.KeyUp)
	}
}
