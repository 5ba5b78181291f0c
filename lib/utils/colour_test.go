package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestColourValidate(t *testing.T) {
	assert.True(t, ColourValidate("#ff8033ff"))
	assert.True(t, ColourValidate("#00000000"))
	assert.False(t, ColourValidate("#ff8033"))
	assert.False(t, ColourValidate("ff8033ff"))
	assert.False(t, ColourValidate("#gg8033ff"))
	assert.False(t, ColourValidate(""))
}

func TestColourParseRoundTrip(t *testing.T) {
	c := ColourParse("#ff8033cc")
	assert.InDelta(t, 1.0, c.R, 0.005)
	assert.InDelta(t, 0.5, c.G, 0.005)
	assert.InDelta(t, 0.2, c.B, 0.005)
	assert.InDelta(t, 0.8, c.A, 0.005)
	assert.Equal(t, "#ff8033cc", c.Hex())
}

func TestColourScaled(t *testing.T) {
	c := Colour{R: 0.5, G: 0.5, B: 0.5, A: 0.75}

	dim := c.Scaled(0.5)
	assert.InDelta(t, 0.25, dim.R, 0.0001)
	assert.InDelta(t, 0.75, dim.A, 0.0001, "alpha must not pulse")

	bright := c.Scaled(4)
	assert.Equal(t, float32(1), bright.R, "channels clamp at 1")
	assert.Equal(t, float32(1), bright.G)
	assert.Equal(t, float32(1), bright.B)
}

func TestDeltaTimer(t *testing.T) {
	var d DeltaTimer
	assert.Equal(t, int64(0), d.Next().Nanoseconds(), "first delta is zero")
	assert.GreaterOrEqual(t, d.Next().Nanoseconds(), int64(0))
}
