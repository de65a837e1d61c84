package utils

import (
	"image/color"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestColourValidate(t *testing.T) {
	assert.True(t, ColourValidate("#ff0000ff"))
	assert.True(t, ColourValidate("#A0b1C2d3"))
	assert.False(t, ColourValidate("#ff0000"))
	assert.False(t, ColourValidate("ff0000ff"))
	assert.False(t, ColourValidate("#gg0000ff"))
	assert.False(t, ColourValidate("#ff0000ff00"))
}

func TestColourParse(t *testing.T) {
	assert.Equal(t, color.RGBA{R: 0xff, G: 0x80, B: 0x00, A: 0x10}, ColourParse("#ff800010"))
}

func TestColourFloats(t *testing.T) {
	r, g, b, a := ColourFloats(color.RGBA{R: 255, G: 0, B: 51, A: 255})
	assert.InDelta(t, 1.0, r, 1e-6)
	assert.InDelta(t, 0.0, g, 1e-6)
	assert.InDelta(t, 0.2, b, 1e-6)
	assert.InDelta(t, 1.0, a, 1e-6)
}

func TestClampChannel(t *testing.T) {
	assert.Equal(t, uint8(0), ClampChannel(-20))
	assert.Equal(t, uint8(128), ClampChannel(128))
	assert.Equal(t, uint8(255), ClampChannel(300))
}

func TestDeltaTimer(t *testing.T) {
	var d DeltaTimer
	assert.Equal(t, time.Duration(0), d.Next())

	d.Set(time.Now().Add(-50 * time.Millisecond))
	assert.GreaterOrEqual(t, d.Next(), 50*time.Millisecond)
}

func TestDeltaTimerReset(t *testing.T) {
	var d DeltaTimer
	d.Next()
	d.Reset()
	assert.True(t, d.IsZero())
	assert.Equal(t, time.Duration(0), d.Next())
}
