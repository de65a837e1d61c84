package sprite

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	s := New(100, 150, 50, 60, 255, 0, 10)
	assert.Equal(t, float32(100), s.X)
	assert.Equal(t, float32(150), s.Y)
	assert.Equal(t, 50, s.Width)
	assert.Equal(t, 60, s.Height)
	assert.Equal(t, color.RGBA{R: 255, G: 0, B: 10, A: 255}, s.Colour)
}

func TestNewClampsColour(t *testing.T) {
	s := New(0, 0, 1, 1, -5, 300, 42)
	assert.Equal(t, color.RGBA{R: 0, G: 255, B: 42, A: 255}, s.Colour)
}

func TestNewKeepsNegativeSize(t *testing.T) {
	s := New(10, 10, -4, -2, 0, 0, 0)
	x1, y1, x2, y2 := s.Rect()
	assert.Equal(t, []float32{10, 10, 6, 8}, []float32{x1, y1, x2, y2})
}

func TestMove(t *testing.T) {
	s := New(1, 2, 3, 4, 5, 6, 7)
	s.Move(20, 30)
	assert.Equal(t, float32(20), s.X)
	assert.Equal(t, float32(30), s.Y)
	assert.Equal(t, 3, s.Width)
}

func TestDupe(t *testing.T) {
	s := New(1, 2, 3, 4, 5, 6, 7)
	d := s.Dupe(8, 9)
	assert.Equal(t, float32(8), d.X)
	assert.Equal(t, float32(9), d.Y)
	assert.Equal(t, s.Colour, d.Colour)

	d.Move(0, 0)
	assert.Equal(t, float32(1), s.X, "dupe must not alias the original")
}

func TestSetColour(t *testing.T) {
	s := New(0, 0, 1, 1, 0, 0, 0)
	s.SetColour(255, 400, 1)
	assert.Equal(t, color.RGBA{R: 255, G: 255, B: 1, A: 255}, s.Colour)
}

func TestCorners(t *testing.T) {
	s := New(10, 20, 5, 6, 0, 0, 0)
	assert.Equal(t, [4]Point{{10, 20}, {15, 20}, {10, 26}, {15, 26}}, s.Corners())
}

func TestOverlaps(t *testing.T) {
	food := New(100, 100, 25, 25, 0, 255, 0)

	cases := []struct {
		name string
		head *Sprite
		want bool
	}{
		{"inside", New(110, 110, 5, 5, 0, 0, 0), true},
		{"top left corner touching right edge", New(125, 90, 25, 25, 0, 0, 0), true},
		{"bottom edge is exclusive", New(100, 125, 25, 25, 0, 0, 0), false},
		{"far away", New(300, 300, 25, 25, 0, 0, 0), false},
		{"left of", New(70, 100, 25, 25, 0, 0, 0), false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, food.Overlaps(c.head))
		})
	}
}

func TestOverlapsOnlyChecksOtherCorners(t *testing.T) {
	small := New(110, 110, 5, 5, 0, 0, 0)
	big := New(100, 100, 25, 25, 0, 0, 0)
	assert.True(t, big.Overlaps(small))
	assert.False(t, small.Overlaps(big))
}

func TestString(t *testing.T) {
	assert.Equal(t, "25x25@(1.0,2.5) #ff0010", New(1, 2.5, 25, 25, 255, 0, 16).String())
}
