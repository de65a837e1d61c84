// Package sprite holds the axis-aligned coloured rectangles that the
// renderer draws as filled quads.
package sprite

import (
	"fmt"
	"image/color"

	"github.com/fosdem/spritekit/lib/utils"
)

type Point struct {
	X float32
	Y float32
}

// Sprite is a coloured rectangle positioned in window pixels, with the
// origin at the top-left corner of the window.
type Sprite struct {
	X      float32
	Y      float32
	Width  int
	Height int
	Colour color.RGBA
}

// New allocates a sprite. Colour channels outside 0..255 are clamped.
// Sizes are stored as given; a negative size renders as an empty quad.
func New(x, y float32, width, height int, r, g, b int) *Sprite {
	return &Sprite{
		X:      x,
		Y:      y,
		Width:  width,
		Height: height,
		Colour: color.RGBA{
			R: utils.ClampChannel(r),
			G: utils.ClampChannel(g),
			B: utils.ClampChannel(b),
			A: 0xff,
		},
	}
}

func (s *Sprite) Move(x, y float32) {
	s.X = x
	s.Y = y
}

// Dupe returns a copy of the sprite at a new position.
func (s *Sprite) Dupe(x, y float32) *Sprite {
	d := *s
	d.X = x
	d.Y = y
	return &d
}

func (s *Sprite) SetColour(r, g, b int) {
	s.Colour = color.RGBA{
		R: utils.ClampChannel(r),
		G: utils.ClampChannel(g),
		B: utils.ClampChannel(b),
		A: 0xff,
	}
}

// Rect returns the top-left and bottom-right corners.
func (s *Sprite) Rect() (x1, y1, x2, y2 float32) {
	return s.X, s.Y, s.X + float32(s.Width), s.Y + float32(s.Height)
}

func (s *Sprite) Corners() [4]Point {
	x1, y1, x2, y2 := s.Rect()
	return [4]Point{
		{X: x1, Y: y1},
		{X: x2, Y: y1},
		{X: x1, Y: y2},
		{X: x2, Y: y2},
	}
}

// Contains reports whether p is inside the sprite. The bottom edge is
// exclusive, the other three are inclusive.
func (s *Sprite) Contains(p Point) bool {
	x1, y1, x2, y2 := s.Rect()
	return p.X >= x1 && p.X <= x2 && p.Y >= y1 && p.Y < y2
}

// Overlaps reports whether any corner of other lies inside s.
func (s *Sprite) Overlaps(other *Sprite) bool {
	for _, c := range other.Corners() {
		if s.Contains(c) {
			return true
		}
	}
	return false
}

func (s *Sprite) String() string {
	return fmt.Sprintf("%dx%d@(%.1f,%.1f) #%02x%02x%02x",
		s.Width, s.Height, s.X, s.Y, s.Colour.R, s.Colour.G, s.Colour.B)
}
