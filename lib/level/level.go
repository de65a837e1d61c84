// Package level loads wall layouts from YAML files. Walls are sprites that
// kill the user's snake on contact.
package level

import (
	"fmt"
	"math"
	"os"

	"github.com/fosdem/spritekit/lib/sprite"
	"github.com/fosdem/spritekit/lib/utils"
	yaml "github.com/goccy/go-yaml"
)

const defaultWallColour = "#808080ff"

type Level struct {
	Name  string
	Walls []*WallCfg
}

// WallCfg places a wall either with absolute coordinates or relative to
// the window edges. Edge offsets are in pixels; a pair of opposite edges
// also determines the size.
type WallCfg struct {
	X      float32
	Y      float32
	Width  int
	Height int

	Top    *float32
	Left   *float32
	Bottom *float32
	Right  *float32
	Cx     *float32
	Cy     *float32

	Colour string
}

func Load(path string) (*Level, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read level %s: %w", path, err)
	}
	return Parse(b)
}

func Parse(b []byte) (*Level, error) {
	l := &Level{}
	err := yaml.Unmarshal(b, l)
	if err != nil {
		return nil, fmt.Errorf("could not parse level: %w", err)
	}
	return l, l.Validate()
}

func (l *Level) Validate() error {
	for i, w := range l.Walls {
		if err := w.Validate(); err != nil {
			return fmt.Errorf("wall %d is invalid: %w", i, err)
		}
	}
	return nil
}

// Sprites lays out every wall for a window of the given size.
func (l *Level) Sprites(width, height int) ([]*sprite.Sprite, error) {
	sprites := make([]*sprite.Sprite, 0, len(l.Walls))
	for i, w := range l.Walls {
		s, err := w.Sprite(width, height)
		if err != nil {
			return nil, fmt.Errorf("wall %d: %w", i, err)
		}
		sprites = append(sprites, s)
	}
	return sprites, nil
}

func (w *WallCfg) Validate() error {
	if w.X != 0 && (w.Left != nil || w.Right != nil || w.Cx != nil) {
		return fmt.Errorf("cannot set both X and Left, Right or Cx for the position")
	}
	if w.Y != 0 && (w.Top != nil || w.Bottom != nil || w.Cy != nil) {
		return fmt.Errorf("cannot set both Y and Top, Bottom or Cy for the position")
	}
	if w.Left != nil && w.Right != nil && w.Width != 0 {
		return fmt.Errorf("width is overconstrained by Left and Right")
	}
	if w.Top != nil && w.Bottom != nil && w.Height != 0 {
		return fmt.Errorf("height is overconstrained by Top and Bottom")
	}
	if w.Cx != nil && (w.Left != nil || w.Right != nil) {
		return fmt.Errorf("cannot set both Cx and Left or Right")
	}
	if w.Cy != nil && (w.Top != nil || w.Bottom != nil) {
		return fmt.Errorf("cannot set both Cy and Top or Bottom")
	}
	if w.Colour != "" && !utils.ColourValidate(w.Colour) {
		return fmt.Errorf("%s is not a valid RGBA hex colour", w.Colour)
	}
	return nil
}

// Sprite resolves the wall for a window of the given size.
func (w *WallCfg) Sprite(winWidth, winHeight int) (*sprite.Sprite, error) {
	x, width := resolveAxis(w.X, w.Width, w.Left, w.Right, w.Cx, winWidth)
	y, height := resolveAxis(w.Y, w.Height, w.Top, w.Bottom, w.Cy, winHeight)
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("wall resolves to an empty %dx%d rectangle", width, height)
	}

	colour := w.Colour
	if colour == "" {
		colour = defaultWallColour
	}
	c := utils.ColourParse(colour)
	return sprite.New(x, y, width, height, int(c.R), int(c.G), int(c.B)), nil
}

func resolveAxis(pos float32, size int, near, far, centre *float32, limit int) (float32, int) {
	switch {
	case near != nil && far != nil:
		return *near, int(math.Round(float64(float32(limit) - *near - *far)))
	case near != nil:
		return *near, size
	case far != nil:
		return float32(limit) - *far - float32(size), size
	case centre != nil:
		return *centre - float32(size)/2, size
	}
	return pos, size
}
