package kbdctl

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/fosdem/spritekit/lib/snake"
)

// KeyState reports whether a key is held down. *window.Window is one.
type KeyState interface {
	KeyPressed(key glfw.Key) bool
}

// Controls reads the arrow keys and the space bar.
type Controls struct {
	keys KeyState
}

func NewControls(keys KeyState) *Controls {
	return &Controls{keys: keys}
}

// Direction returns the direction requested with the arrow keys. When
// several are held, down wins over up, up over right and right over left.
func (c *Controls) Direction() (snake.Direction, bool) {
	switch {
	case c.keys.KeyPressed(glfw.KeyDown):
		return snake.Down, true
	case c.keys.KeyPressed(glfw.KeyUp):
		return snake.Up, true
	case c.keys.KeyPressed(glfw.KeyRight):
		return snake.Right, true
	case c.keys.KeyPressed(glfw.KeyLeft):
		return snake.Left, true
	}
	return 0, false
}

func (c *Controls) Restart() bool {
	return c.keys.KeyPressed(glfw.KeySpace)
}
