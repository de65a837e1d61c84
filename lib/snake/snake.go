// Package snake moves a chain of sprites around the window. A snake is
// steered by the keyboard or wanders on its own.
package snake

import (
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/fosdem/spritekit/lib/sprite"
)

type Direction int

const (
	Right Direction = iota
	Left
	Up
	Down
)

func (d Direction) String() string {
	switch d {
	case Right:
		return "right"
	case Left:
		return "left"
	case Up:
		return "up"
	case Down:
		return "down"
	}
	return fmt.Sprintf("Direction(%d)", int(d))
}

type Kind int

const (
	// User is steered with the keyboard and dies from bad food
	User Kind = iota
	// Buddy follows the same keys as the user but never dies
	Buddy
	// Autonomous wanders around to distract the user
	Autonomous
)

func (k Kind) String() string {
	switch k {
	case User:
		return "user"
	case Buddy:
		return "buddy"
	case Autonomous:
		return "autonomous"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

const (
	SegmentsPerStep = 3
	InitialStride   = float32(1.0)
	GrowthRate      = float32(0.02)
)

// Controls is the keyboard state a snake steers by.
type Controls interface {
	// Direction returns the direction currently requested, if any.
	Direction() (Direction, bool)
}

// Canvas is where snakes draw themselves.
type Canvas interface {
	DrawSprite(s *sprite.Sprite)
}

// Bounds is the area snakes move in. Snakes leaving one edge come back
// in from the opposite edge.
type Bounds struct {
	Width  int
	Height int
}

type Snake struct {
	Kind      Kind
	Direction Direction

	// body[0] is the head
	body   []*sprite.Sprite
	speed  int
	stride float32
	bounds Bounds
	rng    *rand.Rand
}

func New(kind Kind, bounds Bounds, x, y float32, width, height, r, g, b int, rng *rand.Rand) *Snake {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &Snake{
		Kind:      kind,
		Direction: Right,
		body:      []*sprite.Sprite{sprite.New(x, y, width, height, r, g, b)},
		speed:     SegmentsPerStep,
		stride:    InitialStride,
		bounds:    bounds,
		rng:       rng,
	}
}

func (s *Snake) Head() *sprite.Sprite {
	if len(s.body) == 0 {
		return nil
	}
	return s.body[0]
}

func (s *Snake) Len() int {
	return len(s.body)
}

func (s *Snake) Stride() float32 {
	return s.stride
}

func (s *Snake) Body() []*sprite.Sprite {
	return s.body
}

// OwnedByUser reports whether meals of this snake count towards the score.
func (s *Snake) OwnedByUser() bool {
	return s.Kind == User || s.Kind == Buddy
}

func (s *Snake) DiesFromBadFood() bool {
	return s.Kind == User
}

func (s *Snake) Render(c Canvas) {
	for _, segment := range s.body {
		c.DrawSprite(segment)
	}
}

// Crawl steers the snake and moves it forward without growing.
func (s *Snake) Crawl(controls Controls) {
	s.updateDirection(controls)
	s.moveForward(false)
}

// Grow speeds the snake up and extends it in its current direction.
func (s *Snake) Grow() {
	s.stride += GrowthRate
	s.moveForward(true)
}

func (s *Snake) updateDirection(controls Controls) {
	if s.Kind == Autonomous {
		// keeps its course most of the time
		switch s.rng.IntN(51) {
		case 47:
			s.Direction = Left
		case 48:
			s.Direction = Right
		case 49:
			s.Direction = Up
		case 50:
			s.Direction = Down
		}
		return
	}

	if controls == nil {
		return
	}
	if d, ok := controls.Direction(); ok {
		s.Direction = d
	}
}

func (s *Snake) moveForward(grow bool) {
	for range s.speed {
		head := s.body[0]
		x, y := head.X, head.Y
		switch s.Direction {
		case Left:
			x = wrap(x-s.stride, s.bounds.Width)
		case Right:
			x = wrap(x+s.stride, s.bounds.Width)
		case Up:
			y = wrap(y-s.stride, s.bounds.Height)
		case Down:
			y = wrap(y+s.stride, s.bounds.Height)
		}

		s.body = append(s.body, nil)
		copy(s.body[1:], s.body)
		s.body[0] = head.Dupe(x, y)

		if !grow {
			s.body = s.body[:len(s.body)-1]
		}
	}
}

func wrap(v float32, limit int) float32 {
	if limit <= 0 {
		return v
	}
	l := float64(limit)
	w := math.Mod(float64(v), l)
	if math.IsNaN(w) {
		// infinite positions have no place in the window
		return 0
	}
	if w < 0 {
		w += l
	}
	// tiny negatives round up to l in float32
	if float32(w) >= float32(l) {
		return 0
	}
	return float32(w)
}
