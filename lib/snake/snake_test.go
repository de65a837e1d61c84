package snake

import (
	"math"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/fosdem/spritekit/lib/sprite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedControls struct {
	dir Direction
	ok  bool
}

func (f fixedControls) Direction() (Direction, bool) {
	return f.dir, f.ok
}

type countingCanvas struct {
	drawn []*sprite.Sprite
}

func (c *countingCanvas) DrawSprite(s *sprite.Sprite) {
	c.drawn = append(c.drawn, s)
}

var bounds = Bounds{Width: 800, Height: 600}

func newTestSnake(kind Kind, x, y float32) *Snake {
	return New(kind, bounds, x, y, 25, 25, 0, 255, 0, rand.New(rand.NewPCG(1, 2)))
}

func TestNew(t *testing.T) {
	s := newTestSnake(User, 100, 150)
	require.Equal(t, 1, s.Len())
	assert.Equal(t, Right, s.Direction)
	assert.Equal(t, InitialStride, s.Stride())
	assert.Equal(t, float32(100), s.Head().X)
	assert.Equal(t, float32(150), s.Head().Y)
}

func TestCrawlKeepsLength(t *testing.T) {
	s := newTestSnake(User, 100, 150)
	s.Crawl(nil)

	assert.Equal(t, 1, s.Len())
	assert.InDelta(t, 103, s.Head().X, 1e-4)
	assert.Equal(t, float32(150), s.Head().Y)
}

func TestCrawlFollowsControls(t *testing.T) {
	s := newTestSnake(User, 100, 150)
	s.Crawl(fixedControls{dir: Up, ok: true})
	assert.Equal(t, Up, s.Direction)
	assert.InDelta(t, 147, s.Head().Y, 1e-4)

	s.Crawl(fixedControls{})
	assert.Equal(t, Up, s.Direction, "no key keeps the course")
	assert.InDelta(t, 144, s.Head().Y, 1e-4)

	s.Crawl(fixedControls{dir: Left, ok: true})
	assert.InDelta(t, 97, s.Head().X, 1e-4)

	s.Crawl(fixedControls{dir: Down, ok: true})
	assert.InDelta(t, 147, s.Head().Y, 1e-4)
}

func TestBuddyFollowsControls(t *testing.T) {
	s := newTestSnake(Buddy, 100, 150)
	s.Crawl(fixedControls{dir: Down, ok: true})
	assert.Equal(t, Down, s.Direction)
}

func TestGrow(t *testing.T) {
	s := newTestSnake(User, 100, 150)
	s.Grow()

	assert.Equal(t, 1+SegmentsPerStep, s.Len())
	assert.InDelta(t, 1.02, s.Stride(), 1e-6)
	assert.InDelta(t, 100+3*1.02, s.Head().X, 1e-4)

	body := s.Body()
	for i := 1; i < len(body); i++ {
		assert.Less(t, body[i].X, body[i-1].X, "segments trail behind the head")
	}
	assert.Equal(t, float32(100), body[len(body)-1].X, "the tail stays put while growing")
}

func TestCrawlAfterGrowDropsTail(t *testing.T) {
	s := newTestSnake(User, 100, 150)
	s.Grow()
	s.Crawl(nil)
	assert.Equal(t, 1+SegmentsPerStep, s.Len())
	assert.Greater(t, s.Body()[s.Len()-1].X, float32(100))
}

func TestWrapAround(t *testing.T) {
	s := newTestSnake(User, 799, 10)
	s.Crawl(nil)
	assert.InDelta(t, 2, s.Head().X, 1e-4)

	s = newTestSnake(User, 1, 10)
	s.Crawl(fixedControls{dir: Left, ok: true})
	assert.InDelta(t, 798, s.Head().X, 1e-4)

	s = newTestSnake(User, 10, 1)
	s.Crawl(fixedControls{dir: Up, ok: true})
	assert.InDelta(t, 598, s.Head().Y, 1e-4)

	s = newTestSnake(User, 10, 599)
	s.Crawl(fixedControls{dir: Down, ok: true})
	assert.InDelta(t, 2, s.Head().Y, 1e-4)
}

func TestWrapWithoutBounds(t *testing.T) {
	assert.Equal(t, float32(-5), wrap(-5, 0))
	assert.Equal(t, float32(5), wrap(805, 800))
}

func TestWrapFarOutside(t *testing.T) {
	tests := map[string]struct {
		v    float32
		want float32
	}{
		"many widths right": {8005, 5},
		"many widths left":  {-1595, 5},
		"exact multiple":    {1600, 0},
		"tiny negative":     {-1e-9, 0},
		"infinite":          {float32(math.Inf(1)), 0},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			assert.InDelta(t, tc.want, wrap(tc.v, 800), 1e-3)
		})
	}
}

func TestCrawlFromHugePosition(t *testing.T) {
	done := make(chan *Snake, 1)
	go func() {
		s := newTestSnake(User, 1e12, 10)
		s.Crawl(nil)
		done <- s
	}()

	select {
	case s := <-done:
		x := s.Head().X
		assert.GreaterOrEqual(t, x, float32(0))
		assert.Less(t, x, float32(800))
	case <-time.After(3 * time.Second):
		t.Fatal("Crawl did not return for x=1e12")
	}
}

func TestAutonomousWanders(t *testing.T) {
	s := newTestSnake(Autonomous, 400, 300)
	seen := map[Direction]bool{}
	for range 2000 {
		s.Crawl(fixedControls{dir: Left, ok: true})
		seen[s.Direction] = true
	}
	assert.Greater(t, len(seen), 1)
}

func TestAutonomousIgnoresControls(t *testing.T) {
	s := newTestSnake(Autonomous, 400, 300)
	changed := 0
	for range 51 {
		before := s.Direction
		s.Crawl(fixedControls{dir: Down, ok: true})
		if s.Direction != before {
			changed++
		}
	}
	assert.Less(t, changed, 51)
}

func TestRender(t *testing.T) {
	s := newTestSnake(User, 100, 150)
	s.Grow()
	c := &countingCanvas{}
	s.Render(c)
	assert.Equal(t, s.Body(), c.drawn)
}

func TestOwnership(t *testing.T) {
	assert.True(t, newTestSnake(User, 0, 0).OwnedByUser())
	assert.True(t, newTestSnake(Buddy, 0, 0).OwnedByUser())
	assert.False(t, newTestSnake(Autonomous, 0, 0).OwnedByUser())

	assert.True(t, newTestSnake(User, 0, 0).DiesFromBadFood())
	assert.False(t, newTestSnake(Buddy, 0, 0).DiesFromBadFood())
	assert.False(t, newTestSnake(Autonomous, 0, 0).DiesFromBadFood())
}

func TestStrings(t *testing.T) {
	assert.Equal(t, "up", Up.String())
	assert.Equal(t, "buddy", Buddy.String())
	assert.Equal(t, "Kind(9)", Kind(9).String())
}
