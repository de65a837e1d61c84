// Package game implements the snake game on top of sprites: food, scoring,
// walls and the game over screen. It draws through Canvas and reads input
// through Controls, so it never touches GL directly.
package game

import (
	"fmt"
	"image/color"
	"log/slog"
	"math/rand/v2"
	"slices"
	"strconv"
	"sync"
	"time"

	"github.com/fosdem/spritekit/lib/config"
	"github.com/fosdem/spritekit/lib/metrics"
	"github.com/fosdem/spritekit/lib/remote"
	"github.com/fosdem/spritekit/lib/snake"
	"github.com/fosdem/spritekit/lib/sprite"
)

// Canvas is what a frame is drawn onto.
type Canvas interface {
	snake.Canvas
	DrawText(text string, x, y, scale float32, c color.RGBA)
}

// Controls is the keyboard as seen by the game.
type Controls interface {
	snake.Controls
	Restart() bool
}

// FoodSupply delivers sprites for new food in the background. Reset
// discards everything requested so far.
type FoodSupply interface {
	Request()
	Drain() []remote.SpriteData
	Reset()
}

var (
	scoreColour = color.RGBA{R: 255, A: 255}
	deadColour  = [3]int{250, 255, 255}
)

const (
	ScoreX     = 0
	ScoreY     = 20
	ScoreScale = 1.5
)

type Food struct {
	Sprite  *sprite.Sprite
	Bad     bool
	Spawned time.Time
}

type Stats struct {
	Score       int  `json:"score"`
	SnakeLength int  `json:"snake_length"`
	Food        int  `json:"food"`
	Walls       int  `json:"walls"`
	Running     bool `json:"running"`
}

type Game struct {
	cfg    *config.GameCfg
	supply FoodSupply
	events *Events
	logger *slog.Logger

	mu              sync.Mutex
	snakes          []*snake.Snake
	food            []*Food
	pending         []remote.SpriteData
	walls           []*sprite.Sprite
	score           int
	running         bool
	deadHead        *sprite.Sprite
	lastFoodFetched time.Time
}

func New(cfg *config.GameCfg, snakes []*snake.Snake, supply FoodSupply, events *Events, now time.Time) *Game {
	g := &Game{
		cfg:             cfg,
		supply:          supply,
		events:          events,
		logger:          slog.Default().With(slog.String("module", "game")),
		snakes:          snakes,
		running:         true,
		lastFoodFetched: now,
	}
	if supply != nil {
		// food ordered by a previous game must not show up in this one
		supply.Reset()
	}
	g.logger.Info("NEW GAME!")
	metrics.GamesPlayed.Inc()
	metrics.Score.Set(0)
	g.events.invoke(EventNewGame, EventDataNewGame{Event: EventNewGame, Snakes: len(snakes)})
	return g
}

// NewSnakes creates the user's snake at the initial position together with
// its buddy and an autonomous snake slightly offset from it.
func NewSnakes(cfg *config.GameCfg, bounds snake.Bounds, initial remote.SpriteData, rng *rand.Rand) []*snake.Snake {
	side := cfg.SpriteSide
	offset := float32(side)
	return []*snake.Snake{
		snake.New(snake.User, bounds, initial.X, initial.Y, side, side, 0, 255, 0, rng),
		snake.New(snake.Buddy, bounds, initial.X+offset, initial.Y+offset, side, side, 25, 25, 25, rng),
		snake.New(snake.Autonomous, bounds, initial.X+offset, initial.Y+offset, side, side, 50, 25, 128, rng),
	}
}

func (g *Game) Running() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.running
}

func (g *Game) Score() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.score
}

// Stop ends the game without a game over event.
func (g *Game) Stop() {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.running {
		g.logger.Info("STOP the game")
	}
	g.running = false
}

func (g *Game) Stats() Stats {
	g.mu.Lock()
	defer g.mu.Unlock()
	s := Stats{
		Score:   g.score,
		Food:    len(g.food),
		Walls:   len(g.walls),
		Running: g.running,
	}
	if u := g.userSnake(); u != nil {
		s.SnakeLength = u.Len()
	}
	return s
}

func (g *Game) Snakes() []*snake.Snake {
	g.mu.Lock()
	defer g.mu.Unlock()
	return slices.Clone(g.snakes)
}

func (g *Game) Food() []*Food {
	g.mu.Lock()
	defer g.mu.Unlock()
	return slices.Clone(g.food)
}

// SetWalls replaces the walls, for instance after the level file changed.
func (g *Game) SetWalls(walls []*sprite.Sprite) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.walls = walls
}

// AddFood queues a sprite to be put on screen in the next frame. It is
// safe to call from any goroutine.
func (g *Game) AddFood(d remote.SpriteData) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.pending = append(g.pending, d)
}

// Render advances the game by one frame and draws it.
func (g *Game) Render(c Canvas, controls Controls, now time.Time) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if !g.running {
		g.draw(c)
		return
	}

	if reason := g.moveSnakes(controls); reason != "" {
		g.die(reason)
		g.draw(c)
		return
	}

	g.updateFood(now)
	g.draw(c)
}

// Draw draws the current state without advancing it.
func (g *Game) Draw(c Canvas) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.draw(c)
}

func (g *Game) moveSnakes(controls Controls) string {
	for _, s := range g.snakes {
		s.Crawl(controls)

		head := s.Head()
		var eaten []*Food
		for _, f := range g.food {
			if f.Sprite.Overlaps(head) {
				eaten = append(eaten, f)
			}
		}

		if len(eaten) > 0 {
			if s.DiesFromBadFood() && slices.ContainsFunc(eaten, func(f *Food) bool { return f.Bad }) {
				return "ate bad food"
			}
			if s.OwnedByUser() {
				g.score += len(eaten)
				metrics.Score.Set(float64(g.score))
			}
			s.Grow()
			g.food = slices.DeleteFunc(g.food, func(f *Food) bool {
				return slices.Contains(eaten, f)
			})
			metrics.FoodEaten.WithLabelValues(s.Kind.String()).Add(float64(len(eaten)))
			g.logger.Debug(fmt.Sprintf("food eaten! remaining food %d", len(g.food)))
			g.logger.Debug(fmt.Sprintf("Snake size: %d - stride: %.2f", s.Len(), s.Stride()))
			g.events.invoke(EventFoodEaten, EventDataFoodEaten{
				Event: EventFoodEaten,
				Snake: s.Kind.String(),
				Count: len(eaten),
				Score: g.score,
			})
		}

		if s.Kind == snake.User {
			for _, w := range g.walls {
				if w.Overlaps(head) || head.Overlaps(w) {
					return "hit a wall"
				}
			}
		}
	}
	return ""
}

func (g *Game) die(reason string) {
	g.running = false
	g.logger.Info(fmt.Sprintf("Snake %s, final score %d", reason, g.score))

	if u := g.userSnake(); u != nil {
		head := u.Head()
		g.deadHead = head.Dupe(head.X, head.Y)
		g.deadHead.SetColour(deadColour[0], deadColour[1], deadColour[2])
	}
	g.events.invoke(EventGameOver, EventDataGameOver{Event: EventGameOver, Score: g.score, Reason: reason})
}

func (g *Game) updateFood(now time.Time) {
	lifetime := g.cfg.FoodLifetime()
	g.food = slices.DeleteFunc(g.food, func(f *Food) bool {
		return now.Sub(f.Spawned) >= lifetime
	})

	var fresh []remote.SpriteData
	if g.supply != nil {
		fresh = g.supply.Drain()
	}
	fresh = append(fresh, g.pending...)
	g.pending = nil
	for _, d := range fresh {
		g.food = append(g.food, g.newFood(d, now))
	}

	if g.supply != nil && now.Sub(g.lastFoodFetched) > g.cfg.FoodInterval() {
		g.logger.Debug("Request 1 more food item")
		g.supply.Request()
		g.lastFoodFetched = now
	}
}

// newFood turns fetched sprite data into food. Reddish sprites become bad
// food and are painted pure red so the player can tell.
func (g *Game) newFood(d remote.SpriteData, now time.Time) *Food {
	side := g.cfg.SpriteSide
	f := &Food{
		Sprite:  sprite.New(d.X, d.Y, side, side, d.R, d.G, d.B),
		Spawned: now,
	}
	if d.R > g.cfg.BadFoodRedThreshold {
		f.Sprite.SetColour(255, 0, 0)
		f.Bad = true
		metrics.FoodSpawned.WithLabelValues("bad").Inc()
	} else {
		metrics.FoodSpawned.WithLabelValues("good").Inc()
	}
	return f
}

func (g *Game) draw(c Canvas) {
	for _, w := range g.walls {
		c.DrawSprite(w)
	}
	for _, s := range g.snakes {
		s.Render(c)
	}
	for _, f := range g.food {
		c.DrawSprite(f.Sprite)
	}
	if g.deadHead != nil {
		c.DrawSprite(g.deadHead)
	}
	c.DrawText("score="+strconv.Itoa(g.score), ScoreX, ScoreY, ScoreScale, scoreColour)
}

func (g *Game) userSnake() *snake.Snake {
	for _, s := range g.snakes {
		if s.Kind == snake.User {
			return s
		}
	}
	return nil
}
