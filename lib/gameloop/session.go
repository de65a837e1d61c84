package gameloop

import (
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/fosdem/spritekit/lib/game"
	"github.com/fosdem/spritekit/lib/level"
	"github.com/fosdem/spritekit/lib/remote"
	"github.com/fosdem/spritekit/lib/sprite"
)

// session is the state shared between the render loop and background
// goroutines: the API, the level watcher and the shortcut keys.
type session struct {
	logger *slog.Logger

	shutdown atomic.Bool

	mu    sync.Mutex
	game  *game.Game
	walls []*sprite.Sprite

	start     remote.SpriteData
	haveStart bool
}

func newSession(logger *slog.Logger) *session {
	return &session{logger: logger}
}

func (s *session) Shutdown() {
	s.shutdown.Store(true)
}

func (s *session) ShutdownRequested() bool {
	return s.shutdown.Load()
}

// AddFood hands food to the current game. It is dropped between games.
func (s *session) AddFood(d remote.SpriteData) {
	s.mu.Lock()
	g := s.game
	s.mu.Unlock()
	if g == nil {
		s.logger.Debug("no game running, dropping food")
		return
	}
	g.AddFood(d)
}

func (s *session) setGame(g *game.Game) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.game = g
	g.SetWalls(s.walls)
}

func (s *session) setLevel(lvl *level.Level, width, height int) error {
	walls, err := lvl.Sprites(width, height)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.walls = walls
	if s.game != nil {
		s.game.SetWalls(walls)
	}
	s.logger.Info("level loaded", slog.String("name", lvl.Name), slog.Int("walls", len(walls)))
	return nil
}

// startSprite returns where the user's snake starts. fetch runs for the
// first game only; restarts reuse its answer.
func (s *session) startSprite(fetch func() remote.SpriteData) remote.SpriteData {
	s.mu.Lock()
	if s.haveStart {
		defer s.mu.Unlock()
		return s.start
	}
	s.mu.Unlock()

	d := fetch()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.start = d
	s.haveStart = true
	return d
}
