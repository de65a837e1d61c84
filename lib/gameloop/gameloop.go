// Package gameloop wires the window, renderer, sprite source, level and API
// together and runs the snake game until the window is closed.
package gameloop

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/fosdem/spritekit/lib/api"
	"github.com/fosdem/spritekit/lib/config"
	"github.com/fosdem/spritekit/lib/game"
	"github.com/fosdem/spritekit/lib/kbdctl"
	"github.com/fosdem/spritekit/lib/level"
	"github.com/fosdem/spritekit/lib/log"
	"github.com/fosdem/spritekit/lib/remote"
	"github.com/fosdem/spritekit/lib/rendering"
	"github.com/fosdem/spritekit/lib/rendering/shaders"
	"github.com/fosdem/spritekit/lib/snake"
	"github.com/fosdem/spritekit/lib/stats"
	"github.com/fosdem/spritekit/lib/utils"
	"github.com/fosdem/spritekit/lib/window"
)

// MakeWindowAndPlay opens the window and plays games until the window is
// closed or a shutdown is requested. It must run on the main thread.
func MakeWindowAndPlay(cfg *config.Config) error {
	logger := log.Module("gameloop")

	w, err := window.New(cfg.Window)
	if err != nil {
		return fmt.Errorf("could not open window: %w", err)
	}
	defer w.Destroy()

	program, err := rendering.BuildGLProgram(shaders.DefaultShaderData())
	if err != nil {
		return fmt.Errorf("could not init GL program: %w", err)
	}
	renderer := rendering.NewRenderer(w.Width, w.Height, program)
	renderer.Start()
	defer renderer.Delete()

	sess := newSession(logger)
	kbdctl.SetupShortcutKeys(w, sess.Shutdown)
	controls := kbdctl.NewControls(w)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	source := remote.NewSource(cfg.SpriteServer, cfg.Game.SpriteSide)
	fetcher := remote.NewFetcher(source)
	fetcher.Start(ctx)
	defer fetcher.Close()

	events := game.NewEvents()
	st := stats.New()
	if theApi := api.ServeInBackground(cfg.Api, sess, events, st); theApi != nil {
		defer theApi.Close()
	}

	if cfg.Level != nil {
		err = setupLevel(ctx, cfg.Level, sess, w, logger)
		if err != nil {
			return err
		}
	}

	l := &loop{
		cfg:      cfg,
		window:   w,
		renderer: renderer,
		controls: controls,
		sess:     sess,
		stats:    st,
		logger:   logger,
	}
	bounds := snake.Bounds{Width: w.Width, Height: w.Height}
	rng := rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))

	for {
		initial := sess.startSprite(func() remote.SpriteData {
			return l.initialSprite(ctx, source)
		})
		if l.quitting() {
			return nil
		}
		g := game.New(cfg.Game, game.NewSnakes(cfg.Game, bounds, initial, rng), fetcher, events, time.Now())
		sess.setGame(g)

		if !l.play(g) {
			g.Stop()
			return nil
		}
		if !l.gameOver(g) {
			return nil
		}
	}
}

func setupLevel(ctx context.Context, cfg *config.LevelCfg, sess *session, w *window.Window, logger *slog.Logger) error {
	path := string(cfg.Path)
	lvl, err := level.Load(path)
	if err != nil {
		return fmt.Errorf("could not load level: %w", err)
	}
	err = sess.setLevel(lvl, w.Width, w.Height)
	if err != nil {
		return fmt.Errorf("could not place level %s: %w", path, err)
	}
	if !cfg.Inotify {
		return nil
	}

	go func() {
		err := level.Watch(ctx, path, func(lvl *level.Level) {
			err := sess.setLevel(lvl, w.Width, w.Height)
			if err != nil {
				logger.Warn("ignoring level update", slog.String("err", err.Error()))
			}
		})
		if err != nil {
			logger.Warn("level watcher stopped", slog.String("err", err.Error()))
		}
	}()
	return nil
}

type loop struct {
	cfg      *config.Config
	window   *window.Window
	renderer *rendering.Renderer
	controls *kbdctl.Controls
	sess     *session
	stats    *stats.Stats
	logger   *slog.Logger

	deltaTimer utils.DeltaTimer
}

func (l *loop) quitting() bool {
	if l.window.ShouldClose() {
		return true
	}
	return l.sess.ShutdownRequested()
}

// initialSprite asks the sprite source where the user's snake starts. The
// window keeps processing events while waiting. Failures fall back to a
// fixed position.
func (l *loop) initialSprite(ctx context.Context, source remote.Source) remote.SpriteData {
	fallback := remote.SpriteData{X: 100, Y: 100}

	ctx, cancel := context.WithTimeout(ctx, l.cfg.SpriteServer.Timeout())
	defer cancel()

	type result struct {
		d   remote.SpriteData
		err error
	}
	done := make(chan result, 1)
	go func() {
		d, err := source.RequestSprite(ctx)
		done <- result{d, err}
	}()

	for {
		select {
		case res := <-done:
			if res.err != nil {
				l.logger.Warn("could not fetch initial sprite, using default position", slog.String("err", res.err.Error()))
				return fallback
			}
			return res.d
		case <-time.After(l.cfg.Game.Tick()):
			kbdctl.Poll()
			if l.quitting() {
				cancel()
				return fallback
			}
		}
	}
}

// play runs a game until the user's snake dies. It returns false when the
// program should exit instead.
func (l *loop) play(g *game.Game) bool {
	tick := l.cfg.Game.Tick()
	l.deltaTimer.Reset()

	for g.Running() {
		if l.quitting() {
			return false
		}
		if dt := l.deltaTimer.Next(); dt > 10*tick {
			l.logger.Debug("slow frame", slog.Duration("dt", dt))
		}
		now := time.Now()

		l.window.Clear()
		l.renderer.StartFrame()
		g.Render(l.renderer, l.controls, now)
		l.window.Update()

		l.stats.Update(g.Stats(), now)
		time.Sleep(tick)
	}
	return true
}

// gameOver flashes the game over message over the final state until the
// user restarts. It returns false when the program should exit instead.
func (l *loop) gameOver(g *game.Game) bool {
	tick := l.cfg.Game.Tick()
	screen := game.NewGameOverScreen(l.cfg.Game.GameOverFlash(), time.Now())

	for {
		if l.quitting() {
			return false
		}
		if l.controls.Restart() {
			return true
		}
		now := time.Now()

		l.window.Clear()
		l.renderer.StartFrame()
		g.Draw(l.renderer)
		screen.Render(l.renderer, now)
		l.window.Update()

		l.stats.Update(g.Stats(), now)
		time.Sleep(tick)
	}
}
