package gameloop

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fosdem/spritekit/lib/config"
	"github.com/fosdem/spritekit/lib/game"
	"github.com/fosdem/spritekit/lib/level"
	"github.com/fosdem/spritekit/lib/remote"
)

const twoWalls = `
name: posts
walls:
  - x: 10
    y: 10
    width: 5
    height: 5
  - cx: 400
    cy: 300
    width: 20
    height: 20
`

func TestSessionShutdown(t *testing.T) {
	s := newSession(slog.Default())
	assert.False(t, s.ShutdownRequested())
	s.Shutdown()
	assert.True(t, s.ShutdownRequested())
}

func TestSessionFoodGoesToCurrentGame(t *testing.T) {
	s := newSession(slog.Default())
	assert.NotPanics(t, func() { s.AddFood(remote.SpriteData{X: 1}) }, "no game yet")

	g := game.New(config.Default().Game, nil, nil, nil, time.Now())
	s.setGame(g)
	s.AddFood(remote.SpriteData{X: 300, Y: 300})
	assert.Empty(t, g.Food(), "food shows up with the next frame")
}

func TestSessionLevelIsAppliedToGames(t *testing.T) {
	s := newSession(slog.Default())
	lvl, err := level.Parse([]byte(twoWalls))
	require.NoError(t, err)

	require.NoError(t, s.setLevel(lvl, 800, 600))

	g := game.New(config.Default().Game, nil, nil, nil, time.Now())
	s.setGame(g)
	assert.Equal(t, 2, g.Stats().Walls)

	require.NoError(t, s.setLevel(&level.Level{Name: "empty"}, 800, 600))
	assert.Equal(t, 0, g.Stats().Walls, "reloads reach the running game")
}

func TestSessionFetchesStartOnce(t *testing.T) {
	s := newSession(slog.Default())
	calls := 0
	fetch := func() remote.SpriteData {
		calls++
		return remote.SpriteData{X: 42, Y: 7}
	}

	for range 3 {
		d := s.startSprite(fetch)
		assert.Equal(t, remote.SpriteData{X: 42, Y: 7}, d)
	}
	assert.Equal(t, 1, calls)
}
