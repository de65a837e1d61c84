package game

import (
	"image/color"
	"time"
)

const (
	GameOverMessage = "!! GAME OVER !! (space to restart)"
	GameOverX       = 250
	GameOverY       = 300
	GameOverScale   = 2
)

var (
	gameOverRed   = color.RGBA{R: 255, A: 255}
	gameOverGreen = color.RGBA{G: 255, A: 255}
)

// GameOverScreen flashes the game over message, alternating between red
// and green every flash interval.
type GameOverScreen struct {
	flash     time.Duration
	red       bool
	lastFlash time.Time
}

func NewGameOverScreen(flash time.Duration, now time.Time) *GameOverScreen {
	return &GameOverScreen{flash: flash, red: true, lastFlash: now}
}

func (s *GameOverScreen) Colour() color.RGBA {
	if s.red {
		return gameOverRed
	}
	return gameOverGreen
}

// Render draws the message and flips its colour once the flash interval
// has passed.
func (s *GameOverScreen) Render(c Canvas, now time.Time) {
	if now.Sub(s.lastFlash) >= s.flash {
		s.red = !s.red
		s.lastFlash = now
	}
	c.DrawText(GameOverMessage, GameOverX, GameOverY, GameOverScale, s.Colour())
}
