package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fosdem/spritekit/lib/utils"
	yaml "github.com/goccy/go-yaml"
)

type Config struct {
	Window       *WindowCfg
	Game         *GameCfg
	SpriteServer *SpriteServerCfg `yaml:"sprite_server"`
	Level        *LevelCfg
	Api          *ApiCfg
	LogLevel     string `yaml:"log_level"`
}

type WindowCfg struct {
	Title            string
	Width            int
	Height           int
	BackgroundColour string `yaml:"background_colour"`
	VSync            *bool  `yaml:"vsync"`
}

type GameCfg struct {
	SpriteSide          int `yaml:"sprite_side"`
	TickMs              int `yaml:"tick_ms"`
	FoodIntervalMs      int `yaml:"food_interval_ms"`
	FoodLifetimeMs      int `yaml:"food_lifetime_ms"`
	GameOverFlashMs     int `yaml:"game_over_flash_ms"`
	BadFoodRedThreshold int `yaml:"bad_food_red_threshold"`
}

type SpriteServerCfg struct {
	URL        string
	Random     bool
	TimeoutMs  int `yaml:"timeout_ms"`
	MinDelayMs *int `yaml:"min_delay_ms"`
	MaxDelayMs *int `yaml:"max_delay_ms"`
}

type LevelCfg struct {
	Path    CfgPath
	Inotify bool
}

type ApiCfg struct {
	Bind           string
	EnableProfiler bool `yaml:"enable_profiler"`
}

const (
	DefaultSpriteServerURL = "https://get-random-sprite-data-dan-chiarlones-projects.vercel.app/api/handler"
)

// Default returns the configuration used when no file is given.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

func Parse(filename string) (*Config, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("could not open %s: %w", filename, err)
	}
	defer func(f *os.File) {
		err := f.Close()
		if err != nil {
			slog.Warn(fmt.Sprintf("could not close %s: %s", filename, err), slog.String("module", "config"))
		}
	}(f)

	absFilename, err := filepath.Abs(filename)
	if err != nil {
		return nil, fmt.Errorf("somehow, %s is malformed: %w", filename, err)
	}
	UnmarshalBase = filepath.Dir(absFilename)

	m := yaml.NewDecoder(f)
	cfg := &Config{}
	err = m.Decode(cfg)
	if err != nil {
		return nil, err
	}
	cfg.applyDefaults()
	err = cfg.Validate()
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Window == nil {
		c.Window = &WindowCfg{}
	}
	if c.Window.Title == "" {
		c.Window.Title = "Snake Game"
	}
	if c.Window.Width == 0 {
		c.Window.Width = 800
	}
	if c.Window.Height == 0 {
		c.Window.Height = 600
	}
	if c.Window.BackgroundColour == "" {
		c.Window.BackgroundColour = "#000000ff"
	}
	if c.Window.VSync == nil {
		vsync := true
		c.Window.VSync = &vsync
	}

	if c.Game == nil {
		c.Game = &GameCfg{}
	}
	if c.Game.SpriteSide == 0 {
		c.Game.SpriteSide = 25
	}
	if c.Game.TickMs == 0 {
		c.Game.TickMs = 10
	}
	if c.Game.FoodIntervalMs == 0 {
		c.Game.FoodIntervalMs = 500
	}
	if c.Game.FoodLifetimeMs == 0 {
		c.Game.FoodLifetimeMs = 100_000
	}
	if c.Game.GameOverFlashMs == 0 {
		c.Game.GameOverFlashMs = 1000
	}
	if c.Game.BadFoodRedThreshold == 0 {
		c.Game.BadFoodRedThreshold = 150
	}

	if c.SpriteServer == nil {
		c.SpriteServer = &SpriteServerCfg{Random: true}
	}
	if c.SpriteServer.TimeoutMs == 0 {
		c.SpriteServer.TimeoutMs = 5000
	}
	if c.SpriteServer.MinDelayMs == nil && c.SpriteServer.MaxDelayMs == nil {
		minDelay, maxDelay := 1000, 4000
		c.SpriteServer.MinDelayMs = &minDelay
		c.SpriteServer.MaxDelayMs = &maxDelay
	}

	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
}

func (c *Config) Validate() error {
	if err := c.Window.Validate(); err != nil {
		return fmt.Errorf("window is invalid: %w", err)
	}
	if err := c.Game.Validate(); err != nil {
		return fmt.Errorf("game is invalid: %w", err)
	}
	if err := c.SpriteServer.Validate(); err != nil {
		return fmt.Errorf("sprite_server is invalid: %w", err)
	}
	if c.Level != nil {
		if err := c.Level.Validate(); err != nil {
			return fmt.Errorf("level is invalid: %w", err)
		}
	}
	if c.Api != nil {
		if err := c.Api.Validate(); err != nil {
			return fmt.Errorf("api is invalid: %w", err)
		}
	}
	if _, err := c.SlogLevel(); err != nil {
		return err
	}
	return nil
}

// SlogLevel maps log_level onto a slog level.
func (c *Config) SlogLevel() (slog.Level, error) {
	var level slog.Level
	err := level.UnmarshalText([]byte(c.LogLevel))
	if err != nil {
		return 0, fmt.Errorf("%s is not a valid log_level: %w", c.LogLevel, err)
	}
	return level, nil
}

func (c *Config) String() string {
	var b strings.Builder
	b.WriteString("Window:\n")
	b.WriteString(fmt.Sprintf("  %s (%dx%d, background %s)\n", c.Window.Title, c.Window.Width, c.Window.Height, c.Window.BackgroundColour))

	b.WriteString("\nGame:\n")
	b.WriteString(fmt.Sprintf("  sprite side %dpx, tick %s, food every %s\n",
		c.Game.SpriteSide, c.Game.Tick(), c.Game.FoodInterval()))

	b.WriteString("\nSprite server:\n")
	if c.SpriteServer.Random {
		b.WriteString("  random (offline)\n")
	} else {
		b.WriteString(fmt.Sprintf("  %s\n", c.SpriteServer.URL))
	}

	if c.Level != nil {
		b.WriteString("\nLevel:\n")
		b.WriteString(fmt.Sprintf("  %s (inotify: %t)\n", c.Level.Path, c.Level.Inotify))
	}

	if c.Api != nil {
		b.WriteString("\nApi:\n")
		b.WriteString(fmt.Sprintf("  %s\n", c.Api.Bind))
	}

	return b.String()
}

func (w *WindowCfg) Validate() error {
	if w.Width < 1 || w.Height < 1 {
		return fmt.Errorf("window size must be positive, got %dx%d", w.Width, w.Height)
	}
	if !utils.ColourValidate(w.BackgroundColour) {
		return fmt.Errorf("%s is not a valid RGBA hex colour", w.BackgroundColour)
	}
	return nil
}

func (g *GameCfg) Validate() error {
	if g.SpriteSide < 1 {
		return fmt.Errorf("sprite_side must be positive")
	}
	if g.TickMs < 0 {
		return fmt.Errorf("tick_ms must be nonnegative")
	}
	if g.FoodIntervalMs < 0 || g.FoodLifetimeMs < 0 || g.GameOverFlashMs < 0 {
		return fmt.Errorf("durations must be nonnegative")
	}
	if g.BadFoodRedThreshold < 0 || g.BadFoodRedThreshold > 255 {
		return fmt.Errorf("bad_food_red_threshold must be within 0..255")
	}
	return nil
}

func (g *GameCfg) Tick() time.Duration {
	return time.Duration(g.TickMs) * time.Millisecond
}

func (g *GameCfg) FoodInterval() time.Duration {
	return time.Duration(g.FoodIntervalMs) * time.Millisecond
}

func (g *GameCfg) FoodLifetime() time.Duration {
	return time.Duration(g.FoodLifetimeMs) * time.Millisecond
}

func (g *GameCfg) GameOverFlash() time.Duration {
	return time.Duration(g.GameOverFlashMs) * time.Millisecond
}

func (s *SpriteServerCfg) Validate() error {
	if !s.Random && s.URL == "" {
		return fmt.Errorf("either url or random must be set")
	}
	if s.TimeoutMs < 0 {
		return fmt.Errorf("timeout_ms must be nonnegative")
	}
	if s.MinDelay() < 0 || s.MaxDelay() < s.MinDelay() {
		return fmt.Errorf("delays must satisfy 0 <= min_delay_ms <= max_delay_ms")
	}
	return nil
}

// MinDelay is the shortest made-up latency of the random source. Unset
// means zero.
func (s *SpriteServerCfg) MinDelay() time.Duration {
	if s.MinDelayMs == nil {
		return 0
	}
	return time.Duration(*s.MinDelayMs) * time.Millisecond
}

// MaxDelay is the longest made-up latency; unset means no upper spread.
func (s *SpriteServerCfg) MaxDelay() time.Duration {
	if s.MaxDelayMs == nil {
		return s.MinDelay()
	}
	return time.Duration(*s.MaxDelayMs) * time.Millisecond
}

func (s *SpriteServerCfg) Timeout() time.Duration {
	return time.Duration(s.TimeoutMs) * time.Millisecond
}

func (l *LevelCfg) Validate() error {
	if l.Path == "" {
		return fmt.Errorf("path to the level file must be specified")
	}
	return nil
}

func (a *ApiCfg) Validate() error {
	if a.Bind == "" {
		return fmt.Errorf("bind address must be specified")
	}
	return nil
}
