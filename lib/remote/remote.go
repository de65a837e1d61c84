// Package remote fetches sprite descriptions for new food, either from an
// HTTP sprite server or from a local random generator.
package remote

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math/rand/v2"
	"net/http"
	"sync"
	"time"

	"github.com/fosdem/spritekit/lib/config"
	"github.com/fosdem/spritekit/lib/sprite"
)

// SpriteData is the wire format served by the sprite server.
type SpriteData struct {
	Width  int     `json:"width"`
	Height int     `json:"height"`
	X      float32 `json:"x"`
	Y      float32 `json:"y"`
	R      int     `json:"r"`
	G      int     `json:"g"`
	B      int     `json:"b"`
}

func (d SpriteData) Sprite() *sprite.Sprite {
	return sprite.New(d.X, d.Y, d.Width, d.Height, d.R, d.G, d.B)
}

type Source interface {
	RequestSprite(ctx context.Context) (SpriteData, error)
}

// NewSource builds the sprite source described by cfg.
func NewSource(cfg *config.SpriteServerCfg, side int) Source {
	if cfg.Random {
		return NewRandomSource(side, cfg.MinDelay(), cfg.MaxDelay(), nil)
	}
	return NewClient(cfg.URL, cfg.Timeout())
}

// Client asks a sprite server for a sprite with a plain GET.
type Client struct {
	URL  string
	HTTP *http.Client
}

func NewClient(url string, timeout time.Duration) *Client {
	return &Client{
		URL:  url,
		HTTP: &http.Client{Timeout: timeout},
	}
}

func (c *Client) RequestSprite(ctx context.Context) (SpriteData, error) {
	var data SpriteData

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.URL, nil)
	if err != nil {
		return data, fmt.Errorf("could not build request for %s: %w", c.URL, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return data, fmt.Errorf("could not reach sprite server: %w", err)
	}
	defer func(body io.ReadCloser) {
		_ = body.Close()
	}(resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return data, fmt.Errorf("sprite server answered %s", resp.Status)
	}

	data, err = Decode(resp.Body)
	if err != nil {
		return data, err
	}
	return data, nil
}

func Decode(r io.Reader) (SpriteData, error) {
	var data SpriteData
	err := json.NewDecoder(r).Decode(&data)
	if err != nil {
		return data, fmt.Errorf("could not decode sprite data: %w", err)
	}
	return data, nil
}

// RandomSource makes up sprites locally, after a random delay that mimics a
// slow server.
type RandomSource struct {
	Side     int
	MinDelay time.Duration
	MaxDelay time.Duration

	mu  sync.Mutex
	rng *rand.Rand
}

func NewRandomSource(side int, minDelay, maxDelay time.Duration, rng *rand.Rand) *RandomSource {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &RandomSource{
		Side:     side,
		MinDelay: minDelay,
		MaxDelay: maxDelay,
		rng:      rng,
	}
}

func (r *RandomSource) RequestSprite(ctx context.Context) (SpriteData, error) {
	r.mu.Lock()
	data := SpriteData{
		Width:  r.Side,
		Height: r.Side,
		X:      float32(1 + r.rng.IntN(399)),
		Y:      float32(1 + r.rng.IntN(399)),
		R:      1 + r.rng.IntN(254),
		G:      1 + r.rng.IntN(254),
		B:      1 + r.rng.IntN(254),
	}
	delay := r.MinDelay
	if r.MaxDelay > r.MinDelay {
		delay += time.Duration(r.rng.Int64N(int64(r.MaxDelay - r.MinDelay)))
	}
	r.mu.Unlock()

	if delay <= 0 {
		return data, nil
	}
	timer := time.NewTimer(delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return SpriteData{}, ctx.Err()
	case <-timer.C:
		return data, nil
	}
}
