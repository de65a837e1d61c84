package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	FramesRendered = promauto.NewCounter(prometheus.CounterOpts{
		Name: "spritekit_frames_rendered_total",
		Help: "Total number of frames drawn to the window",
	})
	SpritesDrawn = promauto.NewCounter(prometheus.CounterOpts{
		Name: "spritekit_sprites_drawn_total",
		Help: "Total number of sprite quads drawn",
	})
	FoodSpawned = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "spritekit_food_spawned_total",
		Help: "Total number of food items put on screen",
	}, []string{"type"})
	FoodEaten = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "spritekit_food_eaten_total",
		Help: "Total number of food items eaten",
	}, []string{"snake"})
	GamesPlayed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "spritekit_games_total",
		Help: "Total number of games started",
	})
	Score = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "spritekit_score",
		Help: "Score of the current game",
	})
	SpriteFetches = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "spritekit_sprite_fetches_total",
		Help: "Total number of sprite fetches from the sprite source",
	}, []string{"result"})
)

// FetchMetrics is the per-result view of SpriteFetches.
type FetchMetrics struct {
	Succeeded prometheus.Counter
	Failed    prometheus.Counter
}

func NewFetchMetrics() FetchMetrics {
	f := FetchMetrics{
		Succeeded: SpriteFetches.WithLabelValues("ok"),
		Failed:    SpriteFetches.WithLabelValues("error"),
	}
	f.Succeeded.Add(0)
	f.Failed.Add(0)
	return f
}

// Handler should usually be mounted at /metrics
func Handler() http.Handler {
	return promhttp.Handler()
}
