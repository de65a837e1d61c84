package remote

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/fosdem/spritekit/lib/metrics"
)

const queueSize = 64

// fetched is a sprite tagged with the generation that asked for it.
type fetched struct {
	generation uint64
	data       SpriteData
}

// Fetcher runs sprite requests in the background so that the render loop
// never waits on the network. Every request gets its own goroutine;
// results are collected with Drain. Reset starts a new generation and
// results of older generations are thrown away.
type Fetcher struct {
	source Source

	generation atomic.Uint64
	requests   chan uint64
	results    chan fetched

	cancel context.CancelFunc
	wg     sync.WaitGroup

	logger  *slog.Logger
	metrics metrics.FetchMetrics
}

func NewFetcher(source Source) *Fetcher {
	return &Fetcher{
		source:   source,
		requests: make(chan uint64, queueSize),
		results:  make(chan fetched, queueSize),
		logger:   slog.Default().With(slog.String("module", "remote")),
		metrics:  metrics.NewFetchMetrics(),
	}
}

func (f *Fetcher) Start(ctx context.Context) {
	ctx, f.cancel = context.WithCancel(ctx)
	f.logger.Debug("Starting background sprite fetcher")

	f.wg.Add(1)
	go func() {
		defer f.wg.Done()
		for {
			select {
			case <-ctx.Done():
				f.logger.Debug("Closing background sprite fetcher")
				return
			case gen := <-f.requests:
				if gen != f.generation.Load() {
					continue
				}
				f.wg.Add(1)
				go f.fetch(ctx, gen)
			}
		}
	}()
}

// Request asks for one more sprite. It never blocks; requests beyond the
// queue size are dropped.
func (f *Fetcher) Request() {
	select {
	case f.requests <- f.generation.Load():
	default:
		f.logger.Warn("sprite request queue is full, dropping request")
	}
}

// Reset forgets every queued, in-flight and undrained request. Sprites
// requested before the reset never come out of Drain.
func (f *Fetcher) Reset() {
	f.generation.Add(1)
	for {
		select {
		case <-f.requests:
		case <-f.results:
		default:
			return
		}
	}
}

// Drain returns every sprite of the current generation fetched so far
// without blocking.
func (f *Fetcher) Drain() []SpriteData {
	gen := f.generation.Load()
	var out []SpriteData
	for {
		select {
		case r := <-f.results:
			if r.generation == gen {
				out = append(out, r.data)
			}
		default:
			return out
		}
	}
}

// Close stops the fetcher and waits for in-flight requests to finish.
func (f *Fetcher) Close() {
	if f.cancel != nil {
		f.cancel()
	}
	f.wg.Wait()
}

func (f *Fetcher) fetch(ctx context.Context, gen uint64) {
	defer f.wg.Done()

	data, err := f.source.RequestSprite(ctx)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return
		}
		f.metrics.Failed.Inc()
		f.logger.Warn(fmt.Sprintf("could not fetch sprite: %s", err))
		return
	}
	f.metrics.Succeeded.Inc()

	if gen != f.generation.Load() {
		f.logger.Debug("dropping sprite fetched for a previous game")
		return
	}
	select {
	case f.results <- fetched{generation: gen, data: data}:
	case <-ctx.Done():
	}
}
