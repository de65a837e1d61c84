package stats

import (
	"sync"
	"time"

	"github.com/fosdem/spritekit/lib/game"
)

type Snapshot struct {
	Uptime      float64 `json:"uptime"`
	FPS         uint64  `json:"fps"`
	Score       int     `json:"score"`
	SnakeLength int     `json:"snake_length"`
	Food        int     `json:"food"`
	Walls       int     `json:"walls"`
	Running     bool    `json:"running"`
	WsClients   int     `json:"ws_clients"`
}

type Stats struct {
	mu  sync.Mutex
	cur Snapshot

	frameCounter uint64
	frameTimer   time.Time
	start        time.Time
}

func New() *Stats {
	return NewAt(time.Now())
}

func NewAt(now time.Time) *Stats {
	return &Stats{start: now, frameTimer: now}
}

// Update is called once per frame from the render loop.
func (s *Stats) Update(g game.Stats, now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.frameCounter++
	if now.Sub(s.frameTimer) > 1*time.Second {
		s.cur.FPS = s.frameCounter
		s.frameCounter = 0
		s.frameTimer = now
	}

	s.cur.Uptime = now.Sub(s.start).Seconds()
	s.cur.Score = g.Score
	s.cur.SnakeLength = g.SnakeLength
	s.cur.Food = g.Food
	s.cur.Walls = g.Walls
	s.cur.Running = g.Running
}

func (s *Stats) SetWsClients(n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cur.WsClients = n
}

func (s *Stats) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cur
}
