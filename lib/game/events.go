package game

import "sync"

type EventListener func(data interface{})

const (
	EventNewGame   = "new-game"
	EventFoodEaten = "food-eaten"
	EventGameOver  = "game-over"
)

type EventDataNewGame struct {
	Event  string `json:"event"`
	Snakes int    `json:"snakes"`
}

type EventDataFoodEaten struct {
	Event string `json:"event"`
	Snake string `json:"snake"`
	Count int    `json:"count"`
	Score int    `json:"score"`
}

type EventDataGameOver struct {
	Event  string `json:"event"`
	Score  int    `json:"score"`
	Reason string `json:"reason"`
}

// Events fans game events out to listeners. One Events value outlives the
// individual games, so listeners only need to register once.
type Events struct {
	mu       sync.Mutex
	listener map[string][]EventListener
}

func NewEvents() *Events {
	return &Events{listener: make(map[string][]EventListener)}
}

// AddEventListener registers callback for event. Listeners run on their
// own goroutine and must not touch GL state.
func (e *Events) AddEventListener(event string, callback EventListener) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.listener[event] = append(e.listener[event], callback)
}

func (e *Events) invoke(event string, data interface{}) {
	if e == nil {
		return
	}
	e.mu.Lock()
	listeners := e.listener[event]
	e.mu.Unlock()

	for _, listener := range listeners {
		go listener(data)
	}
}
