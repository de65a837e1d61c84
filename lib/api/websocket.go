package api

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

const (
	statsInterval = 2 * time.Second
	writeTimeout  = 10 * time.Second
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(req *http.Request) bool {
		return true
	},
}

// wsClient serialises writes, gorilla connections allow only one writer.
type wsClient struct {
	mu sync.Mutex
	ws *websocket.Conn
}

func (c *wsClient) write(packet []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	err := c.ws.SetWriteDeadline(time.Now().Add(writeTimeout))
	if err != nil {
		return fmt.Errorf("could not set write deadline: %w", err)
	}
	return c.ws.WriteMessage(websocket.TextMessage, packet)
}

// @Summary	Open websocket for realtime stats and game events
// @Router		/api/ws [get]
// @Param		Upgrade	header	string	true	"websocket"
// @Tags		base
// @Success	101
func (a *Api) handleWebsocket(w http.ResponseWriter, req *http.Request) {
	ws, err := upgrader.Upgrade(w, req, nil)
	if err != nil {
		// Upgrade already replied to the client
		a.logger.Warn("couldn't make websocket", slog.String("err", err.Error()))
		return
	}
	client := &wsClient{ws: ws}
	defer func() {
		a.removeClient(client)
		err := ws.Close()
		if err != nil {
			a.logger.Debug("could not close websocket", slog.String("err", err.Error()))
		}
	}()
	a.addClient(client)

	done := make(chan struct{})
	defer close(done)
	go a.websocketWriter(client, done)

	for {
		_, msg, err := ws.ReadMessage()
		if err != nil {
			return
		}
		a.logger.Debug("received websocket message", slog.String("msg", string(msg)))
	}
}

func (a *Api) websocketWriter(client *wsClient, done <-chan struct{}) {
	ticker := time.NewTicker(statsInterval)
	defer ticker.Stop()

	for {
		if err := a.sendStats(client); err != nil {
			return
		}
		select {
		case <-done:
			return
		case <-ticker.C:
		}
	}
}

func (a *Api) sendStats(client *wsClient) error {
	packet, err := json.Marshal(a.Stats.Snapshot())
	if err != nil {
		return err
	}
	return client.write(packet)
}

func (a *Api) broadcastEvent(data interface{}) {
	packet, err := json.Marshal(data)
	if err != nil {
		a.logger.Warn("could not encode event", slog.String("err", err.Error()))
		return
	}

	a.clientsMu.Lock()
	clients := make([]*wsClient, 0, len(a.wsClients))
	for c := range a.wsClients {
		clients = append(clients, c)
	}
	a.clientsMu.Unlock()

	for _, c := range clients {
		if err := c.write(packet); err != nil {
			a.logger.Debug("could not send event", slog.String("err", err.Error()))
		}
	}
}

func (a *Api) addClient(c *wsClient) {
	a.clientsMu.Lock()
	a.wsClients[c] = true
	n := len(a.wsClients)
	a.clientsMu.Unlock()
	a.Stats.SetWsClients(n)
}

func (a *Api) removeClient(c *wsClient) {
	a.clientsMu.Lock()
	delete(a.wsClients, c)
	n := len(a.wsClients)
	a.clientsMu.Unlock()
	a.Stats.SetWsClients(n)
}
