// Package api serves the game's status over HTTP and websockets.
//
//	@title		spritekit
//	@version	1.0
//	@BasePath	/
package api

//go:generate go tool swag init --generalInfo api.go --output docs --outputTypes go

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"runtime/pprof"
	"sync"
	"time"

	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/fosdem/spritekit/lib/api/docs"
	"github.com/fosdem/spritekit/lib/config"
	"github.com/fosdem/spritekit/lib/game"
	"github.com/fosdem/spritekit/lib/metrics"
	"github.com/fosdem/spritekit/lib/remote"
	"github.com/fosdem/spritekit/lib/stats"
)

// Backend is the running game as seen from the API.
type Backend interface {
	AddFood(d remote.SpriteData)
	Shutdown()
}

type Api struct {
	srv     http.Server
	mux     *http.ServeMux
	cfg     *config.ApiCfg
	backend Backend
	logger  *slog.Logger

	Stats *stats.Stats

	clientsMu sync.Mutex
	wsClients map[*wsClient]bool
}

func New(cfg *config.ApiCfg, backend Backend, events *game.Events, st *stats.Stats) *Api {
	a := &Api{
		cfg:       cfg,
		mux:       http.NewServeMux(),
		backend:   backend,
		logger:    slog.Default().With(slog.String("module", "api")),
		Stats:     st,
		wsClients: make(map[*wsClient]bool),
	}
	a.srv.Addr = cfg.Bind
	a.srv.Handler = a.mux

	if events != nil {
		for _, name := range []string{game.EventNewGame, game.EventFoodEaten, game.EventGameOver} {
			events.AddEventListener(name, a.broadcastEvent)
		}
	}

	if cfg.EnableProfiler {
		a.mux.HandleFunc("/prof", a.profileCPU)
	}
	a.mux.HandleFunc("POST /api/kill", a.suicide)
	a.mux.HandleFunc("GET /api/stats", a.getStats)
	a.mux.HandleFunc("POST /api/food", a.addFood)
	a.mux.HandleFunc("GET /api/ws", a.handleWebsocket)
	a.mux.Handle("GET /metrics", metrics.Handler())
	a.mux.Handle("GET /api/docs/", httpSwagger.Handler(
		httpSwagger.URL("/api/docs/doc.json"),
		httpSwagger.InstanceName(docs.SwaggerInfo.InstanceName()),
	))
	return a
}

func (a *Api) Handler() http.Handler {
	return a.mux
}

func (a *Api) Serve() error {
	return a.srv.ListenAndServe()
}

func (a *Api) Close() error {
	return a.srv.Close()
}

func (a *Api) profileCPU(w http.ResponseWriter, _ *http.Request) {
	err := pprof.StartCPUProfile(w)
	if err != nil {
		http.Error(w, fmt.Sprintf("Could not start CPU profile: %s", err), http.StatusInternalServerError)
		return
	}
	time.Sleep(10 * time.Second)
	pprof.StopCPUProfile()
}

// @Summary	Stop the game and close the window
// @Router		/api/kill [post]
// @Tags		base
// @Success	200
func (a *Api) suicide(w http.ResponseWriter, _ *http.Request) {
	a.logger.Info("shutting down as per api request")
	a.backend.Shutdown()
	a.writeOk(w)
}

// @Summary	Current game statistics
// @Router		/api/stats [get]
// @Tags		base
// @Produce	json
// @Success	200	{object}	stats.Snapshot
func (a *Api) getStats(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	encoder := json.NewEncoder(w)
	err := encoder.Encode(a.Stats.Snapshot())
	if err != nil {
		http.Error(w, fmt.Sprintf("could not encode stats: %s", err), http.StatusInternalServerError)
		return
	}
}

// @Summary	Drop a food item into the running game
// @Router		/api/food [post]
// @Param		sprite	body	remote.SpriteData	true	"Position and colour of the food"
// @Tags		game
// @Accept		json
// @Success	200
// @Failure	400	{string}	string	"Could not decode json request"
func (a *Api) addFood(w http.ResponseWriter, req *http.Request) {
	d, err := remote.Decode(req.Body)
	if err != nil {
		http.Error(w, fmt.Sprintf("could not decode json request: %s", err), http.StatusBadRequest)
		return
	}
	a.logger.Debug("food added over the api", slog.String("sprite", d.Sprite().String()))
	a.backend.AddFood(d)
	a.writeOk(w)
}

func (a *Api) writeOk(w http.ResponseWriter) {
	_, err := fmt.Fprintf(w, "\"ok\"\n")
	if err != nil {
		a.logger.Warn("could not write response", slog.String("err", err.Error()))
	}
}

// ServeInBackground starts the API when it is configured. It returns nil
// otherwise.
func ServeInBackground(cfg *config.ApiCfg, backend Backend, events *game.Events, st *stats.Stats) *Api {
	if cfg == nil {
		return nil
	}
	theApi := New(cfg, backend, events, st)

	theApi.logger.Info("starting web server", slog.String("bind", cfg.Bind))
	go func() {
		err := theApi.Serve()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			theApi.logger.Error("web server stopped", slog.String("err", err.Error()))
		}
	}()
	return theApi
}
