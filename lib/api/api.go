package api

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"runtime/pprof"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/glintproject/glint/lib/config"
	"github.com/glintproject/glint/lib/metrics"
	"github.com/glintproject/glint/lib/scene"
	"github.com/glintproject/glint/lib/stats"
)

//go:embed swagger.json
var swaggerSpec []byte

type Api struct {
	srv   http.Server
	mux   *http.ServeMux
	cfg   *config.ApiCfg
	scene *scene.Scene

	Stats *stats.Stats

	wsMutex   sync.Mutex
	wsClients map[*websocket.Conn]bool
}

func New(cfg *config.ApiCfg, scn *scene.Scene) *Api {
	a := &Api{}
	a.cfg = cfg
	a.mux = http.NewServeMux()
	a.scene = scn
	a.srv.Addr = cfg.Bind
	a.srv.Handler = a.mux
	a.wsClients = make(map[*websocket.Conn]bool)
	a.Stats = scn.Stats
	a.routes()
	return a
}

func (a *Api) routes() {
	if a.cfg.EnableProfiler {
		a.mux.HandleFunc("/prof", a.profileCPU)
	}
	a.mux.HandleFunc("/api/kill", a.suicide)
	a.mux.HandleFunc("/api/stats", a.getStats)
	a.mux.HandleFunc("/api/config", a.handleConfig)
	a.mux.HandleFunc("/api/colour", a.handleColour)
	a.mux.HandleFunc("POST /api/reload", a.handleReload)
	a.mux.HandleFunc("/api/ws", a.handleWebsocket)
	a.mux.Handle("/metrics", metrics.Handler())
	a.mux.HandleFunc("/swagger/doc.json", a.getSwaggerSpec)
	a.mux.Handle("/swagger/", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))
}

func (a *Api) Serve() error {
	return a.srv.ListenAndServe()
}

// Handler exposes the mux, mostly so tests can drive the api without a
// listening socket.
func (a *Api) Handler() http.Handler {
	return a.mux
}

// ServeInBackground starts the api on its own goroutine. A nil cfg
// means the api is disabled and nil is returned.
func ServeInBackground(scn *scene.Scene, cfg *config.ApiCfg) *Api {
	if cfg == nil {
		return nil
	}
	a := New(cfg, scn)
	go func() {
		slog.Info(fmt.Sprintf("serving api on %s", cfg.Bind), "module", "api")
		err := a.Serve()
		if err != nil && err != http.ErrServerClosed {
			slog.Error(fmt.Sprintf("api server failed: %s", err), "module", "api")
		}
	}()
	return a
}

// @Summary	Fetch the current frame and shader-build statistics
// @Router		/api/stats [get]
// @Tags		base
// @Produce	json
// @Success	200	{object}	stats.Snapshot
func (a *Api) getStats(w http.ResponseWriter, _ *http.Request) {
	encoder := json.NewEncoder(w)
	err := encoder.Encode(a.Stats.Snapshot())
	if err != nil {
		http.Error(w, fmt.Sprintf("could not encode stats: %s", err), http.StatusInternalServerError)
		return
	}
}

type Config struct {
	PulseColour      string  `json:"pulse_colour"`
	AnimationEnabled bool    `json:"animation_enabled"`
	AnimationSpeed   float32 `json:"animation_speed"`
}

// @Summary	Fetch the current viewer configuration
// @Router		/api/config [get]
// @Tags		base
// @Produce	json
// @Success	200	{object}	Config
func (a *Api) handleConfig(w http.ResponseWriter, _ *http.Request) {
	result := &Config{
		PulseColour:      a.scene.PulseColour().Hex(),
		AnimationEnabled: a.scene.AnimationEnabled(),
		AnimationSpeed:   a.scene.Speed(),
	}
	encoder := json.NewEncoder(w)
	err := encoder.Encode(result)
	if err != nil {
		http.Error(w, fmt.Sprintf("could not encode config: %s", err), http.StatusInternalServerError)
		return
	}
}

// @Summary	Request a rebuild of the shader program from its sources
// @Router		/api/reload [post]
// @Tags		shaders
// @Success	200
func (a *Api) handleReload(w http.ResponseWriter, _ *http.Request) {
	a.scene.RequestReload()
	_, err := fmt.Fprintf(w, "\"ok\"\n")
	if err != nil {
		slog.Error(fmt.Sprintf("could not write response: %s", err), "module", "api")
		return
	}
}

// @Summary	Shut the viewer down
// @Router		/api/kill [post]
// @Tags		base
// @Success	200
func (a *Api) suicide(w http.ResponseWriter, _ *http.Request) {
	slog.Info("shutting down as per api request", "module", "api")
	a.scene.RequestShutdown()
	_, err := fmt.Fprintf(w, "\"ok\"\n")
	if err != nil {
		slog.Error(fmt.Sprintf("could not write response: %s", err), "module", "api")
		return
	}
}

func (a *Api) profileCPU(w http.ResponseWriter, _ *http.Request) {
	err := pprof.StartCPUProfile(w)
	if err != nil {
		http.Error(w, fmt.Sprintf("could not start CPU profile: %s", err), http.StatusInternalServerError)
		return
	}
	time.Sleep(10 * time.Second)
	pprof.StopCPUProfile()
}

func (a *Api) getSwaggerSpec(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_, err := w.Write(swaggerSpec)
	if err != nil {
		slog.Error(fmt.Sprintf("could not write swagger spec: %s", err), "module", "api")
		return
	}
}
