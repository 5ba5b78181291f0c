package scene

import (
	"sync"
	"sync/atomic"

	"github.com/glintproject/glint/lib/config"
	"github.com/glintproject/glint/lib/stats"
	"github.com/glintproject/glint/lib/utils"
)

// Scene is the shared mutable state of the viewer: everything the api,
// the keyboard callbacks and the render loop exchange. It deliberately
// holds no GL handles, so every writer except the render loop can live
// on another goroutine.
type Scene struct {
	Stats *stats.Stats

	mu      sync.Mutex
	pulse   utils.Colour
	animate bool
	speed   float32

	shutdown atomic.Bool
	reload   chan struct{}
}

func New(cfg *config.Config) *Scene {
	enabled := true
	if cfg.Animation.Enabled != nil {
		enabled = *cfg.Animation.Enabled
	}

	return &Scene{
		Stats:   stats.New(),
		pulse:   utils.ColourParse(cfg.PulseColour),
		animate: enabled,
		speed:   cfg.Animation.Speed,
		reload:  make(chan struct{}, 1),
	}
}

func (s *Scene) PulseColour() utils.Colour {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pulse
}

func (s *Scene) SetPulseColour(c utils.Colour) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pulse = c
}

func (s *Scene) AnimationEnabled() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.animate
}

// ToggleAnimation flips the pulse animation and reports the new state.
func (s *Scene) ToggleAnimation() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.animate = !s.animate
	return s.animate
}

func (s *Scene) Speed() float32 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.speed
}

// RequestReload schedules a shader rebuild. A request that lands while
// one is already pending folds into it.
func (s *Scene) RequestReload() {
	select {
	case s.reload <- struct{}{}:
	default:
	}
}

// Reloads is drained by the render loop once per frame.
func (s *Scene) Reloads() <-chan struct{} {
	return s.reload
}

func (s *Scene) RequestShutdown() {
	s.shutdown.Store(true)
}

func (s *Scene) ShutdownRequested() bool {
	return s.shutdown.Load()
}
