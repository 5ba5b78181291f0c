package stats

import (
	"sync"
	"time"
)

// Snapshot is the wire form of the viewer stats, as served by the api
// and pushed over the websocket.
type Snapshot struct {
	FramesDrawn         uint64  `json:"frames_drawn"`
	FPS                 uint64  `json:"fps"`
	Uptime              float64 `json:"uptime"`
	ShaderBuilds        uint64  `json:"shader_builds"`
	ShaderBuildFailures uint64  `json:"shader_build_failures"`
	WsClients           int     `json:"ws_clients"`
}

// Stats is written by the render loop once per frame and read by the
// api goroutines, hence the lock.
type Stats struct {
	mu   sync.Mutex
	snap Snapshot

	frameCounter uint64
	frameTimer   time.Time
	start        time.Time
}

func New() *Stats {
	s := &Stats{}
	s.start = time.Now()
	s.frameTimer = s.start
	return s
}

// Update advances the per-frame counters; call once per presented frame.
func (s *Stats) Update() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.snap.FramesDrawn++
	s.frameCounter++
	if time.Since(s.frameTimer) > 1*time.Second {
		s.snap.FPS = s.frameCounter
		s.frameCounter = 0
		s.frameTimer = time.Now()
	}

	s.snap.Uptime = float64(time.Since(s.start).Nanoseconds()) / 1e9
}

func (s *Stats) RecordBuild(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.snap.ShaderBuilds++
	if err != nil {
		s.snap.ShaderBuildFailures++
	}
}

func (s *Stats) SetWsClients(n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snap.WsClients = n
}

func (s *Stats) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snap
}
