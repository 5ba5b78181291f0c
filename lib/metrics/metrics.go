package metrics

import (
	"errors"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/glintproject/glint/lib/rendering/shaders"
)

var (
	FramesRendered = promauto.NewCounter(prometheus.CounterOpts{
		Name: "glint_frames_rendered_total",
		Help: "Total number of frames drawn and presented",
	})
	ShaderBuilds = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "glint_shader_builds_total",
		Help: "Total number of shader program build attempts by result",
	}, []string{"result"})
	ShaderReloads = promauto.NewCounter(prometheus.CounterOpts{
		Name: "glint_shader_reloads_total",
		Help: "Total number of successful shader hot reloads",
	})
)

// RecordBuild classifies a Build outcome under the result label:
// ok, compile_vertex, compile_fragment, link, or other.
func RecordBuild(err error) {
	ShaderBuilds.WithLabelValues(buildResult(err)).Inc()
}

func buildResult(err error) string {
	var compileErr *shaders.CompileError
	var linkErr *shaders.LinkError

	switch {
	case err == nil:
		return "ok"
	case errors.As(err, &compileErr):
		return "compile_" + compileErr.Stage.String()
	case errors.As(err, &linkErr):
		return "link"
	}
	return "other"
}

// Handler should usually be mounted at /metrics
func Handler() http.Handler {
	return promhttp.Handler()
}
