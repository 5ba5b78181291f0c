package viewer

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/glintproject/glint/lib/api"
	"github.com/glintproject/glint/lib/config"
	"github.com/glintproject/glint/lib/kbdctl"
	"github.com/glintproject/glint/lib/metrics"
	"github.com/glintproject/glint/lib/rendering"
	"github.com/glintproject/glint/lib/rendering/shaders"
	"github.com/glintproject/glint/lib/scene"
	"github.com/glintproject/glint/lib/utils"
	"github.com/glintproject/glint/lib/windowsink"
)

const glslVersion = 410

// MakeWindowAndView runs the whole viewer: window and context creation,
// shader program build, then the render loop until shutdown is
// requested. Must run on the locked main thread.
func MakeWindowAndView(cfg *config.Config) error {
	scn := scene.New(cfg)

	sink := windowsink.New(&cfg.Window)
	if err := sink.Start(); err != nil {
		return fmt.Errorf("could not create window: %w", err)
	}
	defer sink.Shutdown()

	if err := rendering.Init(); err != nil {
		return fmt.Errorf("could not initialise renderer: %w", err)
	}
	sink.LogBanner()

	shaderer, err := shaders.NewShaderer()
	if err != nil {
		return fmt.Errorf("could not get shaders: %w", err)
	}

	shaderData := &shaders.ShaderData{
		GLSLVersion:    glslVersion,
		FallbackColour: utils.ColourParse(cfg.PulseColour),
	}

	vertex, fragment, err := shaderer.PipelineSources(cfg.Pipeline, shaderData)
	if err != nil {
		return err
	}

	program, err := shaders.Build(vertex, fragment)
	metrics.RecordBuild(err)
	scn.Stats.RecordBuild(err)
	if err != nil {
		return fmt.Errorf("could not build shader program: %w", err)
	}

	glvars := rendering.NewGLVars(program, utils.ColourParse(cfg.ClearColour))
	glvars.Start()
	defer glvars.Shutdown()

	kbdctl.SetupShortcutKeys(scn, sink)
	api.ServeInBackground(scn, cfg.Api)
	startWatcher(cfg.Pipeline, scn)

	var deltaTimer utils.DeltaTimer
	elapsed := float64(0)
	for !scn.ShutdownRequested() {
		dt := deltaTimer.Next()
		elapsed += dt.Seconds()

		select {
		case <-scn.Reloads():
			rebuild(shaderer, cfg.Pipeline, shaderData, glvars, scn)
		default:
		}

		glvars.StartFrame()

		colour := scn.PulseColour()
		if scn.AnimationEnabled() {
			colour = colour.Scaled(pulse(elapsed, float64(scn.Speed())))
		}
		glvars.SetPulseColour(colour)
		glvars.Draw()

		metrics.FramesRendered.Inc()

		sink.SwapBuffers()
		if sink.ShouldClose() {
			scn.RequestShutdown()
		}

		// Maintenance
		scn.Stats.Update()
		kbdctl.Poll()
	}

	return nil
}

// pulse maps elapsed seconds onto a brightness factor in [0.25, 1.25].
// Scaled clamps the overshoot, which keeps the peak on the configured
// colour for a quarter of each cycle.
func pulse(elapsed, speed float64) float32 {
	return float32(math.Sin(2*math.Pi*elapsed*speed)/2 + 0.75)
}

func startWatcher(pipeline *config.PipelineCfg, scn *scene.Scene) {
	if pipeline == nil || !pipeline.Watch {
		return
	}
	w, err := shaders.NewWatcher(string(pipeline.Vertex), string(pipeline.Fragment))
	if err != nil {
		slog.Warn(fmt.Sprintf("shader watching disabled: %s", err), "module", "viewer")
		return
	}
	go func() {
		for range w.Reload {
			scn.RequestReload()
		}
	}()
}

// rebuild swaps in a freshly built program. On failure the previous
// program stays active and only the diagnostics are reported.
func rebuild(shaderer *shaders.Shaderer, pipeline *config.PipelineCfg, data *shaders.ShaderData, glvars *rendering.GLVars, scn *scene.Scene) {
	vertex, fragment, err := shaderer.PipelineSources(pipeline, data)
	if err != nil {
		slog.Error(fmt.Sprintf("could not get shader sources: %s", err), "module", "viewer")
		return
	}

	program, err := shaders.Build(vertex, fragment)
	metrics.RecordBuild(err)
	scn.Stats.RecordBuild(err)
	if err != nil {
		slog.Error(fmt.Sprintf("shader rebuild failed, keeping previous program: %s", err), "module", "viewer")
		return
	}

	glvars.SwapProgram(program)
	metrics.ShaderReloads.Inc()
	slog.Info("shader program rebuilt", "module", "viewer")
}
