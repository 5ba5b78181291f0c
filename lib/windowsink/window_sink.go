package windowsink

import (
	"fmt"
	"log/slog"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/glintproject/glint/lib/config"
)

// WindowSink owns the GLFW window and its GL context. Start must run on
// the locked render thread.
type WindowSink struct {
	Window *glfw.Window
	cfg    *config.WindowCfg
}

func New(cfg *config.WindowCfg) *WindowSink {
	return &WindowSink{cfg: cfg}
}

func (w *WindowSink) Start() error {
	if w.Window != nil {
		return nil
	}

	slog.Debug("initializing window", "module", "windowsink")
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("failed to initialize glfw: %w", err)
	}

	resizable := glfw.False
	if w.cfg.Resizable {
		resizable = glfw.True
	}
	glfw.WindowHint(glfw.Resizable, resizable)
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	window, err := glfw.CreateWindow(w.cfg.Width, w.cfg.Height, w.cfg.Title, nil, nil)
	if err != nil {
		return fmt.Errorf("failed to create window: %w", err)
	}

	window.MakeContextCurrent()
	glfw.SwapInterval(w.swapInterval())

	w.Window = window
	return nil
}

// LogBanner reports the GL strings of the freshly current context. Only
// valid after rendering.Init has loaded the function pointers.
func (w *WindowSink) LogBanner() {
	vendor := gl.GoStr(gl.GetString(gl.VENDOR))
	renderer := gl.GoStr(gl.GetString(gl.RENDERER))
	version := gl.GoStr(gl.GetString(gl.VERSION))

	slog.Info(
		fmt.Sprintf("OpenGL %s / %s / %s", vendor, renderer, version),
		"module", "windowsink",
	)
}

func (w *WindowSink) ShouldClose() bool {
	return w.Window.ShouldClose()
}

func (w *WindowSink) SwapBuffers() {
	w.Window.SwapBuffers()
}

func (w *WindowSink) Shutdown() {
	glfw.Terminate()
}

func (w *WindowSink) swapInterval() int {
	if w.cfg.VSync == nil {
		return 1
	}
	return *w.cfg.VSync
}
