package kbdctl

import (
	"log/slog"

	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/glintproject/glint/lib/scene"
	"github.com/glintproject/glint/lib/windowsink"
)

// SetupShortcutKeys wires the viewer shortcuts onto the window:
// Esc / Ctrl+Shift+Q quit, Space pauses the pulse, R forces a shader
// rebuild.
func SetupShortcutKeys(scn *scene.Scene, ws *windowsink.WindowSink) {
	ws.Window.SetKeyCallback(keyCallback(scn))
}

func Poll() {
	glfw.PollEvents()
}

func keyCallback(scn *scene.Scene) func(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	return func(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		if action == glfw.Release {
			if key == glfw.KeyQ &&
				mods&glfw.ModControl != 0 &&
				mods&glfw.ModShift != 0 {
				slog.Info("told to quit, exiting", "module", "kbdctl")
				scn.RequestShutdown()
			}
		}
		if action != glfw.Press {
			return
		}
		switch key {
		case glfw.KeyEscape:
			scn.RequestShutdown()
		case glfw.KeySpace:
			if scn.ToggleAnimation() {
				slog.Info("pulse animation resumed", "module", "kbdctl")
			} else {
				slog.Info("pulse animation paused", "module", "kbdctl")
			}
		case glfw.KeyR:
			slog.Info("shader rebuild requested", "module", "kbdctl")
			scn.RequestReload()
		}
	}
}
