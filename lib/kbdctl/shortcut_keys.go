package kbdctl

import (
	"log/slog"

	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/fosdem/spritekit/lib/window"
)

// SetupShortcutKeys installs the global shortcuts on w. Ctrl+Shift+Q calls
// quit once the keys are released.
func SetupShortcutKeys(w *window.Window, quit func()) {
	w.Handle().SetKeyCallback(keyCallback(quit))
}

func Poll() {
	glfw.PollEvents()
}

func keyCallback(quit func()) glfw.KeyCallback {
	logger := slog.Default().With(slog.String("module", "kbdctl"))
	return func(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		if action != glfw.Release {
			return
		}
		if key == glfw.KeyQ &&
			mods&glfw.ModControl != 0 &&
			mods&glfw.ModShift != 0 {
			logger.Info("told to quit, exiting")
			quit()
		}
	}
}
