// Package window owns a GLFW window and its OpenGL context.
package window

import (
	"fmt"
	"log/slog"

	"github.com/fosdem/spritekit/lib/config"
	"github.com/fosdem/spritekit/lib/rendering"
	"github.com/fosdem/spritekit/lib/utils"
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// Window is a single on-screen window with a current GL context. It must
// be created, used and destroyed on the main OS thread.
type Window struct {
	Title  string
	Width  int
	Height int

	handle *glfw.Window
	logger *slog.Logger
}

// New initialises GLFW, opens a window and makes its context current.
func New(cfg *config.WindowCfg) (*Window, error) {
	w := &Window{
		Title:  cfg.Title,
		Width:  cfg.Width,
		Height: cfg.Height,
		logger: slog.Default().With(slog.String("module", "window")),
	}
	w.logger.Debug(fmt.Sprintf("Initializing %dx%d window", w.Width, w.Height))

	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize glfw: %w", err)
	}

	glfw.WindowHint(glfw.Resizable, glfw.False)
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.DoubleBuffer, glfw.True)
	handle, err := glfw.CreateWindow(w.Width, w.Height, w.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("could not create window %q: %w", w.Title, err)
	}
	w.handle = handle

	w.handle.MakeContextCurrent()
	if cfg.VSync == nil || *cfg.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}

	err = rendering.Init()
	if err != nil {
		w.Destroy()
		return nil, err
	}

	// the framebuffer can be larger than the window on HiDPI screens
	fbWidth, fbHeight := w.handle.GetFramebufferSize()
	gl.Viewport(0, 0, int32(fbWidth), int32(fbHeight))

	bg := utils.ColourParse(cfg.BackgroundColour)
	gl.ClearColor(utils.ColourFloats(bg))

	return w, nil
}

// Clear clears the colour buffer.
func (w *Window) Clear() {
	gl.Clear(gl.COLOR_BUFFER_BIT)
}

// Update presents the frame and processes pending events.
func (w *Window) Update() {
	w.handle.SwapBuffers()
	glfw.PollEvents()
}

func (w *Window) ShouldClose() bool {
	return w.handle.ShouldClose()
}

func (w *Window) RequestClose() {
	w.handle.SetShouldClose(true)
}

// KeyPressed reports whether key is currently held down.
func (w *Window) KeyPressed(key glfw.Key) bool {
	return w.handle.GetKey(key) == glfw.Press
}

// Handle returns the underlying GLFW window.
func (w *Window) Handle() *glfw.Window {
	return w.handle
}

func (w *Window) Size() (int, int) {
	return w.Width, w.Height
}

// Destroy closes the window and terminates GLFW. The Window must not be
// used afterwards.
func (w *Window) Destroy() {
	if w.handle != nil {
		w.handle.Destroy()
		w.handle = nil
	}
	glfw.Terminate()
}
