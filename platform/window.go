package platform

import (
	"fmt"
	"log/slog"
	"runtime"

	"github.com/go-gl/glfw/v3.3/glfw"

	"deserted-home/core"
)

// GLFW and GL calls must stay on the main thread.
func init() {
	runtime.LockOSThread()
}

type Window struct {
	Handle *glfw.Window
	Width  int
	Height int
	Title  string

	fbWidth   int
	fbHeight  int
	refocused bool
	log       *slog.Logger
}

// NewWindow creates the window and makes a GL 4.1 core context current on
// the calling thread. The cursor is captured for mouse look.
func NewWindow(config core.WindowConfig, log *slog.Logger) (*Window, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize GLFW: %w", err)
	}

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.ScaleToMonitor, glfw.True)
	glfw.WindowHint(glfw.SRGBCapable, glfw.True)
	glfw.WindowHint(glfw.Samples, config.Samples)

	handle, err := glfw.CreateWindow(config.Width, config.Height, config.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("failed to create window: %w", err)
	}
	handle.MakeContextCurrent()
	if config.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}
	handle.SetInputMode(glfw.CursorMode, glfw.CursorDisabled)

	window := &Window{
		Handle: handle,
		Width:  config.Width,
		Height: config.Height,
		Title:  config.Title,
		log:    log,
	}
	window.fbWidth, window.fbHeight = handle.GetFramebufferSize()

	handle.SetSizeCallback(func(w *glfw.Window, width, height int) {
		window.Width = width
		window.Height = height
		window.log.Info("window resized", "width", width, "height", height)
	})
	handle.SetFramebufferSizeCallback(func(w *glfw.Window, width, height int) {
		window.fbWidth = width
		window.fbHeight = height
	})
	handle.SetFocusCallback(func(w *glfw.Window, focused bool) {
		if focused {
			window.refocused = true
		}
		window.log.Debug("window focus", "focused", focused)
	})

	return window, nil
}

func (w *Window) ShouldClose() bool {
	return w.Handle.ShouldClose()
}

func (w *Window) SetShouldClose(v bool) {
	w.Handle.SetShouldClose(v)
}

func (w *Window) PollEvents() {
	glfw.PollEvents()
}

func (w *Window) SwapBuffers() {
	w.Handle.SwapBuffers()
}

// Size returns the live framebuffer size in pixels, which differs from
// the window size on HiDPI displays.
func (w *Window) Size() (int, int) {
	return w.fbWidth, w.fbHeight
}

// Time returns seconds since GLFW was initialised.
func (w *Window) Time() float64 {
	return glfw.GetTime()
}

func (w *Window) Destroy() {
	w.Handle.Destroy()
	glfw.Terminate()
}

func (w *Window) IsKeyPressed(key int) bool {
	return w.Handle.GetKey(glfw.Key(key)) == glfw.Press
}

func (w *Window) SetTitle(title string) {
	w.Handle.SetTitle(title)
	w.Title = title
}

func (w *Window) GetCursorPos() (float64, float64) {
	return w.Handle.GetCursorPos()
}

// Refocused reports whether the window regained focus since the last call.
func (w *Window) Refocused() bool {
	r := w.refocused
	w.refocused = false
	return r
}
