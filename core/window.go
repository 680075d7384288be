package core

import (
	"fmt"
	"runtime"

	"github.com/go-gl/gl/v2.1/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
)

func init() {
	runtime.LockOSThread()
}

// Window wraps a GLFW window hosting an OpenGL context. The core raytracer
// never touches it directly; present draws the CPU framebuffer into its
// GL context each frame, and editor polls it for input.
type Window struct {
	Handle *glfw.Window
	Width  int
	Height int
	Title  string
}

type WindowConfig struct {
	Width      int
	Height     int
	Title      string
	Resizable  bool
	VSync      bool
	Fullscreen bool
}

func DefaultWindowConfig() WindowConfig {
	return WindowConfig{
		Width:      1280,
		Height:     720,
		Title:      "voxtrace",
		Resizable:  true,
		VSync:      true,
		Fullscreen: false,
	}
}

func NewWindow(config WindowConfig) (*Window, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize GLFW: %w", err)
	}

	glfw.WindowHint(glfw.ContextVersionMajor, 2)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.Resizable, boolToInt(config.Resizable))

	monitor := (*glfw.Monitor)(nil)
	if config.Fullscreen {
		monitor = glfw.GetPrimaryMonitor()
	}

	handle, err := glfw.CreateWindow(config.Width, config.Height, config.Title, monitor, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	handle.MakeContextCurrent()
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}
	if config.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}

	window := &Window{
		Handle: handle,
		Width:  config.Width,
		Height: config.Height,
		Title:  config.Title,
	}

	handle.SetSizeCallback(func(w *glfw.Window, width, height int) {
		window.Width = width
		window.Height = height
	})

	return window, nil
}

func (w *Window) ShouldClose() bool {
	return w.Handle.ShouldClose()
}

func (w *Window) PollEvents() {
	glfw.PollEvents()
}

func (w *Window) SwapBuffers() {
	w.Handle.SwapBuffers()
}

func (w *Window) GetFramebufferSize() (int, int) {
	return w.Handle.GetFramebufferSize()
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

func (w *Window) IsMouseButtonPressed(button int) bool {
	return w.Handle.GetMouseButton(glfw.MouseButton(button)) == glfw.Press
}

func (w *Window) GetCursorPos() (float64, float64) {
	return w.Handle.GetCursorPos()
}

// ScrollCallback is the type for scroll event handlers
type ScrollCallback func(xoff, yoff float64)

func (w *Window) SetScrollCallback(cb ScrollCallback) {
	w.Handle.SetScrollCallback(func(win *glfw.Window, xoff, yoff float64) {
		cb(xoff, yoff)
	})
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// Key and mouse button constants used by the editor's input bindings
// (orbit, zoom, light controls, block placement). Trimmed to the subset
// the editor polls; Key0 and KeyEscape are polled but bound to nothing.
const (
	Key0        = int(glfw.Key0)
	Key1        = int(glfw.Key1)
	Key2        = int(glfw.Key2)
	Key3        = int(glfw.Key3)
	Key4        = int(glfw.Key4)
	KeyA        = int(glfw.KeyA)
	KeyD        = int(glfw.KeyD)
	KeyE        = int(glfw.KeyE)
	KeyF        = int(glfw.KeyF)
	KeyI        = int(glfw.KeyI)
	KeyJ        = int(glfw.KeyJ)
	KeyK        = int(glfw.KeyK)
	KeyL        = int(glfw.KeyL)
	KeyQ        = int(glfw.KeyQ)
	KeyR        = int(glfw.KeyR)
	KeyS        = int(glfw.KeyS)
	KeyW        = int(glfw.KeyW)
	KeyZ        = int(glfw.KeyZ)
	KeyEscape   = int(glfw.KeyEscape)
	KeyRight    = int(glfw.KeyRight)
	KeyLeft     = int(glfw.KeyLeft)
	KeyDown     = int(glfw.KeyDown)
	KeyUp       = int(glfw.KeyUp)
	KeyPageUp   = int(glfw.KeyPageUp)
	KeyPageDown = int(glfw.KeyPageDown)

	MouseButtonLeft  = int(glfw.MouseButtonLeft)
	MouseButtonRight = int(glfw.MouseButtonRight)
)
