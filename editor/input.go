// Package editor implements the block-placement editor state machine:
// undo/redo history, camera/light controls, and mouse-driven block
// place/remove. Grounded on the teacher's editor/input.go InputManager
// shape (polled key/mouse state with a "pressed this frame" edge), keys
// trimmed to the subset core.Window actually exposes.
package editor

import (
	"voxtrace/core"
)

// InputManager tracks mouse and keyboard state for the editor, exposing
// edge-triggered "pressed" queries alongside raw "down" state.
type InputManager struct {
	MouseX, MouseY           float64
	MouseDeltaX, MouseDeltaY float64
	lastMouseX, lastMouseY   float64
	firstFrame               bool

	mouseButtons     [3]bool
	mouseButtonsPrev [3]bool

	keys     map[int]bool
	keysPrev map[int]bool

	window *core.Window
}

const (
	MouseLeft  = core.MouseButtonLeft
	MouseRight = core.MouseButtonRight
)

// polledKeys is every key the editor ever queries; anything else is
// always reported not-down.
var polledKeys = []int{
	core.Key0, core.Key1, core.Key2, core.Key3, core.Key4,
	core.KeyA, core.KeyD, core.KeyE, core.KeyF, core.KeyI, core.KeyJ,
	core.KeyK, core.KeyL, core.KeyQ, core.KeyR, core.KeyS, core.KeyW,
	core.KeyZ, core.KeyEscape,
	core.KeyRight, core.KeyLeft, core.KeyDown, core.KeyUp,
	core.KeyPageUp, core.KeyPageDown,
}

func NewInputManager(window *core.Window) *InputManager {
	return &InputManager{
		window:     window,
		firstFrame: true,
		keys:       make(map[int]bool, len(polledKeys)),
		keysPrev:   make(map[int]bool, len(polledKeys)),
	}
}

// Update polls current state; call once per frame before reading queries.
func (im *InputManager) Update() {
	x, y := im.window.GetCursorPos()
	if im.firstFrame {
		im.lastMouseX, im.lastMouseY = x, y
		im.firstFrame = false
	}
	im.MouseDeltaX = x - im.lastMouseX
	im.MouseDeltaY = y - im.lastMouseY
	im.lastMouseX, im.lastMouseY = x, y
	im.MouseX, im.MouseY = x, y

	im.mouseButtonsPrev = im.mouseButtons
	im.mouseButtons[0] = im.window.IsMouseButtonPressed(MouseLeft)
	im.mouseButtons[1] = im.window.IsMouseButtonPressed(MouseRight)

	for k, v := range im.keys {
		im.keysPrev[k] = v
	}
	for _, k := range polledKeys {
		im.keys[k] = im.window.IsKeyPressed(k)
	}
}

func (im *InputManager) IsMouseDown(button int) bool {
	return im.buttonIndex(button) >= 0 && im.mouseButtons[im.buttonIndex(button)]
}

func (im *InputManager) IsMousePressed(button int) bool {
	i := im.buttonIndex(button)
	if i < 0 {
		return false
	}
	return im.mouseButtons[i] && !im.mouseButtonsPrev[i]
}

func (im *InputManager) buttonIndex(button int) int {
	switch button {
	case MouseLeft:
		return 0
	case MouseRight:
		return 1
	default:
		return -1
	}
}

func (im *InputManager) IsKeyDown(key int) bool {
	return im.keys[key]
}

func (im *InputManager) IsKeyPressed(key int) bool {
	return im.keys[key] && !im.keysPrev[key]
}
