package editor

import (
	"fmt"

	"voxtrace/core"
	"voxtrace/light"
	remath "voxtrace/math"
	"voxtrace/palette"
	"voxtrace/scene"
	"voxtrace/shade"
	"voxtrace/skybox"
	"voxtrace/voxel"
	"voxtrace/world"
)

const (
	orbitSpeed     = 0.02
	zoomSpeed      = 0.2
	dirRotSpeed    = 0.01
	pointMoveSpeed = 0.15
)

// Editor is the top-level block-placement editor state machine: camera
// orbit, light controls, palette cycling, undo history, and mouse-driven
// block place/remove. Grounded on the teacher's editor.go Update/
// handleShortcuts/handleCameraControls shape, with mesh selection and
// transform tools replaced by voxel block placement.
type Editor struct {
	Window  *core.Window
	Input   *InputManager
	World   *world.World
	Camera  *scene.Camera
	Shade   *shade.Scene
	History *History

	Palette      *palette.Palette
	PaletteChars []byte
	paletteIdx   int
	DefaultMat   palette.CubeTemplate

	Skyboxes []*skybox.Skybox
	skyIdx   int

	StatusText string
}

func NewEditor(window *core.Window, w *world.World, cam *scene.Camera, sc *shade.Scene, pal *palette.Palette, paletteChars []byte, defaultTemplate palette.CubeTemplate) *Editor {
	return &Editor{
		Window:       window,
		Input:        NewInputManager(window),
		World:        w,
		Camera:       cam,
		Shade:        sc,
		History:      NewHistory(200),
		Palette:      pal,
		PaletteChars: paletteChars,
		DefaultMat:   defaultTemplate,
		StatusText:   "Ready",
	}
}

// Update processes one frame of editor logic.
func (e *Editor) Update() {
	e.Input.Update()

	e.handleUndo()
	e.handlePalette()
	e.handleLightKind()
	e.handleDirectionalLight()
	e.handlePointLight()
	e.handleSkybox()
	e.handleCameraControls()
	e.handleHoverPreview()
	e.handleMouseEdit()
}

func (e *Editor) handleUndo() {
	if e.Input.IsKeyPressed(core.KeyZ) {
		if e.History.Undo() {
			e.StatusText = "Undo"
		}
	}
}

func (e *Editor) handlePalette() {
	if len(e.PaletteChars) == 0 {
		return
	}
	if e.Input.IsKeyPressed(core.KeyQ) {
		e.paletteIdx = (e.paletteIdx - 1 + len(e.PaletteChars)) % len(e.PaletteChars)
		e.StatusText = fmt.Sprintf("Block: %c", e.PaletteChars[e.paletteIdx])
	}
	if e.Input.IsKeyPressed(core.KeyE) {
		e.paletteIdx = (e.paletteIdx + 1) % len(e.PaletteChars)
		e.StatusText = fmt.Sprintf("Block: %c", e.PaletteChars[e.paletteIdx])
	}
}

func (e *Editor) currentTemplate() palette.CubeTemplate {
	if len(e.PaletteChars) == 0 {
		return e.DefaultMat
	}
	if t, ok := e.Palette.Get(e.PaletteChars[e.paletteIdx]); ok {
		return t
	}
	return e.DefaultMat
}

func (e *Editor) handleLightKind() {
	if e.Input.IsKeyPressed(core.Key1) {
		e.Shade.Light.Kind = light.Point
		e.StatusText = "Light: point"
	}
	if e.Input.IsKeyPressed(core.Key2) {
		e.Shade.Light.Kind = light.Directional
		e.StatusText = "Light: directional"
	}
}

func (e *Editor) handleDirectionalLight() {
	if e.Shade.Light.Kind != light.Directional {
		return
	}
	if e.Input.IsKeyDown(core.KeyJ) {
		e.Shade.Light.YawPitch(dirRotSpeed, 0)
	}
	if e.Input.IsKeyDown(core.KeyL) {
		e.Shade.Light.YawPitch(-dirRotSpeed, 0)
	}
	if e.Input.IsKeyDown(core.KeyI) {
		e.Shade.Light.YawPitch(0, dirRotSpeed)
	}
	if e.Input.IsKeyDown(core.KeyK) {
		e.Shade.Light.YawPitch(0, -dirRotSpeed)
	}
}

func (e *Editor) handlePointLight() {
	if e.Shade.Light.Kind != light.Point {
		return
	}
	if e.Input.IsKeyDown(core.KeyW) {
		e.Shade.Light.Translate(remath.Vec3{Z: -pointMoveSpeed})
	}
	if e.Input.IsKeyDown(core.KeyS) {
		e.Shade.Light.Translate(remath.Vec3{Z: pointMoveSpeed})
	}
	if e.Input.IsKeyDown(core.KeyA) {
		e.Shade.Light.Translate(remath.Vec3{X: -pointMoveSpeed})
	}
	if e.Input.IsKeyDown(core.KeyD) {
		e.Shade.Light.Translate(remath.Vec3{X: pointMoveSpeed})
	}
	if e.Input.IsKeyDown(core.KeyR) {
		e.Shade.Light.Translate(remath.Vec3{Y: pointMoveSpeed})
	}
	if e.Input.IsKeyDown(core.KeyF) {
		e.Shade.Light.Translate(remath.Vec3{Y: -pointMoveSpeed})
	}
}

func (e *Editor) handleSkybox() {
	if len(e.Skyboxes) == 0 {
		return
	}
	if e.Input.IsKeyPressed(core.Key3) {
		e.skyIdx = (e.skyIdx - 1 + len(e.Skyboxes)) % len(e.Skyboxes)
		e.Shade.Sky = e.Skyboxes[e.skyIdx]
	}
	if e.Input.IsKeyPressed(core.Key4) {
		e.skyIdx = (e.skyIdx + 1) % len(e.Skyboxes)
		e.Shade.Sky = e.Skyboxes[e.skyIdx]
	}
}

func (e *Editor) handleCameraControls() {
	if e.Input.IsKeyDown(core.KeyLeft) {
		e.Camera.Orbit(orbitSpeed, 0)
	}
	if e.Input.IsKeyDown(core.KeyRight) {
		e.Camera.Orbit(-orbitSpeed, 0)
	}
	if e.Input.IsKeyDown(core.KeyUp) {
		e.Camera.Orbit(0, orbitSpeed)
	}
	if e.Input.IsKeyDown(core.KeyDown) {
		e.Camera.Orbit(0, -orbitSpeed)
	}
	if e.Input.IsKeyDown(core.KeyPageUp) {
		e.Camera.Zoom(-zoomSpeed)
	}
	if e.Input.IsKeyDown(core.KeyPageDown) {
		e.Camera.Zoom(zoomSpeed)
	}
}

// handleHoverPreview highlights the block under the cursor each frame so
// the renderer can tint it without the editor owning any pixels itself.
func (e *Editor) handleHoverPreview() {
	origin, dir := MouseRay(float32(e.Input.MouseX), float32(e.Input.MouseY),
		float32(e.Window.Width), float32(e.Window.Height), e.Camera)
	_, _, index, ok := Pick(e.World, origin, dir)
	e.Shade.HasPreview = ok
	if ok {
		e.Shade.PreviewIndex = index
	}
}

func (e *Editor) handleMouseEdit() {
	origin, dir := MouseRay(float32(e.Input.MouseX), float32(e.Input.MouseY),
		float32(e.Window.Width), float32(e.Window.Height), e.Camera)
	point, normal, index, ok := Pick(e.World, origin, dir)
	if !ok {
		return
	}

	if e.Input.IsMousePressed(MouseLeft) {
		center := AdjacentCellCenter(point, normal, e.World.CubeSize)
		obj := voxel.FromTemplate(center, e.World.CubeSize, e.currentTemplate())
		e.History.Do(NewPlaceBlockCommand(e.World, obj))
		e.StatusText = "Placed block"
	}

	if e.Input.IsMousePressed(MouseRight) {
		e.History.Do(NewRemoveBlockCommand(e.World, index))
		e.StatusText = "Removed block"
	}
}
