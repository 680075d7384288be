// Command voxtrace is the interactive CPU ray tracer for ASCII-authored
// voxel scenes: it loads a scene directory, traces it with a worker pool
// each frame, presents the result through a GPU-blitted quad, and lets
// the block-placement editor mutate the scene live. Grounded on the
// teacher's cmd/demo/main.go window-loop shape.
package main

import (
	"flag"
	"log"
	"path/filepath"

	"voxtrace/core"
	"voxtrace/editor"
	"voxtrace/light"
	remath "voxtrace/math"
	"voxtrace/material"
	"voxtrace/palette"
	"voxtrace/present"
	"voxtrace/renderer"
	"voxtrace/scene"
	"voxtrace/scenebuild"
	"voxtrace/shade"
	"voxtrace/skybox"
	"voxtrace/texture"
	"voxtrace/world"
)

func main() {
	scenePath := flag.String("scene", "scenes/default", "directory of ASCII layer .txt files")
	skyboxPath := flag.String("skybox", "", "directory of posx/negx/posy/negy/posz/negz.png faces (procedural sky if unset)")
	texturesPath := flag.String("textures", "", "directory of <char>.png face textures keyed by palette character (flat materials if unset)")
	width := flag.Int("width", 1280, "window width")
	height := flag.Int("height", 720, "window height")
	cubeSize := flag.Float64("cube-size", 1.0, "edge length of one voxel cube")
	flag.Parse()

	config := core.DefaultWindowConfig()
	config.Width, config.Height = *width, *height
	window, err := core.NewWindow(config)
	if err != nil {
		log.Fatalf("create window: %v", err)
	}
	defer window.Destroy()

	pal := defaultPalette(*texturesPath)
	size := remath.Vec3{X: float32(*cubeSize), Y: float32(*cubeSize), Z: float32(*cubeSize)}
	params := scenebuild.DefaultParams(size)

	objects, err := scenebuild.LoadASCIILayers(*scenePath, params, pal, material.Stone())
	if err != nil {
		log.Fatalf("load scene %q: %v", *scenePath, err)
	}
	log.Printf("loaded %d objects from %s", len(objects), *scenePath)

	w := world.New(size, objects)
	cam := scene.NewCamera(remath.Vec3{}, 8, 0.8, 0.5)

	sc := &shade.Scene{
		Grid:            w.Grid,
		Light:           light.NewPoint(remath.Vec3{X: 4, Y: 6, Z: 4}, core.ColorWhite, 1.0),
		PreviewMaterial: material.Ghost(),
	}

	var skyboxes []*skybox.Skybox
	if *skyboxPath != "" {
		sb, err := skybox.FromFolder(*skyboxPath)
		if err != nil {
			log.Printf("skybox %q: %v (falling back to procedural sky)", *skyboxPath, err)
		} else {
			skyboxes = append(skyboxes, sb)
			sc.Sky = sb
		}
	}

	ed := editor.NewEditor(window, w, cam, sc, pal, paletteChars(), palette.MaterialOnly(material.Stone()))
	ed.Skyboxes = skyboxes

	fb := renderer.NewFramebuffer(*width, *height)
	pr := present.New()
	defer pr.Close()

	for !window.ShouldClose() {
		window.PollEvents()
		ed.Update()
		sc.Grid = w.Grid // editor edits rebuild the grid under a new pointer

		fbWidth, fbHeight := window.GetFramebufferSize()
		if fbWidth != fb.Width || fbHeight != fb.Height {
			fb = renderer.NewFramebuffer(fbWidth, fbHeight)
		}

		renderer.Render(fb, sc, cam)
		rgba := fb.Present(nil)
		pr.Blit(fb.Width, fb.Height, rgba)
		window.SwapBuffers()
	}
}

// defaultPalette maps the ASCII scene alphabet to materials. 'X' is a
// generic stone block, 'G' grass, 'C' crate wood, 'M' metal, and 'W'
// glass; any other solid character falls back to the loader's default.
// When texturesDir holds a <char>.png for a character, that face is
// textured instead of flat-shaded; glass gets an alpha-window cutout so
// it blends with what's behind it rather than punching a hole.
func defaultPalette(texturesDir string) *palette.Palette {
	pal := palette.New()
	cache := texture.NewCache()

	entries := []struct {
		char byte
		mat  material.Material
		kind string
	}{
		{'X', material.Stone(), "normal"},
		{'G', material.Grass(), "normal"},
		{'C', material.Crate(), "normal"},
		{'M', material.Metal(), "normal"},
		{'W', material.Glass(), "window"},
	}

	for _, e := range entries {
		tpl := palette.MaterialOnly(e.mat)
		if texturesDir != "" {
			path := filepath.Join(texturesDir, string(e.char)+".png")
			if tex, err := cache.Load(path); err == nil {
				switch e.kind {
				case "window":
					tpl = palette.WithSameTextureImageAlphaWindow(e.mat, tex, 0.1)
				default:
					tpl = palette.WithSameTexture(e.mat, tex)
				}
			}
		}
		pal.Set(e.char, tpl)
	}

	return pal
}

// paletteChars is the cycling order the editor's Q/E keys step through
// when choosing what block to place next.
func paletteChars() []byte {
	return []byte{'X', 'G', 'C', 'M', 'W'}
}
