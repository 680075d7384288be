package scenebuild

import (
	"os"
	"path/filepath"
	"testing"

	"voxtrace/material"
	remath "voxtrace/math"
	"voxtrace/palette"
	"voxtrace/voxel"
)

func writeLayer(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatalf("write layer %s: %v", name, err)
	}
}

func unitCubeSize() remath.Vec3 {
	return remath.Vec3{X: 1, Y: 1, Z: 1}
}

func TestLoadASCIILayersPlacesSolidColumns(t *testing.T) {
	dir := t.TempDir()
	writeLayer(t, dir, "layer0.txt", "X X")

	cubeSize := unitCubeSize()
	params := DefaultParams(cubeSize)
	pal := palette.New()

	objects, err := LoadASCIILayers(dir, params, pal, material.Stone())
	if err != nil {
		t.Fatalf("LoadASCIILayers: %v", err)
	}
	if len(objects) != 2 {
		t.Fatalf("expected 2 solid cubes (the space should be skipped), got %d", len(objects))
	}

	xs := map[float32]bool{}
	for _, obj := range objects {
		c := obj.(voxel.Cube)
		center := c.Min.Add(c.Max).Mul(0.5)
		xs[center.X] = true
		if center.Y != -0.5 {
			t.Errorf("expected Y center -0.5 (Y0 for a unit cube), got %v", center.Y)
		}
	}
	if !xs[-1] || !xs[1] {
		t.Errorf("expected cubes centered at X=-1 and X=1, got centers %v", xs)
	}
}

func TestLoadASCIILayersStacksMultipleFilesByName(t *testing.T) {
	dir := t.TempDir()
	writeLayer(t, dir, "0.txt", "X")
	writeLayer(t, dir, "1.txt", "X")

	cubeSize := unitCubeSize()
	params := DefaultParams(cubeSize)
	pal := palette.New()

	objects, err := LoadASCIILayers(dir, params, pal, material.Stone())
	if err != nil {
		t.Fatalf("LoadASCIILayers: %v", err)
	}
	if len(objects) != 2 {
		t.Fatalf("expected one cube per layer, got %d", len(objects))
	}

	ys := map[float32]bool{}
	for _, obj := range objects {
		c := obj.(voxel.Cube)
		center := c.Min.Add(c.Max).Mul(0.5)
		ys[center.Y] = true
	}
	if !ys[-0.5] || !ys[0.5] {
		t.Errorf("expected layers stacked at Y=-0.5 and Y=0.5, got %v", ys)
	}
}

func TestLoadASCIILayersUsesPaletteTemplate(t *testing.T) {
	dir := t.TempDir()
	writeLayer(t, dir, "layer0.txt", "G")

	cubeSize := unitCubeSize()
	params := DefaultParams(cubeSize)
	pal := palette.New()
	pal.Set('G', palette.MaterialOnly(material.Grass()))

	objects, err := LoadASCIILayers(dir, params, pal, material.Stone())
	if err != nil {
		t.Fatalf("LoadASCIILayers: %v", err)
	}
	if len(objects) != 1 {
		t.Fatalf("expected 1 cube, got %d", len(objects))
	}
	c := objects[0].(voxel.Cube)
	if c.Mat != material.Grass() {
		t.Errorf("expected the palette's Grass template, got %+v", c.Mat)
	}
}
