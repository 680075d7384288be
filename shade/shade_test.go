package shade

import (
	"math"
	"testing"

	"voxtrace/accel"
	"voxtrace/core"
	"voxtrace/light"
	remath "voxtrace/math"
	"voxtrace/material"
	"voxtrace/voxel"
)

func singleCubeGrid(mat material.Material) *accel.UniformGrid {
	c := voxel.Cube{
		Min: remath.Vec3{X: -0.5, Y: -0.5, Z: -0.5},
		Max: remath.Vec3{X: 0.5, Y: 0.5, Z: 0.5},
		Mat: mat,
	}
	return accel.Build([]voxel.Intersectable{c}, 1)
}

func TestCastMissReturnsSky(t *testing.T) {
	sc := &Scene{
		Grid:  accel.Build(nil, 1),
		Light: light.NewPoint(remath.Vec3{X: 5, Y: 5, Z: 5}, core.ColorWhite, 1),
	}
	col := sc.Cast(remath.Vec3{X: 0, Y: 0, Z: 10}, remath.Vec3{X: 0, Y: 0, Z: 1}, 0)
	sky := skySample(remath.Vec3{X: 0, Y: 0, Z: 1})
	if col != sky {
		t.Errorf("a ray that hits nothing should return the sky color, got %v want %v", col, sky)
	}
}

func skySample(dir remath.Vec3) core.Color {
	s := &Scene{}
	return s.sky(dir)
}

func TestCastLitFaceIsBrighterThanUnlitFace(t *testing.T) {
	sc := &Scene{
		Grid:  singleCubeGrid(material.Stone()),
		Light: light.NewPoint(remath.Vec3{X: 0, Y: 0, Z: 5}, core.ColorWhite, 2),
	}

	// Ray toward the +Z face, which faces the light directly.
	lit := sc.Cast(remath.Vec3{X: 0, Y: 0, Z: 5}, remath.Vec3{X: 0, Y: 0, Z: -1}, 0)
	// Ray toward the -Z face, which faces away from the light and should
	// fall back on the shading floor term only.
	unlit := sc.Cast(remath.Vec3{X: 0, Y: 0, Z: -5}, remath.Vec3{X: 0, Y: 0, Z: 1}, 0)

	if lit.R <= unlit.R {
		t.Errorf("lit face should be brighter than the unlit face: lit=%v unlit=%v", lit, unlit)
	}
}

func TestCastAppliesPreviewMaterialOverride(t *testing.T) {
	sc := &Scene{
		Grid:            singleCubeGrid(material.Stone()),
		Light:           light.NewPoint(remath.Vec3{X: 0, Y: 0, Z: 5}, core.ColorWhite, 0.5),
		HasPreview:      true,
		PreviewIndex:    0,
		PreviewMaterial: material.Ghost(),
	}
	withGhost := sc.Cast(remath.Vec3{X: 0, Y: 0, Z: 5}, remath.Vec3{X: 0, Y: 0, Z: -1}, 0)

	sc.HasPreview = false
	withoutGhost := sc.Cast(remath.Vec3{X: 0, Y: 0, Z: 5}, remath.Vec3{X: 0, Y: 0, Z: -1}, 0)

	if withGhost == withoutGhost {
		t.Errorf("preview override should change the shaded color, got the same result %v for both", withGhost)
	}
}

func TestOffsetOriginMovesAwayFromOutgoingRay(t *testing.T) {
	point := remath.Vec3{X: 1, Y: 2, Z: 3}
	normal := remath.Vec3{X: 0, Y: 1, Z: 0}

	outward := offsetOrigin(point, normal, remath.Vec3{X: 0, Y: 1, Z: 0})
	if outward.Y <= point.Y {
		t.Errorf("offsetting along an outgoing ray should move off the surface in +normal, got %v", outward)
	}

	inward := offsetOrigin(point, normal, remath.Vec3{X: 0, Y: -1, Z: 0})
	if inward.Y >= point.Y {
		t.Errorf("offsetting along an entering ray should move off the surface in -normal, got %v", inward)
	}
}

func TestClampHelpers(t *testing.T) {
	if clamp01(-1) != 0 || clamp01(2) != 1 || clamp01(0.5) != 0.5 {
		t.Errorf("clamp01 should clamp to [0,1]")
	}
	if clampMin0(-3) != 0 || clampMin0(3) != 3 {
		t.Errorf("clampMin0 should clamp only the lower bound")
	}
	if math.Abs(float64(minf(1, 2)-1)) > 1e-6 || math.Abs(float64(minf(5, 2)-2)) > 1e-6 {
		t.Errorf("minf should return the smaller operand")
	}
}
