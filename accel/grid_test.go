package accel

import (
	"math"
	"testing"

	"voxtrace/material"
	remath "voxtrace/math"
	"voxtrace/voxel"
)

func cubeAt(center remath.Vec3) voxel.Cube {
	return voxel.Cube{
		Min: center.Sub(remath.Vec3{X: 0.5, Y: 0.5, Z: 0.5}),
		Max: center.Add(remath.Vec3{X: 0.5, Y: 0.5, Z: 0.5}),
		Mat: material.Stone(),
	}
}

func linearScanClosest(objs []voxel.Intersectable, origin, direction remath.Vec3) voxel.Intersect {
	var best voxel.Intersect
	bestT := float32(math.Inf(1))
	for _, o := range objs {
		hit := o.RayIntersect(origin, direction)
		if hit.Hit && hit.Distance < bestT {
			best = hit
			bestT = hit.Distance
		}
	}
	return best
}

func TestGridMatchesLinearScan(t *testing.T) {
	objs := []voxel.Intersectable{
		cubeAt(remath.Vec3{X: 0, Y: 0, Z: 0}),
		cubeAt(remath.Vec3{X: 3, Y: 0, Z: 0}),
		cubeAt(remath.Vec3{X: 0, Y: 0, Z: -5}),
	}
	g := Build(objs, 1.0)

	origin := remath.Vec3{X: 0, Y: 0, Z: 10}
	direction := remath.Vec3{X: 0, Y: 0, Z: -1}

	want := linearScanClosest(objs, origin, direction)
	got := g.Trace(origin, direction)

	if got.Hit != want.Hit {
		t.Fatalf("Hit mismatch: grid=%v linear=%v", got.Hit, want.Hit)
	}
	if math.Abs(float64(got.Distance-want.Distance)) > 1e-4 {
		t.Errorf("distance mismatch: grid=%v linear=%v", got.Distance, want.Distance)
	}
}

func TestGridAnyHitMatchesLinearScan(t *testing.T) {
	objs := []voxel.Intersectable{
		cubeAt(remath.Vec3{X: 0, Y: 0, Z: 0}),
	}
	g := Build(objs, 1.0)

	origin := remath.Vec3{X: 0, Y: 0, Z: 10}
	direction := remath.Vec3{X: 0, Y: 0, Z: -1}

	if !g.AnyHit(origin, direction, 100) {
		t.Errorf("expected an occluder between origin and maxT")
	}
	if g.AnyHit(origin, direction, 5) {
		t.Errorf("expected no occluder before the cube (maxT=5 stops short at distance ~9.5)")
	}
}

func TestGridMissReturnsNoHit(t *testing.T) {
	objs := []voxel.Intersectable{cubeAt(remath.Vec3{X: 0, Y: 0, Z: 0})}
	g := Build(objs, 1.0)
	hit := g.Trace(remath.Vec3{X: 10, Y: 10, Z: 10}, remath.Vec3{X: 0, Y: 0, Z: -1})
	if hit.Hit {
		t.Errorf("expected a miss far from any object")
	}
}
