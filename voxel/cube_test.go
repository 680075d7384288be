package voxel

import (
	"math"
	"testing"

	"voxtrace/material"
	remath "voxtrace/math"
)

func unitCube() Cube {
	return Cube{
		Min: remath.Vec3{X: -0.5, Y: -0.5, Z: -0.5},
		Max: remath.Vec3{X: 0.5, Y: 0.5, Z: 0.5},
		Mat: material.Stone(),
	}
}

func TestRayIntersectFromOutsideHitsNearFace(t *testing.T) {
	c := unitCube()
	hit := c.RayIntersect(remath.Vec3{X: 0, Y: 0, Z: 5}, remath.Vec3{X: 0, Y: 0, Z: -1})
	if !hit.Hit {
		t.Fatalf("expected a hit")
	}
	if math.Abs(float64(hit.Distance-4.5)) > 1e-5 {
		t.Errorf("expected distance 4.5, got %v", hit.Distance)
	}
	if hit.Normal != (remath.Vec3{X: 0, Y: 0, Z: 1}) {
		t.Errorf("expected +Z outward normal, got %v", hit.Normal)
	}
}

func TestRayIntersectFromInsideExitsOutward(t *testing.T) {
	c := unitCube()
	hit := c.RayIntersect(remath.Vec3{X: 0, Y: 0, Z: 0}, remath.Vec3{X: 0, Y: 0, Z: 1})
	if !hit.Hit {
		t.Fatalf("expected a hit")
	}
	if math.Abs(float64(hit.Distance-0.5)) > 1e-5 {
		t.Errorf("expected exit distance 0.5, got %v", hit.Distance)
	}
	if hit.Normal != (remath.Vec3{X: 0, Y: 0, Z: 1}) {
		t.Errorf("expected outward +Z normal at exit, got %v", hit.Normal)
	}
}

func TestRayIntersectMiss(t *testing.T) {
	c := unitCube()
	hit := c.RayIntersect(remath.Vec3{X: 5, Y: 5, Z: 5}, remath.Vec3{X: 0, Y: 0, Z: -1})
	if hit.Hit {
		t.Errorf("expected a miss, got hit at %v", hit.Point)
	}
}

func TestUVFaceCenterIsHalfHalf(t *testing.T) {
	c := unitCube()
	hit := c.RayIntersect(remath.Vec3{X: 0, Y: 0, Z: 5}, remath.Vec3{X: 0, Y: 0, Z: -1})
	if !hit.Hit {
		t.Fatalf("expected a hit")
	}
	// +Z face center: u=(Px-minx)/sx=(0-(-0.5))/1=0.5, v=(maxy-Py)/sy=0.5
	// No FaceStyle is attached so diffuse is untouched; verify via a
	// directly computed UV using the cube's own face formula instead.
	u := (hit.Point.X - c.Min.X) / (c.Max.X - c.Min.X)
	v := (c.Max.Y - hit.Point.Y) / (c.Max.Y - c.Min.Y)
	if math.Abs(float64(u-0.5)) > 1e-5 || math.Abs(float64(v-0.5)) > 1e-5 {
		t.Errorf("expected face-center UV (0.5,0.5), got (%v,%v)", u, v)
	}
}
