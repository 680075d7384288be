// Package voxel implements the ray-object intersection contract: the
// Intersect hit record, the Intersectable interface it is returned from,
// and the two concrete shapes (Cube, Slab) that make up a scene. Grounded
// on original_source/src/ray_intersect.rs and cube.rs.
package voxel

import (
	"voxtrace/material"
	"voxtrace/math"
)

// Intersect is the hit descriptor every Intersectable.RayIntersect
// returns. On a miss, Hit is false and the other fields are zero.
// Invariant on a hit: Distance >= 0, Normal is unit length and one of the
// six axis-aligned cardinals.
type Intersect struct {
	Hit          bool
	Point        math.Vec3
	Normal       math.Vec3
	Distance     float32
	Material     material.Material
	Coverage     float32
	ObjectIndex  int
	HasObjectIdx bool
}

// Empty reports a definitive miss (used when a styled face rejects the
// hit via cutout — the cube is invisible at that point).
func Empty() Intersect {
	return Intersect{}
}

// Intersectable is the contract the grid accelerator and shading
// integrator consume: ray-AABB intersection with styled sampling, plus a
// conservative world-space bounding box.
type Intersectable interface {
	RayIntersect(origin, direction math.Vec3) Intersect
	AABB() (min, max math.Vec3)
}
