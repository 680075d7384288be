// Package material holds the surface parameter record sampled by the
// shading integrator, following the teacher's "default material library"
// idiom (materials/material.go: NewMaterial plus named preset
// constructors) generalized to the raytracer's albedo-vector model.
package material

import "voxtrace/math"

// Material is an immutable surface description. Albedo is interpreted as
// (diffuse-weight, specular-weight, reflectivity, transmission-weight).
// Invariants: all fields finite, albedo channels non-negative,
// reflectivity+transmission <= 1+eps (the integrator clamps the diffuse
// residual to >= 0 rather than rejecting the material).
type Material struct {
	Diffuse         math.Vec3
	Specular        float32
	Albedo          [4]float32
	RefractiveIndex float32
}

func New(diffuse math.Vec3, specular float32, albedo [4]float32, refractiveIndex float32) Material {
	return Material{Diffuse: diffuse, Specular: specular, Albedo: albedo, RefractiveIndex: refractiveIndex}
}

// --- Default material library ---

// Stone is a matte, fully opaque, non-reflective building block.
func Stone() Material {
	return New(math.Vec3{X: 0.6, Y: 0.6, Z: 0.6}, 10, [4]float32{0.9, 0.1, 0, 0}, 1.0)
}

// Grass is matte like Stone but with a green tint and a softer specular.
func Grass() Material {
	return New(math.Vec3{X: 0.3, Y: 0.7, Z: 0.2}, 5, [4]float32{0.9, 0.05, 0, 0}, 1.0)
}

// Crate is matte wood-toned with a narrow Phong highlight.
func Crate() Material {
	return New(math.Vec3{X: 0.55, Y: 0.4, Z: 0.25}, 15, [4]float32{0.85, 0.15, 0, 0}, 1.0)
}

// Metal is mostly reflective with a tight, bright specular.
func Metal() Material {
	return New(math.Vec3{X: 0.8, Y: 0.8, Z: 0.85}, 120, [4]float32{0.2, 0.3, 0.65, 0}, 1.0)
}

// Glass is a transparent, refractive material (image-alpha window faces
// are what give it its partial-coverage look; see palette.CubeTemplate).
func Glass() Material {
	return New(math.Vec3{X: 0.9, Y: 0.95, Z: 1.0}, 150, [4]float32{0.8, 0.15, 0.06, 0.75}, 1.5)
}

// Ghost is the opaque white preview tint used while placing a block; not a
// real scene material, only ever substituted into an Intersect for the
// hovered-cube highlight (spec 4.4 step 3).
func Ghost() Material {
	return New(math.Vec3{X: 1.0, Y: 1.0, Z: 1.0}, 30, [4]float32{0.4, 0.4, 0, 0}, 1.0)
}
