// Package shade implements the recursive Whitted-style shading
// integrator: direct lighting, shadows, reflection, refraction, and a
// mirror-direction glint term. Grounded on original_source/src/main.rs's
// cast_ray/cast_shadow/reflect/refract/offset_origin, with the glint term
// added per the specification (absent from the original).
package shade

import (
	"math"

	"voxtrace/accel"
	"voxtrace/core"
	"voxtrace/light"
	remath "voxtrace/math"
	"voxtrace/material"
	"voxtrace/skybox"
)

const (
	originBias = 1e-3
	maxDepth   = 3
	glintPower = 800
)

// Scene bundles everything the integrator needs to trace one frame. None
// of its fields are mutated by Cast; callers share one Scene across
// worker goroutines.
type Scene struct {
	Grid  *accel.UniformGrid
	Light light.Light
	Sky   *skybox.Skybox

	// HasPreview overrides the material of the object at PreviewIndex with
	// PreviewMaterial, used to highlight the block under the cursor.
	HasPreview      bool
	PreviewIndex    int
	PreviewMaterial material.Material
}

func (s *Scene) sky(dir remath.Vec3) core.Color {
	if s.Sky != nil {
		return s.Sky.Sample(dir.Normalize())
	}
	return skybox.ProceduralSky(dir.Normalize())
}

// Cast traces one ray and returns its shaded color, recursing for
// reflection and refraction up to a depth of 3 past the primary ray.
func (s *Scene) Cast(origin, direction remath.Vec3, depth int) core.Color {
	if depth > maxDepth {
		return s.sky(direction)
	}

	hit := s.Grid.Trace(origin, direction)
	if !hit.Hit {
		return s.sky(direction)
	}

	mat := hit.Material
	if s.HasPreview && hit.HasObjectIdx && hit.ObjectIndex == s.PreviewIndex {
		mat = s.PreviewMaterial
	}

	n := hit.Normal
	lDir, lDist := s.Light.At(hit.Point)
	viewDir := origin.Sub(hit.Point).Normalize()
	reflectDir := lDir.Negate().Reflect(n).Normalize()

	shadowOrigin := offsetOrigin(hit.Point, n, lDir)
	shadow := float32(0)
	if s.Grid.AnyHit(shadowOrigin, lDir, lDist) {
		shadow = 1
	}
	lightIntensity := s.Light.Intensity * (1 - shadow)

	diffuseFactor := clamp01((n.Dot(lDir)+0.3)/1.3) * lightIntensity
	specularFactor := float32(math.Pow(float64(clampMin0(viewDir.Dot(reflectDir))), float64(mat.Specular))) * lightIntensity

	coverage := hit.Coverage
	albedo := mat.Albedo

	diffuseTerm := mat.Diffuse.Mul(diffuseFactor).Add(mat.Diffuse.Mul(0.15))
	lightColor := remath.Vec3{X: s.Light.Color.R, Y: s.Light.Color.G, Z: s.Light.Color.B}
	specularTerm := lightColor.Mul(specularFactor)

	phongColor := diffuseTerm.Mul(albedo[0] * coverage).Add(specularTerm.Mul(albedo[1] * coverage))

	reflectivity := albedo[2]
	transparency := clamp01((1 - coverage) + albedo[3]*coverage)

	var reflectColor remath.Vec3
	if reflectivity > 0 {
		rDir := direction.Reflect(n).Normalize()
		rOrigin := offsetOrigin(hit.Point, n, rDir)
		reflectColor = colorToVec3(s.Cast(rOrigin, rDir, depth+1))
	}

	var refractColor remath.Vec3
	if transparency > 0 {
		if tDir, ok := remath.Refract(direction, n, mat.RefractiveIndex); ok {
			tOrigin := offsetOrigin(hit.Point, n, tDir)
			refractColor = colorToVec3(s.Cast(tOrigin, tDir, depth+1))
		} else {
			rDir := direction.Reflect(n).Normalize()
			rOrigin := offsetOrigin(hit.Point, n, rDir)
			refractColor = colorToVec3(s.Cast(rOrigin, rDir, depth+1))
		}
	}

	glint := s.glint(hit.Point, n, reflectDir, lDir, lDist, reflectivity)

	k := clampMin0(1 - reflectivity - transparency)
	out := phongColor.Mul(k).Add(reflectColor.Mul(reflectivity)).Add(refractColor.Mul(transparency)).Add(glint)

	return core.Color{R: clamp01(out.X), G: clamp01(out.Y), B: clamp01(out.Z), A: 1}
}

// glint is a narrow mirror-direction specular highlight toward the light,
// cast as its own visibility ray so it can punch through shadow-darkened
// diffuse shading (e.g. a sun glint on a wet block face).
func (s *Scene) glint(point, n, reflectDir, lDir remath.Vec3, lDist, reflectivity float32) remath.Vec3 {
	origin := offsetOrigin(point, n, reflectDir)
	if s.Grid.AnyHit(origin, lDir, lDist) {
		return remath.Vec3{}
	}
	falloff := float32(1)
	if s.Light.Kind == light.Point {
		falloff = 1 / (1 + lDist*lDist)
	}
	spec := float32(math.Pow(float64(clampMin0(reflectDir.Dot(lDir))), glintPower))
	strength := falloff * spec * minf(1, reflectivity+0.05)
	lightColor := remath.Vec3{X: s.Light.Color.R, Y: s.Light.Color.G, Z: s.Light.Color.B}
	return lightColor.Mul(s.Light.Intensity * strength)
}

// offsetOrigin nudges a ray origin off the surface along the normal, away
// from the surface if dir points outward and into it otherwise, avoiding
// immediate self-intersection on both exiting and entering rays.
func offsetOrigin(point, normal, dir remath.Vec3) remath.Vec3 {
	offset := normal.Mul(originBias)
	if dir.Dot(normal) < 0 {
		return point.Sub(offset)
	}
	return point.Add(offset)
}

func colorToVec3(c core.Color) remath.Vec3 {
	return remath.Vec3{X: c.R, Y: c.G, Z: c.B}
}

func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func clampMin0(v float32) float32 {
	if v < 0 {
		return 0
	}
	return v
}

func minf(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}
