package voxel

import (
	"math"
	"voxtrace/core"
	"voxtrace/material"
	remath "voxtrace/math"
	"voxtrace/palette"
)

// Cube is an axis-aligned box, the sole primitive shape of the scene
// (Slab below only adjusts Min/Max to half height). Owned by the scene
// slice; never mutated after construction.
type Cube struct {
	Min, Max  remath.Vec3
	Mat       material.Material
	FaceTexes [palette.FaceCount]*palette.FaceStyle
}

// FromTemplate builds a unit-size (or custom-size) cube centered at
// center from a palette template.
func FromTemplate(center, size remath.Vec3, t palette.CubeTemplate) Cube {
	half := size.Mul(0.5)
	return Cube{
		Min:       center.Sub(half),
		Max:       center.Add(half),
		Mat:       t.Material,
		FaceTexes: t.FaceTexes,
	}
}

func (c Cube) AABB() (min, max remath.Vec3) {
	return c.Min, c.Max
}

const uvInset = 1e-6

// RayIntersect implements the slab test on the three axis pairs, face
// selection by which axis's tmin equals t_enter (tie-break X > Y > Z),
// the per-face UV table, and styled sampling. See spec component 4.1.
func (c Cube) RayIntersect(origin, direction remath.Vec3) Intersect {
	invX, invY, invZ := 1/direction.X, 1/direction.Y, 1/direction.Z

	t1x, t2x := (c.Min.X-origin.X)*invX, (c.Max.X-origin.X)*invX
	t1y, t2y := (c.Min.Y-origin.Y)*invY, (c.Max.Y-origin.Y)*invY
	t1z, t2z := (c.Min.Z-origin.Z)*invZ, (c.Max.Z-origin.Z)*invZ

	tminX, tmaxX := math32Min(t1x, t2x), math32Max(t1x, t2x)
	tminY, tmaxY := math32Min(t1y, t2y), math32Max(t1y, t2y)
	tminZ, tmaxZ := math32Min(t1z, t2z), math32Max(t1z, t2z)

	tEnter := math32Max(tminX, math32Max(tminY, tminZ))
	tExit := math32Min(tmaxX, math32Min(tmaxY, tmaxZ))

	if tExit < 0 || tEnter > tExit {
		return Empty()
	}

	entering := tEnter > 0
	tHit := tExit
	if entering {
		tHit = tEnter
	}
	if !isFinite(tHit) {
		return Empty()
	}

	// Entering: the hit face is whichever axis's tmin equals t_enter,
	// tie-break X > Y > Z; its outward normal opposes the ray direction.
	// Exiting (ray origin inside the box): the hit face is whichever
	// axis's tmax equals t_exit, same tie-break; its outward normal
	// follows the ray direction (spec 8: normal points outward along the
	// exit axis when O is inside the cube).
	var normal remath.Vec3
	var faceIdx int
	if entering {
		switch {
		case tEnter == tminX || (tminX > tminY && tminX > tminZ):
			normal.X = -sign32(direction.X)
			faceIdx = axisFace(palette.FaceNegX, palette.FacePosX, direction.X > 0)
		case tEnter == tminY || tminY > tminZ:
			normal.Y = -sign32(direction.Y)
			faceIdx = axisFace(palette.FaceNegY, palette.FacePosY, direction.Y > 0)
		default:
			normal.Z = -sign32(direction.Z)
			faceIdx = axisFace(palette.FaceNegZ, palette.FacePosZ, direction.Z > 0)
		}
	} else {
		switch {
		case tExit == tmaxX || (tmaxX < tmaxY && tmaxX < tmaxZ):
			normal.X = sign32(direction.X)
			faceIdx = axisFace(palette.FacePosX, palette.FaceNegX, direction.X > 0)
		case tExit == tmaxY || tmaxY < tmaxZ:
			normal.Y = sign32(direction.Y)
			faceIdx = axisFace(palette.FacePosY, palette.FaceNegY, direction.Y > 0)
		default:
			normal.Z = sign32(direction.Z)
			faceIdx = axisFace(palette.FacePosZ, palette.FaceNegZ, direction.Z > 0)
		}
	}

	point := origin.Add(direction.Mul(tHit))

	sx := c.Max.X - c.Min.X
	sy := c.Max.Y - c.Min.Y
	sz := c.Max.Z - c.Min.Z

	var u, v float32
	switch faceIdx {
	case palette.FacePosX:
		u = (point.Z - c.Min.Z) / sz
		v = (c.Max.Y - point.Y) / sy
	case palette.FaceNegX:
		u = (c.Max.Z - point.Z) / sz
		v = (c.Max.Y - point.Y) / sy
	case palette.FacePosY:
		u = (point.X - c.Min.X) / sx
		v = (point.Z - c.Min.Z) / sz
	case palette.FaceNegY:
		u = (point.X - c.Min.X) / sx
		v = (c.Max.Z - point.Z) / sz
	case palette.FacePosZ:
		u = (point.X - c.Min.X) / sx
		v = (c.Max.Y - point.Y) / sy
	case palette.FaceNegZ:
		u = (c.Max.X - point.X) / sx
		v = (c.Max.Y - point.Y) / sy
	}
	u = clampf(u, uvInset, 1-uvInset)
	v = clampf(v, uvInset, 1-uvInset)

	hit := Intersect{
		Hit:      true,
		Point:    point,
		Normal:   normal,
		Distance: tHit,
		Material: c.Mat,
		Coverage: 1,
	}

	if fs := c.FaceTexes[faceIdx]; fs != nil {
		color, coverage, visible := sampleStyled(fs, u, v)
		if !visible {
			return Empty()
		}
		hit.Material.Diffuse = remath.Vec3{X: color.R, Y: color.G, Z: color.B}
		hit.Coverage = coverage
	}

	return hit
}

// sampleStyled applies the FaceStyle's TexStyle to the texel at (u,v),
// returning the styled color, coverage, and whether the surface is hit at
// all (false only for a rejected cutout).
func sampleStyled(fs *palette.FaceStyle, u, v float32) (core.Color, float32, bool) {
	r, g, b, a := fs.Tex.SampleRepeatRGBA(u, v)
	texel := core.Color{R: r, G: g, B: b, A: a}

	switch fs.Style.Kind {
	case palette.StyleNormal:
		return texel, 1, true
	case palette.StyleGrayscaleTint:
		return fs.Style.Tint.Mul(texel.Luminance()), 1, true
	case palette.StyleBlackIsTransparent:
		if texel.Luminance() <= fs.Style.Threshold {
			return core.Color{}, 0, false
		}
		return texel, 1, true
	case palette.StyleGrayscaleTintBlackTransparent:
		if texel.Luminance() <= fs.Style.Threshold {
			return core.Color{}, 0, false
		}
		return fs.Style.Tint.Mul(texel.Luminance()), 1, true
	case palette.StyleImageAlphaCutout:
		if a <= fs.Style.Threshold {
			return core.Color{}, 0, false
		}
		return texel, 1, true
	case palette.StyleGrayscaleTintImageAlphaCutout:
		if a <= fs.Style.Threshold {
			return core.Color{}, 0, false
		}
		return fs.Style.Tint.Mul(texel.Luminance()), 1, true
	case palette.StyleImageAlphaWindow:
		if a <= fs.Style.Threshold {
			return texel, 0, true
		}
		return texel, a, true
	case palette.StyleGrayscaleTintImageAlphaWindow:
		tinted := fs.Style.Tint.Mul(texel.Luminance())
		if a <= fs.Style.Threshold {
			return tinted, 0, true
		}
		return tinted, a, true
	default:
		return texel, 1, true
	}
}

func math32Min(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

func math32Max(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}

func clampf(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// axisFace picks between the two face indices of one axis based on the
// direction of travel along it.
func axisFace(whenPositive, whenNonPositive int, directionPositive bool) int {
	if directionPositive {
		return whenPositive
	}
	return whenNonPositive
}

func sign32(x float32) float32 {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return 0
	}
}

func isFinite(x float32) bool {
	return !math.IsInf(float64(x), 0) && !math.IsNaN(float64(x))
}
