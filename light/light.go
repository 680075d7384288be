// Package light implements the point/directional light tagged union
// consumed by the shading integrator. Grounded on
// original_source/src/light.rs.
package light

import (
	"math"

	"voxtrace/core"
	remath "voxtrace/math"
)

type Kind int

const (
	Point Kind = iota
	Directional
)

// Light is a tagged union of a point source and a directional source.
// Position is only meaningful for Point; Direction (the direction light
// travels) only for Directional.
type Light struct {
	Kind      Kind
	Position  remath.Vec3
	Direction remath.Vec3
	Color     core.Color
	Intensity float32
}

func NewPoint(position remath.Vec3, color core.Color, intensity float32) Light {
	return Light{Kind: Point, Position: position, Color: color, Intensity: intensity}
}

func NewDirectional(direction remath.Vec3, color core.Color, intensity float32) Light {
	return Light{Kind: Directional, Direction: direction.Normalize(), Color: color, Intensity: intensity}
}

// At returns the unit direction from point toward the light and the
// distance to the source (+Inf for directional lights).
func (l Light) At(point remath.Vec3) (dir remath.Vec3, distance float32) {
	if l.Kind == Directional {
		return l.Direction.Negate(), float32(math.Inf(1))
	}
	to := l.Position.Sub(point)
	d := to.Length()
	if d == 0 {
		return remath.Vec3{}, 0
	}
	return to.Mul(1 / d), d
}

// Translate moves a point light; a no-op for directional lights.
func (l *Light) Translate(delta remath.Vec3) {
	if l.Kind == Point {
		l.Position = l.Position.Add(delta)
	}
}

const maxDirectionalPitch = 1.3

// YawPitch rotates a directional light's travel direction by the given
// deltas, clamping pitch to avoid the direction flipping through the
// poles. A no-op for point lights.
func (l *Light) YawPitch(deltaYaw, deltaPitch float32) {
	if l.Kind != Directional {
		return
	}
	yaw := math.Atan2(float64(l.Direction.X), float64(l.Direction.Z))
	horiz := math.Hypot(float64(l.Direction.X), float64(l.Direction.Z))
	pitch := math.Atan2(float64(l.Direction.Y), horiz)

	yaw += float64(deltaYaw)
	pitch += float64(deltaPitch)
	if pitch > maxDirectionalPitch {
		pitch = maxDirectionalPitch
	}
	if pitch < -maxDirectionalPitch {
		pitch = -maxDirectionalPitch
	}

	cosPitch := math.Cos(pitch)
	l.Direction = remath.Vec3{
		X: float32(cosPitch * math.Sin(yaw)),
		Y: float32(math.Sin(pitch)),
		Z: float32(cosPitch * math.Cos(yaw)),
	}.Normalize()
}
