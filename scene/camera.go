// Package scene holds the orbital camera used to turn pixel coordinates
// into world-space rays. Grounded on the teacher's OrbitCamera naming
// (Target/Distance/Yaw/Pitch/Orbit/Zoom) and original_source/src/camera.rs's
// spherical-coordinate algorithm.
package scene

import (
	"math"

	remath "voxtrace/math"
)

const (
	minPitch    = -1.45
	maxPitch    = 1.45
	minDistance = 0.25
	maxDistance = 5000.0
)

// Camera is an orbital camera that always looks at Target from a point
// on the sphere of radius Distance described by (Yaw, Pitch).
type Camera struct {
	Target   remath.Vec3
	Distance float32
	Yaw      float32
	Pitch    float32

	Eye     remath.Vec3
	Forward remath.Vec3
	Right   remath.Vec3
	Up      remath.Vec3
}

// NewCamera builds an orbital camera from explicit spherical parameters
// and computes its initial basis.
func NewCamera(target remath.Vec3, distance, yaw, pitch float32) *Camera {
	c := &Camera{Target: target, Distance: distance, Yaw: yaw, Pitch: pitch}
	c.clamp()
	c.updateBasis()
	return c
}

// NewCameraFromEye derives yaw/pitch/distance from an explicit eye position,
// for compatibility with scene files that specify eye+center directly.
func NewCameraFromEye(eye, target remath.Vec3) *Camera {
	offset := eye.Sub(target)
	distance := offset.Length()
	if distance < 1e-6 {
		distance = 1e-6
	}
	pitch := float32(math.Asin(float64(offset.Y / distance)))
	yaw := float32(math.Atan2(float64(offset.Z), float64(offset.X)))
	return NewCamera(target, distance, yaw, pitch)
}

// Orbit adds to yaw/pitch (radians), wrapping yaw to [-pi,pi] and clamping
// pitch, then recomputes the eye and basis vectors.
func (c *Camera) Orbit(deltaYaw, deltaPitch float32) {
	c.Yaw += deltaYaw
	c.Pitch += deltaPitch
	for c.Yaw > math.Pi {
		c.Yaw -= 2 * math.Pi
	}
	for c.Yaw < -math.Pi {
		c.Yaw += 2 * math.Pi
	}
	c.clamp()
	c.updateBasis()
}

// Zoom dollies the camera toward/away from Target, clamped to
// [minDistance, maxDistance].
func (c *Camera) Zoom(amount float32) {
	c.Distance += amount
	c.clamp()
	c.updateBasis()
}

// SetTarget changes the orbited point while keeping distance/angles fixed.
func (c *Camera) SetTarget(target remath.Vec3) {
	c.Target = target
	c.updateBasis()
}

func (c *Camera) clamp() {
	c.Pitch = clampf(c.Pitch, minPitch, maxPitch)
	c.Distance = clampf(c.Distance, minDistance, maxDistance)
}

// updateBasis recomputes Eye from (Target, Distance, Yaw, Pitch), then
// Forward/Right/Up from Eye and Target. Falls back to an alternate up hint
// when Forward is nearly parallel to the world up axis.
func (c *Camera) updateBasis() {
	cp := float32(math.Cos(float64(c.Pitch)))
	x := c.Distance * cp * float32(math.Cos(float64(c.Yaw)))
	y := c.Distance * float32(math.Sin(float64(c.Pitch)))
	z := c.Distance * cp * float32(math.Sin(float64(c.Yaw)))
	c.Eye = c.Target.Add(remath.Vec3{X: x, Y: y, Z: z})

	c.Forward = c.Target.Sub(c.Eye).Normalize()

	worldUp := remath.Vec3{X: 0, Y: 1, Z: 0}
	right := c.Forward.Cross(worldUp)
	if right.Length() < 1e-6 {
		altUp := remath.Vec3{X: 0, Y: 0, Z: 1}
		right = c.Forward.Cross(altUp)
	}
	c.Right = right.Normalize()
	c.Up = c.Right.Cross(c.Forward).Normalize()
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
