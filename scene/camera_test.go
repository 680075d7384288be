package scene

import (
	"math"
	"testing"

	remath "voxtrace/math"
)

const eps = 1e-4

func approxEq(a, b float32) bool {
	return math.Abs(float64(a-b)) < eps
}

func TestNewCameraLooksAtTarget(t *testing.T) {
	target := remath.Vec3{X: 1, Y: 2, Z: 3}
	c := NewCamera(target, 5, 0, 0)

	if !approxEq(c.Eye.Distance(target), c.Distance) {
		t.Fatalf("eye should be Distance away from target, got distance %v", c.Eye.Distance(target))
	}
	fwd := target.Sub(c.Eye).Normalize()
	if !approxEq(c.Forward.X, fwd.X) || !approxEq(c.Forward.Y, fwd.Y) || !approxEq(c.Forward.Z, fwd.Z) {
		t.Errorf("Forward should point from Eye to Target, got %v want %v", c.Forward, fwd)
	}
}

func TestOrbitClampsPitch(t *testing.T) {
	c := NewCamera(remath.Vec3{}, 5, 0, 0)
	c.Orbit(0, 100) // far beyond maxPitch

	if c.Pitch > maxPitch+eps {
		t.Errorf("pitch should clamp to %v, got %v", maxPitch, c.Pitch)
	}

	c.Orbit(0, -1000)
	if c.Pitch < minPitch-eps {
		t.Errorf("pitch should clamp to %v, got %v", minPitch, c.Pitch)
	}
}

func TestOrbitWrapsYaw(t *testing.T) {
	c := NewCamera(remath.Vec3{}, 5, 0, 0)
	c.Orbit(10*math.Pi, 0)

	if c.Yaw < -math.Pi-eps || c.Yaw > math.Pi+eps {
		t.Errorf("yaw should wrap into [-pi, pi], got %v", c.Yaw)
	}
}

func TestZoomClampsDistance(t *testing.T) {
	c := NewCamera(remath.Vec3{}, 5, 0, 0)
	c.Zoom(-100000)
	if c.Distance < minDistance-eps {
		t.Errorf("distance should clamp to min %v, got %v", minDistance, c.Distance)
	}

	c.Zoom(1000000)
	if c.Distance > maxDistance+eps {
		t.Errorf("distance should clamp to max %v, got %v", maxDistance, c.Distance)
	}
}

func TestBasisStaysOrthonormal(t *testing.T) {
	c := NewCamera(remath.Vec3{}, 10, 0, 0)
	c.Orbit(1.2, 0.5)
	c.Orbit(-2.3, -0.9)

	if d := c.Forward.Dot(c.Right); math.Abs(float64(d)) > eps {
		t.Errorf("Forward and Right should be orthogonal, dot=%v", d)
	}
	if d := c.Forward.Dot(c.Up); math.Abs(float64(d)) > eps {
		t.Errorf("Forward and Up should be orthogonal, dot=%v", d)
	}
	if d := c.Right.Dot(c.Up); math.Abs(float64(d)) > eps {
		t.Errorf("Right and Up should be orthogonal, dot=%v", d)
	}

	for _, v := range []remath.Vec3{c.Forward, c.Right, c.Up} {
		if math.Abs(float64(v.Length()-1)) > eps {
			t.Errorf("basis vector should be unit length, got %v", v.Length())
		}
	}
}

func TestPitchClampStaysClearOfPoleSingularity(t *testing.T) {
	// maxPitch/minPitch are kept short of +-pi/2 so Forward never goes
	// parallel to world up, which is what the updateBasis fallback guards
	// against; confirm the clamp actually holds that margin.
	if maxPitch >= math.Pi/2 || minPitch <= -math.Pi/2 {
		t.Fatalf("pitch clamp must stay clear of +-pi/2, got [%v, %v]", minPitch, maxPitch)
	}

	c := NewCamera(remath.Vec3{}, 5, 0, 0)
	c.Orbit(0, maxPitch-c.Pitch+1) // try to drive past the pole
	if c.Right.Length() < eps {
		t.Fatalf("Right should not degenerate near the clamped pitch range")
	}
}
