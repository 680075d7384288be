package math

import (
	"math"
	"testing"
)

func TestVec3Operations(t *testing.T) {
	v1 := NewVec3(1, 2, 3)
	v2 := NewVec3(4, 5, 6)

	// Addition
	result := v1.Add(v2)
	expected := NewVec3(5, 7, 9)
	if result != expected {
		t.Errorf("Add: expected %v, got %v", expected, result)
	}

	// Subtraction
	result = v2.Sub(v1)
	expected = NewVec3(3, 3, 3)
	if result != expected {
		t.Errorf("Sub: expected %v, got %v", expected, result)
	}

	// Scalar multiplication
	result = v1.Mul(2)
	expected = NewVec3(2, 4, 6)
	if result != expected {
		t.Errorf("Mul: expected %v, got %v", expected, result)
	}

	// Dot product
	dot := v1.Dot(v2)
	expectedDot := float32(32) // 1*4 + 2*5 + 3*6
	if dot != expectedDot {
		t.Errorf("Dot: expected %v, got %v", expectedDot, dot)
	}

	// Cross product (Right x Up = Front in right-handed system)
	cross := Vec3Right.Cross(Vec3Up)
	if cross != Vec3Front {
		t.Errorf("Cross: expected %v, got %v", Vec3Front, cross)
	}
}

func TestVec3Normalize(t *testing.T) {
	v := NewVec3(3, 0, 0)
	normalized := v.Normalize()
	expected := NewVec3(1, 0, 0)

	if normalized != expected {
		t.Errorf("Normalize: expected %v, got %v", expected, normalized)
	}

	// Check length is 1
	length := normalized.Length()
	if math.Abs(float64(length-1)) > 0.0001 {
		t.Errorf("Normalize: expected length 1, got %v", length)
	}
}

func TestVec3Reflect(t *testing.T) {
	// Incident straight down onto a flat upward normal bounces straight up.
	incident := NewVec3(0, -1, 0)
	result := incident.Reflect(Vec3Up)
	expected := NewVec3(0, 1, 0)
	if math.Abs(float64(result.X-expected.X)) > 1e-5 ||
		math.Abs(float64(result.Y-expected.Y)) > 1e-5 ||
		math.Abs(float64(result.Z-expected.Z)) > 1e-5 {
		t.Errorf("Reflect: expected %v, got %v", expected, result)
	}
}

func TestRefractPreservesSnellsLaw(t *testing.T) {
	// Incident ray at an oblique angle into a denser medium (eta = 1.5).
	incident := NewVec3(0.6, -0.8, 0).Normalize()
	eta := float32(1.5)

	refracted, ok := Refract(incident, Vec3Up, eta)
	if !ok {
		t.Fatalf("Refract: expected a valid refraction, got total internal reflection")
	}

	lhs := incident.Cross(Vec3Up).Length()
	rhs := refracted.Cross(Vec3Up).Length() * eta
	if math.Abs(float64(lhs-rhs)) > 1e-4 {
		t.Errorf("Refract: Snell's law violated, eta_i|IxN|=%v eta_t|TxN|=%v", lhs, rhs)
	}
}

func TestRefractTotalInternalReflection(t *testing.T) {
	// Exiting a dense medium (eta_i/eta_t = 1.5/1.0) at a grazing angle
	// past the critical angle must report total internal reflection.
	incident := NewVec3(0.99, -0.1411, 0).Normalize()
	_, ok := Refract(incident, Vec3Up, 1.0/1.5)
	if ok {
		t.Errorf("Refract: expected total internal reflection at grazing angle")
	}
}

func TestVec2Lerp(t *testing.T) {
	a := NewVec2(0, 0)
	b := NewVec2(2, 4)
	mid := a.Lerp(b, 0.5)
	expected := NewVec2(1, 2)
	if mid != expected {
		t.Errorf("Lerp: expected %v, got %v", expected, mid)
	}
}

func BenchmarkVec3Add(b *testing.B) {
	v1 := NewVec3(1, 2, 3)
	v2 := NewVec3(4, 5, 6)

	for i := 0; i < b.N; i++ {
		_ = v1.Add(v2)
	}
}
