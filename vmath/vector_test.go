package vmath

import (
	"math"
	"testing"
)

func TestNormalize2DUnitLength(t *testing.T) {
	nx, ny := Normalize2D(3, 4)
	if math.Abs(Magnitude(nx, ny)-1) > 1e-12 {
		t.Errorf("Expected unit length, got %v", Magnitude(nx, ny))
	}
	if math.Abs(nx-0.6) > 1e-12 || math.Abs(ny-0.8) > 1e-12 {
		t.Errorf("Expected (0.6, 0.8), got (%v, %v)", nx, ny)
	}
}

func TestNormalize2DZeroSafe(t *testing.T) {
	nx, ny := Normalize2D(0, 0)
	if nx != 0 || ny != 0 {
		t.Errorf("Expected zero vector for zero input, got (%v, %v)", nx, ny)
	}
}

func TestClampMagnitudeOverLimit(t *testing.T) {
	cx, cy := ClampMagnitude(30, 40, 5)
	if math.Abs(Magnitude(cx, cy)-5) > 1e-12 {
		t.Errorf("Expected magnitude 5, got %v", Magnitude(cx, cy))
	}
	// Direction preserved
	if math.Abs(cx-3) > 1e-12 || math.Abs(cy-4) > 1e-12 {
		t.Errorf("Expected (3, 4), got (%v, %v)", cx, cy)
	}
}

func TestClampMagnitudeUnderLimit(t *testing.T) {
	cx, cy := ClampMagnitude(1, 2, 100)
	if cx != 1 || cy != 2 {
		t.Errorf("Expected vector unchanged, got (%v, %v)", cx, cy)
	}
}

func TestReflectHeadOn(t *testing.T) {
	// Velocity straight into a wall with normal (1, 0) reverses
	rx, ry := Reflect(-3, 0, 1, 0)
	if rx != 3 || ry != 0 {
		t.Errorf("Expected (3, 0), got (%v, %v)", rx, ry)
	}
}

func TestReflectPreservesTangent(t *testing.T) {
	rx, ry := Reflect(-3, 2, 1, 0)
	if rx != 3 || ry != 2 {
		t.Errorf("Expected tangential component preserved, got (%v, %v)", rx, ry)
	}
}

func TestReflectAxis(t *testing.T) {
	rx, ry := ReflectAxisX(5, 7)
	if rx != -5 || ry != 7 {
		t.Errorf("ReflectAxisX: got (%v, %v)", rx, ry)
	}
	rx, ry = ReflectAxisY(5, 7)
	if rx != 5 || ry != -7 {
		t.Errorf("ReflectAxisY: got (%v, %v)", rx, ry)
	}
}

func TestRotateVectorQuarterTurn(t *testing.T) {
	rx, ry := RotateVector(1, 0, math.Pi/2)
	if math.Abs(rx) > 1e-12 || math.Abs(ry-1) > 1e-12 {
		t.Errorf("Expected (0, 1), got (%v, %v)", rx, ry)
	}
}

func TestPerpendicularIsOrthogonal(t *testing.T) {
	px, py := Perpendicular(3, 4)
	if DotProduct(3, 4, px, py) != 0 {
		t.Errorf("Expected orthogonal vector, got (%v, %v)", px, py)
	}
}

func TestFastRandDeterministic(t *testing.T) {
	a := NewFastRand(12345)
	b := NewFastRand(12345)
	for i := 0; i < 100; i++ {
		if a.Next() != b.Next() {
			t.Fatalf("Same seed diverged at step %d", i)
		}
	}
}

func TestFastRandZeroSeedGuard(t *testing.T) {
	r := NewFastRand(0)
	if r.Next() == 0 {
		t.Error("Zero seed must not produce the xorshift fixed point")
	}
}

func TestFastRandFloat64Range(t *testing.T) {
	r := NewFastRand(7)
	for i := 0; i < 1000; i++ {
		v := r.Float64()
		if v < 0 || v >= 1 {
			t.Fatalf("Float64 out of [0,1): %v", v)
		}
	}
}

func TestFastRandRange(t *testing.T) {
	r := NewFastRand(9)
	for i := 0; i < 1000; i++ {
		v := r.Range(-2, 3)
		if v < -2 || v >= 3 {
			t.Fatalf("Range out of [-2,3): %v", v)
		}
	}
}
