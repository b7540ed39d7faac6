package math

import (
	"testing"

	"github.com/google/uuid"
)

func TestClamp(t *testing.T) {
	if got := Clamp(5, 0, 3); got != 3 {
		t.Errorf("Clamp int = %v", got)
	}
	if got := Clamp(float32(-1.5), -1, 1); got != -1 {
		t.Errorf("Clamp float32 = %v", got)
	}
	if got := Clamp(0.25, 0, 1); got != 0.25 {
		t.Errorf("Clamp float64 = %v", got)
	}
}

func TestEuclideanModulo(t *testing.T) {
	tests := []struct{ n, m, want float32 }{
		{5, 3, 2},
		{-1, 3, 2},
		{-3, 3, 0},
		{7.5, 2, 1.5},
	}
	for _, tt := range tests {
		if got := EuclideanModulo(tt.n, tt.m); abs(got-tt.want) > 1e-6 {
			t.Errorf("EuclideanModulo(%v, %v) = %v, want %v", tt.n, tt.m, got, tt.want)
		}
	}
}

func TestMapLinear(t *testing.T) {
	if got := MapLinear(5, 0, 10, 100, 200); got != 150 {
		t.Errorf("MapLinear = %v, want 150", got)
	}
}

func TestSmoothstep(t *testing.T) {
	tests := []struct {
		x          float32
		step, more float32
	}{
		{-1, 0, 0},
		{0, 0, 0},
		{0.5, 0.5, 0.5},
		{1, 1, 1},
		{2, 1, 1},
	}
	for _, tt := range tests {
		if got := Smoothstep(tt.x, 0, 1); abs(got-tt.step) > 1e-6 {
			t.Errorf("Smoothstep(%v) = %v, want %v", tt.x, got, tt.step)
		}
		if got := Smootherstep(tt.x, 0, 1); abs(got-tt.more) > 1e-6 {
			t.Errorf("Smootherstep(%v) = %v, want %v", tt.x, got, tt.more)
		}
	}
	if got := Smoothstep(0.25, 0, 1); abs(got-0.15625) > 1e-6 {
		t.Errorf("Smoothstep(0.25) = %v, want 0.15625", got)
	}
}

func TestNearestPowerOfTwo(t *testing.T) {
	tests := []struct{ in, want uint32 }{
		{0, 1},
		{1, 1},
		{3, 4},
		{5, 4},
		{6, 8},
		{1000, 1024},
		{1 << 31, 1 << 31},
		{3000000000, 1 << 31},
		{4000000000, 1 << 31},
		{4294967295, 1 << 31},
	}
	for _, tt := range tests {
		if got := NearestPowerOfTwo(tt.in); got != tt.want {
			t.Errorf("NearestPowerOfTwo(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestDegRad(t *testing.T) {
	if got := DegToRad(180); abs(got-3.1415927) > 1e-6 {
		t.Errorf("DegToRad(180) = %v", got)
	}
	if got := RadToDeg(DegToRad(37)); abs(got-37) > 1e-4 {
		t.Errorf("RadToDeg(DegToRad(37)) = %v", got)
	}
}

func TestGenerateUUID(t *testing.T) {
	a, b := GenerateUUID(), GenerateUUID()
	if a == b {
		t.Error("GenerateUUID returned the same value twice")
	}
	if a.Version() != 4 || a.Variant() != uuid.RFC4122 {
		t.Errorf("GenerateUUID: version %d variant %v", a.Version(), a.Variant())
	}
}
