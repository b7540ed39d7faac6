package math

import (
	"math"
	"testing"
)

func TestSphericalFromVec3(t *testing.T) {
	tests := []struct {
		name string
		v    Vec3
		want Spherical
	}{
		{"zero", Vec3{}, Spherical{}},
		{"up", Vec3{0, 2, 0}, Spherical{Radius: 2, Phi: 0, Theta: 0}},
		{"+z", Vec3{0, 0, 3}, Spherical{Radius: 3, Phi: math.Pi / 2, Theta: 0}},
		{"+x", Vec3{1, 0, 0}, Spherical{Radius: 1, Phi: math.Pi / 2, Theta: math.Pi / 2}},
		{"down", Vec3{0, -1, 0}, Spherical{Radius: 1, Phi: math.Pi, Theta: 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SphericalFromVec3(tt.v)
			if abs(got.Radius-tt.want.Radius) > 1e-6 || abs(got.Phi-tt.want.Phi) > 1e-6 || abs(got.Theta-tt.want.Theta) > 1e-6 {
				t.Errorf("got %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestSphericalRoundTrip(t *testing.T) {
	for _, v := range []Vec3{{1, 2, 3}, {-4, 0.5, 2}, {0.1, -3, -0.2}} {
		if got := SphericalFromVec3(v).ToVec3(); !got.Compare(v, 1e-5) {
			t.Errorf("round trip of %v: got %v", v, got)
		}
	}
}

func TestSphericalMakeSafe(t *testing.T) {
	if got := (Spherical{Radius: 1, Phi: 0}).MakeSafe(); got.Phi <= 0 {
		t.Errorf("MakeSafe at north pole: phi = %v", got.Phi)
	}
	if got := (Spherical{Radius: 1, Phi: 4}).MakeSafe(); got.Phi >= math.Pi {
		t.Errorf("MakeSafe past south pole: phi = %v", got.Phi)
	}
	s := Spherical{Radius: 5, Phi: 1, Theta: 2}
	if s.MakeSafe() != s {
		t.Errorf("MakeSafe should not touch an interior phi")
	}
	if NewSpherical().Radius != 1 {
		t.Error("NewSpherical radius should be 1")
	}
}
