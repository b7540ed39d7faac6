package math

import (
	"errors"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestMat3Inverse(t *testing.T) {
	m := NewMat3(
		2, 0, 1,
		1, 3, 0,
		0, 1, 4,
	)

	inv, err := m.GetInverse(true)
	if err != nil {
		t.Fatalf("GetInverse: %v", err)
	}

	got := m.Mul(inv)
	id := Mat3Identity()
	for i := range got {
		if abs(got[i]-id[i]) > 1e-5 {
			t.Fatalf("M * M^-1 should be identity, got %v", got)
		}
	}

	want := mgl32.Mat3(m).Inv()
	for i := range inv {
		if abs(inv[i]-want[i]) > 1e-5 {
			t.Errorf("element %d: got %v, want %v", i, inv[i], want[i])
		}
	}
}

func TestMat3InverseSingular(t *testing.T) {
	m := NewMat3(
		1, 2, 3,
		2, 4, 6,
		0, 0, 1,
	)

	if _, err := m.GetInverse(true); !errors.Is(err, ErrSingularMatrix) {
		t.Errorf("strict: got %v, want ErrSingularMatrix", err)
	}
	inv, err := m.GetInverse(false)
	if err != nil || inv != Mat3Identity() {
		t.Errorf("permissive: got %v, %v; want identity, nil", inv, err)
	}
}

func TestMat3Determinant(t *testing.T) {
	m := NewMat3(
		2, 0, 0,
		0, 3, 0,
		0, 0, 4,
	)
	if d := m.Determinant(); d != 24 {
		t.Errorf("Determinant = %v, want 24", d)
	}
	if d := m.MulScalar(0.5).Determinant(); d != 3 {
		t.Errorf("scaled Determinant = %v, want 3", d)
	}
}

func TestMat3Transpose(t *testing.T) {
	m := NewMat3(
		1, 2, 3,
		4, 5, 6,
		7, 8, 9,
	)
	want := NewMat3(
		1, 4, 7,
		2, 5, 8,
		3, 6, 9,
	)
	if got := m.Transpose(); got != want {
		t.Errorf("Transpose = %v, want %v", got, want)
	}

	buf := make([]float32, 9)
	m.TransposeIntoArray(buf)
	if Mat3FromArray(buf, 0) != want {
		t.Errorf("TransposeIntoArray wrote %v", buf)
	}
}

func TestNormalMatrix(t *testing.T) {
	// Non-uniform scale: normals must stay perpendicular to surfaces
	m := Compose(Vec3{1, 2, 3}, QuatFromAxisAngle(Vec3{0, 0, 1}, 0.5), Vec3{1, 4, 1})
	tangent := Vec3{1, 1, 0}
	normal := Vec3{1, -1, 0}

	worldTangent := m.TransformDirection(tangent)
	worldNormal := normal.ApplyMat3(NormalMatrix(m))
	if d := worldTangent.Dot(worldNormal); abs(d) > 1e-5 {
		t.Errorf("transformed normal not perpendicular: dot = %v", d)
	}
}

func TestMat3ApplyToVec3Array(t *testing.T) {
	m := NewMat3(
		2, 0, 0,
		0, 3, 0,
		0, 0, 4,
	)
	buf := []float32{0, 1, 1, 1, 2, 2, 2}
	m.ApplyToVec3Array(buf, 1, 0)
	want := []float32{0, 2, 3, 4, 4, 6, 8}
	for i := range want {
		if buf[i] != want[i] {
			t.Fatalf("ApplyToVec3Array: got %v, want %v", buf, want)
		}
	}
}
