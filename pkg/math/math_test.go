package math

import (
	"testing"
)

func TestVec3Cross(t *testing.T) {
	x := Vec3{1, 0, 0}
	y := Vec3{0, 1, 0}
	got := x.Cross(y)
	want := Vec3{0, 0, 1}
	if got != want {
		t.Errorf("Vec3.Cross() = %v, want %v", got, want)
	}
}

func TestVec3Length(t *testing.T) {
	got := Vec3{3, 4, 12}.Length()
	if got != 13 {
		t.Errorf("Vec3.Length() = %v, want 13", got)
	}
}

func TestVec3Normalize(t *testing.T) {
	n := Vec3{0, 3, 4}.Normalize()
	l := n.Length()
	if l < 0.999 || l > 1.001 {
		t.Errorf("Vec3.Normalize().Length() = %v, want ~1", l)
	}
	if zero := (Vec3{}).Normalize(); zero != (Vec3{}) {
		t.Errorf("Normalize of zero vector = %v, want zero", zero)
	}
}

func TestVec3MinMax(t *testing.T) {
	a := Vec3{1, -2, 3}
	b := Vec3{-1, 2, 3}
	if got, want := a.Min(b), (Vec3{-1, -2, 3}); got != want {
		t.Errorf("Min = %v, want %v", got, want)
	}
	if got, want := a.Max(b), (Vec3{1, 2, 3}); got != want {
		t.Errorf("Max = %v, want %v", got, want)
	}
}

func TestIsFinite(t *testing.T) {
	var zero float32
	tests := []struct {
		in   float32
		want bool
	}{
		{1, true},
		{-1024, true},
		{zero / zero, false},
		{1 / zero, false},
		{-1 / zero, false},
	}
	for _, tt := range tests {
		if got := IsFinite(tt.in); got != tt.want {
			t.Errorf("IsFinite(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestIdentity(t *testing.T) {
	m := Identity()
	if m[0] != 1 || m[5] != 1 || m[10] != 1 || m[15] != 1 {
		t.Error("Identity diagonal should be 1")
	}
	if m[1] != 0 || m[4] != 0 {
		t.Error("Identity off-diagonal should be 0")
	}
}

func TestTranslate(t *testing.T) {
	m := Translate(Vec3{5, 10, 15})
	if m[12] != 5 || m[13] != 10 || m[14] != 15 {
		t.Errorf("Translate: got (%f, %f, %f), want (5, 10, 15)", m[12], m[13], m[14])
	}
}

func TestTranslateThenScale(t *testing.T) {
	// Scale about the local origin, then move into place.
	m := Translate(Vec3{1024, 2048, 0}).Mul(Scale(Vec3{0.5, 0.5, 1}))
	got := m.TransformPoint(Vec3{512, -512, 0})
	want := Vec3{1280, 1792, 0}
	if got != want {
		t.Errorf("TransformPoint = %v, want %v", got, want)
	}
}

func TestMulIdentity(t *testing.T) {
	m := Translate(Vec3{1, 2, 3})
	result := m.Mul(Identity())
	if result != m {
		t.Errorf("M * I = %v, want %v", result, m)
	}
}
