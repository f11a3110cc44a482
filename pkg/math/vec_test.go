package math

import (
	"testing"
)

func TestVec3MinMax(t *testing.T) {
	a := Vec3{1, 5, -2}
	b := Vec3{3, 4, -1}
	if got, want := a.Min(b), (Vec3{1, 4, -2}); got != want {
		t.Errorf("Vec3.Min() = %v, want %v", got, want)
	}
	if got, want := a.Max(b), (Vec3{3, 5, -1}); got != want {
		t.Errorf("Vec3.Max() = %v, want %v", got, want)
	}
}

func TestVec3Length(t *testing.T) {
	v := Vec3{2, 3, 6}
	got := v.Length()
	want := float32(7)
	if got != want {
		t.Errorf("Vec3.Length() = %v, want %v", got, want)
	}
}

func TestFromArray(t *testing.T) {
	a := [3]float32{1, 2, 3}
	if got := FromArray(a).Array(); got != a {
		t.Errorf("FromArray().Array() = %v, want %v", got, a)
	}
}

func TestBounds(t *testing.T) {
	var b Bounds
	if !b.Empty() {
		t.Fatal("zero Bounds should be empty")
	}
	if b.String() != "(empty)" {
		t.Errorf("Bounds.String() = %q", b.String())
	}

	b.Extend(Vec3{1, 1, 1})
	if b.Empty() {
		t.Fatal("Bounds should not be empty after Extend")
	}
	if b.Size() != (Vec3{}) {
		t.Errorf("single point Bounds.Size() = %v", b.Size())
	}

	b.Extend(Vec3{-1, 3, 0})
	if got, want := b.Size(), (Vec3{2, 2, 1}); got != want {
		t.Errorf("Bounds.Size() = %v, want %v", got, want)
	}
	if got, want := b.Center(), (Vec3{0, 2, 0.5}); got != want {
		t.Errorf("Bounds.Center() = %v, want %v", got, want)
	}
	if got, want := b.String(), "(-1, 1, 0)..(1, 3, 1)"; got != want {
		t.Errorf("Bounds.String() = %q, want %q", got, want)
	}
}
