package math

import "fmt"

// Bounds is an axis-aligned bounding box. The zero value is empty.
type Bounds struct {
	Min, Max Vec3
	valid    bool
}

// Extend grows the box to contain p.
func (b *Bounds) Extend(p Vec3) {
	if !b.valid {
		b.Min, b.Max, b.valid = p, p, true
		return
	}
	b.Min = b.Min.Min(p)
	b.Max = b.Max.Max(p)
}

// Empty returns true if no point was added.
func (b Bounds) Empty() bool {
	return !b.valid
}

// Size returns the box dimensions.
func (b Bounds) Size() Vec3 {
	return b.Max.Sub(b.Min)
}

// Center returns the box midpoint.
func (b Bounds) Center() Vec3 {
	return b.Min.Add(b.Max).Scale(0.5)
}

// String returns the box as "min..max".
func (b Bounds) String() string {
	if !b.valid {
		return "(empty)"
	}
	return fmt.Sprintf("(%g, %g, %g)..(%g, %g, %g)",
		b.Min.X, b.Min.Y, b.Min.Z, b.Max.X, b.Max.Y, b.Max.Z)
}
