package core

import "github.com/chewxy/math32"

// parallelEps is the threshold below which a ray direction component is
// treated as parallel to that axis's slab, avoiding division by zero.
const parallelEps = 1e-5

// AABB is an axis-aligned bounding box. The zero value is the degenerate
// box at the origin (Min == Max == origin); Hit does not special-case it,
// so a ray passing through the origin hits it.
type AABB struct {
	Min, Max Vec3
}

// NewAABB constructs an AABB from min and max corners.
func NewAABB(min, max Vec3) AABB {
	return AABB{Min: min, Max: max}
}

// Hit runs the slab test for ray against the box over [tMin, tMax].
// Grazing (near-parallel) rays are handled without dividing by zero, and
// a NaN direction component fails the test.
func (b AABB) Hit(ray Ray, tMin, tMax float32) bool {
	for axis := 0; axis < 3; axis++ {
		origin := ray.Origin.Component(axis)
		dir := ray.Direction.Component(axis)
		lo := b.Min.Component(axis)
		hi := b.Max.Component(axis)

		if math32.IsNaN(dir) {
			return false
		}

		if math32.Abs(dir) < parallelEps {
			if origin < lo || origin > hi {
				return false
			}
			continue
		}

		invDir := 1 / dir
		t0 := (lo - origin) * invDir
		t1 := (hi - origin) * invDir
		if t0 > t1 {
			t0, t1 = t1, t0
		}

		if t0 > tMin {
			tMin = t0
		}
		if t1 < tMax {
			tMax = t1
		}
		if tMax < tMin {
			return false
		}
	}
	return true
}

// Union returns the smallest AABB containing both a and b.
func Union(a, b AABB) AABB {
	return AABB{Min: Min(a.Min, b.Min), Max: Max(a.Max, b.Max)}
}

// Center returns the center point of the box.
func (b AABB) Center() Vec3 {
	return b.Min.Add(b.Max).Mul(0.5)
}

// Extent returns the size of the box along each axis.
func (b AABB) Extent() Vec3 {
	return b.Max.Sub(b.Min)
}

// LongestAxis returns the axis (0=X, 1=Y, 2=Z) with the largest extent,
// tiebreaking toward X then Y as spec.md's BVH split rule requires.
func (b AABB) LongestAxis() int {
	e := b.Extent()
	if e.X >= e.Y && e.X >= e.Z {
		return 0
	}
	if e.Y >= e.Z {
		return 1
	}
	return 2
}

// Contains reports whether p is contained in the box, inclusive of the
// boundary, for every axis.
func (b AABB) Contains(p Vec3) bool {
	return p.X >= b.Min.X && p.X <= b.Max.X &&
		p.Y >= b.Min.Y && p.Y <= b.Max.Y &&
		p.Z >= b.Min.Z && p.Z <= b.Max.Z
}
