// Package scene owns the material table, the sphere list, the tagged
// primitive references over them, and the BVH built across those
// references. It is the single point of ownership spec.md requires: a
// Scene exclusively owns its materials, spheres, primitive refs, and BVH
// nodes.
package scene

import (
	"github.com/df07/spherefield/pkg/core"
	"github.com/df07/spherefield/pkg/material"
)

// PrimitiveKind tags what a PrimitiveRef points at. Sphere is the only
// kind this spec needs; the tag exists so Build's switch can grow new
// kinds without touching the BVH itself.
type PrimitiveKind int

const (
	SpherePrimitive PrimitiveKind = iota
)

// PrimitiveRef names a primitive by its kind and its index into the typed
// array for that kind. Build switches on Kind to resolve each ref into a
// core.Primitive; the BVH's leaves hold indices into that resolved list,
// and a leaf test is a call through the core.Primitive interface, not a
// switch over kinds.
type PrimitiveRef struct {
	Kind  PrimitiveKind
	Index int
}

// Scene holds everything a render needs: materials, geometry, and the
// acceleration structure over that geometry. PrimitiveRefs are immutable
// once Build has been invoked; adding objects after Build is undefined
// unless Build is invoked again.
type Scene struct {
	Materials     material.Table
	Spheres       []Sphere
	PrimitiveRefs []PrimitiveRef

	bvh        *core.BVH
	primitives []core.Primitive
}

// New returns an empty scene ready for AddMaterial/AddSphere calls.
func New() *Scene {
	return &Scene{}
}

// AddMaterial appends a material to the table and returns its index.
func (s *Scene) AddMaterial(m material.Material) int {
	s.Materials = append(s.Materials, m)
	return len(s.Materials) - 1
}

// AddSphere appends a sphere and its primitive reference, returning the
// sphere's index into s.Spheres.
func (s *Scene) AddSphere(center core.Vec3, radius float32, materialIndex int) int {
	index := len(s.Spheres)
	s.Spheres = append(s.Spheres, NewSphere(center, radius, materialIndex))
	s.PrimitiveRefs = append(s.PrimitiveRefs, PrimitiveRef{Kind: SpherePrimitive, Index: index})
	return index
}

// Build constructs the BVH over the scene's current primitive refs. It
// must be called after the scene is fully populated and before any Hit
// calls; calling it again after further additions rebuilds from scratch.
func (s *Scene) Build() {
	s.primitives = make([]core.Primitive, len(s.PrimitiveRefs))
	for i, ref := range s.PrimitiveRefs {
		switch ref.Kind {
		case SpherePrimitive:
			s.primitives[i] = s.Spheres[ref.Index]
		}
	}
	s.bvh = core.BuildBVH(s.primitives)
}

// Hit finds the closest intersection in (tMin, tMax) across the whole
// scene via the BVH. An empty or unbuilt scene always reports a miss.
func (s *Scene) Hit(ray core.Ray, tMin, tMax float32) (core.HitRecord, bool) {
	if s.bvh == nil {
		return core.HitRecord{}, false
	}
	return s.bvh.Hit(s.primitives, ray, tMin, tMax)
}

// Material returns the material at index i.
func (s *Scene) Material(i int) material.Material {
	return s.Materials[i]
}

// BVH exposes the built acceleration structure, primarily for tests and
// diagnostics.
func (s *Scene) BVH() *core.BVH {
	return s.bvh
}

// Bounds returns the bounding box of the whole scene, or the degenerate
// zero box if the scene is empty or unbuilt.
func (s *Scene) Bounds() core.AABB {
	if s.bvh == nil {
		return core.AABB{}
	}
	return s.bvh.Bounds()
}
