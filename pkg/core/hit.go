package core

// HitRecord describes a ray/primitive intersection. Normal always points
// against the incoming ray (dot(Normal, incoming direction) <= 0) and is
// unit length.
type HitRecord struct {
	Position      Vec3
	Normal        Vec3
	T             float32
	FrontFace     bool
	MaterialIndex int
}

// SetFaceNormal orients outwardNormal against the ray direction and
// records whether the hit was on the front face.
func (h *HitRecord) SetFaceNormal(ray Ray, outwardNormal Vec3) {
	h.FrontFace = ray.Direction.Dot(outwardNormal) < 0
	if h.FrontFace {
		h.Normal = outwardNormal
	} else {
		h.Normal = outwardNormal.Neg()
	}
}

// Primitive is anything the BVH can bound and intersect. Sphere is the
// only implementation in this spec, but the BVH and its traversal never
// assume that — a leaf just holds an index into the scene's flattened
// primitive list, and resolving a primitive kind to a concrete type
// happens one level up, in Scene.Build.
type Primitive interface {
	Bounds() AABB
	Hit(ray Ray, tMin, tMax float32) (HitRecord, bool)
}
