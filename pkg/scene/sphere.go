package scene

import (
	"github.com/chewxy/math32"

	"github.com/df07/spherefield/pkg/core"
)

// Sphere is the one geometric primitive this module supports. It needs no
// acceleration structure of its own — the BVH accelerates scene-level
// queries, not the sphere test itself.
type Sphere struct {
	Center        core.Vec3
	Radius        float32
	MaterialIndex int
}

// NewSphere constructs a Sphere.
func NewSphere(center core.Vec3, radius float32, materialIndex int) Sphere {
	return Sphere{Center: center, Radius: radius, MaterialIndex: materialIndex}
}

// Hit solves the analytic ray/sphere quadratic, trying the nearer root
// first. The (tMin, tMax) interval is open so callers can pass a small
// positive tMin and avoid re-hitting the surface a ray was just emitted
// from.
func (s Sphere) Hit(ray core.Ray, tMin, tMax float32) (core.HitRecord, bool) {
	oc := ray.Origin.Sub(s.Center)
	a := ray.Direction.Dot(ray.Direction)
	halfB := ray.Direction.Dot(oc)
	c := oc.Dot(oc) - s.Radius*s.Radius

	discriminant := halfB*halfB - a*c
	if discriminant < 0 {
		return core.HitRecord{}, false
	}
	sq := math32.Sqrt(discriminant)

	root := (-halfB - sq) / a
	if root <= tMin || root >= tMax {
		root = (-halfB + sq) / a
		if root <= tMin || root >= tMax {
			return core.HitRecord{}, false
		}
	}

	position := ray.At(root)
	outwardNormal := position.Sub(s.Center).Mul(1 / s.Radius)

	hit := core.HitRecord{
		Position:      position,
		T:             root,
		MaterialIndex: s.MaterialIndex,
	}
	hit.SetFaceNormal(ray, outwardNormal)
	return hit, true
}

// Bounds returns the sphere's axis-aligned bounding box.
func (s Sphere) Bounds() core.AABB {
	r := core.Splat(s.Radius)
	return core.NewAABB(s.Center.Sub(r), s.Center.Add(r))
}
