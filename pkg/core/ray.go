package core

// Ray is a parametric ray: origin plus direction. Direction is not
// required to be unit length in general; callers normalize it where the
// spec calls for it (background lookup, disk refraction).
type Ray struct {
	Origin    Vec3
	Direction Vec3
}

// NewRay constructs a Ray.
func NewRay(origin, direction Vec3) Ray {
	return Ray{Origin: origin, Direction: direction}
}

// At returns the point origin + t*direction.
func (r Ray) At(t float32) Vec3 {
	return r.Origin.Add(r.Direction.Mul(t))
}
