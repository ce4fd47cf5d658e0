package core

import "github.com/chewxy/math32"

// ONB is an orthonormal basis built around a normal (U x V = -W), used to
// transform cosine-weighted and GGX-weighted local samples into world
// space.
type ONB struct {
	U, V, W Vec3
}

// NewONB builds an orthonormal basis with W aligned to n.
func NewONB(n Vec3) ONB {
	a := Vec3{1, 0, 0}
	if math32.Abs(n.X) > 0.9 {
		a = Vec3{0, 1, 0}
	}
	v := n.Cross(a).Normalize()
	u := n.Cross(v)
	return ONB{U: u, V: v, W: n}
}

// ToWorld transforms a vector from the basis's local frame to world space.
func (b ONB) ToWorld(local Vec3) Vec3 {
	return b.U.Mul(local.X).Add(b.V.Mul(local.Y)).Add(b.W.Mul(local.Z))
}
