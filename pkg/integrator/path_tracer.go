// Package integrator implements the iterative path tracer: it carries
// throughput across bounces, queries the scene for the nearest
// intersection, invokes the BSDF to pick the next direction, and
// terminates on a background hit, absorption, or the depth cutoff.
//
// Emission is captured only when a camera path directly intersects an
// emissive surface — there is no next-event estimation or explicit light
// sampling here, by design (spec Non-goal).
package integrator

import (
	"github.com/chewxy/math32"

	"github.com/df07/spherefield/pkg/core"
	"github.com/df07/spherefield/pkg/material"
	"github.com/df07/spherefield/pkg/scene"
)

// shadowEps is the minimum ray-origin offset used on every scene query to
// avoid a ray re-intersecting the surface it was just emitted from.
const shadowEps = 1e-2

// skyTop and skyBottom are the gradient endpoints for the default
// background: a simple sky when a path escapes the scene entirely.
var (
	skyBottom = core.NewVec3(1, 1, 1)
	skyTop    = core.NewVec3(0.5, 0.7, 1.0)
)

// PathTracer evaluates the unidirectional Monte Carlo path tracing
// estimator for a single camera ray.
type PathTracer struct {
	scene    *scene.Scene
	maxDepth int
}

// New constructs a PathTracer over scn with a required, explicit depth
// cap — there is no implicit default (spec.md's Open Question on
// maxDepth is resolved by making it mandatory here).
func New(scn *scene.Scene, maxDepth int) *PathTracer {
	return &PathTracer{scene: scn, maxDepth: maxDepth}
}

// Trace computes the color for a single ray.
func (pt *PathTracer) Trace(ray core.Ray, rng *core.RNG) core.Vec3 {
	throughput := core.Splat(1)
	current := ray

	for depth := 0; depth < pt.maxDepth; depth++ {
		hit, ok := pt.scene.Hit(current, shadowEps, math32.Inf(1))
		if !ok {
			return throughput.MulVec(background(current))
		}

		mat := pt.scene.Material(hit.MaterialIndex)
		if mat.Kind == material.Emissive {
			return throughput.MulVec(mat.Emission)
		}

		wo := current.Direction.Normalize().Neg()
		sample := material.Sample(mat, hit, wo, rng)
		if sample.Pdf <= 0 {
			return core.Vec3{}
		}

		cosTheta := math32.Abs(hit.Normal.Dot(sample.Wi))
		if mat.Kind == material.Dielectric {
			throughput = throughput.MulVec(sample.F)
		} else {
			if cosTheta <= 0 {
				return core.Vec3{}
			}
			throughput = throughput.MulVec(sample.F).Mul(cosTheta / sample.Pdf)
		}

		current = core.NewRay(hit.Position, sample.Wi)
	}

	return core.Vec3{}
}

// background returns the sky gradient for a ray that escaped the scene.
func background(ray core.Ray) core.Vec3 {
	dir := ray.Direction.Normalize()
	t := 0.5 * (dir.Y + 1)
	return core.Lerp(skyBottom, skyTop, t)
}
