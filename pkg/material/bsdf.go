package material

import (
	"github.com/chewxy/math32"

	"github.com/df07/spherefield/pkg/core"
)

// denomEps guards GGX/Fresnel denominators against division blow-up at
// grazing angles, per spec.md's numerical-hazard policy.
const denomEps = 1e-6

// BSDFSample is the result of sampling a material's BSDF at a hit point.
// Pdf <= 0 signals an invalid sample; the caller must reject the path.
type BSDFSample struct {
	Wi  core.Vec3
	F   core.Vec3
	Pdf float32
}

// Sample draws a scattered direction wi for wo (the direction back toward
// the previous path vertex) at hit, using rng as the only source of
// randomness.
func Sample(m Material, hit core.HitRecord, wo core.Vec3, rng *core.RNG) BSDFSample {
	switch m.Kind {
	case Diffuse:
		return sampleDiffuse(m, hit.Normal, rng)
	case Metal, Physical:
		return sampleConductor(m, hit.Normal, wo, rng)
	case Dielectric:
		return sampleDielectric(m, hit, wo, rng)
	default: // Emissive
		return BSDFSample{}
	}
}

// Eval returns the BSDF value f(wo, wi) for explicit directions.
func Eval(m Material, hit core.HitRecord, wo, wi core.Vec3) core.Vec3 {
	switch m.Kind {
	case Diffuse:
		return evalDiffuse(m, hit.Normal, wi)
	case Metal, Physical:
		return evalConductor(m, hit.Normal, wo, wi)
	default: // Dielectric, Emissive: delta or non-scattering, never evaluated pointwise
		return core.Vec3{}
	}
}

// Pdf returns the probability density of sampling wi via Sample, given wo.
func Pdf(m Material, hit core.HitRecord, wo, wi core.Vec3) float32 {
	switch m.Kind {
	case Diffuse:
		return pdfDiffuse(hit.Normal, wi)
	case Metal, Physical:
		return pdfConductor(m, hit.Normal, wo, wi)
	default: // Dielectric, Emissive
		return 0
	}
}

// ---- Diffuse ----

func evalDiffuse(m Material, n, wi core.Vec3) core.Vec3 {
	if n.Dot(wi) <= 0 {
		return core.Vec3{}
	}
	return m.BaseColor.Mul(1 / math32.Pi)
}

func pdfDiffuse(n, wi core.Vec3) float32 {
	cos := n.Dot(wi)
	if cos < 0 {
		cos = 0
	}
	return cos / math32.Pi
}

func sampleDiffuse(m Material, n core.Vec3, rng *core.RNG) BSDFSample {
	wi := cosineSampleHemisphere(n, rng)
	return BSDFSample{Wi: wi, F: evalDiffuse(m, n, wi), Pdf: pdfDiffuse(n, wi)}
}

func cosineSampleHemisphere(n core.Vec3, rng *core.RNG) core.Vec3 {
	u1 := rng.Uniform01()
	u2 := rng.Uniform01()
	phi := 2 * math32.Pi * u1
	r := math32.Sqrt(u2)
	local := core.NewVec3(math32.Cos(phi)*r, math32.Sin(phi)*r, math32.Sqrt(1-u2))
	return core.NewONB(n).ToWorld(local)
}

// ---- Metal / Physical (GGX + Fresnel-Schlick + Smith) ----

func conductorF0(m Material) core.Vec3 {
	dielectricF0 := core.Splat(0.04)
	return core.Lerp(dielectricF0, m.BaseColor, m.Metallic)
}

func schlickFresnel(f0 core.Vec3, cosTheta float32) core.Vec3 {
	return f0.Add(core.Splat(1).Sub(f0).Mul(pow5(1 - cosTheta)))
}

func pow5(x float32) float32 {
	x2 := x * x
	return x2 * x2 * x
}

func ggxD(nDotH, alpha float32) float32 {
	a2 := alpha * alpha
	denom := nDotH*nDotH*(a2-1) + 1
	return a2 / (math32.Pi * denom * denom)
}

func smithG1(x, k float32) float32 {
	return x / (x*(1-k) + k)
}

func ggxAlpha(roughness float32) float32 {
	a := roughness * roughness
	if a < 0.001 {
		return 0.001
	}
	return a
}

// specularWeight is the Fresnel-driven probability of choosing the
// specular lobe in Sample; Pdf must compute the identical value so the
// two-lobe Monte Carlo estimator stays unbiased.
func specularWeight(n, wo core.Vec3, f0 core.Vec3) float32 {
	nDotV := n.Dot(wo)
	if nDotV < 0 {
		nDotV = 0
	}
	w := schlickFresnel(f0, nDotV).Mean()
	if w < 0.05 {
		return 0.05
	}
	if w > 0.95 {
		return 0.95
	}
	return w
}

func evalConductor(m Material, n, wo, wi core.Vec3) core.Vec3 {
	nDotV := n.Dot(wo)
	nDotL := n.Dot(wi)
	if nDotV <= 0 || nDotL <= 0 {
		return core.Vec3{}
	}

	h := wo.Add(wi).Normalize()
	nDotH := maxF(n.Dot(h), 0)
	vDotH := maxF(wo.Dot(h), 0)
	alpha := ggxAlpha(m.Roughness)

	d := ggxD(nDotH, alpha)
	k := (alpha + 1) * (alpha + 1) / 8
	g := smithG1(nDotV, k) * smithG1(nDotL, k)
	f0 := conductorF0(m)
	f := schlickFresnel(f0, vDotH)

	specular := f.Mul(d * g / maxF(4*nDotV*nDotL, denomEps))
	diffuse := m.BaseColor.Mul((1 - m.Metallic) / math32.Pi)
	return specular.Add(diffuse)
}

func pdfConductor(m Material, n, wo, wi core.Vec3) float32 {
	nDotV := n.Dot(wo)
	nDotL := n.Dot(wi)
	if nDotV <= 0 || nDotL <= 0 {
		return 0
	}

	h := wo.Add(wi).Normalize()
	nDotH := maxF(n.Dot(h), 0)
	vDotH := maxF(wo.Dot(h), 0)
	alpha := ggxAlpha(m.Roughness)

	pSpec := specularWeight(n, wo, conductorF0(m))
	specPdf := ggxD(nDotH, alpha) * nDotH / maxF(4*vDotH, denomEps)
	diffPdf := nDotL / math32.Pi
	return pSpec*specPdf + (1-pSpec)*diffPdf
}

func sampleConductor(m Material, n, wo core.Vec3, rng *core.RNG) BSDFSample {
	f0 := conductorF0(m)
	pSpec := specularWeight(n, wo, f0)

	var wi core.Vec3
	if rng.Uniform01() < pSpec {
		alpha := ggxAlpha(m.Roughness)
		u1 := rng.Uniform01()
		u2 := rng.Uniform01()
		phi := 2 * math32.Pi * u1
		cosTheta := math32.Sqrt((1 - u2) / (1 + (alpha*alpha-1)*u2))
		sinTheta := math32.Sqrt(maxF(1-cosTheta*cosTheta, 0))
		hLocal := core.NewVec3(sinTheta*math32.Cos(phi), sinTheta*math32.Sin(phi), cosTheta)
		h := core.NewONB(n).ToWorld(hLocal)
		wi = reflect(wo.Neg(), h)
		if n.Dot(wi) <= 0 {
			return BSDFSample{Pdf: 0}
		}
	} else {
		wi = cosineSampleHemisphere(n, rng)
	}

	pdf := pdfConductor(m, n, wo, wi)
	if pdf <= 0 {
		return BSDFSample{Pdf: 0}
	}
	return BSDFSample{Wi: wi, F: evalConductor(m, n, wo, wi), Pdf: pdf}
}

// ---- Dielectric (perfect, delta distribution) ----

func sampleDielectric(m Material, hit core.HitRecord, wo core.Vec3, rng *core.RNG) BSDFSample {
	n := hit.Normal
	cosTheta := minF(wo.Dot(n), 1)

	r0 := (1 - m.IOR) / (1 + m.IOR)
	r0 *= r0
	reflProb := r0 + (1-r0)*pow5(1-cosTheta)

	var etaRatio float32
	if hit.FrontFace {
		etaRatio = 1 / m.IOR
	} else {
		etaRatio = m.IOR
	}

	sin2Theta := maxF(1-cosTheta*cosTheta, 0)
	totalInternalReflection := etaRatio*etaRatio*sin2Theta > 1

	var wi core.Vec3
	if totalInternalReflection || rng.Uniform01() < reflProb {
		wi = reflect(wo.Neg(), n)
	} else {
		wi = refract(wo.Neg(), n, etaRatio)
	}

	return BSDFSample{Wi: wi, F: core.Splat(1), Pdf: 1}
}

// ---- shared vector helpers ----

// reflect returns d reflected about surface normal n.
func reflect(d, n core.Vec3) core.Vec3 {
	return d.Sub(n.Mul(2 * d.Dot(n)))
}

// refract returns the Snell's-law refraction of d through normal n with
// ratio eta = etaIncident/etaTransmitted.
func refract(d, n core.Vec3, eta float32) core.Vec3 {
	cosTheta := minF(d.Neg().Dot(n), 1)
	perp := d.Add(n.Mul(cosTheta)).Mul(eta)
	parallel := n.Mul(-math32.Sqrt(maxF(1-perp.LengthSquared(), 0)))
	return perp.Add(parallel)
}

func minF(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

func maxF(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}
