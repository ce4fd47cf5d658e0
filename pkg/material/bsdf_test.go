package material

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"

	"github.com/df07/spherefield/pkg/core"
)

func upHit() core.HitRecord {
	return core.HitRecord{Normal: core.NewVec3(0, 0, 1), FrontFace: true}
}

func TestDiffuseCosineWeightedMean(t *testing.T) {
	m := NewDiffuse(core.NewVec3(0.8, 0.8, 0.8))
	n := core.NewVec3(0, 0, 1)
	rng := core.NewRNG(1, 1)

	const samples = 200000
	var sumCos float64
	for i := 0; i < samples; i++ {
		s := sampleDiffuse(m, n, rng)
		cos := n.Dot(s.Wi)
		assert.GreaterOrEqual(t, cos, float32(-1e-5))
		sumCos += float64(cos)
	}
	mean := sumCos / samples
	assert.InDelta(t, 2.0/3.0, mean, 0.02)
}

func TestDiffusePdfMatchesCosineLaw(t *testing.T) {
	n := core.NewVec3(0, 0, 1)
	wi := core.NewVec3(0, 0.6, 0.8).Normalize()
	expected := float64(n.Dot(wi)) / float64(math32.Pi)
	assert.InDelta(t, expected, float64(pdfDiffuse(n, wi)), 1e-6)
}

func TestDiffuseSampleAndPdfAreConsistent(t *testing.T) {
	hit := upHit()
	m := NewDiffuse(core.Splat(0.5))
	rng := core.NewRNG(3, 3)

	for i := 0; i < 100; i++ {
		s := Sample(m, hit, core.NewVec3(0, 0, 1), rng)
		got := Pdf(m, hit, core.NewVec3(0, 0, 1), s.Wi)
		assert.InDelta(t, float64(s.Pdf), float64(got), 1e-6)
	}
}

func TestConductorSampleStaysAboveHemisphereMostly(t *testing.T) {
	m := NewMetal(core.NewVec3(0.9, 0.9, 0.9), 0.3)
	n := core.NewVec3(0, 0, 1)
	wo := core.NewVec3(0, 0, 1)
	hit := upHit()
	rng := core.NewRNG(11, 2)

	const samples = 2000
	above := 0
	for i := 0; i < samples; i++ {
		s := Sample(m, hit, wo, rng)
		if s.Pdf > 0 && n.Dot(s.Wi) >= 0 {
			above++
		}
	}
	frac := float64(above) / samples
	assert.GreaterOrEqual(t, frac, 0.95)
}

func TestConductorEvalPdfConsistency(t *testing.T) {
	m := NewPhysical(core.NewVec3(0.7, 0.3, 0.2), 0.4, 0.5)
	hit := upHit()
	wo := core.NewVec3(0, 0, 1)
	rng := core.NewRNG(21, 4)

	for i := 0; i < 50; i++ {
		s := sampleConductor(m, hit.Normal, wo, rng)
		if s.Pdf <= 0 {
			continue
		}
		f := evalConductor(m, hit.Normal, wo, s.Wi)
		assert.InDelta(t, float64(s.F.X), float64(f.X), 1e-5)
		assert.InDelta(t, float64(s.F.Y), float64(f.Y), 1e-5)
		assert.InDelta(t, float64(s.F.Z), float64(f.Z), 1e-5)
		assert.InDelta(t, float64(s.Pdf), float64(pdfConductor(m, hit.Normal, wo, s.Wi)), 1e-5)
	}
}

func TestDielectricReflectionProbabilityAtNormalIncidence(t *testing.T) {
	m := NewDielectric(1.5)
	n := core.NewVec3(1, 0, 0)
	hit := core.HitRecord{Normal: n, FrontFace: true}
	wo := n // normal incidence: the direction back toward the viewer equals the normal
	rng := core.NewRNG(99, 5)

	const samples = 20000
	reflections := 0
	for i := 0; i < samples; i++ {
		s := sampleDielectric(m, hit, wo, rng)
		if s.Wi.Dot(n) > 0 { // reflected back on the incident side
			reflections++
		}
	}
	r0 := (0.5 / 2.5) * (0.5 / 2.5)
	frac := float64(reflections) / samples
	assert.InDelta(t, r0, frac, 0.01)
}

func TestDielectricRefractionFollowsSnellsLaw(t *testing.T) {
	n := core.NewVec3(0, 0, 1)
	eta := float32(1.0 / 1.5)
	// Incident direction at 30 degrees off the normal.
	thetaI := math32.Pi / 6
	d := core.NewVec3(math32.Sin(thetaI), 0, -math32.Cos(thetaI))

	wt := refract(d, n, eta)

	sinThetaI := math32.Sin(thetaI)
	sinThetaT := math32.Sqrt(wt.X*wt.X + wt.Y*wt.Y)
	assert.InDelta(t, float64(eta), float64(sinThetaT/sinThetaI), 1e-4)
}

func TestReflectAboutNormal(t *testing.T) {
	d := core.NewVec3(1, -1, 0).Normalize()
	n := core.NewVec3(0, 1, 0)
	r := reflect(d, n)
	assert.InDelta(t, float64(d.X), float64(r.X), 1e-5)
	assert.InDelta(t, float64(-d.Y), float64(r.Y), 1e-5)
}

func TestEmissiveHasNoScatter(t *testing.T) {
	m := NewEmissive(core.NewVec3(5, 5, 5))
	hit := upHit()
	rng := core.NewRNG(1, 1)

	s := Sample(m, hit, core.NewVec3(0, 0, 1), rng)
	assert.Equal(t, float32(0), s.Pdf)
}
