package camera

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/df07/spherefield/pkg/core"
)

func pinholeConfig() Config {
	return Config{
		LookFrom:      core.NewVec3(0, 0, 5),
		LookAt:        core.NewVec3(0, 0, 0),
		Up:            core.NewVec3(0, 1, 0),
		ImageWidth:    4,
		ImageHeight:   4,
		VFovDegrees:   90,
		Aperture:      0,
		FocusDistance: 1,
	}
}

func TestPinholeCenterRayPointsNearOrigin(t *testing.T) {
	cfg := pinholeConfig()
	cfg.ImageWidth = 201
	cfg.ImageHeight = 201
	cam := New(cfg)
	rng := core.NewRNG(1, 1)

	// The exact-center pixel of an odd-sized image maps to sx=sy=0.5
	// within one jitter-sized sliver; its direction should point almost
	// straight at the scene origin from (0,0,5), i.e. roughly -Z.
	center := 100
	var sumDir core.Vec3
	const n = 200
	for i := 0; i < n; i++ {
		ray := cam.ShootRay(center, center, rng)
		sumDir = sumDir.Add(ray.Direction.Normalize())
	}
	avg := sumDir.Mul(1.0 / n).Normalize()

	assert.InDelta(t, 0.0, float64(avg.X), 0.02)
	assert.InDelta(t, 0.0, float64(avg.Y), 0.02)
	assert.Less(t, avg.Z, float32(0)) // looking toward -Z
}

func TestPinholeOriginNeverOffset(t *testing.T) {
	cam := New(pinholeConfig())
	rng := core.NewRNG(2, 2)

	for i := 0; i < 20; i++ {
		ray := cam.ShootRay(0, 0, rng)
		assert.Equal(t, core.NewVec3(0, 0, 5), ray.Origin)
	}
}

func TestThinLensOffsetsOrigin(t *testing.T) {
	cfg := pinholeConfig()
	cfg.Aperture = 1
	cfg.FocusDistance = 5
	cam := New(cfg)
	rng := core.NewRNG(3, 3)

	sawOffset := false
	for i := 0; i < 50; i++ {
		ray := cam.ShootRay(2, 2, rng)
		if ray.Origin != core.NewVec3(0, 0, 5) {
			sawOffset = true
			break
		}
	}
	assert.True(t, sawOffset)
}

func TestSampleUnitDiskStaysInsideUnitCircle(t *testing.T) {
	rng := core.NewRNG(4, 4)
	for i := 0; i < 10000; i++ {
		x, y := sampleUnitDisk(rng)
		assert.LessOrEqual(t, x*x+y*y, float32(1))
	}
}
