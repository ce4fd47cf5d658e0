// Package camera generates primary rays: a pinhole camera when Aperture is
// zero, or a thin-lens camera with jittered subpixel and disk-sampled
// aperture otherwise.
package camera

import (
	"github.com/chewxy/math32"

	"github.com/df07/spherefield/pkg/core"
)

// maxDiskRejectionAttempts bounds the unit-disk rejection sampler so a
// degenerate RNG stream can never spin forever; the original raytracer
// this spec was distilled from samples the lens the same way.
const maxDiskRejectionAttempts = 64

// Config holds a camera's construction parameters.
type Config struct {
	LookFrom, LookAt, Up core.Vec3
	ImageWidth            int
	ImageHeight           int
	VFovDegrees           float32
	Aperture              float32 // lens diameter; 0 means pinhole
	FocusDistance         float32 // only meaningful when Aperture > 0
}

// Camera generates jittered primary rays for pixel coordinates.
type Camera struct {
	origin                           core.Vec3
	lowerLeft, horizontal, vertical  core.Vec3
	u, v                             core.Vec3
	lensRadius                       float32
	focusDistance                    float32
	width, height                    int
}

// New derives a Camera's viewport from cfg.
func New(cfg Config) *Camera {
	w := cfg.LookFrom.Sub(cfg.LookAt).Normalize()
	u := cfg.Up.Cross(w).Normalize()
	v := w.Cross(u)

	aspect := float32(cfg.ImageWidth) / float32(cfg.ImageHeight)
	theta := cfg.VFovDegrees * math32.Pi / 180
	viewportHeight := 2 * math32.Tan(theta/2)
	viewportWidth := aspect * viewportHeight

	horizontal := u.Mul(viewportWidth)
	vertical := v.Mul(viewportHeight)
	viewportCenter := cfg.LookFrom.Sub(w)
	lowerLeft := viewportCenter.Sub(horizontal.Mul(0.5)).Sub(vertical.Mul(0.5))

	return &Camera{
		origin:        cfg.LookFrom,
		lowerLeft:     lowerLeft,
		horizontal:    horizontal,
		vertical:      vertical,
		u:             u,
		v:             v,
		lensRadius:    cfg.Aperture / 2,
		focusDistance: cfg.FocusDistance,
		width:         cfg.ImageWidth,
		height:        cfg.ImageHeight,
	}
}

// ShootRay generates a ray through pixel (x, y) with subpixel jitter, and
// a disk-sampled lens offset when the camera has a nonzero aperture. Row 0
// is the top of the image.
func (c *Camera) ShootRay(x, y int, rng *core.RNG) core.Ray {
	sx := (float32(x) + rng.Uniform01()) / float32(c.width-1)
	sy := (float32(c.height-1-y) + rng.Uniform01()) / float32(c.height-1)

	target := c.lowerLeft.Add(c.horizontal.Mul(sx)).Add(c.vertical.Mul(sy))
	direction := target.Sub(c.origin)

	if c.lensRadius <= 0 {
		return core.NewRay(c.origin, direction)
	}

	dx, dy := sampleUnitDisk(rng)
	offset := c.u.Mul(dx * c.lensRadius).Add(c.v.Mul(dy * c.lensRadius))
	focusPoint := c.origin.Add(direction.Normalize().Mul(c.focusDistance))
	lensOrigin := c.origin.Add(offset)
	return core.NewRay(lensOrigin, focusPoint.Sub(lensOrigin))
}

// sampleUnitDisk rejection-samples a point in the unit disk.
func sampleUnitDisk(rng *core.RNG) (float32, float32) {
	var x, y float32
	for attempt := 0; attempt < maxDiskRejectionAttempts; attempt++ {
		x = rng.Uniform(-1, 1)
		y = rng.Uniform(-1, 1)
		if x*x+y*y < 1 {
			return x, y
		}
	}
	return x, y
}
