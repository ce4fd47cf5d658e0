// Package film accumulates per-pixel linear RGB color, gamma-corrects at
// emission, and writes the plain ASCII PPM (P3) format.
package film

import (
	"bufio"
	"fmt"
	"math"
	"os"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/df07/spherefield/pkg/core"
)

// gamma is fixed at 2.0 (a sqrt) per spec; this is not sRGB companding.
const gamma = 2.0

// Film is the renderer's exclusively-owned pixel buffer: width, height,
// and a contiguous row-major buffer of linear RGB pixels, stored as
// go-colorful Colors. The sample-density heat map below does not read
// this buffer; it is written from a separate grid of sample counts.
type Film struct {
	Width, Height int
	pixels        []colorful.Color
}

// New allocates a black width x height film.
func New(width, height int) *Film {
	return &Film{Width: width, Height: height, pixels: make([]colorful.Color, width*height)}
}

func (f *Film) index(x, y int) int {
	return y*f.Width + x
}

// SetPixel writes the averaged linear color for pixel (x, y).
func (f *Film) SetPixel(x, y int, color core.Vec3) {
	f.pixels[f.index(x, y)] = colorful.Color{R: float64(color.X), G: float64(color.Y), B: float64(color.Z)}
}

// Pixel returns the linear color currently stored at (x, y).
func (f *Film) Pixel(x, y int) core.Vec3 {
	c := f.pixels[f.index(x, y)]
	return core.NewVec3(float32(c.R), float32(c.G), float32(c.B))
}

// quantize applies the spec's fixed gamma-2.0 pixel quantization:
// floor(256 * clamp(sqrt(linear), 0, 0.999)).
func quantize(linear float64) int {
	v := math.Pow(math.Max(linear, 0), 1/gamma)
	if v > 0.999 {
		v = 0.999
	}
	if v < 0 {
		v = 0
	}
	return int(math.Floor(256 * v))
}

// WritePPM emits the film as a plain ASCII PPM (P3) file. On any I/O
// failure it reports a single non-recoverable error to the caller and
// leaves no partial file contract beyond what has already been flushed —
// this is the only user-visible failure mode in the whole pipeline.
func (f *Film) WritePPM(path string) error {
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("film: open %s: %w", path, err)
	}
	defer out.Close()

	w := bufio.NewWriter(out)
	fmt.Fprintf(w, "P3\n%d %d\n255\n", f.Width, f.Height)

	for y := 0; y < f.Height; y++ {
		for x := 0; x < f.Width; x++ {
			c := f.pixels[f.index(x, y)]
			fmt.Fprintf(w, "%d %d %d\n", quantize(c.R), quantize(c.G), quantize(c.B))
		}
	}

	if err := w.Flush(); err != nil {
		return fmt.Errorf("film: write %s: %w", path, err)
	}
	return nil
}

// WriteSampleHeatmap writes a false-color PPM where each pixel's hue
// encodes how many samples it received relative to target, a render
// diagnostic rather than part of the image pipeline proper. Warm hues
// (red) mark pixels that used close to target samples; cool hues (blue)
// mark pixels that converged early under adaptive termination policies a
// caller may layer on top of this film.
func WriteSampleHeatmap(path string, counts [][]int, target int) error {
	if target <= 0 {
		target = 1
	}
	height := len(counts)
	if height == 0 {
		return fmt.Errorf("film: heatmap: empty sample grid")
	}
	width := len(counts[0])

	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("film: open %s: %w", path, err)
	}
	defer out.Close()

	w := bufio.NewWriter(out)
	fmt.Fprintf(w, "P3\n%d %d\n255\n", width, height)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			frac := float64(counts[y][x]) / float64(target)
			if frac > 1 {
				frac = 1
			}
			// Hue sweeps blue (240deg, cold/low) to red (0deg, hot/high).
			hue := 240 * (1 - frac)
			c := colorful.Hsv(hue, 0.85, 0.95)
			r, g, b := c.Clamped().RGB255()
			fmt.Fprintf(w, "%d %d %d\n", r, g, b)
		}
	}

	if err := w.Flush(); err != nil {
		return fmt.Errorf("film: write %s: %w", path, err)
	}
	return nil
}
