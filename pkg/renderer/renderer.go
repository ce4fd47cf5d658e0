// Package renderer implements the tile-parallel work distribution: an
// atomically-dispatched tile queue, one goroutine per worker each with
// its own deterministic PCG stream, and a film that workers write to
// without contention because tiles partition the image disjointly.
package renderer

import (
	"context"
	"runtime"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/df07/spherefield/pkg/camera"
	"github.com/df07/spherefield/pkg/core"
	"github.com/df07/spherefield/pkg/film"
	"github.com/df07/spherefield/pkg/integrator"
	"github.com/df07/spherefield/pkg/scene"
)

// Options are the renderer-construction parameters. The renderer uses
// MaxDepth as given and substitutes no default for it; the caller sets it
// (config.Default supplies one for the CLI).
type Options struct {
	Width, Height   int
	SamplesPerPixel int
	MaxDepth        int
	Workers         int // 0 means runtime.NumCPU()
	TileSize        int
	Seed            uint64
	RenderID        uuid.UUID // zero value means Render generates one
}

// Stats summarizes a completed render.
type Stats struct {
	RenderID uuid.UUID
	Tiles    int
	Workers  int
	Duration time.Duration
}

// Renderer owns a scene, a camera, and the film it writes into. The scene
// and camera are shared immutably across workers once construction
// completes; the film is shared mutably but pixel writes never alias.
type Renderer struct {
	scene  *scene.Scene
	camera *camera.Camera
	film   *film.Film
	opts   Options
	logger core.Logger
}

// New constructs a Renderer over an already-built scene and camera.
func New(scn *scene.Scene, cam *camera.Camera, opts Options, logger core.Logger) *Renderer {
	if logger == nil {
		logger = core.NopLogger{}
	}
	return &Renderer{
		scene:  scn,
		camera: cam,
		film:   film.New(opts.Width, opts.Height),
		opts:   opts,
		logger: logger,
	}
}

// Film returns the renderer's pixel buffer, valid to read after Render
// returns.
func (r *Renderer) Film() *film.Film {
	return r.film
}

// Render partitions the image into tiles and renders them with one
// goroutine per worker, each pulling tiles from a shared atomic counter
// until the queue is exhausted. It blocks until every worker has joined.
func (r *Renderer) Render(ctx context.Context) (Stats, error) {
	renderID := r.opts.RenderID
	if renderID == uuid.Nil {
		renderID = uuid.New()
	}
	numWorkers := r.opts.Workers
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}

	queue := NewTileQueue(r.opts.Width, r.opts.Height, r.opts.TileSize)
	tracer := integrator.New(r.scene, r.opts.MaxDepth)

	r.logger.Printf("render %s starting: %dx%d, %d spp, %d workers, %d tiles",
		renderID, r.opts.Width, r.opts.Height, r.opts.SamplesPerPixel, numWorkers, queue.Len())

	start := time.Now()
	group, gctx := errgroup.WithContext(ctx)

	for w := 0; w < numWorkers; w++ {
		workerID := w
		group.Go(func() error {
			return r.runWorker(gctx, workerID, queue, tracer)
		})
	}

	if err := group.Wait(); err != nil {
		return Stats{}, err
	}

	stats := Stats{RenderID: renderID, Tiles: queue.Len(), Workers: numWorkers, Duration: time.Since(start)}
	r.logger.Printf("render %s finished in %s", renderID, stats.Duration)
	return stats, nil
}

// runWorker pulls tiles from queue until it is exhausted or ctx is
// cancelled, rendering each with a PCG stream derived solely from this
// worker's id and the render's global seed.
func (r *Renderer) runWorker(ctx context.Context, workerID int, queue *TileQueue, tracer *integrator.PathTracer) error {
	rng := core.NewWorkerRNG(r.opts.Seed, workerID)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		tile, ok := queue.Next()
		if !ok {
			return nil
		}
		r.renderTile(tile, tracer, rng)
	}
}

// renderTile samples every pixel in tile, averages by the configured
// sample count, and writes the result to the film. Distinct tiles never
// write the same pixel, so this needs no synchronization.
func (r *Renderer) renderTile(tile Tile, tracer *integrator.PathTracer, rng *core.RNG) {
	spp := r.opts.SamplesPerPixel
	invSPP := 1 / float32(spp)

	for y := tile.Y0; y < tile.Y1; y++ {
		for x := tile.X0; x < tile.X1; x++ {
			accum := core.Vec3{}
			for s := 0; s < spp; s++ {
				ray := r.camera.ShootRay(x, y, rng)
				accum = accum.Add(tracer.Trace(ray, rng))
			}
			r.film.SetPixel(x, y, accum.Mul(invSPP))
		}
	}
}
