// Command spherefield renders a small demo scene of spheres and writes it
// as a PPM (P3) file. Scene authoring, command-line ergonomics beyond
// this, and file-based scene description are out of scope for the
// rendering core this repository implements; this file is the thin,
// external collaborator spec.md treats the CLI entry point as.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/uuid"

	"github.com/df07/spherefield/internal/config"
	"github.com/df07/spherefield/internal/telemetry"
	"github.com/df07/spherefield/pkg/camera"
	"github.com/df07/spherefield/pkg/renderer"
	"github.com/df07/spherefield/pkg/scene"
)

func main() {
	configPath := flag.String("config", "", "path to a TOML render config (optional; defaults are used otherwise)")
	outPath := flag.String("out", "render.ppm", "output PPM path")
	heatmapPath := flag.String("heatmap", "", "optional sample-density heat map PPM path")
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "spherefield: %v\n", err)
			os.Exit(1)
		}
		cfg = loaded
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "spherefield: %v\n", err)
		os.Exit(1)
	}

	logger := telemetry.NewProduction()
	renderID := uuid.New()
	if zl, ok := logger.(*telemetry.ZapLogger); ok {
		logger = zl.WithRenderID(renderID)
	}

	scn := buildDemoScene()
	cam := camera.New(camera.Config{
		LookFrom:      vec(0, 0.75, 2),
		LookAt:        vec(0, 0.5, -1),
		Up:            vec(0, 1, 0),
		ImageWidth:    cfg.Width,
		ImageHeight:   cfg.Height,
		VFovDegrees:   40,
		Aperture:      0.05,
		FocusDistance: 3,
	})

	rend := renderer.New(scn, cam, renderer.Options{
		Width:           cfg.Width,
		Height:          cfg.Height,
		SamplesPerPixel: cfg.SamplesPerPixel,
		MaxDepth:        cfg.MaxDepth,
		Workers:         cfg.Workers,
		TileSize:        cfg.TileSize,
		Seed:            cfg.Seed,
		RenderID:        renderID,
	}, logger)

	stats, err := rend.Render(context.Background())
	if err != nil {
		fmt.Fprintf(os.Stderr, "spherefield: render failed: %v\n", err)
		os.Exit(1)
	}

	if err := rend.Film().WritePPM(*outPath); err != nil {
		fmt.Fprintf(os.Stderr, "spherefield: %v\n", err)
		os.Exit(1)
	}

	if *heatmapPath != "" {
		// The demo driver doesn't track per-pixel sample counts (every
		// pixel gets exactly SamplesPerPixel here, since this core has
		// no adaptive sampling); a uniform grid still exercises the
		// heat map writer end to end.
		counts := make([][]int, cfg.Height)
		for y := range counts {
			counts[y] = make([]int, cfg.Width)
			for x := range counts[y] {
				counts[y][x] = cfg.SamplesPerPixel
			}
		}
		if err := writeHeatmap(*heatmapPath, counts, cfg.SamplesPerPixel); err != nil {
			fmt.Fprintf(os.Stderr, "spherefield: %v\n", err)
		}
	}

	fmt.Printf("rendered %s in %s using %d workers across %d tiles (render %s)\n",
		*outPath, stats.Duration, stats.Workers, stats.Tiles, stats.RenderID)
}

func buildDemoScene() *scene.Scene {
	s := scene.New()

	ground := s.AddMaterial(diffuse(0.5, 0.5, 0.5))
	center := s.AddMaterial(physical(0.6, 0.2, 0.2, 0.3, 0.0))
	left := s.AddMaterial(dielectricMat(1.5))
	right := s.AddMaterial(metalMat(0.8, 0.6, 0.2, 0.1))
	light := s.AddMaterial(emissiveMat(15, 14, 13))

	s.AddSphere(vec(0, -100.5, -1), 100, ground)
	s.AddSphere(vec(0, 0, -1), 0.5, center)
	s.AddSphere(vec(-1, 0, -1), 0.5, left)
	s.AddSphere(vec(1, 0, -1), 0.5, right)
	s.AddSphere(vec(2, 2, 0), 0.5, light)

	s.Build()
	return s
}
