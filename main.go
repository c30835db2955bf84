package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/df07/go-plane-tracer/pkg/config"
	"github.com/df07/go-plane-tracer/pkg/core"
	"github.com/df07/go-plane-tracer/pkg/geometry"
	"github.com/df07/go-plane-tracer/pkg/probe"
)

func main() {
	// Parse command line flags
	configPath := flag.String("config", "", "Probe file (.toml, .yaml or .yml) describing a plane and rays")
	workers := flag.Int("workers", 0, "Number of parallel workers (0 = use CPU count)")
	quiet := flag.Bool("quiet", false, "Only print the summary")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	// Show help if requested
	if *help || *configPath == "" {
		fmt.Println("Plane Tracer")
		fmt.Println("Usage: plane-tracer -config probe.toml [options]")
		fmt.Println()
		fmt.Println("Options:")
		flag.PrintDefaults()
		fmt.Println()
		fmt.Println("Each ray is reported as a hit (with its parameter and point) or a miss with")
		fmt.Println("its reason: parallel, degenerate, behind-origin, origin-on-plane, out-of-range.")
		if !*help {
			os.Exit(2)
		}
		return
	}

	logger := core.NewDefaultLogger()
	if err := run(context.Background(), *configPath, *workers, *quiet, logger); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// loadProbe reads the probe file and builds its plane and rays
func loadProbe(path string) (*geometry.Plane, []core.Ray, error) {
	file, err := config.Load(path)
	if err != nil {
		return nil, nil, err
	}
	plane, err := file.BuildPlane()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to build plane: %w", err)
	}
	rays, err := file.BuildRays()
	if err != nil {
		return nil, nil, err
	}
	return plane, rays, nil
}

func run(ctx context.Context, path string, workers int, quiet bool, logger core.Logger) error {
	plane, rays, err := loadProbe(path)
	if err != nil {
		return err
	}
	logger.Printf("Loaded %v (orientation: %v)\n", plane, plane.Orientation())

	poolLogger := logger
	if quiet {
		poolLogger = core.NopLogger{}
	}

	startTime := time.Now()
	results, err := probe.NewWorkerPool(plane, workers, poolLogger).Run(ctx, rays)
	if err != nil {
		return err
	}
	elapsed := time.Since(startTime)

	if !quiet {
		for _, r := range results {
			logger.Printf("ray %d origin=%v direction=%v: %v", r.Index, r.Ray.Origin, r.Ray.Direction, r.Intersection)
			if r.Intersection.Hit() {
				logger.Printf(" normal=%v", plane.NormalAt(r.Intersection.Point))
			}
			logger.Printf("\n")
		}
	}
	logger.Printf("%v in %v\n", probe.Summarize(results), elapsed)
	return nil
}
