package geometry

import (
	"fmt"
	"math"

	"github.com/df07/go-plane-tracer/pkg/core"
)

// Default tolerances for ray-plane intersection
const (
	DefaultParallelEpsilon core.Tolerance = 1e-6
	DefaultOriginEpsilon   core.Tolerance = 1e-7
	// Coordinates beyond this are treated as floating point blow-up
	DefaultMaxCoordinate = 999999999.0

	// Three points whose unit edges have a cross product shorter than this are collinear
	CollinearEpsilon core.Tolerance = 1e-10
)

// Tolerances controls which configurations count as a miss
type Tolerances struct {
	Parallel      core.Tolerance // |cos| of the ray/normal angle within this means parallel
	Origin        core.Tolerance // |t| within this means the ray starts on the plane
	MaxCoordinate float64        // Hit points with a larger |coordinate| are rejected
}

// DefaultTolerances returns the tolerances used when none are given
func DefaultTolerances() Tolerances {
	return Tolerances{
		Parallel:      DefaultParallelEpsilon,
		Origin:        DefaultOriginEpsilon,
		MaxCoordinate: DefaultMaxCoordinate,
	}
}

// Validate checks that every tolerance is usable
func (t Tolerances) Validate() error {
	if !t.Parallel.Valid() {
		return fmt.Errorf("invalid parallel epsilon %v", float64(t.Parallel))
	}
	if !t.Origin.Valid() {
		return fmt.Errorf("invalid origin epsilon %v", float64(t.Origin))
	}
	if math.IsNaN(t.MaxCoordinate) || t.MaxCoordinate <= 0 {
		return fmt.Errorf("max coordinate must be positive, got %v", t.MaxCoordinate)
	}
	return nil
}
