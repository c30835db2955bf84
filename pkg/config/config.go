package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/df07/go-plane-tracer/pkg/core"
	"github.com/df07/go-plane-tracer/pkg/geometry"
	"github.com/df07/go-plane-tracer/pkg/material"
)

// ErrInvalidConfig is returned for structurally invalid probe files
var ErrInvalidConfig = errors.New("invalid config")

// Format identifies a probe file encoding
type Format string

const (
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
)

// File is a probe description: one plane and the rays to shoot at it
type File struct {
	Tolerances ToleranceConfig `toml:"tolerances" yaml:"tolerances"`
	Plane      PlaneConfig     `toml:"plane" yaml:"plane"`
	Rays       []RayConfig     `toml:"rays" yaml:"rays"`
}

// ToleranceConfig overrides intersection tolerances; zero values keep the defaults
type ToleranceConfig struct {
	Parallel      float64 `toml:"parallel" yaml:"parallel"`
	Origin        float64 `toml:"origin" yaml:"origin"`
	MaxCoordinate float64 `toml:"max_coordinate" yaml:"max_coordinate"`
	Orientation   string  `toml:"orientation" yaml:"orientation"`
}

// PlaneConfig describes a plane by point and normal, or by three points
type PlaneConfig struct {
	Point    []float64       `toml:"point" yaml:"point"`
	Normal   []float64       `toml:"normal" yaml:"normal"`
	Points   [][]float64     `toml:"points" yaml:"points"`
	Emission []float64       `toml:"emission" yaml:"emission"`
	Material *MaterialConfig `toml:"material" yaml:"material"`
}

// MaterialConfig is the serialized form of material.Material
type MaterialConfig struct {
	Kd        float64 `toml:"kd" yaml:"kd"`
	Ks        float64 `toml:"ks" yaml:"ks"`
	Shininess int     `toml:"shininess" yaml:"shininess"`
}

// RayConfig is the serialized form of core.Ray
type RayConfig struct {
	Origin    []float64 `toml:"origin" yaml:"origin"`
	Direction []float64 `toml:"direction" yaml:"direction"`
}

// FormatFromPath picks the format by file extension
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: unsupported file extension %q", ErrInvalidConfig, filepath.Ext(path))
	}
}

// Load reads a probe file from disk
func Load(path string) (*File, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open config: %w", err)
	}
	defer f.Close()

	file, err := Parse(f, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return file, nil
}

// Parse decodes a probe file from a reader
func Parse(r io.Reader, format Format) (*File, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var file File
	switch format {
	case FormatTOML:
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		err = dec.Decode(&file)
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		err = dec.Decode(&file)
		if errors.Is(err, io.EOF) {
			err = nil
		}
	default:
		return nil, fmt.Errorf("%w: unknown format %q", ErrInvalidConfig, format)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return &file, nil
}

// BuildTolerances merges the overrides into the default tolerances
func (tc ToleranceConfig) BuildTolerances() (geometry.Tolerances, geometry.Orientation, error) {
	tol := geometry.DefaultTolerances()
	if tc.Parallel != 0 {
		tol.Parallel = core.Tolerance(tc.Parallel)
	}
	if tc.Origin != 0 {
		tol.Origin = core.Tolerance(tc.Origin)
	}
	if tc.MaxCoordinate != 0 {
		tol.MaxCoordinate = tc.MaxCoordinate
	}
	if err := tol.Validate(); err != nil {
		return tol, 0, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	orientation, err := geometry.ParseOrientation(tc.Orientation)
	if err != nil {
		return tol, 0, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return tol, orientation, nil
}

// BuildPlane constructs the configured plane
func (f *File) BuildPlane() (*geometry.Plane, error) {
	tol, orientation, err := f.Tolerances.BuildTolerances()
	if err != nil {
		return nil, err
	}
	opts := []geometry.Option{
		geometry.WithTolerances(tol),
		geometry.WithOrientation(orientation),
	}
	if m := f.Plane.Material; m != nil {
		opts = append(opts, geometry.WithMaterial(material.NewMaterial(m.Kd, m.Ks, m.Shininess)))
	}

	emission := core.Vec3{}
	if f.Plane.Emission != nil {
		if emission, err = toVec3("plane.emission", f.Plane.Emission); err != nil {
			return nil, err
		}
	}

	pc := f.Plane
	switch {
	case pc.Points != nil && (pc.Point != nil || pc.Normal != nil):
		return nil, fmt.Errorf("%w: plane needs either point+normal or points, not both", ErrInvalidConfig)
	case pc.Points != nil:
		if len(pc.Points) != 3 {
			return nil, fmt.Errorf("%w: plane.points needs 3 points, got %d", ErrInvalidConfig, len(pc.Points))
		}
		var pts [3]core.Vec3
		for i, raw := range pc.Points {
			if pts[i], err = toVec3(fmt.Sprintf("plane.points[%d]", i), raw); err != nil {
				return nil, err
			}
		}
		return geometry.NewPlaneFromPoints(pts[0], pts[1], pts[2], emission, opts...)
	default:
		point, err := toVec3("plane.point", pc.Point)
		if err != nil {
			return nil, err
		}
		normal, err := toVec3("plane.normal", pc.Normal)
		if err != nil {
			return nil, err
		}
		return geometry.NewPlane(point, normal, emission, opts...)
	}
}

// BuildRays converts the configured rays
func (f *File) BuildRays() ([]core.Ray, error) {
	rays := make([]core.Ray, 0, len(f.Rays))
	for i, rc := range f.Rays {
		origin, err := toVec3(fmt.Sprintf("rays[%d].origin", i), rc.Origin)
		if err != nil {
			return nil, err
		}
		direction, err := toVec3(fmt.Sprintf("rays[%d].direction", i), rc.Direction)
		if err != nil {
			return nil, err
		}
		rays = append(rays, core.NewRay(origin, direction))
	}
	return rays, nil
}

func toVec3(field string, values []float64) (core.Vec3, error) {
	if len(values) != 3 {
		return core.Vec3{}, fmt.Errorf("%w: %s needs 3 components, got %d", ErrInvalidConfig, field, len(values))
	}
	return core.NewVec3(values[0], values[1], values[2]), nil
}
