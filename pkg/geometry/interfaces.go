package geometry

import (
	"github.com/df07/go-plane-tracer/pkg/core"
	"github.com/df07/go-plane-tracer/pkg/material"
)

// Geometry interface for primitives that can be intersected by rays
type Geometry interface {
	// NormalAt returns the surface normal oriented toward the side containing p
	NormalAt(p core.Vec3) core.Vec3
	// Intersect returns the forward hits of the ray, nil if there are none
	Intersect(ray core.Ray) []GeoPoint
	Attributes() material.Attributes
}

// GeoPoint pairs an intersection point with the geometry that produced it
type GeoPoint struct {
	Geometry Geometry
	Point    core.Vec3
}

// Normal returns the producing geometry's normal at the point
func (g GeoPoint) Normal() core.Vec3 {
	return g.Geometry.NormalAt(g.Point)
}

// Material returns the producing geometry's material
func (g GeoPoint) Material() material.Material {
	return g.Geometry.Attributes().Material
}

// Emission returns the producing geometry's emitted color
func (g GeoPoint) Emission() core.Vec3 {
	return g.Geometry.Attributes().Emit()
}
