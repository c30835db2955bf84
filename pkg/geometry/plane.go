package geometry

import (
	"errors"
	"fmt"
	"math"

	"github.com/df07/go-plane-tracer/pkg/core"
	"github.com/df07/go-plane-tracer/pkg/material"
)

// ErrInvalidGeometry is returned when construction inputs do not define a plane
var ErrInvalidGeometry = errors.New("invalid geometry")

// Plane represents an infinite plane defined by a point and a unit normal.
// A Plane is immutable and safe for concurrent use.
type Plane struct {
	point       core.Vec3 // A point on the plane
	normal      core.Vec3 // Unit normal, fixed at construction
	attrs       material.Attributes
	tolerances  Tolerances
	orientation Orientation
}

// Option configures plane construction
type Option func(*planeOptions)

type planeOptions struct {
	material    *material.Material
	tolerances  Tolerances
	orientation Orientation
}

// WithMaterial sets an explicit material instead of the construction default
func WithMaterial(m material.Material) Option {
	return func(o *planeOptions) {
		o.material = &m
	}
}

// WithTolerances overrides the intersection tolerances
func WithTolerances(t Tolerances) Option {
	return func(o *planeOptions) {
		o.tolerances = t
	}
}

// WithOrientation selects how NormalAt picks a side
func WithOrientation(orientation Orientation) Option {
	return func(o *planeOptions) {
		o.orientation = orientation
	}
}

// NewPlane creates a plane through point with the given normal direction.
// The normal is normalized; a zero-length normal is an ErrInvalidGeometry.
func NewPlane(point, normal, emission core.Vec3, opts ...Option) (*Plane, error) {
	if !point.IsFinite() || !normal.IsFinite() {
		return nil, fmt.Errorf("%w: non-finite point %v or normal %v", ErrInvalidGeometry, point, normal)
	}
	unit, err := normal.Unit()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidGeometry, err)
	}
	return newPlane(point, unit, emission, material.DefaultPointNormalMaterial, opts)
}

// NewPlaneFromPoints creates the plane through three points, anchored at p1.
// The normal is (p2-p1) × (p3-p1) normalized, so its direction follows the winding of the
// points. Collinear points fail with ErrInvalidGeometry.
func NewPlaneFromPoints(p1, p2, p3, emission core.Vec3, opts ...Option) (*Plane, error) {
	if !p1.IsFinite() || !p2.IsFinite() || !p3.IsFinite() {
		return nil, fmt.Errorf("%w: non-finite point among %v, %v, %v", ErrInvalidGeometry, p1, p2, p3)
	}
	// Unit edges keep the cross product in range and make its length the sine of
	// the angle between them
	edge1, err1 := p2.Subtract(p1).Unit()
	edge2, err2 := p3.Subtract(p1).Unit()
	if err1 != nil || err2 != nil {
		return nil, fmt.Errorf("%w: points %v, %v, %v are coincident or too far apart", ErrInvalidGeometry, p1, p2, p3)
	}
	cross := edge1.Cross(edge2)
	if CollinearEpsilon.IsZero(cross.Length()) {
		return nil, fmt.Errorf("%w: points %v, %v, %v are collinear", ErrInvalidGeometry, p1, p2, p3)
	}
	unit, err := cross.Unit()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidGeometry, err)
	}
	return newPlane(p1, unit, emission, material.DefaultThreePointMaterial, opts)
}

func newPlane(point, unitNormal, emission core.Vec3, defaultMaterial material.Material, opts []Option) (*Plane, error) {
	o := planeOptions{tolerances: DefaultTolerances()}
	for _, opt := range opts {
		opt(&o)
	}

	mat := defaultMaterial
	if o.material != nil {
		mat = *o.material
	}
	if err := mat.Validate(); err != nil {
		return nil, fmt.Errorf("plane material: %w", err)
	}
	if err := o.tolerances.Validate(); err != nil {
		return nil, fmt.Errorf("plane tolerances: %w", err)
	}

	return &Plane{
		point:       point,
		normal:      unitNormal,
		attrs:       material.NewAttributes(emission, mat),
		tolerances:  o.tolerances,
		orientation: o.orientation,
	}, nil
}

// Point returns the anchor point of the plane
func (p *Plane) Point() core.Vec3 {
	return p.point
}

// Normal returns the stored unit normal without any side adjustment
func (p *Plane) Normal() core.Vec3 {
	return p.normal
}

// Attributes returns the plane's shading attributes
func (p *Plane) Attributes() material.Attributes {
	return p.attrs
}

// Tolerances returns the intersection tolerances
func (p *Plane) Tolerances() Tolerances {
	return p.tolerances
}

// Orientation returns the side strategy used by NormalAt
func (p *Plane) Orientation() Orientation {
	return p.orientation
}

// NormalAt returns the normal facing the side of the plane that contains pt
func (p *Plane) NormalAt(pt core.Vec3) core.Vec3 {
	return p.orientation.Orient(pt, p.point, p.normal)
}

// Classify computes the intersection of the ray with the plane.
// Every degenerate configuration is reported as a miss, never as an error.
func (p *Plane) Classify(ray core.Ray) Intersection {
	// Ray parallel to the plane (or zero direction). The test is on the cosine of the
	// angle so it does not depend on the length of the direction.
	unitDir, err := ray.Direction.Unit()
	if err != nil || p.tolerances.Parallel.IsZero(unitDir.Dot(p.normal)) {
		return miss(Parallel)
	}
	denominator := ray.Direction.Dot(p.normal)

	// Ray starts exactly on the anchor point
	toPlane := p.point.Subtract(ray.Origin)
	if toPlane.IsZero() {
		return miss(OriginOnPlane)
	}

	// t = (point_on_plane - ray_origin) · normal / (ray_direction · normal)
	t := p.normal.Dot(toPlane) / denominator
	if math.IsNaN(t) || math.IsInf(t, 0) {
		return miss(Degenerate)
	}

	// Rays are half-lines
	if t < 0 {
		return miss(BehindOrigin)
	}
	if p.tolerances.Origin.IsZero(t) {
		return miss(OriginOnPlane)
	}

	hitPoint := ray.At(t)
	if !hitPoint.IsFinite() || hitPoint.MaxAbs() > p.tolerances.MaxCoordinate {
		return miss(OutOfRange)
	}

	return hit(t, hitPoint)
}

// Intersect returns the single forward intersection of the ray, or nil
func (p *Plane) Intersect(ray core.Ray) []GeoPoint {
	isect := p.Classify(ray)
	if !isect.Hit() {
		return nil
	}
	return []GeoPoint{{Geometry: p, Point: isect.Point}}
}

func (p *Plane) String() string {
	return fmt.Sprintf("Plane{point: %v, normal: %v}", p.point, p.normal)
}
