package core

import (
	"errors"
	"fmt"
	"math"

	"github.com/golang/geo/r3"
)

// ErrZeroVector is returned when a zero-length vector cannot be normalized
var ErrZeroVector = errors.New("zero-length vector cannot be normalized")

// Vec3 represents a 3D point or vector
type Vec3 r3.Vector

// NewVec3 creates a new Vec3
func NewVec3(x, y, z float64) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

func (v Vec3) r3() r3.Vector {
	return r3.Vector(v)
}

// Add returns the sum of two vectors
func (v Vec3) Add(other Vec3) Vec3 {
	return Vec3(v.r3().Add(other.r3()))
}

// Subtract returns the difference of two vectors
func (v Vec3) Subtract(other Vec3) Vec3 {
	return Vec3(v.r3().Sub(other.r3()))
}

// Multiply returns the vector scaled by a scalar
func (v Vec3) Multiply(scalar float64) Vec3 {
	return Vec3(v.r3().Mul(scalar))
}

// Length returns the magnitude of the vector
func (v Vec3) Length() float64 {
	return v.r3().Norm()
}

// Dot returns the dot product of two vectors
func (v Vec3) Dot(other Vec3) float64 {
	return v.r3().Dot(other.r3())
}

// Cross returns the cross product of two vectors
func (v Vec3) Cross(other Vec3) Vec3 {
	return Vec3(v.r3().Cross(other.r3()))
}

// Negate returns the negative of the vector. Zero components stay +0.
func (v Vec3) Negate() Vec3 {
	return Vec3(r3.Vector{}.Sub(v.r3()))
}

// Normalize returns a unit vector in the same direction.
// A zero vector is returned unchanged; use Unit when that must be an error.
func (v Vec3) Normalize() Vec3 {
	if v.IsZero() {
		return Vec3{}
	}
	return Vec3(v.r3().Normalize())
}

// Unit returns a unit vector in the same direction, or ErrZeroVector.
// The vector is rescaled by its largest component first so that very small or very
// large inputs do not underflow or overflow while squaring.
func (v Vec3) Unit() (Vec3, error) {
	m := v.MaxAbs()
	if m == 0 || !isFinite(m) {
		return Vec3{}, ErrZeroVector
	}
	scaled := Vec3{X: v.X / m, Y: v.Y / m, Z: v.Z / m}
	unit := Vec3(scaled.r3().Normalize())
	if !unit.IsFinite() || Compare(unit.Length(), 1) != 0 {
		return Vec3{}, ErrZeroVector
	}
	return unit, nil
}

// IsZero reports whether every component is exactly zero
func (v Vec3) IsZero() bool {
	return v.X == 0 && v.Y == 0 && v.Z == 0
}

// IsFinite reports whether no component is NaN or infinite
func (v Vec3) IsFinite() bool {
	return isFinite(v.X) && isFinite(v.Y) && isFinite(v.Z)
}

// MaxAbs returns the largest absolute component
func (v Vec3) MaxAbs() float64 {
	return max(math.Abs(v.X), math.Abs(v.Y), math.Abs(v.Z))
}

func (v Vec3) String() string {
	return fmt.Sprintf("(%g, %g, %g)", v.X, v.Y, v.Z)
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// Ray represents a ray with an origin and direction
type Ray struct {
	Origin    Vec3
	Direction Vec3
}

// NewRay creates a new ray
func NewRay(origin, direction Vec3) Ray {
	return Ray{Origin: origin, Direction: direction}
}

// At returns the point at parameter t along the ray
func (r Ray) At(t float64) Vec3 {
	return r.Origin.Add(r.Direction.Multiply(t))
}
