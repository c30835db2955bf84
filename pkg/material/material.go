package material

import (
	"fmt"
	"math"
)

// Material holds the reflectance coefficients of a surface.
// The geometry layer carries it through untouched.
type Material struct {
	Kd        float64 // Diffuse coefficient
	Ks        float64 // Specular coefficient
	Shininess int     // Specular exponent
}

// Default materials for the two plane construction families
var (
	DefaultPointNormalMaterial = Material{Kd: 0.1, Ks: 0.1, Shininess: 2}
	DefaultThreePointMaterial  = Material{Kd: 0.1, Ks: 0.1, Shininess: 3}
)

// NewMaterial creates a new material
func NewMaterial(kd, ks float64, shininess int) Material {
	return Material{Kd: kd, Ks: ks, Shininess: shininess}
}

// Validate checks that the coefficients are usable
func (m Material) Validate() error {
	if math.IsNaN(m.Kd) || math.IsInf(m.Kd, 0) || m.Kd < 0 {
		return fmt.Errorf("invalid diffuse coefficient %v", m.Kd)
	}
	if math.IsNaN(m.Ks) || math.IsInf(m.Ks, 0) || m.Ks < 0 {
		return fmt.Errorf("invalid specular coefficient %v", m.Ks)
	}
	if m.Shininess < 0 {
		return fmt.Errorf("shininess must be non-negative, got %d", m.Shininess)
	}
	return nil
}
