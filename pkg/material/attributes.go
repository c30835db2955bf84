package material

import (
	"github.com/df07/go-plane-tracer/pkg/core"
)

// Attributes is the shading data every geometry carries: an emitted color and a material
type Attributes struct {
	Emission core.Vec3 // Emitted light color/intensity
	Material Material
}

// NewAttributes creates shading attributes
func NewAttributes(emission core.Vec3, material Material) Attributes {
	return Attributes{Emission: emission, Material: material}
}

// Emit returns the emitted color
func (a Attributes) Emit() core.Vec3 {
	return a.Emission
}
