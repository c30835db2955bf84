package material

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/df07/go-plane-tracer/pkg/core"
)

func TestMaterial_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mat     Material
		wantErr bool
	}{
		{"point normal default", DefaultPointNormalMaterial, false},
		{"three point default", DefaultThreePointMaterial, false},
		{"zero material", Material{}, false},
		{"negative diffuse", NewMaterial(-0.1, 0.1, 2), true},
		{"nan specular", NewMaterial(0.1, math.NaN(), 2), true},
		{"negative shininess", NewMaterial(0.1, 0.1, -1), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.mat.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestDefaults_Distinct(t *testing.T) {
	assert.Equal(t, 2, DefaultPointNormalMaterial.Shininess)
	assert.Equal(t, 3, DefaultThreePointMaterial.Shininess)
	assert.NotEqual(t, DefaultPointNormalMaterial, DefaultThreePointMaterial)
}

func TestAttributes_Emit(t *testing.T) {
	attrs := NewAttributes(core.NewVec3(1, 0.5, 0), DefaultPointNormalMaterial)

	assert.Equal(t, core.NewVec3(1, 0.5, 0), attrs.Emit())
	assert.Equal(t, DefaultPointNormalMaterial, attrs.Material)
}
