package core

import (
	"bytes"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVec3_Cross(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Vec3
		expected Vec3
	}{
		{"x cross y", NewVec3(1, 0, 0), NewVec3(0, 1, 0), NewVec3(0, 0, 1)},
		{"y cross x", NewVec3(0, 1, 0), NewVec3(1, 0, 0), NewVec3(0, 0, -1)},
		{"parallel vectors", NewVec3(1, 2, 3), NewVec3(2, 4, 6), NewVec3(0, 0, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.a.Cross(tt.b))
		})
	}
}

func TestVec3_Arithmetic(t *testing.T) {
	a := NewVec3(1, 2, 3)
	b := NewVec3(4, -5, 6)

	assert.Equal(t, NewVec3(5, -3, 9), a.Add(b))
	assert.Equal(t, NewVec3(-3, 7, -3), a.Subtract(b))
	assert.Equal(t, NewVec3(2, 4, 6), a.Multiply(2))
	assert.Equal(t, NewVec3(-1, -2, -3), a.Negate())
	assert.InDelta(t, 12.0, a.Dot(b), 1e-12)
	assert.InDelta(t, math.Sqrt(14), a.Length(), 1e-12)
	assert.InDelta(t, 6.0, b.MaxAbs(), 1e-12)
}

func TestVec3_Unit(t *testing.T) {
	u, err := NewVec3(0, 3, 4).Unit()
	require.NoError(t, err)
	assert.InDelta(t, 1.0, u.Length(), 1e-12)
	assert.InDelta(t, 0.6, u.Y, 1e-12)
	assert.InDelta(t, 0.8, u.Z, 1e-12)

	_, err = NewVec3(0, 0, 0).Unit()
	assert.ErrorIs(t, err, ErrZeroVector)

	_, err = NewVec3(math.Inf(1), 0, 0).Unit()
	assert.ErrorIs(t, err, ErrZeroVector)

	_, err = NewVec3(math.NaN(), 1, 0).Unit()
	assert.ErrorIs(t, err, ErrZeroVector)

	// Normalize keeps the lenient behaviour for zero vectors
	assert.Equal(t, Vec3{}, Vec3{}.Normalize())
}

func TestVec3_Unit_ExtremeMagnitudes(t *testing.T) {
	tests := []struct {
		name     string
		v        Vec3
		expected Vec3
	}{
		{"tiny", NewVec3(1e-200, 0, 1e-200), NewVec3(math.Sqrt2/2, 0, math.Sqrt2/2)},
		{"subnormal", NewVec3(0, 5e-324, 0), NewVec3(0, 1, 0)},
		{"huge", NewVec3(1e200, 0, 1e200), NewVec3(math.Sqrt2/2, 0, math.Sqrt2/2)},
		{"near max float", NewVec3(-1.7e308, 0, 0), NewVec3(-1, 0, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u, err := tt.v.Unit()
			require.NoError(t, err)
			assert.InDelta(t, 1.0, u.Length(), 1e-12)
			assert.InDelta(t, tt.expected.X, u.X, 1e-12)
			assert.InDelta(t, tt.expected.Y, u.Y, 1e-12)
			assert.InDelta(t, tt.expected.Z, u.Z, 1e-12)
		})
	}
}

func TestVec3_IsFinite(t *testing.T) {
	assert.True(t, NewVec3(1, 2, 3).IsFinite())
	assert.False(t, NewVec3(math.NaN(), 0, 0).IsFinite())
	assert.False(t, NewVec3(0, math.Inf(-1), 0).IsFinite())
}

func TestRay_At(t *testing.T) {
	ray := NewRay(NewVec3(1, 1, 5), NewVec3(0, 0, -2))
	assert.Equal(t, NewVec3(1, 1, 1), ray.At(2))
	assert.Equal(t, ray.Origin, ray.At(0))
}

func TestTolerance_Compare(t *testing.T) {
	tol := Tolerance(1e-7)

	tests := []struct {
		name     string
		a, b     float64
		expected int
	}{
		{"equal", 1, 1, 0},
		{"within epsilon above", 1 + 5e-8, 1, 0},
		{"within epsilon below", 1 - 5e-8, 1, 0},
		{"clearly greater", 1 + 1e-6, 1, 1},
		{"clearly less", 1 - 1e-6, 1, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tol.Compare(tt.a, tt.b))
		})
	}

	assert.True(t, tol.IsZero(-9e-8))
	assert.False(t, tol.IsZero(2e-7))
	assert.Equal(t, 0, Compare(0, 1e-11))
	assert.True(t, tol.Valid())
	assert.False(t, Tolerance(-1).Valid())
	assert.False(t, Tolerance(math.NaN()).Valid())
}

func TestDefaultLogger_Printf(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWriterLogger(&buf)
	logger.Printf("hit at %v\n", NewVec3(0, 0, 1))
	assert.Equal(t, "hit at (0, 0, 1)\n", buf.String())

	// must not panic
	NopLogger{}.Printf("ignored %d", 1)
}
