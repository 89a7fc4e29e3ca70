package sod_shock_tube

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSOD(t *testing.T) {
	sod := NewSOD(0.1)
	assert.InDelta(t, 0.30313, sod.PPost, 1.e-5)
	assert.InDelta(t, 0.92745, sod.VPost, 1.e-5)
	assert.InDelta(t, 0.26557, sod.RhoPost, 1.e-5)
	assert.InDelta(t, 0.42632, sod.RhoMiddle, 1.e-5)
	assert.InDelta(t, 1.75216, sod.VShock, 1.e-5)

	x1, x2, x3, x4 := sod.WavePositions()
	assert.InDelta(t, 0.38168, x1, 1.e-5)
	assert.InDelta(t, 0.49297, x2, 1.e-5)
	assert.InDelta(t, 0.59275, x3, 1.e-5)
	assert.InDelta(t, 0.6752, x4, 1.e-4)

	sod = NewSOD(0.2)
	_, _, _, x4 = sod.WavePositions()
	assert.InDelta(t, 0.8504, x4, 1.e-4)
}

func TestSODGet(t *testing.T) {
	sod := NewSOD(0.1)
	X, Rho, P, U, E := sod.Get()
	require.Equal(t, len(X), len(Rho))
	require.Equal(t, len(X), len(E))
	for i := 1; i < len(X); i++ {
		assert.Greater(t, X[i], X[i-1])
	}
	// Left state, plateaus, right state
	assert.Equal(t, 1., Rho[0])
	assert.Equal(t, 1., P[0])
	assert.Equal(t, 0.125, Rho[len(Rho)-1])
	assert.Equal(t, 0.1, P[len(P)-1])
	assert.InDelta(t, 0.42632, Rho[len(Rho)-5], 1.e-5)
	assert.InDelta(t, 0.26557, Rho[len(Rho)-3], 1.e-5)
	// Density falls monotonically through the rarefaction
	for i := 2; i < 2+sod.NFan; i++ {
		assert.LessOrEqual(t, Rho[i], Rho[i-1])
		assert.GreaterOrEqual(t, U[i], 0.)
	}
	// Specific internal energy of the left state is p/((gamma-1) rho)
	assert.InDelta(t, 2.5, E[0], 1.e-12)
}

func TestSODEvaluate(t *testing.T) {
	{ // Fan is continuous at its head and tail
		sod := NewSOD(0.15)
		x1, x2, _, _ := sod.WavePositions()
		rho, u, p := sod.Evaluate(x1)
		assert.InDelta(t, 1., rho, 1.e-9)
		assert.InDelta(t, 0., u, 1.e-9)
		assert.InDelta(t, 1., p, 1.e-9)
		rho, u, p = sod.Evaluate(x2)
		assert.InDelta(t, sod.RhoMiddle, rho, 1.e-9)
		assert.InDelta(t, sod.VPost, u, 1.e-9)
		assert.InDelta(t, sod.PPost, p, 1.e-9)
	}
	{ // Initial discontinuity
		sod := NewSOD(0)
		rho, _, _ := sod.Evaluate(0.49)
		assert.Equal(t, 1., rho)
		rho, _, _ = sod.Evaluate(0.51)
		assert.Equal(t, 0.125, rho)
	}
	{ // The exact solution has no error against itself
		sod := NewSOD(0.2)
		x := []float64{0.1, 0.3, 0.45, 0.6, 0.7, 0.9}
		rho := make([]float64, len(x))
		for i, xx := range x {
			rho[i], _, _ = sod.Evaluate(xx)
		}
		assert.Equal(t, 0., sod.L1Error(x, rho, Density))
		assert.False(t, math.IsNaN(sod.L1Error(x, rho, Pressure)))
	}
}
