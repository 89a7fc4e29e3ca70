package Euler1D

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestNewGrid(t *testing.T) {
	g, err := NewDefaultGrid(256, 2)
	require.NoError(t, err)
	assert.Equal(t, 260, g.Len())
	assert.Equal(t, 2, g.JLo)
	assert.Equal(t, 257, g.JHi)
	assert.InDelta(t, 1./255., g.DX, 1.e-15)
	assert.Equal(t, 1.4, g.Gamma)
	// Interior cell centers span [xmin, xmax], ghosts extend past them
	assert.Equal(t, 0., g.X[g.JLo])
	assert.InDelta(t, 1., g.X[g.JHi], 1.e-12)
	assert.InDelta(t, -2*g.DX, g.X[0], 1.e-15)
	assert.InDelta(t, 1+2*g.DX, g.X[g.Len()-1], 1.e-12)
	r, c := g.U.Dims()
	assert.Equal(t, 260, r)
	assert.Equal(t, 3, c)
	assert.True(t, mat.Equal(g.U, mat.NewDense(260, 3, nil)))
}

func TestNewGridErrors(t *testing.T) {
	tests := []struct {
		name            string
		nx, ng          int
		xmin, xmax, gam float64
		param           string
	}{
		{"too few cells", 1, 1, 0, 1, 1.4, "nx"},
		{"no ghosts", 10, 0, 0, 1, 1.4, "ng"},
		{"inverted domain", 10, 1, 1, 0, 1.4, "xmax"},
		{"gamma", 10, 1, 0, 1, 1., "gamma"},
		{"infinite gamma", 10, 1, 0, 1, math.Inf(1), "gamma"},
		{"infinite xmin", 10, 1, math.Inf(-1), 1, 1.4, "xmin"},
		{"infinite xmax", 10, 1, 0, math.Inf(1), 1.4, "xmax"},
		{"overflowing length", 10, 1, -math.MaxFloat64, math.MaxFloat64, 1.4, "xmax"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := NewGrid(tt.nx, tt.ng, tt.xmin, tt.xmax, tt.gam)
			assert.Nil(t, g)
			var cfgErr *ConfigurationError
			require.True(t, errors.As(err, &cfgErr))
			assert.Equal(t, tt.param, cfgErr.Parameter)
			assert.Contains(t, err.Error(), tt.param)
		})
	}
}

func TestInitializeSOD(t *testing.T) {
	g, err := NewDefaultGrid(256, 1)
	require.NoError(t, err)
	g.InitializeSOD()
	assert.Equal(t, 0., g.Time)
	check := func(i int, rhoE, pE float64) {
		rho, v, p, _ := g.Primitive(i)
		assert.Equal(t, rhoE, rho, "cell %d", i)
		assert.InDelta(t, pE, p, 1.e-14, "cell %d", i)
		assert.Equal(t, 0., v, "cell %d", i)
	}
	check(0, 1, 1)
	check(g.JLo, 1, 1)
	check(g.JHi, 0.125, 0.1)
	check(g.Len()-1, 0.125, 0.1)
	// Split at index Len()/2 gives equal halves of the interior
	mid := g.Len() / 2
	check(mid-1, 1, 1)
	check(mid, 0.125, 0.1)
	assert.Equal(t, 128, mid-g.JLo)
	for i := 0; i < g.Len(); i++ {
		assert.Equal(t, 0., g.U.At(i, int(RhoU)))
	}
	assert.InDelta(t, 2.5, g.U.At(0, int(Ener)), 1.e-14)
	assert.InDelta(t, 0.25, g.U.At(g.JHi, int(Ener)), 1.e-14)
}

func TestTotals(t *testing.T) {
	g, err := NewDefaultGrid(100, 3)
	require.NoError(t, err)
	g.InitializeSOD()
	tot := g.Totals()
	// 50 cells at each state
	assert.InDelta(t, (50*1+50*0.125)*g.DX, tot[Rho], 1.e-14)
	assert.Equal(t, 0., tot[RhoU])
	assert.InDelta(t, (50*2.5+50*0.25)*g.DX, tot[Ener], 1.e-13)
	assert.Len(t, g.InteriorColumn(Rho), 100)
	assert.Equal(t, "Ener", Ener.String())
}

func TestNewStateP(t *testing.T) {
	s := NewStateP(1.4, 2, 1, 0.8)
	// E = p/(gamma-1) + 0.5*rhoU^2/rho
	assert.InDelta(t, 2.25, s.Ener, 1.e-14)
	assert.InDelta(t, 0.8, s.Pressure(), 1.e-14)
	assert.Equal(t, 1., s.RhoF)
	assert.InDelta(t, 0.5+0.8, s.RhoUF, 1.e-14)
	assert.InDelta(t, (2.25+0.8)*0.5, s.EnerF, 1.e-14)
}
