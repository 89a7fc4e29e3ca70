package Euler1D

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/notargets/laxtube/utils"
)

type ConservedVar uint8

const (
	Rho ConservedVar = iota
	RhoU
	Ener
	NumConserved = 3
)

var conservedNames = [NumConserved]string{"Rho", "RhoU", "Ener"}

func (cv ConservedVar) String() string {
	if int(cv) < len(conservedNames) {
		return conservedNames[cv]
	}
	return "Unknown"
}

/*
Grid is a uniform one dimensional grid of NX interior cells padded by NG ghost
cells on each side. Rows of U are cells, columns are [Rho, RhoU, Ener].

	  ghost      interior          ghost
	[0..NG-1] [JLo ......... JHi] [JHi+1..JHi+NG]
*/
type Grid struct {
	NX, NG     int
	XMin, XMax float64
	Gamma      float64
	Time       float64
	DX         float64
	JLo, JHi   int       // Inclusive interior bounds, 0 based
	X          []float64 // Cell centers, length NX+2*NG
	U          *mat.Dense
}

func NewDefaultGrid(nx, ng int) (g *Grid, err error) {
	return NewGrid(nx, ng, 0, 1, 1.4)
}

func NewGrid(nx, ng int, xmin, xmax, gamma float64) (g *Grid, err error) {
	switch {
	case nx < 2:
		return nil, newConfigError("nx", nx, "need at least 2 interior cells")
	case ng < 1:
		return nil, newConfigError("ng", ng, "need at least 1 ghost cell")
	case !utils.IsFinite(xmin):
		return nil, newConfigError("xmin", xmin, "must be finite")
	case !utils.IsFinite(xmax) || !utils.IsFinite(xmax-xmin):
		return nil, newConfigError("xmax", xmax, "must be finite")
	case !(xmax > xmin):
		return nil, newConfigError("xmax", xmax, "must be greater than xmin")
	case !(gamma > 1) || !utils.IsFinite(gamma):
		return nil, newConfigError("gamma", gamma, "must be finite and greater than 1")
	}
	xlen := nx + 2*ng
	g = &Grid{
		NX:    nx,
		NG:    ng,
		XMin:  xmin,
		XMax:  xmax,
		Gamma: gamma,
		DX:    (xmax - xmin) / float64(nx-1),
		JLo:   ng,
		JHi:   ng + nx - 1,
		X:     make([]float64, xlen),
		U:     mat.NewDense(xlen, NumConserved, nil),
	}
	for i := range g.X {
		g.X[i] = xmin + float64(i-g.JLo)*g.DX
	}
	return
}

// Len is the total number of cells including ghosts
func (g *Grid) Len() int {
	return g.NX + 2*g.NG
}

func (g *Grid) NewTable() *mat.Dense {
	return mat.NewDense(g.Len(), NumConserved, nil)
}

func (g *Grid) Primitive(i int) (rho, v, p, eint float64) {
	var (
		row = g.U.RawRowView(i)
	)
	rho = row[Rho]
	v = row[RhoU] / rho
	eint = row[Ener]/rho - 0.5*v*v
	p = (g.Gamma - 1) * rho * eint
	return
}

// Totals returns the interior integral of each conserved quantity
func (g *Grid) Totals() (tot [NumConserved]float64) {
	var (
		interior = g.U.Slice(g.JLo, g.JHi+1, 0, NumConserved)
		col      = make([]float64, g.NX)
	)
	for k := 0; k < NumConserved; k++ {
		mat.Col(col, k, interior)
		tot[k] = floats.Sum(col) * g.DX
	}
	return
}

func (g *Grid) InteriorColumn(cv ConservedVar) (col []float64) {
	col = make([]float64, g.NX)
	mat.Col(col, int(cv), g.U.Slice(g.JLo, g.JHi+1, 0, NumConserved))
	return
}
