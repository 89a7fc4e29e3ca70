package Euler1D

import (
	"gonum.org/v1/gonum/mat"
)

// ApplyBoundaryConditions sets zero gradient (outflow) ghost cells: every left
// ghost takes the value of cell JLo and every right ghost that of cell JHi
func (g *Grid) ApplyBoundaryConditions(U *mat.Dense) {
	var (
		lo, hi = U.RawRowView(g.JLo), U.RawRowView(g.JHi)
	)
	for i := 0; i < g.NG; i++ {
		copy(U.RawRowView(g.JLo-1-i), lo)
		copy(U.RawRowView(g.JHi+1+i), hi)
	}
}
