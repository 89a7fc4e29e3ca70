package Euler1D

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// Flux evaluates the physical Euler flux of every row of U into a new table
func (g *Grid) Flux(U *mat.Dense) (F *mat.Dense) {
	r, _ := U.Dims()
	F = mat.NewDense(r, NumConserved, nil)
	g.FluxInto(U, F)
	return
}

/*
FluxInto writes the flux of U into F, which must have the same shape.
Calorically perfect gas:

	p = (gamma-1)*(E - 0.5*rhoU^2/rho)
	F = [rhoU, rhoU^2/rho + p, (E+p)*rhoU/rho]

Zero density is not guarded, it shows up as Inf/NaN in F.
*/
func (g *Grid) FluxInto(U, F *mat.Dense) {
	var (
		gm1  = g.Gamma - 1
		r, _ = U.Dims()
	)
	for i := 0; i < r; i++ {
		u, f := U.RawRowView(i), F.RawRowView(i)
		rho, rhoU, ener := u[Rho], u[RhoU], u[Ener]
		v := rhoU / rho
		p := gm1 * (ener - 0.5*rhoU*v)
		f[Rho] = rhoU
		f[RhoU] = rhoU*v + p
		f[Ener] = (ener + p) * v
	}
}

// SoundSpeed of an ideal gas, sqrt(gamma*p/rho)
func (g *Grid) SoundSpeed(rho, p float64) float64 {
	return math.Sqrt(g.Gamma * p / rho)
}

// MaxCharacteristicSpeed returns max(|v|+a) over the interior cells
func (g *Grid) MaxCharacteristicSpeed() (lm float64) {
	for j := g.JLo; j <= g.JHi; j++ {
		rho, v, p, _ := g.Primitive(j)
		lm = math.Max(lm, math.Abs(v)+g.SoundSpeed(rho, p))
	}
	return
}
