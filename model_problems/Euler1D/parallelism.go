package Euler1D

import (
	"golang.org/x/sync/errgroup"

	"github.com/notargets/laxtube/utils"
)

// update fills the interior of the scratch buffer from the current state and
// flux table. Partitions write disjoint row ranges and only read the shared
// inputs, so the parallel and serial results are identical.
func (c *Lax) update(dt float64) error {
	var (
		NP = c.partitions.ParallelDegree
		eg errgroup.Group
	)
	if NP == 1 {
		return c.updateRange(0, c.Grid.NX, dt)
	}
	for np := 0; np < NP; np++ {
		kMin, kMax := c.partitions.GetBucketRange(np)
		eg.Go(func() error {
			return c.updateRange(kMin, kMax, dt)
		})
	}
	return eg.Wait()
}

// updateRange updates interior cells [JLo+kMin, JLo+kMax)
func (c *Lax) updateRange(kMin, kMax int, dt float64) error {
	var (
		g      = c.Grid
		U, F   = g.U, c.flux
		lambda = 0.5 * dt / g.DX
	)
	for j := g.JLo + kMin; j < g.JLo+kMax; j++ {
		um, up := U.RawRowView(j-1), U.RawRowView(j+1)
		fm, fp := F.RawRowView(j-1), F.RawRowView(j+1)
		un := c.unew.RawRowView(j)
		for k := 0; k < NumConserved; k++ {
			un[k] = 0.5*(um[k]+up[k]) - lambda*(fp[k]-fm[k])
		}
		if err := c.checkCell(j, un, dt); err != nil {
			return err
		}
	}
	return nil
}

func (c *Lax) checkCell(j int, u []float64, dt float64) error {
	bad := func(cv ConservedVar) error {
		return &NumericalInstabilityError{
			Step:      c.Steps + 1,
			Time:      c.Grid.Time + dt,
			Cell:      j,
			Component: cv,
			Value:     u[cv],
		}
	}
	if !(u[Rho] > 0) || !utils.IsFinite(u[Rho]) {
		return bad(Rho)
	}
	for _, cv := range []ConservedVar{RhoU, Ener} {
		if !utils.IsFinite(u[cv]) {
			return bad(cv)
		}
	}
	return nil
}
