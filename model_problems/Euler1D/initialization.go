package Euler1D

import (
	"github.com/notargets/laxtube/utils"
)

// State is a uniform gas state in conserved form along with its physical flux
type State struct {
	Gamma, Rho, RhoU, Ener float64
	RhoF, RhoUF, EnerF     float64
}

func NewState(gamma, rho, rhoU, ener float64) (s *State) {
	var (
		q = 0.5 * utils.POW(rhoU, 2) / rho
		p = (ener - q) * (gamma - 1.)
		u = rhoU / rho
	)
	return &State{
		Gamma: gamma,
		Rho:   rho,
		RhoU:  rhoU,
		Ener:  ener,
		RhoF:  rhoU,
		RhoUF: 2*q + p,
		EnerF: (ener + p) * u,
	}
}

// NewStateP builds a State from density, momentum and static pressure
func NewStateP(gamma, rho, rhoU, p float64) *State {
	q := 0.5 * rhoU * rhoU / rho
	ener := p/(gamma-1.) + q
	return NewState(gamma, rho, rhoU, ener)
}

func (s *State) Pressure() float64 {
	return (s.Ener - 0.5*s.RhoU*s.RhoU/s.Rho) * (s.Gamma - 1.)
}

// InitializeSOD sets up Sod's shock tube: a diaphragm at the middle cell
// index with (rho, p) = (1, 1) on the left and (0.125, 0.1) on the right
func (g *Grid) InitializeSOD() {
	g.InitializeRiemann(
		NewStateP(g.Gamma, 1, 0, 1),
		NewStateP(g.Gamma, 0.125, 0, 0.1),
	)
}

// InitializeRiemann fills every cell, ghosts included, with one of two states
// split at index Len()/2
func (g *Grid) InitializeRiemann(left, right *State) {
	var (
		mid = g.Len() / 2
	)
	for i := 0; i < g.Len(); i++ {
		s := left
		if i >= mid {
			s = right
		}
		g.U.SetRow(i, []float64{s.Rho, s.RhoU, s.Ener})
	}
	g.Time = 0
}
