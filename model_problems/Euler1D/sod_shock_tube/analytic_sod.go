package sod_shock_tube

import (
	"math"
)

/*
SOD is the exact solution of a shock tube Riemann problem with the high
pressure gas on the left. The waves, left to right, are a rarefaction fan
[x1,x2], a contact discontinuity x3 and a shock x4.
*/
type SOD struct {
	Gamma                      float64
	XMin, XMax, X0             float64 // Domain and diaphragm location
	RhoL, PL, RhoR, PR         float64
	Time                       float64
	PPost, VPost               float64 // Pressure and velocity between rarefaction and shock
	RhoPost, RhoMiddle, VShock float64
	x1, x2, x3, x4             float64
	NFan                       int // Number of samples inside the rarefaction fan for Get
}

func NewSOD(t float64) (sod *SOD) {
	return NewShockTube(1.4, 0, 1, 1, 1, 0.125, 0.1, t)
}

func NewShockTube(gamma, xmin, xmax, rhoL, pL, rhoR, pR, t float64) (sod *SOD) {
	sod = &SOD{
		Gamma: gamma,
		XMin:  xmin,
		XMax:  xmax,
		X0:    0.5 * (xmin + xmax),
		RhoL:  rhoL,
		PL:    pL,
		RhoR:  rhoR,
		PR:    pR,
		Time:  t,
		NFan:  10,
	}
	sod.solve()
	return
}

func (sod *SOD) mu2() float64 {
	return (sod.Gamma - 1) / (sod.Gamma + 1)
}

func (sod *SOD) cL() float64 {
	return math.Sqrt(sod.Gamma * sod.PL / sod.RhoL)
}

// pressureBalance is zero at the post shock pressure, where the velocity
// behind the shock equals the velocity at the tail of the rarefaction
func (sod *SOD) pressureBalance(P float64) float64 {
	mu2 := sod.mu2()
	shock := (P - sod.PR) * math.Sqrt((1-mu2)/(sod.RhoR*(P+mu2*sod.PR)))
	return shock - sod.rarefactionVelocity(P)
}

func (sod *SOD) rarefactionVelocity(P float64) float64 {
	g := sod.Gamma
	return 2 * sod.cL() / (g - 1) * (1 - math.Pow(P/sod.PL, (g-1)/(2*g)))
}

func (sod *SOD) solve() {
	var (
		g   = sod.Gamma
		mu2 = sod.mu2()
		cl  = sod.cL()
		t   = sod.Time
	)
	sod.PPost = bisect(sod.pressureBalance, sod.PR, sod.PL, 1.e-14)
	sod.VPost = sod.rarefactionVelocity(sod.PPost)
	ratio := sod.PPost / sod.PR
	sod.RhoPost = sod.RhoR * (ratio + mu2) / (1 + mu2*ratio)
	sod.VShock = sod.VPost * (sod.RhoPost / sod.RhoR) / (sod.RhoPost/sod.RhoR - 1)
	sod.RhoMiddle = sod.RhoL * math.Pow(sod.PPost/sod.PL, 1/g)
	c2 := cl - 0.5*(g-1)*sod.VPost
	sod.x1 = sod.X0 - cl*t
	sod.x2 = sod.X0 + (sod.VPost-c2)*t
	sod.x3 = sod.X0 + sod.VPost*t
	sod.x4 = sod.X0 + sod.VShock*t
}

// WavePositions returns the fan head, fan tail, contact and shock locations
func (sod *SOD) WavePositions() (x1, x2, x3, x4 float64) {
	return sod.x1, sod.x2, sod.x3, sod.x4
}

func (sod *SOD) Evaluate(x float64) (rho, u, p float64) {
	var (
		g   = sod.Gamma
		mu2 = sod.mu2()
		cl  = sod.cL()
		t   = sod.Time
	)
	if t <= 0 {
		if x < sod.X0 {
			return sod.RhoL, 0, sod.PL
		}
		return sod.RhoR, 0, sod.PR
	}
	switch {
	case x < sod.x1:
		rho, u, p = sod.RhoL, 0, sod.PL
	case x <= sod.x2:
		c := mu2*(sod.X0-x)/t + (1-mu2)*cl
		rho = sod.RhoL * math.Pow(c/cl, 2/(g-1))
		p = sod.PL * math.Pow(rho/sod.RhoL, g)
		u = (1 - mu2) * ((x-sod.X0)/t + cl)
	case x <= sod.x3:
		rho, u, p = sod.RhoMiddle, sod.VPost, sod.PPost
	case x <= sod.x4:
		rho, u, p = sod.RhoPost, sod.VPost, sod.PPost
	default:
		rho, u, p = sod.RhoR, 0, sod.PR
	}
	return
}

// Get samples the solution at the domain ends, across each discontinuity and
// inside the rarefaction fan. E is the specific internal energy.
func (sod *SOD) Get() (X, Rho, P, U, E []float64) {
	var (
		tol = 1.e-8
	)
	X = append(X, sod.XMin, sod.x1-tol)
	for i := 0; i < sod.NFan; i++ {
		X = append(X, sod.x1+tol+float64(i)*(sod.x2-sod.x1-2*tol)/float64(sod.NFan-1))
	}
	X = append(X, sod.x2+tol, sod.x3-tol, sod.x3+tol, sod.x4-tol, sod.x4+tol, sod.XMax)
	Rho, P, U, E = make([]float64, len(X)), make([]float64, len(X)), make([]float64, len(X)), make([]float64, len(X))
	for i, x := range X {
		Rho[i], U[i], P[i] = sod.Evaluate(x)
		E[i] = P[i] / ((sod.Gamma - 1.) * Rho[i])
	}
	return
}

type Field uint8

const (
	Density Field = iota
	Velocity
	Pressure
)

// L1Error is the mean absolute difference between f and the exact field at x
func (sod *SOD) L1Error(x, f []float64, field Field) (l1 float64) {
	for i, xx := range x {
		var ex [3]float64
		ex[0], ex[1], ex[2] = sod.Evaluate(xx)
		l1 += math.Abs(f[i] - ex[field])
	}
	return l1 / float64(len(x))
}

func bisect(f func(float64) float64, lo, hi, tol float64) float64 {
	flo := f(lo)
	for i := 0; i < 200 && hi-lo > tol; i++ {
		mid := 0.5 * (lo + hi)
		fmid := f(mid)
		if flo*fmid > 0 {
			lo, flo = mid, fmid
		} else {
			hi = mid
		}
	}
	return 0.5 * (lo + hi)
}
