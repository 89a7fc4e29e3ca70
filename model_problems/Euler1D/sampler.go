package Euler1D

// Snapshot holds primitive variables at the interior cell centers
type Snapshot struct {
	Index, Step int
	Time        float64
	X           []float64
	Rho, P, V   []float64
	Eint        []float64 // Specific internal energy
}

// Observer consumes snapshots between time steps, an error aborts the run
type Observer interface {
	Observe(snap *Snapshot) error
}

type ObserverFunc func(snap *Snapshot) error

func (f ObserverFunc) Observe(snap *Snapshot) error { return f(snap) }

// Sample converts the interior of the grid to primitive variables. The grid
// is not modified.
func (g *Grid) Sample(index, step int) (snap *Snapshot) {
	snap = &Snapshot{
		Index: index,
		Step:  step,
		Time:  g.Time,
		X:     make([]float64, g.NX),
		Rho:   make([]float64, g.NX),
		P:     make([]float64, g.NX),
		V:     make([]float64, g.NX),
		Eint:  make([]float64, g.NX),
	}
	copy(snap.X, g.X[g.JLo:g.JHi+1])
	for j := g.JLo; j <= g.JHi; j++ {
		n := j - g.JLo
		snap.Rho[n], snap.V[n], snap.P[n], snap.Eint[n] = g.Primitive(j)
	}
	return
}
