package Euler1D

import (
	"context"
	"time"

	"go.uber.org/zap"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/notargets/laxtube/utils"
)

// Loop termination tolerance for accumulated time
const timeTolerance = 1.e-10

/*
Lax advances Sod's shock tube with the Lax (Lax-Friedrichs) scheme:

	U[j]^(n+1) = 0.5*(U[j-1] + U[j+1]) - 0.5*(dt/dx)*(F[j+1] - F[j-1])

DT is fixed once from CFL*DX/ReferenceSpeed and is not recomputed from the
evolving wave speeds, so stability for other initial states is not assured.
*/
type Lax struct {
	Config
	Grid         *Grid
	DT           float64
	Steps        int // Accepted steps
	Outputs      int // Snapshots emitted
	LogFrequency int
	unew, flux   *mat.Dense // Scratch half of the double buffer and the flux table
	partitions   *utils.PartitionMap
	observers    []Observer
	logger       *zap.Logger
}

type Option func(c *Lax)

func WithLogger(logger *zap.Logger) Option {
	return func(c *Lax) {
		if logger != nil {
			c.logger = logger
		}
	}
}

func WithObserver(obs ...Observer) Option {
	return func(c *Lax) {
		c.observers = append(c.observers, obs...)
	}
}

func WithLogFrequency(n int) Option {
	return func(c *Lax) {
		if n > 0 {
			c.LogFrequency = n
		}
	}
}

type Result struct {
	Steps, Outputs int
	Time           float64
	Elapsed        time.Duration
}

func NewLax(cfg Config, opts ...Option) (c *Lax, err error) {
	var (
		g *Grid
	)
	if err = cfg.Validate(); err != nil {
		return nil, err
	}
	if g, err = NewGrid(cfg.NX, cfg.NG, cfg.XMin, cfg.XMax, cfg.Gamma); err != nil {
		return nil, err
	}
	DT := cfg.CFL * g.DX / cfg.ReferenceSpeed
	switch {
	case !(DT > 0) || !utils.IsFinite(DT):
		return nil, newConfigError("dt", DT, "CFL*dx/referenceSpeed must be finite and positive")
	case !(cfg.FinalTime+DT > cfg.FinalTime):
		return nil, newConfigError("dt", DT, "too small to advance time to finalTime")
	}
	g.InitializeSOD()
	c = &Lax{
		Config:       cfg,
		Grid:         g,
		DT:           DT,
		LogFrequency: 50,
		unew:         g.NewTable(),
		flux:         g.NewTable(),
		partitions:   utils.NewPartitionMap(cfg.ParallelDegree, g.NX),
		logger:       zap.NewNop(),
	}
	// Ghost rows of the scratch buffer are refreshed before they are read, but
	// start them from a valid state
	c.unew.Copy(g.U)
	for _, opt := range opts {
		opt(c)
	}
	return
}

// Step advances the grid by dt. On error the grid keeps its last valid state.
func (c *Lax) Step(dt float64) (err error) {
	var (
		g = c.Grid
	)
	g.ApplyBoundaryConditions(g.U)
	g.FluxInto(g.U, c.flux)
	if err = c.update(dt); err != nil {
		return
	}
	g.U, c.unew = c.unew, g.U
	g.Time += dt
	c.Steps++
	return
}

// Run steps until FinalTime, the last step is shortened to land on it
func (c *Lax) Run(ctx context.Context) (res *Result, err error) {
	var (
		g         = c.Grid
		FinalTime = c.FinalTime
		start     = time.Now()
	)
	res = &Result{}
	defer func() {
		res.Steps, res.Outputs, res.Time = c.Steps, c.Outputs, g.Time
		res.Elapsed = time.Since(start)
	}()
	c.logInitialization()
	for g.Time < FinalTime-timeTolerance {
		if err = ctx.Err(); err != nil {
			return
		}
		dt, lastStep := c.DT, false
		if g.Time+dt > FinalTime {
			dt, lastStep = FinalTime-g.Time, true
		}
		if err = c.Step(dt); err != nil {
			c.logger.Error("time step failed", zap.Int("step", c.Steps+1), zap.Error(err))
			return
		}
		if lastStep {
			g.Time = FinalTime
		}
		if c.Steps%c.OutputInterval == 0 {
			if err = c.emit(); err != nil {
				return
			}
		}
		if c.Steps%c.LogFrequency == 0 {
			c.logUpdate(dt)
		}
	}
	c.logFinal(time.Since(start))
	return
}

func (c *Lax) emit() (err error) {
	snap := c.Grid.Sample(c.Outputs, c.Steps)
	c.Outputs++
	for _, obs := range c.observers {
		if err = obs.Observe(snap); err != nil {
			return
		}
	}
	return
}

// EffectiveCFL is the Courant number seen by the fastest wave in the current
// state, DT*max(|v|+a)/DX
func (c *Lax) EffectiveCFL() float64 {
	return c.DT * c.Grid.MaxCharacteristicSpeed() / c.Grid.DX
}

func (c *Lax) logInitialization() {
	var (
		g = c.Grid
	)
	c.logger.Info("Euler Equations in 1 Dimension, Lax scheme",
		zap.String("case", "Sod shock tube"),
		zap.Int("nx", g.NX),
		zap.Int("ng", g.NG),
		zap.Float64("CFL", c.CFL),
		zap.Float64("dt", c.DT),
		zap.Float64("effectiveCFL", c.EffectiveCFL()),
		zap.Float64("finalTime", c.FinalTime),
		zap.Int("parallelDegree", c.partitions.ParallelDegree))
}

func (c *Lax) logUpdate(dt float64) {
	var (
		rho  = c.Grid.InteriorColumn(Rho)
		ener = c.Grid.InteriorColumn(Ener)
	)
	c.logger.Info("step",
		zap.Int("iter", c.Steps),
		zap.Float64("time", c.Grid.Time),
		zap.Float64("dt", dt),
		zap.Float64("rhoMin", floats.Min(rho)),
		zap.Float64("rhoMax", floats.Max(rho)),
		zap.Float64("emin", floats.Min(ener)),
		zap.Float64("emax", floats.Max(ener)))
}

func (c *Lax) logFinal(elapsed time.Duration) {
	var rate float64
	if c.Steps > 0 {
		rate = float64(elapsed.Microseconds()) / float64(c.Grid.NX*c.Steps)
	}
	c.logger.Info("run complete",
		zap.Int("steps", c.Steps),
		zap.Int("outputs", c.Outputs),
		zap.Float64("time", c.Grid.Time),
		zap.Float64("usPerCellStep", rate))
}
