package Euler1D

import (
	"github.com/notargets/laxtube/utils"
)

// Config is the run configuration surface of the Lax solver
type Config struct {
	NX, NG         int
	XMin, XMax     float64
	Gamma          float64
	CFL            float64
	ReferenceSpeed float64 // Characteristic speed used to fix DT once
	FinalTime      float64
	OutputInterval int // Sample every OutputInterval accepted steps
	ParallelDegree int
}

func DefaultConfig() Config {
	return Config{
		NX:             256,
		NG:             1,
		XMin:           0,
		XMax:           1,
		Gamma:          1.4,
		CFL:            0.45,
		ReferenceSpeed: 1,
		FinalTime:      0.2,
		OutputInterval: 10,
		ParallelDegree: 1,
	}
}

func (c Config) Validate() error {
	switch {
	case c.NX < 2:
		return newConfigError("nx", c.NX, "need at least 2 interior cells")
	case c.NG < 1:
		return newConfigError("ng", c.NG, "need at least 1 ghost cell")
	case !utils.IsFinite(c.XMin):
		return newConfigError("xmin", c.XMin, "must be finite")
	case !utils.IsFinite(c.XMax) || !utils.IsFinite(c.XMax-c.XMin):
		return newConfigError("xmax", c.XMax, "must be finite")
	case !(c.XMax > c.XMin):
		return newConfigError("xmax", c.XMax, "must be greater than xmin")
	case !(c.Gamma > 1) || !utils.IsFinite(c.Gamma):
		return newConfigError("gamma", c.Gamma, "must be finite and greater than 1")
	case !(c.CFL > 0) || !utils.IsFinite(c.CFL):
		return newConfigError("CFL", c.CFL, "must be finite and positive")
	case !(c.ReferenceSpeed > 0) || !utils.IsFinite(c.ReferenceSpeed):
		return newConfigError("referenceSpeed", c.ReferenceSpeed, "must be finite and positive")
	case !(c.FinalTime > 0) || !utils.IsFinite(c.FinalTime):
		return newConfigError("finalTime", c.FinalTime, "must be finite and positive")
	case c.OutputInterval < 1:
		return newConfigError("dnout", c.OutputInterval, "must be positive")
	case c.ParallelDegree < 1:
		return newConfigError("parallel", c.ParallelDegree, "must be at least 1")
	}
	return nil
}
