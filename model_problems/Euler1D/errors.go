package Euler1D

import (
	"fmt"
)

// ConfigurationError reports an invalid construction parameter. It is always
// returned before the first time step is taken.
type ConfigurationError struct {
	Parameter string
	Value     any
	Reason    string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("invalid configuration: %s = %v, %s", e.Parameter, e.Value, e.Reason)
}

func newConfigError(param string, value any, reason string) *ConfigurationError {
	return &ConfigurationError{Parameter: param, Value: value, Reason: reason}
}

// NumericalInstabilityError reports a non-physical conserved state produced by
// a time step. There is no recovery, the run is aborted.
type NumericalInstabilityError struct {
	Step      int
	Time      float64
	Cell      int // Index into the full (ghost inclusive) table
	Component ConservedVar
	Value     float64
}

func (e *NumericalInstabilityError) Error() string {
	return fmt.Sprintf("numerical instability at step %d, time %8.5f: %s[%d] = %v",
		e.Step, e.Time, e.Component, e.Cell, e.Value)
}
