package atomic

import (
	"fmt"

	"github.com/katalvlaran/photoion/angular"
)

// Level is one atomic (or ionic) level: total symmetry, energy in Hartree and
// its leading configuration.
type Level struct {
	Index    int
	Label    string
	Symmetry angular.Symmetry
	Energy   float64
	Leading  Configuration
}

func (l Level) String() string {
	if l.Label != "" {
		return fmt.Sprintf("#%d %s %s", l.Index, l.Label, l.Symmetry)
	}

	return fmt.Sprintf("#%d %s", l.Index, l.Symmetry)
}

// Multiplet is an ordered set of levels sharing one basis.
type Multiplet struct {
	Name   string
	Levels []Level
}

// Validate returns ErrEmptyMultiplet for a multiplet without levels.
func (m Multiplet) Validate() error {
	if len(m.Levels) == 0 {
		return ErrEmptyMultiplet
	}

	return nil
}

// Orbital is a one-electron radial orbital. Large and Small hold the radial
// components on the grid the orbital was generated on.
type Orbital struct {
	Subshell Subshell
	Energy   float64
	Bound    bool
	Large    []float64
	Small    []float64
}

// RadialGrid describes the radial mesh passed to external solvers.
type RadialGrid struct {
	Points int
	RMin   float64
	RMax   float64
}

// NuclearModel selects the nuclear charge distribution.
type NuclearModel struct {
	Z      float64
	Model  string // "point" or "fermi"
	Radius float64
}

// ContinuumSettings tunes continuum-orbital generation.
type ContinuumSettings struct {
	Method        string // e.g. "galerkin", "nonorthogonal"
	Normalization string // e.g. "pure-sine", "coulomb"
	MaxRadius     float64
}

// ContinuumLevel is the compound final state: residual ion level coupled with
// one free electron of partial wave Kappa to total symmetry Symmetry.
type ContinuumLevel struct {
	Residual Level
	Kappa    angular.Kappa
	Orbital  Orbital
	Phase    float64
	Symmetry angular.Symmetry
}

// ResidualLevel returns the ion level used to generate a continuum orbital of
// partial wave κ: the final level with the continuum subshell added to its
// leading configuration.
func ResidualLevel(final Level, kappa angular.Kappa) Level {
	res := final
	res.Leading = final.Leading.With(ContinuumSubshell(kappa))

	return res
}

// NewContinuumLevel couples residual and orbital to the transient symmetry.
func NewContinuumLevel(residual Level, orbital Orbital, kappa angular.Kappa, phase float64, sym angular.Symmetry) ContinuumLevel {
	return ContinuumLevel{Residual: residual, Kappa: kappa, Orbital: orbital, Phase: phase, Symmetry: sym}
}
