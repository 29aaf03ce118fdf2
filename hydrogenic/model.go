// SPDX-License-Identifier: MIT
//
// model.go - the analytic provider/evaluator pair.
//
// Contract:
//   - GenerateOrbitalForLevel samples ContinuumWave on the uniform grid
//     r_i = RMin + i·(RMax−RMin)/(Points−1) and returns σ_l as the phase.
//   - EvaluateRadiativeAmplitude integrates the sampled continuum against the
//     bound orbital of the ionized subshell (trapezoid rule on the same grid).
//   - Both are pure functions of their arguments: safe for concurrent use.

package hydrogenic

import (
	"context"
	"math"

	"github.com/cockroachdb/errors"
	"github.com/katalvlaran/photoion/angular"
	"github.com/katalvlaran/photoion/atomic"
	"github.com/katalvlaran/photoion/defaults"
	"github.com/katalvlaran/photoion/radiation"
)

const (
	defGridPoints = 2000
	defGridRMin   = 1e-4
	defGridRMax   = 60.0
)

// DefaultGrid returns the grid the model is tuned for.
func DefaultGrid() atomic.RadialGrid {
	return atomic.RadialGrid{Points: defGridPoints, RMin: defGridRMin, RMax: defGridRMax}
}

// Model implements atomic.OrbitalProvider and atomic.RadiativeEvaluator.
type Model struct {
	alpha float64
}

// Option configures a Model.
type Option func(*Model)

// WithAlpha overrides the fine-structure constant of the magnetic form.
// Panics on alpha <= 0.
func WithAlpha(alpha float64) Option {
	if alpha <= 0 {
		panic("hydrogenic: WithAlpha: alpha must be > 0")
	}

	return func(m *Model) { m.alpha = alpha }
}

// New returns a Model.
func New(opts ...Option) *Model {
	m := &Model{alpha: defaults.FineStructure}
	for _, opt := range opts {
		opt(m)
	}

	return m
}

var (
	_ atomic.OrbitalProvider    = (*Model)(nil)
	_ atomic.RadiativeEvaluator = (*Model)(nil)
)

func validateGrid(g atomic.RadialGrid) error {
	if g.Points < 2 || !(g.RMax > g.RMin) || g.RMin < 0 {
		return errors.Wrapf(ErrBadGrid, "%+v", g)
	}

	return nil
}

func gridStep(g atomic.RadialGrid) float64 { return (g.RMax - g.RMin) / float64(g.Points-1) }

// ionCharge is the asymptotic charge seen by the outgoing electron: Z minus
// the bound electrons of the residual ion (the continuum electron excluded).
func ionCharge(nucleus atomic.NuclearModel, residual atomic.Level) float64 {
	bound := 0
	for _, sh := range residual.Leading.Shells() {
		if !sh.Subshell.IsContinuum() {
			bound += sh.Occupation
		}
	}

	return math.Max(0, nucleus.Z-float64(bound))
}

// GenerateOrbitalForLevel returns the sampled continuum wave of partial wave
// kappa at energy ε and its Coulomb phase.
//
// Errors:
//   - ErrBelowThreshold when energy <= 0.
//   - ErrBadGrid for a degenerate grid.
//   - ctx.Err() when ctx is done.
func (m *Model) GenerateOrbitalForLevel(ctx context.Context, energy float64, kappa angular.Kappa, residual atomic.Level,
	nucleus atomic.NuclearModel, grid atomic.RadialGrid, _ atomic.ContinuumSettings) (atomic.Orbital, float64, error) {
	if err := ctx.Err(); err != nil {
		return atomic.Orbital{}, 0, err
	}
	if !(energy > 0) {
		return atomic.Orbital{}, 0, errors.Wrapf(ErrBelowThreshold, "ε=%g", energy)
	}
	if err := validateGrid(grid); err != nil {
		return atomic.Orbital{}, 0, err
	}

	l := kappa.L()
	k := math.Sqrt(2 * energy)
	eta := Sommerfeld(ionCharge(nucleus, residual), k)
	sigma := CoulombPhase(l, eta)

	h := gridStep(grid)
	large := make([]float64, grid.Points)
	for i := range large {
		large[i] = ContinuumWave(l, k, eta, sigma, grid.RMin+float64(i)*h)
	}

	return atomic.Orbital{
		Subshell: atomic.ContinuumSubshell(kappa),
		Energy:   energy,
		Large:    large,
		Small:    make([]float64, grid.Points),
	}, sigma, nil
}

// boundSubshell picks the ionized subshell from the leading configurations,
// falling back to 1s when they do not differ by one electron.
func boundSubshell(initial atomic.Level, residual atomic.Level) (n, l int) {
	sub, ok := initial.Leading.IonizedSubshell(residual.Leading)
	if !ok {
		return 1, 0
	}

	return sub.N, sub.Kappa.L()
}

// EvaluateRadiativeAmplitude returns the model reduced matrix element
//
//	Babushkin: ∫ P_b r^L F dr
//	Coulomb:   (L/ω) ∫ F r^{L−1} P_b' dr
//	Magnetic:  (αω/2) ∫ P_b r^L F dr
//
// scaled by (αω)^{L−1}/(2L−1)!!. The bound charge follows from the binding
// energy ω − ε of the ionized subshell.
//
// Errors:
//   - ErrUnsupportedKind for kinds other than atomic.Photoionization.
//   - ErrBadGrid for a degenerate grid or an orbital sampled on another grid.
func (m *Model) EvaluateRadiativeAmplitude(ctx context.Context, kind atomic.AmplitudeKind, mp radiation.Multipole,
	gauge radiation.Gauge, omega float64, final atomic.ContinuumLevel, initial atomic.Level, grid atomic.RadialGrid) (complex128, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if kind != atomic.Photoionization {
		return 0, errors.Wrapf(ErrUnsupportedKind, "%s", kind)
	}
	if err := validateGrid(grid); err != nil {
		return 0, err
	}
	wave := final.Orbital.Large
	if len(wave) != grid.Points {
		return 0, errors.Wrapf(ErrBadGrid, "orbital has %d points, grid %d", len(wave), grid.Points)
	}

	n, lb := boundSubshell(initial, final.Residual)
	binding := omega - final.Orbital.Energy
	charge := 1.0
	if binding > 0 {
		charge = float64(n) * math.Sqrt(2*binding)
	}

	rank := mp.Rank()
	h := gridStep(grid)
	integral := 0.0
	for i, f := range wave {
		r := grid.RMin + float64(i)*h
		p, dp := BoundOrbital(n, lb, charge, r)

		var v float64
		if gauge == radiation.Coulomb {
			v = f * math.Pow(r, float64(rank-1)) * dp
		} else {
			v = p * math.Pow(r, float64(rank)) * f
		}
		if i == 0 || i == len(wave)-1 {
			v /= 2
		}
		integral += v * h
	}

	switch gauge {
	case radiation.Coulomb:
		integral *= float64(rank) / omega
	case radiation.Magnetic:
		integral *= m.alpha * omega / 2
	}
	integral *= math.Pow(m.alpha*omega, float64(rank-1)) / doubleFactorial(2*rank-1)

	return complex(integral, 0), nil
}

func doubleFactorial(n int) float64 {
	out := 1.0
	for ; n > 1; n -= 2 {
		out *= float64(n)
	}

	return out
}
