package hydrogenic_test

import (
	"context"
	"math"
	"testing"

	"github.com/katalvlaran/photoion/angular"
	"github.com/katalvlaran/photoion/atomic"
	"github.com/katalvlaran/photoion/hydrogenic"
	"github.com/katalvlaran/photoion/radiation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCoulombPhase(t *testing.T) {
	// arg Γ(1 − i)
	assert.InDelta(t, 0.3016403204675, hydrogenic.CoulombPhase(0, -1), 1e-9)
	assert.Zero(t, hydrogenic.CoulombPhase(3, 0))

	// σ_{l+1} = σ_l + atan(η/(l+1))
	for _, eta := range []float64{-0.3, -2.5, -8} {
		for l := 0; l < 4; l++ {
			want := hydrogenic.CoulombPhase(l, eta) + math.Atan(eta/float64(l+1))
			assert.InDelta(t, want, hydrogenic.CoulombPhase(l+1, eta), 1e-10, "l=%d η=%g", l, eta)
		}
	}
}

func TestSommerfeld(t *testing.T) {
	assert.Equal(t, -2.0, hydrogenic.Sommerfeld(1, 0.5))
	assert.Zero(t, hydrogenic.Sommerfeld(0, 0.5))
}

func TestBoundOrbitalNormalized(t *testing.T) {
	grid := hydrogenic.DefaultGrid()
	h := (grid.RMax - grid.RMin) / float64(grid.Points-1)
	for _, c := range []struct{ n, l int }{{1, 0}, {2, 1}, {3, 2}} {
		sum := 0.0
		for i := 0; i < grid.Points; i++ {
			p, _ := hydrogenic.BoundOrbital(c.n, c.l, 2, grid.RMin+float64(i)*h)
			sum += p * p * h
		}
		assert.InDelta(t, 1.0, sum, 1e-4, "n=%d l=%d", c.n, c.l)
	}
}

func TestGenerateOrbital(t *testing.T) {
	m := hydrogenic.New()
	grid := hydrogenic.DefaultGrid()
	kappa := angular.Kappa(-2)

	ion, err := atomic.ParseConfiguration("1s1/2^1")
	require.NoError(t, err)
	residual := atomic.ResidualLevel(atomic.Level{Leading: ion}, kappa)

	orb, phase, err := m.GenerateOrbitalForLevel(context.Background(), 0.5, kappa, residual,
		atomic.NuclearModel{Z: 2}, grid, atomic.ContinuumSettings{})
	require.NoError(t, err)
	assert.Len(t, orb.Large, grid.Points)
	assert.Len(t, orb.Small, grid.Points)
	assert.True(t, orb.Subshell.IsContinuum())
	// charge 2 − 1 bound electron, k = 1
	assert.InDelta(t, hydrogenic.CoulombPhase(1, -1), phase, 1e-12)
}

func TestGenerateOrbitalErrors(t *testing.T) {
	m := hydrogenic.New()
	grid := hydrogenic.DefaultGrid()
	ctx := context.Background()

	_, _, err := m.GenerateOrbitalForLevel(ctx, 0, -1, atomic.Level{}, atomic.NuclearModel{}, grid, atomic.ContinuumSettings{})
	assert.ErrorIs(t, err, hydrogenic.ErrBelowThreshold)

	_, _, err = m.GenerateOrbitalForLevel(ctx, 1, -1, atomic.Level{}, atomic.NuclearModel{}, atomic.RadialGrid{Points: 1}, atomic.ContinuumSettings{})
	assert.ErrorIs(t, err, hydrogenic.ErrBadGrid)

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	_, _, err = m.GenerateOrbitalForLevel(cancelled, 1, -1, atomic.Level{}, atomic.NuclearModel{}, grid, atomic.ContinuumSettings{})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestEvaluateRadiativeAmplitude(t *testing.T) {
	m := hydrogenic.New()
	grid := hydrogenic.DefaultGrid()
	ctx := context.Background()
	kappa := angular.Kappa(1) // p1/2

	neutral, err := atomic.ParseConfiguration("1s1/2^2")
	require.NoError(t, err)
	ion, err := atomic.ParseConfiguration("1s1/2^1")
	require.NoError(t, err)
	initial := atomic.Level{Symmetry: angular.NewSymmetry(0, angular.Plus), Leading: neutral}
	residual := atomic.ResidualLevel(atomic.Level{Leading: ion}, kappa)

	orb, phase, err := m.GenerateOrbitalForLevel(ctx, 0.3, kappa, residual, atomic.NuclearModel{Z: 2}, grid, atomic.ContinuumSettings{})
	require.NoError(t, err)
	final := atomic.NewContinuumLevel(residual, orb, kappa, phase, angular.NewSymmetry(2, angular.Minus))

	omega := 0.3 + 0.9
	for _, g := range []radiation.Gauge{radiation.Coulomb, radiation.Babushkin} {
		amp, err := m.EvaluateRadiativeAmplitude(ctx, atomic.Photoionization, radiation.E(1), g, omega, final, initial, grid)
		require.NoError(t, err)
		assert.NotZero(t, real(amp), g.String())
		assert.Zero(t, imag(amp))
		assert.False(t, math.IsNaN(real(amp)))
	}

	e1, err := m.EvaluateRadiativeAmplitude(ctx, atomic.Photoionization, radiation.E(1), radiation.Babushkin, omega, final, initial, grid)
	require.NoError(t, err)
	e3, err := m.EvaluateRadiativeAmplitude(ctx, atomic.Photoionization, radiation.E(3), radiation.Babushkin, omega, final, initial, grid)
	require.NoError(t, err)
	assert.Less(t, math.Abs(real(e3)), math.Abs(real(e1)), "higher multipoles are retarded")

	_, err = m.EvaluateRadiativeAmplitude(ctx, atomic.Emission, radiation.E(1), radiation.Babushkin, omega, final, initial, grid)
	assert.ErrorIs(t, err, hydrogenic.ErrUnsupportedKind)

	_, err = m.EvaluateRadiativeAmplitude(ctx, atomic.Photoionization, radiation.E(1), radiation.Babushkin, omega, final, initial,
		atomic.RadialGrid{Points: 10, RMin: 0, RMax: 1})
	assert.ErrorIs(t, err, hydrogenic.ErrBadGrid)
}

func TestWithAlphaPanics(t *testing.T) {
	assert.Panics(t, func() { hydrogenic.WithAlpha(0) })
	assert.NotPanics(t, func() { hydrogenic.New(hydrogenic.WithAlpha(0.01)) })
}
