package photoionization_test

import (
	"context"
	"math/rand/v2"
	"sync/atomic"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/katalvlaran/photoion/angular"
	atomicpkg "github.com/katalvlaran/photoion/atomic"
	"github.com/katalvlaran/photoion/photoionization"
	"github.com/katalvlaran/photoion/radiation"
	"github.com/stretchr/testify/require"
)

// fakeProvider returns phase τ·ε and a real amplitude fixed per (multipole,
// gauge, κ); optional hooks inject failures or zeros.
type fakeProvider struct {
	tau    float64
	zero   bool
	failAt float64 // photon energy that fails, 0 for none
	calls  atomic.Int64
}

var errFakeEvaluator = errors.New("fake evaluator failure")

func (f *fakeProvider) GenerateOrbitalForLevel(ctx context.Context, energy float64, kappa angular.Kappa, _ atomicpkg.Level,
	_ atomicpkg.NuclearModel, _ atomicpkg.RadialGrid, _ atomicpkg.ContinuumSettings) (atomicpkg.Orbital, float64, error) {
	if err := ctx.Err(); err != nil {
		return atomicpkg.Orbital{}, 0, err
	}

	return atomicpkg.Orbital{Subshell: atomicpkg.ContinuumSubshell(kappa), Energy: energy}, f.tau * energy, nil
}

func (f *fakeProvider) EvaluateRadiativeAmplitude(ctx context.Context, kind atomicpkg.AmplitudeKind, mp radiation.Multipole,
	g radiation.Gauge, omega float64, final atomicpkg.ContinuumLevel, _ atomicpkg.Level, _ atomicpkg.RadialGrid) (complex128, error) {
	f.calls.Add(1)
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if f.failAt != 0 && omega == f.failAt {
		return 0, errFakeEvaluator
	}
	if f.zero {
		return 0, nil
	}
	v := 1 + 0.25*float64(mp.Rank()) + 0.1*float64(final.Kappa)
	if g == radiation.Babushkin {
		v *= 1.1
	}
	if !mp.Electric() {
		v *= 0.3
	}

	return complex(v, 0), nil
}

// sym is shorthand for a symmetry from a twice-valued J.
func sym(twiceJ int, p angular.Parity) angular.Symmetry {
	return angular.NewSymmetry(angular.J(twiceJ), p)
}

// withRandomAmplitudes returns evaluated copies of channels with
// reproducible complex amplitudes.
func withRandomAmplitudes(t testing.TB, channels []photoionization.Channel, seed uint64) []photoionization.Channel {
	t.Helper()
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	out := make([]photoionization.Channel, len(channels))
	for i, ch := range channels {
		amp := complex(2*rng.Float64()-1, 2*rng.Float64()-1)
		var err error
		out[i], err = ch.WithAmplitude(rng.Float64(), amp)
		require.NoError(t, err)
	}

	return out
}

// gaugeNorm is Σ|A|² over the channels contributing to g.
func gaugeNorm(channels []photoionization.Channel, g radiation.Gauge) float64 {
	n := 0.0
	for _, ch := range channels {
		if ch.Gauge.ContributesTo(g) {
			a := ch.Amplitude()
			n += real(a)*real(a) + imag(a)*imag(a)
		}
	}

	return n
}

func mustSettings(t testing.TB, opts ...photoionization.Option) photoionization.Settings {
	t.Helper()
	s, err := photoionization.NewSettings(opts...)
	require.NoError(t, err)

	return s
}

// relDelta is the tolerance for comparing a and b to relative precision rel.
func relDelta(a, rel float64) float64 {
	if a < 0 {
		a = -a
	}

	return rel * max(1, a)
}
