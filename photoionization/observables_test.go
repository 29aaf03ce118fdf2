package photoionization_test

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/katalvlaran/photoion/angular"
	"github.com/katalvlaran/photoion/defaults"
	"github.com/katalvlaran/photoion/photoionization"
	"github.com/katalvlaran/photoion/radiation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type transition struct {
	name           string
	initial, final angular.Symmetry
	multipoles     []radiation.Multipole
}

var mixedTransitions = []transition{
	{"0+ -> 1/2-", sym(0, angular.Plus), sym(1, angular.Minus), []radiation.Multipole{radiation.E(1)}},
	{"1+ -> 3/2-", sym(2, angular.Plus), sym(3, angular.Minus),
		[]radiation.Multipole{radiation.E(1), radiation.M(1), radiation.E(2)}},
	{"3/2+ -> 1+", sym(3, angular.Plus), sym(2, angular.Plus),
		[]radiation.Multipole{radiation.E(1), radiation.M(2), radiation.E(2)}},
	{"5/2- -> 2+", sym(5, angular.Minus), sym(4, angular.Plus),
		[]radiation.Multipole{radiation.E(1), radiation.M(1), radiation.E(2), radiation.M(2), radiation.E(3)}},
}

func evaluatedChannels(t testing.TB, tr transition, seed uint64) []photoionization.Channel {
	t.Helper()
	s := mustSettings(t, photoionization.WithMultipoles(tr.multipoles...))
	channels := photoionization.EnumerateChannels(tr.initial, tr.final, s)
	require.NotEmpty(t, channels)

	return withRandomAmplitudes(t, channels, seed)
}

func TestPartialCrossSectionSumRule(t *testing.T) {
	const omega = 1.3
	alpha := defaults.FineStructure
	for i, tr := range mixedTransitions {
		t.Run(tr.name, func(t *testing.T) {
			channels := evaluatedChannels(t, tr, uint64(10+i))
			total := photoionization.CrossSection(channels, omega, alpha)
			partial := photoionization.PartialCrossSections(tr.initial, tr.final, channels, omega, alpha)
			require.Len(t, partial, tr.final.J.Bracket())

			for _, g := range radiation.EmGauges {
				sum := 0.0
				for _, p := range partial {
					sum += p.Value.Get(g)
				}
				want := total.Get(g) * alpha * alpha / float64(tr.initial.J.Bracket())
				assert.InDelta(t, want, sum, relDelta(want, 1e-10), g.String())
			}
			// unpolarized target and light: σ(M_f) = σ(−M_f)
			n := len(partial)
			for k := 0; k < n/2; k++ {
				assert.InDelta(t, partial[k].Value.Coulomb, partial[n-1-k].Value.Coulomb, relDelta(partial[k].Value.Coulomb, 1e-10))
				assert.Equal(t, -partial[k].Mf, partial[n-1-k].Mf)
			}
		})
	}
}

func TestStatisticalTensors(t *testing.T) {
	stokes := radiation.Stokes{P1: 0.2, P2: -0.3, P3: 0.4}
	for i, tr := range mixedTransitions {
		t.Run(tr.name, func(t *testing.T) {
			channels := evaluatedChannels(t, tr, uint64(20+i))
			tensors := photoionization.StatisticalTensors(tr.initial, tr.final, channels, stokes)
			require.Len(t, tensors, 9)

			byKQ := make(map[[2]int]radiation.EmComplex)
			for _, tt := range tensors {
				byKQ[[2]int{tt.K, tt.Q}] = tt.Value
			}
			for _, g := range radiation.EmGauges {
				rho00 := byKQ[[2]int{0, 0}].Get(g)
				want := math.Pi * gaugeNorm(channels, g) /
					(float64(tr.initial.J.Bracket()) * math.Sqrt(float64(tr.final.J.Bracket())))
				assert.InDelta(t, want, real(rho00), relDelta(want, 1e-10))
				assert.InDelta(t, 0, imag(rho00), 1e-10)

				for _, tt := range tensors {
					mirror := byKQ[[2]int{tt.K, -tt.Q}].Get(g)
					want := cmplx.Conj(tt.Value.Get(g))
					if tt.Q%2 != 0 {
						want = -want
					}
					assert.InDelta(t, real(want), real(mirror), 1e-10, "k=%d q=%d", tt.K, tt.Q)
					assert.InDelta(t, imag(want), imag(mirror), 1e-10, "k=%d q=%d", tt.K, tt.Q)
				}
			}
		})
	}
}

func TestPartialCrossSectionsFromTensors(t *testing.T) {
	// for dipole-only lines σ(M_f) follows from the unpolarized ρ_t0
	const omega = 0.9
	alpha := defaults.FineStructure
	initial, final := sym(2, angular.Plus), sym(3, angular.Minus)
	channels := evaluatedChannels(t, transition{initial: initial, final: final,
		multipoles: []radiation.Multipole{radiation.E(1)}}, 7)

	partial := photoionization.PartialCrossSections(initial, final, channels, omega, alpha)
	tensors := photoionization.StatisticalTensors(initial, final, channels, radiation.Unpolarized())

	for _, p := range partial {
		for _, g := range radiation.EmGauges {
			want := 0.0
			for _, tt := range tensors {
				if tt.Q != 0 {
					continue
				}
				k := angular.Int(tt.K)
				want += angular.Phase(int(final.J-p.Mf)) * angular.ClebschGordan(final.J, p.Mf, final.J, -p.Mf, k, 0) *
					real(tt.Value.Get(g))
			}
			want *= 8 * math.Pi * math.Pi * alpha / omega
			assert.InDelta(t, want, p.Value.Get(g), relDelta(want, 1e-10), "M_f=%s", p.Mf)
		}
	}
}

func TestDipoleDistribution(t *testing.T) {
	for i, tr := range []transition{
		{"3/2+ -> 1+", sym(3, angular.Plus), sym(2, angular.Plus), []radiation.Multipole{radiation.E(1)}},
		{"1- -> 3/2+", sym(2, angular.Minus), sym(3, angular.Plus), []radiation.Multipole{radiation.E(1)}},
	} {
		t.Run(tr.name, func(t *testing.T) {
			channels := evaluatedChannels(t, tr, uint64(30+i))
			s := mustSettings(t, photoionization.WithAngles(
				photoionization.AngularPoint{Theta: 0},
				photoionization.AngularPoint{Theta: 1.1, Phi: 0.4},
				photoionization.AngularPoint{Theta: 2.5, Phi: -1},
			))
			beta := photoionization.Anisotropy(tr.initial, tr.final, channels)
			dist, err := photoionization.AngularDistribution(tr.initial, tr.final, channels, s, 1, defaults.FineStructure)
			require.NoError(t, err)
			params := photoionization.ForwardParameters(tr.initial, tr.final, channels, s)

			for _, g := range radiation.EmGauges {
				b := beta.Get(g)
				// 1 − β/2 · P2(cos θ) for unpolarized dipole light
				for _, v := range dist {
					c := math.Cos(v.Point.Theta)
					want := 1 - b/2*(3*c*c-1)/2
					assert.InDelta(t, want, v.Normalized.Get(g), 1e-10, "θ=%g", v.Point.Theta)
				}
				assert.InDelta(t, -b/2, params.Get(photoionization.Beta1, g), 1e-10)
				assert.Zero(t, params.Get(photoionization.Gamma1, g))
			}

			require.Len(t, params.Unmatched, 1)
			assert.Equal(t, photoionization.ParameterKey{L1: 1, L2: 1, X: 0, Electric1: true, Electric2: true}, params.Unmatched[0].Key)
			assert.InDelta(t, 1.0, params.Unmatched[0].Value.Coulomb, 1e-10)
		})
	}
}

func TestNormalizedDistributionAverage(t *testing.T) {
	// Gauss-Legendre in cos θ times a uniform φ grid integrates the rank ≤ 6
	// distribution exactly.
	nodes := []float64{-0.9602898564975363, -0.7966664774136267, -0.5255324099163290, -0.1834346424956498,
		0.1834346424956498, 0.5255324099163290, 0.7966664774136267, 0.9602898564975363}
	weights := []float64{0.1012285362903763, 0.2223810344533745, 0.3137066458778873, 0.3626837833783620,
		0.3626837833783620, 0.3137066458778873, 0.2223810344533745, 0.1012285362903763}
	const nPhi = 8

	tr := mixedTransitions[2]
	channels := evaluatedChannels(t, tr, 41)
	var points []photoionization.AngularPoint
	for _, x := range nodes {
		for k := 0; k < nPhi; k++ {
			points = append(points, photoionization.AngularPoint{Theta: math.Acos(x), Phi: (float64(k) + 0.5) * 2 * math.Pi / nPhi})
		}
	}
	s := mustSettings(t, photoionization.WithAngles(points...), photoionization.WithStokes(radiation.Stokes{P1: 0.3, P3: -0.5}))
	dist, err := photoionization.AngularDistribution(tr.initial, tr.final, channels, s, 1, defaults.FineStructure)
	require.NoError(t, err)

	for _, g := range radiation.EmGauges {
		avg := 0.0
		for i, v := range dist {
			avg += weights[i/nPhi] * (2 * math.Pi / nPhi) * v.Normalized.Get(g)
		}
		assert.InDelta(t, 4*math.Pi, avg, 1e-9, g.String())
	}
}

func TestClosedFormsMatchBuckets(t *testing.T) {
	for i, tr := range mixedTransitions {
		for _, stokes := range []radiation.Stokes{radiation.Unpolarized(), {P1: 0.1, P2: 0.2, P3: 0.7}} {
			channels := evaluatedChannels(t, tr, uint64(50+i))
			s := mustSettings(t, photoionization.WithStokes(stokes))
			params := photoionization.ForwardParameters(tr.initial, tr.final, channels, s)
			for _, p := range photoionization.Parameters() {
				for _, g := range radiation.EmGauges {
					bucket := params.Get(p, g)
					closed := photoionization.ClosedForm(p, tr.initial, tr.final, channels, g, stokes)
					assert.InDelta(t, bucket, closed, relDelta(bucket, 1e-8), "%s %s %s P3=%g", tr.name, p, g, stokes.P3)
				}
			}
		}
	}
}

func TestParameterTable(t *testing.T) {
	seen := 0
	for _, p := range photoionization.Parameters() {
		keys := p.Keys()
		require.NotEmpty(t, keys, p.String())
		for _, k := range keys {
			assert.Equal(t, p.Rank(), k.X, k.String())
			got, ok := photoionization.Lookup(k)
			assert.True(t, ok)
			assert.Equal(t, p, got)
		}
		seen += len(keys)
	}
	assert.Equal(t, 15, seen)
	_, ok := photoionization.Lookup(photoionization.ParameterKey{L1: 1, L2: 1, X: 0, Electric1: true, Electric2: true})
	assert.False(t, ok)
	assert.Equal(t, "υ2", photoionization.Upsilon2.String())
}

func TestDistributionRejectsNonFiniteAngle(t *testing.T) {
	tr := mixedTransitions[1]
	channels := evaluatedChannels(t, tr, 3)
	s := mustSettings(t, photoionization.WithAngles(photoionization.AngularPoint{Theta: math.NaN()}))
	_, err := photoionization.AngularDistribution(tr.initial, tr.final, channels, s, 1, defaults.FineStructure)
	require.Error(t, err)
}
