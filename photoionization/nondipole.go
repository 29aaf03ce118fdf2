// SPDX-License-Identifier: MIT

package photoionization

import (
	"math"
	"math/cmplx"

	"github.com/cockroachdb/errors"
	"github.com/katalvlaran/photoion/angular"
	"github.com/katalvlaran/photoion/radiation"
)

// correlationTerm is the angle-independent part of one (pair, X, Q) term of
// the angle-differential sum. The angular factor is d^X_{Q0}(θ)·e^{iQφ}.
type correlationTerm struct {
	key   ParameterKey
	q     int
	coeff complex128
}

// correlation holds the precomputed terms of the angle-differential cross
// section of one Line, per gauge.
type correlation struct {
	initial angular.Symmetry
	terms   [len(radiation.EmGauges)][]correlationTerm
	norms   radiation.EmProperty
	maxRank int
}

// pairGeometry returns the electron-side and recoupling factor of a channel
// pair at rank X:
//
//	(−1)^{2J_i+L1+L2+X+1} √([J_t1][J_t2][j1][j2]) {l1 j1 ½; j2 l2 X}
//	{j1 J_t1 J_f; J_t2 j2 X}{L1 J_t1 J_i; J_t2 L2 X} · √([l1][l2])[X] (l1 l2 X; 0 0 0)
//
// Zero when l1+l2+X is odd or a triad fails.
func pairGeometry(initial, final angular.Symmetry, a, b Channel, x int) float64 {
	la, lb := a.Kappa.L(), b.Kappa.L()
	if (la+lb+x)%2 != 0 {
		return 0
	}
	l1, l2, xx := angular.Int(la), angular.Int(lb), angular.Int(x)
	j1, j2 := a.Kappa.J(), b.Kappa.J()
	t1, t2 := a.Symmetry.J, b.Symmetry.J
	m1, m2 := a.Multipole.J(), b.Multipole.J()

	k := angular.W3j(l1, l2, xx, 0, 0, 0)
	if k == 0 {
		return 0
	}
	k *= angular.W6j(l1, j1, angular.J(1), j2, l2, xx)
	if k == 0 {
		return 0
	}
	k *= angular.W6j(j1, t1, final.J, t2, j2, xx)
	if k == 0 {
		return 0
	}
	k *= angular.W6j(m1, t1, initial.J, t2, m2, xx)
	if k == 0 {
		return 0
	}

	return k * angular.Phase(2*int(initial.J), int(m1), int(m2), int(xx), 2) *
		angular.SqrtBracket(t1, t2, j1, j2, l1, l2) * float64(xx.Bracket())
}

// newCorrelation precomputes the terms for ranks X = 0..maxRank. Every
// ordered pair of channels contributing to a gauge enters, so electric
// channels of that gauge interfere with magnetic ones.
func newCorrelation(initial, final angular.Symmetry, channels []Channel, stokes radiation.Stokes, maxRank int) *correlation {
	c := &correlation{initial: initial, norms: amplitudeNorms(channels), maxRank: maxRank}

	for gi, g := range radiation.EmGauges {
		var terms []correlationTerm
		for _, a := range channels {
			if !a.Gauge.ContributesTo(g) {
				continue
			}
			for _, b := range channels {
				if !b.Gauge.ContributesTo(g) {
					continue
				}
				prod := a.Amplitude() * cmplx.Conj(b.Amplitude())
				if prod == 0 {
					continue
				}
				for x := 0; x <= maxRank; x++ {
					geo := pairGeometry(initial, final, a, b, x)
					if geo == 0 {
						continue
					}
					key := ParameterKey{L1: a.Multipole.Rank(), L2: b.Multipole.Rank(), X: x,
						Electric1: a.Multipole.Electric(), Electric2: b.Multipole.Electric()}
					for _, l1 := range radiation.Helicities {
						for _, l2 := range radiation.Helicities {
							q := l1 - l2
							if q > x || -q > x {
								continue
							}
							w3 := angular.W3j(a.Multipole.J(), b.Multipole.J(), angular.Int(x),
								angular.Int(l1), angular.Int(-l2), angular.Int(-q))
							if w3 == 0 {
								continue
							}
							photon := stokes.Density(l1, l2) * radiation.PhotonFactor(a.Multipole, l1) *
								cmplx.Conj(radiation.PhotonFactor(b.Multipole, l2))
							terms = append(terms, correlationTerm{key: key, q: q, coeff: photon * complex(w3*geo, 0) * prod})
						}
					}
				}
			}
		}
		c.terms[gi] = terms
	}

	return c
}

// rotationColumns returns d^X_{Q0}(θ) for every X ≤ maxRank, indexed
// [X][RowIndex(X, Q)].
func rotationColumns(maxRank int, theta float64) ([][]float64, error) {
	out := make([][]float64, maxRank+1)
	for x := 0; x <= maxRank; x++ {
		xx := angular.Int(x)
		d, err := angular.SmallDMatrix(xx, theta)
		if err != nil {
			return nil, err
		}
		if out[x], err = d.Col(angular.RowIndex(xx, 0)); err != nil {
			return nil, errors.Wrapf(err, "rank %d", x)
		}
	}

	return out, nil
}

// sum evaluates Re S(θ, φ) for gauge slot gi.
func (c *correlation) sum(gi int, cols [][]float64, phi float64) float64 {
	var s complex128
	for _, t := range c.terms[gi] {
		d := cols[t.key.X][angular.RowIndex(angular.Int(t.key.X), angular.Int(t.q))]
		if d == 0 {
			continue
		}
		s += t.coeff * complex(d, 0) * cmplx.Exp(complex(0, float64(t.q)*phi))
	}

	return real(s)
}

// distribution evaluates the angle-differential cross section on the grid:
//
//	dσ/dΩ = 2π³/(α·ω·[J_i]) · Re S,   normalized = Re S / Σ|A|²
//
// Normalized is NoValue for a gauge with zero amplitude norm.
//
// Errors:
//   - matrix.ErrNaNInf when a rotation element is not finite (θ not finite).
func (c *correlation) distribution(angles []AngularPoint, omega, alpha float64) ([]AngularValue, error) {
	if len(angles) == 0 {
		return nil, nil
	}
	pref := 2 * math.Pi * math.Pi * math.Pi / (alpha * omega * float64(c.initial.J.Bracket()))

	out := make([]AngularValue, len(angles))
	for i, pt := range angles {
		cols, err := rotationColumns(c.maxRank, pt.Theta)
		if err != nil {
			return nil, errors.Wrapf(err, "θ=%g", pt.Theta)
		}
		out[i].Point = pt
		for gi, g := range radiation.EmGauges {
			s := c.sum(gi, cols, pt.Phi)
			out[i].Differential = out[i].Differential.With(g, pref*s)
			if n := c.norms.Get(g); n == 0 {
				out[i].Normalized = out[i].Normalized.With(g, NoValue)
			} else {
				out[i].Normalized = out[i].Normalized.With(g, s/n)
			}
		}
	}

	return out, nil
}

// parameters buckets the forward-direction (θ = φ = 0) terms into the named
// parameters through parameterTable. Terms of keys without a name are kept
// in Unmatched, in first-seen order.
func (c *correlation) parameters() NondipoleParameters {
	var out NondipoleParameters
	unmatched := make(map[ParameterKey]int)

	for gi, g := range radiation.EmGauges {
		n := c.norms.Get(g)
		var slots [numParameters]float64
		extra := make(map[ParameterKey]float64)
		for _, t := range c.terms[gi] {
			if t.q != 0 {
				continue
			}
			if p, ok := parameterTable[t.key]; ok {
				slots[p] += real(t.coeff)
				continue
			}
			if _, seen := unmatched[t.key]; !seen {
				unmatched[t.key] = len(out.Unmatched)
				out.Unmatched = append(out.Unmatched, UnmatchedTerm{Key: t.key})
			}
			extra[t.key] += real(t.coeff)
		}

		for p := range slots {
			out.Values[p] = out.Values[p].With(g, normalize(slots[p], n))
		}
		for key, v := range extra {
			i := unmatched[key]
			out.Unmatched[i].Value = out.Unmatched[i].Value.With(g, normalize(v, n))
		}
	}

	return out
}

func normalize(v, n float64) float64 {
	if n == 0 {
		return NoValue
	}

	return v / n
}

// AngularDistribution evaluates dσ/dΩ of already evaluated channels on the
// given directions.
//
// Errors:
//   - matrix.ErrNaNInf for a non-finite direction.
func AngularDistribution(initial, final angular.Symmetry, channels []Channel, s Settings, omega, alpha float64) ([]AngularValue, error) {
	return newCorrelation(initial, final, channels, s.Stokes, s.MaxRank).distribution(s.Angles, omega, alpha)
}

// ForwardParameters returns the named parameters of already evaluated
// channels.
func ForwardParameters(initial, final angular.Symmetry, channels []Channel, s Settings) NondipoleParameters {
	return newCorrelation(initial, final, channels, s.Stokes, s.MaxRank).parameters()
}
