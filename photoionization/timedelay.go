package photoionization

import (
	"math/cmplx"

	"github.com/cockroachdb/errors"
	"github.com/katalvlaran/photoion/angular"
	"github.com/katalvlaran/photoion/radiation"
)

// DelayWeight is the rank-1 recoupling weight tying partial wave κ to the
// reference partial wave κ0 = (l0, j0) in the coherent time-delay sum:
//
//	w = (−1)^{j0+l+½+1} √([j][j0][l0]) ⟨l0 0, 1 0|l 0⟩ {l j ½; j0 l0 1}
func DelayWeight(kappa, reference angular.Kappa) float64 {
	l, j := angular.Int(kappa.L()), kappa.J()
	l0, j0 := angular.Int(reference.L()), reference.J()
	one, half := angular.Int(1), angular.J(1)

	w := angular.ClebschGordan(l0, 0, one, 0, l, 0)
	if w == 0 {
		return 0
	}
	w *= angular.W6j(l, j, half, j0, l0, one)
	if w == 0 {
		return 0
	}

	return w * angular.Phase(int(j0), int(l), int(half), 2) * angular.SqrtBracket(j, j0, l0)
}

// timeDelays pairs the channel lists at ω and ω+δ positionally and returns
// the coherent and incoherent delays per gauge:
//
//	coherent   = Im[(A(ω+δ) − A(ω)) / δ / A(ω)],  A = Σ w(κ;κ0)·A_ch
//	incoherent = (⟨arg A⟩(ω+δ) − ⟨arg A⟩(ω)) / δ,  ⟨·⟩ weighted by |A_ch|²
//
// Zero norms give NoValue.
//
// Errors:
//   - ErrChannelMismatch when the two lists do not pair.
func timeDelays(at, shifted []Channel, reference angular.Kappa) (coherent, incoherent radiation.EmProperty, err error) {
	if len(at) != len(shifted) {
		return coherent, incoherent, errors.Wrapf(ErrChannelMismatch, "%d vs %d channels", len(at), len(shifted))
	}
	for i := range at {
		if !at[i].sameShape(shifted[i]) {
			return coherent, incoherent, errors.Wrapf(ErrChannelMismatch, "position %d: %s vs %s", i, at[i], shifted[i])
		}
	}

	for _, g := range radiation.EmGauges {
		var a0, a1 complex128
		var n0, n1, p0, p1 float64
		for i, ch := range at {
			if !ch.Gauge.ContributesTo(g) {
				continue
			}
			w := complex(DelayWeight(ch.Kappa, reference), 0)
			x0, x1 := ch.Amplitude(), shifted[i].Amplitude()
			a0 += w * x0
			a1 += w * x1

			m0, m1 := sqAbs(x0), sqAbs(x1)
			n0 += m0
			n1 += m1
			p0 += m0 * cmplx.Phase(x0)
			p1 += m1 * cmplx.Phase(x1)
		}

		if a0 == 0 {
			coherent = coherent.With(g, NoValue)
		} else {
			coherent = coherent.With(g, imag((a1-a0)/complex(DelayStep, 0)/a0))
		}
		if n0 == 0 || n1 == 0 {
			incoherent = incoherent.With(g, NoValue)
		} else {
			incoherent = incoherent.With(g, (p1/n1-p0/n0)/DelayStep)
		}
	}

	return coherent, incoherent, nil
}

func sqAbs(z complex128) float64 { return real(z)*real(z) + imag(z)*imag(z) }

// TimeDelays exposes the delay assembly for channel lists evaluated elsewhere
// (both lists must come from the same enumeration, at ω and ω+DelayStep).
func TimeDelays(at, shifted []Channel, reference angular.Kappa) (coherent, incoherent radiation.EmProperty, err error) {
	if !reference.Valid() {
		return coherent, incoherent, errors.Wrap(angular.ErrInvalidKappa, "delay reference")
	}

	return timeDelays(at, shifted, reference)
}
