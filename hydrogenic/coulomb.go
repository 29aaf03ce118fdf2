// SPDX-License-Identifier: MIT
//
// coulomb.go - closed-form radial functions of the model.
//
// Contract:
//   - CoulombPhase(l, η) = arg Γ(l+1+iη), continuous in η (not reduced mod 2π).
//   - ContinuumWave is energy-normalized asymptotically and ∝ r^{l+1} at the origin.
//   - BoundOrbital is a normalized nodeless hydrogenic function r^{l+1}e^{−Zr/n}.

package hydrogenic

import (
	"math"
	"math/cmplx"
)

// stirlingShift moves the Γ argument to |z| ≥ 10 before the asymptotic series.
const stirlingShift = 10

// lnGammaIm returns Im ln Γ(z) for Re z > 0 through the recurrence
// ln Γ(z) = ln Γ(z+N) − Σ_{k<N} ln(z+k) and the Stirling series at z+N.
func lnGammaIm(z complex128) float64 {
	sum := 0.0
	for k := 0; k < stirlingShift; k++ {
		sum += cmplx.Phase(z + complex(float64(k), 0))
	}
	w := z + stirlingShift
	w2 := w * w
	series := (w-0.5)*cmplx.Log(w) - w + 1/(12*w) - 1/(360*w*w2) + 1/(1260*w*w2*w2)

	return imag(series) - sum
}

// CoulombPhase returns σ_l = arg Γ(l+1+iη).
func CoulombPhase(l int, eta float64) float64 {
	if eta == 0 {
		return 0
	}

	return lnGammaIm(complex(float64(l+1), eta))
}

// Sommerfeld returns η = −Z/k for an electron of momentum k in the field of
// charge Z (atomic units).
func Sommerfeld(charge, k float64) float64 {
	if charge <= 0 {
		return 0
	}

	return -charge / k
}

// ContinuumWave returns the model continuum function at r:
//
//	F(r) = √(2/(πk)) · s(kr) · sin(kr − η ln 2kr − lπ/2 + σ_l),  s(x) = x^{l+1}/(1+x^{l+1})
func ContinuumWave(l int, k, eta, sigma, r float64) float64 {
	x := k * r
	if x <= 0 {
		return 0
	}
	p := math.Pow(x, float64(l+1))
	theta := x - eta*math.Log(2*x) - float64(l)*math.Pi/2 + sigma

	return math.Sqrt(2/(math.Pi*k)) * p / (1 + p) * math.Sin(theta)
}

// BoundOrbital returns P(r) = N r^{l+1} e^{−Zr/n} and its derivative, with N
// normalizing ∫P² dr to one.
func BoundOrbital(n, l int, charge, r float64) (p, dp float64) {
	a := 2 * charge / float64(n)
	norm := math.Sqrt(math.Pow(a, float64(2*l+3)) / math.Gamma(float64(2*l+3)))
	e := math.Exp(-charge * r / float64(n))
	p = norm * math.Pow(r, float64(l+1)) * e
	dp = norm * math.Pow(r, float64(l)) * e * (float64(l+1) - charge*r/float64(n))

	return p, dp
}
