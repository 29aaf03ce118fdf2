package photoionization

import (
	"cmp"
	"math"
	"math/cmplx"
	"slices"

	"github.com/katalvlaran/photoion/angular"
	"github.com/katalvlaran/photoion/radiation"
)

// parameterTable maps each (L1, L2, X, electric1, electric2) class of the
// forward-direction sum onto its named parameter. Keys absent here are not
// named.
var parameterTable = map[ParameterKey]Parameter{
	{L1: 1, L2: 1, X: 2, Electric1: true, Electric2: true}: Beta1,

	{L1: 1, L2: 2, X: 1, Electric1: true, Electric2: true}: Gamma1,
	{L1: 2, L2: 1, X: 1, Electric1: true, Electric2: true}: Gamma1,
	{L1: 1, L2: 2, X: 3, Electric1: true, Electric2: true}: Gamma3,
	{L1: 2, L2: 1, X: 3, Electric1: true, Electric2: true}: Gamma3,

	{L1: 1, L2: 1, X: 1, Electric1: true, Electric2: false}: Delta1,
	{L1: 1, L2: 1, X: 1, Electric1: false, Electric2: true}: Delta1,

	{L1: 2, L2: 2, X: 2, Electric1: true, Electric2: true}: Pi2,
	{L1: 2, L2: 2, X: 4, Electric1: true, Electric2: true}: Pi4,

	{L1: 1, L2: 3, X: 2, Electric1: true, Electric2: true}: Lambda2,
	{L1: 3, L2: 1, X: 2, Electric1: true, Electric2: true}: Lambda2,
	{L1: 1, L2: 3, X: 4, Electric1: true, Electric2: true}: Lambda4,
	{L1: 3, L2: 1, X: 4, Electric1: true, Electric2: true}: Lambda4,

	{L1: 1, L2: 2, X: 2, Electric1: true, Electric2: false}: Upsilon2,
	{L1: 2, L2: 1, X: 2, Electric1: false, Electric2: true}: Upsilon2,
}

// parameterRanks is the rank X each named parameter is defined at.
var parameterRanks = [numParameters]int{
	Beta1: 2, Gamma1: 1, Gamma3: 3, Pi2: 2, Pi4: 4, Delta1: 1, Lambda2: 2, Lambda4: 4, Upsilon2: 2,
}

// Rank returns the rank X of parameter p.
func (p Parameter) Rank() int { return parameterRanks[p] }

// Keys returns the term classes bucketed into p in a stable order.
func (p Parameter) Keys() []ParameterKey {
	var out []ParameterKey
	for k, v := range parameterTable {
		if v == p {
			out = append(out, k)
		}
	}
	slices.SortFunc(out, func(a, b ParameterKey) int {
		return cmp.Or(cmp.Compare(a.L1, b.L1), cmp.Compare(a.L2, b.L2), cmp.Compare(a.X, b.X),
			cmp.Compare(boolRank(a.Electric1), boolRank(b.Electric1)))
	})

	return out
}

func boolRank(b bool) int {
	if b {
		return 1
	}
	return 0
}

// Lookup returns the parameter a term class is bucketed into.
func Lookup(key ParameterKey) (Parameter, bool) {
	p, ok := parameterTable[key]

	return p, ok
}

// forwardPhoton is the helicity sum of the forward direction in closed form,
//
//	Σ_λ ρ_λλ c1(λ)c2*(λ) (L1 L2 X; λ −λ 0) = i^{L1−L2} √([L1][L2]) (L1 L2 X; 1 −1 0) · F
//
// with ε = (−1)^{L1+L2+X} and
//
//	F = ½[(1+ε) + P3(1−ε)]     E-E, M-M
//	F = ±i·½[(1−ε) + P3(1+ε)]  E-M (+), M-E (−)
func forwardPhoton(a, b radiation.Multipole, x int, p3 float64) complex128 {
	w3 := angular.W3j(a.J(), b.J(), angular.Int(x), angular.Int(1), angular.Int(-1), 0)
	if w3 == 0 {
		return 0
	}
	eps := 1.0
	if (a.Rank()+b.Rank()+x)%2 != 0 {
		eps = -1
	}

	var f complex128
	switch {
	case a.Electric() == b.Electric():
		f = complex(((1+eps)+p3*(1-eps))/2, 0)
	case a.Electric():
		f = complex(0, ((1-eps)+p3*(1+eps))/2)
	default:
		f = complex(0, -((1-eps)+p3*(1+eps))/2)
	}

	return radiation.IPow(a.Rank()-b.Rank()) * complex(math.Sqrt(float64((2*a.Rank()+1)*(2*b.Rank()+1)))*w3, 0) * f
}

// ClosedForm evaluates named parameter p of already evaluated channels in
// gauge g directly at its fixed rank, without the general angular sum:
//
//	p = Re Σ_{pairs of p's classes} geometry(X_p) · forwardPhoton · A1 A2* / Σ|A|²
//
// Only the circular component P3 of stokes enters the forward direction.
// NoValue when the gauge norm is zero.
func ClosedForm(p Parameter, initial, final angular.Symmetry, channels []Channel, g radiation.Gauge, stokes radiation.Stokes) float64 {
	x := p.Rank()
	var sum complex128
	for _, a := range channels {
		if !a.Gauge.ContributesTo(g) {
			continue
		}
		for _, b := range channels {
			if !b.Gauge.ContributesTo(g) {
				continue
			}
			key := ParameterKey{L1: a.Multipole.Rank(), L2: b.Multipole.Rank(), X: x,
				Electric1: a.Multipole.Electric(), Electric2: b.Multipole.Electric()}
			if q, ok := parameterTable[key]; !ok || q != p {
				continue
			}
			geo := pairGeometry(initial, final, a, b, x)
			if geo == 0 {
				continue
			}
			sum += forwardPhoton(a.Multipole, b.Multipole, x, stokes.P3) * complex(geo, 0) *
				a.Amplitude() * cmplx.Conj(b.Amplitude())
		}
	}

	return normalize(real(sum), amplitudeNorms(channels).Get(g))
}
