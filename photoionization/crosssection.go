package photoionization

import (
	"math"
	"math/cmplx"

	"github.com/katalvlaran/photoion/angular"
	"github.com/katalvlaran/photoion/radiation"
)

// amplitudeNorms returns Σ|A|² per gauge; Magnetic channels add to both.
func amplitudeNorms(channels []Channel) radiation.EmProperty {
	var acc radiation.EmComplex
	for _, ch := range channels {
		a := ch.Amplitude()
		acc = acc.Accumulate(ch.Gauge, complex(real(a)*real(a)+imag(a)*imag(a), 0))
	}

	return acc.Real()
}

// crossSection returns σ = 8π³/(α·ω) · Σ|A|² per gauge.
func crossSection(norms radiation.EmProperty, omega, alpha float64) radiation.EmProperty {
	return norms.Scale(8 * math.Pi * math.Pi * math.Pi / alpha / omega)
}

// CrossSection evaluates the total cross section of already evaluated
// channels at photon energy omega (Hartree).
func CrossSection(channels []Channel, omega, alpha float64) radiation.EmProperty {
	return crossSection(amplitudeNorms(channels), omega, alpha)
}

// anisotropy returns the dipole asymmetry parameter β per gauge:
//
//	β = √6 Σ (−1)^{2J_i+l+l'} √([J_t][J_t'][j][j'][l][l']) ⟨l0,l'0|20⟩
//	      {j l ½; l' j' 2}{j J_t J_f; J_t' j' 2}{1 J_t J_i; J_t' 1 2} Re(A A'*) / N
//
// summed over ordered pairs of E1 channels of the same gauge; N is the
// accumulated Σ|A|² of the gauge. NoValue when N = 0.
func anisotropy(initial, final angular.Symmetry, channels []Channel, norms radiation.EmProperty) radiation.EmProperty {
	e1 := radiation.E(1)
	one, two, half := angular.Int(1), angular.Int(2), angular.J(1)

	var out radiation.EmProperty
	for _, g := range radiation.EmGauges {
		n := norms.Get(g)
		if n == 0 {
			out = out.With(g, NoValue)
			continue
		}

		var sum complex128
		for _, c1 := range channels {
			if c1.Multipole != e1 || c1.Gauge != g {
				continue
			}
			l1, j1, t1 := angular.Int(c1.Kappa.L()), c1.Kappa.J(), c1.Symmetry.J
			for _, c2 := range channels {
				if c2.Multipole != e1 || c2.Gauge != g {
					continue
				}
				l2, j2, t2 := angular.Int(c2.Kappa.L()), c2.Kappa.J(), c2.Symmetry.J

				w := angular.ClebschGordan(l1, 0, l2, 0, two, 0)
				if w == 0 {
					continue
				}
				w *= angular.W6j(j1, l1, half, l2, j2, two) *
					angular.W6j(j1, t1, final.J, t2, j2, two) *
					angular.W6j(one, t1, initial.J, t2, one, two)
				if w == 0 {
					continue
				}
				w *= angular.Phase(2*int(initial.J), int(l1), int(l2)) * angular.SqrtBracket(t1, t2, j1, j2, l1, l2)
				sum += complex(w, 0) * c1.Amplitude() * cmplx.Conj(c2.Amplitude())
			}
		}
		out = out.With(g, math.Sqrt(6)*real(sum)/n)
	}

	return out
}

// Anisotropy evaluates β of already evaluated channels.
func Anisotropy(initial, final angular.Symmetry, channels []Channel) radiation.EmProperty {
	return anisotropy(initial, final, channels, amplitudeNorms(channels))
}
