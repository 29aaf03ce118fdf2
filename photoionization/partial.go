package photoionization

import (
	"math"
	"math/cmplx"

	"github.com/katalvlaran/photoion/angular"
	"github.com/katalvlaran/photoion/radiation"
)

// coherentPair is one (a, b) channel pair sharing partial wave and gauge.
// Only such pairs interfere in quantities summed over the electron
// direction.
type coherentPair struct {
	a, b Channel
	prod complex128 // A_a · A_b*
	base float64    // (−1)^{J_i+J_f+J_ta+J_tb+j+1} √([J_ta][J_tb])
}

// coherentPairs returns every ordered pair contributing to gauge g.
func coherentPairs(initial, final angular.Symmetry, channels []Channel, g radiation.Gauge) []coherentPair {
	var out []coherentPair
	for _, a := range channels {
		if !a.Gauge.ContributesTo(g) {
			continue
		}
		for _, b := range channels {
			if b.Kappa != a.Kappa || b.Gauge != a.Gauge {
				continue
			}
			out = append(out, coherentPair{
				a:    a,
				b:    b,
				prod: a.Amplitude() * cmplx.Conj(b.Amplitude()),
				base: angular.Phase(int(initial.J), int(final.J), int(a.Symmetry.J), int(b.Symmetry.J), int(a.Kappa.J()), 2) *
					angular.SqrtBracket(a.Symmetry.J, b.Symmetry.J),
			})
		}
	}

	return out
}

// partialCrossSections resolves the cross section over the magnetic
// substates M_f of the residual ion (unpolarized target, light summed over
// helicities):
//
//	σ(M_f) = 8π³α / (2ω[J_i]) · Re Σ_{pairs} Σ_λ Σ_t c_a(λ)c_b*(λ) ⟨L_a λ, L_b −λ|t 0⟩
//	         (−1)^{J_ta+L_b+J_i+t} √([J_i][t]) {L_a J_ta J_i; L_b J_tb J_i; t t 0}
//	         {J_ta J_tb t; J_f J_f j} (−1)^{J_f−M_f} ⟨J_f M_f, J_f −M_f|t 0⟩ · base · A_a A_b*
//
// Σ_{M_f} σ(M_f) = σ·α²/[J_i].
func partialCrossSections(initial, final angular.Symmetry, channels []Channel, omega, alpha float64) []PartialCrossSection {
	projections := final.J.Projections()
	out := make([]PartialCrossSection, len(projections))
	for i, mf := range projections {
		out[i].Mf = mf
	}
	scale := 8 * math.Pi * math.Pi * math.Pi * alpha / (2 * omega * float64(initial.J.Bracket()))

	for _, g := range radiation.EmGauges {
		sums := make([]complex128, len(projections))
		for _, p := range coherentPairs(initial, final, channels, g) {
			l1, l2 := p.a.Multipole.J(), p.b.Multipole.J()
			t1, t2 := p.a.Symmetry.J, p.b.Symmetry.J
			tmax := min(int(final.J), p.a.Multipole.Rank()+p.b.Multipole.Rank())
			for t := 0; t <= tmax; t++ {
				tt := angular.Int(t)
				geo := angular.W6j(t1, t2, tt, final.J, final.J, p.a.Kappa.J())
				if geo == 0 {
					continue
				}
				geo *= angular.W9j(l1, t1, initial.J, l2, t2, initial.J, tt, tt, 0)
				if geo == 0 {
					continue
				}
				geo *= angular.Phase(int(t1), int(l2), int(initial.J), int(tt)) * angular.SqrtBracket(initial.J, tt) * p.base

				var photon complex128
				for _, lam := range radiation.Helicities {
					cg := angular.ClebschGordan(l1, angular.Int(lam), l2, angular.Int(-lam), tt, 0)
					if cg == 0 {
						continue
					}
					photon += radiation.PhotonFactor(p.a.Multipole, lam) *
						cmplx.Conj(radiation.PhotonFactor(p.b.Multipole, lam)) * complex(cg, 0)
				}
				if photon == 0 {
					continue
				}
				term := photon * complex(geo, 0) * p.prod
				for i, mf := range projections {
					proj := angular.Phase(int(final.J-mf)) * angular.ClebschGordan(final.J, mf, final.J, -mf, tt, 0)
					sums[i] += term * complex(proj, 0)
				}
			}
		}
		for i := range out {
			out[i].Value = out[i].Value.With(g, scale*real(sums[i]))
		}
	}

	return out
}

// PartialCrossSections evaluates σ(M_f) for already evaluated channels.
func PartialCrossSections(initial, final angular.Symmetry, channels []Channel, omega, alpha float64) []PartialCrossSection {
	return partialCrossSections(initial, final, channels, omega, alpha)
}

// statisticalTensors returns ρ_kq (k = 0..2, q = −k..k) of the residual ion
// produced by light of polarization stokes:
//
//	ρ_kq = π/[J_i] Σ_{pairs} Σ_{λλ'} ρ_{λλ'} c_a(λ)c_b*(λ') ⟨L_a λ, L_b −λ'|k q⟩
//	       {L_a J_ta J_i; J_tb L_b k}{J_ta J_tb k; J_f J_f j} · base · A_a A_b*
//
// ρ_00 = π Σ|A|² / ([J_i]√[J_f]) and ρ_{k,−q} = (−1)^q ρ_kq*.
func statisticalTensors(initial, final angular.Symmetry, channels []Channel, stokes radiation.Stokes) []StatisticalTensor {
	var out []StatisticalTensor
	for k := 0; k <= 2; k++ {
		for q := -k; q <= k; q++ {
			out = append(out, StatisticalTensor{K: k, Q: q})
		}
	}
	scale := complex(math.Pi/float64(initial.J.Bracket()), 0)

	for _, g := range radiation.EmGauges {
		pairs := coherentPairs(initial, final, channels, g)
		for i := range out {
			kk, qq := angular.Int(out[i].K), angular.Int(out[i].Q)
			var sum complex128
			for _, p := range pairs {
				l1, l2 := p.a.Multipole.J(), p.b.Multipole.J()
				t1, t2 := p.a.Symmetry.J, p.b.Symmetry.J
				geo := angular.W6j(t1, t2, kk, final.J, final.J, p.a.Kappa.J())
				if geo == 0 {
					continue
				}
				geo *= angular.W6j(l1, t1, initial.J, t2, l2, kk) * p.base
				if geo == 0 {
					continue
				}
				for _, lam := range radiation.Helicities {
					for _, lamP := range radiation.Helicities {
						if lam-lamP != out[i].Q {
							continue
						}
						cg := angular.ClebschGordan(l1, angular.Int(lam), l2, angular.Int(-lamP), kk, qq)
						if cg == 0 {
							continue
						}
						sum += stokes.Density(lam, lamP) * radiation.PhotonFactor(p.a.Multipole, lam) *
							cmplx.Conj(radiation.PhotonFactor(p.b.Multipole, lamP)) * complex(cg*geo, 0) * p.prod
					}
				}
			}
			out[i].Value = out[i].Value.Accumulate(g, sum*scale)
		}
	}

	return out
}

// StatisticalTensors evaluates ρ_kq for already evaluated channels.
func StatisticalTensors(initial, final angular.Symmetry, channels []Channel, stokes radiation.Stokes) []StatisticalTensor {
	return statisticalTensors(initial, final, channels, stokes)
}
