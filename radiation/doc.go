// Package radiation describes the absorbed photon: its multipole component
// (electric or magnetic, rank L), the gauge used for the radiative matrix
// element, the polarization (Stokes parameters and the helicity density
// matrix built from them) and EmProperty, the Coulomb/Babushkin value pair
// every gauge-dependent observable is reported as.
//
// ✨ Key features:
//   - Multipole: immutable value, "E1"/"M2" text form, parity (−1)^L or (−1)^{L+1}.
//   - Gauge: Coulomb, Babushkin and the gauge-invariant Magnetic tag; a
//     Magnetic quantity contributes to both gauge accumulations.
//   - EmProperty: pointwise arithmetic that never mixes the two tags.
//   - Stokes: (P1, P2, P3) with ρ_{λλ'} for helicities λ, λ' = ±1.
//
// ⚙️ Usage:
//
//	e1 := radiation.E(1)
//	sum := radiation.EmProperty{Coulomb: 1, Babushkin: 2}.Add(radiation.Uniform(3))
//	rho := radiation.Unpolarized().Density(+1, +1) // 0.5
package radiation
