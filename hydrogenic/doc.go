// Package hydrogenic provides an analytic stand-in for the external atomic
// structure collaborators: a continuum-orbital provider built on asymptotic
// Coulomb waves and a radiative evaluator that integrates single-electron
// radial overlaps with a screened hydrogenic bound orbital.
//
// 🚀 What is it?
//
//	The photoionization engine delegates orbital generation and radiative
//	matrix elements to atomic.OrbitalProvider and atomic.RadiativeEvaluator.
//	Model implements both with closed-form radial functions so that lines
//	can be computed end-to-end without a self-consistent-field package. The
//	numbers are physically shaped (thresholds, Coulomb phases, smooth energy
//	dependence) but not spectroscopically accurate.
//
// ✨ Key features:
//   - Coulomb phase σ_l = arg Γ(l+1+iη) with η = −Z_ion/k.
//   - Continuum orbitals sampled on the radial grid, regular at the origin.
//   - Length (Babushkin) and velocity (Coulomb) forms of the radial integral;
//     magnetic multipoles share one gauge-free integral.
//
// ⚙️ Usage:
//
//	m := hydrogenic.New()
//	eng, err := photoionization.NewEngine(m, m, d,
//	    photoionization.WithRadialGrid(hydrogenic.DefaultGrid()),
//	    photoionization.WithNuclearModel(atomic.NuclearModel{Z: 10, Model: "point"}))
package hydrogenic
