// Package photoionization computes photoionization amplitudes and the
// observables derived from them for transitions between a bound atomic level
// and a final ion-plus-free-electron level.
//
// 🚀 What is it?
//
//	A photon of energy ω ionizes a level |i⟩ into the residual ion |f⟩ and a
//	free electron of energy ε. The transition is expanded into channels
//	(photon multipole, gauge, electron partial wave κ, transient symmetry J_t),
//	one complex amplitude per channel. Every observable is a coherent or
//	incoherent recombination of those amplitudes through Racah algebra.
//
// ✨ Key features:
//   - EnumerateChannels: the legal channel set under parity and triangle rules,
//     in a deterministic order.
//   - DetermineLines: level pairs × requested energies → Lines, closed
//     channels (ε < 0) dropped.
//   - Engine: orbital generation + amplitude evaluation per channel (through
//     the atomic.OrbitalProvider / atomic.RadiativeEvaluator collaborators),
//     Lines evaluated in parallel.
//   - Observables: total cross sections, the dipole anisotropy β, coherent and
//     incoherent time delays, partial cross sections per M_f, statistical
//     tensors ρ_kq, the non-dipole angle-differential cross section and the
//     named correlation parameters {β1, γ1, γ3, π2, π4, δ1, λ2, λ4, υ2}.
//   - Extraction helpers for reporting: photon energies, interpolated cross
//     sections, decomposition by ionized shell, contributing kappas.
//
// ⚙️ Usage:
//
//	d := defaults.New(defaults.WithEnergyUnit(defaults.ElectronVolt))
//	s, err := photoionization.NewSettings(
//	    photoionization.WithMultipoles(radiation.E(1)),
//	    photoionization.WithPhotonEnergies(30, 40, 50),
//	    photoionization.WithAnisotropy(true),
//	)
//	lines := photoionization.DetermineLines(initial, final, s, d)
//	eng, err := photoionization.NewEngine(orbitals, evaluator, d)
//	lines, err = eng.ComputeLines(ctx, lines, s)
//
// Conventions:
//
//	All energies inside a Line are in Hartree; Settings energies are in the
//	unit of the defaults.Defaults context. Quantities that would divide by a
//	zero amplitude norm are reported as the sentinel −9 (NoValue).
//
// Complexity:
//
//	Channel enumeration is O(|multipoles|·J). Pair sums are O(C²) per Line for
//	C channels; the non-dipole sum is O(C²·X_max) per Line plus
//	O(C²·X_max·|grid|) for the angular grid.
package photoionization
