// Package photoion computes photoionization amplitudes and the observables
// built from them: total and partial cross sections, the dipole anisotropy,
// Wigner-like time delays, statistical tensors of the residual ion and the
// non-dipole angular distribution with its named correlation parameters.
//
// 🚀 What is photoion?
//
//	A library plus a small CLI that brings together:
//		• Racah algebra: twice-integer momenta, 3j/6j/9j, Clebsch-Gordan, Wigner d
//		• Radiation field: multipoles, gauges, Stokes parameters
//		• Channel enumeration under parity and triangle rules
//		• A concurrent engine driving external orbital/amplitude providers
//		• Reporting helpers: interpolation, per-shell sums, contributing kappas
//
// ✨ Why photoion?
//
//   - Explicit context - constants, units and logger travel in defaults.Defaults
//   - Deterministic - channel order and results never depend on scheduling
//   - Pluggable - any structure code fits behind atomic.OrbitalProvider and
//     atomic.RadiativeEvaluator; hydrogenic/ ships an analytic one
//
// Under the hood, everything is organized under these subpackages:
//
//	angular/         - angular-momentum algebra and rotation matrices
//	matrix/          - dense float64 tables backing the d^j(β) matrices
//	radiation/       - multipoles, gauges, two-gauge values, polarization
//	atomic/          - levels, configurations, orbitals, provider interfaces
//	defaults/        - physical constants, energy units, logger
//	photoionization/ - channels, lines, engine and every observable
//	hydrogenic/      - analytic Coulomb-wave provider for demos and tests
//	config/          - run files (viper) and level fixtures (YAML, TOML)
//	cmd/photoion/    - the command-line front end
//
// Quick example:
//
//	photoion channels --initial 0+ --final 1/2- --multipoles E1,M1
//
//	go get github.com/katalvlaran/photoion
package photoion
