// Package config loads run files and level fixtures for the photoionization
// engine.
//
// A run file is YAML read through viper; every key can be overridden from the
// environment with the PHOTOION_ prefix and "." replaced by "_":
//
//	units: ev
//	multipoles: [E1, M1, E2]
//	photon_energies: [30, 40, 50]
//	calc:
//	  anisotropy: true
//	  nondipole: true
//	angles:
//	  - {theta: 0.5, phi: 0}
//
//	PHOTOION_UNITS=hartree PHOTOION_CALC_ANISOTROPY=false photoion compute -c run.yaml
//
// Level fixtures (LoadMultiplet) are YAML or TOML, chosen by file extension.
package config
