// Package atomic defines the atomic-structure vocabulary the photoionization
// engine consumes: subshells and configurations, levels and multiplets,
// one-electron orbitals, the radial grid and nuclear model handed to
// external solvers, and the compound continuum level (residual ion plus one
// free electron).
//
// It also declares the two external collaborators of the engine:
//
//	OrbitalProvider     generates a continuum orbital and its scattering phase
//	RadiativeEvaluator  evaluates one reduced radiative matrix element
//
// Neither is implemented here; package hydrogenic ships an analytic stand-in
// and callers plug in real solvers.
package atomic
