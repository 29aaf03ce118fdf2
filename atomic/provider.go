package atomic

import (
	"context"

	"github.com/katalvlaran/photoion/angular"
	"github.com/katalvlaran/photoion/radiation"
)

// AmplitudeKind selects the radiative process an evaluator computes.
type AmplitudeKind int

const (
	// Photoionization is photon absorption into the continuum.
	Photoionization AmplitudeKind = iota
	// Emission is spontaneous emission between bound levels.
	Emission
	// Absorption is bound-bound photon absorption.
	Absorption
)

func (k AmplitudeKind) String() string {
	switch k {
	case Photoionization:
		return "photoionization"
	case Emission:
		return "emission"
	case Absorption:
		return "absorption"
	}

	return "unknown"
}

// OrbitalProvider generates a continuum orbital with energy ε (Hartree) and
// partial wave κ in the field of the residual level, and returns it together
// with its scattering phase. Implementations must be safe for concurrent use.
type OrbitalProvider interface {
	GenerateOrbitalForLevel(ctx context.Context, energy float64, kappa angular.Kappa, residual Level,
		nucleus NuclearModel, grid RadialGrid, settings ContinuumSettings) (Orbital, float64, error)
}

// RadiativeEvaluator returns the reduced radiative matrix element between a
// bound initial level and a continuum final level for one multipole and gauge
// at photon energy omega (Hartree). Implementations must be safe for
// concurrent use.
type RadiativeEvaluator interface {
	EvaluateRadiativeAmplitude(ctx context.Context, kind AmplitudeKind, mp radiation.Multipole, gauge radiation.Gauge,
		omega float64, final ContinuumLevel, initial Level, grid RadialGrid) (complex128, error)
}
