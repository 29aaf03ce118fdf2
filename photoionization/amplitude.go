package photoionization

import (
	"context"
	"math/cmplx"

	"github.com/cockroachdb/errors"
	"github.com/katalvlaran/photoion/atomic"
	"github.com/katalvlaran/photoion/radiation"
)

// Amplitude evaluates the photoionization amplitude of channel ch at photon
// energy omega (Hartree):
//
//	A = M(kind, multipole, gauge) · i^{−l} · exp(−iσ)
//
// with M from the radiative evaluator, l the orbital momentum of ch.Kappa and
// σ the scattering phase carried by continuum. The i^{−l}·exp(−iσ) factor
// makes amplitudes of different partial waves summable coherently.
//
// Errors:
//   - ErrInvalidKind for any kind other than atomic.Photoionization.
//   - evaluator failures, wrapped.
func Amplitude(ctx context.Context, eval atomic.RadiativeEvaluator, kind atomic.AmplitudeKind, ch Channel,
	omega float64, continuum atomic.ContinuumLevel, initial atomic.Level, grid atomic.RadialGrid) (complex128, error) {
	if kind != atomic.Photoionization {
		return 0, errors.Wrapf(ErrInvalidKind, "%s", kind)
	}

	m, err := eval.EvaluateRadiativeAmplitude(ctx, kind, ch.Multipole, ch.Gauge, omega, continuum, initial, grid)
	if err != nil {
		return 0, errors.Wrapf(err, "radiative amplitude %s", ch)
	}

	return m * radiation.IPow(-ch.Kappa.L()) * cmplx.Exp(complex(0, -continuum.Phase)), nil
}
