package photoionization

import "github.com/cockroachdb/errors"

// Sentinel errors returned by the photoionization package.
var (
	// ErrInvalidKind indicates an amplitude request for a process other than photoionization.
	ErrInvalidKind = errors.New("photoionization: invalid amplitude kind")

	// ErrNoBracketingEnergies indicates that interpolation needs at least two
	// distinct photon energies for the requested initial level.
	ErrNoBracketingEnergies = errors.New("photoionization: no bracketing energies for interpolation")

	// ErrNilProvider indicates a nil orbital provider or radiative evaluator.
	ErrNilProvider = errors.New("photoionization: nil provider")

	// ErrEmptyMultipoles indicates Settings without any multipole.
	ErrEmptyMultipoles = errors.New("photoionization: no multipoles requested")

	// ErrEmptyGauges indicates Settings without any gauge.
	ErrEmptyGauges = errors.New("photoionization: no gauges requested")

	// ErrBadEnergy indicates a non-finite or non-positive photon energy, or a
	// negative electron energy.
	ErrBadEnergy = errors.New("photoionization: invalid energy")

	// ErrAmplitudeAssigned indicates a second write to a channel amplitude.
	ErrAmplitudeAssigned = errors.New("photoionization: channel amplitude already assigned")

	// ErrChannelMismatch indicates channel lists that do not pair positionally.
	ErrChannelMismatch = errors.New("photoionization: channel lists do not match")
)

// NoValue is the sentinel reported instead of NaN or ±Inf when a normalizing
// amplitude norm is zero.
const NoValue = -9.0
