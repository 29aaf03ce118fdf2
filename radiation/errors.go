package radiation

import "github.com/cockroachdb/errors"

var (
	// ErrParseMultipole indicates text that is not of the form "E<L>" or "M<L>".
	ErrParseMultipole = errors.New("radiation: cannot parse multipole")

	// ErrParseGauge indicates an unknown gauge name.
	ErrParseGauge = errors.New("radiation: unknown gauge")

	// ErrInvalidStokes indicates a Stokes vector with a non-finite component or
	// a degree of polarization above one.
	ErrInvalidStokes = errors.New("radiation: invalid Stokes parameters")

	// ErrInvalidRank indicates a multipole rank below one.
	ErrInvalidRank = errors.New("radiation: multipole rank must be >= 1")
)
