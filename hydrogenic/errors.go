package hydrogenic

import "github.com/cockroachdb/errors"

var (
	// ErrBelowThreshold indicates a continuum orbital requested at ε ≤ 0.
	ErrBelowThreshold = errors.New("hydrogenic: electron energy must be positive")

	// ErrBadGrid indicates a radial grid with fewer than two points or RMax ≤ RMin.
	ErrBadGrid = errors.New("hydrogenic: invalid radial grid")

	// ErrUnsupportedKind indicates an amplitude kind other than photoionization.
	ErrUnsupportedKind = errors.New("hydrogenic: unsupported amplitude kind")
)
