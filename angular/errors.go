package angular

import "github.com/cockroachdb/errors"

// Sentinel errors returned by the angular package.
var (
	// ErrInvalidKappa indicates a kappa of zero or an (l, j) pair with |j−l| ≠ ½.
	ErrInvalidKappa = errors.New("angular: invalid kappa")

	// ErrNegativeMomentum indicates a negative angular momentum was supplied.
	ErrNegativeMomentum = errors.New("angular: angular momentum must be non-negative")

	// ErrParseSymmetry indicates a symmetry string such as "3/2-" could not be parsed.
	ErrParseSymmetry = errors.New("angular: cannot parse symmetry")
)
