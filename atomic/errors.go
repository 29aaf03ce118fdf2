package atomic

import "github.com/cockroachdb/errors"

var (
	// ErrParseSubshell indicates a subshell label such as "2p3/2" could not be parsed.
	ErrParseSubshell = errors.New("atomic: cannot parse subshell")

	// ErrBadOccupation indicates a negative occupation or one above the subshell capacity.
	ErrBadOccupation = errors.New("atomic: occupation out of range")

	// ErrEmptyMultiplet indicates a multiplet without levels.
	ErrEmptyMultiplet = errors.New("atomic: multiplet has no levels")
)
