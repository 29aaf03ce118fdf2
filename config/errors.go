package config

import "github.com/cockroachdb/errors"

// ErrInvalidConfig indicates a run file or fixture that cannot be turned into
// engine inputs.
var ErrInvalidConfig = errors.New("config: invalid configuration")
