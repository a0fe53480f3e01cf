package gobloom

import "errors"

// DefaultFalsePositiveRate is the false positive probability used by New,
// which is 1%.
const DefaultFalsePositiveRate = 0.01

var (
	ErrZeroExpectedItems        = errors.New("gobloom: expected item count must be positive")
	ErrInvalidFalsePositiveRate = errors.New("gobloom: false positive probability must be in (0,1)")
	ErrNilHashSource            = errors.New("gobloom: hash source must not be nil")
)
