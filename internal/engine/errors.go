package engine

import "errors"

var (
	// ErrOutputUnavailable indicates the build plan document could not be
	// opened for writing. It is fatal to the compilation.
	ErrOutputUnavailable = errors.New("build plan output unavailable")

	// ErrValidation indicates the request cannot produce a build plan.
	ErrValidation = errors.New("validation failed")

	// ErrNotFound indicates the build plan document does not exist.
	ErrNotFound = errors.New("not found")

	// ErrDrift indicates the on-disk document differs from a fresh rendering.
	ErrDrift = errors.New("drift detected")
)
