package config

import "errors"

// ErrInvalidConfig indicates the compiler configuration cannot produce a build plan.
var ErrInvalidConfig = errors.New("invalid configuration")
