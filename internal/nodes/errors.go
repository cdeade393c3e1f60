package nodes

import "errors"

// ErrInvalidManifest indicates a generated-file manifest could not be used.
var ErrInvalidManifest = errors.New("invalid file manifest")
