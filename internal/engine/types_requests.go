package engine

import (
	"github.com/danieljhkim/vlbuild/internal/config"
	"github.com/danieljhkim/vlbuild/internal/nodes"
)

// EmitRequest represents a request to write the build plan document.
type EmitRequest struct {
	// Snapshot is the compiler configuration; it must not change during the call
	Snapshot config.Snapshot

	// Files is the finalized generated-file descriptor list
	Files nodes.List
}

// ShowRequest represents a request to render the build plan without writing it.
type ShowRequest struct {
	// Snapshot is the compiler configuration
	Snapshot config.Snapshot

	// Files is the generated-file descriptor list
	Files nodes.List
}

// VerifyRequest represents a request to check the on-disk document for drift.
type VerifyRequest struct {
	// Snapshot is the compiler configuration the document should reflect
	Snapshot config.Snapshot

	// Files is the generated-file descriptor list the document should reflect
	Files nodes.List
}
