package engine

import "github.com/danieljhkim/vlbuild/internal/planner"

// EmitResult represents the result of writing the build plan document.
type EmitResult struct {
	// Path is the document location
	Path string `json:"path"`

	// Plan is the plan that was rendered
	Plan *planner.BuildPlan `json:"plan"`

	// BytesWritten is the number of bytes accepted by the output stream
	BytesWritten int `json:"bytes_written"`

	// Digest is the SHA-256 of the rendered document
	Digest string `json:"digest"`

	// WriteErr is a write or close failure after a successful open. Such
	// failures are reported here and logged but do not fail the emission.
	WriteErr error `json:"-"`
}

// ShowResult represents a rendered but unwritten build plan.
type ShowResult struct {
	// Path is where Emit would write the document
	Path string `json:"path"`

	// Plan is the derived plan
	Plan *planner.BuildPlan `json:"plan"`

	// Document is the rendered document
	Document []byte `json:"-"`

	// Digest is the SHA-256 of Document
	Digest string `json:"digest"`
}

// VerifyResult represents the outcome of a drift check.
type VerifyResult struct {
	// Path is the checked document location
	Path string `json:"path"`

	// ExpectedDigest is the digest of a fresh rendering
	ExpectedDigest string `json:"expected_digest"`

	// ActualDigest is the digest of the on-disk document (empty if missing)
	ActualDigest string `json:"actual_digest"`

	// UpToDate is true when both digests match
	UpToDate bool `json:"up_to_date"`
}
