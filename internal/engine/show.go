package engine

import "context"

// Show derives and renders the build plan without writing anything.
func (e *Engine) Show(ctx context.Context, req *ShowRequest) (*ShowResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	plan, doc, err := e.render(req.Snapshot, req.Files)
	if err != nil {
		return nil, err
	}

	return &ShowResult{
		Path:     DocumentPath(req.Snapshot),
		Plan:     plan,
		Document: doc,
		Digest:   e.hasher.HashBytes(doc),
	}, nil
}
