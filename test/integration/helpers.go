package integration

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/danieljhkim/vlbuild/internal/config"
	"github.com/danieljhkim/vlbuild/internal/engine"
	"github.com/danieljhkim/vlbuild/internal/fsops"
	"github.com/danieljhkim/vlbuild/internal/hash"
)

// testEnv is a make directory wired to a real-filesystem engine.
type testEnv struct {
	MakeDir string
	FS      *fsops.RealFS
	Engine  *engine.Engine
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	mdir := filepath.Join(t.TempDir(), "obj_dir")
	if err := os.MkdirAll(mdir, 0755); err != nil {
		t.Fatalf("failed to create make dir: %v", err)
	}

	fs := fsops.NewRealFS()
	return &testEnv{
		MakeDir: mdir,
		FS:      fs,
		Engine:  engine.New(fs, hash.NewSHA256Hasher(), nil),
	}
}

// snapshot returns a normalized snapshot rooted at the env's make dir.
func (e *testEnv) snapshot(mutate func(*config.Snapshot)) config.Snapshot {
	snap := config.Snapshot{MakeDir: e.MakeDir}
	if mutate != nil {
		mutate(&snap)
	}
	return snap.Normalize()
}

// readDocument returns the emitted vl_build.json.
func (e *testEnv) readDocument(t *testing.T) []byte {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(e.MakeDir, "vl_build.json"))
	if err != nil {
		t.Fatalf("failed to read build plan: %v", err)
	}
	return data
}
