package engine

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/danieljhkim/vlbuild/internal/config"
	"github.com/danieljhkim/vlbuild/internal/document"
	"github.com/danieljhkim/vlbuild/internal/hash"
)

func TestEngine_Show(t *testing.T) {
	fs := newMemFS("obj_dir")
	hasher := hash.NewFakeHasher()
	eng := New(fs, hasher, nil)

	snap := config.Snapshot{MakeDir: "obj_dir", SystemC: true}.Normalize()
	result, err := eng.Show(context.Background(), &ShowRequest{Snapshot: snap})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.Path != "obj_dir/vl_build.json" {
		t.Errorf("Path = %q, want obj_dir/vl_build.json", result.Path)
	}
	if want := document.Render(result.Plan); !bytes.Equal(result.Document, want) {
		t.Errorf("Document mismatch:\ngot:\n%s\nwant:\n%s", result.Document, want)
	}
	if result.Digest != "fakehash" {
		t.Errorf("Digest = %q, want fakehash", result.Digest)
	}
	if result.Plan.Mode != "systemc" {
		t.Errorf("Mode = %q, want systemc", result.Plan.Mode)
	}
	if len(fs.files) != 0 || fs.opened != 0 {
		t.Errorf("show wrote files: %v (opened %d)", fs.files, fs.opened)
	}
}

func TestEngine_Show_InvalidSnapshot(t *testing.T) {
	eng := New(newMemFS(), hash.NewFakeHasher(), nil)

	_, err := eng.Show(context.Background(), &ShowRequest{Snapshot: config.Snapshot{}})
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("err = %v, want ErrValidation", err)
	}
}
