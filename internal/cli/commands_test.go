package cli

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danieljhkim/vlbuild/internal/engine"
)

const testManifest = `files:
  - name: obj_dir/Vtop.cpp
    kind: cfile
    source: true
  - name: obj_dir/Vtop.h
    kind: cfile
    source: false
  - name: obj_dir/Vtop.mk
    kind: other
`

// setupTestEnv creates a make directory and a file manifest.
func setupTestEnv(t *testing.T) (mdir, manifest string) {
	t.Helper()
	t.Setenv("VERILATOR_ROOT", "/opt/verilator")

	root := t.TempDir()
	mdir = filepath.Join(root, "obj_dir")
	require.NoError(t, os.MkdirAll(mdir, 0755))

	manifest = filepath.Join(root, "files.yaml")
	require.NoError(t, os.WriteFile(manifest, []byte(testManifest), 0644))
	return mdir, manifest
}

func TestEmitCommand(t *testing.T) {
	mdir, manifest := setupTestEnv(t)

	out, _, err := execute(t, "emit", "--mdir", mdir, "--files", manifest, "--trace", "--threads", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "Wrote build plan")
	assert.Contains(t, out, filepath.Join(mdir, "vl_build.json"))

	data, err := os.ReadFile(filepath.Join(mdir, "vl_build.json"))
	require.NoError(t, err)
	require.True(t, json.Valid(data))

	doc := string(data)
	assert.Contains(t, doc, `"VERILATOR_ROOT": "/opt/verilator"`)
	assert.Contains(t, doc, `"features": ["vcd_c"]`)
	assert.Contains(t, doc, `"threads": 2`)
	assert.Contains(t, doc, `"trace": "vcd"`)
	assert.Contains(t, doc, `"compile_sources": ["Vtop.cpp"]`)
	assert.Contains(t, doc, `"compile_headers": ["Vtop.h"]`)
}

func TestEmitCommand_MatchesShow(t *testing.T) {
	mdir, manifest := setupTestEnv(t)

	_, _, err := execute(t, "emit", "--mdir", mdir, "--files", manifest, "--systemc")
	require.NoError(t, err)

	shown, _, err := execute(t, "show", "--mdir", mdir, "--files", manifest, "--systemc")
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(mdir, "vl_build.json"))
	require.NoError(t, err)
	assert.Equal(t, string(data), shown)
	assert.Contains(t, shown, `"mode": "systemc"`)
	assert.Contains(t, shown, `"compile_macros": ["VM_SC=1"]`)
}

func TestShowCommand_Summary(t *testing.T) {
	mdir, manifest := setupTestEnv(t)

	out, _, err := execute(t, "show", "--summary", "--mdir", mdir, "--files", manifest, "--coverage", "--trace")
	require.NoError(t, err)

	for _, want := range []string{
		"Support library",
		"Mode: ",
		"• cov",
		"• vcd_c",
		"• verilated_vcd_c.cpp",
		"Model Vtop",
		"• Vtop.cpp",
		"• Vtop.h",
	} {
		assert.Contains(t, out, want)
	}
	assert.NotContains(t, out, `"version"`)
	assert.NoFileExists(t, filepath.Join(mdir, "vl_build.json"))
}

func TestShowCommand_SummaryEmptyLists(t *testing.T) {
	mdir, _ := setupTestEnv(t)

	out, _, err := execute(t, "show", "--summary", "--mdir", mdir)
	require.NoError(t, err)
	assert.Contains(t, out, "Features: none")
	assert.Contains(t, out, "Headers: none")
}

func TestEmitCommand_JSONOutput(t *testing.T) {
	mdir, manifest := setupTestEnv(t)

	out, _, err := execute(t, "emit", "--json", "--mdir", mdir, "--files", manifest)
	require.NoError(t, err)

	var result struct {
		Path   string `json:"path"`
		Digest string `json:"digest"`
		Plan   struct {
			ModelSources []string `json:"model_sources"`
		} `json:"plan"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.Equal(t, filepath.Join(mdir, "vl_build.json"), result.Path)
	assert.Len(t, result.Digest, 64)
	assert.Equal(t, []string{"Vtop.cpp"}, result.Plan.ModelSources)
}

func TestEmitCommand_MissingMakeDir(t *testing.T) {
	_, _ = setupTestEnv(t)
	missing := filepath.Join(t.TempDir(), "does-not-exist")

	_, _, err := execute(t, "emit", "--mdir", missing)
	require.Error(t, err)
	assert.True(t, errors.Is(err, engine.ErrOutputUnavailable), "got %v", err)
}

func TestEmitCommand_Scan(t *testing.T) {
	mdir, _ := setupTestEnv(t)
	for _, name := range []string{"Vtop.cpp", "Vtop.h", "Vtop__Syms.cpp", "Vtop.mk"} {
		require.NoError(t, os.WriteFile(filepath.Join(mdir, name), nil, 0644))
	}

	_, _, err := execute(t, "emit", "--mdir", mdir, "--scan")
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(mdir, "vl_build.json"))
	require.NoError(t, err)
	assert.Contains(t, string(data), `"compile_sources": ["Vtop.cpp", "Vtop__Syms.cpp"]`)
	assert.Contains(t, string(data), `"compile_headers": ["Vtop.h"]`)
}

func TestEmitCommand_FilesAndScanConflict(t *testing.T) {
	mdir, manifest := setupTestEnv(t)

	_, _, err := execute(t, "emit", "--mdir", mdir, "--files", manifest, "--scan")
	require.Error(t, err)
}

func TestEmitCommand_ConfigFile(t *testing.T) {
	mdir, manifest := setupTestEnv(t)
	cfg := filepath.Join(t.TempDir(), "snapshot.yaml")
	content := "dpi: true\ncoverage: true\nprefix: Vcore\nmdir: " + mdir + "\n"
	require.NoError(t, os.WriteFile(cfg, []byte(content), 0644))

	_, _, err := execute(t, "emit", "--config", cfg, "--files", manifest)
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(mdir, "vl_build.json"))
	require.NoError(t, err)
	doc := string(data)
	assert.Contains(t, doc, `"features": ["dpi", "cov"]`)
	assert.Contains(t, doc, `"prefix": "Vcore"`)
	assert.Contains(t, doc, `"coverage": 1`)
}

func TestVerifyCommand(t *testing.T) {
	mdir, manifest := setupTestEnv(t)

	out, _, err := execute(t, "verify", "--mdir", mdir, "--files", manifest)
	require.ErrorIs(t, err, engine.ErrNotFound)
	assert.Contains(t, out, "✗ Build plan not found")
	assert.Contains(t, out, filepath.Join(mdir, "vl_build.json"))

	_, _, err = execute(t, "emit", "--mdir", mdir, "--files", manifest)
	require.NoError(t, err)

	out, _, err = execute(t, "verify", "--mdir", mdir, "--files", manifest)
	require.NoError(t, err)
	assert.Contains(t, out, "up to date")

	out, _, err = execute(t, "verify", "--mdir", mdir, "--files", manifest, "--timing")
	require.ErrorIs(t, err, engine.ErrDrift)
	assert.Contains(t, out, "out of date")
}

func TestVerifyCommand_JSONOutput(t *testing.T) {
	mdir, manifest := setupTestEnv(t)

	_, _, err := execute(t, "emit", "--mdir", mdir, "--files", manifest)
	require.NoError(t, err)

	out, _, err := execute(t, "verify", "--json", "--mdir", mdir, "--files", manifest)
	require.NoError(t, err)

	var result engine.VerifyResult
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.True(t, result.UpToDate)
}

func TestScanCommand(t *testing.T) {
	mdir, _ := setupTestEnv(t)
	for _, name := range []string{"Vtop.h", "Vtop.cpp", "Vtop.mk"} {
		require.NoError(t, os.WriteFile(filepath.Join(mdir, name), nil, 0644))
	}

	out, _, err := execute(t, "scan", mdir)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "files:"))
	assert.Contains(t, out, "kind: cfile")
	assert.Contains(t, out, "kind: other")

	out, _, err = execute(t, "scan", "--json", "--mdir", mdir)
	require.NoError(t, err)

	var manifest struct {
		Files []struct {
			Name   string `json:"name"`
			Kind   string `json:"kind"`
			Source bool   `json:"source"`
		} `json:"files"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &manifest))
	require.Len(t, manifest.Files, 3)
	assert.Equal(t, filepath.Join(mdir, "Vtop.cpp"), manifest.Files[0].Name)
	assert.True(t, manifest.Files[0].Source)
	assert.Equal(t, "other", manifest.Files[2].Kind)
}
