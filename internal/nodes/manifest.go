package nodes

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/danieljhkim/vlbuild/internal/fsops"
)

// Manifest is the on-disk form of a descriptor list.
//
//	files:
//	  - name: obj_dir/Vtop.cpp
//	    kind: cfile
//	    source: true
//	  - name: obj_dir/Vtop.mk
//	    kind: other
type Manifest struct {
	Files []ManifestEntry `yaml:"files" json:"files"`
}

// ManifestEntry is one descriptor in a Manifest.
type ManifestEntry struct {
	Name   string `yaml:"name" json:"name"`
	Kind   string `yaml:"kind" json:"kind"`
	Source bool   `yaml:"source" json:"source"`
}

// ParseManifest decodes a YAML manifest into a List, preserving entry order.
func ParseManifest(data []byte) (List, error) {
	var m Manifest
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&m); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidManifest, err)
	}

	list := make(List, 0, len(m.Files))
	for i, e := range m.Files {
		if strings.TrimSpace(e.Name) == "" {
			return nil, fmt.Errorf("%w: entry %d has no name", ErrInvalidManifest, i)
		}
		switch strings.ToLower(e.Kind) {
		case "cfile", "c":
			list.Add(NewCFile(e.Name, e.Source))
		case "other", "":
			list.Add(NewOtherFile(e.Name))
		default:
			return nil, fmt.Errorf("%w: entry %d (%s) has unknown kind %q", ErrInvalidManifest, i, e.Name, e.Kind)
		}
	}
	return list, nil
}

// ToManifest converts a List to its manifest form.
func ToManifest(list List) *Manifest {
	m := &Manifest{Files: make([]ManifestEntry, 0, len(list))}
	for _, f := range list {
		e := ManifestEntry{Name: f.Name(), Kind: f.Kind().String()}
		if sf, ok := f.(SourceFile); ok {
			e.Source = sf.IsSource()
		}
		m.Files = append(m.Files, e)
	}
	return m
}

// MarshalManifest encodes a List as a YAML manifest.
func MarshalManifest(list List) ([]byte, error) {
	return yaml.Marshal(ToManifest(list))
}

// LoadManifest reads and parses the manifest at path.
func LoadManifest(fs fsops.FS, path string) (List, error) {
	data, err := fs.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest: %w", err)
	}
	list, err := ParseManifest(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return list, nil
}
