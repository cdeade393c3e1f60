package nodes

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/go-enry/go-enry/v2"

	"github.com/danieljhkim/vlbuild/internal/fsops"
)

// headerExts are C/C++ extensions that are included, never compiled.
var headerExts = map[string]bool{
	".h":   true,
	".hh":  true,
	".hpp": true,
	".hxx": true,
	".h++": true,
	".inl": true,
	".ipp": true,
	".tcc": true,
	".tpp": true,
}

// Classify builds the descriptor for a generated file from its name alone.
// Header extensions always give a non-source CFile. Otherwise the file is a
// source CFile only when its extension maps unambiguously to C or C++;
// everything else, including ambiguous extensions such as .inc, is an
// OtherFile.
func Classify(name string) File {
	if headerExts[strings.ToLower(filepath.Ext(name))] {
		return NewCFile(name, false)
	}
	lang, safe := enry.GetLanguageByExtension(name)
	if safe && (lang == "C" || lang == "C++") {
		return NewCFile(name, true)
	}
	return NewOtherFile(name)
}

// Scan classifies the regular files directly inside dir. Entries are
// visited in lexical order so repeated scans yield the same List.
func Scan(fs fsops.FS, dir string) (List, error) {
	entries, err := fs.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to scan %s: %w", dir, err)
	}

	var list List
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		list.Add(Classify(filepath.Join(dir, entry.Name())))
	}
	return list, nil
}
