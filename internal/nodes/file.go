// Package nodes models the generated-file descriptors the compiler registers
// while emitting a model.
//
// Every descriptor implements File. C/C++ outputs are *CFile values, which
// additionally record whether the file is a compiled source or a header.
// Descriptors are kept in a List in registration order; the list is never
// deduplicated or reordered.
package nodes

import "strings"

// Kind identifies the category of a generated file.
type Kind int

const (
	// OtherFileKind is any generated file that is not C/C++ (makefiles, json, ...).
	OtherFileKind Kind = iota

	// CFileKind is a generated C/C++ source or header.
	CFileKind
)

// String returns the manifest spelling of the kind.
func (k Kind) String() string {
	switch k {
	case CFileKind:
		return "cfile"
	default:
		return "other"
	}
}

// File is a generated-file descriptor.
type File interface {
	// Name is the file path as registered by the compiler.
	Name() string

	// Kind is the file category.
	Kind() Kind
}

// SourceFile is implemented by C/C++ descriptors that tell compiled sources
// apart from headers.
type SourceFile interface {
	File
	IsSource() bool
}

// CFile is a generated C/C++ file.
type CFile struct {
	name   string
	source bool
}

// NewCFile creates a C/C++ file descriptor. source is false for headers.
func NewCFile(name string, source bool) *CFile {
	return &CFile{name: name, source: source}
}

func (f *CFile) Name() string { return f.name }
func (f *CFile) Kind() Kind   { return CFileKind }

// IsSource reports whether the file is compiled (true) or a header (false).
func (f *CFile) IsSource() bool { return f.source }

// OtherFile is a generated file that takes no part in C/C++ compilation.
type OtherFile struct {
	name string
}

// NewOtherFile creates a non-C/C++ file descriptor.
func NewOtherFile(name string) *OtherFile {
	return &OtherFile{name: name}
}

func (f *OtherFile) Name() string { return f.name }
func (f *OtherFile) Kind() Kind   { return OtherFileKind }

// List is an ordered sequence of descriptors in registration order.
type List []File

// Add appends a descriptor.
func (l *List) Add(f File) {
	*l = append(*l, f)
}

// NonDir strips any directory component from name, keeping the text after
// the last path separator. Both '/' and '\' are treated as separators.
func NonDir(name string) string {
	if i := strings.LastIndexAny(name, `/\`); i >= 0 {
		return name[i+1:]
	}
	return name
}
