package nodes

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNonDir(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Vtop.cpp", "Vtop.cpp"},
		{"obj_dir/Vtop.cpp", "Vtop.cpp"},
		{"/abs/path/to/Vtop__Syms.h", "Vtop__Syms.h"},
		{`C:\build\obj_dir\Vtop.cpp`, "Vtop.cpp"},
		{"dir/", ""},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, NonDir(tt.in))
		})
	}
}

func TestList_Add(t *testing.T) {
	var list List
	list.Add(NewCFile("a.cpp", true))
	list.Add(NewOtherFile("a.mk"))
	list.Add(NewCFile("a.cpp", true))

	assert.Len(t, list, 3, "duplicates are kept")
	assert.Equal(t, CFileKind, list[0].Kind())
	assert.Equal(t, OtherFileKind, list[1].Kind())
	assert.Equal(t, "a.cpp", list[2].Name())
}

func TestCFile_IsSource(t *testing.T) {
	assert.True(t, NewCFile("Vtop.cpp", true).IsSource())
	assert.False(t, NewCFile("Vtop.h", false).IsSource())
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "cfile", CFileKind.String())
	assert.Equal(t, "other", OtherFileKind.String())
}
