package engine

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
)

// memFS is an in-memory fsops.FS for engine tests.
type memFS struct {
	files map[string][]byte
	dirs  map[string]bool

	// failures injected into the next Create / stream
	createErr error
	writeErr  error
	closeErr  error

	opened int
	closed int
}

func newMemFS(dirs ...string) *memFS {
	fs := &memFS{
		files: make(map[string][]byte),
		dirs:  make(map[string]bool),
	}
	for _, d := range dirs {
		fs.dirs[d] = true
	}
	return fs
}

func (fs *memFS) Create(path string) (io.WriteCloser, error) {
	if fs.createErr != nil {
		return nil, fs.createErr
	}
	if !fs.dirs[filepath.Dir(path)] {
		return nil, &os.PathError{Op: "open", Path: path, Err: os.ErrNotExist}
	}
	fs.opened++
	fs.files[path] = nil
	return &memWriter{fs: fs, path: path}, nil
}

func (fs *memFS) ReadFile(path string) ([]byte, error) {
	data, ok := fs.files[path]
	if !ok {
		return nil, os.ErrNotExist
	}
	return data, nil
}

func (fs *memFS) Exists(path string) (bool, error) {
	_, hasFile := fs.files[path]
	return hasFile || fs.dirs[path], nil
}

func (fs *memFS) ReadDir(path string) ([]os.DirEntry, error) {
	return nil, errors.New("memFS: ReadDir not supported")
}

type memWriter struct {
	fs   *memFS
	path string
	buf  bytes.Buffer
}

func (w *memWriter) Write(p []byte) (int, error) {
	if w.fs.writeErr != nil {
		half := len(p) / 2
		w.buf.Write(p[:half])
		w.fs.files[w.path] = append([]byte(nil), w.buf.Bytes()...)
		return half, w.fs.writeErr
	}
	n, _ := w.buf.Write(p)
	w.fs.files[w.path] = append([]byte(nil), w.buf.Bytes()...)
	return n, nil
}

func (w *memWriter) Close() error {
	w.fs.closed++
	return w.fs.closeErr
}
