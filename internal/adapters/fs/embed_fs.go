package fs

import (
	iofs "io/fs"
	"strings"
)

// EmbedFileSystem serves files out of an embedded tree. Writes always fail.
type EmbedFileSystem struct {
	fs iofs.FS
}

func NewEmbedFileSystem(fsys iofs.FS) *EmbedFileSystem {
	return &EmbedFileSystem{fs: fsys}
}

func (fs *EmbedFileSystem) ReadFile(path string) ([]byte, error) {
	return iofs.ReadFile(fs.fs, clean(path))
}

func (fs *EmbedFileSystem) ReadDir(path string) ([]iofs.DirEntry, error) {
	return iofs.ReadDir(fs.fs, clean(path))
}

func (fs *EmbedFileSystem) FileExists(path string) bool {
	info, err := iofs.Stat(fs.fs, clean(path))
	return err == nil && !info.IsDir()
}

// Files lists every regular file, slash separated and in lexical order.
func (fs *EmbedFileSystem) Files() ([]string, error) {
	var files []string
	err := iofs.WalkDir(fs.fs, ".", func(path string, d iofs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			files = append(files, path)
		}
		return nil
	})
	return files, err
}

func (fs *EmbedFileSystem) WriteFile(path string, data []byte, perm iofs.FileMode) error {
	return ErrReadOnly
}

func (fs *EmbedFileSystem) MkdirAll(path string, perm iofs.FileMode) error {
	return ErrReadOnly
}

func (fs *EmbedFileSystem) RemoveAll(path string) error {
	return ErrReadOnly
}

func clean(path string) string {
	path = strings.TrimPrefix(path, "/")
	if path == "" {
		return "."
	}
	return path
}
