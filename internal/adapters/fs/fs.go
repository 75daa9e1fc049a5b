package fs

import (
	"errors"
	iofs "io/fs"
)

var ErrReadOnly = errors.New("filesystem is read-only")

type FileSystem interface {
	ReadFile(path string) ([]byte, error)
	ReadDir(path string) ([]iofs.DirEntry, error)
	FileExists(path string) bool
	WriteFile(path string, data []byte, perm iofs.FileMode) error
	MkdirAll(path string, perm iofs.FileMode) error
	RemoveAll(path string) error
}
