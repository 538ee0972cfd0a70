// Package filesystem routes every disk access through a swappable afero backend.
package filesystem

import (
	"io"
	"os"

	"github.com/spf13/afero"
)

var active = afero.Afero{Fs: afero.NewOsFs()}

// API returns the backend all packages read and write through.
func API() afero.Afero {
	return active
}

// SetOsFs points the backend at the real filesystem.
func SetOsFs() {
	active = afero.Afero{Fs: afero.NewOsFs()}
}

// SetMemMapFs points the backend at a volatile in-memory filesystem.
// Tests use it to stay off the disk.
func SetMemMapFs() {
	active = afero.Afero{Fs: afero.NewMemMapFs()}
}

// GacheFs adapts the active backend to the gache.FileSystem interface so
// the persistent stores honor the backend swap too.
type GacheFs struct{}

func (GacheFs) OpenFile(name string, flag int, perm os.FileMode) (io.ReadWriteCloser, error) {
	return API().OpenFile(name, flag, perm)
}

func (GacheFs) MkdirAll(path string, perm os.FileMode) error {
	return API().MkdirAll(path, perm)
}
