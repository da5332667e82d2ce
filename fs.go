package main

import (
	"os"
	"path/filepath"

	"github.com/spf13/afero"
)

// ClistFS is an Afero FS with added functionality
// to replicate OS filesystems in testing
type ClistFS interface {
	afero.Fs
	Abs(string) (string, error)
	HomeDir() (string, error)
}

type clistOSFS struct {
	afero.Fs
}

func newClistOSFS() ClistFS {
	return &clistOSFS{
		afero.NewOsFs(),
	}
}

func (g *clistOSFS) Abs(path string) (string, error) {
	return filepath.Abs(path)
}

func (g *clistOSFS) HomeDir() (string, error) {
	return os.UserHomeDir()
}

type clistMemFS struct {
	afero.Fs
}

// NewClistMemFS returns an in-memory ClistFS whose working directory and
// home directory are both "/"
func NewClistMemFS() ClistFS {
	return &clistMemFS{
		afero.NewMemMapFs(),
	}
}

func (g *clistMemFS) Abs(path string) (string, error) {
	if filepath.IsAbs(path) {
		return filepath.Clean(path), nil
	}
	return filepath.Join("/", path), nil
}

func (g *clistMemFS) HomeDir() (string, error) {
	return "/", nil
}
