package vos

import "github.com/spf13/afero"

// VFS implements a virtual filesystem.
type VFS = afero.Fs

// NewHostFs exposes the real filesystem without allowing writes.
func NewHostFs() VFS {
	return afero.NewReadOnlyFs(afero.NewOsFs())
}

// NewMemFs creates an empty in-memory filesystem.
func NewMemFs() VFS {
	return afero.NewMemMapFs()
}
