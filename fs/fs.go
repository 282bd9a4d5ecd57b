/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package fs provides filesystem abstractions for nativ.
package fs

import (
	"io/fs"
	"os"
	"path/filepath"
)

// FileSystem provides an abstraction over the filesystem operations the
// resolver performs: stat, read-file, read-dir, and symlink resolution.
type FileSystem interface {
	// ReadFile reads the entire contents of a file.
	ReadFile(name string) ([]byte, error)

	// ReadDir reads the named directory and returns its entries.
	ReadDir(name string) ([]fs.DirEntry, error)

	// Stat returns file information for the named file.
	Stat(name string) (fs.FileInfo, error)

	// Exists returns true if the path exists.
	Exists(path string) bool

	// Realpath resolves symlinks and returns the canonical path.
	Realpath(name string) (string, error)

	// fs.FS compatibility - allows use with fs.WalkDir
	Open(name string) (fs.File, error)
}

// OSFileSystem implements FileSystem using the standard os package.
type OSFileSystem struct{}

// NewOSFileSystem creates a new filesystem that uses the standard os package.
func NewOSFileSystem() *OSFileSystem {
	return &OSFileSystem{}
}

// ReadFile reads the entire contents of a file.
func (f *OSFileSystem) ReadFile(name string) ([]byte, error) {
	return os.ReadFile(name)
}

// ReadDir reads the named directory and returns its entries.
func (f *OSFileSystem) ReadDir(name string) ([]fs.DirEntry, error) {
	return os.ReadDir(name)
}

// Stat returns file information for the named file.
func (f *OSFileSystem) Stat(name string) (fs.FileInfo, error) {
	return os.Stat(name)
}

// Exists returns true if the path exists.
func (f *OSFileSystem) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// Realpath resolves symlinks via filepath.EvalSymlinks.
func (f *OSFileSystem) Realpath(name string) (string, error) {
	return filepath.EvalSymlinks(name)
}

// Open opens the named file for reading.
func (f *OSFileSystem) Open(name string) (fs.File, error) {
	return os.Open(name)
}
