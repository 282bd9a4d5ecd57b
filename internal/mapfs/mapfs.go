/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package mapfs provides an in-memory filesystem implementation for testing.
package mapfs

import (
	"io/fs"
	"path"
	"strings"
	"sync"
	"testing/fstest"
	"time"
)

// MapFileSystem implements FileSystem using an in-memory fstest.MapFS.
// This is useful for testing without touching the real filesystem.
// Symlinks are emulated with a path-to-target table consulted by Realpath.
type MapFileSystem struct {
	mu       sync.RWMutex
	mapFS    fstest.MapFS
	symlinks map[string]string
	modTime  time.Time
}

// New creates a new in-memory filesystem for testing.
func New() *MapFileSystem {
	return &MapFileSystem{
		mapFS:    make(fstest.MapFS),
		symlinks: make(map[string]string),
		modTime:  time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

// AddFile adds a file to the in-memory filesystem.
func (mfs *MapFileSystem) AddFile(p string, content string, mode fs.FileMode) {
	mfs.mu.Lock()
	defer mfs.mu.Unlock()

	p = mfs.cleanPath(p)
	mfs.mapFS[p] = &fstest.MapFile{
		Data:    []byte(content),
		Mode:    mode,
		ModTime: mfs.modTime,
	}
}

// AddDir adds a directory to the in-memory filesystem.
func (mfs *MapFileSystem) AddDir(p string, mode fs.FileMode) {
	mfs.mu.Lock()
	defer mfs.mu.Unlock()

	p = mfs.cleanPath(p)
	keepFile := p + "/.keep"
	mfs.mapFS[keepFile] = &fstest.MapFile{
		Data:    []byte(""),
		Mode:    mode.Perm(),
		ModTime: mfs.modTime,
	}
}

// AddSymlink records a symlink from link to target. The link resolves to
// target for Stat, ReadFile, and Exists, and Realpath reports the target.
func (mfs *MapFileSystem) AddSymlink(link, target string) {
	mfs.mu.Lock()
	defer mfs.mu.Unlock()

	mfs.symlinks["/"+mfs.cleanPath(link)] = "/" + mfs.cleanPath(target)
}

// ReadFile implements FileSystem.
func (mfs *MapFileSystem) ReadFile(name string) ([]byte, error) {
	mfs.mu.RLock()
	defer mfs.mu.RUnlock()

	return fs.ReadFile(mfs.mapFS, mfs.resolveLocked(name))
}

// ReadDir implements FileSystem.
func (mfs *MapFileSystem) ReadDir(name string) ([]fs.DirEntry, error) {
	mfs.mu.RLock()
	defer mfs.mu.RUnlock()

	return fs.ReadDir(mfs.mapFS, mfs.resolveLocked(name))
}

// Stat implements FileSystem.
func (mfs *MapFileSystem) Stat(name string) (fs.FileInfo, error) {
	mfs.mu.RLock()
	defer mfs.mu.RUnlock()

	return fs.Stat(mfs.mapFS, mfs.resolveLocked(name))
}

// Exists implements FileSystem.
func (mfs *MapFileSystem) Exists(p string) bool {
	mfs.mu.RLock()
	defer mfs.mu.RUnlock()

	p = mfs.resolveLocked(p)

	if _, exists := mfs.mapFS[p]; exists {
		return true
	}

	prefix := p + "/"
	for filePath := range mfs.mapFS {
		if strings.HasPrefix(filePath, prefix) {
			return true
		}
	}

	return false
}

// Realpath implements FileSystem. It follows the emulated symlink table;
// paths without a symlink entry are returned cleaned.
func (mfs *MapFileSystem) Realpath(name string) (string, error) {
	mfs.mu.RLock()
	defer mfs.mu.RUnlock()

	abs := "/" + mfs.cleanPath(name)
	if target, ok := mfs.symlinks[abs]; ok {
		return target, nil
	}
	return abs, nil
}

// Open implements FileSystem.
func (mfs *MapFileSystem) Open(name string) (fs.File, error) {
	mfs.mu.RLock()
	defer mfs.mu.RUnlock()

	return mfs.mapFS.Open(mfs.resolveLocked(name))
}

// resolveLocked maps a path through the symlink table and strips the
// leading slash for MapFS key lookup. Callers must hold mu.
func (mfs *MapFileSystem) resolveLocked(p string) string {
	abs := "/" + mfs.cleanPath(p)
	if target, ok := mfs.symlinks[abs]; ok {
		abs = target
	}
	key := strings.TrimPrefix(abs, "/")
	if key == "" {
		key = "." // fs.FS root
	}
	return key
}

func (mfs *MapFileSystem) cleanPath(p string) string {
	cleaned := path.Clean(strings.ReplaceAll(p, "\\", "/"))
	if !path.IsAbs(cleaned) {
		cleaned = "/" + cleaned
	}
	return strings.TrimPrefix(cleaned, "/")
}
