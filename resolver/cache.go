/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package resolver

import (
	"fmt"
	"path/filepath"

	"bennypowers.dev/nativ/manifest"
)

// dirInfo associates a directory with its nearest enclosing manifest file.
// An empty manifestPath is a cached negative result: the upward walk
// reached the root without finding one.
type dirInfo struct {
	manifestPath string
}

// findManifest locates the nearest enclosing manifest for start, walking
// upward toward the filesystem root. Every directory visited during the
// walk is associated with the outcome, so later lookups anywhere under the
// same package root skip the walk entirely. Returns nil when no manifest
// encloses start.
func (r *Resolver) findManifest(start string) (*manifest.Manifest, error) {
	var visited []string
	found := ""

	dir := filepath.Clean(start)
	for {
		if info, ok := r.dirCache[dir]; ok {
			found = info.manifestPath
			break
		}
		visited = append(visited, dir)

		path := filepath.Join(dir, manifest.FileName)
		if r.isFile(path) {
			found = path
			break
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	for _, d := range visited {
		r.dirCache[d] = dirInfo{manifestPath: found}
	}

	if found == "" {
		return nil, nil
	}
	return r.loadManifest(found)
}

// packageManifest returns the manifest owned by exactly dir, or nil when
// dir itself has none. Unlike findManifest it never walks upward.
func (r *Resolver) packageManifest(dir string) (*manifest.Manifest, error) {
	path := filepath.Join(dir, manifest.FileName)
	if info, ok := r.dirCache[dir]; ok {
		if info.manifestPath != path {
			return nil, nil
		}
		return r.loadManifest(path)
	}
	if !r.isFile(path) {
		return nil, nil
	}
	r.dirCache[dir] = dirInfo{manifestPath: path}
	return r.loadManifest(path)
}

// loadManifest parses and memoizes manifest content by file path. Entries
// are never evicted; they stay valid for the resolver's lifetime.
func (r *Resolver) loadManifest(path string) (*manifest.Manifest, error) {
	if mf, ok := r.manifestCache[path]; ok {
		return mf, nil
	}
	mf, err := manifest.ParseFile(r.fs, path)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	r.manifestCache[path] = mf
	return mf, nil
}
