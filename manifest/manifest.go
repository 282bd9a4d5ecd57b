/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package manifest parses package manifests (package.json files).
package manifest

import (
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/tidwall/jsonc"

	nativfs "bennypowers.dev/nativ/fs"
)

// FileName is the manifest file name probed in each package directory.
const FileName = "package.json"

// Manifest is a parsed package manifest. Instances are immutable once
// returned from Parse and safe to share between resolution branches.
type Manifest struct {
	// Path is the absolute path of the manifest file.
	Path string

	// Dir is the package root directory containing the manifest.
	Dir string

	// Name is the package name.
	Name string

	// Type is the package module type ("module", "commonjs").
	Type string

	// Exports is the conditional-exports tree, nil when absent.
	// Key order is preserved because condition objects are order-sensitive.
	Exports *ExportsNode

	// fields holds all top-level string-valued fields, so arbitrary
	// main-field orderings (main, browser, module, ...) can be consulted.
	fields map[string]string
}

// Parse parses manifest data. Comments and trailing commas are tolerated,
// matching what package managers accept in the wild.
func Parse(data []byte, path string) (*Manifest, error) {
	clean := jsonc.ToJSON(data)

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(clean, &raw); err != nil {
		return nil, fmt.Errorf("invalid manifest: %w", err)
	}

	m := &Manifest{
		Path:   path,
		Dir:    filepath.Dir(path),
		fields: make(map[string]string, len(raw)),
	}

	for key, value := range raw {
		var s string
		if err := json.Unmarshal(value, &s); err == nil {
			m.fields[key] = s
		}
	}
	m.Name = m.fields["name"]
	m.Type = m.fields["type"]

	if exports, ok := raw["exports"]; ok {
		node, err := parseExports(exports)
		if err != nil {
			return nil, fmt.Errorf("invalid exports field: %w", err)
		}
		m.Exports = node
	}

	return m, nil
}

// ParseFile reads and parses the manifest at path.
func ParseFile(fsys nativfs.FileSystem, path string) (*Manifest, error) {
	data, err := fsys.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest %s: %w", path, err)
	}
	return Parse(data, path)
}

// Field returns the named top-level string field, or "" when absent or
// not a string.
func (m *Manifest) Field(name string) string {
	return m.fields[name]
}

// MainField returns the value of the first non-empty field in the given
// priority order (e.g. ["browser", "main"]).
func (m *Manifest) MainField(order []string) string {
	for _, name := range order {
		if v := m.fields[name]; v != "" {
			return v
		}
	}
	return ""
}
