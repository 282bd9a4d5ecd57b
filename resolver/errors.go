/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package resolver

import "errors"

// Sentinel errors for resolution outcomes.
var (
	// ErrEmptySpecifier indicates an empty specifier was requested.
	ErrEmptySpecifier = errors.New("empty specifier")

	// ErrNotFound indicates no file, directory, or module satisfied the
	// request after exhausting all strategies.
	ErrNotFound = errors.New("module not found")

	// ErrNotExported indicates a subpath is explicitly excluded by the
	// package's conditional exports. Distinct from ErrNotFound so callers
	// can explain that the subpath is private to the package.
	ErrNotExported = errors.New("subpath not exported by package")
)
