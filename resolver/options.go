/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package resolver

// Options is the immutable resolver configuration.
type Options struct {
	// Aliases is the ordered alias rule table, applied before any
	// filesystem access.
	Aliases []AliasRule

	// Extensions are tried in order when probing files ("./foo" probes
	// "foo", then "foo.js", "foo.json", ...).
	Extensions []string

	// MainFields are the manifest entry-point fields consulted in order
	// when resolving a package root (e.g. browser before main).
	MainFields []string

	// ConditionNames select among conditional-exports targets, in
	// priority order.
	ConditionNames []string

	// ModuleDirectories are the directory names searched upward for
	// installed packages.
	ModuleDirectories []string

	// SymlinksResolve resolves symlinked results to their real path.
	SymlinksResolve bool
}

// DefaultOptions returns the options a Node-style loader assumes.
func DefaultOptions() Options {
	return Options{
		Extensions:        []string{".js", ".json", ".node"},
		MainFields:        []string{"browser", "main"},
		ConditionNames:    []string{"import", "require"},
		ModuleDirectories: []string{"node_modules"},
		SymlinksResolve:   true,
	}
}
