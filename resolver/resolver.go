/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package resolver locates the filesystem path a JS/TS host loader would
// resolve an import specifier to.
//
//	fsys := fs.NewOSFileSystem()
//	r := resolver.New(fsys, resolver.DefaultOptions()).WithBaseDir("/project/src")
//
//	r.Resolve("foo")
//	// -> /project/node_modules/foo/index.js
//
//	r.Resolve("./foo")
//	// -> /project/src/foo.js
package resolver

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	nativfs "bennypowers.dev/nativ/fs"
	"bennypowers.dev/nativ/internal/logger"
	"bennypowers.dev/nativ/manifest"
)

// Resolver resolves import specifiers against a filesystem. It owns two
// lazily populated caches: directory-to-manifest associations and parsed
// manifest content. Entries are never evicted. The caches are not
// synchronized; callers needing concurrent resolution must serialize
// access or give each worker its own Resolver.
type Resolver struct {
	fs      nativfs.FileSystem
	options Options
	baseDir string

	dirCache      map[string]dirInfo
	manifestCache map[string]*manifest.Manifest
}

// Resolution is the outcome of a successful Resolve call.
type Resolution struct {
	// Path is the resolved absolute path with the original query and
	// fragment re-attached. Built-in specifiers are returned verbatim.
	Path string

	// Ignored reports that an alias rule intentionally blocked the
	// specifier: successfully resolved to nothing, not an error.
	Ignored bool
}

// New creates a resolver over the given filesystem. A base directory must
// be set with WithBaseDir before calling Resolve.
func New(fsys nativfs.FileSystem, opts Options) *Resolver {
	return &Resolver{
		fs:            fsys,
		options:       opts,
		dirCache:      make(map[string]dirInfo),
		manifestCache: make(map[string]*manifest.Manifest),
	}
}

// WithBaseDir sets the directory relative specifiers and module walks
// start from, and returns the resolver.
func (r *Resolver) WithBaseDir(dir string) *Resolver {
	r.baseDir = dir
	return r
}

// Resolve resolves a specifier from the configured base directory.
// Calling Resolve before WithBaseDir is a contract violation and panics.
func (r *Resolver) Resolve(spec string) (*Resolution, error) {
	if r.baseDir == "" {
		panic("resolver: base dir is not set")
	}
	return r.resolve(r.baseDir, spec)
}

// ResolveFrom resolves a specifier from an explicit base directory,
// sharing the resolver's caches.
func (r *Resolver) ResolveFrom(baseDir, spec string) (*Resolution, error) {
	if baseDir == "" {
		panic("resolver: base dir is not set")
	}
	return r.resolve(baseDir, spec)
}

// state pairs a request with the directory the search is rooted at. Each
// step that advances the search derives a new state by functional update,
// so fallback branches never share mutable data.
type state struct {
	dir string
	req Request
}

// path is the computed filesystem path: dir joined with the target, the
// dir alone when the target is empty, or the target itself when absolute.
func (s state) path() string {
	switch {
	case s.req.Target == "":
		return s.dir
	case filepath.IsAbs(s.req.Target) || winAbsolutePattern.MatchString(s.req.Target):
		return filepath.Clean(s.req.Target)
	default:
		return filepath.Join(s.dir, s.req.Target)
	}
}

func (s state) withDir(dir string) state {
	s.dir = dir
	return s
}

func (r *Resolver) resolve(baseDir, spec string) (*Resolution, error) {
	req := ParseRequest(spec)

	target, blocked := applyAliases(req.Target, r.options.Aliases)
	if blocked {
		logger.Debug("specifier %q blocked by alias rule", spec)
		return &Resolution{Ignored: true}, nil
	}
	req = req.WithTarget(target)

	kind := Classify(req.Target)
	st := state{dir: baseDir, req: req}
	switch kind {
	case KindEmpty:
		return nil, fmt.Errorf("%w: cannot resolve %q in %s", ErrEmptySpecifier, spec, baseDir)
	case KindBuiltIn:
		return &Resolution{Path: req.Target}, nil
	case KindAbsolutePosix, KindAbsoluteWin:
		st = st.withDir(rootDir)
	}

	mf, err := r.findManifest(st.path())
	if err != nil {
		return nil, err
	}
	st, err = r.realTarget(st, kind, mf)
	if err != nil {
		return nil, err
	}

	var resolved string
	switch Classify(st.req.Target) {
	case KindAbsolutePosix, KindAbsoluteWin, KindRelative:
		resolved, err = r.resolveAsFile(st)
		if err != nil {
			resolved, err = r.resolveAsDir(st)
		}
	default:
		resolved, err = r.resolveAsModules(st)
	}
	if err != nil {
		return nil, err
	}

	return &Resolution{Path: finalize(resolved, req.Query, req.Fragment)}, nil
}

// rootDir is the base for absolute targets. state.path treats absolute
// targets as replacing the directory, mirroring path-join semantics in
// host loaders.
const rootDir = "/"

// realTarget applies manifest exports or main-field mapping to compute the
// filesystem-facing target before the terminal strategies run.
func (r *Resolver) realTarget(st state, kind PathKind, mf *manifest.Manifest) (state, error) {
	if mf == nil {
		return st, nil
	}

	if kind == KindModule {
		pkg, sub := splitPackageSpecifier(st.req.Target)
		if pkg != mf.Name {
			return st, nil
		}
		// Self-referential import of the enclosing package.
		if mf.Exports != nil {
			target, ok, err := exportsTarget(mf.Exports, sub, r.options.ConditionNames)
			if err != nil {
				return st, fmt.Errorf("package %q subpath %q: %w", pkg, sub, err)
			}
			if ok {
				return state{dir: mf.Dir, req: st.req.WithTarget(target)}, nil
			}
		}
		if sub == "." {
			if entry := mf.MainField(r.options.MainFields); entry != "" {
				return state{dir: mf.Dir, req: st.req.WithTarget(entry)}, nil
			}
		}
		return st, nil
	}

	// A request for the package root maps to its entry point.
	if st.path() == mf.Dir {
		entry, err := r.entryTarget(mf)
		if err != nil {
			return st, err
		}
		if entry != "" {
			return state{dir: mf.Dir, req: st.req.WithTarget(entry)}, nil
		}
	}
	return st, nil
}

// entryTarget computes the entry file target for a package root: the
// exports entry for "." when one applies, otherwise the first configured
// main field.
func (r *Resolver) entryTarget(mf *manifest.Manifest) (string, error) {
	if mf.Exports != nil {
		target, ok, err := exportsTarget(mf.Exports, ".", r.options.ConditionNames)
		if err != nil {
			return "", fmt.Errorf("package %q: %w", mf.Name, err)
		}
		if ok {
			return target, nil
		}
	}
	return mf.MainField(r.options.MainFields), nil
}

// resolveAsFile probes the computed path, then the path with each
// configured extension appended, in order. The first regular file wins.
func (r *Resolver) resolveAsFile(st state) (string, error) {
	path := st.path()
	if r.isFile(path) {
		return r.maybeRealpath(path)
	}
	for _, ext := range r.options.Extensions {
		if withExt := path + ext; r.isFile(withExt) {
			return r.maybeRealpath(withExt)
		}
	}
	return "", fmt.Errorf("%w: no file at %s", ErrNotFound, path)
}

// resolveAsDir resolves the computed path as a directory: the directory's
// own manifest entry point first, then index file probing.
func (r *Resolver) resolveAsDir(st state) (string, error) {
	path := st.path()
	info, err := r.fs.Stat(path)
	if err != nil || !info.IsDir() {
		return "", fmt.Errorf("%w: %s is not a directory", ErrNotFound, path)
	}

	mf, err := r.packageManifest(path)
	if err != nil {
		return "", err
	}
	if mf != nil {
		entry, err := r.entryTarget(mf)
		if err != nil {
			return "", err
		}
		if entry != "" {
			entryState := state{dir: path, req: st.req.WithTarget(entry)}
			if resolved, err := r.resolveAsFile(entryState); err == nil {
				return resolved, nil
			}
			// Entry missing on disk: degrade to index probing.
		}
	}

	for _, ext := range r.options.Extensions {
		if index := filepath.Join(path, "index"+ext); r.isFile(index) {
			return r.maybeRealpath(index)
		}
	}
	return "", fmt.Errorf("%w: no entry point or index file in %s", ErrNotFound, path)
}

// resolveAsModules walks upward from the base directory, probing each
// configured module directory for the requested package. Terminates at the
// filesystem root.
func (r *Resolver) resolveAsModules(st state) (string, error) {
	pkg, sub := splitPackageSpecifier(st.req.Target)

	for dir := st.dir; ; {
		for _, moduleDir := range r.options.ModuleDirectories {
			base := filepath.Join(dir, moduleDir)
			if !r.isDir(base) {
				continue
			}
			resolved, err := r.resolveInModuleDir(base, st.req, pkg, sub)
			if err == nil {
				return resolved, nil
			}
			if errors.Is(err, ErrNotExported) {
				return "", err
			}
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return "", fmt.Errorf("%w: can't resolve %q from %s", ErrNotFound, st.req.Target, st.dir)
}

// resolveInModuleDir resolves a package specifier inside one module
// directory. The owning package's exports mapping is preferred; otherwise
// the specifier is treated as a relative file/dir request rooted there.
func (r *Resolver) resolveInModuleDir(base string, req Request, pkg, sub string) (string, error) {
	pkgDir := filepath.Join(base, pkg)

	mf, err := r.packageManifest(pkgDir)
	if err != nil {
		return "", err
	}
	if mf != nil && mf.Exports != nil {
		target, ok, err := exportsTarget(mf.Exports, sub, r.options.ConditionNames)
		if err != nil {
			return "", fmt.Errorf("package %q subpath %q: %w", pkg, sub, err)
		}
		if ok {
			mapped := state{dir: pkgDir, req: req.WithTarget(target)}
			if resolved, err := r.resolveAsFile(mapped); err == nil {
				return resolved, nil
			}
			return r.resolveAsDir(mapped)
		}
	}

	plain := state{dir: base, req: req}
	if resolved, err := r.resolveAsFile(plain); err == nil {
		return resolved, nil
	}
	return r.resolveAsDir(plain)
}

// splitPackageSpecifier splits a module target into the package name
// (scope-aware) and its "."-rooted subpath.
func splitPackageSpecifier(target string) (name, subpath string) {
	parts := strings.Split(target, "/")
	take := 1
	if strings.HasPrefix(target, "@") && len(parts) > 1 {
		take = 2
	}
	name = strings.Join(parts[:take], "/")
	if len(parts) == take {
		return name, "."
	}
	return name, "./" + strings.Join(parts[take:], "/")
}

// finalize normalizes the resolved path and re-attaches the original query
// and fragment.
func finalize(path, query, fragment string) string {
	return filepath.Clean(path) + query + fragment
}

func (r *Resolver) isFile(path string) bool {
	info, err := r.fs.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

func (r *Resolver) isDir(path string) bool {
	info, err := r.fs.Stat(path)
	return err == nil && info.IsDir()
}

// maybeRealpath resolves symlinks when the option is enabled. A path that
// cannot be canonicalized is reported as-is.
func (r *Resolver) maybeRealpath(path string) (string, error) {
	if !r.options.SymlinksResolve {
		return path, nil
	}
	real, err := r.fs.Realpath(path)
	if err != nil {
		return path, nil
	}
	return real, nil
}
