/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package resolver

import (
	"strings"

	"bennypowers.dev/nativ/manifest"
)

// exportsTarget maps a requested subpath ("." or "./sub") through a
// conditional-exports tree. ok is false when no entry covers the subpath,
// in which case the caller falls back to the legacy main fields or the
// plain package path. A matched entry whose every applicable condition is
// the "not exported" marker yields ErrNotExported, with no fallback.
func exportsTarget(ex *manifest.ExportsNode, subpath string, conditions []string) (target string, ok bool, err error) {
	if ex.Kind == manifest.ExportsObject && ex.IsSubpathMap() {
		node, remainder, found := matchSubpath(ex, subpath)
		if !found {
			return "", false, nil
		}
		target, err := conditionTarget(node, conditions)
		if err != nil {
			return "", false, err
		}
		if remainder != "" {
			target = strings.ReplaceAll(target, "*", remainder)
		}
		return target, true, nil
	}

	// A bare string, array, or condition object is shorthand for the
	// package root entry.
	if subpath != "." {
		return "", false, nil
	}
	target, err = conditionTarget(ex, conditions)
	if err != nil {
		return "", false, err
	}
	return target, true, nil
}

// matchSubpath finds the entry for subpath: an exact key first, otherwise
// the wildcard key with the longest matching prefix. remainder is the text
// captured by "*", substituted into the selected target.
func matchSubpath(ex *manifest.ExportsNode, subpath string) (node *manifest.ExportsNode, remainder string, found bool) {
	if node, ok := ex.Get(subpath); ok {
		return node, "", true
	}

	bestLen := -1
	for _, key := range ex.Keys {
		star := strings.IndexByte(key, '*')
		if star < 0 {
			continue
		}
		prefix, suffix := key[:star], key[star+1:]
		if len(subpath) < len(prefix)+len(suffix) {
			continue
		}
		if !strings.HasPrefix(subpath, prefix) || !strings.HasSuffix(subpath, suffix) {
			continue
		}
		if len(prefix) > bestLen {
			bestLen = len(prefix)
			remainder = subpath[len(prefix) : len(subpath)-len(suffix)]
			node, _ = ex.Get(key)
			found = true
		}
	}
	return node, remainder, found
}

// conditionTarget resolves a matched entry to a concrete target. Condition
// objects are walked in the resolver's configured priority order, then
// "default"; the first condition that does not resolve to the "not
// exported" marker wins. Arrays are fallback lists.
func conditionTarget(node *manifest.ExportsNode, conditions []string) (string, error) {
	switch node.Kind {
	case manifest.ExportsString:
		return node.Value, nil

	case manifest.ExportsNull:
		return "", ErrNotExported

	case manifest.ExportsArray:
		for _, item := range node.Items {
			if target, err := conditionTarget(item, conditions); err == nil {
				return target, nil
			}
		}
		return "", ErrNotExported

	case manifest.ExportsObject:
		for _, cond := range conditions {
			if child, ok := node.Get(cond); ok {
				if target, err := conditionTarget(child, conditions); err == nil {
					return target, nil
				}
			}
		}
		if child, ok := node.Get("default"); ok {
			if target, err := conditionTarget(child, conditions); err == nil {
				return target, nil
			}
		}
		return "", ErrNotExported
	}
	return "", ErrNotExported
}
