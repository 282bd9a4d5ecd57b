/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package resolver

import "strings"

// AliasRule rewrites targets matching a pattern before any filesystem
// access. Rules are applied in table order; the first match wins.
type AliasRule struct {
	// Pattern matches the target exactly, or as a prefix ending at a
	// path-segment boundary.
	Pattern string

	// Replacement substitutes the matched prefix. Ignored when Block is set.
	Replacement string

	// Block terminates resolution for matching targets: the specifier is
	// intentionally unresolved (e.g. stubbed out of a bundle).
	Block bool
}

// applyAliases rewrites target against the rule table. Only the first
// matching rule applies, and rewriting is single-pass: a replacement that
// is itself alias-eligible is not rewritten again, which keeps alias
// cycles impossible. blocked is true when the matching rule blocks.
func applyAliases(target string, rules []AliasRule) (result string, blocked bool) {
	for _, rule := range rules {
		if rule.Pattern == "" {
			continue
		}
		rest, ok := matchAliasPattern(target, rule.Pattern)
		if !ok {
			continue
		}
		if rule.Block {
			return "", true
		}
		return rule.Replacement + rest, false
	}
	return target, false
}

// matchAliasPattern reports whether target equals pattern or extends it
// past a path-segment boundary, returning the unmatched remainder.
func matchAliasPattern(target, pattern string) (rest string, ok bool) {
	if target == pattern {
		return "", true
	}
	if !strings.HasPrefix(target, pattern) {
		return "", false
	}
	rest = target[len(pattern):]
	if strings.HasSuffix(pattern, "/") || strings.HasPrefix(rest, "/") {
		return rest, true
	}
	return "", false
}
