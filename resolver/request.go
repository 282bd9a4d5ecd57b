/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package resolver

import "strings"

// Request is a parsed specifier: the path target plus the query and
// fragment suffixes that are re-attached after resolution. Values are
// derived by functional update, never mutated in place.
type Request struct {
	// Target is the path portion of the specifier. Stages rewrite it as
	// aliasing and manifest mapping advance the search.
	Target string

	// Query is the query-string suffix including its leading "?", or "".
	Query string

	// Fragment is the fragment suffix including its leading "#", or "".
	Fragment string
}

// WithTarget returns a copy of the request with the target replaced.
func (r Request) WithTarget(target string) Request {
	r.Target = target
	return r
}

// ParseRequest splits a raw specifier into target, query, and fragment.
// The fragment starts at the last unescaped "#"; the query starts at the
// first unescaped "?" before the fragment. A backslash escapes either
// delimiter and is stripped from the final target; malformed escapes are
// treated as literal characters. No filesystem access.
func ParseRequest(spec string) Request {
	target := spec
	fragment := ""
	query := ""

	if i := lastUnescapedIndex(target, '#'); i >= 0 {
		fragment = target[i:]
		target = target[:i]
	}
	if i := firstUnescapedIndex(target, '?'); i >= 0 {
		query = target[i:]
		target = target[:i]
	}

	return Request{Target: unescapeDelimiters(target), Query: query, Fragment: fragment}
}

func lastUnescapedIndex(s string, c byte) int {
	for i := len(s) - 1; i >= 0; i-- {
		if s[i] == c && !escapedAt(s, i) {
			return i
		}
	}
	return -1
}

func firstUnescapedIndex(s string, c byte) int {
	for i := 0; i < len(s); i++ {
		if s[i] == c && !escapedAt(s, i) {
			return i
		}
	}
	return -1
}

func escapedAt(s string, i int) bool {
	return i > 0 && s[i-1] == '\\'
}

// unescapeDelimiters strips the escape marker before "#" and "?".
// Backslashes anywhere else stay literal.
func unescapeDelimiters(s string) string {
	if !strings.Contains(s, `\`) {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == '\\' && i+1 < len(s) && (s[i+1] == '#' || s[i+1] == '?') {
			continue
		}
		b.WriteByte(s[i])
	}
	return b.String()
}
