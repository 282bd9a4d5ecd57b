/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package resolver

import (
	"regexp"
	"strings"
)

// PathKind tags a target string with its resolution strategy.
type PathKind int

const (
	// KindEmpty is the empty target.
	KindEmpty PathKind = iota
	// KindBuiltIn is a host-runtime module name, resolved without
	// touching the filesystem.
	KindBuiltIn
	// KindAbsolutePosix is a path starting with "/".
	KindAbsolutePosix
	// KindAbsoluteWin is a drive-letter-prefixed path.
	KindAbsoluteWin
	// KindRelative is a "./" or "../" path.
	KindRelative
	// KindModule is a bare or scoped package specifier.
	KindModule
)

// winAbsolutePattern matches a drive-letter prefix like "C:\" or "C:/".
var winAbsolutePattern = regexp.MustCompile(`^[A-Za-z]:[\\/]`)

// Classify categorizes a target into its resolution strategy. It is re-run
// after every rewrite, since aliasing or exports mapping can change the
// kind (e.g. a module name aliased to a relative file path).
func Classify(target string) PathKind {
	switch {
	case target == "":
		return KindEmpty
	case isBuiltin(target):
		return KindBuiltIn
	case strings.HasPrefix(target, "/"):
		return KindAbsolutePosix
	case winAbsolutePattern.MatchString(target):
		return KindAbsoluteWin
	case isRelative(target):
		return KindRelative
	default:
		return KindModule
	}
}

func isRelative(target string) bool {
	return target == "." || target == ".." ||
		strings.HasPrefix(target, "./") || strings.HasPrefix(target, "../")
}
