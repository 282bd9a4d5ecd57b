/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package resolver

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		target string
		kind   PathKind
	}{
		{"", KindEmpty},
		{"fs", KindBuiltIn},
		{"path", KindBuiltIn},
		{"node:fs", KindBuiltIn},
		{"node:path", KindBuiltIn},
		{"fs/promises", KindBuiltIn},
		{"node:fs/promises", KindBuiltIn},
		{"/usr/lib/mod.js", KindAbsolutePosix},
		{"/", KindAbsolutePosix},
		{`C:\projects\mod.js`, KindAbsoluteWin},
		{"C:/projects/mod.js", KindAbsoluteWin},
		{"d:/x", KindAbsoluteWin},
		{".", KindRelative},
		{"..", KindRelative},
		{"./foo", KindRelative},
		{"../foo", KindRelative},
		{"./", KindRelative},
		{"lodash", KindModule},
		{"@scope/pkg", KindModule},
		{"@scope/pkg/sub", KindModule},
		{"lodash/fp", KindModule},
		{".hidden", KindModule},
		{"C:relative", KindModule},
		{"fsevents", KindModule},
	}
	for _, tt := range tests {
		t.Run(tt.target, func(t *testing.T) {
			assert.Equal(t, tt.kind, Classify(tt.target))
		})
	}
}

func TestSplitPackageSpecifier(t *testing.T) {
	tests := []struct {
		target  string
		name    string
		subpath string
	}{
		{"lodash", "lodash", "."},
		{"lodash/fp", "lodash", "./fp"},
		{"lodash/fp/curry", "lodash", "./fp/curry"},
		{"@scope/pkg", "@scope/pkg", "."},
		{"@scope/pkg/sub", "@scope/pkg", "./sub"},
	}
	for _, tt := range tests {
		t.Run(tt.target, func(t *testing.T) {
			name, subpath := splitPackageSpecifier(tt.target)
			assert.Equal(t, tt.name, name)
			assert.Equal(t, tt.subpath, subpath)
		})
	}
}
