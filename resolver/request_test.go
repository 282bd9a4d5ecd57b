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

func TestParseRequest(t *testing.T) {
	tests := []struct {
		name     string
		spec     string
		target   string
		query    string
		fragment string
	}{
		{
			name:   "plain target",
			spec:   "./foo.js",
			target: "./foo.js",
		},
		{
			name:   "query only",
			spec:   "./foo.js?x=1",
			target: "./foo.js",
			query:  "?x=1",
		},
		{
			name:     "fragment only",
			spec:     "./foo.js#frag",
			target:   "./foo.js",
			fragment: "#frag",
		},
		{
			name:     "query and fragment",
			spec:     "./foo.js?x=1#frag",
			target:   "./foo.js",
			query:    "?x=1",
			fragment: "#frag",
		},
		{
			name:     "fragment split at last hash",
			spec:     "./a#b#c",
			target:   "./a#b",
			fragment: "#c",
		},
		{
			name:   "query split at first question mark",
			spec:   "./a?b?c",
			target: "./a",
			query:  "?b?c",
		},
		{
			name:   "escaped question mark stays in target",
			spec:   `./fo\?o.js`,
			target: "./fo?o.js",
		},
		{
			name:   "escaped hash stays in target",
			spec:   `./fo\#o.js`,
			target: "./fo#o.js",
		},
		{
			name:     "escaped and unescaped delimiters",
			spec:     `./fo\#o.js#frag`,
			target:   "./fo#o.js",
			fragment: "#frag",
		},
		{
			name:   "other backslashes stay literal",
			spec:   `.\foo`,
			target: `.\foo`,
		},
		{
			name: "empty",
			spec: "",
		},
		{
			name:  "query without target",
			spec:  "?x=1",
			query: "?x=1",
		},
		{
			name:     "fragment without target",
			spec:     "#frag",
			fragment: "#frag",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := ParseRequest(tt.spec)
			assert.Equal(t, tt.target, req.Target, "target")
			assert.Equal(t, tt.query, req.Query, "query")
			assert.Equal(t, tt.fragment, req.Fragment, "fragment")
		})
	}
}

func TestRequest_WithTargetCopies(t *testing.T) {
	orig := ParseRequest("./foo?x=1#frag")
	next := orig.WithTarget("./bar")

	assert.Equal(t, "./bar", next.Target)
	assert.Equal(t, "?x=1", next.Query)
	assert.Equal(t, "#frag", next.Fragment)
	assert.Equal(t, "./foo", orig.Target, "original must not change")
}
