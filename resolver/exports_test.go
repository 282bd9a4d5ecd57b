/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package resolver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bennypowers.dev/nativ/manifest"
)

func exportsFromJSON(t *testing.T, doc string) *manifest.ExportsNode {
	t.Helper()
	m, err := manifest.Parse([]byte(`{"name":"pkg","exports":`+doc+`}`), "/pkg/package.json")
	require.NoError(t, err)
	require.NotNil(t, m.Exports)
	return m.Exports
}

func TestExportsTarget_BareString(t *testing.T) {
	ex := exportsFromJSON(t, `"./index.js"`)

	target, ok, err := exportsTarget(ex, ".", []string{"import"})
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "./index.js", target)

	// A bare string only covers the root entry.
	_, ok, err = exportsTarget(ex, "./sub", []string{"import"})
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestExportsTarget_SubpathMap(t *testing.T) {
	ex := exportsFromJSON(t, `{
		".": "./index.js",
		"./feature": "./lib/feature.js"
	}`)

	target, ok, err := exportsTarget(ex, "./feature", nil)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "./lib/feature.js", target)

	_, ok, err = exportsTarget(ex, "./missing", nil)
	require.NoError(t, err)
	assert.False(t, ok, "uncovered subpaths fall back")
}

func TestExportsTarget_Wildcard(t *testing.T) {
	ex := exportsFromJSON(t, `{
		"./*": "./dist/*.js",
		"./lib/*": "./lib/*.js"
	}`)

	// Longest matching prefix wins over the generic wildcard.
	target, ok, err := exportsTarget(ex, "./lib/util", nil)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "./lib/util.js", target)

	target, ok, err = exportsTarget(ex, "./helper", nil)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "./dist/helper.js", target)
}

func TestExportsTarget_WildcardExactWins(t *testing.T) {
	ex := exportsFromJSON(t, `{
		"./feature": "./special.js",
		"./*": "./dist/*.js"
	}`)

	target, ok, err := exportsTarget(ex, "./feature", nil)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "./special.js", target)
}

func TestExportsTarget_ConditionPriority(t *testing.T) {
	// Document order lists require first; the caller's priority decides.
	ex := exportsFromJSON(t, `{
		"require": "./index.cjs",
		"import": "./index.mjs",
		"default": "./index.js"
	}`)

	target, ok, err := exportsTarget(ex, ".", []string{"import", "require"})
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "./index.mjs", target)

	target, ok, err = exportsTarget(ex, ".", []string{"require"})
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "./index.cjs", target)

	target, ok, err = exportsTarget(ex, ".", []string{"browser"})
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "./index.js", target, "default applies when nothing else matches")
}

func TestExportsTarget_NestedConditions(t *testing.T) {
	ex := exportsFromJSON(t, `{
		".": {
			"node": {
				"import": "./node.mjs",
				"require": "./node.cjs"
			},
			"default": "./browser.js"
		}
	}`)

	target, ok, err := exportsTarget(ex, ".", []string{"node", "import"})
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "./node.mjs", target)

	target, ok, err = exportsTarget(ex, ".", []string{"import"})
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "./browser.js", target)
}

func TestExportsTarget_NullMarker(t *testing.T) {
	ex := exportsFromJSON(t, `{
		".": "./index.js",
		"./internal": null
	}`)

	_, _, err := exportsTarget(ex, "./internal", nil)
	assert.ErrorIs(t, err, ErrNotExported)
}

func TestExportsTarget_FallbackArray(t *testing.T) {
	ex := exportsFromJSON(t, `{
		".": [null, "./fallback.js"]
	}`)

	target, ok, err := exportsTarget(ex, ".", nil)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "./fallback.js", target)
}

func TestExportsTarget_AllConditionsNull(t *testing.T) {
	ex := exportsFromJSON(t, `{
		".": {"import": null, "default": null}
	}`)

	_, _, err := exportsTarget(ex, ".", []string{"import"})
	assert.ErrorIs(t, err, ErrNotExported)
}
