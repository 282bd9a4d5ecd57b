/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package manifest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bennypowers.dev/nativ/internal/mapfs"
)

func TestParse_Fields(t *testing.T) {
	m, err := Parse([]byte(`{
		"name": "widget",
		"version": "1.2.3",
		"type": "module",
		"main": "./dist/index.cjs",
		"browser": "./dist/index.web.js",
		"dependencies": {"react": "^18.0.0"}
	}`), "/proj/node_modules/widget/package.json")
	require.NoError(t, err)

	assert.Equal(t, "/proj/node_modules/widget/package.json", m.Path)
	assert.Equal(t, "/proj/node_modules/widget", m.Dir)
	assert.Equal(t, "widget", m.Name)
	assert.Equal(t, "module", m.Type)
	assert.Equal(t, "./dist/index.cjs", m.Field("main"))
	assert.Equal(t, "1.2.3", m.Field("version"))
	assert.Empty(t, m.Field("dependencies"), "non-string fields are not exposed")
	assert.Nil(t, m.Exports)
}

func TestParse_MainFieldPriority(t *testing.T) {
	m, err := Parse([]byte(`{
		"main": "./node.js",
		"browser": "./web.js"
	}`), "/p/package.json")
	require.NoError(t, err)

	assert.Equal(t, "./web.js", m.MainField([]string{"browser", "main"}))
	assert.Equal(t, "./node.js", m.MainField([]string{"main", "browser"}))
	assert.Equal(t, "./node.js", m.MainField([]string{"module", "main"}))
	assert.Empty(t, m.MainField([]string{"module"}))
}

func TestParse_ToleratesCommentsAndTrailingCommas(t *testing.T) {
	m, err := Parse([]byte(`{
		// entry point
		"main": "./index.js",
		"name": "commented", /* inline */
	}`), "/p/package.json")
	require.NoError(t, err)

	assert.Equal(t, "commented", m.Name)
	assert.Equal(t, "./index.js", m.Field("main"))
}

func TestParse_InvalidJSON(t *testing.T) {
	_, err := Parse([]byte(`{"name": `), "/p/package.json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid manifest")
}

func TestParse_ExportsKeyOrder(t *testing.T) {
	m, err := Parse([]byte(`{
		"exports": {
			"require": "./index.cjs",
			"import": "./index.mjs",
			"default": "./index.js"
		}
	}`), "/p/package.json")
	require.NoError(t, err)
	require.NotNil(t, m.Exports)

	assert.Equal(t, ExportsObject, m.Exports.Kind)
	assert.Equal(t, []string{"require", "import", "default"}, m.Exports.Keys)

	node, ok := m.Exports.Get("import")
	require.True(t, ok)
	assert.Equal(t, ExportsString, node.Kind)
	assert.Equal(t, "./index.mjs", node.Value)
}

func TestParse_ExportsShapes(t *testing.T) {
	t.Run("string", func(t *testing.T) {
		m, err := Parse([]byte(`{"exports": "./index.js"}`), "/p/package.json")
		require.NoError(t, err)
		assert.Equal(t, ExportsString, m.Exports.Kind)
		assert.Equal(t, "./index.js", m.Exports.Value)
	})

	t.Run("null subpath", func(t *testing.T) {
		m, err := Parse([]byte(`{"exports": {"./private": null}}`), "/p/package.json")
		require.NoError(t, err)
		node, ok := m.Exports.Get("./private")
		require.True(t, ok)
		assert.Equal(t, ExportsNull, node.Kind)
	})

	t.Run("fallback array", func(t *testing.T) {
		m, err := Parse([]byte(`{"exports": [null, "./a.js"]}`), "/p/package.json")
		require.NoError(t, err)
		require.Equal(t, ExportsArray, m.Exports.Kind)
		require.Len(t, m.Exports.Items, 2)
		assert.Equal(t, ExportsNull, m.Exports.Items[0].Kind)
		assert.Equal(t, "./a.js", m.Exports.Items[1].Value)
	})
}

func TestExportsNode_IsSubpathMap(t *testing.T) {
	subpaths, err := Parse([]byte(`{"exports": {".": "./a.js", "./b": "./b.js"}}`), "/p/package.json")
	require.NoError(t, err)
	assert.True(t, subpaths.Exports.IsSubpathMap())

	conditions, err := Parse([]byte(`{"exports": {"import": "./a.mjs"}}`), "/p/package.json")
	require.NoError(t, err)
	assert.False(t, conditions.Exports.IsSubpathMap())
}

func TestParseFile(t *testing.T) {
	mfs := mapfs.New()
	mfs.AddFile("/p/package.json", `{"name": "p", "main": "./index.js"}`, 0644)

	m, err := ParseFile(mfs, "/p/package.json")
	require.NoError(t, err)
	assert.Equal(t, "p", m.Name)

	_, err = ParseFile(mfs, "/missing/package.json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "/missing/package.json")
}
