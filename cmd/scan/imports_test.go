/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package scan

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractSpecifiers(t *testing.T) {
	source := []byte(`
import React from 'react';
import { useState, useEffect } from "react";
import * as path from 'node:path';
import './styles.css';
export { helper } from './helpers.js';
export * from '../shared';
const fs = require('fs');
const plugin = await import('./plugin.js');
`)

	specs := extractSpecifiers(source)
	assert.Contains(t, specs, "react")
	assert.Contains(t, specs, "node:path")
	assert.Contains(t, specs, "./styles.css")
	assert.Contains(t, specs, "./helpers.js")
	assert.Contains(t, specs, "../shared")
	assert.Contains(t, specs, "fs")
	assert.Contains(t, specs, "./plugin.js")
}

func TestExtractSpecifiers_Deduplicates(t *testing.T) {
	source := []byte(`
import a from './mod.js';
import b from './mod.js';
const c = require('./mod.js');
`)

	specs := extractSpecifiers(source)
	assert.Equal(t, []string{"./mod.js"}, specs)
}

func TestExtractSpecifiers_None(t *testing.T) {
	specs := extractSpecifiers([]byte(`const x = 1;`))
	assert.Empty(t, specs)
}
