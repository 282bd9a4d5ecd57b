/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package resolver

// builtinModules lists the Node.js core modules. These resolve to their
// own name without filesystem access; the host runtime provides them.
//
// Top-level names only; subpath forms like "fs/promises" are matched by
// their first segment.
var builtinModules = map[string]bool{
	"assert":              true,
	"async_hooks":         true,
	"buffer":              true,
	"child_process":       true,
	"cluster":             true,
	"console":             true,
	"constants":           true,
	"crypto":              true,
	"dgram":               true,
	"diagnostics_channel": true,
	"dns":                 true,
	"domain":              true,
	"events":              true,
	"fs":                  true,
	"http":                true,
	"http2":               true,
	"https":               true,
	"inspector":           true,
	"module":              true,
	"net":                 true,
	"os":                  true,
	"path":                true,
	"perf_hooks":          true,
	"process":             true,
	"punycode":            true,
	"querystring":         true,
	"readline":            true,
	"repl":                true,
	"stream":              true,
	"string_decoder":      true,
	"sys":                 true,
	"timers":              true,
	"tls":                 true,
	"trace_events":        true,
	"tty":                 true,
	"url":                 true,
	"util":                true,
	"v8":                  true,
	"vm":                  true,
	"wasi":                true,
	"worker_threads":      true,
	"zlib":                true,
}

// isBuiltin reports whether name is a Node.js built-in module, in bare
// ("fs"), prefixed ("node:fs"), or subpath ("fs/promises") form.
func isBuiltin(name string) bool {
	if len(name) > 5 && name[:5] == "node:" {
		name = name[5:]
	}
	for i := 0; i < len(name); i++ {
		if name[i] == '/' {
			return builtinModules[name[:i]]
		}
	}
	return builtinModules[name]
}
