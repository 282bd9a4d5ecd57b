/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package scan

import "regexp"

// specifierPatterns match the specifier in static imports, export-from
// declarations, CommonJS requires, and dynamic imports. A regexp pass is
// deliberately shallow: it does not skip comments or strings, which is
// acceptable for reporting but would not be for codemods.
var specifierPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?m)\bimport\s+(?:[\w$]+\s*,?\s*)?(?:\*\s+as\s+[\w$]+\s+|\{[^}]*\}\s*)?(?:from\s+)?['"]([^'"]+)['"]`),
	regexp.MustCompile(`(?m)\bexport\s+(?:\*(?:\s+as\s+[\w$]+)?|\{[^}]*\})\s+from\s+['"]([^'"]+)['"]`),
	regexp.MustCompile(`\brequire\s*\(\s*['"]([^'"]+)['"]\s*\)`),
	regexp.MustCompile(`\bimport\s*\(\s*['"]([^'"]+)['"]\s*\)`),
}

// extractSpecifiers returns the unique import specifiers found in source,
// in first-appearance order.
func extractSpecifiers(source []byte) []string {
	seen := make(map[string]bool)
	var specifiers []string

	for _, pattern := range specifierPatterns {
		for _, match := range pattern.FindAllSubmatch(source, -1) {
			spec := string(match[1])
			if seen[spec] {
				continue
			}
			seen[spec] = true
			specifiers = append(specifiers, spec)
		}
	}

	return specifiers
}
