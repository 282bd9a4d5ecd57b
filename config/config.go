/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package config provides configuration loading for nativ.
package config

import (
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"bennypowers.dev/nativ/resolver"
)

// Config represents the nativ project configuration.
type Config struct {
	// Aliases is the ordered alias rule table.
	Aliases []AliasSpec `yaml:"aliases" json:"aliases"`

	// Extensions are probed in order when resolving extensionless paths.
	Extensions []string `yaml:"extensions" json:"extensions"`

	// MainFields are manifest entry-point fields in priority order.
	MainFields []string `yaml:"mainFields" json:"mainFields"`

	// Conditions are conditional-exports condition names in priority order.
	Conditions []string `yaml:"conditions" json:"conditions"`

	// ModuleDirectories are the package directory names searched upward.
	ModuleDirectories []string `yaml:"moduleDirectories" json:"moduleDirectories"`

	// Symlinks controls whether resolved paths are canonicalized.
	Symlinks *bool `yaml:"symlinks" json:"symlinks"`

	// Sources are glob patterns naming source files for the scan command.
	Sources []string `yaml:"sources" json:"sources"`
}

// AliasSpec is one alias rule. It can be specified as a simple
// "pattern=replacement" string or as an object; a replacement of false
// (or block: true) stubs matching specifiers out entirely.
type AliasSpec struct {
	// Pattern matches specifiers exactly or as a path-segment prefix.
	Pattern string `yaml:"pattern" json:"pattern"`

	// Replacement substitutes the matched prefix.
	Replacement string `yaml:"replacement" json:"replacement"`

	// Block marks matching specifiers as intentionally unresolved.
	Block bool `yaml:"block" json:"block"`
}

// UnmarshalYAML handles both string and object forms for AliasSpec.
func (a *AliasSpec) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		return a.fromString(node.Value)
	}

	var raw struct {
		Pattern     string    `yaml:"pattern"`
		Replacement yaml.Node `yaml:"replacement"`
		Block       bool      `yaml:"block"`
	}
	if err := node.Decode(&raw); err != nil {
		return err
	}
	a.Pattern = raw.Pattern
	a.Block = raw.Block
	switch raw.Replacement.Kind {
	case 0:
		// absent
	case yaml.ScalarNode:
		if raw.Replacement.Tag == "!!bool" {
			var blocked bool
			if err := raw.Replacement.Decode(&blocked); err != nil {
				return err
			}
			// `replacement: false` is the block marker
			a.Block = a.Block || !blocked
		} else {
			a.Replacement = raw.Replacement.Value
		}
	default:
		return fmt.Errorf("alias replacement must be a string or false")
	}
	return nil
}

// UnmarshalJSON handles both string and object forms for AliasSpec.
func (a *AliasSpec) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		return a.fromString(s)
	}

	var raw struct {
		Pattern     string          `json:"pattern"`
		Replacement json.RawMessage `json:"replacement"`
		Block       bool            `json:"block"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	a.Pattern = raw.Pattern
	a.Block = raw.Block
	if len(raw.Replacement) > 0 {
		var replacement string
		if err := json.Unmarshal(raw.Replacement, &replacement); err == nil {
			a.Replacement = replacement
		} else {
			var blocked bool
			if err := json.Unmarshal(raw.Replacement, &blocked); err != nil || blocked {
				return fmt.Errorf("alias replacement must be a string or false")
			}
			a.Block = true
		}
	}
	return nil
}

// fromString parses the "pattern=replacement" shorthand; a replacement of
// "false" is the block marker.
func (a *AliasSpec) fromString(s string) error {
	pattern, replacement, found := strings.Cut(s, "=")
	if !found || pattern == "" {
		return fmt.Errorf("invalid alias %q: expected pattern=replacement", s)
	}
	a.Pattern = pattern
	if replacement == "false" {
		a.Block = true
	} else {
		a.Replacement = replacement
	}
	return nil
}

// Default returns a config with default values.
func Default() *Config {
	return &Config{}
}

// Options maps the config onto resolver options, filling unset fields with
// the resolver defaults.
func (c *Config) Options() resolver.Options {
	opts := resolver.DefaultOptions()

	if len(c.Extensions) > 0 {
		opts.Extensions = c.Extensions
	}
	if len(c.MainFields) > 0 {
		opts.MainFields = c.MainFields
	}
	if len(c.Conditions) > 0 {
		opts.ConditionNames = c.Conditions
	}
	if len(c.ModuleDirectories) > 0 {
		opts.ModuleDirectories = c.ModuleDirectories
	}
	if c.Symlinks != nil {
		opts.SymlinksResolve = *c.Symlinks
	}
	for _, alias := range c.Aliases {
		opts.Aliases = append(opts.Aliases, resolver.AliasRule{
			Pattern:     alias.Pattern,
			Replacement: alias.Replacement,
			Block:       alias.Block,
		})
	}

	return opts
}
