/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package resolve provides the resolve command for nativ.
package resolve

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"bennypowers.dev/nativ/config"
	"bennypowers.dev/nativ/fs"
	"bennypowers.dev/nativ/resolver"
)

// Cmd is the resolve cobra command.
var Cmd = &cobra.Command{
	Use:   "resolve [specifiers...]",
	Short: "Resolve import specifiers to filesystem paths",
	Long: `Resolve one or more import specifiers to the filesystem paths a host
loader would load, using the alias table, extensions, and conditions from
.config/nativ.{yaml,yml,json} when present.

Examples:
  # Resolve a relative import from the current directory
  nativ resolve ./src/app

  # Resolve a bare package specifier from another directory
  nativ resolve --from packages/site lodash

  # Prefer require targets in conditional exports
  nativ resolve --conditions require,node preact/hooks`,
	Args: cobra.MinimumNArgs(1),
	RunE: run,
}

func init() {
	Cmd.Flags().StringP("format", "f", "text", "Output format (text, json)")
	Cmd.Flags().StringSlice("extensions", nil, "Extension probe order (overrides config)")
	Cmd.Flags().StringSlice("conditions", nil, "Exports condition priority (overrides config)")
	Cmd.Flags().StringSlice("main-fields", nil, "Manifest entry-point fields (overrides config)")
}

type result struct {
	Specifier string `json:"specifier"`
	Path      string `json:"path,omitempty"`
	Ignored   bool   `json:"ignored,omitempty"`
	Error     string `json:"error,omitempty"`
}

func run(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")
	extensions, _ := cmd.Flags().GetStringSlice("extensions")
	conditions, _ := cmd.Flags().GetStringSlice("conditions")
	mainFields, _ := cmd.Flags().GetStringSlice("main-fields")

	baseDir := viper.GetString("from")
	if baseDir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("failed to get working directory: %w", err)
		}
		baseDir = cwd
	}
	baseDir, err := filepath.Abs(baseDir)
	if err != nil {
		return fmt.Errorf("failed to resolve base directory: %w", err)
	}

	filesystem := fs.NewOSFileSystem()
	cfg := config.LoadOrDefault(filesystem, baseDir)

	opts := cfg.Options()
	if len(extensions) > 0 {
		opts.Extensions = extensions
	}
	if len(conditions) > 0 {
		opts.ConditionNames = conditions
	}
	if len(mainFields) > 0 {
		opts.MainFields = mainFields
	}

	res := resolver.New(filesystem, opts).WithBaseDir(baseDir)

	var results []result
	var failures int
	for _, spec := range args {
		resolution, err := res.Resolve(spec)
		switch {
		case err != nil:
			results = append(results, result{Specifier: spec, Error: err.Error()})
			failures++
		case resolution.Ignored:
			results = append(results, result{Specifier: spec, Ignored: true})
		default:
			results = append(results, result{Specifier: spec, Path: resolution.Path})
		}
	}

	switch format {
	case "json":
		if err := outputJSON(results); err != nil {
			return err
		}
	default:
		outputText(results)
	}

	if failures > 0 {
		return fmt.Errorf("failed to resolve %d specifier(s)", failures)
	}
	return nil
}

func outputText(results []result) {
	for _, r := range results {
		switch {
		case r.Error != "":
			fmt.Fprintf(os.Stderr, "%s: %s\n", r.Specifier, r.Error)
		case r.Ignored:
			fmt.Printf("%s (ignored)\n", r.Specifier)
		default:
			fmt.Printf("%s -> %s\n", r.Specifier, r.Path)
		}
	}
}

func outputJSON(results []result) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(results)
}
