/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package scan provides the scan command for nativ.
package scan

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"bennypowers.dev/nativ/config"
	"bennypowers.dev/nativ/fs"
	"bennypowers.dev/nativ/internal/logger"
	"bennypowers.dev/nativ/resolver"
)

// Cmd is the scan cobra command.
var Cmd = &cobra.Command{
	Use:   "scan [globs...]",
	Short: "Resolve every import in matching source files",
	Long: `Scan source files for static import, export-from, require, and dynamic
import specifiers, and resolve each one from its file's directory. This
turns an import graph into a file graph without running any code.

Globs support ** patterns. With no arguments, the sources listed in
.config/nativ.{yaml,yml,json} are scanned.

Examples:
  nativ scan 'src/**/*.js'
  nativ scan --format json 'packages/*/lib/**/*.{js,mjs}'`,
	Args: cobra.ArbitraryArgs,
	RunE: run,
}

func init() {
	Cmd.Flags().StringP("format", "f", "text", "Output format (text, json)")
	Cmd.Flags().Bool("strict", false, "Exit non-zero when any specifier fails to resolve")
}

type fileReport struct {
	File    string   `json:"file"`
	Imports []result `json:"imports"`
}

type result struct {
	Specifier string `json:"specifier"`
	Path      string `json:"path,omitempty"`
	Ignored   bool   `json:"ignored,omitempty"`
	Error     string `json:"error,omitempty"`
}

func run(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")
	strict, _ := cmd.Flags().GetBool("strict")

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

	files, err := expandArgs(args, cfg, filesystem, baseDir)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("no files matched and no sources found in config")
	}

	res := resolver.New(filesystem, cfg.Options()).WithBaseDir(baseDir)

	var reports []fileReport
	var failures int
	for _, file := range files {
		data, err := filesystem.ReadFile(file)
		if err != nil {
			logger.Warn("failed to read %s: %v", file, err)
			failures++
			continue
		}

		report := fileReport{File: file}
		fromDir := filepath.Dir(file)
		for _, spec := range extractSpecifiers(data) {
			resolution, err := res.ResolveFrom(fromDir, spec)
			switch {
			case err != nil:
				report.Imports = append(report.Imports, result{Specifier: spec, Error: err.Error()})
				failures++
			case resolution.Ignored:
				report.Imports = append(report.Imports, result{Specifier: spec, Ignored: true})
			default:
				report.Imports = append(report.Imports, result{Specifier: spec, Path: resolution.Path})
			}
		}
		reports = append(reports, report)
	}

	switch format {
	case "json":
		if err := outputJSON(reports); err != nil {
			return err
		}
	default:
		outputText(reports)
	}

	if strict && failures > 0 {
		return fmt.Errorf("failed to resolve %d specifier(s)", failures)
	}
	return nil
}

// expandArgs expands CLI glob arguments, falling back to the config
// sources when none are given.
func expandArgs(args []string, cfg *config.Config, filesystem fs.FileSystem, baseDir string) ([]string, error) {
	if len(args) == 0 {
		return cfg.ExpandSources(filesystem, baseDir)
	}

	var files []string
	for _, pattern := range args {
		if !filepath.IsAbs(pattern) {
			pattern = filepath.Join(baseDir, pattern)
		}
		matches, err := doublestar.FilepathGlob(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid glob %q: %w", pattern, err)
		}
		files = append(files, matches...)
	}
	return files, nil
}

func outputText(reports []fileReport) {
	for _, report := range reports {
		fmt.Println(report.File)
		for _, r := range report.Imports {
			switch {
			case r.Error != "":
				fmt.Printf("  %s: %s\n", r.Specifier, r.Error)
			case r.Ignored:
				fmt.Printf("  %s (ignored)\n", r.Specifier)
			default:
				fmt.Printf("  %s -> %s\n", r.Specifier, r.Path)
			}
		}
	}
}

func outputJSON(reports []fileReport) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(reports)
}
