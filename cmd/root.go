/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package cmd provides CLI commands for nativ.
package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"bennypowers.dev/nativ/cmd/resolve"
	"bennypowers.dev/nativ/cmd/scan"
	"bennypowers.dev/nativ/cmd/version"
	"bennypowers.dev/nativ/internal/logger"
)

var rootCmd = &cobra.Command{
	Use:   "nativ",
	Short: "Resolve JavaScript and TypeScript import specifiers",
	Long: `nativ resolves import specifiers the way a host loader would:
node_modules traversal, package.json main/browser/exports mapping,
extension probing, index fallback, and user-configured aliasing.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger.SetVerbose(viper.GetBool("verbose"))
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("from", "", "Base directory to resolve from (default: working directory)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging")

	viper.SetEnvPrefix("NATIV")
	viper.AutomaticEnv()
	_ = viper.BindPFlag("from", rootCmd.PersistentFlags().Lookup("from"))
	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))

	rootCmd.AddCommand(resolve.Cmd)
	rootCmd.AddCommand(scan.Cmd)
	rootCmd.AddCommand(version.Cmd)
}
