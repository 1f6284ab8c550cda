// SPDX-License-Identifier: MIT
// Package cmd wires the bspmatch binary's Cobra command tree: a root
// command carrying global flags and persistent setup, with leaf
// subcommands underneath it.
package cmd

import (
	"github.com/spf13/cobra"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "bspmatch",
	Short: "Distributed maximal graph matching over a BSP engine",
	Long: `bspmatch computes a maximal matching on an undirected simple graph
using a bulk-synchronous-parallel algorithm split across P cooperating
processes, each owning a disjoint vertex partition.

Run "bspmatch run" to read an edge list from stdin (or generate one with
--demo) and print the resulting matching.`,
	SilenceUsage: true,
}

// Execute runs the root command, returning the first error any subcommand
// produces.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "path to a config file (yaml/json/toml, viper-resolved)")
	rootCmd.AddCommand(runCmd)
}
