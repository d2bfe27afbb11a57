// SPDX-License-Identifier: MIT

// Package cli implements the invring command line.
package cli

import (
	"os"

	"github.com/spf13/cobra"
)

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := New().Execute(); err != nil {
		os.Exit(1)
	}
}

// New returns the root command.
func New() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "invring [sub-command]",
		Short: "Find generators of invariant rings of finite matrix groups",
		Long: `invring searches, degree by degree, for polynomials that generate the ring
  of invariants of a finite matrix group. The Molien series of the group
  guides the search and decides when it is complete.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
		DisableAutoGenTag: true,
		SilenceUsage:      true,
	}
	registerLoggingFlags(cmd)
	cmd.AddCommand(newRunCommand())

	return cmd
}
