/*
   Copyright 2025 The DIRPX Authors.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"dirpx.dev/alias"
)

// newCanonicalCmd creates the canonical subcommand.
func newCanonicalCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "canonical NAME...",
		Short: "Print the canonical name of each argument",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range args {
				if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%s -> %s\n", name, alias.Canonical(name)); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

// newAliasesCmd creates the aliases subcommand.
func newAliasesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "aliases NAME",
		Short: "Print every direct and transitive alias of NAME",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, a := range alias.Aliases(args[0]) {
				if _, err := fmt.Fprintln(cmd.OutOrStdout(), a); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

// newListCmd creates the list subcommand.
func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Print all registered aliases",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return printEntries(cmd.OutOrStdout())
		},
	}
}

// newResolveCmd creates the resolve subcommand.
func newResolveCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "resolve",
		Short: "Rewrite aliases through renames, placeholders and prune patterns",
		Long: `Resolve applies the file's renames, expands ${key} and ${key:default}
placeholders from the file's vars and --var flags, drops names matching prune
patterns, and prints the resulting aliases.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			res, err := opts.resolver()
			if err != nil {
				return err
			}
			if err := alias.ResolveAll(res); err != nil {
				return err
			}
			return printEntries(cmd.OutOrStdout())
		},
	}
}

// printEntries writes "alias -> name" lines for the global registry.
func printEntries(w io.Writer) error {
	for _, e := range alias.Registry().Entries() {
		if _, err := fmt.Fprintf(w, "%s -> %s\n", e.Alias, e.Name); err != nil {
			return err
		}
	}
	return nil
}
