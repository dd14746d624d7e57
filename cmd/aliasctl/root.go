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
	"io"
	"log/slog"
	"maps"

	"github.com/spf13/cobra"

	"dirpx.dev/alias"
	"dirpx.dev/alias/apis"
	"dirpx.dev/alias/config"
	"dirpx.dev/alias/internal/logging"
	"dirpx.dev/alias/registry"
	"dirpx.dev/alias/resolver"
	"dirpx.dev/alias/strategy"
)

// options holds the global flags shared by all subcommands.
type options struct {
	file      string
	vars      map[string]string
	logFormat string
	verbose   bool

	logger *slog.Logger
	defs   *config.File
}

// run executes the CLI and returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	opts := &options{}
	cmd := NewRootCmd(opts)
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	if err := cmd.Execute(); err != nil {
		logger := opts.logger
		if logger == nil {
			logger = logging.Setup("aliasctl", opts.logFormat, slog.LevelInfo, stderr)
		}
		logging.LogError(logger, "aliasctl failed", err)
		return 1
	}
	return 0
}

// NewRootCmd creates the root command for the aliasctl CLI.
func NewRootCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "aliasctl",
		Short: "Inspect and resolve alias definitions",
		Long: `aliasctl registers the aliases declared in a YAML definition file
and answers questions about them: canonical names, alias sets, and the
result of resolving placeholders, renames and prune patterns.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: opts.load,
	}

	pf := cmd.PersistentFlags()
	pf.StringVarP(&opts.file, "file", "f", "", "alias definition file (YAML)")
	pf.StringToStringVar(&opts.vars, "var", nil, "placeholder variable key=value, overrides file vars")
	pf.StringVar(&opts.logFormat, "log-format", "text", "log format: text or json")
	pf.BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging")
	_ = cmd.MarkPersistentFlagRequired("file")

	cmd.AddCommand(newCanonicalCmd())
	cmd.AddCommand(newAliasesCmd())
	cmd.AddCommand(newListCmd())
	cmd.AddCommand(newResolveCmd(opts))

	return cmd
}

// load reads the definition file and installs a fresh global registry
// populated with its aliases.
func (o *options) load(cmd *cobra.Command, _ []string) error {
	level := slog.LevelInfo
	if o.verbose {
		level = slog.LevelDebug
	}
	o.logger = logging.Setup("aliasctl", o.logFormat, level, cmd.ErrOrStderr())

	defs, err := config.LoadFile(o.file)
	if err != nil {
		return err
	}
	o.defs = defs

	cfg := config.NewConfig(append(defs.Options(), config.WithLogger(o.logger))...)
	alias.SetAll(&cfg, registry.New(cfg), nil)

	if err := defs.Apply(alias.Registry()); err != nil {
		return err
	}
	o.logger.Debug("aliases loaded", "file", o.file, "count", alias.Registry().Count())
	return nil
}

// resolver builds the rewrite pipeline described by the definition file:
// renames of raw names first, then placeholders, then pruning.
func (o *options) resolver() (apis.Resolver, error) {
	vars := maps.Clone(o.defs.Vars)
	if vars == nil {
		vars = make(map[string]string, len(o.vars))
	}
	maps.Copy(vars, o.vars)

	prune, err := strategy.NewPruneStrategy(o.defs.Prune...)
	if err != nil {
		return nil, err
	}
	return resolver.New(
		strategy.NewMappingStrategy(o.defs.Renames),
		strategy.NewPlaceholderStrategy(vars),
		prune,
	), nil
}
