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

// Package alias provides a process-wide registry of alternate names.
//
// An alias is a second name for a component. Aliases can point at other
// aliases, forming a chain that always ends at a canonical name:
//
//	alias.Register("dataSource", "ds")   // ds -> dataSource
//	alias.Register("ds", "primary")      // primary -> ds -> dataSource
//	alias.Canonical("primary")           // "dataSource"
//
// # Design
//
// The package holds an atomic pointer to an immutable snapshot (state) that
// wires three things together:
//
//   - Config: policy for the registry (whether an alias may be rebound to a
//     different name, which logger and observer to report to).
//
//   - Registry: the alias map itself. The registry guarantees that no alias
//     maps to itself and that no chain is circular, so CanonicalName always
//     terminates.
//
//   - Builder: a pluggable factory that constructs a Registry for a Config
//     and migrates entries from the previous registry.
//
// # Consistency
//
// RegisterAlias rejects a registration that would close a cycle, and by
// default lets an alias be rebound to a different name (see
// config.WithAllowOverriding). Registering an alias equal to its name
// removes the alias.
//
// ResolveAliases rewrites every stored alias and name through a caller
// supplied apis.Resolver, for example one built with resolver.New from
// placeholder, mapping and prune strategies:
//
//	res := resolver.New(
//		strategy.NewPlaceholderStrategy(map[string]string{"env": "prod"}),
//	)
//	err := alias.ResolveAll(res) // "${env}.db" -> "prod.db"
//
// The rewrite runs under the registry's write lock and is committed only if
// every entry resolves without conflict.
//
// # Concurrency model
//
// Each registry guards its map with one sync.RWMutex. Queries (IsAlias,
// HasAlias, Aliases, CanonicalName, Entries) share the read side. Every
// mutation, including the whole bulk rewrite, holds the write side.
//
// Snapshot reads are lock-free: package helpers load the current state
// atomically. Reconfiguration (SetConfig, SetBuilder, SetRegistry, SetAll)
// takes a short build mutex, builds a new state and swaps it in. A write
// that lands in the outgoing registry after its entries were migrated is
// lost; quiesce writers before reconfiguring if that matters.
//
// # Pinning
//
// SetRegistry installs a registry and pins it: SetConfig and SetBuilder
// stop rebuilding it until UnpinRegistry is called.
//
// # Errors
//
// Failures carry an oops code from package errs: INVALID_ARGUMENT,
// ALIAS_CONFLICT, CIRCULAR_REFERENCE or ALIAS_NOT_FOUND. A failed operation
// leaves the registry unchanged.
package alias
