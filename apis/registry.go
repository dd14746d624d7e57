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

package apis

// Registry maps aliases to names. A name may itself be an alias, forming a
// chain that ends at a canonical name.
// Implementations must be safe for concurrent use and must never store a
// self-mapping or a cycle.
type Registry interface {
	// RegisterAlias binds alias to name. Registering alias == name removes
	// any mapping for alias.
	RegisterAlias(name, alias string) error
	// RemoveAlias deletes the mapping for alias.
	RemoveAlias(alias string) error
	// IsAlias reports whether name is registered as an alias.
	IsAlias(name string) bool
	// HasAlias reports whether alias is a direct or transitive alias of name.
	HasAlias(name, alias string) bool
	// Aliases returns every direct and transitive alias of name.
	Aliases(name string) []string
	// CanonicalName follows the alias chain from name to its end.
	CanonicalName(name string) string
	// ResolveAliases rewrites every stored alias and name through res,
	// excluding all other operations while it runs.
	ResolveAliases(res Resolver) error
	// Entries returns a snapshot of all mappings, ordered by alias.
	Entries() []Entry
	// Count returns the number of registered aliases.
	Count() int
	// Reset clears all registered aliases.
	Reset()
}

// Entry is a single (alias, name) association in a Registry snapshot.
type Entry struct {
	// Alias is the registered alias.
	Alias string
	// Name is the name the alias points to. It may be another alias.
	Name string
}
