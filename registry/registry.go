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

package registry

import (
	"log/slog"
	"maps"
	"slices"
	"strings"
	"sync"

	"dirpx.dev/alias/apis"
	"dirpx.dev/alias/errs"
)

// Operation names reported to apis.Observer.OperationRejected.
const (
	OpRegister = "register"
	OpRemove   = "remove"
	OpResolve  = "resolve"
)

// New constructs an alias Registry governed by cfg.
func New(cfg apis.Config) apis.Registry {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &registry{
		cfg: cfg,
		log: logger,
		m:   make(map[string]string),
	}
}

// registry is a Registry backed by a single map under one RWMutex.
// Queries take the read lock; every mutation, including the whole of
// ResolveAliases, takes the write lock.
type registry struct {
	// cfg holds the override policy, logger and observer.
	cfg apis.Config
	// log is cfg.Logger or a discarding logger.
	log *slog.Logger
	// mu guards m.
	mu sync.RWMutex
	// m maps alias to name.
	m map[string]string
}

// Ensure registry implements apis.Registry.
var _ apis.Registry = (*registry)(nil)

// RegisterAlias binds alias to name.
// It is idempotent for the same (name, alias) pair, and alias == name
// removes any existing mapping for alias.
func (r *registry) RegisterAlias(name, alias string) error {
	// Validate inputs early.
	if blank(name) {
		return r.reject(OpRegister, errs.InvalidArgument("name", "must not be empty"))
	}
	if blank(alias) {
		return r.reject(OpRegister, errs.InvalidArgument("alias", "must not be empty"))
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if alias == name {
		if _, ok := r.m[alias]; ok {
			delete(r.m, alias)
			r.log.Debug("alias removed: self-mapping registered", "alias", alias)
			r.removed(alias)
		}
		return nil
	}

	registered, exists := r.m[alias]
	if exists {
		if registered == name {
			return nil // idempotent re-registration
		}
		if !r.cfg.AllowOverriding {
			return r.reject(OpRegister, errs.Conflict(alias, name, registered))
		}
	}
	if hasAlias(r.m, alias, name) {
		return r.reject(OpRegister, errs.CircularReference(alias, name))
	}

	r.m[alias] = name
	if exists {
		r.log.Info("overriding alias", "alias", alias, "name", name, "previous", registered)
	} else {
		r.log.Debug("alias registered", "alias", alias, "name", name)
	}
	if r.cfg.Observer != nil {
		r.cfg.Observer.AliasRegistered(alias, name, exists)
	}
	return nil
}

// RemoveAlias deletes the mapping for alias.
// An alias that was never registered, blank ones included, is not found.
func (r *registry) RemoveAlias(alias string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.m[alias]; !ok {
		return r.reject(OpRemove, errs.NotFound(alias))
	}
	delete(r.m, alias)
	r.log.Debug("alias removed", "alias", alias)
	r.removed(alias)
	return nil
}

// IsAlias reports whether name is registered as an alias.
func (r *registry) IsAlias(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.m[name]
	return ok
}

// HasAlias reports whether alias is a direct or transitive alias of name.
func (r *registry) HasAlias(name, alias string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return hasAlias(r.m, name, alias)
}

// Aliases returns every direct and transitive alias of name, depth-first
// with siblings in lexical order. It returns nil if name has no aliases.
func (r *registry) Aliases(name string) []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []string
	walkAliases(r.m, name, func(alias string) bool {
		out = append(out, alias)
		return true
	})
	return out
}

// CanonicalName follows the alias chain starting at name and returns the
// last name without a further mapping.
func (r *registry) CanonicalName(name string) string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return canonicalName(r.m, name)
}

// Entries returns a snapshot for diagnostics/docs, ordered by alias.
func (r *registry) Entries() []apis.Entry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entries := make([]apis.Entry, 0, len(r.m))
	for _, alias := range slices.Sorted(maps.Keys(r.m)) {
		entries = append(entries, apis.Entry{Alias: alias, Name: r.m[alias]})
	}
	return entries
}

// Count returns the number of registered aliases.
func (r *registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.m)
}

// Reset clears all registered aliases.
func (r *registry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.m = make(map[string]string)
}

// blank reports whether s has no text besides whitespace.
func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// reject reports err to the observer and returns it unchanged.
func (r *registry) reject(op string, err error) error {
	if r.cfg.Observer != nil {
		r.cfg.Observer.OperationRejected(op, errs.Code(err))
	}
	return err
}

// removed notifies the observer that alias is gone.
func (r *registry) removed(alias string) {
	if r.cfg.Observer != nil {
		r.cfg.Observer.AliasRemoved(alias)
	}
}
