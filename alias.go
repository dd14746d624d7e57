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

package alias

import (
	"errors"
	"sync"
	"sync/atomic"

	"dirpx.dev/alias/apis"
	"dirpx.dev/alias/builder"
	"dirpx.dev/alias/config"
)

// init initializes the global alias state.
func init() {
	// Start from the default config and an empty registry.
	s := &state{cfg: config.DefaultConfig()}
	b := builder.New()
	s.reg = b.BuildRegistry(s.cfg, nil)
	s.bld = b

	// Publish the initial state.
	st.Store(s)
}

// ErrNilRegistry is raised when a builder returns a nil registry.
var ErrNilRegistry = errors.New("alias: builder returned nil registry")

// Register binds alias to name in the global registry.
func Register(name, alias string) error {
	return st.Load().reg.RegisterAlias(name, alias)
}

// Remove deletes alias from the global registry.
func Remove(alias string) error {
	return st.Load().reg.RemoveAlias(alias)
}

// Canonical returns the canonical name for name in the global registry.
func Canonical(name string) string {
	return st.Load().reg.CanonicalName(name)
}

// IsAlias reports whether name is a registered alias in the global registry.
func IsAlias(name string) bool {
	return st.Load().reg.IsAlias(name)
}

// HasAlias reports whether alias is a direct or transitive alias of name in
// the global registry.
func HasAlias(name, alias string) bool {
	return st.Load().reg.HasAlias(name, alias)
}

// Aliases returns every alias of name in the global registry.
func Aliases(name string) []string {
	return st.Load().reg.Aliases(name)
}

// ResolveAll rewrites the global registry through res.
func ResolveAll(res apis.Resolver) error {
	return st.Load().reg.ResolveAliases(res)
}

// SetAll explicitly sets all global alias state components.
//
// A nil cfg or bld leaves the corresponding component unchanged. A nil reg
// makes the builder build a fresh registry, migrating the current entries,
// and leaves it unpinned; a non-nil reg is installed as is and pinned.
func SetAll(cfg *apis.Config, reg apis.Registry, bld apis.Builder) {
	buildMu.Lock()
	defer buildMu.Unlock()

	// Load the current state.
	old := st.Load()

	// Configuration
	ncfg := old.cfg
	if cfg != nil {
		ncfg = *cfg
	}
	// Builder
	nbld := old.bld
	if bld != nil {
		nbld = bld
	}
	// Registry: an explicit one is pinned, a built one is not.
	nreg := reg
	pinned := true
	if nreg == nil {
		nreg = nbld.BuildRegistry(ncfg, old.reg)
		pinned = false
	}

	// A builder must never hand back nil.
	if nreg == nil {
		panic(ErrNilRegistry)
	}

	// Publish the new state.

	st.Store(&state{cfg: ncfg, reg: nreg, bld: nbld, pinned: pinned})
}

// Config returns the global alias configuration.
func Config() apis.Config {
	return st.Load().cfg
}

// SetConfig sets the global alias configuration to cfg and rebuilds the
// global registry under it, unless the registry is pinned.
func SetConfig(cfg apis.Config) {
	buildMu.Lock()
	defer buildMu.Unlock()

	// Load the current state.
	old := st.Load()

	// Rebuild under the new cfg, migrating entries, unless pinned.
	nreg := old.reg
	if !old.pinned {
		nreg = old.bld.BuildRegistry(cfg, old.reg)
	}
	if nreg == nil {
		panic(ErrNilRegistry)
	}

	// Publish the new state.

	st.Store(&state{cfg: cfg, reg: nreg, bld: old.bld, pinned: old.pinned})
}

// Registry returns the global alias registry.
func Registry() apis.Registry {
	return st.Load().reg
}

// SetRegistry installs reg as the global registry and pins it.
// A nil reg is ignored.
func SetRegistry(reg apis.Registry) {
	if reg == nil {
		return
	}

	buildMu.Lock()
	defer buildMu.Unlock()

	// Load the current state.
	old := st.Load()

	// Publish reg as the pinned registry.
	st.Store(&state{cfg: old.cfg, reg: reg, bld: old.bld, pinned: true})
}

// Builder returns the global alias builder.
func Builder() apis.Builder {
	return st.Load().bld
}

// SetBuilder sets the global builder to b and rebuilds the registry with it,
// unless the registry is pinned. A nil b is ignored.
func SetBuilder(b apis.Builder) {
	if b == nil {
		return
	}

	buildMu.Lock()
	defer buildMu.Unlock()

	// Load the current state.
	old := st.Load()

	// Rebuild with the new builder, migrating entries, unless pinned.
	nreg := old.reg
	if !old.pinned {
		nreg = b.BuildRegistry(old.cfg, old.reg)
	}
	if nreg == nil {
		panic(ErrNilRegistry)
	}

	// Publish the new state.

	st.Store(&state{cfg: old.cfg, reg: nreg, bld: b, pinned: old.pinned})
}

// IsRegistryPinned returns whether the global registry is pinned.
func IsRegistryPinned() bool {
	return st.Load().pinned
}

// PinRegistry stops SetConfig and SetBuilder from rebuilding the registry.
func PinRegistry() {
	setPinned(true)
}

// UnpinRegistry lets SetConfig and SetBuilder rebuild the registry again.
func UnpinRegistry() {
	setPinned(false)
}

func setPinned(pinned bool) {
	buildMu.Lock()
	defer buildMu.Unlock()

	// Load the current state.
	old := st.Load()

	// Publish it with the new pin flag.
	st.Store(&state{cfg: old.cfg, reg: old.reg, bld: old.bld, pinned: pinned})
}

// buildMu serializes writers (reconfigurations/swaps) so we never publish
// partially-built snapshots.
var buildMu sync.Mutex

// st is the global alias state.
var st atomic.Pointer[state]

// state is an immutable snapshot published atomically via st.Store.
// The registry it points to is itself mutable and concurrency-safe; only
// the wiring is frozen.
type state struct {
	// cfg is the configuration the registry was built with.
	cfg apis.Config
	// reg is the global alias registry.
	reg apis.Registry
	// bld builds reg on reconfiguration.
	bld apis.Builder
	// pinned indicates whether reg is exempt from rebuilds.
	pinned bool
}
