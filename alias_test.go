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

package alias_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dirpx.dev/alias"
	"dirpx.dev/alias/apis"
	"dirpx.dev/alias/builder"
	"dirpx.dev/alias/config"
	"dirpx.dev/alias/errs"
	"dirpx.dev/alias/registry"
	"dirpx.dev/alias/resolver"
	"dirpx.dev/alias/strategy"
)

// reset installs a fresh, unpinned global registry with the default config.
func reset(t *testing.T) {
	t.Helper()
	cfg := config.DefaultConfig()
	alias.SetAll(&cfg, registry.New(cfg), builder.New())
	alias.UnpinRegistry()
}

// countingBuilder counts BuildRegistry calls and delegates to the default builder.
type countingBuilder struct {
	mu    sync.Mutex
	calls int
}

func (b *countingBuilder) BuildRegistry(cfg apis.Config, prev apis.Registry) apis.Registry {
	b.mu.Lock()
	b.calls++
	b.mu.Unlock()
	return builder.New().BuildRegistry(cfg, prev)
}

// nilBuilder returns a nil registry.
type nilBuilder struct{}

func (nilBuilder) BuildRegistry(apis.Config, apis.Registry) apis.Registry { return nil }

func TestGlobalHelpers(t *testing.T) {
	reset(t)

	require.NoError(t, alias.Register("dataSource", "ds"))
	require.NoError(t, alias.Register("ds", "primary"))

	assert.Equal(t, "dataSource", alias.Canonical("primary"))
	assert.True(t, alias.IsAlias("ds"))
	assert.True(t, alias.HasAlias("dataSource", "primary"))
	assert.Equal(t, []string{"ds", "primary"}, alias.Aliases("dataSource"))

	errs.AssertCode(t, alias.Register("primary", "dataSource"), errs.CodeCircularReference)

	require.NoError(t, alias.Remove("primary"))
	errs.AssertCode(t, alias.Remove("primary"), errs.CodeNotFound)
	assert.Equal(t, "primary", alias.Canonical("primary"))
}

func TestResolveAll(t *testing.T) {
	reset(t)

	require.NoError(t, alias.Register("dataSource", "${env}.db"))
	res := resolver.New(strategy.NewPlaceholderStrategy(map[string]string{"env": "prod"}))

	require.NoError(t, alias.ResolveAll(res))

	assert.Equal(t, "dataSource", alias.Canonical("prod.db"))
	assert.False(t, alias.IsAlias("${env}.db"))
	errs.AssertCode(t, alias.ResolveAll(nil), errs.CodeInvalidArgument)
}

func TestSetConfig_RebuildsAndMigrates(t *testing.T) {
	reset(t)
	require.NoError(t, alias.Register("real", "a"))
	before := alias.Registry()

	alias.SetConfig(config.NewConfig(config.WithAllowOverriding(false)))

	assert.NotSame(t, before, alias.Registry())
	assert.False(t, alias.Config().AllowOverriding)
	assert.Equal(t, "real", alias.Canonical("a"))
	errs.AssertCode(t, alias.Register("other", "a"), errs.CodeConflict)
}

func TestSetRegistry_PinsUntilUnpinned(t *testing.T) {
	reset(t)
	custom := registry.New(config.DefaultConfig())
	require.NoError(t, custom.RegisterAlias("real", "pinned"))

	alias.SetRegistry(custom)
	require.True(t, alias.IsRegistryPinned())

	alias.SetConfig(config.NewConfig(config.WithAllowOverriding(false)))
	assert.Same(t, custom, alias.Registry())

	alias.UnpinRegistry()
	alias.SetConfig(config.DefaultConfig())
	assert.NotSame(t, custom, alias.Registry())
	assert.Equal(t, "real", alias.Canonical("pinned"))

	alias.SetRegistry(nil)
	assert.False(t, alias.IsRegistryPinned())
}

func TestPinRegistry(t *testing.T) {
	reset(t)
	b := &countingBuilder{}

	alias.PinRegistry()
	alias.SetBuilder(b)
	assert.Zero(t, b.calls)
	assert.Same(t, b, alias.Builder())

	alias.UnpinRegistry()
	alias.SetBuilder(b)
	assert.Equal(t, 1, b.calls)

	alias.SetBuilder(nil)
	assert.Same(t, b, alias.Builder())
}

func TestSetAll_NilRegistryBuildsUnpinned(t *testing.T) {
	reset(t)
	require.NoError(t, alias.Register("real", "a"))
	b := &countingBuilder{}

	alias.SetAll(nil, nil, b)

	assert.Equal(t, 1, b.calls)
	assert.False(t, alias.IsRegistryPinned())
	assert.Equal(t, "real", alias.Canonical("a"))
	assert.True(t, alias.Config().AllowOverriding)
}

func TestNilRegistryFromBuilderPanics(t *testing.T) {
	reset(t)
	defer reset(t)

	assert.PanicsWithValue(t, alias.ErrNilRegistry, func() {
		alias.SetBuilder(nilBuilder{})
	})
	assert.PanicsWithValue(t, alias.ErrNilRegistry, func() {
		alias.SetAll(nil, nil, nilBuilder{})
	})
}

func TestConcurrentReadsDuringReconfiguration(t *testing.T) {
	reset(t)
	require.NoError(t, alias.Register("real", "a"))

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 1000 {
				if got := alias.Canonical("a"); got != "real" {
					t.Errorf("Canonical(a) = %q, want real", got)
					return
				}
			}
		}()
	}
	for range 50 {
		alias.SetConfig(config.DefaultConfig())
	}
	wg.Wait()
}
