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

package registry_test

import (
	"fmt"
	"runtime"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"dirpx.dev/alias/config"
	"dirpx.dev/alias/registry"
	"dirpx.dev/alias/resolver"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// TestConcurrentRegisterAndResolve verifies that every operation is race-free
// and that the map never holds a cycle under concurrent use.
func TestConcurrentRegisterAndResolve(t *testing.T) {
	reg := registry.New(config.DefaultConfig())

	pool := make([]string, 12)
	for i := range pool {
		pool[i] = fmt.Sprintf("n%d", i)
	}

	wg := sync.WaitGroup{}
	workers := runtime.GOMAXPROCS(0) * 2

	// Writers
	wg.Add(workers)
	for w := range workers {
		go func(id int) {
			defer wg.Done()
			for i := range 2000 {
				name := pool[(i*7+id)%len(pool)]
				alias := pool[(i*3+id*5)%len(pool)]
				if i%5 == 0 {
					_ = reg.RemoveAlias(alias)
					continue
				}
				_ = reg.RegisterAlias(name, alias)
			}
		}(w)
	}

	// Readers
	wg.Add(workers)
	for w := range workers {
		go func(id int) {
			defer wg.Done()
			for i := range 2000 {
				n := pool[(i+id)%len(pool)]
				if reg.CanonicalName(n) == "" {
					t.Errorf("empty canonical name for %q", n)
					return
				}
				_ = reg.IsAlias(n)
				_ = reg.HasAlias(n, pool[i%len(pool)])
				_ = reg.Aliases(n)
				_ = reg.Entries()
			}
		}(w)
	}

	// Bulk rewrites
	wg.Add(1)
	go func() {
		defer wg.Done()
		for range 200 {
			_ = reg.ResolveAliases(resolver.Identity())
		}
	}()

	wg.Wait()

	// Final consistency checks.
	for _, e := range reg.Entries() {
		require.NotEqual(t, e.Alias, e.Name)
		assert.False(t, reg.HasAlias(e.Alias, e.Name), "cycle through %s -> %s", e.Alias, e.Name)
	}
}

// TestResolveAliasesExcludesWriters checks that a bulk rewrite observes no
// interleaved registrations: the resolver runs under the write lock.
func TestResolveAliasesExcludesWriters(t *testing.T) {
	reg := registry.New(config.DefaultConfig())
	require.NoError(t, reg.RegisterAlias("real", "a"))

	entered := make(chan struct{})
	release := make(chan struct{})
	done := make(chan error, 1)

	var once sync.Once
	res := resolver.Func(func(n string) (string, bool) {
		once.Do(func() {
			close(entered)
			<-release
		})
		return n, true
	})
	go func() { done <- reg.ResolveAliases(res) }()
	<-entered

	registered := make(chan error, 1)
	go func() { registered <- reg.RegisterAlias("real", "b") }()

	select {
	case <-registered:
		t.Fatal("RegisterAlias completed while ResolveAliases held the registry")
	case <-time.After(50 * time.Millisecond):
	}

	close(release)
	require.NoError(t, <-done)
	require.NoError(t, <-registered)
	assert.Equal(t, "real", reg.CanonicalName("b"))
}
