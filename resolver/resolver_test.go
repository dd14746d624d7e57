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

package resolver_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"dirpx.dev/alias/apis"
	"dirpx.dev/alias/resolver"
)

// step is a strategy defined by a func.
type step func(string) (string, bool)

func (s step) Apply(name string) (string, bool) { return s(name) }

func TestNew_AppliesStrategiesInOrder(t *testing.T) {
	res := resolver.New(
		step(func(n string) (string, bool) { return n + ".a", true }),
		nil,
		step(func(n string) (string, bool) { return strings.ToUpper(n), true }),
	)

	got, ok := res.ResolveName("x")
	assert.True(t, ok)
	assert.Equal(t, "X.A", got)
}

func TestNew_DropStopsChain(t *testing.T) {
	called := false
	res := resolver.New(
		step(func(string) (string, bool) { return "", false }),
		step(func(n string) (string, bool) { called = true; return n, true }),
	)

	got, ok := res.ResolveName("x")
	assert.False(t, ok)
	assert.Empty(t, got)
	assert.False(t, called, "strategy after a drop must not run")
}

func TestIdentity(t *testing.T) {
	got, ok := resolver.Identity().ResolveName("${x}")
	assert.True(t, ok)
	assert.Equal(t, "${x}", got)
}

func TestFunc(t *testing.T) {
	assert.Nil(t, resolver.Func(nil))

	res := resolver.Func(func(n string) (string, bool) { return n + "!", true })
	var _ apis.Resolver = res

	got, ok := res.ResolveName("hi")
	assert.True(t, ok)
	assert.Equal(t, "hi!", got)
}
