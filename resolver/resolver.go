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

package resolver

import (
	"dirpx.dev/alias/apis"
)

// New constructs an apis.Resolver that applies the given strategies in order,
// each one rewriting the output of the previous. Nil strategies are ignored.
// The returned resolver is safe for concurrent use provided strategies
// themselves are safe for concurrent Apply calls.
func New(strategies ...apis.Strategy) apis.Resolver {
	// Filter out nils to avoid nil-interface panics on call sites.
	out := make([]apis.Strategy, 0, len(strategies))
	for _, s := range strategies {
		if s != nil {
			out = append(out, s)
		}
	}
	return chain{strats: out}
}

// Identity returns a resolver that maps every name to itself.
func Identity() apis.Resolver {
	return chain{}
}

// Func adapts fn to apis.Resolver. A nil fn yields a nil resolver so the
// registry can reject it.
func Func(fn func(string) (string, bool)) apis.Resolver {
	if fn == nil {
		return nil
	}
	return apis.ResolverFunc(fn)
}

// chain is an immutable, order-preserving pipeline of strategies.
type chain struct {
	strats []apis.Strategy
}

// ResolveName runs every strategy over name in order.
// It stops with ("", false) as soon as a strategy drops the name.
func (r chain) ResolveName(name string) (string, bool) {
	for _, s := range r.strats {
		next, keep := s.Apply(name)
		if !keep {
			return "", false
		}
		name = next
	}
	return name, true
}
