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

import "slices"

// hasAlias reports whether alias is reachable from name over reverse edges,
// i.e. whether following the chain from alias eventually reaches name.
func hasAlias(m map[string]string, name, alias string) bool {
	found := false
	walkAliases(m, name, func(a string) bool {
		found = a == alias
		return !found
	})
	return found
}

// walkAliases visits every direct and transitive alias of name depth-first.
// Siblings are visited in lexical order and each alias at most once, so a
// corrupted map with a cycle still terminates. visit returns false to stop.
func walkAliases(m map[string]string, name string, visit func(alias string) bool) {
	reverse := make(map[string][]string)
	for alias, target := range m {
		reverse[target] = append(reverse[target], alias)
	}

	seen := map[string]struct{}{name: {}}
	stack := pushSorted(nil, reverse[name])
	for len(stack) > 0 {
		alias := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if _, ok := seen[alias]; ok {
			continue
		}
		seen[alias] = struct{}{}
		if !visit(alias) {
			return
		}
		stack = pushSorted(stack, reverse[alias])
	}
}

// pushSorted pushes names so that the lexically smallest is popped first.
func pushSorted(stack, names []string) []string {
	slices.Sort(names)
	for i := len(names) - 1; i >= 0; i-- {
		stack = append(stack, names[i])
	}
	return stack
}

// canonicalName follows forward edges from name. A chain without cycles has
// at most len(m) edges, which bounds the walk.
func canonicalName(m map[string]string, name string) string {
	current := name
	for range len(m) + 1 {
		next, ok := m[current]
		if !ok {
			return current
		}
		current = next
	}
	return current
}
