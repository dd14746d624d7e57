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

// Resolver maps a raw name (for example one holding placeholders) to its
// resolved form. A false result means the name has no resolution.
// Resolvers must be pure: the registry may call them while holding its lock.
type Resolver interface {
	ResolveName(name string) (resolved string, ok bool)
}

// ResolverFunc adapts an ordinary function to the Resolver interface.
type ResolverFunc func(name string) (string, bool)

// ResolveName calls f(name).
func (f ResolverFunc) ResolveName(name string) (string, bool) {
	return f(name)
}
