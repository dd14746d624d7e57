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

package strategy

import (
	"maps"

	"dirpx.dev/alias/apis"
)

// NewMappingStrategy creates an apis.Strategy that renames exact matches
// according to renames. Names without an entry pass through unchanged.
func NewMappingStrategy(renames map[string]string) apis.Strategy {
	return mappingStrategy{renames: maps.Clone(renames)}
}

// mappingStrategy holds a private, read-only rename table.
type mappingStrategy struct {
	renames map[string]string
}

// Ensure mappingStrategy implements apis.Strategy.
var _ apis.Strategy = mappingStrategy{}

// Apply returns the rename for name, or name itself.
func (s mappingStrategy) Apply(name string) (string, bool) {
	if to, ok := s.renames[name]; ok {
		return to, true
	}
	return name, true
}
