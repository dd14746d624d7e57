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
	"github.com/gobwas/glob"
	"github.com/samber/oops"

	"dirpx.dev/alias/apis"
	"dirpx.dev/alias/errs"
)

// NameSeparator separates name segments for glob matching: "*" stays within
// a segment, "**" crosses segments.
const NameSeparator = '.'

// NewPruneStrategy creates an apis.Strategy that drops every name matching
// one of the glob patterns. All patterns are compiled up front.
func NewPruneStrategy(patterns ...string) (apis.Strategy, error) {
	globs := make([]glob.Glob, 0, len(patterns))
	for _, pattern := range patterns {
		if pattern == "" {
			return nil, errs.InvalidArgument("pattern", "must not be empty")
		}
		compiled, err := glob.Compile(pattern, NameSeparator)
		if err != nil {
			return nil, oops.Code(errs.CodeInvalidArgument).
				With("pattern", pattern).
				Wrapf(err, "compile prune pattern")
		}
		globs = append(globs, compiled)
	}
	return pruneStrategy{globs: globs}, nil
}

// pruneStrategy is immutable after construction.
type pruneStrategy struct {
	globs []glob.Glob
}

// Ensure pruneStrategy implements apis.Strategy.
var _ apis.Strategy = pruneStrategy{}

// Apply drops name if any pattern matches it.
func (s pruneStrategy) Apply(name string) (string, bool) {
	for _, g := range s.globs {
		if g.Match(name) {
			return "", false
		}
	}
	return name, true
}
