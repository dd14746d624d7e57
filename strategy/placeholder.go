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
	"strings"

	"dirpx.dev/alias/apis"
)

const (
	// PlaceholderPrefix opens a placeholder.
	PlaceholderPrefix = "${"
	// PlaceholderSuffix closes a placeholder.
	PlaceholderSuffix = "}"
	// ValueSeparator splits a placeholder key from its default value.
	ValueSeparator = ":"
)

// PlaceholderOption configures a placeholder strategy.
type PlaceholderOption func(*placeholderStrategy)

// WithIgnoreUnresolvable keeps unresolvable placeholders verbatim instead of
// dropping the whole name.
func WithIgnoreUnresolvable(ignore bool) PlaceholderOption {
	return func(s *placeholderStrategy) {
		s.ignoreUnresolvable = ignore
	}
}

// WithLookup sets a fallback lookup consulted for keys missing from vars,
// for example os.LookupEnv.
func WithLookup(lookup func(key string) (string, bool)) PlaceholderOption {
	return func(s *placeholderStrategy) {
		s.lookup = lookup
	}
}

// NewPlaceholderStrategy creates an apis.Strategy that expands ${key} and
// ${key:default} placeholders from vars. Expanded values are not expanded
// again.
func NewPlaceholderStrategy(vars map[string]string, opts ...PlaceholderOption) apis.Strategy {
	s := &placeholderStrategy{vars: make(map[string]string, len(vars))}
	for k, v := range vars {
		s.vars[k] = v
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s
}

// placeholderStrategy owns a private copy of its vars, so it is safe for
// concurrent use.
type placeholderStrategy struct {
	vars               map[string]string
	lookup             func(string) (string, bool)
	ignoreUnresolvable bool
}

// Ensure placeholderStrategy implements apis.Strategy.
var _ apis.Strategy = (*placeholderStrategy)(nil)

// Apply expands every placeholder in name.
func (s *placeholderStrategy) Apply(name string) (string, bool) {
	if !strings.Contains(name, PlaceholderPrefix) {
		return name, true
	}

	var b strings.Builder
	rest := name
	for {
		start := strings.Index(rest, PlaceholderPrefix)
		if start < 0 {
			b.WriteString(rest)
			break
		}
		end := strings.Index(rest[start:], PlaceholderSuffix)
		if end < 0 {
			// Unterminated placeholder is literal text.
			b.WriteString(rest)
			break
		}
		end += start

		b.WriteString(rest[:start])
		expr := rest[start+len(PlaceholderPrefix) : end]
		value, ok := s.value(expr)
		if !ok {
			if !s.ignoreUnresolvable {
				return "", false
			}
			value = rest[start : end+len(PlaceholderSuffix)]
		}
		b.WriteString(value)
		rest = rest[end+len(PlaceholderSuffix):]
	}
	return b.String(), true
}

// value resolves a placeholder expression "key" or "key:default".
func (s *placeholderStrategy) value(expr string) (string, bool) {
	key, def, hasDefault := strings.Cut(expr, ValueSeparator)
	if v, ok := s.vars[key]; ok {
		return v, true
	}
	if s.lookup != nil {
		if v, ok := s.lookup(key); ok {
			return v, true
		}
	}
	if hasDefault {
		return def, true
	}
	return "", false
}
