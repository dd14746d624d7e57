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

package strategy_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dirpx.dev/alias/errs"
	"dirpx.dev/alias/strategy"
)

func TestPlaceholderStrategy(t *testing.T) {
	s := strategy.NewPlaceholderStrategy(map[string]string{
		"env":    "prod",
		"region": "eu",
		"nested": "${env}",
	})

	tests := []struct {
		in   string
		want string
		keep bool
	}{
		{in: "plain", want: "plain", keep: true},
		{in: "${env}.db", want: "prod.db", keep: true},
		{in: "${env}-${region}", want: "prod-eu", keep: true},
		{in: "${missing:fallback}.db", want: "fallback.db", keep: true},
		{in: "${env:fallback}", want: "prod", keep: true},
		{in: "${missing:}x", want: "x", keep: true},
		{in: "${nested}", want: "${env}", keep: true},
		{in: "${unterminated", want: "${unterminated", keep: true},
		{in: "${missing}.db", want: "", keep: false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, keep := s.Apply(tt.in)
			assert.Equal(t, tt.keep, keep)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPlaceholderStrategy_IgnoreUnresolvable(t *testing.T) {
	s := strategy.NewPlaceholderStrategy(
		map[string]string{"env": "prod"},
		strategy.WithIgnoreUnresolvable(true),
	)

	got, keep := s.Apply("${env}.${missing}")
	assert.True(t, keep)
	assert.Equal(t, "prod.${missing}", got)
}

func TestPlaceholderStrategy_Lookup(t *testing.T) {
	lookup := func(key string) (string, bool) {
		if key == "HOST" {
			return "db1", true
		}
		return "", false
	}
	s := strategy.NewPlaceholderStrategy(map[string]string{"HOST": "vars-win"}, strategy.WithLookup(lookup))

	got, keep := s.Apply("${HOST}")
	assert.True(t, keep)
	assert.Equal(t, "vars-win", got)

	s = strategy.NewPlaceholderStrategy(nil, strategy.WithLookup(lookup))
	got, keep = s.Apply("${HOST}")
	assert.True(t, keep)
	assert.Equal(t, "db1", got)
}

func TestPlaceholderStrategy_CopiesVars(t *testing.T) {
	vars := map[string]string{"env": "prod"}
	s := strategy.NewPlaceholderStrategy(vars)
	vars["env"] = "dev"

	got, _ := s.Apply("${env}")
	assert.Equal(t, "prod", got)
}

func TestMappingStrategy(t *testing.T) {
	renames := map[string]string{"legacy": "current"}
	s := strategy.NewMappingStrategy(renames)
	renames["other"] = "x"

	got, keep := s.Apply("legacy")
	assert.True(t, keep)
	assert.Equal(t, "current", got)

	got, keep = s.Apply("other")
	assert.True(t, keep)
	assert.Equal(t, "other", got)
}

func TestPruneStrategy(t *testing.T) {
	s, err := strategy.NewPruneStrategy("tmp.*", "**.internal", "scratch")
	require.NoError(t, err)

	tests := []struct {
		in   string
		keep bool
	}{
		{in: "tmp.cache", keep: false},
		{in: "tmp.cache.v2", keep: true},
		{in: "a.b.internal", keep: false},
		{in: "scratch", keep: false},
		{in: "scratchpad", keep: true},
		{in: "dataSource", keep: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, keep := s.Apply(tt.in)
			assert.Equal(t, tt.keep, keep)
			if keep {
				assert.Equal(t, tt.in, got)
			}
		})
	}
}

func TestPruneStrategy_InvalidPattern(t *testing.T) {
	_, err := strategy.NewPruneStrategy("[unclosed")
	errs.AssertCode(t, err, errs.CodeInvalidArgument)
	errs.AssertContext(t, err, "pattern", "[unclosed")

	_, err = strategy.NewPruneStrategy("")
	errs.AssertCode(t, err, errs.CodeInvalidArgument)
}

func TestPruneStrategy_NoPatternsKeepsEverything(t *testing.T) {
	s, err := strategy.NewPruneStrategy()
	require.NoError(t, err)

	got, keep := s.Apply("anything")
	assert.True(t, keep)
	assert.Equal(t, "anything", got)
}
