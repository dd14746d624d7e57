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

package config

import (
	"os"

	"github.com/samber/oops"
	"gopkg.in/yaml.v3"

	"dirpx.dev/alias/apis"
	"dirpx.dev/alias/errs"
)

// File is an alias definition file.
//
//	allowOverriding: false
//	aliases:
//	  - name: dataSource
//	    alias: ds
//	  - name: ds
//	    alias: ${env}.db
//	vars:
//	  env: prod
//	renames:
//	  legacyDataSource: dataSource
//	prune:
//	  - "tmp.*"
type File struct {
	// AllowOverriding overrides DefaultAllowOverriding when set.
	AllowOverriding *bool `yaml:"allowOverriding"`
	// Aliases are registered in file order.
	Aliases []Definition `yaml:"aliases"`
	// Vars feed placeholder expansion.
	Vars map[string]string `yaml:"vars"`
	// Renames map exact names to replacements.
	Renames map[string]string `yaml:"renames"`
	// Prune lists glob patterns of names to drop.
	Prune []string `yaml:"prune"`
}

// Definition is a single alias declaration.
type Definition struct {
	Name  string `yaml:"name"`
	Alias string `yaml:"alias"`
}

// LoadFile reads and parses the alias definition file at path.
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is operator-supplied
	if err != nil {
		return nil, oops.With("path", path).Wrapf(err, "read alias file")
	}
	f, err := ParseFile(data)
	if err != nil {
		return nil, oops.With("path", path).Wrap(err)
	}
	return f, nil
}

// ParseFile parses an alias definition document.
// Every definition must carry both a name and an alias.
func ParseFile(data []byte) (*File, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, oops.Code(errs.CodeInvalidArgument).Wrapf(err, "parse alias file")
	}
	for i, d := range f.Aliases {
		if d.Name == "" {
			return nil, oops.Code(errs.CodeInvalidArgument).
				With("index", i).
				Errorf("alias definition %d: 'name' must not be empty", i)
		}
		if d.Alias == "" {
			return nil, oops.Code(errs.CodeInvalidArgument).
				With("index", i).
				Errorf("alias definition %d: 'alias' must not be empty", i)
		}
	}
	return &f, nil
}

// Options returns the config options the file implies.
func (f *File) Options() []Option {
	if f == nil || f.AllowOverriding == nil {
		return nil
	}
	return []Option{WithAllowOverriding(*f.AllowOverriding)}
}

// Apply registers every definition in file order.
// It stops at the first failing registration.
func (f *File) Apply(reg apis.Registry) error {
	if f == nil {
		return nil
	}
	for i, d := range f.Aliases {
		if err := reg.RegisterAlias(d.Name, d.Alias); err != nil {
			return oops.With("index", i).Wrap(err)
		}
	}
	return nil
}
