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
	"log/slog"

	"dirpx.dev/alias/apis"
)

const (
	// DefaultAllowOverriding represents the default for AllowOverriding.
	// When true, an alias may be rebound to a different name.
	DefaultAllowOverriding = true
)

// NewConfig constructs an apis.Config from the given options.
func NewConfig(opts ...Option) apis.Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// DefaultConfig is the default configuration used when none is provided.
func DefaultConfig() apis.Config {
	return apis.Config{
		AllowOverriding: DefaultAllowOverriding,
	}
}

// Option is a functional option that mutates an apis.Config during construction.
type Option func(*apis.Config)

// WithAllowOverriding sets the AllowOverriding option.
func WithAllowOverriding(allow bool) Option {
	return func(c *apis.Config) {
		c.AllowOverriding = allow
	}
}

// WithLogger sets the logger used for registry mutations.
func WithLogger(logger *slog.Logger) Option {
	return func(c *apis.Config) {
		c.Logger = logger
	}
}

// WithObserver sets the observer notified about registry mutations.
func WithObserver(obs apis.Observer) Option {
	return func(c *apis.Config) {
		c.Observer = obs
	}
}
