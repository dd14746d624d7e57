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

package builder

import (
	"log/slog"

	"dirpx.dev/alias/apis"
	"dirpx.dev/alias/errs"
	"dirpx.dev/alias/registry"
)

// New creates and returns a new instance of an apis.Builder.
func New() apis.Builder {
	return &builder{}
}

// builder is an empty struct to be used as a receiver for builder methods.
type builder struct{}

// BuildRegistry builds and returns a new apis.Registry for cfg. If a
// pre-existing registry is provided, its entries are replayed into the new
// registry. Entries the new policy rejects are logged and skipped.
func (b *builder) BuildRegistry(cfg apis.Config, prev apis.Registry) apis.Registry {
	nreg := registry.New(cfg)
	if prev == nil {
		return nreg
	}
	for _, e := range prev.Entries() {
		if err := nreg.RegisterAlias(e.Name, e.Alias); err != nil && cfg.Logger != nil {
			cfg.Logger.Warn("alias dropped during migration",
				slog.String("alias", e.Alias),
				slog.String("name", e.Name),
				slog.String("code", errs.Code(err)),
				slog.String("error", err.Error()),
			)
		}
	}
	return nreg
}
