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

import (
	"maps"
	"slices"

	"dirpx.dev/alias/apis"
	"dirpx.dev/alias/errs"
)

// ResolveAliases rewrites every alias and every target through res.
//
// Entries are taken from a snapshot in alias order. For each entry:
//   - a name without resolution, or an alias that resolves to its own
//     target, drops the entry;
//   - a changed alias is re-keyed, unless the resolved alias is already
//     bound to the resolved name, in which case only the old key is dropped;
//   - a changed target alone is updated in place.
//
// The rewrite is built on a working copy and published only if every entry
// succeeds, so a failing call leaves the registry unchanged.
func (r *registry) ResolveAliases(res apis.Resolver) error {
	if res == nil {
		return r.reject(OpResolve, errs.InvalidArgument("resolver", "must not be nil"))
	}
	if fn, ok := res.(apis.ResolverFunc); ok && fn == nil {
		return r.reject(OpResolve, errs.InvalidArgument("resolver", "must not be nil"))
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	work := maps.Clone(r.m)
	var rewritten, removed int

	for _, alias := range slices.Sorted(maps.Keys(r.m)) {
		registeredName := r.m[alias]
		resolvedAlias, aliasOK := resolve(res, alias)
		resolvedName, nameOK := resolve(res, registeredName)

		switch {
		case !aliasOK || !nameOK || resolvedAlias == resolvedName:
			delete(work, alias)
			removed++

		case resolvedAlias != alias:
			if existing, ok := work[resolvedAlias]; ok {
				if existing == resolvedName {
					// The resolved alias is already in place; drop the placeholder.
					delete(work, alias)
					removed++
					continue
				}
				return r.reject(OpResolve, errs.ResolvedConflict(resolvedAlias, alias, resolvedName, existing))
			}
			delete(work, alias)
			if hasAlias(work, resolvedAlias, resolvedName) {
				return r.reject(OpResolve, errs.CircularReference(resolvedAlias, resolvedName))
			}
			work[resolvedAlias] = resolvedName
			rewritten++

		case registeredName != resolvedName:
			if hasAlias(work, alias, resolvedName) {
				return r.reject(OpResolve, errs.CircularReference(alias, resolvedName))
			}
			work[alias] = resolvedName
			rewritten++
		}
	}

	r.m = work
	r.log.Debug("aliases resolved", "rewritten", rewritten, "removed", removed, "count", len(work))
	if r.cfg.Observer != nil {
		r.cfg.Observer.AliasesResolved(rewritten, removed)
	}
	return nil
}

// resolve applies res to name. A blank result counts as no resolution.
func resolve(res apis.Resolver, name string) (string, bool) {
	out, ok := res.ResolveName(name)
	if !ok || blank(out) {
		return "", false
	}
	return out, true
}
