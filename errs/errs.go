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

// Package errs defines the error codes reported by alias registries.
//
// Every error carries an oops code and structured context so callers can
// branch on the failure kind and log it without parsing messages.
package errs

import (
	"github.com/samber/oops"
)

// Error codes for registry failures.
const (
	CodeInvalidArgument   = "INVALID_ARGUMENT"
	CodeConflict          = "ALIAS_CONFLICT"
	CodeCircularReference = "CIRCULAR_REFERENCE"
	CodeNotFound          = "ALIAS_NOT_FOUND"
)

// InvalidArgument reports an empty or missing required argument.
func InvalidArgument(arg, reason string) error {
	return oops.Code(CodeInvalidArgument).
		With("argument", arg).
		Errorf("'%s' %s", arg, reason)
}

// Conflict reports an alias that is already bound to a different name.
func Conflict(alias, name, registeredName string) error {
	return oops.Code(CodeConflict).
		With("alias", alias).
		With("name", name).
		With("registered_name", registeredName).
		Errorf("cannot register alias '%s' for name '%s': it is already registered for name '%s'",
			alias, name, registeredName)
}

// ResolvedConflict reports a resolved alias that collides with an existing
// mapping during a bulk rewrite.
func ResolvedConflict(resolvedAlias, original, resolvedName, registeredName string) error {
	return oops.Code(CodeConflict).
		With("alias", resolvedAlias).
		With("original_alias", original).
		With("name", resolvedName).
		With("registered_name", registeredName).
		Errorf("cannot register resolved alias '%s' (original: '%s') for name '%s': it is already registered for name '%s'",
			resolvedAlias, original, resolvedName, registeredName)
}

// CircularReference reports a registration that would close a cycle.
func CircularReference(alias, name string) error {
	return oops.Code(CodeCircularReference).
		With("alias", alias).
		With("name", name).
		Errorf("cannot register alias '%s' for name '%s': circular reference - '%s' is a direct or indirect alias for '%s' already",
			alias, name, name, alias)
}

// NotFound reports the removal of an alias that is not registered.
func NotFound(alias string) error {
	return oops.Code(CodeNotFound).
		With("alias", alias).
		Errorf("no alias '%s' registered", alias)
}

// Code returns the oops code attached to err, or "" if there is none.
func Code(err error) string {
	if err == nil {
		return ""
	}
	oopsErr, ok := oops.AsOops(err)
	if !ok {
		return ""
	}
	code, _ := oopsErr.Code().(string)
	return code
}

// HasCode reports whether err carries the given code.
func HasCode(err error, code string) bool {
	return err != nil && Code(err) == code
}
