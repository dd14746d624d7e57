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

// Observer receives notifications about registry mutations.
// Callbacks run while the registry holds its write lock, so they must be
// fast and must not call back into the registry.
type Observer interface {
	// AliasRegistered is called after alias has been bound to name.
	// overridden is true when alias previously pointed elsewhere.
	AliasRegistered(alias, name string, overridden bool)
	// AliasRemoved is called after the mapping for alias has been deleted.
	AliasRemoved(alias string)
	// OperationRejected is called when op fails with the given error code.
	OperationRejected(op, code string)
	// AliasesResolved is called after a successful bulk rewrite.
	AliasesResolved(rewritten, removed int)
}
