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

import "log/slog"

// Config carries registry policy knobs.
// It is passed by value and should be treated as immutable by implementations.
type Config struct {
	// AllowOverriding controls whether an alias already bound to one name
	// may be rebound to a different name. If false, such registrations fail.
	AllowOverriding bool

	// Logger receives debug and info records about registry mutations.
	// A nil Logger disables logging.
	Logger *slog.Logger

	// Observer, when non-nil, is notified about registry mutations.
	Observer Observer
}
