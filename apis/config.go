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

// Config carries read-only knobs for type naming and metatype registration.
// It is passed by value and should be treated as immutable by implementations.
type Config struct {
	// IncludeBuiltins controls whether builtin/no-package named types
	// (e.g., "int", "string") are returned as names. If false, such cases yield "".
	IncludeBuiltins bool

	// MaxUnwrap limits pointer unwrapping depth when searching for the
	// nearest named type of a concrete type.
	MaxUnwrap int

	// QualifiedNames makes derived metatype names package-qualified
	// ("zoo.Cat") instead of bare type names ("Cat").
	QualifiedNames bool

	// AllowOverwrite lets a metatype registration replace an existing entry
	// with the same name. If false, duplicates are rejected.
	AllowOverwrite bool
}
