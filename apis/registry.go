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

import "reflect"

// Registry holds explicit metatype names for concrete Go types (aliases).
// An alias overrides the reflected type name when a metatype name is
// derived, e.g. to keep "Mallard" stable across a rename of zoo.Duck.
type Registry interface {
	// Register binds t, after pointer normalization, to name. Binding the
	// same pair twice is a no-op; rebinding t or reusing name fails.
	Register(t reflect.Type, name string) error
	// Lookup returns the alias of t, if any.
	Lookup(t reflect.Type) (name string, ok bool)
	// Entries returns every alias, in no particular order.
	Entries() []Entry
	// Count returns the number of aliases.
	Count() int
	// Reset drops every alias.
	Reset()
}

// Entry is one alias.
type Entry struct {
	Type reflect.Type
	Name string
}
