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

// Namer lets a type choose its own metatype name.
//
// When the zero value of a concrete type implements Namer, registration
// without an explicit name uses EntityName instead of the reflected type
// name. The result must be non-empty, constant for the type, and must not
// depend on instance state.
type Namer interface {
	// EntityName returns the canonical, type-level name for this entity.
	EntityName() string
}
