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

// Resolver derives the metatype name of a value or type.
// The default resolver tries, in order, Namer, the alias Registry and the
// reflected Go type name. An empty result means no name could be derived.
type Resolver interface {
	Resolve(v any, cfg Config) string
	ResolveType(t reflect.Type, cfg Config) string
}
