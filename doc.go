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

// Package meta is the process-wide entry point to metatype naming and
// registration.
//
// It keeps one read-mostly snapshot holding four layers:
//
//   - Config: naming and registration knobs (see apis.Config).
//   - Registry: explicit type->name aliases (Alias).
//   - Resolver: the naming chain used by Name and NameOfType. The default
//     chain asks apis.Namer first, then the alias registry, then falls back
//     to the Go type name.
//   - Builder: builds Registry and Resolver for a Config.
//
// Readers load the snapshot atomically and never lock:
//
//	name := meta.Name(obj)
//
// Writers (SetConfig, SetBuilder, SetRegistry, SetResolver, SetAll) take a
// short build lock, derive a new snapshot and publish it. SetRegistry and
// SetResolver pin the installed layer so later rebuilds keep it until it is
// unpinned.
//
// # Metatypes
//
// Next to the naming layers, the package holds one metatype.Registry per
// base capability. A base is an interface type; registered concrete types
// are created by name:
//
//	func init() {
//		meta.Register[zoo.Cat, zoo.Animal]("Cat")
//		meta.RegisterType[zoo.Duck, zoo.Animal]() // "Duck"
//	}
//
//	a, err := meta.Create[zoo.Animal]("Cat")
//	...
//	defer meta.Destroy(a)
//
// Registries built directly with metatype.New are independent of this
// package and are the better fit for tests and libraries.
package meta
