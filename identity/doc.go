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

// Package identity computes process-stable identities for Go types.
//
// An identity is a (name, hash) pair. The name is a canonical spelling of
// the type that, unlike reflect.Type.String, carries full package import
// paths, so two types named "Cat" in different packages get different
// identities. The hash is 64-bit FNV-1a over that spelling.
//
// Two flavors exist:
//
//	identity.Of[T]()        // {Name: "dirpx.dev/meta/internal/zoo.Cat", Hash: ...}
//	identity.UnnamedOf[T]() // {Name: "", Hash: <same hash>}
//
// The unnamed flavor never builds the name string: it streams the canonical
// spelling straight into the hash state and memoizes the result per
// reflect.Type. Both flavors always agree on Hash.
//
// Hashes are deterministic for the lifetime of a process. They are not
// promised to be stable across builds and must not be persisted. Distinct
// types may collide; collisions are not detected. Types declared inside
// function bodies share the spelling of a same-named type declared in
// another function of the same package, and therefore share a hash.
package identity
