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

// Package metatype constructs and destroys polymorphic objects by name.
//
// A Registry[B] is bound to one base capability B, which must be an interface
// type. Concrete types implementing B are registered under a name; later code
// holding only that name (read from a config file, a script, a wire message)
// asks the registry to manufacture an instance behind B, and hands it back to
// Destroy at the end of its life:
//
//	reg := metatype.New[zoo.Animal](config.DefaultConfig(), nil)
//	_ = metatype.Register[zoo.Cat](reg, "Cat")
//	_, _ = metatype.RegisterType[zoo.Duck](reg) // name derived: "Duck"
//	reg.Freeze()
//
//	a, err := reg.Create("Cat")
//	...
//	err = reg.Destroy(a)
//
// # Construction
//
// A registered concrete type C is built from its zero value and always
// handed out as a fresh *C (a pointer type C yields a fresh C). When
// the new instance implements Initializer, Init runs before it is returned;
// an Init failure tears the instance down again and Create fails.
// RegisterFunc accepts an arbitrary constructor and an optional destructor.
//
// # Destruction
//
// Destroy finds the entry that produced the instance through the unnamed
// identity hash of its dynamic type and runs that entry's destructor. The
// default destructor calls Destroyer.Destroy or io.Closer.Close when the
// instance implements one of them. Instances of types the registry does not
// know get the default destructor. Destroy must be called at most once per
// instance; double destruction is not detected.
//
// # Phases and concurrency
//
// Registration mutates the registry and is serialized by an internal mutex.
// Lookups (Create, Destroy, Lookup, Names, ...) load an immutable snapshot
// and never lock, so they are safe from any number of goroutines. Freeze
// ends the registration phase: afterwards Register, Unregister and Reset
// fail with ErrFrozen.
package metatype
