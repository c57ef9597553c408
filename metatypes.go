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

package meta

import (
	"reflect"
	"sync"

	"dirpx.dev/meta/apis"
	"dirpx.dev/meta/identity"
	"dirpx.dev/meta/metatype"
)

// bases holds one default registry per base capability, keyed by the
// reflect.Type of B.
var bases sync.Map

// Metatypes returns the process-wide registry for base B, creating it on
// first use with the then-current Config. B must be an interface type.
func Metatypes[B any]() *metatype.Registry[B] {
	bt := reflect.TypeFor[B]()
	if r, ok := bases.Load(bt); ok {
		return r.(*metatype.Registry[B])
	}
	r, _ := bases.LoadOrStore(bt, metatype.New[B](Config(), liveResolver{}))
	return r.(*metatype.Registry[B])
}

// Register registers concrete type C under name in Metatypes[B]().
//
//	meta.Register[zoo.Cat, zoo.Animal]("Cat")
func Register[C, B any](name string) error {
	return metatype.Register[C](Metatypes[B](), name)
}

// RegisterType registers C under its derived name and returns that name.
// Aliases installed with Alias take part in the derivation.
func RegisterType[C, B any]() (string, error) {
	return metatype.RegisterType[C](Metatypes[B]())
}

// Create instantiates the metatype registered under name for base B.
func Create[B any](name string) (B, error) {
	return Metatypes[B]().Create(name)
}

// Destroy tears down an instance obtained from Create.
func Destroy[B any](b B) error {
	return Metatypes[B]().Destroy(b)
}

// Identity returns the named identity of T.
func Identity[T any]() apis.Identity { return identity.Of[T]() }

// UnnamedIdentity returns the identity of T without its canonical name.
func UnnamedIdentity[T any]() apis.Identity { return identity.UnnamedOf[T]() }

// liveResolver follows the current snapshot, so registries created early
// still see aliases and resolvers installed later.
type liveResolver struct{}

func (liveResolver) Resolve(v any, _ apis.Config) string { return Name(v) }

func (liveResolver) ResolveType(t reflect.Type, _ apis.Config) string { return NameOfType(t) }
