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

package metatype

import (
	"fmt"
	"reflect"

	"dirpx.dev/meta/identity"
)

// Register registers concrete type C under name in r.
//
//	err := metatype.Register[zoo.Cat](reg, "Cat")
//
// C (or *C) must implement B. Instances are fresh zero values of C.
func Register[C, B any](r *Registry[B], name string) error {
	m, err := newMetatype[C, B](name)
	if err != nil {
		return err
	}
	return r.add(m)
}

// RegisterType registers concrete type C under a derived name and returns it.
// The name comes from r's resolver: apis.Namer on C, then an explicit alias,
// then the Go type name ("Cat", or "zoo.Cat" with QualifiedNames).
func RegisterType[C, B any](r *Registry[B]) (string, error) {
	ct := reflect.TypeFor[C]()
	name := r.res.ResolveType(ct, r.cfg)
	if name == "" {
		return "", fmt.Errorf("%w: cannot derive a name for %s", ErrEmptyName, ct)
	}
	return name, Register[C](r, name)
}

// MustRegister is like Register but panics on error.
// It is meant for package init blocks.
func MustRegister[C, B any](r *Registry[B], name string) {
	if err := Register[C](r, name); err != nil {
		panic(err)
	}
}

func newMetatype[C, B any](name string) (*Metatype[B], error) {
	if name == "" {
		return nil, ErrEmptyName
	}
	create, dyn, err := constructor[C, B]()
	if err != nil {
		return nil, fmt.Errorf("%q: %w", name, err)
	}
	return &Metatype[B]{
		name:    name,
		id:      identity.OfType(dyn),
		create:  create,
		destroy: teardown[B],
	}, nil
}
