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
	"errors"
	"fmt"
	"io"
	"reflect"

	"dirpx.dev/meta/apis"
)

// Initializer is implemented by concrete types that need more than their
// zero value to be usable. Init runs once, right after allocation.
type Initializer interface {
	Init() error
}

// Destroyer is implemented by concrete types with teardown logic.
type Destroyer interface {
	Destroy() error
}

// Metatype is one registered entry: a name bound to a constructor and a
// destructor for a single concrete type. It is immutable.
type Metatype[B any] struct {
	name    string
	id      apis.Identity
	create  func() B
	destroy func(B) error
}

// Name returns the registered name.
func (m *Metatype[B]) Name() string { return m.name }

// Identity returns the identity of the concrete type, or the zero Identity
// for entries registered through RegisterFunc.
func (m *Metatype[B]) Identity() apis.Identity { return m.id }

// Create builds a new instance. The caller owns it.
func (m *Metatype[B]) Create() (B, error) {
	var zero B
	b := m.create()
	if isNil(b) {
		return zero, fmt.Errorf("%w: constructor of %q returned nil", ErrNilInstance, m.name)
	}
	if in, ok := any(b).(Initializer); ok {
		if err := in.Init(); err != nil {
			// Nothing escapes a failed construction.
			if derr := m.destroy(b); derr != nil {
				err = errors.Join(err, derr)
			}
			return zero, fmt.Errorf("%w: %q: %w", ErrInit, m.name, err)
		}
	}
	return b, nil
}

// Destroy releases an instance created by this entry.
func (m *Metatype[B]) Destroy(b B) error {
	if isNil(b) {
		return ErrNilInstance
	}
	return m.destroy(b)
}

// String returns the entry name.
func (m *Metatype[B]) String() string { return m.name }

// teardown is the default destructor.
func teardown[B any](b B) error {
	switch d := any(b).(type) {
	case Destroyer:
		return d.Destroy()
	case io.Closer:
		return d.Close()
	}
	return nil
}

// isNil reports whether b is a nil interface or wraps a nil pointer-like value.
func isNil[B any](b B) bool {
	v := any(b)
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return rv.IsNil()
	}
	return false
}

// constructor returns an allocation func for concrete type C behind base B,
// and the dynamic type of the values it produces. Instances are always
// pointers: C registers as *C, and *C registers as a fresh *C.
func constructor[C, B any]() (func() B, reflect.Type, error) {
	ct := reflect.TypeFor[C]()
	bt := reflect.TypeFor[B]()

	switch {
	case ct.Kind() == reflect.Interface:
		return nil, nil, fmt.Errorf("%w: %s is an interface", ErrNotImplemented, ct)

	case ct.Kind() == reflect.Pointer && ct.Implements(bt):
		elem := ct.Elem()
		return func() B { return reflect.New(elem).Interface().(B) }, ct, nil

	case reflect.PointerTo(ct).Implements(bt):
		// Covers value receivers too: the method set of *C includes them.
		return func() B { return any(new(C)).(B) }, reflect.PointerTo(ct), nil
	}
	return nil, nil, fmt.Errorf("%w: %s does not implement %s", ErrNotImplemented, ct, bt)
}
