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

package reflect

import (
	"errors"
	"reflect"

	"dirpx.dev/meta/apis"
	"dirpx.dev/meta/config"
)

var (
	// ErrReflectNilType is returned when a nil reflect.Type is provided.
	ErrReflectNilType = errors.New("reflect: nil reflect.Type provided")
	// ErrReflectTypeNotNamed indicates that the provided type (after unwrapping
	// pointers) is not a named type (e.g., anonymous struct, func, []T).
	ErrReflectTypeNotNamed = errors.New("reflect: type has no name")
)

// Normalize unwraps pointers and returns the nearest named type, or an error
// if none is found within cfg.MaxUnwrap steps.
//
// Only pointers are unwrapped: a registered concrete type is usually spelled
// *T, and T is the thing that carries a name. Slices, maps and the like are
// not concrete types in the metatype sense and are reported as not named.
//
// If MaxUnwrap <= 0, DefaultMaxUnwrap is used.
func Normalize(t reflect.Type, cfg apis.Config) (reflect.Type, error) {
	if t == nil {
		return nil, ErrReflectNilType
	}
	maxUnwrap := cfg.MaxUnwrap
	if maxUnwrap <= 0 {
		maxUnwrap = config.DefaultMaxUnwrap
	}

	for i := 0; t.Kind() == reflect.Pointer && t.Name() == "" && i < maxUnwrap; i++ {
		t = t.Elem()
	}

	if t.Name() != "" {
		return t, nil
	}
	return nil, ErrReflectTypeNotNamed
}

// Indirect returns the number of pointer levels wrapped around t's nearest
// named type, or -1 if Normalize fails.
func Indirect(t reflect.Type, cfg apis.Config) int {
	base, err := Normalize(t, cfg)
	if err != nil {
		return -1
	}
	n := 0
	for ; t != base; t = t.Elem() {
		n++
	}
	return n
}
