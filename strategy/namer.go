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

package strategy

import (
	"reflect"

	"dirpx.dev/meta/apis"
)

// NewNamerStrategy creates an apis.Strategy that uses apis.Namer.
func NewNamerStrategy() apis.Strategy {
	return &namerStrategy{}
}

// namerStrategy is a zero-cost fast path: if v implements apis.Namer,
// return its EntityName() and stop the chain.
type namerStrategy struct{}

// Ensure namerStrategy implements apis.Strategy.
var _ apis.Strategy = (*namerStrategy)(nil)

var namerType = reflect.TypeFor[apis.Namer]()

// TryResolve checks if v implements apis.Namer and returns its EntityName().
func (*namerStrategy) TryResolve(v any, _ apis.Config) (string, bool) {
	if v == nil {
		return "", false
	}
	if n, ok := v.(apis.Namer); ok {
		if name := n.EntityName(); name != "" {
			return name, true
		}
	}
	return "", false
}

// TryResolveType asks a fresh zero instance of t for its name.
// Namer is a type-level contract, so the zero value answers for the type.
// Pointer types get a non-nil pointer to a zero element.
func (s *namerStrategy) TryResolveType(t reflect.Type, cfg apis.Config) (string, bool) {
	if t == nil || t.Kind() == reflect.Interface {
		return "", false
	}
	switch {
	case t.Kind() == reflect.Pointer && t.Implements(namerType):
		return s.TryResolve(reflect.New(t.Elem()).Interface(), cfg)
	case t.Implements(namerType):
		return s.TryResolve(reflect.New(t).Elem().Interface(), cfg)
	case reflect.PointerTo(t).Implements(namerType):
		return s.TryResolve(reflect.New(t).Interface(), cfg)
	}
	return "", false
}
