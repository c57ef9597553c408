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

package identity

import (
	"reflect"
	"sync"

	"dirpx.dev/meta/apis"
)

var (
	// named caches full identities by type.
	named sync.Map // key: reflect.Type, val: apis.Identity
	// unnamed caches bare hashes by type.
	unnamed sync.Map // key: reflect.Type, val: uint64
)

// Of returns the named identity of T.
func Of[T any]() apis.Identity {
	return OfType(reflect.TypeFor[T]())
}

// UnnamedOf returns the identity of T without its name.
// The hash equals Of[T]().Hash.
func UnnamedOf[T any]() apis.Identity {
	return UnnamedOfType(reflect.TypeFor[T]())
}

// OfValue returns the named identity of v's dynamic type.
// A nil interface yields the zero Identity.
func OfValue(v any) apis.Identity {
	if v == nil {
		return apis.Identity{}
	}
	return OfType(reflect.TypeOf(v))
}

// OfType returns the named identity of t. A nil type yields the zero Identity.
func OfType(t reflect.Type) apis.Identity {
	if t == nil {
		return apis.Identity{}
	}
	if v, ok := named.Load(t); ok {
		return v.(apis.Identity)
	}
	name := CanonicalName(t)
	id := apis.Identity{Name: name, Hash: hashString(name)}
	named.Store(t, id)
	return id
}

// UnnamedOfType returns the identity of t without its name.
// A nil type yields the zero Identity.
func UnnamedOfType(t reflect.Type) apis.Identity {
	if t == nil {
		return apis.Identity{}
	}
	if v, ok := unnamed.Load(t); ok {
		return apis.Identity{Hash: v.(uint64)}
	}
	h := newFNV()
	writeType(&h, t)
	unnamed.Store(t, h.Sum64())
	return apis.Identity{Hash: h.Sum64()}
}
