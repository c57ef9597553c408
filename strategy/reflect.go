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
	"path"
	"reflect"
	"strings"
	"sync"

	"dirpx.dev/meta/apis"
	uref "dirpx.dev/meta/utils/reflect"
)

// NewReflectStrategy creates an apis.Strategy that derives a metatype name
// from the Go type itself, with memoization.
func NewReflectStrategy() apis.Strategy {
	return reflectStrategy{}
}

// reflectStrategy is the universal fallback. It unwraps pointers via
// Normalize, strips generic instantiation parameters and yields "Type" or,
// with QualifiedNames, "pkg.Type". Builtins are hidden unless IncludeBuiltins.
type reflectStrategy struct{}

var _ apis.Strategy = (*reflectStrategy)(nil)

// cacheKey ensures memoization respects all config knobs that affect naming.
type cacheKey struct {
	t              reflect.Type
	includeBuiltin bool
	qualified      bool
	maxUnwrap      int16
}

// typeNameCache caches derived names by (type, config knobs).
var typeNameCache sync.Map // key: cacheKey, val: string

// TryResolve derives the name for v's dynamic type.
func (reflectStrategy) TryResolve(v any, cfg apis.Config) (string, bool) {
	if v == nil {
		return "", false
	}
	return byType(reflect.TypeOf(v), cfg)
}

// TryResolveType derives the name for t.
func (reflectStrategy) TryResolveType(t reflect.Type, cfg apis.Config) (string, bool) {
	if t == nil {
		return "", false
	}
	return byType(t, cfg)
}

// byType derives the name for t with memoization. An empty name is not
// handled, so a chain can still fall through to later strategies.
func byType(t reflect.Type, cfg apis.Config) (string, bool) {
	key := cacheKey{
		t:              t,
		includeBuiltin: cfg.IncludeBuiltins,
		qualified:      cfg.QualifiedNames,
		maxUnwrap:      int16(cfg.MaxUnwrap),
	}
	if v, ok := typeNameCache.Load(key); ok {
		name := v.(string)
		return name, name != ""
	}

	name := derive(t, cfg)
	typeNameCache.Store(key, name)
	return name, name != ""
}

func derive(t reflect.Type, cfg apis.Config) string {
	base, err := uref.Normalize(t, cfg)
	if err != nil {
		return ""
	}
	name := stripTypeParams(base.Name())
	p := base.PkgPath()
	switch {
	case p == "" && !cfg.IncludeBuiltins:
		return ""
	case p != "" && cfg.QualifiedNames:
		return path.Base(p) + "." + name
	}
	return name
}

// stripTypeParams removes generic type instantiation suffix: "T[int,string]" -> "T".
func stripTypeParams(s string) string {
	if i := strings.IndexByte(s, '['); i >= 0 {
		return s[:i]
	}
	return s
}
