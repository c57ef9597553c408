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
	"runtime"
	"sync"
	"testing"

	"dirpx.dev/meta/apis"
	"dirpx.dev/meta/config"
	"dirpx.dev/meta/registry"
)

// Local test types.
type A struct{}
type G[T any] struct{}

type aliased struct{}

type selfNamed struct{}

func (selfNamed) EntityName() string { return "self" }

// cfg returns a convenient baseline Config for tests.
func cfg(opts ...config.Option) apis.Config {
	return config.NewConfig(opts...)
}

func TestReflectStrategy_ByValue(t *testing.T) {
	s := NewReflectStrategy()

	cases := []struct {
		name     string
		val      any
		cfg      apis.Config
		expected string
		handled  bool
	}{
		{"plain struct", A{}, cfg(), "A", true},
		{"ptr", &A{}, cfg(), "A", true},
		{"qualified", &A{}, cfg(config.WithQualifiedNames(true)), "strategy.A", true},
		{"generic strips params", G[int]{}, cfg(), "G", true},
		{"qualified generic", &G[string]{}, cfg(config.WithQualifiedNames(true)), "strategy.G", true},
		{"builtin hidden", 42, cfg(), "", false},
		{"builtin visible", 42, cfg(config.WithIncludeBuiltins(true)), "int", true},
		{"builtin never qualified", "x", cfg(config.WithIncludeBuiltins(true), config.WithQualifiedNames(true)), "string", true},
		{"slice not named", []A{}, cfg(), "", false},
		{"nil", nil, cfg(), "", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := s.TryResolve(tc.val, tc.cfg)
			if got != tc.expected || ok != tc.handled {
				t.Fatalf("TryResolve(%T) = (%q,%v), want (%q,%v)", tc.val, got, ok, tc.expected, tc.handled)
			}
		})
	}
}

func TestReflectStrategy_ByType(t *testing.T) {
	s := NewReflectStrategy()

	if got, ok := s.TryResolveType(reflect.TypeOf(&A{}), cfg()); !ok || got != "A" {
		t.Fatalf("TryResolveType(*A) = (%q,%v), want (A,true)", got, ok)
	}
	if got, ok := s.TryResolveType(nil, cfg()); ok || got != "" {
		t.Fatalf("TryResolveType(nil) = (%q,%v), want ('',false)", got, ok)
	}
}

func TestReflectStrategy_CacheRespectsConfig(t *testing.T) {
	s := NewReflectStrategy()
	typ := reflect.TypeOf(A{})

	// Warm the cache with the bare spelling first.
	if got, _ := s.TryResolveType(typ, cfg()); got != "A" {
		t.Fatalf("bare = %q, want A", got)
	}
	if got, _ := s.TryResolveType(typ, cfg(config.WithQualifiedNames(true))); got != "strategy.A" {
		t.Fatalf("qualified = %q, want strategy.A", got)
	}
	if got, _ := s.TryResolveType(typ, cfg()); got != "A" {
		t.Fatalf("bare again = %q, want A", got)
	}
}

func TestRegistryStrategy(t *testing.T) {
	reg := registry.New(cfg())
	if err := reg.Register(reflect.TypeOf(aliased{}), "Alias"); err != nil {
		t.Fatalf("Register: %v", err)
	}
	s := NewRegistryStrategy(reg)

	if got, ok := s.TryResolve(&aliased{}, cfg()); !ok || got != "Alias" {
		t.Fatalf("TryResolve(*aliased) = (%q,%v), want (Alias,true)", got, ok)
	}
	if got, ok := s.TryResolve(A{}, cfg()); ok || got != "" {
		t.Fatalf("TryResolve(A) = (%q,%v), want ('',false)", got, ok)
	}
	if got, ok := s.TryResolve(nil, cfg()); ok || got != "" {
		t.Fatalf("TryResolve(nil) = (%q,%v), want ('',false)", got, ok)
	}

	empty := NewRegistryStrategy(nil)
	if got, ok := empty.TryResolveType(reflect.TypeOf(aliased{}), cfg()); ok || got != "" {
		t.Fatalf("nil registry: got (%q,%v), want ('',false)", got, ok)
	}
}

func TestNamerBeatsReflect(t *testing.T) {
	typ := reflect.TypeOf(selfNamed{})
	if got, ok := NewNamerStrategy().TryResolveType(typ, cfg()); !ok || got != "self" {
		t.Fatalf("namer = (%q,%v), want (self,true)", got, ok)
	}
	if got, ok := NewReflectStrategy().TryResolveType(typ, cfg()); !ok || got != "selfNamed" {
		t.Fatalf("reflect = (%q,%v), want (selfNamed,true)", got, ok)
	}
}

// TestReflectStrategy_Concurrent verifies memoization is race-free and stable.
func TestReflectStrategy_Concurrent(t *testing.T) {
	s := NewReflectStrategy()
	vals := []any{A{}, &A{}, G[int]{}, &G[string]{}, 1, "x"}
	confs := []apis.Config{cfg(), cfg(config.WithQualifiedNames(true)), cfg(config.WithIncludeBuiltins(true))}

	want := make(map[int]string)
	for i, v := range vals {
		for j, c := range confs {
			name, _ := s.TryResolve(v, c)
			want[i*len(confs)+j] = name
		}
	}

	var wg sync.WaitGroup
	workers := runtime.GOMAXPROCS(0) * 4
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func(id int) {
			defer wg.Done()
			for k := 0; k < 3000; k++ {
				i := (k + id) % len(vals)
				j := k % len(confs)
				got, _ := s.TryResolve(vals[i], confs[j])
				if got != want[i*len(confs)+j] {
					t.Errorf("TryResolve(%T) = %q, want %q", vals[i], got, want[i*len(confs)+j])
					return
				}
			}
		}(w)
	}
	wg.Wait()
}
