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

package builder_test

import (
	"reflect"
	"testing"

	"dirpx.dev/meta/apis"
	"dirpx.dev/meta/builder"
	"dirpx.dev/meta/config"
)

// userType is a plain named type, named through reflection.
type userType struct{}

// aliasedType gets an explicit alias in the registry.
type aliasedType struct{}

// hotType implements apis.Namer and wins over every other strategy.
type hotType struct{}

func (hotType) EntityName() string { return "hot-name" }

func TestBuildRegistry_Basic(t *testing.T) {
	b := builder.New()

	reg := b.BuildRegistry(config.DefaultConfig(), nil)
	if reg == nil {
		t.Fatal("BuildRegistry returned nil")
	}

	tt := reflect.TypeOf(userType{})
	if err := reg.Register(tt, "user"); err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	if got, ok := reg.Lookup(tt); !ok || got != "user" {
		t.Fatalf("Lookup mismatch: ok=%v got=%q want=%q", ok, got, "user")
	}
}

func TestBuildRegistry_MigratesEntries(t *testing.T) {
	b := builder.New()
	prev := b.BuildRegistry(config.DefaultConfig(), nil)
	_ = prev.Register(reflect.TypeOf(aliasedType{}), "Alias")

	next := b.BuildRegistry(config.NewConfig(config.WithQualifiedNames(true)), prev)
	if next == prev {
		t.Fatal("BuildRegistry returned the previous registry")
	}
	if got, ok := next.Lookup(reflect.TypeOf(&aliasedType{})); !ok || got != "Alias" {
		t.Fatalf("migrated Lookup = (%q,%v), want (Alias,true)", got, ok)
	}
}

// TestBuildResolver_Order verifies naming priority:
// Namer, then registry alias, then reflection.
func TestBuildResolver_Order(t *testing.T) {
	b := builder.New()
	cfg := config.DefaultConfig()

	reg := b.BuildRegistry(cfg, nil)
	if err := reg.Register(reflect.TypeOf(aliasedType{}), "Alias"); err != nil {
		t.Fatalf("Register: %v", err)
	}
	// An alias on a Namer must lose to the Namer.
	if err := reg.Register(reflect.TypeOf(hotType{}), "cold-name"); err != nil {
		t.Fatalf("Register: %v", err)
	}
	res := b.BuildResolver(cfg, reg)

	cases := []struct {
		name string
		typ  reflect.Type
		want string
	}{
		{"namer", reflect.TypeOf(hotType{}), "hot-name"},
		{"alias", reflect.TypeOf(&aliasedType{}), "Alias"},
		{"reflect", reflect.TypeOf(&userType{}), "userType"},
		{"builtin hidden", reflect.TypeOf(0), ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := res.ResolveType(tc.typ, cfg); got != tc.want {
				t.Fatalf("ResolveType(%v) = %q, want %q", tc.typ, got, tc.want)
			}
		})
	}

	if got := res.Resolve(hotType{}, cfg); got != "hot-name" {
		t.Fatalf("Resolve(hotType) = %q, want hot-name", got)
	}
	qualified := config.NewConfig(config.WithQualifiedNames(true))
	if got := res.Resolve(userType{}, qualified); got != "builder_test.userType" {
		t.Fatalf("Resolve(userType) qualified = %q, want builder_test.userType", got)
	}
}

var _ apis.Builder = builder.New()
