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

package enum_test

import (
	"errors"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"

	"dirpx.dev/meta/enum"
	"dirpx.dev/meta/identity"
)

type MyEnum int

const (
	FOO  MyEnum = 42
	BAR  MyEnum = 43
	QUUX MyEnum = 44
)

var myEnum = enum.MustNew(
	enum.Entry[MyEnum]{Name: "FOO", Value: FOO},
	enum.Entry[MyEnum]{Name: "BAR", Value: BAR},
	enum.Entry[MyEnum]{Name: "QUUX", Value: QUUX},
)

// Level has two names for one value.
type Level uint8

const (
	Debug   Level = 0
	Info    Level = 1
	Warn    Level = 2
	Warning Level = 2
	Error   Level = 3
)

var levels = enum.MustNew(
	enum.Entry[Level]{Name: "Debug", Value: Debug},
	enum.Entry[Level]{Name: "Info", Value: Info},
	enum.Entry[Level]{Name: "Warn", Value: Warn},
	enum.Entry[Level]{Name: "Warning", Value: Warning},
	enum.Entry[Level]{Name: "Error", Value: Error},
)

func TestCount(t *testing.T) {
	if got := myEnum.Count(); got != 3 {
		t.Fatalf("Count() = %d, want 3", got)
	}
	if got := levels.Count(); got != 5 {
		t.Fatalf("levels.Count() = %d, want 5", got)
	}
}

func TestHasValue(t *testing.T) {
	for _, v := range []MyEnum{42, 43, 44} {
		if !myEnum.HasValue(v) {
			t.Fatalf("HasValue(%d) = false, want true", v)
		}
	}
	if myEnum.HasValue(45) {
		t.Fatalf("HasValue(45) = true, want false")
	}
}

func TestHasName(t *testing.T) {
	for _, n := range []string{"FOO", "BAR", "QUUX"} {
		if !myEnum.HasName(n) {
			t.Fatalf("HasName(%q) = false, want true", n)
		}
	}
	for _, n := range []string{"FOOBARQUUX", "foo", "", " FOO"} {
		if myEnum.HasName(n) {
			t.Fatalf("HasName(%q) = true, want false", n)
		}
	}
}

func TestFromString(t *testing.T) {
	tests := []struct {
		name string
		want MyEnum
	}{
		{"FOO", FOO},
		{"BAR", BAR},
		{"QUUX", QUUX},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := myEnum.FromString(tt.name)
			if err != nil {
				t.Fatalf("FromString(%q) error = %v", tt.name, err)
			}
			if got != tt.want {
				t.Fatalf("FromString(%q) = %d, want %d", tt.name, got, tt.want)
			}
		})
	}

	if _, err := myEnum.FromString("FOOBARQUUX"); !errors.Is(err, enum.ErrUnknownName) {
		t.Fatalf("FromString(unknown) error = %v, want ErrUnknownName", err)
	}
	defer func() {
		if recover() == nil {
			t.Fatalf("MustFromString(unknown) did not panic")
		}
	}()
	myEnum.MustFromString("nope")
}

func TestIndexedAccess(t *testing.T) {
	wantValues := []MyEnum{FOO, BAR, QUUX}
	wantNames := []string{"FOO", "BAR", "QUUX"}
	for i := 0; i < myEnum.Count(); i++ {
		if got := myEnum.Value(i); got != wantValues[i] {
			t.Fatalf("Value(%d) = %d, want %d", i, got, wantValues[i])
		}
		if got := myEnum.Name(i); got != wantNames[i] {
			t.Fatalf("Name(%d) = %q, want %q", i, got, wantNames[i])
		}
	}
}

func TestIndexedAccess_OutOfRangePanics(t *testing.T) {
	for _, i := range []int{-1, 3} {
		func() {
			defer func() {
				if recover() == nil {
					t.Fatalf("Value(%d) did not panic", i)
				}
			}()
			_ = myEnum.Value(i)
		}()
	}
}

func TestToString(t *testing.T) {
	for _, v := range []MyEnum{FOO, BAR, QUUX} {
		name, err := myEnum.ToString(v)
		if err != nil {
			t.Fatalf("ToString(%d) error = %v", v, err)
		}
		back, _ := myEnum.FromString(name)
		if back != v {
			t.Fatalf("FromString(ToString(%d)) = %d", v, back)
		}
	}
	if _, err := myEnum.ToString(45); !errors.Is(err, enum.ErrUnknownValue) {
		t.Fatalf("ToString(45) error = %v, want ErrUnknownValue", err)
	}
}

func TestDuplicateValues_FirstDeclaredWins(t *testing.T) {
	name, err := levels.ToString(Warning)
	if err != nil || name != "Warn" {
		t.Fatalf("ToString(Warning) = (%q, %v), want (Warn, nil)", name, err)
	}
	if !levels.HasValue(Warning) {
		t.Fatalf("HasValue(Warning) = false")
	}
	for _, n := range []string{"Warn", "Warning"} {
		v, err := levels.FromString(n)
		if err != nil || v != Warn {
			t.Fatalf("FromString(%q) = (%d, %v), want (%d, nil)", n, v, err, Warn)
		}
	}
	if i, ok := levels.Index(Warning); !ok || i != 2 {
		t.Fatalf("Index(Warning) = (%d, %v), want (2, true)", i, ok)
	}
	if got := levels.Format(Error); got != "Error" {
		t.Fatalf("Format(Error) = %q", got)
	}
}

func TestValues_RepeatableAndOrdered(t *testing.T) {
	want := []MyEnum{FOO, BAR, QUUX}
	for pass := 0; pass < 3; pass++ {
		if got := slices.Collect(myEnum.Values()); !slices.Equal(got, want) {
			t.Fatalf("pass %d: Values() = %v, want %v", pass, got, want)
		}
	}
	if got := slices.Collect(myEnum.Names()); !slices.Equal(got, []string{"FOO", "BAR", "QUUX"}) {
		t.Fatalf("Names() = %v", got)
	}
	// Early break must not disturb later iterations.
	for v := range myEnum.Values() {
		if v == FOO {
			break
		}
	}
	for range myEnum.Names() {
		break
	}
	n := 0
	for i, e := range myEnum.All() {
		if e.Value != want[i] {
			t.Fatalf("All()[%d] = %+v", i, e)
		}
		n++
		if n == 2 {
			break
		}
	}
	if got := slices.Collect(myEnum.Values()); !slices.Equal(got, want) {
		t.Fatalf("after break: Values() = %v, want %v", got, want)
	}
}

func TestEntries_IsCopy(t *testing.T) {
	got := myEnum.Entries()
	want := []enum.Entry[MyEnum]{
		{Name: "FOO", Value: FOO},
		{Name: "BAR", Value: BAR},
		{Name: "QUUX", Value: QUUX},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("Entries() mismatch (-want +got):\n%s", diff)
	}
	got[0].Name = "MUTATED"
	if myEnum.Name(0) != "FOO" {
		t.Fatalf("Entries() exposed internal storage")
	}
}

func TestNew_InputSliceIsCopied(t *testing.T) {
	in := []enum.Entry[MyEnum]{{Name: "A", Value: 1}, {Name: "B", Value: 2}}
	tbl := enum.MustNew(in...)
	in[0].Name = "Z"
	if tbl.Name(0) != "A" || !tbl.HasName("A") {
		t.Fatalf("table shares caller's slice")
	}
}

func TestNew_Rejects(t *testing.T) {
	_, err := enum.New(enum.Entry[MyEnum]{Name: "A", Value: 1}, enum.Entry[MyEnum]{Name: "A", Value: 2})
	if !errors.Is(err, enum.ErrDuplicateName) {
		t.Fatalf("duplicate name: error = %v, want ErrDuplicateName", err)
	}
	_, err = enum.New(enum.Entry[MyEnum]{Name: "", Value: 1})
	if !errors.Is(err, enum.ErrEmptyName) {
		t.Fatalf("empty name: error = %v, want ErrEmptyName", err)
	}
	defer func() {
		if recover() == nil {
			t.Fatalf("MustNew with duplicates did not panic")
		}
	}()
	enum.MustNew(enum.Entry[MyEnum]{Name: "A"}, enum.Entry[MyEnum]{Name: "A"})
}

func TestNew_Empty(t *testing.T) {
	tbl, err := enum.New[MyEnum]()
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if tbl.Count() != 0 || tbl.HasValue(0) || len(slices.Collect(tbl.Values())) != 0 {
		t.Fatalf("empty table is not empty")
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want Level
	}{
		{"Info", Info},
		{"info", Info},
		{"  WARNING ", Warning},
		{"warn", Warn},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := levels.Parse(tt.in)
			if err != nil || got != tt.want {
				t.Fatalf("Parse(%q) = (%d, %v), want (%d, nil)", tt.in, got, err, tt.want)
			}
		})
	}
	if _, err := levels.Parse("verbose"); !errors.Is(err, enum.ErrUnknownName) {
		t.Fatalf("Parse(verbose) error = %v, want ErrUnknownName", err)
	}
}

func TestParse_ExactMatchBeatsFold(t *testing.T) {
	type Mode int
	modes := enum.MustNew(
		enum.Entry[Mode]{Name: "Fast", Value: 1},
		enum.Entry[Mode]{Name: "FAST", Value: 2},
	)
	if v, _ := modes.Parse("FAST"); v != 2 {
		t.Fatalf("Parse(FAST) = %d, want 2", v)
	}
	if v, _ := modes.Parse("fast"); v != 1 {
		t.Fatalf("Parse(fast) = %d, want 1 (first declared fold match)", v)
	}
}

func TestFormat_Unknown(t *testing.T) {
	if got := myEnum.Format(7); got != "Unknown(7)" {
		t.Fatalf("Format(7) = %q, want Unknown(7)", got)
	}
}

func TestType(t *testing.T) {
	if got, want := myEnum.Type(), identity.Of[MyEnum](); got != want {
		t.Fatalf("Type() = %v, want %v", got, want)
	}
}
