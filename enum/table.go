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

package enum

import (
	"fmt"
	"iter"
	"reflect"
	"strings"

	"golang.org/x/exp/constraints"

	"dirpx.dev/meta/apis"
	"dirpx.dev/meta/identity"
)

// Entry is one declared constant.
type Entry[E constraints.Integer] struct {
	Name  string
	Value E
}

// Table is the immutable reflection table of enumeration E.
type Table[E constraints.Integer] struct {
	entries []Entry[E]
	byName  map[string]int
	// byFold maps lower-cased names to the first matching index.
	byFold map[string]int
	// byValue maps values to the first declared index.
	byValue map[E]int
	id      apis.Identity
}

// New builds a table from entries in declaration order.
func New[E constraints.Integer](entries ...Entry[E]) (*Table[E], error) {
	t := &Table[E]{
		entries: make([]Entry[E], len(entries)),
		byName:  make(map[string]int, len(entries)),
		byFold:  make(map[string]int, len(entries)),
		byValue: make(map[E]int, len(entries)),
		id:      identity.OfType(reflect.TypeFor[E]()),
	}
	copy(t.entries, entries)

	for i, e := range t.entries {
		if e.Name == "" {
			return nil, fmt.Errorf("%w: %s entry %d", ErrEmptyName, t.id.Name, i)
		}
		if j, ok := t.byName[e.Name]; ok {
			return nil, fmt.Errorf("%w: %s.%s at %d and %d", ErrDuplicateName, t.id.Name, e.Name, j, i)
		}
		t.byName[e.Name] = i
		if _, ok := t.byFold[strings.ToLower(e.Name)]; !ok {
			t.byFold[strings.ToLower(e.Name)] = i
		}
		if _, ok := t.byValue[e.Value]; !ok {
			t.byValue[e.Value] = i
		}
	}
	return t, nil
}

// MustNew is like New but panics on error.
// It is meant for package-level variable initialization.
func MustNew[E constraints.Integer](entries ...Entry[E]) *Table[E] {
	t, err := New(entries...)
	if err != nil {
		panic(err)
	}
	return t
}

// Type returns the identity of E.
func (t *Table[E]) Type() apis.Identity { return t.id }

// Count returns the number of declared constants.
func (t *Table[E]) Count() int { return len(t.entries) }

// HasValue reports whether some constant has value v.
func (t *Table[E]) HasValue(v E) bool {
	_, ok := t.byValue[v]
	return ok
}

// HasName reports whether some constant is named exactly name.
func (t *Table[E]) HasName(name string) bool {
	_, ok := t.byName[name]
	return ok
}

// FromString returns the value of the constant named exactly name.
func (t *Table[E]) FromString(name string) (E, error) {
	i, ok := t.byName[name]
	if !ok {
		return 0, fmt.Errorf("%w: %s %q", ErrUnknownName, t.id.Name, name)
	}
	return t.entries[i].Value, nil
}

// MustFromString is like FromString but panics on error.
func (t *Table[E]) MustFromString(name string) E {
	v, err := t.FromString(name)
	if err != nil {
		panic(err)
	}
	return v
}

// Parse is a lenient FromString: it trims surrounding whitespace and falls
// back to a case-insensitive match when there is no exact one.
func (t *Table[E]) Parse(s string) (E, error) {
	s = strings.TrimSpace(s)
	if i, ok := t.byName[s]; ok {
		return t.entries[i].Value, nil
	}
	if i, ok := t.byFold[strings.ToLower(s)]; ok {
		return t.entries[i].Value, nil
	}
	return 0, fmt.Errorf("%w: %s %q", ErrUnknownName, t.id.Name, s)
}

// ToString returns the name of the first declared constant with value v.
func (t *Table[E]) ToString(v E) (string, error) {
	i, ok := t.byValue[v]
	if !ok {
		return "", fmt.Errorf("%w: %s %d", ErrUnknownValue, t.id.Name, v)
	}
	return t.entries[i].Name, nil
}

// Format is ToString for fmt.Stringer implementations: unknown values
// render as "Unknown(<n>)".
func (t *Table[E]) Format(v E) string {
	if i, ok := t.byValue[v]; ok {
		return t.entries[i].Name
	}
	return fmt.Sprintf("Unknown(%d)", v)
}

// Value returns the value of the i-th declared constant.
// It panics if i is out of range, like slice indexing.
func (t *Table[E]) Value(i int) E { return t.entries[i].Value }

// Name returns the name of the i-th declared constant.
// It panics if i is out of range, like slice indexing.
func (t *Table[E]) Name(i int) string { return t.entries[i].Name }

// Index returns the declaration index of the first constant with value v.
func (t *Table[E]) Index(v E) (int, bool) {
	i, ok := t.byValue[v]
	return i, ok
}

// Values yields every declared value in declaration order.
// The sequence can be ranged over any number of times.
func (t *Table[E]) Values() iter.Seq[E] {
	return func(yield func(E) bool) {
		for _, e := range t.entries {
			if !yield(e.Value) {
				return
			}
		}
	}
}

// Names yields every declared name in declaration order.
func (t *Table[E]) Names() iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, e := range t.entries {
			if !yield(e.Name) {
				return
			}
		}
	}
}

// All yields (index, entry) pairs in declaration order.
func (t *Table[E]) All() iter.Seq2[int, Entry[E]] {
	return func(yield func(int, Entry[E]) bool) {
		for i, e := range t.entries {
			if !yield(i, e) {
				return
			}
		}
	}
}

// Entries returns a copy of the declared constants.
func (t *Table[E]) Entries() []Entry[E] {
	out := make([]Entry[E], len(t.entries))
	copy(out, t.entries)
	return out
}
