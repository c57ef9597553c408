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
	"strconv"
	"strings"
)

// sink receives the canonical spelling piece by piece.
type sink interface {
	WriteString(s string) (int, error)
	WriteByte(c byte) error
}

// CanonicalName returns the canonical spelling of t, or "" for a nil type.
func CanonicalName(t reflect.Type) string {
	if t == nil {
		return ""
	}
	var b strings.Builder
	writeType(&b, t)
	return b.String()
}

// writeType emits the canonical spelling of t into w.
// Named types terminate the recursion, so cycles cannot occur.
func writeType(w sink, t reflect.Type) {
	if name := t.Name(); name != "" {
		if pkg := t.PkgPath(); pkg != "" {
			_, _ = w.WriteString(pkg)
			_ = w.WriteByte('.')
		}
		_, _ = w.WriteString(name)
		return
	}

	switch t.Kind() {
	case reflect.Pointer:
		_ = w.WriteByte('*')
		writeType(w, t.Elem())

	case reflect.Slice:
		_, _ = w.WriteString("[]")
		writeType(w, t.Elem())

	case reflect.Array:
		_ = w.WriteByte('[')
		_, _ = w.WriteString(strconv.Itoa(t.Len()))
		_ = w.WriteByte(']')
		writeType(w, t.Elem())

	case reflect.Map:
		_, _ = w.WriteString("map[")
		writeType(w, t.Key())
		_ = w.WriteByte(']')
		writeType(w, t.Elem())

	case reflect.Chan:
		writeChan(w, t)

	case reflect.Func:
		_, _ = w.WriteString("func")
		writeSignature(w, t)

	case reflect.Struct:
		writeStruct(w, t)

	case reflect.Interface:
		writeInterface(w, t)

	default:
		// Unnamed basic kinds do not exist; keep the output total anyway.
		_, _ = w.WriteString(t.String())
	}
}

func writeChan(w sink, t reflect.Type) {
	elem := t.Elem()
	switch t.ChanDir() {
	case reflect.RecvDir:
		_, _ = w.WriteString("<-chan ")
	case reflect.SendDir:
		_, _ = w.WriteString("chan<- ")
	default:
		_, _ = w.WriteString("chan ")
		// chan (<-chan T) needs parentheses to stay unambiguous.
		if elem.Kind() == reflect.Chan && elem.Name() == "" && elem.ChanDir() == reflect.RecvDir {
			_ = w.WriteByte('(')
			writeType(w, elem)
			_ = w.WriteByte(')')
			return
		}
	}
	writeType(w, elem)
}

// writeSignature emits "(params) results" for a func type.
func writeSignature(w sink, t reflect.Type) {
	_ = w.WriteByte('(')
	for i := 0; i < t.NumIn(); i++ {
		if i > 0 {
			_, _ = w.WriteString(", ")
		}
		in := t.In(i)
		if t.IsVariadic() && i == t.NumIn()-1 {
			_, _ = w.WriteString("...")
			writeType(w, in.Elem())
			continue
		}
		writeType(w, in)
	}
	_ = w.WriteByte(')')

	switch n := t.NumOut(); n {
	case 0:
	case 1:
		_ = w.WriteByte(' ')
		writeType(w, t.Out(0))
	default:
		_, _ = w.WriteString(" (")
		for i := 0; i < n; i++ {
			if i > 0 {
				_, _ = w.WriteString(", ")
			}
			writeType(w, t.Out(i))
		}
		_ = w.WriteByte(')')
	}
}

func writeStruct(w sink, t reflect.Type) {
	if t.NumField() == 0 {
		_, _ = w.WriteString("struct {}")
		return
	}
	_, _ = w.WriteString("struct {")
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if i > 0 {
			_ = w.WriteByte(';')
		}
		_ = w.WriteByte(' ')
		if !f.Anonymous {
			writeQualified(w, f.PkgPath, f.Name)
			_ = w.WriteByte(' ')
		}
		writeType(w, f.Type)
		if f.Tag != "" {
			_ = w.WriteByte(' ')
			_, _ = w.WriteString(strconv.Quote(string(f.Tag)))
		}
	}
	_, _ = w.WriteString(" }")
}

func writeInterface(w sink, t reflect.Type) {
	if t.NumMethod() == 0 {
		_, _ = w.WriteString("interface {}")
		return
	}
	_, _ = w.WriteString("interface {")
	for i := 0; i < t.NumMethod(); i++ {
		m := t.Method(i)
		if i > 0 {
			_ = w.WriteByte(';')
		}
		_ = w.WriteByte(' ')
		writeQualified(w, m.PkgPath, m.Name)
		writeSignature(w, m.Type)
	}
	_, _ = w.WriteString(" }")
}

// writeQualified spells unexported identifiers with their package path,
// since they are distinct per package.
func writeQualified(w sink, pkg, name string) {
	if pkg != "" {
		_, _ = w.WriteString(pkg)
		_ = w.WriteByte('.')
	}
	_, _ = w.WriteString(name)
}
