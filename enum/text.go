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
	"bytes"
	"fmt"
)

// MarshalText renders v by name; unknown values fail. Enum types use it to
// implement encoding.TextMarshaler:
//
//	func (c Color) MarshalText() ([]byte, error) { return colors.MarshalText(c) }
func (t *Table[E]) MarshalText(v E) ([]byte, error) {
	name, err := t.ToString(v)
	if err != nil {
		return nil, fmt.Errorf("meta(enum): cannot marshal: %w", err)
	}
	return []byte(name), nil
}

// UnmarshalText parses text leniently (see Parse) into *v. On error *v is
// left untouched. Enum types use it to implement encoding.TextUnmarshaler:
//
//	func (c *Color) UnmarshalText(b []byte) error { return colors.UnmarshalText(b, c) }
func (t *Table[E]) UnmarshalText(text []byte, v *E) error {
	parsed, err := t.Parse(string(bytes.TrimSpace(text)))
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}
