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

package apis

import (
	"cmp"
	"strconv"
)

// Identity identifies a Go type within one process.
//
// Name is the canonical spelling of the type (full package paths) and is
// empty for identities computed without materializing a name. Hash is the
// 64-bit FNV-1a of the canonical spelling. Two identities are equal iff
// their hashes are equal; distinct types may collide, which is not detected.
type Identity struct {
	// Name is the canonical type name, or "" for unnamed identities.
	Name string
	// Hash is the type hash.
	Hash uint64
}

// IsZero reports whether id is the zero Identity.
func (id Identity) IsZero() bool {
	return id.Name == "" && id.Hash == 0
}

// Equal reports whether id and other denote the same type.
func (id Identity) Equal(other Identity) bool {
	return id.Hash == other.Hash
}

// Compare orders identities by hash.
func (id Identity) Compare(other Identity) int {
	return cmp.Compare(id.Hash, other.Hash)
}

// String returns "name#hash" or "#hash" for unnamed identities.
func (id Identity) String() string {
	return id.Name + "#" + strconv.FormatUint(id.Hash, 16)
}
