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

const (
	offset64 uint64 = 14695981039346656037
	prime64  uint64 = 1099511628211
)

// fnv1a is an allocation-free FNV-1a 64 state that satisfies sink.
type fnv1a uint64

func newFNV() fnv1a { return fnv1a(offset64) }

func (h *fnv1a) WriteString(s string) (int, error) {
	v := uint64(*h)
	for i := 0; i < len(s); i++ {
		v ^= uint64(s[i])
		v *= prime64
	}
	*h = fnv1a(v)
	return len(s), nil
}

func (h *fnv1a) WriteByte(c byte) error {
	v := uint64(*h)
	v ^= uint64(c)
	v *= prime64
	*h = fnv1a(v)
	return nil
}

func (h fnv1a) Sum64() uint64 { return uint64(h) }

// hashString returns FNV-1a 64 of s.
func hashString(s string) uint64 {
	h := newFNV()
	_, _ = h.WriteString(s)
	return h.Sum64()
}
