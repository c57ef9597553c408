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
	"google.golang.org/protobuf/reflect/protoreflect"
)

// FromProto builds a table from a protobuf enum descriptor, in declaration
// order. Aliased values (allow_alias) become duplicate values, so value
// lookups answer with the first declared alias.
//
//	var types, _ = enum.FromProto[descriptorpb.FieldDescriptorProto_Type](
//		descriptorpb.FieldDescriptorProto_TYPE_INT32.Descriptor())
func FromProto[E ~int32](d protoreflect.EnumDescriptor) (*Table[E], error) {
	values := d.Values()
	entries := make([]Entry[E], values.Len())
	for i := range entries {
		v := values.Get(i)
		entries[i] = Entry[E]{Name: string(v.Name()), Value: E(v.Number())}
	}
	return New(entries...)
}
