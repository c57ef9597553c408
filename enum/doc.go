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

// Package enum provides reflection for Go enumerations.
//
// Go has no enum declaration to introspect at run time, so a Table is built
// once from the ordered (name, value) list of an enumeration's constants,
// either written by hand, emitted by the enumgen tool, or taken from a
// protobuf enum descriptor:
//
//	type Color int
//
//	const (
//		Red Color = iota + 1
//		Green
//		Blue
//	)
//
//	var colors = enum.MustNew(
//		enum.Entry[Color]{Name: "Red", Value: Red},
//		enum.Entry[Color]{Name: "Green", Value: Green},
//		enum.Entry[Color]{Name: "Blue", Value: Blue},
//	)
//
//	colors.Count()             // 3
//	colors.FromString("Green") // Green, nil
//	colors.ToString(Blue)      // "Blue", nil
//	for c := range colors.Values() { ... }
//
// Names must be unique. Values need not be: when several constants share a
// value, value lookups answer with the first one declared.
//
// A Table never changes after construction, so it is safe for concurrent use
// without synchronization. Lookups are O(1) and do not allocate.
package enum
