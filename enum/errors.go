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

import "errors"

var (
	// ErrEmptyName is returned when an entry has no name.
	ErrEmptyName = errors.New("meta(enum): empty constant name")
	// ErrDuplicateName is returned when two entries share a name.
	ErrDuplicateName = errors.New("meta(enum): duplicate constant name")
	// ErrUnknownName is returned when no constant has the given name.
	ErrUnknownName = errors.New("meta(enum): unknown constant name")
	// ErrUnknownValue is returned when no constant has the given value.
	ErrUnknownValue = errors.New("meta(enum): unknown constant value")
)
