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

package metatype

import "errors"

var (
	// ErrDuplicateRegistration is returned when a name is already registered
	// and overwriting is not allowed.
	ErrDuplicateRegistration = errors.New("meta(metatype): duplicate registration")
	// ErrUnknownType is returned when no entry exists for a name.
	ErrUnknownType = errors.New("meta(metatype): unknown type")
	// ErrEmptyName is returned when a registration has no usable name.
	ErrEmptyName = errors.New("meta(metatype): empty name")
	// ErrNilConstructor is returned when RegisterFunc gets a nil constructor.
	ErrNilConstructor = errors.New("meta(metatype): nil constructor")
	// ErrNotImplemented is returned when a concrete type does not implement the base.
	ErrNotImplemented = errors.New("meta(metatype): type does not implement base")
	// ErrNilInstance is returned for nil instances, produced or passed in.
	ErrNilInstance = errors.New("meta(metatype): nil instance")
	// ErrInit wraps a failing Initializer.Init.
	ErrInit = errors.New("meta(metatype): init failed")
	// ErrFrozen is returned when mutating a frozen registry.
	ErrFrozen = errors.New("meta(metatype): registry is frozen")
)
