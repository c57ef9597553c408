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

package registry

import (
	"errors"
	"fmt"
	"reflect"
	"sync"
	"sync/atomic"

	"dirpx.dev/meta/apis"
	"dirpx.dev/meta/config"
	uref "dirpx.dev/meta/utils/reflect"
)

var (
	// ErrNilType is returned when a nil reflect.Type is provided.
	ErrNilType = errors.New("meta(registry): nil reflect.Type provided")
	// ErrEmptyName is returned when an empty name is provided.
	ErrEmptyName = errors.New("meta(registry): empty name provided")
	// ErrConflictingRegistration indicates an attempt to re-register
	// a type with a different name.
	ErrConflictingRegistration = errors.New("meta(registry): conflicting type registration")
	// ErrNameTaken indicates that the name is already used by another type.
	ErrNameTaken = errors.New("meta(registry): name already bound to another type")
)

// New constructs a Registry that normalizes types according to cfg.
// Only MaxUnwrap is used here.
func New(cfg apis.Config) apis.Registry {
	if cfg.MaxUnwrap <= 0 {
		cfg.MaxUnwrap = config.DefaultMaxUnwrap
	}
	r := &registry{cfg: cfg}
	r.snap.Store(&aliases{})
	return r
}

// aliases is an immutable snapshot; writers copy it and swap the pointer.
type aliases struct {
	byType map[reflect.Type]string
	byName map[string]reflect.Type
}

// registry maps concrete types to explicit names.
type registry struct {
	// cfg is the configuration used for type normalization.
	cfg apis.Config
	// mu serializes writers.
	mu sync.Mutex
	// snap is the current published snapshot.
	snap atomic.Pointer[aliases]
}

// Register associates the nearest named type of t with the given name.
// It is idempotent for the same (type,name) pair.
func (r *registry) Register(t reflect.Type, name string) error {
	if t == nil {
		return ErrNilType
	}
	if name == "" {
		return ErrEmptyName
	}

	b, err := uref.Normalize(t, r.cfg)
	if err != nil {
		return err
	}

	// Fast read path: idempotency / conflict check without locking.
	if done, err := check(r.snap.Load(), b, name); done {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	// Re-check under lock in case another goroutine published meanwhile.
	old := r.snap.Load()
	if done, err := check(old, b, name); done {
		return err
	}

	next := &aliases{
		byType: make(map[reflect.Type]string, len(old.byType)+1),
		byName: make(map[string]reflect.Type, len(old.byName)+1),
	}
	for k, v := range old.byType {
		next.byType[k] = v
	}
	for k, v := range old.byName {
		next.byName[k] = v
	}
	next.byType[b] = name
	next.byName[name] = b
	r.snap.Store(next)
	return nil
}

// check reports whether (b, name) is already decided by s, and how.
func check(s *aliases, b reflect.Type, name string) (bool, error) {
	if old, ok := s.byType[b]; ok {
		if old == name {
			return true, nil
		}
		return true, fmt.Errorf("%w: %s is %q, not %q", ErrConflictingRegistration, b, old, name)
	}
	if other, ok := s.byName[name]; ok {
		return true, fmt.Errorf("%w: %q is %s", ErrNameTaken, name, other)
	}
	return false, nil
}

// Lookup returns a name for a type if present.
func (r *registry) Lookup(t reflect.Type) (name string, ok bool) {
	if t == nil {
		return "", false
	}
	nt, err := uref.Normalize(t, r.cfg)
	if err != nil {
		return "", false
	}
	name, ok = r.snap.Load().byType[nt]
	return name, ok
}

// Entries returns a snapshot for diagnostics/docs (order is unspecified).
func (r *registry) Entries() []apis.Entry {
	s := r.snap.Load()
	entries := make([]apis.Entry, 0, len(s.byType))
	for t, name := range s.byType {
		entries = append(entries, apis.Entry{Type: t, Name: name})
	}
	return entries
}

// Count returns the number of registered entries.
func (r *registry) Count() int {
	return len(r.snap.Load().byType)
}

// Reset clears all registered entries.
func (r *registry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.snap.Store(&aliases{})
}
