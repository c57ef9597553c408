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

import (
	"fmt"
	"maps"
	"reflect"
	"slices"
	"sync"
	"sync/atomic"

	"dirpx.dev/meta/apis"
	"dirpx.dev/meta/builder"
	"dirpx.dev/meta/identity"
)

// Registry maps names to metatypes producing instances of base B.
// The zero value is not usable; construct with New.
type Registry[B any] struct {
	// cfg controls name derivation and the overwrite policy.
	cfg apis.Config
	// res derives names for RegisterType.
	res apis.Resolver
	// base is the identity of B.
	base apis.Identity
	// mu serializes writers.
	mu sync.Mutex
	// snap is the current published table.
	snap atomic.Pointer[table[B]]
}

// table is an immutable snapshot; writers copy it and swap the pointer.
type table[B any] struct {
	byName map[string]*Metatype[B]
	// byHash indexes entries by concrete type identity hash for Destroy.
	byHash map[uint64]*Metatype[B]
	frozen bool
}

// New constructs an empty Registry for base B. B must be an interface type;
// New panics otherwise. A nil res gets the default naming chain built from cfg.
func New[B any](cfg apis.Config, res apis.Resolver) *Registry[B] {
	bt := reflect.TypeFor[B]()
	if bt.Kind() != reflect.Interface {
		panic(fmt.Sprintf("meta(metatype): base %s is not an interface", bt))
	}
	if res == nil {
		b := builder.New()
		res = b.BuildResolver(cfg, b.BuildRegistry(cfg, nil))
	}
	r := &Registry[B]{cfg: cfg, res: res, base: identity.OfType(bt)}
	r.snap.Store(&table[B]{})
	return r
}

// Base returns the identity of the base capability.
func (r *Registry[B]) Base() apis.Identity { return r.base }

// Config returns the configuration the registry was built with.
func (r *Registry[B]) Config() apis.Config { return r.cfg }

// RegisterFunc registers a custom constructor under name. A nil destroy
// uses the default teardown. Instances from custom constructors are not
// indexed by type, so Destroy on them always uses the default teardown;
// call Metatype.Destroy to reach a custom destructor.
func (r *Registry[B]) RegisterFunc(name string, create func() B, destroy func(B) error) error {
	if create == nil {
		return fmt.Errorf("%w: %q", ErrNilConstructor, name)
	}
	if destroy == nil {
		destroy = teardown[B]
	}
	return r.add(&Metatype[B]{name: name, create: create, destroy: destroy})
}

// add publishes m, enforcing the duplicate policy.
func (r *Registry[B]) add(m *Metatype[B]) error {
	if m.name == "" {
		return ErrEmptyName
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	old := r.snap.Load()
	if old.frozen {
		return fmt.Errorf("%w: register %q", ErrFrozen, m.name)
	}
	prev, exists := old.byName[m.name]
	if exists && !r.cfg.AllowOverwrite {
		return fmt.Errorf("%w: %q", ErrDuplicateRegistration, m.name)
	}

	next := old.clone()
	if exists {
		next.unindex(prev)
	}
	next.byName[m.name] = m
	if !m.id.IsZero() {
		if _, taken := next.byHash[m.id.Hash]; !taken {
			next.byHash[m.id.Hash] = m
		}
	}
	r.snap.Store(next)
	return nil
}

// Unregister removes the entry for name.
func (r *Registry[B]) Unregister(name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	old := r.snap.Load()
	if old.frozen {
		return fmt.Errorf("%w: unregister %q", ErrFrozen, name)
	}
	m, ok := old.byName[name]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownType, name)
	}
	next := old.clone()
	next.unindex(m)
	delete(next.byName, name)
	r.snap.Store(next)
	return nil
}

// Reset removes every entry.
func (r *Registry[B]) Reset() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.snap.Load().frozen {
		return fmt.Errorf("%w: reset", ErrFrozen)
	}
	r.snap.Store(&table[B]{})
	return nil
}

// Freeze ends the registration phase. It is idempotent.
func (r *Registry[B]) Freeze() {
	r.mu.Lock()
	defer r.mu.Unlock()

	old := r.snap.Load()
	if old.frozen {
		return
	}
	next := old.clone()
	next.frozen = true
	r.snap.Store(next)
}

// Frozen reports whether Freeze has been called.
func (r *Registry[B]) Frozen() bool {
	return r.snap.Load().frozen
}

// Create builds a new instance of the type registered under name.
// On a miss nothing is constructed and the error wraps ErrUnknownType.
func (r *Registry[B]) Create(name string) (B, error) {
	m, ok := r.snap.Load().byName[name]
	if !ok {
		var zero B
		return zero, fmt.Errorf("%w: %q", ErrUnknownType, name)
	}
	return m.Create()
}

// MustCreate is like Create but panics on error.
func (r *Registry[B]) MustCreate(name string) B {
	b, err := r.Create(name)
	if err != nil {
		panic(err)
	}
	return b
}

// Destroy releases b. It runs the destructor of the entry registered for
// b's concrete type, or the default teardown when there is none.
func (r *Registry[B]) Destroy(b B) error {
	if isNil(b) {
		return ErrNilInstance
	}
	id := identity.UnnamedOfType(reflect.TypeOf(b))
	if m, ok := r.snap.Load().byHash[id.Hash]; ok {
		return m.destroy(b)
	}
	return teardown(b)
}

// Lookup returns the entry registered under name.
func (r *Registry[B]) Lookup(name string) (*Metatype[B], bool) {
	m, ok := r.snap.Load().byName[name]
	return m, ok
}

// Has reports whether name is registered.
func (r *Registry[B]) Has(name string) bool {
	_, ok := r.snap.Load().byName[name]
	return ok
}

// Names returns the registered names in sorted order.
func (r *Registry[B]) Names() []string {
	return slices.Sorted(maps.Keys(r.snap.Load().byName))
}

// Entries returns the registered entries sorted by name.
func (r *Registry[B]) Entries() []*Metatype[B] {
	s := r.snap.Load()
	out := make([]*Metatype[B], 0, len(s.byName))
	for _, name := range slices.Sorted(maps.Keys(s.byName)) {
		out = append(out, s.byName[name])
	}
	return out
}

// Count returns the number of registered entries.
func (r *Registry[B]) Count() int {
	return len(r.snap.Load().byName)
}

func (t *table[B]) clone() *table[B] {
	next := &table[B]{
		byName: make(map[string]*Metatype[B], len(t.byName)+1),
		byHash: make(map[uint64]*Metatype[B], len(t.byHash)+1),
		frozen: t.frozen,
	}
	maps.Copy(next.byName, t.byName)
	maps.Copy(next.byHash, t.byHash)
	return next
}

// unindex drops m from the hash index, promoting another entry of the
// same concrete type if one is still registered.
func (t *table[B]) unindex(m *Metatype[B]) {
	if m.id.IsZero() || t.byHash[m.id.Hash] != m {
		return
	}
	delete(t.byHash, m.id.Hash)
	for _, other := range t.byName {
		if other != m && other.id.Hash == m.id.Hash && !other.id.IsZero() {
			t.byHash[m.id.Hash] = other
			return
		}
	}
}
