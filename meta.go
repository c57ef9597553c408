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

package meta

import (
	"errors"
	"reflect"
	"sync"
	"sync/atomic"

	"dirpx.dev/meta/apis"
	"dirpx.dev/meta/builder"
	"dirpx.dev/meta/config"
)

func init() {
	cfg := config.DefaultConfig()
	b := builder.New()
	reg := b.BuildRegistry(cfg, nil)
	st.Store(&state{cfg: cfg, reg: reg, res: b.BuildResolver(cfg, reg), bld: b})
}

var (
	// ErrNilRegistry is returned when a builder returns a nil registry.
	ErrNilRegistry = errors.New("meta: builder returned nil registry")
	// ErrNilResolver is returned when a builder returns a nil resolver.
	ErrNilResolver = errors.New("meta: builder returned nil resolver")
)

// buildMu serializes writers so a partially built snapshot is never published.
var buildMu sync.Mutex

// st is the current process-wide snapshot.
var st atomic.Pointer[state]

// state is an immutable snapshot. Writers derive a new one and swap it in.
type state struct {
	cfg apis.Config
	reg apis.Registry
	res apis.Resolver
	bld apis.Builder
	// preg and pres mark layers installed explicitly; they survive rebuilds.
	preg bool
	pres bool
}

// rebuild derives the next snapshot from old under cfg and b, rebuilding
// every layer that is not pinned. Caller holds buildMu.
func rebuild(old *state, cfg apis.Config, b apis.Builder) *state {
	next := &state{cfg: cfg, reg: old.reg, res: old.res, bld: b, preg: old.preg, pres: old.pres}
	if !next.preg {
		next.reg = b.BuildRegistry(cfg, old.reg)
	}
	if !next.pres {
		next.res = b.BuildResolver(cfg, next.reg)
	}
	if next.reg == nil {
		panic(ErrNilRegistry)
	}
	if next.res == nil {
		panic(ErrNilResolver)
	}
	return next
}

// Name returns the metatype name of v under the process-wide resolver,
// or "" if none can be determined.
func Name(v any) string {
	s := st.Load()
	return s.res.Resolve(v, s.cfg)
}

// NameOfType is Name for a reflect.Type.
func NameOfType(t reflect.Type) string {
	s := st.Load()
	return s.res.ResolveType(t, s.cfg)
}

// Alias gives t an explicit name in the process-wide alias registry.
// The alias wins over reflected names in Name, NameOfType and RegisterType.
func Alias(t reflect.Type, name string) error {
	return st.Load().reg.Register(t, name)
}

// Config returns the process-wide configuration.
func Config() apis.Config { return st.Load().cfg }

// SetConfig replaces the configuration and rebuilds unpinned layers.
// Registries already returned by Metatypes keep the Config they were built with.
func SetConfig(cfg apis.Config) {
	buildMu.Lock()
	defer buildMu.Unlock()

	old := st.Load()
	st.Store(rebuild(old, cfg, old.bld))
}

// Builder returns the process-wide builder.
func Builder() apis.Builder { return st.Load().bld }

// SetBuilder replaces the builder and rebuilds unpinned layers with it.
// A nil b is ignored.
func SetBuilder(b apis.Builder) {
	if b == nil {
		return
	}
	buildMu.Lock()
	defer buildMu.Unlock()

	old := st.Load()
	st.Store(rebuild(old, old.cfg, b))
}

// Registry returns the process-wide alias registry.
func Registry() apis.Registry { return st.Load().reg }

// SetRegistry installs reg and pins it: later rebuilds keep it until
// UnpinRegistry. The resolver is rebuilt over reg unless pinned.
func SetRegistry(reg apis.Registry) {
	if reg == nil {
		return
	}
	buildMu.Lock()
	defer buildMu.Unlock()

	old := *st.Load()
	old.reg, old.preg = reg, true
	st.Store(rebuild(&old, old.cfg, old.bld))
}

// Resolver returns the process-wide resolver.
func Resolver() apis.Resolver { return st.Load().res }

// SetResolver installs res and pins it until UnpinResolver.
func SetResolver(res apis.Resolver) {
	if res == nil {
		return
	}
	buildMu.Lock()
	defer buildMu.Unlock()

	next := *st.Load()
	next.res, next.pres = res, true
	st.Store(&next)
}

// SetAll replaces every layer at once. Nil cfg or bld keep the current
// value; nil reg or res are rebuilt and unpinned, non-nil ones are pinned.
func SetAll(cfg *apis.Config, reg apis.Registry, res apis.Resolver, bld apis.Builder) {
	buildMu.Lock()
	defer buildMu.Unlock()

	old := st.Load()
	next := &state{cfg: old.cfg, bld: old.bld, reg: reg, res: res, preg: reg != nil, pres: res != nil}
	if cfg != nil {
		next.cfg = *cfg
	}
	if bld != nil {
		next.bld = bld
	}
	// reg and res double as the "previous" layers here; rebuild ignores
	// them unless they are pinned.
	if next.reg == nil {
		next.reg = old.reg
	}
	if next.res == nil {
		next.res = old.res
	}
	st.Store(rebuild(next, next.cfg, next.bld))
}

// IsRegistryPinned reports whether the alias registry survives rebuilds.
func IsRegistryPinned() bool { return st.Load().preg }

// UnpinRegistry lets the next rebuild replace the alias registry.
func UnpinRegistry() { setPins(func(s *state) { s.preg = false }) }

// IsResolverPinned reports whether the resolver survives rebuilds.
func IsResolverPinned() bool { return st.Load().pres }

// UnpinResolver lets the next rebuild replace the resolver.
func UnpinResolver() { setPins(func(s *state) { s.pres = false }) }

func setPins(f func(*state)) {
	buildMu.Lock()
	defer buildMu.Unlock()

	next := *st.Load()
	f(&next)
	st.Store(&next)
}
