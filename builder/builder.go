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

package builder

import (
	"dirpx.dev/meta/apis"
	"dirpx.dev/meta/registry"
	"dirpx.dev/meta/resolver"
	"dirpx.dev/meta/strategy"
)

// New creates and returns the default apis.Builder.
func New() apis.Builder {
	return &builder{}
}

// builder is the default Builder; it carries no state.
type builder struct{}

// BuildRegistry builds a new alias registry for cfg. Entries of a previous
// registry are carried over; ones that no longer normalize under cfg are dropped.
func (b *builder) BuildRegistry(cfg apis.Config, prev apis.Registry) apis.Registry {
	next := registry.New(cfg)
	if prev != nil {
		for _, e := range prev.Entries() {
			_ = next.Register(e.Type, e.Name)
		}
	}
	return next
}

// BuildResolver builds the naming chain: Namer, then aliases, then reflection.
func (b *builder) BuildResolver(_ apis.Config, reg apis.Registry) apis.Resolver {
	return resolver.New(
		strategy.NewNamerStrategy(),
		strategy.NewRegistryStrategy(reg),
		strategy.NewReflectStrategy(),
	)
}
