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

// Builder assembles the alias Registry and the Resolver for a Config.
// The process-wide state in package meta calls it on every rebuild.
type Builder interface {
	// BuildRegistry returns a registry for cfg; prev, when non-nil, is the
	// registry being replaced and its aliases may be carried over.
	BuildRegistry(cfg Config, prev Registry) Registry
	// BuildResolver returns a resolver that consults reg.
	BuildResolver(cfg Config, reg Registry) Resolver
}
