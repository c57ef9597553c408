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

// Package zoo is a small family of concrete types sharing the Animal base.
// The CLI and tests use it to exercise metatype registries end to end.
package zoo

import (
	"errors"
	"sync/atomic"

	"github.com/google/uuid"

	"dirpx.dev/meta/metatype"
)

// Animal is the base capability.
type Animal interface {
	// Talk returns the animal's sound.
	Talk() string
	// ID identifies the instance; it is set by Init.
	ID() uuid.UUID
}

// live counts initialized, not yet torn down animals.
var live atomic.Int64

// Live returns the number of animals created and not yet destroyed.
func Live() int64 { return live.Load() }

// Cat is torn down through Destroy.
type Cat struct{ id uuid.UUID }

func (c *Cat) Init() error {
	c.id = uuid.New()
	live.Add(1)
	return nil
}

func (c *Cat) Talk() string  { return "Mew!" }
func (c *Cat) ID() uuid.UUID { return c.id }

func (c *Cat) Destroy() error {
	live.Add(-1)
	return nil
}

// Duck is torn down through io.Closer.
type Duck struct {
	id     uuid.UUID
	closed bool
}

func (d *Duck) Init() error {
	d.id = uuid.New()
	live.Add(1)
	return nil
}

func (d *Duck) Talk() string  { return "Quack!" }
func (d *Duck) ID() uuid.UUID { return d.id }

// Close is safe to call twice.
func (d *Duck) Close() error {
	if d.closed {
		return nil
	}
	d.closed = true
	live.Add(-1)
	return nil
}

// Cow picks its own metatype name.
type Cow struct{ id uuid.UUID }

func (c *Cow) Init() error {
	c.id = uuid.NewSHA1(uuid.NameSpaceOID, []byte("cow"))
	live.Add(1)
	return nil
}

func (c *Cow) Talk() string       { return "Moo!" }
func (c *Cow) ID() uuid.UUID      { return c.id }
func (c *Cow) EntityName() string { return "Cow" }

func (c *Cow) Destroy() error {
	live.Add(-1)
	return nil
}

// RegisterAll registers Cat, Duck and Cow in r under their derived names
// and returns the names in registration order.
func RegisterAll(r *metatype.Registry[Animal]) ([]string, error) {
	var errs []error
	names := make([]string, 0, 3)
	for _, register := range []func(*metatype.Registry[Animal]) (string, error){
		metatype.RegisterType[Cat, Animal],
		metatype.RegisterType[Duck, Animal],
		metatype.RegisterType[Cow, Animal],
	} {
		name, err := register(r)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		names = append(names, name)
	}
	return names, errors.Join(errs...)
}
