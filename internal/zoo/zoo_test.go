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

package zoo_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dirpx.dev/meta/config"
	"dirpx.dev/meta/internal/zoo"
	"dirpx.dev/meta/metatype"
)

func TestRegisterAll(t *testing.T) {
	r := metatype.New[zoo.Animal](config.NewConfig(), nil)
	names, err := zoo.RegisterAll(r)
	require.NoError(t, err)
	assert.Equal(t, []string{"Cat", "Duck", "Cow"}, names)

	before := zoo.Live()
	for name, talk := range map[string]string{"Cat": "Mew!", "Duck": "Quack!", "Cow": "Moo!"} {
		a, err := r.Create(name)
		require.NoError(t, err, name)
		assert.Equal(t, talk, a.Talk())
		assert.NotEqual(t, uuid.Nil, a.ID())
		require.NoError(t, r.Destroy(a))
	}
	assert.Equal(t, before, zoo.Live())
}

func TestRegisterAll_Twice(t *testing.T) {
	r := metatype.New[zoo.Animal](config.NewConfig(), nil)
	_, err := zoo.RegisterAll(r)
	require.NoError(t, err)

	names, err := zoo.RegisterAll(r)
	require.ErrorIs(t, err, metatype.ErrDuplicateRegistration)
	assert.Empty(t, names)
}

func TestRegisterAll_Qualified(t *testing.T) {
	r := metatype.New[zoo.Animal](config.NewConfig(config.WithQualifiedNames(true)), nil)
	names, err := zoo.RegisterAll(r)
	require.NoError(t, err)
	// Cow names itself; Namer wins over reflection.
	assert.Equal(t, []string{"zoo.Cat", "zoo.Duck", "Cow"}, names)
}

func TestDuck_CloseIdempotent(t *testing.T) {
	d := &zoo.Duck{}
	require.NoError(t, d.Init())
	before := zoo.Live()
	require.NoError(t, d.Close())
	require.NoError(t, d.Close())
	assert.Equal(t, before-1, zoo.Live())
}
