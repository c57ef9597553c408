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

package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"dirpx.dev/meta/config"
	"dirpx.dev/meta/internal/manifest"
	"dirpx.dev/meta/internal/zoo"
	"dirpx.dev/meta/metatype"
)

func newCreateCmd(a *app) *cobra.Command {
	var (
		path      string
		qualified bool
	)

	cmd := &cobra.Command{
		Use:   "create --manifest FILE",
		Short: "Create and destroy the zoo animals a manifest names",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if path == "" {
				return usageError(errors.New("--manifest is required"))
			}
			m, err := manifest.Load(path)
			if err != nil {
				return err
			}

			reg := metatype.New[zoo.Animal](config.NewConfig(config.WithQualifiedNames(qualified)), nil)
			if !matchesBase(reg.Base().Name, m.Base) {
				return fmt.Errorf("manifest base %q does not match %s", m.Base, reg.Base().Name)
			}
			names, err := zoo.RegisterAll(reg)
			if err != nil {
				return err
			}
			reg.Freeze()
			a.logger.Debug("registered metatypes", "names", names)

			return a.create(reg, m)
		},
	}

	cmd.Flags().StringVarP(&path, "manifest", "m", "", "manifest file (.yaml, .yml or .hcl)")
	cmd.Flags().BoolVar(&qualified, "qualified", false, "register package-qualified names (zoo.Cat)")
	return cmd
}

// create instantiates every object in m, prints its talk line and destroys
// it. Failures do not stop the run; they are joined into the result.
func (a *app) create(reg *metatype.Registry[zoo.Animal], m *manifest.Manifest) error {
	var errs []error
	for _, o := range m.Objects {
		for i := range o.Count {
			animal, err := reg.Create(o.Type)
			if err != nil {
				a.logger.Error("create failed", "object", o.Name, "type", o.Type, "err", err)
				errs = append(errs, fmt.Errorf("object %q: %w", o.Name, err))
				break
			}
			a.logger.Info("created", "object", o.Name, "type", o.Type, "id", animal.ID())
			fmt.Fprintf(a.out, "%s[%d] %s: %s\n", o.Name, i, o.Type, animal.Talk())

			if err := reg.Destroy(animal); err != nil {
				errs = append(errs, fmt.Errorf("object %q: %w", o.Name, err))
			}
		}
	}
	return errors.Join(errs...)
}

// matchesBase accepts an empty base, the full identity name, or any
// "/" or "." separated suffix of it ("Animal", "zoo.Animal").
func matchesBase(full, base string) bool {
	return base == "" || base == full ||
		strings.HasSuffix(full, "."+base) || strings.HasSuffix(full, "/"+base)
}
