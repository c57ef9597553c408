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
	"fmt"
	"reflect"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"dirpx.dev/meta"
	"dirpx.dev/meta/apis"
	"dirpx.dev/meta/internal/zoo"
)

func newIdentityCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "identity",
		Short: "Print type identities of the zoo types",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rows := []struct {
				t       reflect.Type
				named   apis.Identity
				unnamed apis.Identity
			}{
				{reflect.TypeFor[zoo.Animal](), meta.Identity[zoo.Animal](), meta.UnnamedIdentity[zoo.Animal]()},
				{reflect.TypeFor[*zoo.Cat](), meta.Identity[*zoo.Cat](), meta.UnnamedIdentity[*zoo.Cat]()},
				{reflect.TypeFor[*zoo.Duck](), meta.Identity[*zoo.Duck](), meta.UnnamedIdentity[*zoo.Duck]()},
				{reflect.TypeFor[*zoo.Cow](), meta.Identity[*zoo.Cow](), meta.UnnamedIdentity[*zoo.Cow]()},
				{reflect.TypeFor[[]zoo.Animal](), meta.Identity[[]zoo.Animal](), meta.UnnamedIdentity[[]zoo.Animal]()},
			}

			tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "METATYPE\tHASH\tCANONICAL")
			for _, r := range rows {
				if !r.named.Equal(r.unnamed) {
					return fmt.Errorf("identity mismatch for %s: %s vs %s", r.t, r.named, r.unnamed)
				}
				name := meta.NameOfType(r.t)
				if name == "" {
					name = "-"
				}
				fmt.Fprintf(tw, "%s\t%016x\t%s\n", name, r.named.Hash, r.named.Name)
			}
			a.logger.Debug("printed identities", "count", len(rows))
			return tw.Flush()
		},
	}
}
