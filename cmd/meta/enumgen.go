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

	"github.com/spf13/cobra"

	"dirpx.dev/meta/internal/enumgen"
)

func newEnumgenCmd(a *app) *cobra.Command {
	var opts enumgen.Options

	cmd := &cobra.Command{
		Use:   "enumgen --type T [--dir D] [--output F]",
		Short: "Generate an enum.Table for an integer constant type",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if opts.Type == "" {
				return usageError(errors.New("--type is required"))
			}
			a.logger.Debug("inspecting package", "dir", opts.Dir, "type", opts.Type)
			path, err := enumgen.Generate(opts)
			if err != nil {
				return err
			}
			a.logger.Info("generated enum table", "type", opts.Type, "path", path)
			fmt.Fprintln(a.out, path)
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.Type, "type", "", "enumeration type name")
	f.StringVar(&opts.Dir, "dir", ".", "package directory")
	f.StringVarP(&opts.Output, "output", "o", "", "output file (default <type>_enum.go in --dir)")
	f.BoolVar(&opts.Stringer, "stringer", false, "emit a String method")
	f.BoolVar(&opts.Text, "text", false, "emit MarshalText and UnmarshalText methods")
	f.StringSliceVar(&opts.Tags, "tags", nil, "build tags")
	return cmd
}
