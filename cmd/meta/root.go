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
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"dirpx.dev/meta/internal/logging"
)

// app is the state shared by subcommands.
type app struct {
	out    io.Writer
	errOut io.Writer
	logger *slog.Logger

	logLevel  string
	logFormat string
}

func newRootCmd(outW, errW io.Writer) *cobra.Command {
	a := &app{out: outW, errOut: errW}

	root := &cobra.Command{
		Use:           "meta",
		Short:         "Metatype registry and enum reflection tools",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			logger, err := logging.New(a.logLevel, a.logFormat, a.errOut)
			if err != nil {
				return usageError(err)
			}
			a.logger = logger.With("cmd", cmd.Name())
			return nil
		},
	}
	root.SetOut(outW)
	root.SetErr(errW)
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return usageError(err)
	})

	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "info",
		"log level ("+strings.Join(logging.Levels(), "|")+")")
	root.PersistentFlags().StringVar(&a.logFormat, "log-format", "auto",
		"log format ("+strings.Join(logging.Formats(), "|")+")")

	root.AddCommand(
		newEnumgenCmd(a),
		newCreateCmd(a),
		newIdentityCmd(a),
	)
	return root
}
