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

// Package logging builds the CLI's slog loggers.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"slices"

	"github.com/mattn/go-isatty"

	"dirpx.dev/meta/enum"
)

// Format selects the slog handler.
type Format int

const (
	// FormatAuto is text on a terminal and JSON otherwise.
	FormatAuto Format = iota
	FormatText
	FormatJSON
)

var formats = enum.MustNew(
	enum.Entry[Format]{Name: "auto", Value: FormatAuto},
	enum.Entry[Format]{Name: "text", Value: FormatText},
	enum.Entry[Format]{Name: "json", Value: FormatJSON},
)

var levels = enum.MustNew(
	enum.Entry[slog.Level]{Name: "debug", Value: slog.LevelDebug},
	enum.Entry[slog.Level]{Name: "info", Value: slog.LevelInfo},
	enum.Entry[slog.Level]{Name: "warn", Value: slog.LevelWarn},
	enum.Entry[slog.Level]{Name: "warning", Value: slog.LevelWarn},
	enum.Entry[slog.Level]{Name: "error", Value: slog.LevelError},
)

func (f Format) String() string { return formats.Format(f) }

// Formats lists the accepted format names.
func Formats() []string { return slices.Collect(formats.Names()) }

// Levels lists the accepted level names.
func Levels() []string { return slices.Collect(levels.Names()) }

// ParseFormat parses a format name case-insensitively.
func ParseFormat(s string) (Format, error) { return formats.Parse(s) }

// ParseLevel parses a level name case-insensitively.
func ParseLevel(s string) (slog.Level, error) { return levels.Parse(s) }

// New creates a logger writing to w. It does not touch slog.Default.
func New(level, format string, w io.Writer) (*slog.Logger, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}
	f, err := ParseFormat(format)
	if err != nil {
		return nil, fmt.Errorf("log format: %w", err)
	}
	if f == FormatAuto {
		f = detect(w)
	}

	opts := &slog.HandlerOptions{Level: lvl}
	var handler slog.Handler
	if f == FormatJSON {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}
	return slog.New(handler), nil
}

// detect picks text for terminals and JSON for everything else.
func detect(w io.Writer) Format {
	if f, ok := w.(interface{ Fd() uintptr }); ok {
		if isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()) {
			return FormatText
		}
	}
	return FormatJSON
}
