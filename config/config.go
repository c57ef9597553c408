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

package config

import (
	"dirpx.dev/meta/apis"
)

const (
	// DefaultIncludeBuiltins represents the default for IncludeBuiltins.
	DefaultIncludeBuiltins = false
	// DefaultMaxUnwrap represents the default for MaxUnwrap.
	// A value of 4 covers any realistic **T registration.
	DefaultMaxUnwrap = 4
	// DefaultQualifiedNames represents the default for QualifiedNames.
	// Bare type names ("Cat") match what callers usually put in config files.
	DefaultQualifiedNames = false
	// DefaultAllowOverwrite represents the default for AllowOverwrite.
	// Duplicate registrations are rejected.
	DefaultAllowOverwrite = false
)

// NewConfig constructs an apis.Config from the given options.
func NewConfig(opts ...Option) apis.Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	if cfg.MaxUnwrap < 0 {
		cfg.MaxUnwrap = DefaultMaxUnwrap
	}
	return cfg
}

// DefaultConfig is the default configuration used when none is provided.
func DefaultConfig() apis.Config {
	return apis.Config{
		IncludeBuiltins: DefaultIncludeBuiltins,
		MaxUnwrap:       DefaultMaxUnwrap,
		QualifiedNames:  DefaultQualifiedNames,
		AllowOverwrite:  DefaultAllowOverwrite,
	}
}

// Option is a functional option that mutates an apis.Config during construction.
type Option func(*apis.Config)

// WithConfig replaces the whole configuration. Later options still apply.
func WithConfig(cfg apis.Config) Option {
	return func(c *apis.Config) {
		*c = cfg
	}
}

// WithIncludeBuiltins sets the IncludeBuiltins option.
func WithIncludeBuiltins(include bool) Option {
	return func(c *apis.Config) {
		c.IncludeBuiltins = include
	}
}

// WithMaxUnwrap sets the MaxUnwrap option.
// A negative value resets to the default.
func WithMaxUnwrap(max int) Option {
	return func(c *apis.Config) {
		if max < 0 {
			c.MaxUnwrap = DefaultMaxUnwrap
			return
		}
		c.MaxUnwrap = max
	}
}

// WithQualifiedNames sets the QualifiedNames option.
func WithQualifiedNames(qualified bool) Option {
	return func(c *apis.Config) {
		c.QualifiedNames = qualified
	}
}

// WithAllowOverwrite sets the AllowOverwrite option.
func WithAllowOverwrite(allow bool) Option {
	return func(c *apis.Config) {
		c.AllowOverwrite = allow
	}
}
