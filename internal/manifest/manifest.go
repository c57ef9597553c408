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

// Package manifest loads files naming the metatypes to instantiate.
//
// A manifest lists objects by metatype name. YAML:
//
//	base: Animal
//	objects:
//	  - name: tom
//	    type: Cat
//	    count: 2
//
// HCL:
//
//	base = "Animal"
//	object "tom" {
//	  type  = "Cat"
//	  count = 2
//	}
package manifest

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"gopkg.in/yaml.v3"
)

var (
	// ErrUnsupportedFormat is returned for file extensions other than
	// .yaml, .yml and .hcl.
	ErrUnsupportedFormat = errors.New("meta(manifest): unsupported format")
	// ErrInvalid is returned when a decoded manifest fails validation.
	ErrInvalid = errors.New("meta(manifest): invalid manifest")
)

// Manifest is a decoded manifest file.
type Manifest struct {
	// Base names the base capability the objects share. Informational.
	Base string `yaml:"base"`
	// Objects are created in order.
	Objects []Object `yaml:"objects"`
}

// Object asks for Count instances of metatype Type.
type Object struct {
	// Name labels the object in logs; it defaults to Type.
	Name  string `yaml:"name"`
	Type  string `yaml:"type"`
	Count int    `yaml:"count"`
}

type hclManifest struct {
	Base    string       `hcl:"base,optional"`
	Objects []*hclObject `hcl:"object,block"`
}

type hclObject struct {
	Name  string `hcl:"name,label"`
	Type  string `hcl:"type"`
	Count int    `hcl:"count,optional"`
}

// Load reads the manifest at path, picking the decoder by extension.
func Load(path string) (*Manifest, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("meta(manifest): %w", err)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return ParseYAML(src)
	case ".hcl":
		return ParseHCL(src, path)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, path)
	}
}

// ParseYAML decodes a YAML manifest. Unknown keys are rejected.
func ParseYAML(src []byte) (*Manifest, error) {
	dec := yaml.NewDecoder(bytes.NewReader(src))
	dec.KnownFields(true)

	var m Manifest
	if err := dec.Decode(&m); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	return m.normalize()
}

// ParseHCL decodes an HCL manifest; filename is used in diagnostics.
func ParseHCL(src []byte, filename string) (*Manifest, error) {
	f, diags := hclparse.NewParser().ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("%w: %w", ErrInvalid, diags)
	}
	var hm hclManifest
	if diags := gohcl.DecodeBody(f.Body, nil, &hm); diags.HasErrors() {
		return nil, fmt.Errorf("%w: %w", ErrInvalid, diags)
	}

	m := Manifest{Base: hm.Base, Objects: make([]Object, 0, len(hm.Objects))}
	for _, o := range hm.Objects {
		m.Objects = append(m.Objects, Object{Name: o.Name, Type: o.Type, Count: o.Count})
	}
	return m.normalize()
}

// normalize fills defaults and validates.
func (m Manifest) normalize() (*Manifest, error) {
	var errs []error
	for i := range m.Objects {
		o := &m.Objects[i]
		o.Type = strings.TrimSpace(o.Type)
		if o.Type == "" {
			errs = append(errs, fmt.Errorf("%w: object %d has no type", ErrInvalid, i))
			continue
		}
		if o.Name == "" {
			o.Name = o.Type
		}
		switch {
		case o.Count == 0:
			o.Count = 1
		case o.Count < 0:
			errs = append(errs, fmt.Errorf("%w: object %q has count %d", ErrInvalid, o.Name, o.Count))
		}
	}
	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return &m, nil
}

// Total returns the number of instances the manifest asks for.
func (m *Manifest) Total() int {
	n := 0
	for _, o := range m.Objects {
		n += o.Count
	}
	return n
}
