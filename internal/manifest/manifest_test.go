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

package manifest

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

const yamlSrc = `
base: Animal
objects:
  - name: tom
    type: Cat
    count: 2
  - type: Duck
`

const hclSrc = `
base = "Animal"

object "tom" {
  type  = "Cat"
  count = 2
}

object "Duck" {
  type = "Duck"
}
`

var want = &Manifest{
	Base: "Animal",
	Objects: []Object{
		{Name: "tom", Type: "Cat", Count: 2},
		{Name: "Duck", Type: "Duck", Count: 1},
	},
}

func TestParse_YAMLAndHCLAgree(t *testing.T) {
	fromYAML, err := ParseYAML([]byte(yamlSrc))
	if err != nil {
		t.Fatalf("ParseYAML error = %v", err)
	}
	fromHCL, err := ParseHCL([]byte(hclSrc), "zoo.hcl")
	if err != nil {
		t.Fatalf("ParseHCL error = %v", err)
	}
	if diff := cmp.Diff(want, fromYAML); diff != "" {
		t.Errorf("YAML mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(fromYAML, fromHCL); diff != "" {
		t.Errorf("YAML and HCL disagree (-yaml +hcl):\n%s", diff)
	}
	if got := fromHCL.Total(); got != 3 {
		t.Errorf("Total() = %d, want 3", got)
	}
}

func TestLoad_DispatchesOnExtension(t *testing.T) {
	dir := t.TempDir()
	files := map[string]string{
		"zoo.yaml": yamlSrc,
		"zoo.YML":  yamlSrc,
		"zoo.hcl":  hclSrc,
	}
	for name, src := range files {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte(src), 0o600); err != nil {
			t.Fatal(err)
		}
		got, err := Load(path)
		if err != nil {
			t.Fatalf("Load(%s) error = %v", name, err)
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("Load(%s) mismatch (-want +got):\n%s", name, diff)
		}
	}
}

func TestLoad_Errors(t *testing.T) {
	dir := t.TempDir()
	txt := filepath.Join(dir, "zoo.txt")
	if err := os.WriteFile(txt, []byte(yamlSrc), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(txt); !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("Load(.txt) error = %v, want ErrUnsupportedFormat", err)
	}
	if _, err := Load(filepath.Join(dir, "missing.yaml")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Load(missing) error = %v, want os.ErrNotExist", err)
	}
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name string
		run  func() (*Manifest, error)
	}{
		{"yaml missing type", func() (*Manifest, error) {
			return ParseYAML([]byte("objects:\n  - name: x\n"))
		}},
		{"yaml negative count", func() (*Manifest, error) {
			return ParseYAML([]byte("objects:\n  - type: Cat\n    count: -1\n"))
		}},
		{"yaml unknown key", func() (*Manifest, error) {
			return ParseYAML([]byte("objects:\n  - type: Cat\n    colour: black\n"))
		}},
		{"hcl missing type", func() (*Manifest, error) {
			return ParseHCL([]byte(`object "x" {}`), "bad.hcl")
		}},
		{"hcl syntax", func() (*Manifest, error) {
			return ParseHCL([]byte(`object "x" {`), "bad.hcl")
		}},
		{"hcl unknown block", func() (*Manifest, error) {
			return ParseHCL([]byte(`thing "x" { type = "Cat" }`), "bad.hcl")
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := tt.run(); !errors.Is(err, ErrInvalid) {
				t.Fatalf("error = %v, want ErrInvalid", err)
			}
		})
	}
}

func TestParse_Empty(t *testing.T) {
	m, err := ParseYAML(nil)
	if err != nil {
		t.Fatalf("ParseYAML(nil) error = %v", err)
	}
	if m.Total() != 0 {
		t.Fatalf("Total() = %d, want 0", m.Total())
	}
}
