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

// Package enumgen generates enum.Table declarations for integer constant
// types, the way stringer generates String methods.
package enumgen

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"go/ast"
	"go/format"
	"go/token"
	"go/types"
	"os"
	"path/filepath"
	"strings"
	"text/template"
	"unicode"
	"unicode/utf8"

	"golang.org/x/tools/go/packages"
)

var (
	// ErrTypeNotFound is returned when the package does not declare the type.
	ErrTypeNotFound = errors.New("meta(enumgen): type not found")
	// ErrNotInteger is returned when the type is not a named integer type.
	ErrNotInteger = errors.New("meta(enumgen): type is not a named integer type")
	// ErrNoConstants is returned when no constant of the type is declared.
	ErrNoConstants = errors.New("meta(enumgen): no constants of type")
)

// Options configures Generate.
type Options struct {
	// Dir is the package directory; "" means the working directory.
	Dir string
	// Type is the enumeration type name.
	Type string
	// Output is the file to write; "" means <lower(type)>_enum.go in Dir.
	Output string
	// Stringer adds a String method backed by the table.
	Stringer bool
	// Text adds MarshalText and UnmarshalText methods.
	Text bool
	// Tags are build tags passed to the loader.
	Tags []string
}

// Spec is everything the template needs.
type Spec struct {
	Package   string
	Type      string
	Var       string
	Constants []string
	Stringer  bool
	Text      bool
}

//go:embed enum.go.tmpl
var fileTemplate string

var tmpl = template.Must(template.New("enum").Parse(fileTemplate))

// Generate inspects opts.Dir, renders the table for opts.Type and writes it.
// It returns the path written.
func Generate(opts Options) (string, error) {
	spec, err := Inspect(opts.Dir, opts.Type, opts.Tags...)
	if err != nil {
		return "", err
	}
	spec.Stringer, spec.Text = opts.Stringer, opts.Text

	src, err := Render(spec)
	if err != nil {
		return "", err
	}

	out := opts.Output
	if out == "" {
		out = filepath.Join(opts.Dir, strings.ToLower(opts.Type)+"_enum.go")
	}
	if err := os.WriteFile(out, src, 0o644); err != nil {
		return "", fmt.Errorf("meta(enumgen): %w", err)
	}
	return out, nil
}

// Inspect loads the package in dir and collects the constants of typeName
// in source declaration order. Blank constants are skipped.
func Inspect(dir, typeName string, tags ...string) (*Spec, error) {
	cfg := &packages.Config{
		Mode: packages.NeedName |
			packages.NeedTypes |
			packages.NeedTypesInfo |
			packages.NeedSyntax,
		Dir:  dir,
	}
	if len(tags) > 0 {
		cfg.BuildFlags = []string{"-tags=" + strings.Join(tags, ",")}
	}
	pkgs, err := packages.Load(cfg, ".")
	if err != nil {
		return nil, fmt.Errorf("meta(enumgen): loading %s: %w", dir, err)
	}
	if len(pkgs) != 1 {
		return nil, fmt.Errorf("meta(enumgen): %d packages in %s, want 1", len(pkgs), dir)
	}
	pkg := pkgs[0]
	if len(pkg.Errors) > 0 {
		errs := make([]error, len(pkg.Errors))
		for i, e := range pkg.Errors {
			errs[i] = e
		}
		return nil, fmt.Errorf("meta(enumgen): %w", errors.Join(errs...))
	}
	return collect(pkg, typeName)
}

func collect(pkg *packages.Package, typeName string) (*Spec, error) {
	obj, ok := pkg.Types.Scope().Lookup(typeName).(*types.TypeName)
	if !ok {
		return nil, fmt.Errorf("%w: %s.%s", ErrTypeNotFound, pkg.Name, typeName)
	}
	named, ok := obj.Type().(*types.Named)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotInteger, typeName)
	}
	if b, ok := named.Underlying().(*types.Basic); !ok || b.Info()&types.IsInteger == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNotInteger, typeName)
	}

	spec := &Spec{Package: pkg.Name, Type: typeName, Var: varName(typeName)}
	for _, file := range pkg.Syntax {
		for _, decl := range file.Decls {
			gd, ok := decl.(*ast.GenDecl)
			if !ok || gd.Tok != token.CONST {
				continue
			}
			for _, s := range gd.Specs {
				for _, id := range s.(*ast.ValueSpec).Names {
					if id.Name == "_" {
						continue
					}
					c, ok := pkg.TypesInfo.Defs[id].(*types.Const)
					if ok && types.Identical(c.Type(), named) {
						spec.Constants = append(spec.Constants, id.Name)
					}
				}
			}
		}
	}
	if len(spec.Constants) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoConstants, typeName)
	}
	return spec, nil
}

// Render executes the template and gofmts the result.
func Render(spec *Spec) ([]byte, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, spec); err != nil {
		return nil, fmt.Errorf("meta(enumgen): executing template: %w", err)
	}
	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("meta(enumgen): formatting output: %w", err)
	}
	return src, nil
}

// varName turns "Color" into "colorEnum".
func varName(typeName string) string {
	r, n := utf8.DecodeRuneInString(typeName)
	return string(unicode.ToLower(r)) + typeName[n:] + "Enum"
}
