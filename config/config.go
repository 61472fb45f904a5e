// MIT License

// Copyright (c) 2018 Akhil Indurti

// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:

// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.

// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

// Package config loads mqdown options files.
//
// A file is TOML unless its extension is .yaml or .yml:
//
//	colour = "#1565C0"
//	justify = "center"
//	defaults = ["roman"]
//	reserved_words = "words.txt"
//	extra_reserved = ["desmos"]
//
// A relative reserved_words path is resolved against the directory of the
// options file.
package config // import "akhil.cc/mqdown/config"

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"akhil.cc/mqdown/ast"
	"akhil.cc/mqdown/gen"
	"akhil.cc/mqdown/reserved"
	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// File is the content of an options file.
type File struct {
	Colour        string   `toml:"colour" yaml:"colour"`
	Justify       string   `toml:"justify" yaml:"justify"`
	Defaults      []string `toml:"defaults" yaml:"defaults"`
	ReservedWords string   `toml:"reserved_words" yaml:"reserved_words"`
	ExtraReserved []string `toml:"extra_reserved" yaml:"extra_reserved"`

	dir string
}

// Format is the syntax of an options file.
type Format int

const (
	FormatTOML Format = iota
	FormatYAML
)

func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	}
	return "unknown"
}

// FormatOf picks the format from the extension of path.
func FormatOf(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	}
	return FormatTOML
}

// Load reads the options file at path. Environment variables in path are
// expanded.
func Load(path string) (*File, error) {
	path = os.ExpandEnv(path)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	f, err := Parse(data, FormatOf(path))
	if err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	f.dir = filepath.Dir(path)
	return f, nil
}

// Parse decodes an options file held in memory.
func Parse(data []byte, format Format) (*File, error) {
	var f File
	switch format {
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
			return nil, err
		}
	default:
		md, err := toml.Decode(string(data), &f)
		if err != nil {
			return nil, err
		}
		if un := md.Undecoded(); len(un) > 0 {
			return nil, fmt.Errorf("unknown key %q", un[0].String())
		}
	}
	return &f, nil
}

// Options merges the file into base. Fields the file leaves empty keep the
// value from base.
func (f *File) Options(base gen.Options) (gen.Options, error) {
	opts := base
	if c := strings.TrimSpace(f.Colour); c != "" {
		opts.Colour = c
	}
	if f.Justify != "" {
		j, err := ast.ParseJustify(f.Justify)
		if err != nil {
			return base, err
		}
		opts.Justify = j
	}
	if f.Defaults != nil {
		opts.Defaults = 0
		for _, s := range f.Defaults {
			d, err := gen.ParseDefault(s)
			if err != nil {
				return base, err
			}
			opts.Defaults |= d
		}
	}
	return opts, nil
}

// Words returns the built-in reserved words, followed by those of the
// reserved_words file and extra_reserved.
func (f *File) Words() (reserved.Words, error) {
	w := reserved.Default()
	if f.ReservedWords != "" {
		path := os.ExpandEnv(f.ReservedWords)
		if !filepath.IsAbs(path) && f.dir != "" {
			path = filepath.Join(f.dir, path)
		}
		fw, err := reserved.LoadFile(path)
		if err != nil {
			return nil, err
		}
		w = reserved.Merge(w, fw)
	}
	return reserved.Merge(w, f.ExtraReserved), nil
}
