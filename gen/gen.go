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

// Package gen holds what every output generator shares: the options a source
// unit is translated with, in-band option directives, and the splitting of a
// batch file into units.
package gen // import "akhil.cc/mqdown/gen"

import (
	"fmt"
	"io"
	"strings"

	"akhil.cc/mqdown/ast"
	sq "github.com/kballard/go-shellquote"
	"github.com/spf13/pflag"
)

// Defaults is the set of font styles applied to a whole unit.
type Defaults uint8

const (
	DefaultRoman Defaults = 1 << iota
	DefaultSansSerif
)

func (d Defaults) Has(x Defaults) bool { return d&x != 0 }

// ParseDefault converts a style name into a Defaults bit.
func ParseDefault(s string) (Defaults, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "roman":
		return DefaultRoman, nil
	case "sans-serif", "sans", "sansserif":
		return DefaultSansSerif, nil
	}
	return 0, fmt.Errorf("unknown default font %q", s)
}

// Options configure the translation of one unit.
type Options struct {
	Defaults Defaults
	Justify  ast.Justify
	// Colour is a hex code ("#000", "ff0000") or a colour name.
	Colour string
}

// DefaultOptions returns left-justified, black, italic-baseline options.
func DefaultOptions() Options {
	return Options{Justify: ast.Left, Colour: "#000"}
}

// IsDefaultColour reports whether c leaves text in the editor's own colour.
func IsDefaultColour(c string) bool {
	switch strings.ToLower(strings.TrimSpace(c)) {
	case "", "black", "#000", "#000000":
		return true
	}
	return false
}

// DirectivePrefix starts a line that changes options instead of holding source.
const DirectivePrefix = `\set`

// IsDirective reports whether line is an option directive.
func IsDirective(line string) bool {
	line = strings.TrimSpace(line)
	return line == DirectivePrefix || strings.HasPrefix(line, DirectivePrefix+" ")
}

// ParseDirective applies the directive line to base and returns the result.
// Its arguments are split according to the Bourne shell's word-splitting rules
// and understand these flags:
//
//	-j, --justify left|center|right
//	-c, --colour  code or name
//	-r, --roman
//	-s, --sans-serif
//	    --plain   clear the default fonts
func ParseDirective(line string, base Options) (Options, error) {
	if !IsDirective(line) {
		return base, fmt.Errorf("not a directive: %q", line)
	}
	words, err := sq.Split(strings.TrimPrefix(strings.TrimSpace(line), DirectivePrefix))
	if err != nil {
		return base, fmt.Errorf("directive %q: %w", line, err)
	}
	var (
		justify, colour     string
		roman, sans, plain bool
	)
	fs := pflag.NewFlagSet(DirectivePrefix, pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVarP(&justify, "justify", "j", "", "")
	fs.StringVarP(&colour, "colour", "c", "", "")
	fs.BoolVarP(&roman, "roman", "r", false, "")
	fs.BoolVarP(&sans, "sans-serif", "s", false, "")
	fs.BoolVar(&plain, "plain", false, "")
	if err := fs.Parse(words); err != nil {
		return base, fmt.Errorf("directive %q: %w", line, err)
	}
	if fs.NArg() > 0 {
		return base, fmt.Errorf("directive %q: unexpected argument %q", line, fs.Arg(0))
	}
	opts := base
	if fs.Changed("justify") {
		if opts.Justify, err = ast.ParseJustify(justify); err != nil {
			return base, fmt.Errorf("directive %q: %w", line, err)
		}
	}
	if fs.Changed("colour") {
		if strings.TrimSpace(colour) == "" {
			return base, fmt.Errorf("directive %q: empty colour", line)
		}
		opts.Colour = colour
	}
	if plain {
		opts.Defaults = 0
	}
	if roman && sans {
		return base, fmt.Errorf("directive %q: --roman and --sans-serif are mutually exclusive", line)
	}
	if roman {
		opts.Defaults = DefaultRoman
	}
	if sans {
		opts.Defaults = DefaultSansSerif
	}
	return opts, nil
}

// Separator divides the units of a batch file.
const Separator = "\n\n\\next\n\n"

// Unit is one independently translated piece of source.
type Unit struct {
	Src     string
	Options Options
}

// SplitUnits splits src on Separator. Trailing newlines of each unit are
// dropped. A unit whose first line is a directive is translated with base
// updated by that directive; other units use base.
func SplitUnits(src string, base Options) ([]Unit, error) {
	parts := strings.Split(src, Separator)
	units := make([]Unit, 0, len(parts))
	for i, s := range parts {
		u := Unit{Src: strings.TrimRight(s, "\r\n"), Options: base}
		if first, rest, _ := strings.Cut(u.Src, "\n"); IsDirective(first) {
			opts, err := ParseDirective(first, base)
			if err != nil {
				return nil, fmt.Errorf("unit %d: %w", i, err)
			}
			u.Src, u.Options = rest, opts
		}
		units = append(units, u)
	}
	return units, nil
}
