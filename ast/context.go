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

package ast

import (
	"errors"
	"fmt"
	"strings"
)

var errCodeReplaced = errors.New("ast: colour code must remain a *Text")

// Style is a single font style.
type Style uint8

const (
	StyleBold Style = 1 << iota
	StyleItalics
	StyleRoman
	StyleSansSerif
	StyleTeletype
)

var styleNames = [...]struct {
	s    Style
	name string
}{
	{StyleBold, "bold"},
	{StyleItalics, "italics"},
	{StyleRoman, "roman"},
	{StyleSansSerif, "sans-serif"},
	{StyleTeletype, "teletype"},
}

func (s Style) String() string {
	for _, n := range styleNames {
		if n.s == s {
			return n.name
		}
	}
	return fmt.Sprintf("Style(%d)", uint8(s))
}

// Font is the set of styles active at a node.
type Font uint8

// Has reports whether s is in the set.
func (f Font) Has(s Style) bool {
	return f&Font(s) != 0
}

// With returns a copy of f with s added. Styles form the priority chain
// bold < italics < roman < {sans-serif, teletype}; adding a style drops the
// styles below it, except that bold never drops anything.
func (f Font) With(s Style) Font {
	f |= Font(s)
	switch s {
	case StyleItalics:
		f &^= Font(StyleBold)
	case StyleRoman:
		f &^= Font(StyleBold | StyleItalics)
	case StyleSansSerif, StyleTeletype:
		f &^= Font(StyleBold | StyleItalics | StyleRoman)
	}
	return f
}

func (f Font) String() string {
	var names []string
	for _, n := range styleNames {
		if f.Has(n.s) {
			names = append(names, n.name)
		}
	}
	return "{" + strings.Join(names, ", ") + "}"
}

// Justify is the horizontal alignment of multi-line blocks.
type Justify int

const (
	Left Justify = iota
	Center
	Right
)

func (j Justify) String() string {
	switch j {
	case Left:
		return "left"
	case Center:
		return "center"
	case Right:
		return "right"
	}
	return fmt.Sprintf("Justify(%d)", int(j))
}

// ParseJustify converts a justification name into a Justify.
// The British spelling "centre" is accepted.
func ParseJustify(s string) (Justify, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "left":
		return Left, nil
	case "center", "centre":
		return Center, nil
	case "right":
		return Right, nil
	}
	return Left, fmt.Errorf("unknown justification %q", s)
}

// Context is the styling state inherited from the ancestors of a node.
// It is passed by value; a node hands a modified copy to its children.
type Context struct {
	Font    Font
	Colour  string
	Justify Justify
}

// With returns a copy of c whose font has s added.
func (c Context) With(s Style) Context {
	c.Font = c.Font.With(s)
	return c
}
