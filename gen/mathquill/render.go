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

package mathquill

import (
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"

	"akhil.cc/mqdown/ast"
	"akhil.cc/mqdown/reserved"
)

const (
	zwnj = "\u200c"
	rlm  = "\u200f"
)

type replacement struct {
	old, new string
}

// renderer turns a configured tree into MathQuill LaTeX. It is read-only
// after construction.
type renderer struct {
	subst []replacement
}

func newRenderer(words reserved.Words) *renderer {
	return &renderer{subst: substitutions(words)}
}

// substitutions returns the replacements applied to literal text, in order.
// A pattern always comes before the patterns it contains: "--" before "-",
// and longer reserved words before shorter ones.
func substitutions(words reserved.Words) []replacement {
	t := []replacement{
		{" ", `\ `},
		{"--", "\u2015"},
		{"-", "\u2012"},
	}
	ws := make([]string, 0, len(words))
	for _, w := range words {
		if w != "" {
			ws = append(ws, w)
		}
	}
	sort.SliceStable(ws, func(i, j int) bool {
		return utf8.RuneCountInString(ws[i]) > utf8.RuneCountInString(ws[j])
	})
	for _, w := range ws {
		t = append(t, replacement{w, split(w)})
	}
	return t
}

// split inserts a zero-width non-joiner in the middle of w, so the editor
// no longer recognises it as a keyword.
func split(w string) string {
	r := []rune(w)
	h := len(r) / 2
	return string(r[:h]) + zwnj + string(r[h:])
}

func (r *renderer) text(s string) string {
	for _, rp := range r.subst {
		s = strings.ReplaceAll(s, rp.old, rp.new)
	}
	return s
}

// cmd builds \name{arg}{arg}...
func cmd(name string, args ...string) string {
	var b strings.Builder
	b.WriteString(`\`)
	b.WriteString(name)
	for _, a := range args {
		b.WriteString("{")
		b.WriteString(a)
		b.WriteString("}")
	}
	return b.String()
}

// arg renders n as the argument of a command written without braces: text
// is braced, anything else already renders as a single command.
func (r *renderer) arg(n ast.Node) string {
	switch n.(type) {
	case *ast.Text, *ast.Concat:
		return "{" + r.render(n) + "}"
	}
	return r.render(n)
}

func (r *renderer) render(n ast.Node) string {
	switch t := n.(type) {
	case *ast.Text:
		return r.text(t.Lit)
	case *ast.Concat:
		return r.render(t.Left) + r.render(t.Right)
	case *ast.Bold:
		return cmd("mathbf", r.render(t.X))
	case *ast.Italics:
		return cmd("mathit", r.render(t.X))
	case *ast.Teletype:
		return cmd("mathtt", r.render(t.X))
	case *ast.SansSerif:
		return cmd("mathsf", r.render(t.X))
	case *ast.Roman:
		if t.Ctx().Font.Has(ast.StyleRoman) {
			return r.render(t.X)
		}
		return cmd("mathrm", r.render(t.X))
	case *ast.Colour:
		return cmd("textcolor", r.colour(t)) + r.arg(t.X)
	case *ast.Big:
		return cmd("class", "dcg-displaysize-large") + r.arg(t.X)
	case *ast.Smol:
		return cmd("class", "dcg-mq-sub") + r.arg(t.X)
	case *ast.Paren:
		return fmt.Sprintf(t.Template, r.render(t.X))
	case *ast.MultilineHeader, *ast.LineJoin:
		return r.block(n).finish()
	}
	panic(fmt.Sprintf("mathquill: unexpected node %T", n))
}

// block renders a line chain without finishing it, so that a parent
// LineJoin can append to it.
func (r *renderer) block(n ast.Node) block {
	switch t := n.(type) {
	case *ast.LineJoin:
		return r.block(t.Left).join(r.render(t.Right), t.Ctx())
	case *ast.MultilineHeader:
		return newBlock(r.render(t.X), t.Ctx())
	}
	return newBlock(r.render(n), n.Ctx())
}

// A block is a partially rendered multi-line chain. Each justification has
// its own representation; only the root of a chain calls finish.
type block interface {
	join(line string, c ast.Context) block
	finish() string
}

func newBlock(line string, c ast.Context) block {
	switch c.Justify {
	case ast.Center:
		return centerBlock(cmd("textcolor", c.Colour, line))
	case ast.Right:
		return &rightBlock{lines: []string{line}}
	}
	return &leftBlock{lines: []string{line}}
}

// centerBlock nests lines in two-slot stacks. The finished stack is drawn
// transparent; every real line carries its own colour.
type centerBlock string

func (b centerBlock) join(line string, c ast.Context) block {
	return centerBlock(cmd("binom", string(b), cmd("textcolor", c.Colour, line)))
}

func (b centerBlock) finish() string {
	return cmd("textcolor", "transparent", string(b))
}

// rightBlock aligns lines to the bottom right. Each line opens a slot that
// holds every later line; the innermost slot is padded with a transparent
// copy of the longest line so the stack is as wide as its widest row.
type rightBlock struct {
	lines []string
}

func (b *rightBlock) join(line string, _ ast.Context) block {
	return &rightBlock{lines: append(b.lines[:len(b.lines):len(b.lines)], line)}
}

func (b *rightBlock) finish() string {
	s := cmd("textcolor", "transparent", longest(b.lines))
	for i := len(b.lines) - 1; i >= 0; i-- {
		s = cmd("class", "dcg-expression-bottom", rlm+b.lines[i]+s)
	}
	return s
}

// longest returns the first of lines with the most runes.
func longest(lines []string) string {
	var (
		l string
		n = -1
	)
	for _, s := range lines {
		if c := utf8.RuneCountInString(s); c > n {
			l, n = s, c
		}
	}
	return l
}

// leftBlock stacks every line but the last in a container and lets the
// last one flow inline after it.
type leftBlock struct {
	lines []string
}

func (b *leftBlock) join(line string, _ ast.Context) block {
	return &leftBlock{lines: append(b.lines[:len(b.lines):len(b.lines)], line)}
}

func (b *leftBlock) finish() string {
	n := len(b.lines)
	return cmd("class", "dcg-search-container", strings.Join(b.lines[:n-1], "")) + b.lines[n-1]
}
