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
	"strings"

	"akhil.cc/mqdown/ast"
	"akhil.cc/mqdown/gen"
)

// prepare wraps the root of a parsed tree according to the unit options.
func prepare(n ast.Node, opts gen.Options) ast.Node {
	if opts.Defaults.Has(gen.DefaultRoman) {
		n = &ast.Roman{X: n}
	}
	if opts.Defaults.Has(gen.DefaultSansSerif) {
		n = &ast.SansSerif{X: n}
	}
	if !gen.IsDefaultColour(opts.Colour) {
		n = &ast.Colour{Code: &ast.Text{Lit: strings.TrimSpace(opts.Colour)}, X: n}
	}
	return n
}

// seed returns the context the root is configured with. The editor draws
// letters in italics unless told otherwise, so italics is always the baseline.
func seed(opts gen.Options) ast.Context {
	return ast.Context{
		Font:    ast.Font(0).With(ast.StyleItalics),
		Colour:  strings.TrimSpace(opts.Colour),
		Justify: opts.Justify,
	}
}

// configure stores c in n and propagates it to n's children, first letting n
// rewrite its child slots from c. It must run exactly once per tree, before
// rendering.
func (r *renderer) configure(n ast.Node, c ast.Context) {
	n.Configure(c)
	switch t := n.(type) {
	case *ast.Text:
	case *ast.Bold:
		r.configure(t.X, c.With(ast.StyleBold))
	case *ast.Italics:
		if c.Font.Has(ast.StyleBold) {
			t.X = &ast.Bold{X: t.X}
		}
		r.configure(t.X, c.With(ast.StyleItalics))
	case *ast.Teletype:
		t.X = layer(t.X, c.Font)
		r.configure(t.X, c.With(ast.StyleTeletype))
	case *ast.SansSerif:
		t.X = layer(t.X, c.Font)
		r.configure(t.X, c.With(ast.StyleSansSerif))
	case *ast.Roman:
		if c.Font.Has(ast.StyleRoman) {
			r.configure(t.X, c)
			return
		}
		if c.Font.Has(ast.StyleBold) {
			t.X = &ast.Bold{X: t.X}
		}
		if c.Font.Has(ast.StyleItalics) {
			t.X = &ast.Italics{X: t.X}
		}
		r.configure(t.X, c.With(ast.StyleRoman))
	case *ast.Colour:
		cc := c
		cc.Colour = r.colour(t)
		r.configure(t.Code, cc)
		r.configure(t.X, cc)
	case *ast.Paren:
		t.Template = template(c)
		r.configure(t.X, c)
	default:
		for _, child := range ast.Children(n) {
			r.configure(child, c)
		}
	}
}

// layer keeps the styles of f explicit underneath a sans-serif or teletype
// span, which would otherwise drop them. Order matters: bold ends up innermost.
func layer(x ast.Node, f ast.Font) ast.Node {
	if f.Has(ast.StyleBold) {
		x = &ast.Bold{X: x}
	}
	if f.Has(ast.StyleItalics) {
		x = &ast.Italics{X: x}
	}
	if f.Has(ast.StyleRoman) {
		x = &ast.Roman{X: x}
	}
	return x
}

// template picks the command a Paren renders with from the strongest style
// of c.
func template(c ast.Context) string {
	switch {
	case c.Font.Has(ast.StyleSansSerif):
		return `\mathsf{%s}`
	case c.Font.Has(ast.StyleTeletype):
		return `\mathtt{%s}`
	case c.Font.Has(ast.StyleRoman):
		return `\mathrm{%s}`
	case c.Font.Has(ast.StyleItalics):
		return `\mathit{%s}`
	case c.Font.Has(ast.StyleBold):
		return `\mathbf{%s}`
	}
	return `\textcolor{` + c.Colour + `}{%s}`
}

// colour is the colour a Colour node sets: its code rendered as text and
// upper-cased.
func (r *renderer) colour(n *ast.Colour) string {
	return strings.ToUpper(r.text(n.Code.Lit))
}
