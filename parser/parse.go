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

// Package parser implements a tokenizer and parser for mqdown source. It takes
// in a string and outputs an ast.Node.
//
// The parser adheres to the following grammar:
//
//      expr = STRING | F_RUN |
//             BOLD expr BOLD |
//             BOLD_ITALICS expr BOLD_ITALICS |
//             ITALICS expr ITALICS |
//             TELETYPE expr TELETYPE |
//             ROMAN expr ROMAN |
//             OPEN_BRACE expr CLOSE_BRACE |
//             SIZE_MOD expr |
//             COLOUR expr |
//             expr LINE_BREAK expr |
//             expr expr .
//
// Ambiguities are resolved by precedence, lowest first, all left-associative:
//
//      LINE_BREAK
//      STRING F_RUN
//      COLOUR
//      SIZE_MOD
//      OPEN_BRACE CLOSE_BRACE ROMAN TELETYPE ITALICS BOLD BOLD_ITALICS
//      (implicit concatenation)
//
// An operator's operand keeps absorbing following expressions only while they
// start with a token of higher precedence than the operator. Implicit
// concatenation binds tightest, so "**bold**normal" is Concat(Bold, Text).
package parser // import "akhil.cc/mqdown/parser"

import (
	"strings"

	"akhil.cc/mqdown/ast"
)

// zwnj is the zero-width non-joiner placed around runs of f to keep the
// renderer from forming ligatures.
const zwnj = "\u200c"

// MustParse is like Parse but panics if the source cannot be parsed.
func MustParse(src string) ast.Node {
	n, err := Parse(src)
	if err != nil {
		panic("Parse error: " + err.Error())
	}
	return n
}

// Parse tokenizes and parses src. On failure it returns a *LexError or a
// *ParseError and no tree.
func Parse(src string) (ast.Node, error) {
	toks, err := Lex(src)
	if err != nil {
		return nil, err
	}
	return ParseTokens(toks)
}

// ParseTokens parses a token stream produced by Lex. A missing trailing EOF
// token is implied.
func ParseTokens(toks []Token) (ast.Node, error) {
	if len(toks) == 0 || toks[len(toks)-1].Kind != EOF {
		var pos Position
		if len(toks) > 0 {
			last := toks[len(toks)-1]
			pos = advance(last.Pos, last.Lit)
		} else {
			pos = Position{Line: 1, Column: 1}
		}
		toks = append(toks[:len(toks):len(toks)], Token{Kind: EOF, Pos: pos})
	}
	p := &parser{toks: toks}
	x, err := p.expr(0, EOF)
	if err != nil {
		return nil, err
	}
	if t := p.peek(); t.Kind != EOF {
		return nil, unexpected(t)
	}
	return x, nil
}

type parser struct {
	toks []Token
	i    int
}

func (p *parser) peek() Token {
	return p.toks[p.i]
}

func (p *parser) next() Token {
	t := p.toks[p.i]
	if p.i < len(p.toks)-1 {
		p.i++
	}
	return t
}

func (p *parser) expect(k Kind) error {
	if t := p.peek(); t.Kind != k {
		return unexpected(t)
	}
	p.next()
	return nil
}

func unexpected(t Token) error {
	return &ParseError{Kind: t.Kind, Pos: t.Pos}
}

// expr parses an expression that is the operand of an operator with
// precedence prec (0 when nothing is pending). closer is the delimiter that
// ends the enclosing span; it only closes the span at precedence 0, inside a
// pending operand it opens a new span instead.
func (p *parser) expr(prec int, closer Kind) (ast.Node, error) {
	x, err := p.operand()
	if err != nil {
		return nil, err
	}
	for {
		t := p.peek()
		switch {
		case t.Kind == LINE_BREAK:
			if prec >= LINE_BREAK.prec() {
				return x, nil
			}
			p.next()
			y, err := p.expr(LINE_BREAK.prec(), EOF)
			if err != nil {
				return nil, err
			}
			x = joinLines(x, y)
		case prec == 0 && closer.delimiter() && t.Kind == closer:
			return x, nil
		case t.Kind.startsExpr() && t.Kind.prec() > prec:
			// Concatenation outranks everything, so its right side is a
			// single operand.
			y, err := p.operand()
			if err != nil {
				return nil, err
			}
			x = &ast.Concat{Left: x, Right: y}
		default:
			return x, nil
		}
	}
}

// operand parses everything but concatenation and line breaks.
func (p *parser) operand() (ast.Node, error) {
	t := p.peek()
	switch t.Kind {
	case STRING:
		p.next()
		return &ast.Text{Lit: t.Lit}, nil
	case F_RUN:
		p.next()
		return &ast.Roman{X: &ast.Text{Lit: zwnj + t.Lit + zwnj}}, nil
	case OPEN_BRACE:
		p.next()
		x, err := p.expr(0, EOF)
		if err != nil {
			return nil, err
		}
		if err := p.expect(CLOSE_BRACE); err != nil {
			return nil, err
		}
		return x, nil
	case SIZE_MOD:
		p.next()
		x, err := p.expr(SIZE_MOD.prec(), EOF)
		if err != nil {
			return nil, err
		}
		for _, c := range strings.TrimSpace(t.Lit[1:]) {
			switch c {
			case '+':
				x = &ast.Big{X: x}
			case '-':
				x = &ast.Smol{X: x}
			}
		}
		return x, nil
	case COLOUR:
		p.next()
		x, err := p.expr(COLOUR.prec(), EOF)
		if err != nil {
			return nil, err
		}
		return &ast.Colour{Code: &ast.Text{Lit: t.Lit[2:]}, X: x}, nil
	case ROMAN, TELETYPE, BOLD_ITALICS, BOLD, ITALICS:
		p.next()
		x, err := p.expr(0, t.Kind)
		if err != nil {
			return nil, err
		}
		if err := p.expect(t.Kind); err != nil {
			return nil, err
		}
		return span(t.Kind, x), nil
	}
	return nil, unexpected(t)
}

func span(k Kind, x ast.Node) ast.Node {
	switch k {
	case ROMAN:
		return &ast.Roman{X: x}
	case TELETYPE:
		return &ast.Teletype{X: x}
	case BOLD_ITALICS:
		return &ast.Italics{X: &ast.Bold{X: x}}
	case BOLD:
		return &ast.Bold{X: x}
	}
	return &ast.Italics{X: x}
}

// joinLines appends line y to the block x, starting a new block when x is
// not one yet. Bare text on either side is wrapped in a Paren.
func joinLines(x, y ast.Node) ast.Node {
	x, y = stabilise(x), stabilise(y)
	switch x.(type) {
	case *ast.LineJoin, *ast.MultilineHeader:
	default:
		x = &ast.MultilineHeader{X: x}
	}
	return &ast.LineJoin{Left: x, Right: y}
}

func stabilise(n ast.Node) ast.Node {
	switch n.(type) {
	case *ast.Text, *ast.Concat:
		return &ast.Paren{X: n}
	}
	return n
}
