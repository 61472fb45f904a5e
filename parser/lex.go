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

package parser

import (
	"regexp"
	"unicode/utf8"
)

type rule struct {
	kind Kind
	re   *regexp.Regexp
}

// rules are tried in order; the first anchored match wins.
// The bold-italics delimiter must precede bold, which must precede italics.
var rules = []rule{
	{ROMAN, regexp.MustCompile(`^~`)},
	{TELETYPE, regexp.MustCompile("^`")},
	{BOLD_ITALICS, regexp.MustCompile(`^\*\*\*`)},
	{BOLD, regexp.MustCompile(`^\*\*`)},
	{ITALICS, regexp.MustCompile(`^\*`)},
	{SIZE_MOD, regexp.MustCompile(`^#[+-]+ ?`)},
	{OPEN_BRACE, regexp.MustCompile(`^\{`)},
	{CLOSE_BRACE, regexp.MustCompile(`^\}`)},
	{COLOUR, regexp.MustCompile(`^\\c[0-9A-Fa-f]{6}`)},
	{LINE_BREAK, regexp.MustCompile(`^\n`)},
	{F_RUN, regexp.MustCompile(`^f+`)},
	{STRING, regexp.MustCompile("^[^\\\\*\n{}`~f]+")},
}

// Lex splits src into tokens. The returned slice ends with an EOF token.
// If no rule matches at some position, Lex returns a *LexError and no tokens.
func Lex(src string) ([]Token, error) {
	var (
		toks []Token
		pos  = Position{Line: 1, Column: 1}
	)
	for pos.Offset < len(src) {
		rest := src[pos.Offset:]
		var lit string
		var kind Kind
		for _, r := range rules {
			if m := r.re.FindString(rest); m != "" {
				lit, kind = m, r.kind
				break
			}
		}
		if lit == "" {
			return nil, &LexError{Pos: pos}
		}
		toks = append(toks, Token{Kind: kind, Lit: lit, Pos: pos})
		pos = advance(pos, lit)
	}
	return append(toks, Token{Kind: EOF, Pos: pos}), nil
}

func advance(pos Position, lit string) Position {
	for _, r := range lit {
		if r == '\n' {
			pos.Line++
			pos.Column = 1
		} else {
			pos.Column++
		}
	}
	pos.Offset += len(lit)
	return pos
}

// width is the rune count of s; used for caret placement.
func width(s string) int {
	return utf8.RuneCountInString(s)
}
