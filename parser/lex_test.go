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

// Tests for lex.go
package parser_test

import (
	"reflect"
	"testing"

	"akhil.cc/mqdown/parser"
)

type lexcase struct {
	in   string
	want []parser.Kind
	lits []string
}

var lexSmall = []lexcase{
	{"plain", []parser.Kind{parser.STRING, parser.EOF}, []string{"plain", ""}},
	{"***a**b*", []parser.Kind{parser.BOLD_ITALICS, parser.STRING, parser.BOLD, parser.STRING, parser.ITALICS, parser.EOF},
		[]string{"***", "a", "**", "b", "*", ""}},
	{"****", []parser.Kind{parser.BOLD_ITALICS, parser.ITALICS, parser.EOF}, []string{"***", "*", ""}},
	{"~`x`~", []parser.Kind{parser.ROMAN, parser.TELETYPE, parser.STRING, parser.TELETYPE, parser.ROMAN, parser.EOF},
		[]string{"~", "`", "x", "`", "~", ""}},
	{"#+- big", []parser.Kind{parser.SIZE_MOD, parser.STRING, parser.EOF}, []string{"#+- ", "big", ""}},
	{"#  x", []parser.Kind{parser.STRING, parser.EOF}, []string{"#  x", ""}},
	{`\cAbC123{x}`, []parser.Kind{parser.COLOUR, parser.OPEN_BRACE, parser.STRING, parser.CLOSE_BRACE, parser.EOF},
		[]string{`\cAbC123`, "{", "x", "}", ""}},
	{"a\nb", []parser.Kind{parser.STRING, parser.LINE_BREAK, parser.STRING, parser.EOF}, []string{"a", "\n", "b", ""}},
	{"offset", []parser.Kind{parser.STRING, parser.F_RUN, parser.STRING, parser.EOF}, []string{"o", "ff", "set", ""}},
	{"", []parser.Kind{parser.EOF}, []string{""}},
}

func TestLex(t *testing.T) {
	for i, test := range lexSmall {
		toks, err := parser.Lex(test.in)
		if err != nil {
			t.Errorf("case %d, in %q: %v", i, test.in, err)
			continue
		}
		var kinds []parser.Kind
		var lits []string
		for _, tok := range toks {
			kinds = append(kinds, tok.Kind)
			lits = append(lits, tok.Lit)
		}
		if !reflect.DeepEqual(test.want, kinds) || !reflect.DeepEqual(test.lits, lits) {
			t.Errorf("case %d, in %q,\nwant %v %q,\ngot %v %q", i, test.in, test.want, test.lits, kinds, lits)
		}
	}
}

func TestLexPositions(t *testing.T) {
	toks, err := parser.Lex("ab\n**ü**")
	if err != nil {
		t.Fatal(err)
	}
	want := []parser.Position{
		{Offset: 0, Line: 1, Column: 1},
		{Offset: 2, Line: 1, Column: 3},
		{Offset: 3, Line: 2, Column: 1},
		{Offset: 5, Line: 2, Column: 3},
		{Offset: 7, Line: 2, Column: 4},
		{Offset: 9, Line: 2, Column: 6},
	}
	var got []parser.Position
	for _, tok := range toks {
		got = append(got, tok.Pos)
	}
	if !reflect.DeepEqual(want, got) {
		t.Errorf("want %v, got %v", want, got)
	}
}

func TestLexError(t *testing.T) {
	for _, in := range []string{`\`, `\c`, `\n`, `a\cGG0000`} {
		_, err := parser.Lex(in)
		if _, ok := err.(*parser.LexError); !ok {
			t.Errorf("in %q: want *LexError, got %v", in, err)
		}
	}
}

func TestTokenString(t *testing.T) {
	toks, err := parser.Lex("**")
	if err != nil {
		t.Fatal(err)
	}
	if got, want := toks[0].String(), `BOLD("**")@1:1`; got != want {
		t.Errorf("want %s, got %s", want, got)
	}
	if got, want := parser.Kind(99).String(), "Kind(99)"; got != want {
		t.Errorf("want %s, got %s", want, got)
	}
}
