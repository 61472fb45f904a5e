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

// Tests for parse.go
package parser_test

import (
	"fmt"
	"reflect"
	"testing"

	"akhil.cc/mqdown/ast"
	"akhil.cc/mqdown/parser"
	"github.com/sanity-io/litter"
)

type smallcase struct {
	in   string
	want ast.Node
	werr error
}

var litCfg = litter.Options{
	Compact:           true,
	StripPackageNames: false,
	HidePrivateFields: false,
	Separator:         " ",
}

func text(s string) *ast.Text { return &ast.Text{Lit: s} }

func fRun(s string) ast.Node {
	return &ast.Roman{X: text("\u200c" + s + "\u200c")}
}

func header(x ast.Node) ast.Node { return &ast.MultilineHeader{X: x} }

func paren(x ast.Node) ast.Node { return &ast.Paren{X: x} }

func cat(xs ...ast.Node) ast.Node {
	x := xs[0]
	for _, y := range xs[1:] {
		x = &ast.Concat{Left: x, Right: y}
	}
	return x
}

func runSmall(t *testing.T, cases []smallcase) {
	t.Helper()
	for i, test := range cases {
		got, err := parser.Parse(test.in)
		if wes, es := fmt.Sprint(test.werr), fmt.Sprint(err); es != wes || !reflect.DeepEqual(test.want, got) {
			t.Errorf("case %d, in %q,\nwant %s,\ngot %s,\nwant err %s,\ngot err %s", i, test.in, litCfg.Sdump(test.want), litCfg.Sdump(got), wes, es)
		}
	}
}

var spanSmall = []smallcase{
	{"hello world", text("hello world"), nil},
	{"**bold**", &ast.Bold{X: text("bold")}, nil},
	{"*it*", &ast.Italics{X: text("it")}, nil},
	{"***both***", &ast.Italics{X: &ast.Bold{X: text("both")}}, nil},
	{"`mono`", &ast.Teletype{X: text("mono")}, nil},
	{"~up~", &ast.Roman{X: text("up")}, nil},
	{"**bold**normal", cat(&ast.Bold{X: text("bold")}, text("normal")), nil},
	{"a**b**c", cat(text("a"), &ast.Bold{X: text("b")}, text("c")), nil},
	{"*a**b**c*", &ast.Italics{X: cat(text("a"), &ast.Bold{X: text("b")}, text("c"))}, nil},
	{"*{*x*}*", &ast.Italics{X: &ast.Italics{X: text("x")}}, nil},
	{"{a}b", cat(text("a"), text("b")), nil},
	{"{{a}}", text("a"), nil},
	{"off", cat(text("o"), fRun("ff")), nil},
	{"f", fRun("f"), nil},
	{"*f*", &ast.Italics{X: fRun("f")}, nil},
}

func TestSpans(t *testing.T) {
	runSmall(t, spanSmall)
}

var modSmall = []smallcase{
	{"#+big", &ast.Big{X: text("big")}, nil},
	{"#- small", &ast.Smol{X: text("small")}, nil},
	{"#+-a", &ast.Smol{X: &ast.Big{X: text("a")}}, nil},
	{"#++ a", &ast.Big{X: &ast.Big{X: text("a")}}, nil},
	// A delimited span binds tighter than the modifier, plain text looser.
	{"#+**a**b", cat(&ast.Big{X: &ast.Bold{X: text("a")}}, text("b")), nil},
	{"#+a**b**", &ast.Big{X: cat(text("a"), &ast.Bold{X: text("b")})}, nil},
	{"#+{a b}c", cat(&ast.Big{X: text("a b")}, text("c")), nil},
	{`\c00FF00**bold**`, &ast.Colour{Code: text("00FF00"), X: &ast.Bold{X: text("bold")}}, nil},
	{`\cff0000red text`, &ast.Colour{Code: text("ff0000"), X: text("red text")}, nil},
	{`\cFF0000**b**a`, cat(&ast.Colour{Code: text("FF0000"), X: &ast.Bold{X: text("b")}}, text("a")), nil},
	{`\cFF0000#+a`, &ast.Colour{Code: text("FF0000"), X: &ast.Big{X: text("a")}}, nil},
	{`#+\cFF0000a`, &ast.Big{X: &ast.Colour{Code: text("FF0000"), X: text("a")}}, nil},
}

func TestModifiers(t *testing.T) {
	runSmall(t, modSmall)
}

var lineSmall = []smallcase{
	{"A\nB", &ast.LineJoin{Left: header(paren(text("A"))), Right: paren(text("B"))}, nil},
	{"A\nB\nC", &ast.LineJoin{
		Left:  &ast.LineJoin{Left: header(paren(text("A"))), Right: paren(text("B"))},
		Right: paren(text("C")),
	}, nil},
	{"**A**\nB c", &ast.LineJoin{
		Left:  header(&ast.Bold{X: text("A")}),
		Right: paren(text("B c")),
	}, nil},
	{"a**b**\nc", &ast.LineJoin{
		Left:  header(paren(cat(text("a"), &ast.Bold{X: text("b")}))),
		Right: paren(text("c")),
	}, nil},
	{"{A\nB}\nC", &ast.LineJoin{
		Left:  &ast.LineJoin{Left: header(paren(text("A"))), Right: paren(text("B"))},
		Right: paren(text("C")),
	}, nil},
}

func TestLines(t *testing.T) {
	runSmall(t, lineSmall)
}

var errorSmall = []smallcase{
	{"", nil, &parser.ParseError{Kind: parser.EOF, Pos: parser.Position{Offset: 0, Line: 1, Column: 1}}},
	{"**text", nil, &parser.ParseError{Kind: parser.EOF, Pos: parser.Position{Offset: 6, Line: 1, Column: 7}}},
	{"}", nil, &parser.ParseError{Kind: parser.CLOSE_BRACE, Pos: parser.Position{Offset: 0, Line: 1, Column: 1}}},
	{"{a", nil, &parser.ParseError{Kind: parser.EOF, Pos: parser.Position{Offset: 2, Line: 1, Column: 3}}},
	{"a}", nil, &parser.ParseError{Kind: parser.CLOSE_BRACE, Pos: parser.Position{Offset: 1, Line: 1, Column: 2}}},
	{"a\n", nil, &parser.ParseError{Kind: parser.EOF, Pos: parser.Position{Offset: 2, Line: 2, Column: 1}}},
	// The closing delimiter opens a new span inside a pending operand.
	{"**#+a**", nil, &parser.ParseError{Kind: parser.EOF, Pos: parser.Position{Offset: 7, Line: 1, Column: 8}}},
	{"**a\nb**", nil, &parser.ParseError{Kind: parser.EOF, Pos: parser.Position{Offset: 7, Line: 2, Column: 4}}},
	{"*A\nB*", nil, &parser.ParseError{Kind: parser.EOF, Pos: parser.Position{Offset: 5, Line: 2, Column: 3}}},
	{"*a*b*", nil, &parser.ParseError{Kind: parser.EOF, Pos: parser.Position{Offset: 5, Line: 1, Column: 6}}},
	{`a\x`, nil, &parser.LexError{Pos: parser.Position{Offset: 1, Line: 1, Column: 2}}},
	{`\c12345`, nil, &parser.LexError{Pos: parser.Position{Offset: 0, Line: 1, Column: 1}}},
}

func TestErrors(t *testing.T) {
	for i, test := range errorSmall {
		got, err := parser.Parse(test.in)
		if got != nil || !reflect.DeepEqual(test.werr, err) {
			t.Errorf("case %d, in %q,\ngot %s,\nwant err %#v,\ngot err %#v", i, test.in, litCfg.Sdump(got), test.werr, err)
		}
	}
}

func TestParseTokensImpliesEOF(t *testing.T) {
	toks, err := parser.Lex("**a**")
	if err != nil {
		t.Fatal(err)
	}
	got, err := parser.ParseTokens(toks[:len(toks)-1])
	if err != nil {
		t.Fatal(err)
	}
	if want := (&ast.Bold{X: text("a")}); !reflect.DeepEqual(want, got) {
		t.Errorf("want %s, got %s", litCfg.Sdump(want), litCfg.Sdump(got))
	}
	if _, err := parser.ParseTokens(nil); err == nil {
		t.Error("empty token stream parsed")
	}
}

func TestMustParsePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustParse did not panic")
		}
	}()
	parser.MustParse("**")
}

func TestSnippet(t *testing.T) {
	src := "first\n**a\nb**"
	_, err := parser.Parse(src)
	want := "parse error at 3:4: unexpected token EOF\n\n" +
		"   3 | b**\n" +
		"          ^"
	if got := parser.Snippet(err, src); got != want {
		t.Errorf("want\n%s\ngot\n%s", want, got)
	}
	if got := parser.Snippet(fmt.Errorf("plain"), src); got != "plain" {
		t.Errorf("got %q", got)
	}
}
