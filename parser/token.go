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

import "fmt"

// Kind is the lexical class of a token.
type Kind int

const (
	EOF Kind = iota
	ROMAN
	TELETYPE
	BOLD_ITALICS
	BOLD
	ITALICS
	SIZE_MOD
	OPEN_BRACE
	CLOSE_BRACE
	COLOUR
	LINE_BREAK
	F_RUN
	STRING
)

var kinds = [...]string{
	EOF:          "EOF",
	ROMAN:        "ROMAN",
	TELETYPE:     "TELETYPE",
	BOLD_ITALICS: "BOLD_ITALICS",
	BOLD:         "BOLD",
	ITALICS:      "ITALICS",
	SIZE_MOD:     "SIZE_MOD",
	OPEN_BRACE:   "OPEN_BRACE",
	CLOSE_BRACE:  "CLOSE_BRACE",
	COLOUR:       "COLOUR",
	LINE_BREAK:   "LINE_BREAK",
	F_RUN:        "F_RUN",
	STRING:       "STRING",
}

func (k Kind) String() string {
	if k >= 0 && int(k) < len(kinds) {
		return kinds[k]
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Position is a location in the source. Line and Column are 1-based;
// Column counts runes.
type Position struct {
	Offset int
	Line   int
	Column int
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Token is a lexeme of mqdown source.
type Token struct {
	Kind Kind
	Lit  string
	Pos  Position
}

func (t Token) String() string {
	return fmt.Sprintf("%s(%q)@%s", t.Kind, t.Lit, t.Pos)
}

// delimiter reports whether k opens and closes a font span.
func (k Kind) delimiter() bool {
	switch k {
	case ROMAN, TELETYPE, BOLD_ITALICS, BOLD, ITALICS:
		return true
	}
	return false
}

// prec returns the binding precedence of k, or 0 if k never starts or
// continues an expression. LINE_BREAK binds loosest, implicit concatenation
// tightest.
func (k Kind) prec() int {
	switch k {
	case LINE_BREAK:
		return 1
	case STRING, F_RUN:
		return 2
	case COLOUR:
		return 3
	case SIZE_MOD:
		return 4
	case OPEN_BRACE, CLOSE_BRACE, ROMAN, TELETYPE, ITALICS, BOLD, BOLD_ITALICS:
		return 5
	}
	return 0
}

// startsExpr reports whether a token of kind k can begin an expression.
func (k Kind) startsExpr() bool {
	switch k {
	case STRING, F_RUN, COLOUR, SIZE_MOD, OPEN_BRACE:
		return true
	}
	return k.delimiter()
}
