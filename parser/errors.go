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
	"errors"
	"fmt"
	"strings"
)

// A LexError is reported when no token rule matches at Pos.
type LexError struct {
	Pos Position
}

func (e *LexError) Error() string {
	return fmt.Sprintf("lex error at %s: invalid character", e.Pos)
}

// A ParseError is reported when the token of kind Kind at Pos cannot
// continue the expression parsed so far.
type ParseError struct {
	Kind Kind
	Pos  Position
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error at %s: unexpected token %s", e.Pos, e.Kind)
}

// Snippet returns the message of err followed by the offending source line
// and a caret under the error column. Errors other than *LexError and
// *ParseError are returned as their message alone.
func Snippet(err error, src string) string {
	var (
		le  *LexError
		pe  *ParseError
		pos Position
	)
	switch {
	case errors.As(err, &le):
		pos = le.Pos
	case errors.As(err, &pe):
		pos = pe.Pos
	default:
		return err.Error()
	}
	lines := strings.Split(src, "\n")
	ln := pos.Line
	if ln < 1 {
		ln = 1
	}
	if ln > len(lines) {
		ln = len(lines)
	}
	line := lines[ln-1]
	col := pos.Column
	if max := width(line) + 1; col > max {
		col = max
	}
	if col < 1 {
		col = 1
	}
	gutter := fmt.Sprintf("%4d | ", ln)
	var b strings.Builder
	b.WriteString(err.Error())
	b.WriteString("\n\n")
	b.WriteString(gutter)
	b.WriteString(line)
	b.WriteString("\n")
	b.WriteString(strings.Repeat(" ", len(gutter)+col-1))
	b.WriteString("^")
	return b.String()
}
