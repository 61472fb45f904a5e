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

// Package ast declares the types used to represent syntax trees for mqdown source.
//
// A tree is built once by the parser, configured once by a generator (which
// may replace child slots, for example wrapping a child in an implicit Bold),
// and then rendered read-only.
package ast // import "akhil.cc/mqdown/ast"

//go:generate sumgen Node = *Text | *Concat | *Bold | *Italics | *Teletype | *SansSerif | *Roman | *Colour | *Big | *Smol | *MultilineHeader | *LineJoin | *Paren
type Node interface {
	node()
	// Ctx returns the context stored by the last call to Configure.
	Ctx() Context
	// Configure stores the context a node was reached with.
	Configure(Context)
}

// Configured holds the context snapshot a node received during propagation.
type Configured struct {
	ctx Context
}

func (c *Configured) Ctx() Context { return c.ctx }

func (c *Configured) Configure(ctx Context) { c.ctx = ctx }

// Text is a literal run of source text.
type Text struct {
	Configured
	Lit string
}

// Concat is the implicit juxtaposition of two expressions.
type Concat struct {
	Configured
	Left, Right Node
}

type Bold struct {
	Configured
	X Node
}

type Italics struct {
	Configured
	X Node
}

type Teletype struct {
	Configured
	X Node
}

type SansSerif struct {
	Configured
	X Node
}

// Roman forces upright glyphs. A Roman nested inside another Roman renders
// its child unchanged.
type Roman struct {
	Configured
	X Node
}

// Colour sets the foreground colour of X. Code holds the colour as written
// in the source, without the directive prefix.
type Colour struct {
	Configured
	Code *Text
	X    Node
}

type Big struct {
	Configured
	X Node
}

type Smol struct {
	Configured
	X Node
}

// MultilineHeader wraps the first physical line of a multi-line block.
type MultilineHeader struct {
	Configured
	X Node
}

// LineJoin appends the line Right to the block Left. Chains of LineJoin are
// always left-associated, so the leftmost leaf is a MultilineHeader.
type LineJoin struct {
	Configured
	Left, Right Node
}

// Paren stabilises a line at a block boundary. Template is chosen during
// configuration and holds a single %s verb for the rendered child.
type Paren struct {
	Configured
	X        Node
	Template string
}

func (*Text) node()            {}
func (*Concat) node()          {}
func (*Bold) node()            {}
func (*Italics) node()         {}
func (*Teletype) node()        {}
func (*SansSerif) node()       {}
func (*Roman) node()           {}
func (*Colour) node()          {}
func (*Big) node()             {}
func (*Smol) node()            {}
func (*MultilineHeader) node() {}
func (*LineJoin) node()        {}
func (*Paren) node()           {}

// Children returns the ordered child nodes of n.
func Children(n Node) []Node {
	switch t := n.(type) {
	case *Concat:
		return []Node{t.Left, t.Right}
	case *LineJoin:
		return []Node{t.Left, t.Right}
	case *Colour:
		return []Node{t.Code, t.X}
	case *Bold:
		return []Node{t.X}
	case *Italics:
		return []Node{t.X}
	case *Teletype:
		return []Node{t.X}
	case *SansSerif:
		return []Node{t.X}
	case *Roman:
		return []Node{t.X}
	case *Big:
		return []Node{t.X}
	case *Smol:
		return []Node{t.X}
	case *MultilineHeader:
		return []Node{t.X}
	case *Paren:
		return []Node{t.X}
	}
	return nil
}

// Walk calls f on n and then on every descendant of the node f returned,
// in depth-first order. Each child slot is replaced by the node f returns for it.
// Walk stops at the first error.
func Walk(n Node, f Walker) (Node, error) {
	if n == nil {
		return n, nil
	}
	nn, e := f(n)
	if e != nil {
		return n, e
	}
	n = nn
	walk := func(c Node) (Node, error) {
		return Walk(c, f)
	}
	var err error
	switch t := n.(type) {
	case *Concat:
		if t.Left, err = walk(t.Left); err != nil {
			return n, err
		}
		t.Right, err = walk(t.Right)
	case *LineJoin:
		if t.Left, err = walk(t.Left); err != nil {
			return n, err
		}
		t.Right, err = walk(t.Right)
	case *Colour:
		var c Node
		if c, err = walk(t.Code); err != nil {
			return n, err
		}
		code, ok := c.(*Text)
		if !ok {
			return n, errCodeReplaced
		}
		t.Code = code
		t.X, err = walk(t.X)
	case *Bold:
		t.X, err = walk(t.X)
	case *Italics:
		t.X, err = walk(t.X)
	case *Teletype:
		t.X, err = walk(t.X)
	case *SansSerif:
		t.X, err = walk(t.X)
	case *Roman:
		t.X, err = walk(t.X)
	case *Big:
		t.X, err = walk(t.X)
	case *Smol:
		t.X, err = walk(t.X)
	case *MultilineHeader:
		t.X, err = walk(t.X)
	case *Paren:
		t.X, err = walk(t.X)
	}
	return n, err
}

type Walker func(Node) (Node, error)
