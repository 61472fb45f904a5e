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

// Package mathquill converts mqdown syntax trees into the LaTeX dialect of the
// Desmos MathQuill editor.
//
// Translation runs in two passes over a freshly parsed tree. Configuration
// walks top-down and threads the inherited font set, colour and justification
// into every node, letting nodes wrap their children where the editor needs
// explicit commands. Rendering then walks bottom-up and builds the output.
//
// AST nodes correspond to the following commands:
// 	Bold                        \mathbf{}
// 	Italics                     \mathit{}
// 	Teletype                    \mathtt{}
// 	SansSerif                   \mathsf{}
// 	Roman                       \mathrm{} (nothing when already upright)
// 	Colour                      \textcolor{CODE}
// 	Big                         \class{dcg-displaysize-large}
// 	Smol                        \class{dcg-mq-sub}
// 	LineJoin (left)             \class{dcg-search-container}{}
// 	LineJoin (center)           \textcolor{transparent}{\binom{}{}}
// 	LineJoin (right)            \class{dcg-expression-bottom}{}
package mathquill // import "akhil.cc/mqdown/gen/mathquill"

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"akhil.cc/mqdown/ast"
	"akhil.cc/mqdown/gen"
	"akhil.cc/mqdown/parser"
	"akhil.cc/mqdown/reserved"
)

// Translator translates source units with a fixed reserved-word list.
// It is safe for concurrent use; every call builds its own tree.
type Translator struct {
	r *renderer
}

// NewTranslator returns a Translator that defeats keyword recognition for words.
func NewTranslator(words reserved.Words) *Translator {
	return &Translator{r: newRenderer(words)}
}

// Translate parses src and renders it with opts. On a syntax error it returns
// the *parser.LexError or *parser.ParseError and no output.
func (t *Translator) Translate(src string, opts gen.Options) (string, error) {
	n, err := parser.Parse(src)
	if err != nil {
		return "", err
	}
	return t.Render(n, opts), nil
}

// Render configures and renders a parsed tree. The tree is modified and must
// not be rendered again.
func (t *Translator) Render(n ast.Node, opts gen.Options) string {
	n = prepare(n, opts)
	t.r.configure(n, seed(opts))
	return t.r.render(n)
}

// Translate is a shorthand for NewTranslator(words).Translate(src, opts).
func Translate(src string, opts gen.Options, words reserved.Words) (string, error) {
	return NewTranslator(words).Translate(src, opts)
}

type syncWriter struct {
	m sync.Mutex
	w io.Writer
}

func (s *syncWriter) Write(p []byte) (n int, err error) {
	s.m.Lock()
	defer s.m.Unlock()
	n, err = s.w.Write(p)
	return
}

// stickyWriter remembers the first write error and fails every later write.
type stickyWriter struct {
	err error
	w   io.Writer
}

func (c *stickyWriter) Write(p []byte) (n int, err error) {
	if c.err != nil {
		return 0, c.err
	}
	n, err = c.w.Write(p)
	c.err = err
	return
}

// UnitError records the failure of one unit of a batch.
type UnitError struct {
	Index int
	Err   error
}

func (e *UnitError) Error() string {
	return fmt.Sprintf("unit %d: %v", e.Index, e.Err)
}

func (e *UnitError) Unwrap() error { return e.Err }

// BatchError is returned by a Generator when some of its units failed.
type BatchError struct {
	Units []*UnitError
}

func (e *BatchError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d unit(s) failed", len(e.Units))
	for _, u := range e.Units {
		b.WriteString("; ")
		b.WriteString(u.Error())
	}
	return b.String()
}

func (e *BatchError) Unwrap() []error {
	errs := make([]error, len(e.Units))
	for i, u := range e.Units {
		errs[i] = u
	}
	return errs
}

// Generator represents a non-reusable MathQuill output generator for a batch
// of units.
type Generator struct {
	// Stdout and Stderr specify the generator's standard output and standard error.
	//
	// Each translated unit is written to standard out followed by a newline.
	// A unit that fails to translate is reported on standard error.
	//
	// If Stdout == Stderr, at most one goroutine at a time will call Write.
	Stdout io.Writer
	Stderr io.Writer
	// Halt stops the batch at the first unit that fails. By default the
	// remaining units are still translated.
	Halt bool

	ctx      context.Context
	units    []gen.Unit
	tr       *Translator
	waitdone chan error

	m     sync.Mutex
	pipes []io.Closer
}

// Gen returns the Generator struct to translate the given units.
func Gen(units []gen.Unit, words reserved.Words) *Generator {
	return &Generator{ctx: context.TODO(), units: units, tr: NewTranslator(words)}
}

// GenContext is like Gen but includes a context.
//
// The provided context is used to halt generation between units.
func GenContext(ctx context.Context, units []gen.Unit, words reserved.Words) *Generator {
	if ctx == nil {
		panic("nil context")
	}
	return &Generator{ctx: ctx, units: units, tr: NewTranslator(words)}
}

// Start starts the generator but does not wait for it to complete.
func (g *Generator) Start() error {
	if g.waitdone != nil {
		return errors.New("already started")
	}
	if g.Stdout == nil {
		g.Stdout = io.Discard
	}
	if g.Stderr == nil {
		g.Stderr = io.Discard
	}
	if g.Stdout == g.Stderr {
		g.Stdout = &syncWriter{w: g.Stdout}
		g.Stderr = g.Stdout
	}
	g.waitdone = make(chan error, 1)
	go func() {
		err := g.gen()
		g.m.Lock()
		for _, p := range g.pipes {
			p.Close()
		}
		g.pipes = nil
		g.m.Unlock()
		g.waitdone <- err
	}()
	return nil
}

// Wait waits for the generator to complete and finish copying to
// Stdout and Stderr. It is an error to call Wait before Start
// has been called.
func (g *Generator) Wait() error {
	if g.waitdone == nil {
		return errors.New("not started")
	}
	return <-g.waitdone
}

// Run starts the generator and waits for it to complete, returning
// any errors encountered. Units that failed to translate are reported
// together in a *BatchError.
func (g *Generator) Run() error {
	if err := g.Start(); err != nil {
		return err
	}
	return g.Wait()
}

// StdoutPipe returns a pipe that is connected to the generator's
// standard output.
//
// The pipe is closed when generation finishes, so reads return io.EOF
// once every unit has been written. Wait must not be called before all
// reads from the pipe have completed.
func (g *Generator) StdoutPipe() (io.Reader, error) {
	if g.Stdout != nil {
		return nil, errors.New("Stdout already set")
	}
	pr, pw := io.Pipe()
	g.Stdout = pw
	g.m.Lock()
	g.pipes = append(g.pipes, pw)
	g.m.Unlock()
	return pr, nil
}

// StderrPipe returns a pipe that is connected to the generator's
// standard error.
//
// The same restrictions as for StdoutPipe apply.
func (g *Generator) StderrPipe() (io.Reader, error) {
	if g.Stderr != nil {
		return nil, errors.New("Stderr already set")
	}
	pr, pw := io.Pipe()
	g.Stderr = pw
	g.m.Lock()
	g.pipes = append(g.pipes, pw)
	g.m.Unlock()
	return pr, nil
}

// Output runs the generator and returns its standard output.
func (g *Generator) Output() ([]byte, error) {
	if g.Stdout != nil {
		return nil, errors.New("Stdout already set")
	}
	var stdout bytes.Buffer
	g.Stdout = &stdout
	err := g.Run()
	return stdout.Bytes(), err
}

// CombinedOutput runs the generator and returns its combined
// standard output and standard error.
func (g *Generator) CombinedOutput() ([]byte, error) {
	if g.Stdout != nil {
		return nil, errors.New("Stdout already set")
	}
	if g.Stderr != nil {
		return nil, errors.New("Stderr already set")
	}
	var b bytes.Buffer
	g.Stdout = &b
	g.Stderr = &b
	err := g.Run()
	return b.Bytes(), err
}

func (g *Generator) gen() error {
	cw := &stickyWriter{w: g.Stdout}
	var failed []*UnitError
	for i, u := range g.units {
		select {
		case <-g.ctx.Done():
			return g.ctx.Err()
		default:
		}
		out, err := g.tr.Translate(u.Src, u.Options)
		if err != nil {
			failed = append(failed, &UnitError{Index: i, Err: err})
			fmt.Fprintf(g.Stderr, "unit %d: %s\n", i, parser.Snippet(err, u.Src))
			if g.Halt {
				break
			}
			continue
		}
		io.WriteString(cw, out+"\n")
		if cw.err != nil {
			return cw.err
		}
	}
	if len(failed) > 0 {
		return &BatchError{Units: failed}
	}
	return nil
}
