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

package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"akhil.cc/mqdown/gen"
	"github.com/peterh/liner"
	"golang.org/x/term"
)

const (
	endCmd  = `\end`
	exitCmd = `\exit`
	prompt  = "> "
)

type lineReader interface {
	readLine(prompt string) (string, error)
	Close() error
}

type termReader struct {
	st *liner.State
}

func (r *termReader) readLine(p string) (string, error) {
	line, err := r.st.Prompt(p)
	if errors.Is(err, liner.ErrPromptAborted) {
		return "", io.EOF
	}
	if err == nil && strings.TrimSpace(line) != "" {
		r.st.AppendHistory(line)
	}
	return line, err
}

func (r *termReader) Close() error { return r.st.Close() }

type scanReader struct {
	sc *bufio.Scanner
}

func (r *scanReader) readLine(string) (string, error) {
	if !r.sc.Scan() {
		if err := r.sc.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimSuffix(r.sc.Text(), "\r"), nil
}

func (r *scanReader) Close() error { return nil }

// interactive reads units from in until \exit or end of input. Lines are
// buffered until \end, then the buffer is translated as one unit, even when
// it is empty. A directive line changes the options of every later unit.
func interactive(in *os.File, out, errOut io.Writer, t *translator, opts gen.Options) error {
	var r lineReader
	if term.IsTerminal(int(in.Fd())) {
		st := liner.NewLiner()
		st.SetCtrlCAborts(true)
		r = &termReader{st: st}
		fmt.Fprintf(errOut, "Type %s to translate, %s to leave.\n", endCmd, exitCmd)
	} else {
		r = &scanReader{sc: bufio.NewScanner(in)}
	}
	defer r.Close()
	return session(r, out, errOut, t, opts)
}

func session(r lineReader, out, errOut io.Writer, t *translator, opts gen.Options) error {
	var buf []string
	flush := func() {
		u := gen.Unit{Src: strings.Join(buf, "\n"), Options: opts}
		buf = buf[:0]
		if err := t.unit(u, out); err != nil {
			fmt.Fprintln(errOut, err)
		}
	}
	for {
		line, err := r.readLine(prompt)
		if err == io.EOF {
			if len(buf) > 0 {
				flush()
			}
			return nil
		}
		if err != nil {
			return prefix("(interactive) ", err)
		}
		switch strings.TrimSpace(line) {
		case exitCmd:
			return nil
		case endCmd:
			flush()
			continue
		}
		if len(buf) == 0 && gen.IsDirective(line) {
			o, err := gen.ParseDirective(line, opts)
			if err != nil {
				fmt.Fprintln(errOut, err)
				continue
			}
			opts = o
			t.log.Printf("[options]\n%s", litCfg.Sdump(opts))
			continue
		}
		buf = append(buf, line)
	}
}
