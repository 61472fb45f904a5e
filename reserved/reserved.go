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

// Package reserved provides the words the formula editor would interpret as
// keywords if they appeared verbatim in rendered text.
//
// A word list is an ordered set loaded once and read-only thereafter. The
// list file holds one word per line; blank lines and lines starting with '#'
// are ignored.
package reserved // import "akhil.cc/mqdown/reserved"

import (
	"bufio"
	_ "embed"
	"fmt"
	"io"
	"os"
	"strings"
)

//go:embed reserved_words.txt
var defaultList string

// Words is an ordered set of reserved words.
type Words []string

// Default returns the built-in word list.
func Default() Words {
	w, err := Load(strings.NewReader(defaultList))
	if err != nil {
		panic("reserved: bad built-in list: " + err.Error())
	}
	return w
}

// Load reads a word list from r. Duplicate words keep their first position.
func Load(r io.Reader) (Words, error) {
	var (
		w    Words
		seen = make(map[string]bool)
		sc   = bufio.NewScanner(r)
		line int
	)
	for sc.Scan() {
		line++
		s := strings.TrimSpace(sc.Text())
		if s == "" || strings.HasPrefix(s, "#") {
			continue
		}
		if strings.ContainsAny(s, " \t") {
			return nil, fmt.Errorf("line %d: reserved word %q contains whitespace", line, s)
		}
		if !seen[s] {
			seen[s] = true
			w = append(w, s)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return w, nil
}

// LoadFile is like Load but reads the named file.
func LoadFile(path string) (Words, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	w, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return w, nil
}

// Merge returns the words of a followed by the words of b not already in a.
func Merge(a, b Words) Words {
	seen := make(map[string]bool, len(a)+len(b))
	out := make(Words, 0, len(a)+len(b))
	for _, l := range []Words{a, b} {
		for _, s := range l {
			if !seen[s] {
				seen[s] = true
				out = append(out, s)
			}
		}
	}
	return out
}

// Contains reports whether s is in w.
func (w Words) Contains(s string) bool {
	for _, x := range w {
		if x == s {
			return true
		}
	}
	return false
}
