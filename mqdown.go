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

// This CLI utility translates mqdown markup into the LaTeX accepted by the
// Desmos MathQuill editor.
//
// Usage:
//   mqdown [text] [flags]
//
// Flags:
//       --center-justify   center multi-line blocks
//   -c, --colour           foreground colour (hex code or name)
//       --config           options file (TOML or YAML)
//   -d, --debug            dump options, tokens and syntax trees to stderr
//   -f, --file             translate every unit of a file
//       --halt             stop a file at the first unit that fails
//   -h, --help             help for mqdown
//   -i, --interactive      read units from the terminal
//   -j, --justify          justification of multi-line blocks: left, center or right
//   -o, --output           name of the output file
//       --reserved         reserved-word list added to the built-in one
//       --right-justify    right-justify multi-line blocks
//   -r, --roman            render upright by default
//   -s, --sans-serif       render sans-serif by default
//   -x, --choose           translate only unit n of the file
//
// If neither text, a file nor interactive mode is given, the source is read
// from standard input when it is not a terminal.
package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"akhil.cc/mqdown/ast"
	"akhil.cc/mqdown/config"
	"akhil.cc/mqdown/gen"
	"akhil.cc/mqdown/gen/mathquill"
	"akhil.cc/mqdown/parser"
	"akhil.cc/mqdown/reserved"
	"github.com/sanity-io/litter"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func prefix(msg string, err error) error {
	return errors.New(msg + err.Error())
}

type flags struct {
	debug         bool
	colour        string
	interactive   bool
	file          string
	choose        int
	sans, roman   bool
	justify       string
	center, right bool
	configPath    string
	output        string
	reservedPath  string
	halt          bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var f flags
	rootCmd := &cobra.Command{
		Use:   "mqdown [text]",
		Short: "markup to Desmos MathQuill translator",
		Long: `This CLI utility translates mqdown markup into the LaTeX accepted by the
Desmos MathQuill editor.

  **bold**  *italics*  ***bold italics***  ` + "`teletype`" + `  ~roman~
  #+ big  #- small  \c00FF00 coloured  {grouping}

A file holds units separated by a line containing only \next surrounded by
blank lines. A unit may start with a directive line such as
  \set -j center -c ff0000
which changes the options for that unit.`,
		Args:                  cobra.MaximumNArgs(1),
		DisableFlagsInUseLine: true,
		SilenceUsage:          true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args, &f)
		},
	}
	fl := rootCmd.Flags()
	// pflag includes the argument type when it unquotes its usage.
	// To prevent this behavior we prefix the usage with backquotes ``.
	fl.BoolVarP(&f.debug, "debug", "d", false, "dump options, tokens and syntax trees to stderr")
	fl.StringVarP(&f.colour, "colour", "c", "", "``foreground colour (hex code or name)")
	fl.BoolVarP(&f.interactive, "interactive", "i", false, "read units from the terminal")
	fl.StringVarP(&f.file, "file", "f", "", "``translate every unit of a file")
	fl.IntVarP(&f.choose, "choose", "x", -1, "``translate only unit n of the file")
	fl.BoolVarP(&f.sans, "sans-serif", "s", false, "render sans-serif by default")
	fl.BoolVarP(&f.roman, "roman", "r", false, "render upright by default")
	fl.StringVarP(&f.justify, "justify", "j", "", "``justification of multi-line blocks: left, center or right")
	fl.BoolVar(&f.center, "center-justify", false, "center multi-line blocks")
	fl.BoolVar(&f.right, "right-justify", false, "right-justify multi-line blocks")
	fl.StringVar(&f.configPath, "config", "", "``options file (TOML or YAML)")
	fl.StringVarP(&f.output, "output", "o", "", "``name of the output file")
	fl.StringVar(&f.reservedPath, "reserved", "", "``reserved-word list added to the built-in one")
	fl.BoolVar(&f.halt, "halt", false, "stop a file at the first unit that fails")
	rootCmd.MarkFlagsMutuallyExclusive("interactive", "file")
	rootCmd.MarkFlagsMutuallyExclusive("sans-serif", "roman")
	rootCmd.MarkFlagsMutuallyExclusive("justify", "center-justify", "right-justify")
	return rootCmd
}

// options resolves the unit options and reserved words from the options file
// and the command line, the command line taking precedence.
func options(cmd *cobra.Command, f *flags) (gen.Options, reserved.Words, error) {
	opts := gen.DefaultOptions()
	words := reserved.Default()
	if f.configPath != "" {
		file, err := config.Load(f.configPath)
		if err != nil {
			return opts, nil, err
		}
		if opts, err = file.Options(opts); err != nil {
			return opts, nil, err
		}
		if words, err = file.Words(); err != nil {
			return opts, nil, err
		}
	}
	if f.reservedPath != "" {
		w, err := reserved.LoadFile(f.reservedPath)
		if err != nil {
			return opts, nil, err
		}
		words = reserved.Merge(words, w)
	}
	fl := cmd.Flags()
	if fl.Changed("colour") {
		opts.Colour = f.colour
	}
	switch {
	case f.sans:
		opts.Defaults = gen.DefaultSansSerif
	case f.roman:
		opts.Defaults = gen.DefaultRoman
	}
	switch {
	case f.center:
		opts.Justify = ast.Center
	case f.right:
		opts.Justify = ast.Right
	case fl.Changed("justify"):
		j, err := ast.ParseJustify(f.justify)
		if err != nil {
			return opts, nil, err
		}
		opts.Justify = j
	}
	return opts, words, nil
}

func run(cmd *cobra.Command, args []string, f *flags) error {
	logger := log.New(io.Discard, "", 0)
	if f.debug {
		logger = log.New(cmd.ErrOrStderr(), "", 0)
	}
	opts, words, err := options(cmd, f)
	if err != nil {
		return err
	}
	logger.Printf("[options]\n%s", litCfg.Sdump(opts))

	out := cmd.OutOrStdout()
	if f.output != "" {
		file, err := os.Create(f.output)
		if err != nil {
			return prefix("(output) ", err)
		}
		defer file.Close()
		out = file
	}
	t := &translator{tr: mathquill.NewTranslator(words), log: logger}

	switch {
	case f.interactive:
		return interactive(os.Stdin, out, cmd.ErrOrStderr(), t, opts)
	case f.file != "":
		return runFile(cmd, f, t, opts, words, out)
	case len(args) == 1:
		return t.unit(gen.Unit{Src: args[0], Options: opts}, out)
	}
	if term.IsTerminal(int(os.Stdin.Fd())) {
		return errors.New("no text provided to parse")
	}
	src, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return prefix("(stdin) ", err)
	}
	units, err := gen.SplitUnits(string(src), opts)
	if err != nil {
		return err
	}
	return batch(cmd, f, units, words, out)
}

func runFile(cmd *cobra.Command, f *flags, t *translator, opts gen.Options, words reserved.Words, out io.Writer) error {
	src, err := os.ReadFile(f.file)
	if err != nil {
		return prefix("(file) ", err)
	}
	units, err := gen.SplitUnits(string(src), opts)
	if err != nil {
		return prefix("(file) ", err)
	}
	if cmd.Flags().Changed("choose") {
		if f.choose < 0 || f.choose >= len(units) {
			return fmt.Errorf("(file) unit %d out of range: the file has %d units", f.choose, len(units))
		}
		return t.unit(units[f.choose], out)
	}
	if f.debug {
		failed := 0
		for i, u := range units {
			if err := t.unit(u, out); err != nil {
				failed++
				fmt.Fprintf(cmd.ErrOrStderr(), "unit %d: %s\n", i, err)
				if f.halt {
					break
				}
			}
		}
		if failed > 0 {
			return fmt.Errorf("%d of %d units failed", failed, len(units))
		}
		return nil
	}
	return batch(cmd, f, units, words, out)
}

func batch(cmd *cobra.Command, f *flags, units []gen.Unit, words reserved.Words, out io.Writer) error {
	g := mathquill.GenContext(cmd.Context(), units, words)
	g.Stdout = out
	g.Stderr = cmd.ErrOrStderr()
	g.Halt = f.halt
	return g.Run()
}

var litCfg = litter.Options{
	Compact:           true,
	StripPackageNames: false,
	HidePrivateFields: true,
	Separator:         " ",
}

// translator translates single units, logging each stage.
type translator struct {
	tr  *mathquill.Translator
	log *log.Logger
}

func (t *translator) unit(u gen.Unit, out io.Writer) error {
	t.log.Printf("[input]\n%s", u.Src)
	toks, err := parser.Lex(u.Src)
	if err != nil {
		return errors.New(parser.Snippet(err, u.Src))
	}
	for _, tok := range toks {
		t.log.Print(tok)
	}
	n, err := parser.ParseTokens(toks)
	if err != nil {
		return errors.New(parser.Snippet(err, u.Src))
	}
	nodes := 0
	ast.Walk(n, func(x ast.Node) (ast.Node, error) {
		nodes++
		return x, nil
	})
	t.log.Printf("[parser] nodes: %d\n%s", nodes, litCfg.Sdump(n))
	_, err = fmt.Fprintln(out, t.tr.Render(n, u.Options))
	return err
}
