// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

// Program jzero is a diagnostic harness for the jzero parser. It reads
// JSON documents from files or stdin, one per line by default or the
// whole input as a single document with -1, parses each with the
// selected parser, and optionally prints what it saw.
package main

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/creachadair/jzero"
	"github.com/creachadair/jzero/ast"
	"github.com/spf13/cobra"
	"github.com/tailscale/hujson"
)

var flags struct {
	single  bool
	mode    string
	verbose int
	hujson  bool
}

func main() {
	root := &cobra.Command{
		Use:   "jzero [files...]",
		Short: "Parse JSON documents destructively, in place",
		Long: `Parse JSON documents destructively, in place.

With no file arguments, input is read from stdin. Each input line is
parsed as one document unless -1 is set, in which case the whole input
is a single document and the parse is timed.

The mode flag selects the machinery: "flat" is the stackless streaming
parser, "rec" the recursive streaming parser, and "tree" builds a value
tree. With -v, streaming modes print the event trace and tree mode
prints the tree.`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          run,
	}
	fs := root.Flags()
	fs.BoolVarP(&flags.single, "single", "1", false, "treat the whole input as a single document")
	fs.StringVarP(&flags.mode, "mode", "m", "tree", `parser to exercise: "flat", "rec", or "tree"`)
	fs.CountVarP(&flags.verbose, "verbose", "v", "print parsed structure")
	fs.BoolVar(&flags.hujson, "hujson", false, "standardize HuJSON (comments, trailing commas) before parsing")

	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	parse, err := parseFunc()
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return runInput(os.Stdin, "stdin", parse)
	}
	for _, path := range args {
		f, err := os.Open(path)
		if err != nil {
			return err
		}
		err = runInput(f, path, parse)
		f.Close()
		if err != nil {
			return err
		}
	}
	return nil
}

// parseFunc resolves the mode flag to a function parsing one document.
func parseFunc() (func(*jzero.Parser) error, error) {
	var h jzero.Handler = discard{}
	if flags.verbose > 0 {
		h = &trace{w: os.Stdout}
	}
	switch flags.mode {
	case "flat":
		return func(p *jzero.Parser) error { return p.Parse(h) }, nil
	case "rec":
		return func(p *jzero.Parser) error { return p.ParseRecursive(h) }, nil
	case "tree":
		return func(p *jzero.Parser) error {
			v, err := ast.Parse(p)
			if err != nil {
				return err
			}
			if flags.verbose > 0 {
				if err := ast.Print(os.Stdout, v); err != nil {
					return err
				}
				fmt.Println()
			}
			v.Release()
			return nil
		}, nil
	default:
		return nil, fmt.Errorf("unknown mode %q", flags.mode)
	}
}

func runInput(r io.Reader, name string, parse func(*jzero.Parser) error) error {
	if flags.single {
		data, err := io.ReadAll(r)
		if err != nil {
			return err
		}
		if data, err = standardize(data); err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		start := time.Now()
		err = parse(jzero.New(data))
		fmt.Fprintf(os.Stderr, "time: %dµs\n", time.Since(start).Microseconds())
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		return nil
	}

	sc := bufio.NewScanner(r)
	sc.Buffer(nil, 1<<24)
	for line := 1; sc.Scan(); line++ {
		text := sc.Bytes()
		if len(bytes.TrimSpace(text)) == 0 {
			continue
		}
		// The parser writes into its input, and the scanner reuses its
		// buffer between lines.
		data, err := standardize(bytes.Clone(text))
		if err != nil {
			return fmt.Errorf("%s:%d: %w", name, line, err)
		}
		if err := parse(jzero.New(data)); err != nil {
			return fmt.Errorf("%s:%d: %w", name, line, err)
		}
	}
	return sc.Err()
}

func standardize(data []byte) ([]byte, error) {
	if !flags.hujson {
		return data, nil
	}
	return hujson.Standardize(data)
}

// A discard handler accepts all events and records nothing.
type discard struct{}

func (discard) Leaf(*jzero.Leaf) error   { return nil }
func (discard) Begin(bool) error         { return nil }
func (discard) ArrayEntry() error        { return nil }
func (discard) ObjectEntry([]byte) error { return nil }
func (discard) End(bool) error           { return nil }

// A trace handler prints one line per event.
type trace struct {
	w io.Writer
}

func (t *trace) Leaf(leaf *jzero.Leaf) error {
	switch leaf.Kind {
	case jzero.Null:
		return t.pr("leaf: null")
	case jzero.Boolean:
		return t.pr("leaf: %v", leaf.Bool)
	case jzero.Integer:
		return t.pr("leaf: %d", leaf.Int)
	case jzero.Double:
		return t.pr("leaf: %f", leaf.Float)
	case jzero.String:
		return t.pr(`leaf: "%s"`, leaf.Text)
	default:
		return t.pr("leaf: %s %q", leaf.Kind, leaf.Text)
	}
}

func (t *trace) Begin(inArray bool) error {
	return t.pr("%s begin", compositeName(inArray))
}

func (t *trace) ArrayEntry() error { return t.pr("array entry") }

func (t *trace) ObjectEntry(key []byte) error {
	return t.pr("obj entry: %s", key)
}

func (t *trace) End(inArray bool) error {
	return t.pr("%s end", compositeName(inArray))
}

func (t *trace) pr(msg string, args ...any) error {
	_, err := fmt.Fprintf(t.w, msg+"\n", args...)
	return err
}

func compositeName(inArray bool) string {
	if inArray {
		return "array"
	}
	return "obj"
}
