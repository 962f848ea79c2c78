// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package ast

import (
	"fmt"
	"io"

	"github.com/creachadair/jzero/internal/escape"
	"go4.org/mem"
)

// Print writes a textual rendering of v to w. Object members are
// printed one per line, indented four spaces per nesting level; arrays
// are printed on a single line with ", " between elements; empty
// composites print as {} and []. Doubles print in fixed-point notation,
// so the rendering does not round-trip all values exactly.
func Print(w io.Writer, v *Value) error {
	return printValue(w, v, 0)
}

func printValue(w io.Writer, v *Value, depth int) error {
	switch v.Kind {
	case Null:
		return pr(w, "null")
	case Boolean:
		if v.Bool {
			return pr(w, "true")
		}
		return pr(w, "false")
	case Integer:
		return pr(w, "%d", v.Int)
	case Double:
		return pr(w, "%f", v.Float)
	case String, NumberRep:
		return printString(w, v)
	case Object:
		return printObject(w, v, depth)
	case Array:
		return printArray(w, v, depth)
	default:
		return fmt.Errorf("unknown kind %v", v.Kind)
	}
}

func printString(w io.Writer, v *Value) error {
	if v.Kind == NumberRep {
		_, err := w.Write(v.Str)
		return err
	}
	if err := pr(w, `"`); err != nil {
		return err
	}
	if _, err := w.Write(escape.Quote(mem.B(v.Str))); err != nil {
		return err
	}
	return pr(w, `"`)
}

func printObject(w io.Writer, v *Value, depth int) error {
	if len(v.Obj) == 0 {
		return pr(w, "{}")
	}
	if err := pr(w, "{\n%*s", 4*(depth+1), ""); err != nil {
		return err
	}
	for i := range v.Obj {
		m := &v.Obj[i]
		if err := pr(w, `"%s": `, escape.Quote(mem.B(m.Key))); err != nil {
			return err
		}
		if err := printValue(w, &m.Value, depth+1); err != nil {
			return err
		}
		if i+1 < len(v.Obj) {
			if err := pr(w, ",\n%*s", 4*(depth+1), ""); err != nil {
				return err
			}
		}
	}
	return pr(w, "\n%*s}", 4*depth, "")
}

func printArray(w io.Writer, v *Value, depth int) error {
	if len(v.Arr) == 0 {
		return pr(w, "[]")
	}
	if err := pr(w, "["); err != nil {
		return err
	}
	for i := range v.Arr {
		if err := printValue(w, &v.Arr[i], depth+1); err != nil {
			return err
		}
		if i+1 < len(v.Arr) {
			if err := pr(w, ", "); err != nil {
				return err
			}
		}
	}
	return pr(w, "]")
}

func pr(w io.Writer, msg string, args ...any) error {
	_, err := fmt.Fprintf(w, msg, args...)
	return err
}
