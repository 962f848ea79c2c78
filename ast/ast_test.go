// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package ast_test

import (
	"strings"
	"testing"

	"github.com/creachadair/jzero"
	"github.com/creachadair/jzero/ast"
	"github.com/creachadair/mds/mtest"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func mustParse(t *testing.T, input string) *ast.Value {
	t.Helper()
	v, err := ast.Parse(jzero.New([]byte(input)))
	if err != nil {
		t.Fatalf("Parse(%#q) failed: %v", input, err)
	}
	return v
}

func TestParse(t *testing.T) {
	tests := []struct {
		input string
		want  *ast.Value
	}{
		{`null`, &ast.Value{Kind: ast.Null}},
		{`true`, &ast.Value{Kind: ast.Boolean, Bool: true}},
		{`-15`, &ast.Value{Kind: ast.Integer, Int: -15}},
		{`0.25`, &ast.Value{Kind: ast.Double, Float: 0.25}},
		{`"ok go"`, &ast.Value{Kind: ast.String, Str: []byte("ok go")}},
		{`"he\"llo\n"`, &ast.Value{Kind: ast.String, Str: []byte("he\"llo\n")}},

		{`[]`, &ast.Value{Kind: ast.Array}},
		{`{}`, &ast.Value{Kind: ast.Object}},

		{`{"a":[1,-2,3]}`, &ast.Value{Kind: ast.Object, Obj: []ast.Member{
			{Key: []byte("a"), Value: ast.Value{Kind: ast.Array, Arr: []ast.Value{
				{Kind: ast.Integer, Int: 1},
				{Kind: ast.Integer, Int: -2},
				{Kind: ast.Integer, Int: 3},
			}}},
		}}},

		{`{"k":"\uD83D\uDE00"}`, &ast.Value{Kind: ast.Object, Obj: []ast.Member{
			{Key: []byte("k"), Value: ast.Value{
				Kind: ast.String,
				Str:  []byte("\xf0\x9f\x98\x80"), // U+1F600 as UTF-8
			}},
		}}},

		{`[null, [true, 2.5], {"s": "t"}]`, &ast.Value{Kind: ast.Array, Arr: []ast.Value{
			{Kind: ast.Null},
			{Kind: ast.Array, Arr: []ast.Value{
				{Kind: ast.Boolean, Bool: true},
				{Kind: ast.Double, Float: 2.5},
			}},
			{Kind: ast.Object, Obj: []ast.Member{
				{Key: []byte("s"), Value: ast.Value{Kind: ast.String, Str: []byte("t")}},
			}},
		}}},
	}
	for _, test := range tests {
		got := mustParse(t, test.input)
		if diff := cmp.Diff(test.want, got, cmpopts.EquateEmpty()); diff != "" {
			t.Errorf("Parse(%#q): (-want, +got)\n%s", test.input, diff)
		}
		got.Release()
	}
}

func TestParseErrors(t *testing.T) {
	tests := []string{
		``,
		`[`,
		`[1, 2`,
		`{"a":`,
		`{"a" 1}`,
		`"open`,
		`bogus`,
	}
	for _, input := range tests {
		v, err := ast.Parse(jzero.New([]byte(input)))
		if err == nil {
			t.Errorf("Parse(%#q): got nil, want error", input)
		}
		if v != nil {
			t.Errorf("Parse(%#q): got value %+v, want nil", input, v)
		}
	}
}

// Duplicate keys are preserved in order, and the lookup methods see all
// of them.
func TestDuplicateKeys(t *testing.T) {
	v := mustParse(t, `{"x":1,"y":true,"x":2}`)
	defer v.Release()

	if got := v.Len(); got != 3 {
		t.Errorf("Len: got %d, want 3", got)
	}
	if got := v.Count("x"); got != 2 {
		t.Errorf(`Count("x"): got %d, want 2`, got)
	}
	if m := v.Find("x"); m == nil {
		t.Error(`Find("x"): got nil, want the first member`)
	} else if m.Value.Int != 1 {
		t.Errorf(`Find("x"): got value %d, want 1`, m.Value.Int)
	}

	ms := v.FindAll("x")
	if len(ms) != 2 {
		t.Fatalf(`FindAll("x"): got %d members, want 2`, len(ms))
	}
	if ms[0].Value.Int != 1 || ms[1].Value.Int != 2 {
		t.Errorf(`FindAll("x"): got values %d, %d; want 1, 2`, ms[0].Value.Int, ms[1].Value.Int)
	}

	if got := v.Count("z"); got != 0 {
		t.Errorf(`Count("z"): got %d, want 0`, got)
	}
	if m := v.Find("z"); m != nil {
		t.Errorf(`Find("z"): got %+v, want nil`, m)
	}
}

func TestValueAccessors(t *testing.T) {
	v := mustParse(t, `["a", "b", "c"]`)
	defer v.Release()

	if got := v.Len(); got != 3 {
		t.Errorf("Len: got %d, want 3", got)
	}
	if e := v.Index(1); e == nil || string(e.Text()) != "b" {
		t.Errorf("Index(1): got %v, want string b", e)
	}
	if e := v.Index(3); e != nil {
		t.Errorf("Index(3): got %v, want nil", e)
	}
	if e := v.Index(-1); e != nil {
		t.Errorf("Index(-1): got %v, want nil", e)
	}
	if v.Find("a") != nil {
		t.Error("Find on an array: got non-nil, want nil")
	}
}

func TestPath(t *testing.T) {
	v := mustParse(t, `[{"a": 1, "b": 2}, {"c": {"d": true}, "e": false}]`)
	defer v.Release()

	got, err := ast.Path(v, 1, "c", "d")
	if err != nil {
		t.Fatalf("Path failed: %v", err)
	}
	if got.Kind != ast.Boolean || !got.Bool {
		t.Errorf("Path: got %+v, want true", got)
	}

	for _, bad := range [][]any{
		{0, "missing"},
		{2},
		{-1},
		{0, 0},
		{"a"},
		{0, 1.5},
	} {
		if _, err := ast.Path(v, bad...); err == nil {
			t.Errorf("Path(%v): got nil, want error", bad)
		}
	}

	// A duplicated key is ambiguous, so Path refuses to choose.
	dup := mustParse(t, `{"x":1,"x":2}`)
	defer dup.Release()
	if _, err := ast.Path(dup, "x"); err == nil {
		t.Error(`Path("x") over duplicate keys: got nil, want error`)
	}
}

func TestRelease(t *testing.T) {
	v := mustParse(t, `{"a":[1,{"b":["c"]},[]],"d":{}}`)
	v.Release()
	if v.Kind != ast.Null || v.Arr != nil || v.Obj != nil {
		t.Errorf("Release left %+v, want zero value", v)
	}
	v.Release() // releasing a released (null) value is a no-op

	var nilValue *ast.Value
	nilValue.Release() // must not panic

	// The pools must yield reusable buffers without corrupting new
	// parses.
	w := mustParse(t, `{"e":[2,3,{"f":4}]}`)
	defer w.Release()
	got, err := ast.Path(w, "e", 2, "f")
	if err != nil {
		t.Fatalf("Path failed: %v", err)
	}
	if got.Int != 4 {
		t.Errorf("Path: got %d, want 4", got.Int)
	}
}

func TestNumberReps(t *testing.T) {
	p := jzero.New([]byte(`{"pi": 3.14159e0, "n": 42}`))
	v, err := ast.ParseWith(p, ast.NumberReps())
	if err != nil {
		t.Fatalf("ParseWith failed: %v", err)
	}
	defer v.Release()

	pi, err := ast.Path(v, "pi")
	if err != nil {
		t.Fatalf("Path failed: %v", err)
	}
	if pi.Kind != ast.NumberRep || string(pi.Text()) != "3.14159e0" {
		t.Errorf("pi: got %v %#q, want number representation 3.14159e0", pi.Kind, pi.Text())
	}
	n, err := ast.Path(v, "n")
	if err != nil {
		t.Fatalf("Path failed: %v", err)
	}
	if n.Kind != ast.NumberRep || string(n.Text()) != "42" {
		t.Errorf("n: got %v %#q, want number representation 42", n.Kind, n.Text())
	}
}

// A replacement number policy that produces kinds beyond the built-in
// set requires a StoreLeaf policy to give them a home in the tree.
func TestMissingStoreLeaf(t *testing.T) {
	mtest.MustPanic(t, func() {
		p := jzero.New([]byte(`15`))
		ast.ParseWith(p, ast.Options{ReadOther: jzero.ReadNumberRep})
	})
}

// Parsing mutates the buffer, so a tree outlives its text only as long
// as the buffer does, and reparsing the same buffer is not expected to
// work. This locks in the aliasing contract.
func TestBufferAliasing(t *testing.T) {
	buf := []byte(`{"key": "value"}` + "\x00")
	v, err := ast.Parse(jzero.New(buf))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	defer v.Release()

	m := v.Find("key")
	if m == nil {
		t.Fatal(`Find("key"): got nil`)
	}

	// The decoded contents are slices of buf, not copies.
	if got := strings.Index(string(buf), "value"); got < 0 {
		t.Fatal("contents not found in buffer")
	}
	buf[9] = 'V' // the "v" of "value"
	if got := string(m.Value.Text()); got != "Value" {
		t.Errorf("after buffer edit: got %#q, want %#q", got, "Value")
	}
}
