// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package scan_test

import (
	"testing"

	"github.com/creachadair/jzero/internal/scan"
)

func TestHasByte(t *testing.T) {
	tests := []struct {
		input string
		b     byte
		want  bool
	}{
		{"abcdefgh", 'a', true},
		{"abcdefgh", 'h', true},
		{"abcdefgh", 'd', true},
		{"abcdefgh", 'z', false},
		{`abc"defg`, '"', true},
		{`abc\defg`, '\\', true},
		{"aaaaaaaa", 'a', true},
		{"\x00bcdefgh", 0, true},
		{"bbbbbbbb", 'a', false},
		// Byte values spanning two lanes must not alias.
		{"\x12\x34\x56\x78\x9a\xbc\xde\xf0", 0x23, false},
		{"\x80\x80\x80\x80\x80\x80\x80\x80", 0x80, true},
	}
	for _, test := range tests {
		w := scan.Load([]byte(test.input))
		if got := scan.HasByte(w, test.b); got != test.want {
			t.Errorf("HasByte(%#q, %#x): got %v, want %v", test.input, test.b, got, test.want)
		}
	}
}

func TestHasControl(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"abcdefgh", false},
		{"abcdefg\x1f", true},
		{"\x1fabcdefg", true},
		{"abc\x00efgh", true},
		{"abc\tefgh", true},
		{"abc\nefgh", true},
		{"abcdefg\x20", false},     // space is not a control
		{"abcdefg\x7f", false},     // DEL is permitted in strings
		{"\x7f\x7f\x7f\x7f\x7f\x7f\x7f\x7f", false},
		{"éééé", false},            // high bytes are not controls
		{"\x80\x9f\xa0\xff abcd", false},
	}
	for _, test := range tests {
		w := scan.Load([]byte(test.input))
		if got := scan.HasControl(w); got != test.want {
			t.Errorf("HasControl(%#q): got %v, want %v", test.input, got, test.want)
		}
	}
}

func TestRepeat(t *testing.T) {
	if got, want := scan.Repeat('"'), uint64(0x2222222222222222); got != want {
		t.Errorf("Repeat('\"'): got %#x, want %#x", got, want)
	}
	if got, want := scan.Repeat(0), uint64(0); got != want {
		t.Errorf("Repeat(0): got %#x, want %#x", got, want)
	}
	if got, want := scan.Repeat(0xff), uint64(0xffffffffffffffff); got != want {
		t.Errorf("Repeat(0xff): got %#x, want %#x", got, want)
	}
}
