// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package jzero

import (
	"math"
	"regexp"
	"sync"

	"github.com/valyala/fastjson/fastfloat"
	"go4.org/mem"
)

var (
	litNull  = mem.S("null")
	litTrue  = mem.S("true")
	litFalse = mem.S("false")
)

// ReadNull consumes the constant "null" at the cursor. If the next four
// bytes are not exactly "null" it reports false and does not move the
// cursor.
func (p *Parser) ReadNull() bool {
	if !mem.HasPrefix(mem.B(p.buf[p.pos:]), litNull) {
		return false
	}
	p.pos += litNull.Len()
	return true
}

// ReadBool consumes the constant "true" or "false" at the cursor and
// returns its value. If neither constant is present it reports false
// and does not move the cursor.
func (p *Parser) ReadBool() (value, ok bool) {
	rest := mem.B(p.buf[p.pos:])
	if mem.HasPrefix(rest, litTrue) {
		p.pos += litTrue.Len()
		return true, true
	}
	if mem.HasPrefix(rest, litFalse) {
		p.pos += litFalse.Len()
		return false, true
	}
	return false, false
}

// ReadInteger consumes a signed decimal integer at the cursor: an
// optional leading "-" followed by either a single "0" or a nonzero
// digit sequence. It fails if no digits are present, if the value does
// not fit in an int64, or if the byte following the digits is "." (the
// caller should then dispatch to ReadNumber or ReadDouble instead). On
// failure the cursor is left at or near the offending byte.
func (p *Parser) ReadInteger() (int64, bool) {
	neg := false
	if p.buf[p.pos] == '-' {
		neg = true
		p.pos++
	}
	var v int64
	if p.buf[p.pos] == '0' {
		p.pos++
	} else {
		start := p.pos
		for isDigit(p.buf[p.pos]) {
			p.pos++
		}
		u, err := fastfloat.ParseUint64(string(p.buf[start:p.pos]))
		if start == p.pos || err != nil {
			return 0, false
		}
		v, ok := applySign(u, neg)
		if !ok {
			return 0, false
		}
		return v, p.buf[p.pos] != '.'
	}
	if neg {
		v = -v
	}
	return v, p.buf[p.pos] != '.'
}

// applySign converts the magnitude u into a signed value. A positive
// value may not exceed math.MaxInt64; a negative one may not exceed
// math.MinInt64 in magnitude.
func applySign(u uint64, neg bool) (int64, bool) {
	if neg {
		if u > 1<<63 {
			return 0, false
		}
		return -int64(u), true // u == 1<<63 negates to math.MinInt64
	}
	if u > math.MaxInt64 {
		return 0, false
	}
	return int64(u), true
}

// ReadDouble consumes an optional sign, an optional "0", and, if the
// next byte is ".", a fractional digit run, returning the signed value
// or zero when no fraction is present. Unlike ReadNumber it reads no
// integer part beyond a single zero and no exponent; it exists as the
// bottom rung of the numeric reader surface, and ReadNumber subsumes
// it for general input.
func (p *Parser) ReadDouble() float64 {
	neg := false
	if p.buf[p.pos] == '-' {
		neg = true
		p.pos++
	}
	if p.buf[p.pos] == '0' {
		p.pos++
	}
	var v float64
	if p.buf[p.pos] == '.' {
		p.pos++
		var f, scale float64 = 0, 1
		for isDigit(p.buf[p.pos]) {
			f = f*10 + float64(p.buf[p.pos]-'0')
			scale *= 10
			p.pos++
		}
		v = f / scale
	}
	if neg {
		v = -v
	}
	return v
}

// ReadNumber consumes a JSON number at the cursor and classifies it
// into leaf: a number with a fraction or exponent becomes a Double, any
// other becomes an Integer. Exponents are decimal ("1e3" is 1000).
// ReadNumber fails if no digits are present, if a fraction or exponent
// is missing its digits, or if an integer does not fit in an int64.
func (p *Parser) ReadNumber(leaf *Leaf) bool {
	start := p.pos
	i := p.pos
	if p.buf[i] == '-' {
		i++
	}
	digits := i
	for isDigit(p.buf[i]) {
		i++
	}
	if i == digits {
		return false
	}
	isFloat := false
	if p.buf[i] == '.' {
		i++
		frac := i
		for isDigit(p.buf[i]) {
			i++
		}
		if i == frac {
			return false
		}
		isFloat = true
	}
	if c := p.buf[i]; c == 'E' || c == 'e' {
		i++
		if c := p.buf[i]; c == '+' || c == '-' {
			i++
		}
		exp := i
		for isDigit(p.buf[i]) {
			i++
		}
		if i == exp {
			return false
		}
		isFloat = true
	}
	if isFloat {
		v, err := fastfloat.Parse(string(p.buf[start:i]))
		if err != nil {
			return false
		}
		leaf.Kind, leaf.Float = Double, v
	} else {
		u, err := fastfloat.ParseUint64(string(p.buf[digits:i]))
		if err != nil {
			return false
		}
		v, ok := applySign(u, p.buf[start] == '-')
		if !ok {
			return false
		}
		leaf.Kind, leaf.Int = Integer, v
	}
	p.pos = i
	return true
}

// numberRep matches a complete JSON number at the start of its input:
// integer part, optional fraction, optional exponent.
var numberRep = sync.OnceValue(func() *regexp.Regexp {
	return regexp.MustCompile(`^-?(0|[1-9][0-9]*)(\.[0-9]+)?([eE][+-]?[0-9]+)?`)
})

// ReadNumberRep consumes a JSON number at the cursor without
// interpreting it, storing the unparsed text in leaf and classifying it
// as NumberRep. The stored slice aliases the parser's buffer.
//
// ReadNumberRep satisfies the OtherReader contract, making it usable as
// a replacement number policy for the event parsers and the tree
// builder.
func ReadNumberRep(p *Parser, leaf *Leaf) bool {
	m := numberRep().Find(p.Rest())
	if m == nil {
		return false
	}
	leaf.Kind, leaf.Text = NumberRep, m
	p.pos += len(m)
	return true
}
