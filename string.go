// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package jzero

import (
	"strings"

	"github.com/creachadair/jzero/internal/scan"
)

// ReadString consumes a JSON string token at the cursor and returns its
// decoded contents. The cursor must be at the opening quote. Escape
// sequences, including \uXXXX escapes and UTF-16 surrogate pairs, are
// rewritten to UTF-8 inside the buffer, so the returned slice aliases
// the buffer and is always valid UTF-8 if the escapes were the only
// non-UTF-8 content. The byte following the decoded contents is
// overwritten with NUL.
//
// ReadString fails on an unterminated string, a malformed escape, an
// unpaired surrogate, or an unescaped control byte below 0x20 (DEL is
// permitted). On failure the cursor is left at or near the offending
// byte, and any rewriting already done is not rolled back.
func (p *Parser) ReadString() ([]byte, bool) {
	if p.buf[p.pos] != '"' {
		return nil, false
	}
	p.pos++
	start := p.pos

	i, ok := p.scanPlain(p.pos)
	if !ok {
		p.pos = i
		return nil, false
	}
	if p.buf[i] == '"' {
		// No escapes: the contents are already in place.
		p.buf[i] = 0
		p.pos = i + 1
		return p.buf[start:i], true
	}

	// Rewrite path: w trails i, compacting escapes as they shrink.
	w := i
	for p.buf[i] != '"' {
		c := p.buf[i]
		if c <= 0x1f {
			p.pos = i
			return nil, false
		}
		if c == '\\' {
			w, i, ok = p.unescape(w, i+1)
			if !ok {
				p.pos = i
				return nil, false
			}
		} else {
			if w != i {
				p.buf[w] = c
			}
			w++
			i++
		}
	}
	p.buf[w] = 0
	p.pos = i + 1
	return p.buf[start:w], true
}

// scanPlain scans forward from i for the first quote or backslash,
// returning its index. It fails on a control byte below 0x20,
// including the NUL terminator of an unterminated string. The bulk of
// the scan examines a word at a time; the head runs byte-wise until i
// is word-aligned, and the tail runs byte-wise when fewer than a full
// word remains.
func (p *Parser) scanPlain(i int) (int, bool) {
	for ; i%scan.WordBytes != 0; i++ {
		switch c := p.buf[i]; {
		case c == '"' || c == '\\':
			return i, true
		case c <= 0x1f:
			return i, false
		}
	}
	for i+scan.WordBytes <= len(p.buf) {
		w := scan.Load(p.buf[i:])
		if scan.HasByte(w, '"') || scan.HasByte(w, '\\') {
			break // locate the hit byte-wise below
		}
		if scan.HasControl(w) {
			break
		}
		i += scan.WordBytes
	}
	for {
		switch c := p.buf[i]; {
		case c == '"' || c == '\\':
			return i, true
		case c <= 0x1f:
			return i, false
		}
		i++
	}
}

// Escape bytes and what they decode to. The final pattern byte, "u",
// introduces a Unicode escape and is handled separately.
const escPattern = `"\/bfnrtu`

var escReplace = [...]byte{'"', '\\', '/', '\b', '\f', '\n', '\r', '\t'}

// unescape decodes the escape sequence whose introducing backslash is
// already consumed, with i at the byte naming the escape. It writes the
// decoded bytes at w and returns the advanced positions. Decoded forms
// are never longer than their escape sequences, so writing in place is
// safe.
func (p *Parser) unescape(w, i int) (int, int, bool) {
	k := strings.IndexByte(escPattern, p.buf[i])
	if k < 0 {
		return w, i, false
	}
	if k < len(escReplace) {
		p.buf[w] = escReplace[k]
		return w + 1, i + 1, true
	}

	u, ok := p.hex4(i + 1)
	if !ok {
		return w, i, false
	}
	i += 5 // the "u" and four hex digits
	switch {
	case u < 0x80:
		p.buf[w] = byte(u)
		w++
	case u < 0x800:
		p.buf[w] = 0xc0 | byte(u>>6)
		p.buf[w+1] = 0x80 | byte(u&0x3f)
		w += 2
	case u < 0xd800 || u >= 0xe000:
		p.buf[w] = 0xe0 | byte(u>>12)
		p.buf[w+1] = 0x80 | byte(u>>6&0x3f)
		p.buf[w+2] = 0x80 | byte(u&0x3f)
		w += 3
	case u < 0xdc00:
		// u is a high surrogate; a low surrogate escape must follow.
		if p.buf[i] != '\\' || p.buf[i+1] != 'u' {
			return w, i, false
		}
		lo, ok := p.hex4(i + 2)
		if !ok || lo < 0xdc00 || lo >= 0xe000 {
			return w, i, false
		}
		i += 6
		v := ((u&0x3ff)<<10 | lo&0x3ff) + 0x10000
		p.buf[w] = 0xf0 | byte(v>>18)
		p.buf[w+1] = 0x80 | byte(v>>12&0x3f)
		p.buf[w+2] = 0x80 | byte(v>>6&0x3f)
		p.buf[w+3] = 0x80 | byte(v&0x3f)
		w += 4
	default:
		// An unpaired low surrogate.
		return w, i, false
	}
	return w, i, true
}

// hex4 decodes the four hex digits at offset i into a code unit.
func (p *Parser) hex4(i int) (uint32, bool) {
	if i+4 >= len(p.buf) {
		return 0, false
	}
	var u uint32
	for _, c := range p.buf[i : i+4] {
		var v uint32
		switch {
		case '0' <= c && c <= '9':
			v = uint32(c - '0')
		case 'a' <= c && c <= 'f':
			v = uint32(c-'a') + 10
		case 'A' <= c && c <= 'F':
			v = uint32(c-'A') + 10
		default:
			return 0, false
		}
		u = u<<4 | v
	}
	return u, true
}
