// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

// Package escape re-escapes decoded string contents for printing.
package escape

import "go4.org/mem"

var hexDigit = []byte("0123456789abcdef")

// Quote encodes decoded string contents for inclusion in a printed JSON
// string: quotes and backslashes get a backslash, control bytes below
// 0x20 become \u00XX, and all other bytes (DEL and non-ASCII UTF-8
// included) pass through unchanged. The enclosing quotation marks are
// not added.
func Quote(src mem.RO) []byte {
	buf := make([]byte, 0, src.Len())
	for i := 0; i < src.Len(); i++ {
		switch b := src.At(i); {
		case b == '"' || b == '\\':
			buf = append(buf, '\\', b)
		case b <= 0x1f:
			buf = append(buf, '\\', 'u', '0', '0', hexDigit[b>>4], hexDigit[b&15])
		default:
			buf = append(buf, b)
		}
	}
	return buf
}
