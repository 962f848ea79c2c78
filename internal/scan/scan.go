// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

// Package scan provides word-at-a-time byte scanning primitives.
//
// The detection trick is the one glibc memchr uses: subtracting a
// repeated 0x01 from a word borrows out of exactly the bytes that are
// zero, and masking against a repeated 0x80 isolates the borrow. XOR
// with a repeated target byte first, and the zero test becomes an
// equality test for that byte in any lane.
package scan

import "encoding/binary"

// WordBytes is the number of input bytes examined per word.
const WordBytes = 8

const (
	ones  = 0x0101010101010101
	highs = 0x8080808080808080
)

// Load returns the word formed from the first WordBytes bytes of buf in
// little-endian order. It panics if buf is shorter than WordBytes.
func Load(buf []byte) uint64 { return binary.LittleEndian.Uint64(buf) }

// Repeat returns the word with b in every byte lane.
func Repeat(b byte) uint64 { return ones * uint64(b) }

// zeroIn returns a nonzero mask exactly when some byte lane of w is
// zero.
func zeroIn(w uint64) uint64 { return (w - ones) &^ w & highs }

// HasByte reports whether any byte lane of w equals b.
func HasByte(w uint64, b byte) bool { return zeroIn(w^Repeat(b)) != 0 }

// HasControl reports whether any byte lane of w is an ASCII control
// byte, below 0x20. DEL (0x7F) is not a hit.
func HasControl(w uint64) bool { return zeroIn(w&^Repeat(0x1f)) != 0 }
