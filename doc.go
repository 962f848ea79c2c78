// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

// Package jzero implements an in-place JSON parser.
//
// The parser trades generality for speed: its input is a single
// contiguous, writable, NUL-terminated byte buffer, and decoded string
// values are produced inside that same buffer by rewriting escape
// sequences in place. No copies of string data are made, and the
// streaming parsers allocate no memory at all.
//
// # Parsers
//
// Construct a Parser from a byte buffer and call one of its parse
// methods. The buffer is consumed destructively; keep a copy if the
// original text is needed afterward.
//
//	p := jzero.New([]byte(`{"a": [1, 2]}`))
//	if err := p.Parse(handler); err != nil {
//	   log.Fatalf("Parse failed: %v", err)
//	}
//
// Parse recognizes the full JSON grammar using a single integer depth
// counter, so documents may nest arbitrarily deep regardless of the
// machine stack. ParseRecursive produces the identical event sequence
// by recursive descent, using call stack proportional to the document
// depth.
//
// # Handlers
//
// Both parsers report the structure of the input by calling methods on
// a Handler value:
//
//	JSON structure  | Method       | Description
//	--------------- | ------------ | ---------------------------------
//	scalar          | Leaf         | null, false, true, number, string
//	"[", "{"        | Begin        | open an array or object
//	"]", "}"        | End          | close an array or object
//	array element   | ArrayEntry   | called before each element
//	object member   | ObjectEntry  | called before each value, with its key
//
// If a handler method reports an error, parsing stops and that error is
// returned to the caller. String and key slices passed to a handler
// alias the parser's buffer and remain valid until the buffer is
// released or reused.
//
// A handler may also implement the optional OtherReader interface to
// replace the default number policy, for example to capture numbers as
// unparsed text (see ReadNumberRep).
//
// # Low-level readers
//
// The Read methods of a Parser (ReadNull, ReadBool, ReadInteger,
// ReadDouble, ReadNumber, ReadString) consume a single scalar token at
// the cursor. All but ReadDouble report failure with a false result;
// ReadDouble cannot fail and returns zero when no fraction is present.
// They do not skip leading whitespace.
//
// To materialize a document as a value tree, see the ast subpackage.
package jzero
