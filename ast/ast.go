// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

// Package ast materializes JSON values parsed by jzero as a tree in
// memory.
//
// A tree is built by feeding the events of a jzero.Parser into an
// accumulating handler; use Parse or ParseWith. All strings and object
// keys in the tree alias the parsed buffer, so the tree must be
// released (or simply abandoned) before the buffer is reused. Composite
// nodes own their backing buffers exclusively; Release returns them to
// internal pools for reuse by later parses.
package ast

import "go4.org/mem"

// Kind is the type tag of a Value.
type Kind int8

// Constants defining the valid Kind values.
const (
	Null    Kind = iota // the null value
	Boolean             // true or false
	Integer             // number with no fraction or exponent
	Double              // number with fraction and/or exponent
	String              // string
	Array               // array of values
	Object              // collection of key-value members

	// NumberRep tags a numeric value captured as unparsed text by the
	// jzero.ReadNumberRep policy. Trees built with the default policy
	// never contain it.
	NumberRep
)

var kindStr = [...]string{
	Null:      "null",
	Boolean:   "boolean",
	Integer:   "integer",
	Double:    "double",
	String:    "string",
	Array:     "array",
	Object:    "object",
	NumberRep: "number representation",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindStr) {
		return "unknown kind"
	}
	return kindStr[k]
}

// A Value is a single JSON value. Which fields are meaningful depends
// on Kind: Bool for Boolean, Int for Integer, Float for Double, Str for
// String and NumberRep, Arr for Array, Obj for Object. Null sets no
// field. Consumers should switch on Kind exhaustively.
type Value struct {
	Kind  Kind
	Bool  bool
	Int   int64
	Float float64
	Str   []byte   // aliases the parsed buffer
	Arr   []Value  // owned by this node
	Obj   []Member // owned by this node
}

// A Member is a single key-value pair belonging to an Object. Keys are
// not deduplicated: members appear in insertion order, and the same key
// may occur more than once.
type Member struct {
	Key   []byte // aliases the parsed buffer
	Value Value
}

// Len reports the number of elements of an array or members of an
// object, and is zero for every other kind.
func (v *Value) Len() int {
	switch v.Kind {
	case Array:
		return len(v.Arr)
	case Object:
		return len(v.Obj)
	}
	return 0
}

// Index returns the i-th element of an array value, or nil if v is not
// an array or i is out of range.
func (v *Value) Index(i int) *Value {
	if v.Kind != Array || i < 0 || i >= len(v.Arr) {
		return nil
	}
	return &v.Arr[i]
}

// Find returns the first member of an object value with the given key,
// or nil.
func (v *Value) Find(key string) *Member {
	if v.Kind != Object {
		return nil
	}
	want := mem.S(key)
	for i := range v.Obj {
		if mem.B(v.Obj[i].Key).Equal(want) {
			return &v.Obj[i]
		}
	}
	return nil
}

// FindAll returns all members of an object value with the given key, in
// order. It returns nil if v is not an object or no member matches.
func (v *Value) FindAll(key string) []*Member {
	if v.Kind != Object {
		return nil
	}
	want := mem.S(key)
	var ms []*Member
	for i := range v.Obj {
		if mem.B(v.Obj[i].Key).Equal(want) {
			ms = append(ms, &v.Obj[i])
		}
	}
	return ms
}

// Count reports the number of members of an object value with the given
// key, and is zero for every other kind.
func (v *Value) Count(key string) int {
	if v.Kind != Object {
		return 0
	}
	want := mem.S(key)
	var n int
	for i := range v.Obj {
		if mem.B(v.Obj[i].Key).Equal(want) {
			n++
		}
	}
	return n
}

// Text returns the contents of a String or NumberRep value, or nil for
// every other kind.
func (v *Value) Text() []byte {
	if v.Kind == String || v.Kind == NumberRep {
		return v.Str
	}
	return nil
}
