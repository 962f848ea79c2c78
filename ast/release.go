// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package ast

import "sync"

// Buffer pools for composite nodes. The builder draws empty buffers
// from these pools and Release returns them, so that a parse-release
// cycle reuses composite buffers. The pools hold pointers to slices;
// each Put stores a newly allocated pointer to the returned slice, so a
// Put call is not free of allocation.
var (
	valuePool  sync.Pool // *[]Value
	memberPool sync.Pool // *[]Member
)

func getValues() []Value {
	if p, ok := valuePool.Get().(*[]Value); ok {
		return (*p)[:0]
	}
	return nil
}

func getMembers() []Member {
	if p, ok := memberPool.Get().(*[]Member); ok {
		return (*p)[:0]
	}
	return nil
}

func putValues(vs []Value) {
	if cap(vs) == 0 {
		return
	}
	vs = vs[:cap(vs)]
	clear(vs)
	valuePool.Put(&vs)
}

func putMembers(ms []Member) {
	if cap(ms) == 0 {
		return
	}
	ms = ms[:cap(ms)]
	clear(ms)
	memberPool.Put(&ms)
}

// Release returns the backing buffers of v and all its descendants to
// the internal pools, in post-order, and resets v to the zero (null)
// value. Leaves need no cleanup of their own: string contents live in
// the parsed buffer, which the caller owns.
//
// A released value, and every value that was reachable from it, must
// not be used again. Release of a nil value is a no-op.
func (v *Value) Release() {
	if v == nil {
		return
	}
	switch v.Kind {
	case Array:
		for i := range v.Arr {
			v.Arr[i].Release()
		}
		putValues(v.Arr)
	case Object:
		for i := range v.Obj {
			v.Obj[i].Value.Release()
		}
		putMembers(v.Obj)
	}
	*v = Value{}
}
