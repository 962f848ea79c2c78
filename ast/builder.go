// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package ast

import (
	"errors"
	"fmt"

	"github.com/creachadair/jzero"
)

// Options customize how ParseWith builds a tree.
type Options struct {
	// ReadOther, if set, replaces the default number policy of the
	// parser (see jzero.OtherReader).
	ReadOther func(p *jzero.Parser, leaf *jzero.Leaf) bool

	// StoreLeaf, if set, is called to store any leaf whose kind is not
	// among the built-in five into the destination tree slot. The
	// builder panics on such a leaf if StoreLeaf is not set.
	StoreLeaf func(v *Value, leaf *jzero.Leaf) error
}

// NumberReps returns Options that capture numbers as their unparsed
// text: jzero.ReadNumberRep is the number policy, and the matched
// slices are stored as NumberRep values.
func NumberReps() Options {
	return Options{
		ReadOther: jzero.ReadNumberRep,
		StoreLeaf: func(v *Value, leaf *jzero.Leaf) error {
			if leaf.Kind != jzero.NumberRep {
				return fmt.Errorf("unexpected leaf kind %v", leaf.Kind)
			}
			v.Kind, v.Str = NumberRep, leaf.Text
			return nil
		},
	}
}

// Parse parses one JSON value at the cursor of p and returns it as a
// tree. Strings in the tree alias the parser's buffer. In case of
// error, any partially built tree is released internally and a nil
// value is returned along with the error.
func Parse(p *jzero.Parser) (*Value, error) { return ParseWith(p, Options{}) }

// ParseWith is Parse with options.
func ParseWith(p *jzero.Parser, opts Options) (*Value, error) {
	b := &builder{opts: opts}
	if err := p.Parse(b); err != nil {
		b.abandon()
		return nil, err
	}
	if len(b.stk) != 0 || !b.haveRoot {
		b.abandon()
		return nil, errors.New("incomplete value")
	}
	v := new(Value)
	*v = b.root
	return v, nil
}

// A builder implements the jzero.Handler interface to accumulate
// parsed values into a tree. It keeps a stack of in-progress composite
// elements; the destination slot for each incoming value is the latest
// entry of the top element, or the root when the stack is empty.
type builder struct {
	opts     Options
	root     Value
	haveRoot bool
	stk      []frame
}

// A frame is one in-progress composite. The entry events choose which
// buffer grows; entryArr records where the latest slot was made, which
// can disagree with inArray on malformed input (the stackless parser
// may announce an array entry inside an object before it can tell the
// input is broken).
type frame struct {
	inArray  bool
	entryArr bool
	arr      []Value
	obj      []Member
}

// dst returns the slot the next completed value belongs in.
func (b *builder) dst() *Value {
	if len(b.stk) == 0 {
		b.haveRoot = true
		return &b.root
	}
	f := &b.stk[len(b.stk)-1]
	if f.entryArr {
		return &f.arr[len(f.arr)-1]
	}
	return &f.obj[len(f.obj)-1].Value
}

func (b *builder) Begin(inArray bool) error {
	f := frame{inArray: inArray, entryArr: inArray}
	if inArray {
		f.arr = getValues()
	} else {
		f.obj = getMembers()
	}
	b.stk = append(b.stk, f)
	return nil
}

func (b *builder) ArrayEntry() error {
	f := &b.stk[len(b.stk)-1]
	f.arr = append(f.arr, Value{})
	f.entryArr = true
	return nil
}

func (b *builder) ObjectEntry(key []byte) error {
	f := &b.stk[len(b.stk)-1]
	f.obj = append(f.obj, Member{Key: key})
	f.entryArr = false
	return nil
}

func (b *builder) Leaf(leaf *jzero.Leaf) error {
	v := b.dst()
	switch leaf.Kind {
	case jzero.Null:
		v.Kind = Null
	case jzero.Boolean:
		v.Kind, v.Bool = Boolean, leaf.Bool
	case jzero.Integer:
		v.Kind, v.Int = Integer, leaf.Int
	case jzero.Double:
		v.Kind, v.Float = Double, leaf.Float
	case jzero.String:
		v.Kind, v.Str = String, leaf.Text
	default:
		if b.opts.StoreLeaf == nil {
			panic(fmt.Sprintf("no policy to store leaf kind %v", leaf.Kind))
		}
		return b.opts.StoreLeaf(v, leaf)
	}
	return nil
}

// End trusts the frame's own record of its kind rather than the event
// argument: the stackless parser reports the kind of the closing byte,
// which a malformed input can mismatch with the opener.
func (b *builder) End(bool) error {
	f := b.stk[len(b.stk)-1]
	b.stk = b.stk[:len(b.stk)-1]
	v := b.dst()
	if f.inArray {
		v.Kind, v.Arr = Array, f.arr
	} else {
		v.Kind, v.Obj = Object, f.obj
	}
	return nil
}

func (b *builder) ReadOther(p *jzero.Parser, leaf *jzero.Leaf) bool {
	if b.opts.ReadOther != nil {
		return b.opts.ReadOther(p, leaf)
	}
	return p.ReadNumber(leaf)
}

// abandon releases the buffers of all in-progress elements and any
// completed root after a failed parse.
func (b *builder) abandon() {
	for i := len(b.stk) - 1; i >= 0; i-- {
		f := b.stk[i]
		// Both buffers: a malformed stream can leave entries in each.
		arr := Value{Kind: Array, Arr: f.arr}
		arr.Release()
		obj := Value{Kind: Object, Obj: f.obj}
		obj.Release()
	}
	b.stk = nil
	if b.haveRoot {
		b.root.Release()
		b.haveRoot = false
	}
}
