// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package ast

import "fmt"

// Path traverses a sequential path into the structure of v and returns
// the value it ends at. Path elements must be strings or ints:
//
//   - A string selects the member of an object with that key. The key
//     must occur exactly once; a duplicated key is an error, since the
//     path cannot say which occurrence it means (use FindAll to see
//     all of them).
//
//   - An int selects the element of an array at that offset.
//
// The result points into the structure of v; it is not a copy.
func Path(v *Value, path ...any) (*Value, error) {
	for _, elem := range path {
		switch t := elem.(type) {
		case string:
			ms := v.FindAll(t)
			if len(ms) == 0 {
				return nil, fmt.Errorf("key %q not found in %v", t, v.Kind)
			} else if len(ms) > 1 {
				return nil, fmt.Errorf("key %q occurs %d times", t, len(ms))
			}
			v = &ms[0].Value
		case int:
			if v.Kind != Array {
				return nil, fmt.Errorf("cannot index %v", v.Kind)
			} else if t < 0 || t >= len(v.Arr) {
				return nil, fmt.Errorf("index %d out of range (0..%d)", t, len(v.Arr))
			}
			v = &v.Arr[t]
		default:
			return nil, fmt.Errorf("invalid path element %T", elem)
		}
	}
	return v, nil
}
