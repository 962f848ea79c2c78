// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package jzero

// ParseRecursive parses one JSON value at the cursor and delivers
// events to h, descending into composites by recursion. It uses call
// stack proportional to the nesting depth of the value; for inputs of
// unbounded depth use Parse instead. The event sequence is identical to
// the one Parse produces.
//
// In case of a syntax error the returned error has type [*SyntaxError]
// and the cursor is left at or near the offending byte. Errors reported
// by handler methods are returned unchanged.
func (p *Parser) ParseRecursive(h Handler) error {
	p.skipSpace()
	return p.parseValue(h, readOtherOf(h))
}

// parseValue consumes a single value of any type.
// Precondition: the cursor is at the first byte of the value.
func (p *Parser) parseValue(h Handler, other otherFunc) error {
	switch p.buf[p.pos] {
	case '[':
		p.pos++
		if err := h.Begin(true); err != nil {
			return err
		}
		p.skipSpace()
		if p.buf[p.pos] != ']' {
			for {
				if err := h.ArrayEntry(); err != nil {
					return err
				}
				if err := p.parseValue(h, other); err != nil {
					return err
				}
				p.skipSpace()
				if p.buf[p.pos] != ',' {
					break
				}
				p.pos++
				p.skipSpace()
			}
		}
		if p.buf[p.pos] != ']' {
			return p.syntaxErrf(`expected "," or "]"`)
		}
		p.pos++
		return h.End(true)

	case '{':
		p.pos++
		if err := h.Begin(false); err != nil {
			return err
		}
		p.skipSpace()
		if p.buf[p.pos] != '}' {
			for {
				key, ok := p.ReadString()
				if !ok {
					return p.syntaxErrf("invalid object key")
				}
				p.skipSpace()
				if p.buf[p.pos] != ':' {
					return p.syntaxErrf(`expected ":"`)
				}
				p.pos++
				if err := h.ObjectEntry(key); err != nil {
					return err
				}
				p.skipSpace()
				if err := p.parseValue(h, other); err != nil {
					return err
				}
				p.skipSpace()
				if p.buf[p.pos] != ',' {
					break
				}
				p.pos++
				p.skipSpace()
			}
		}
		if p.buf[p.pos] != '}' {
			return p.syntaxErrf(`expected "," or "}"`)
		}
		p.pos++
		return h.End(false)

	default:
		var leaf Leaf
		if !p.readLeaf(&leaf, other) {
			return p.syntaxErrf("invalid value")
		}
		return h.Leaf(&leaf)
	}
}

// Parse parses one JSON value at the cursor and delivers events to h.
// It emits the same event sequence as ParseRecursive but keeps no
// per-level state: the only record of nesting is an integer depth
// counter, so the accepted depth is limited by neither the machine
// stack nor available memory.
//
// Context is recovered locally instead of stacked. After an opening
// bracket, a string followed by ":" identifies an object key and
// anything else an array element; a closing bracket identifies by its
// shape which kind of composite ends. A string read while probing for a
// key may turn out to be an array element, in which case it is held
// back and delivered as the leaf of the next iteration.
//
// One consequence of keeping no per-level state: a closing bracket that
// does not match its opener cannot be detected. The End event reports
// the kind the closing byte denotes, and an input such as "[1}" is
// accepted. ParseRecursive rejects such inputs.
//
// In case of a syntax error the returned error has type [*SyntaxError]
// and the cursor is left at or near the offending byte. Errors reported
// by handler methods are returned unchanged.
func (p *Parser) Parse(h Handler) error {
	other := readOtherOf(h)
	var leaf Leaf

	depth := 0
	pending := false // leaf holds a string awaiting delivery as an array element
	p.skipSpace()
	for {
		first := p.buf[p.pos]

		// Whether a nonempty composite was opened in this iteration.
		opened := false
		// Whether the composite the next entry belongs to is known to
		// be an array. A pending string can only occur in an array.
		inArray := pending

		if pending {
			if err := h.Leaf(&leaf); err != nil {
				return err
			}
			pending = false
		} else if first == '[' || first == '{' {
			p.pos++
			p.skipSpace()
			isArr := first == '['
			if err := h.Begin(isArr); err != nil {
				return err
			}
			// In ASCII, '['+2 == ']' and '{'+2 == '}'. An empty
			// composite is handled entirely here.
			if p.buf[p.pos] == first+2 {
				p.pos++
				if err := h.End(isArr); err != nil {
					return err
				}
			} else {
				depth++
				opened = true
				inArray = isArr
			}
		} else {
			if !p.readLeaf(&leaf, other) {
				return p.syntaxErrf("invalid value")
			}
			if err := h.Leaf(&leaf); err != nil {
				return err
			}
		}

		// For all but the first entry of a composite: the next token is
		// not "," exactly when the composite ends here. Close as many
		// composites as end at this point.
		if !opened {
			for depth > 0 {
				p.skipSpace()
				if p.buf[p.pos] == ',' {
					break
				}
				switch p.buf[p.pos] {
				case ']':
					if err := h.End(true); err != nil {
						return err
					}
				case '}':
					if err := h.End(false); err != nil {
						return err
					}
				default:
					return p.syntaxErrf(`expected ",", "]", or "}"`)
				}
				p.pos++
				depth--
				inArray = false
			}
		}

		// The value closed back to top level: the parse is complete.
		if depth == 0 {
			return nil
		}

		if !opened {
			if p.buf[p.pos] != ',' {
				return p.syntaxErrf(`expected ","`)
			}
			p.pos++
			p.skipSpace()
		}

		// Decide the context of the next entry. The first entry of an
		// object opened in this iteration must be a key. Otherwise a
		// non-string can only be an array element, and a string is an
		// object key exactly when ":" follows it.
		inObject := opened && !inArray
		if !inObject && (inArray || p.buf[p.pos] != '"') {
			if err := h.ArrayEntry(); err != nil {
				return err
			}
		} else {
			s, ok := p.ReadString()
			if !ok {
				return p.syntaxErrf("invalid string")
			}
			p.skipSpace()
			if p.buf[p.pos] == ':' {
				if err := h.ObjectEntry(s); err != nil {
					return err
				}
				p.pos++
				p.skipSpace()
			} else if inObject {
				return p.syntaxErrf(`expected ":"`)
			} else {
				if err := h.ArrayEntry(); err != nil {
					return err
				}
				leaf = Leaf{Kind: String, Text: s}
				pending = true
			}
		}
	}
}
