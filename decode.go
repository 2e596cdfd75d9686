package abi

// Decode is the mirror image of Encode (spec.md §4.5): given the parameter
// list that describes the expected shape and the raw encoded bytes, it
// reconstructs a NamedValues. Grounded algorithmically on the teacher's
// generator/decoders.go per-type layout logic, generalized to walk a Type
// tree at runtime instead of emitting one decode function per type.
//
// Decode builds the traversal path for each top-level parameter itself
// ("param-<i>(<name>)"), mirroring Encode, so a failure several levels
// into a nested tuple/array argument still reads back to the offending
// parameter rather than an empty or single-segment path.
func Decode(params Parameters, data []byte) (*NamedValues, error) {
	types := make([]*Type, len(params))
	paths := make([]string, len(params))
	for i, p := range params {
		types[i] = p.Type
		paths[i] = paramPath(i, p.Name)
	}

	items, err := decodeHeterogeneousFrom(types, data, paths)
	if err != nil {
		return nil, err
	}

	rec := NewRecord()
	for i, p := range params {
		key := p.Name
		if key == "" {
			key = paramKey(i)
		}
		rec.Set(key, items[i])
	}
	return rec, nil
}

// DecodeValue decodes data as t's own body: data[0:] is taken to be
// positioned at t's first slot directly, with no enclosing pointer to
// resolve (the same "implicit top-level tuple, no self-pointer"
// convention Encode/EncodeValues use). Mirrors EncodeValues.
func DecodeValue(t *Type, data []byte) (Value, error) {
	return decodeBody(t, data, "")
}

// decodeBody decodes t's own body starting at body[0:]. It is always
// called positioned at t's first byte, whether that position was reached
// directly (a static item, or the top-level call) or by following a
// pointer resolved by the caller (a dynamic item) -- the pointer-reading
// step itself lives solely in decodeHeterogeneousFrom, mirroring how
// encodeHeterogeneousInto is the only place that ever writes one. path is
// this value's position in the overall tree, already resolved by the
// caller.
func decodeBody(t *Type, body []byte, path string) (Value, error) {
	switch t.Kind() {
	case KindScalar:
		return decodeScalarBody(t, body, path)
	case KindArray:
		return decodeArrayBody(t, body, path)
	case KindTuple:
		return decodeTupleBody(t, body, path)
	default:
		return Value{}, newErr(ErrInternalLayout, path, t.CanonicalString(), "unknown type kind")
	}
}

func decodeScalarBody(t *Type, body []byte, path string) (Value, error) {
	switch t.Family() {
	case FamilyBytes:
		raw, err := decodeDynamicBytes(body, path)
		if err != nil {
			return Value{}, err
		}
		return BytesValue(raw), nil

	case FamilyString:
		raw, err := decodeDynamicBytes(body, path)
		if err != nil {
			return Value{}, err
		}
		if !validText(raw) {
			return Value{}, newErr(ErrInvalidUtf8, path, t.CanonicalString(), "")
		}
		return TextValue(string(raw)), nil

	default:
		if len(body) < WordSize {
			return Value{}, newErr(ErrTruncatedInput, path, t.CanonicalString(), "")
		}
		return decodeScalar(t, body[:WordSize], path)
	}
}

// decodeArrayBody decodes an array's own body (length word if the outer
// length is dynamic, followed by the element sequence) from body[0:].
func decodeArrayBody(t *Type, body []byte, path string) (Value, error) {
	n := t.OuterLength()
	rest := body
	if !t.HasLengthSuffix() {
		if len(body) < WordSize {
			return Value{}, newErr(ErrTruncatedInput, path, t.CanonicalString(), "")
		}
		length, err := decodeSize(body[:WordSize], path)
		if err != nil {
			return Value{}, err
		}
		n = length
		rest = body[WordSize:]

		// Every element takes at least its head share of rest, so a count
		// that cannot fit is rejected before allocating for it.
		elemSize := WordSize
		if !t.Elem().IsDynamic() {
			elemSize = t.Elem().ByteSize()
		}
		if elemSize > 0 && n > len(rest)/elemSize {
			return Value{}, newErr(ErrLengthOverflow, path, t.CanonicalString(), "declared element count exceeds remaining data")
		}
	}

	elemTypes := make([]*Type, n)
	elemPaths := make([]string, n)
	for i := range elemTypes {
		elemTypes[i] = t.Elem()
		elemPaths[i] = joinPath(path, elemPath(i))
	}
	items, err := decodeHeterogeneousFrom(elemTypes, rest, elemPaths)
	if err != nil {
		return Value{}, err
	}
	return ListValue(items), nil
}

func decodeTupleBody(t *Type, body []byte, path string) (Value, error) {
	comps := t.Components()
	types := make([]*Type, len(comps))
	paths := make([]string, len(comps))
	for i, c := range comps {
		types[i] = c.Type
		paths[i] = joinPath(path, componentPath(i, c.Name))
	}

	items, err := decodeHeterogeneousFrom(types, body, paths)
	if err != nil {
		return Value{}, err
	}

	rec := NewRecord()
	for i, c := range comps {
		key := c.Name
		if key == "" {
			key = paramKey(i)
		}
		rec.Set(key, items[i])
	}
	return RecordValue(rec), nil
}

// decodeHeterogeneousFrom decodes a sequence of items (tuple components,
// array elements, or top-level parameters) from head, the byte slice
// beginning at the sequence's own first slot. Static items are decoded
// directly at their offset; a dynamic item contributes exactly one
// pointer word, resolved relative to head itself, whose target is then
// handed to decodeBody. This is the sole place a pointer is ever read,
// mirroring encodeHeterogeneousInto as the sole place one is ever
// written. paths[i] is already the fully joined path for item i, built by
// the caller (Decode, decodeTupleBody, or decodeArrayBody).
func decodeHeterogeneousFrom(types []*Type, head []byte, paths []string) ([]Value, error) {
	out := make([]Value, len(types))
	offset := 0
	for i, t := range types {
		if t.IsDynamic() {
			if len(head) < offset+WordSize {
				return nil, newErr(ErrTruncatedInput, paths[i], t.CanonicalString(), "")
			}
			target, err := decodeOffset(head[offset:offset+WordSize], paths[i])
			if err != nil {
				return nil, err
			}
			if target < 0 || target > len(head) {
				return nil, newErr(ErrBadPointer, paths[i], t.CanonicalString(), "pointer resolves outside the buffer")
			}
			v, err := decodeBody(t, head[target:], paths[i])
			if err != nil {
				return nil, err
			}
			out[i] = v
			offset += WordSize
			continue
		}

		if len(head) < offset+t.ByteSize() {
			return nil, newErr(ErrTruncatedInput, paths[i], t.CanonicalString(), "")
		}
		v, err := decodeBody(t, head[offset:], paths[i])
		if err != nil {
			return nil, err
		}
		out[i] = v
		offset += t.ByteSize()
	}
	return out, nil
}
