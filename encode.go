package abi

// Encode lays out values against params in standard ABI encoding and
// returns the flat byte buffer (spec.md §4.4). It is the mirror image of
// Decode, and shares its recursive head/tail structure with the teacher's
// generator/encoders.go layout logic, generalized here to run once at
// runtime over a Type tree instead of being emitted per-type at
// generation time.
//
// Encode builds the traversal path for each top-level parameter itself
// ("param-<i>(<name>)") rather than delegating through EncodeValues, since
// EncodeValues has no notion of "parameter" -- only of a bare Type tree --
// and any failure several levels into a nested tuple/array argument should
// still read back to the offending parameter.
func Encode(params Parameters, values *NamedValues) ([]byte, error) {
	if values.Len() != len(params) {
		return nil, newErr(ErrArityMismatch, "", "", "value count does not match parameter count")
	}
	names := values.Names()
	types := make([]*Type, len(params))
	items := make([]Value, len(params))
	paths := make([]string, len(params))
	for i, p := range params {
		key := p.Name
		if key == "" {
			key = paramKey(i)
		}
		val, ok := values.Get(key)
		if !ok || names[i] != key {
			return nil, newErr(ErrNameMismatch, paramPath(i, p.Name), "", "value name does not match parameter name")
		}
		types[i] = p.Type
		items[i] = val
		paths[i] = paramPath(i, p.Name)
	}

	buf := NewSlotBuffer()
	if err := encodeHeterogeneousInto(types, items, paths, buf); err != nil {
		return nil, err
	}
	return buf.Finalize()
}

// EncodeValues encodes a single Value against a single Type, for callers
// that already hold a bare Type rather than a Parameters list. The value
// is written as t's own body with no leading pointer slot; recursion into
// array/tuple elements goes through encodeInto, not through this function.
func EncodeValues(t *Type, v Value) ([]byte, error) {
	buf := NewSlotBuffer()
	if err := encodeInto(t, v, buf, ""); err != nil {
		return nil, err
	}
	return buf.Finalize()
}

// encodeInto appends t's encoding of v to buf, always positioned at t's
// own first slot directly (the same "no self-pointer" convention used at
// the top level and, recursively, inside every dynamic item's own tail
// buffer): static data is written in place, and any dynamic sub-items are
// handled by encodeHeterogeneousInto, the sole place a pointer slot is
// ever introduced. path is this value's position in the overall tree,
// already resolved by the caller, and is attached verbatim to any error
// raised here or below.
func encodeInto(t *Type, v Value, buf *SlotBuffer, path string) error {
	switch t.Kind() {
	case KindScalar:
		return encodeScalarInto(t, v, buf, path)

	case KindArray:
		return encodeArrayInto(t, v, buf, path)

	case KindTuple:
		return encodeTupleInto(t, v, buf, path)

	default:
		return newErr(ErrInternalLayout, path, t.CanonicalString(), "unknown type kind")
	}
}

func encodeScalarInto(t *Type, v Value, buf *SlotBuffer, path string) error {
	switch t.Family() {
	case FamilyBytes:
		if v.Kind() != ValueBytes {
			return newErr(ErrTypeIncompatible, path, t.CanonicalString(), "expected bytes value")
		}
		encodeDynamicBytes(v.Bytes(), buf)
		return nil

	case FamilyString:
		if v.Kind() != ValueText {
			return newErr(ErrTypeIncompatible, path, t.CanonicalString(), "expected string value")
		}
		encodeDynamicBytes([]byte(v.Text()), buf)
		return nil

	default:
		word, err := encodeScalar(t, v, path)
		if err != nil {
			return err
		}
		buf.AppendRaw(word)
		return nil
	}
}

// encodeArrayInto encodes a fixed- or dynamic-length array value. If t
// itself is dynamic (either the outer length is dynamic, or a fixed-size
// array of dynamic elements), the caller is responsible for the pointer
// slot that references this function's output; encodeArrayInto always
// writes the array's own body (length word when applicable, then the
// head/tail of its elements) starting at buf's current end.
func encodeArrayInto(t *Type, v Value, buf *SlotBuffer, path string) error {
	if v.Kind() != ValueList {
		return newErr(ErrTypeIncompatible, path, t.CanonicalString(), "expected list value")
	}
	items := v.List()

	if t.HasLengthSuffix() {
		if t.OuterLength() != len(items) {
			return newErr(ErrArityMismatch, path, t.CanonicalString(), "fixed array length mismatch")
		}
	} else {
		buf.AppendUint(uint64(len(items)))
	}

	return encodeSequenceInto(t.Elem(), items, buf, path)
}

func encodeTupleInto(t *Type, v Value, buf *SlotBuffer, path string) error {
	if v.Kind() != ValueRecord {
		return newErr(ErrTypeIncompatible, path, t.CanonicalString(), "expected record value")
	}
	rec := v.Record()
	comps := t.Components()

	types := make([]*Type, len(comps))
	items := make([]Value, len(comps))
	paths := make([]string, len(comps))
	for i, c := range comps {
		val, ok := rec.Get(c.Name)
		if !ok {
			val, ok = rec.Get(paramKey(i))
		}
		if !ok {
			return newErr(ErrNameMismatch, joinPath(path, componentPath(i, c.Name)), t.CanonicalString(), "missing tuple field")
		}
		types[i] = c.Type
		items[i] = val
		paths[i] = joinPath(path, componentPath(i, c.Name))
	}
	return encodeHeterogeneousInto(types, items, paths, buf)
}

// encodeSequenceInto encodes a run of same-typed elements (array
// elements): head slots for each element (all of its static slots if
// static, one pointer slot if dynamic), followed by the dynamic tail
// bodies in order.
func encodeSequenceInto(elem *Type, items []Value, buf *SlotBuffer, path string) error {
	types := make([]*Type, len(items))
	paths := make([]string, len(items))
	for i := range items {
		types[i] = elem
		paths[i] = joinPath(path, elemPath(i))
	}
	return encodeHeterogeneousInto(types, items, paths, buf)
}

// encodeHeterogeneousInto is the shared head/tail writer for both tuples
// (heterogeneous component types) and arrays (homogeneous, reusing the
// same type for every item). A static item may itself span several head
// slots (a static nested array or tuple), so its content is resolved into
// a standalone buffer first and spliced in directly; a dynamic item
// contributes exactly one placeholder pointer slot to the head, patched
// once its body has been appended to the tail region that follows all
// head slots. This mirrors the two-phase "dynamicOffset" bookkeeping in
// the teacher's generator/encoders.go, generalized from per-type codegen
// to a single runtime walk. paths[i] is already the fully joined path for
// item i, built by the caller (Encode, encodeTupleInto, or
// encodeSequenceInto); this function never wraps an inner error further,
// since the leaf that raised it already attached the correct path.
func encodeHeterogeneousInto(types []*Type, items []Value, paths []string, buf *SlotBuffer) error {
	headBase := buf.Len()
	pointerSlots := make([]int, len(items))
	for i := range pointerSlots {
		pointerSlots[i] = -1
	}

	for i, t := range types {
		if t.IsDynamic() {
			pointerSlots[i] = buf.AppendPointer(0, headBase)
			continue
		}
		static := NewSlotBuffer()
		if err := encodeInto(t, items[i], static, paths[i]); err != nil {
			return err
		}
		buf.Extend(static)
	}

	for i, t := range types {
		if pointerSlots[i] < 0 {
			continue
		}
		tail := NewSlotBuffer()
		if err := encodeInto(t, items[i], tail, paths[i]); err != nil {
			return err
		}
		target := buf.Extend(tail)
		buf.slots[pointerSlots[i]].target = target
	}
	return nil
}
