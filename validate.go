package abi

import "math/big"

// Validate checks values against params the same way Encode would, without
// producing any output: the value count must equal the parameter count,
// each parameter's value must sit under its name at its position, and every
// value must be IsCompatible with its declared type. It reports the first
// mismatch found, in parameter order.
func Validate(params Parameters, values *NamedValues) error {
	if values.Len() != len(params) {
		return newErr(ErrArityMismatch, "", "", "value count does not match parameter count")
	}
	names := values.Names()
	for i, p := range params {
		key := p.Name
		if key == "" {
			key = paramKey(i)
		}
		val, ok := values.Get(key)
		if !ok || names[i] != key {
			return newErr(ErrNameMismatch, paramPath(i, p.Name), "", "value name does not match parameter name")
		}
		if !IsCompatible(p.Type, val) {
			return newErr(ErrTypeIncompatible, paramPath(i, p.Name), p.Type.CanonicalString(), "value incompatible with declared type")
		}
	}
	return nil
}

// IsCompatible reports whether v could be encoded as t: a pure predicate
// with no side effects, used by callers that want to check a value before
// attempting Encode (spec.md §4.6), and by Validate. Encode does not call
// it; it makes its own checks while encoding.
func IsCompatible(t *Type, v Value) bool {
	switch t.Kind() {
	case KindScalar:
		return scalarCompatible(t, v)
	case KindArray:
		return arrayCompatible(t, v)
	case KindTuple:
		return tupleCompatible(t, v)
	default:
		return false
	}
}

func scalarCompatible(t *Type, v Value) bool {
	switch t.Family() {
	case FamilyUint:
		if v.Kind() != ValueUint && v.Kind() != ValueInt {
			return false
		}
		return checkUintRange(v.BigInt(), t.Bits(), "") == nil
	case FamilyInt:
		if v.Kind() != ValueInt && v.Kind() != ValueUint {
			return false
		}
		return checkIntRange(v.BigInt(), t.Bits(), "") == nil
	case FamilyAddress:
		return v.Kind() == ValueAddress
	case FamilyBool:
		return v.Kind() == ValueBool
	case FamilyFixedBytes:
		return v.Kind() == ValueFixedBytes && len(v.FixedBytes()) == t.FixedSize()
	case FamilyBytes:
		return v.Kind() == ValueBytes
	case FamilyString:
		return v.Kind() == ValueText
	default:
		return false
	}
}

func arrayCompatible(t *Type, v Value) bool {
	if v.Kind() != ValueList {
		return false
	}
	items := v.List()
	if t.HasLengthSuffix() && t.OuterLength() != len(items) {
		return false
	}
	for _, item := range items {
		if !IsCompatible(t.Elem(), item) {
			return false
		}
	}
	return true
}

func tupleCompatible(t *Type, v Value) bool {
	if v.Kind() != ValueRecord {
		return false
	}
	rec := v.Record()
	comps := t.Components()
	for i, c := range comps {
		val, ok := rec.Get(c.Name)
		if !ok {
			val, ok = rec.Get(paramKey(i))
		}
		if !ok || !IsCompatible(c.Type, val) {
			return false
		}
	}
	return true
}

// FitsUint reports whether n fits in an unsigned integer of the given bit
// width, the predicate half of checkUintRange exposed for callers that
// want to validate a raw *big.Int before constructing a Value.
func FitsUint(n *big.Int, bits int) bool { return checkUintRange(n, bits, "") == nil }

// FitsInt reports whether n fits in a signed integer of the given bit
// width (two's complement range).
func FitsInt(n *big.Int, bits int) bool { return checkIntRange(n, bits, "") == nil }
