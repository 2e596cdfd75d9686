package abi

import (
	"fmt"
	"strings"
)

// Family identifies a scalar ABI type's leaf kind.
type Family uint8

const (
	FamilyUint Family = iota
	FamilyInt
	FamilyAddress
	FamilyBool
	FamilyFixedBytes
	FamilyBytes
	FamilyString
)

func (f Family) String() string {
	switch f {
	case FamilyUint:
		return "uint"
	case FamilyInt:
		return "int"
	case FamilyAddress:
		return "address"
	case FamilyBool:
		return "bool"
	case FamilyFixedBytes:
		return "fixedBytes"
	case FamilyBytes:
		return "bytes"
	case FamilyString:
		return "string"
	default:
		return "unknown"
	}
}

// Kind discriminates the three shapes a Type can take: Scalar, Array
// (fixed or dynamic length) and Tuple.
type Kind uint8

const (
	KindScalar Kind = iota
	KindArray
	KindTuple
)

// DynamicLength is the outer_length sentinel for a dynamic-length array,
// i.e. the "[]" form as opposed to "[N]".
const DynamicLength = -1

// Type is the recursive, immutable representation of an ABI type:
// Scalar(family, bits_or_bytes) | Array(inner, length) | Tuple(components).
//
// Values are built only by ParseType (or the constructors below, which the
// parser itself uses) and are never mutated after construction; this
// makes a *Type safe to share by reference across goroutines.
type Type struct {
	kind Kind

	// Scalar fields.
	family Family
	// bits holds the bit width for uint/int (8..256); size holds the byte
	// width for fixedBytes (1..32). Unused for address/bool/bytes/string.
	bits int
	size int

	// Array fields.
	elem   *Type
	length int // DynamicLength, or a positive fixed length.

	// Tuple fields.
	components []TupleComponent
}

// TupleComponent is one named element of a Tuple type.
type TupleComponent struct {
	Name string
	Type *Type
}

func newScalar(family Family, bits, size int) *Type {
	return &Type{kind: KindScalar, family: family, bits: bits, size: size}
}

// UintType returns the canonical uint<bits> type. Prefer ParseType when bits
// comes from untrusted input; this constructor does not validate.
func UintType(bits int) *Type { return newScalar(FamilyUint, bits, 0) }

// IntType returns the canonical int<bits> type.
func IntType(bits int) *Type { return newScalar(FamilyInt, bits, 0) }

// AddressType returns the address type: storage-wise a uint160, but a
// distinct type in the grammar.
func AddressType() *Type { return newScalar(FamilyAddress, 160, 0) }

// BoolType returns the bool type.
func BoolType() *Type { return newScalar(FamilyBool, 0, 0) }

// FixedBytesType returns the bytes<n> type, 1<=n<=32.
func FixedBytesType(n int) *Type { return newScalar(FamilyFixedBytes, 0, n) }

// BytesType returns the dynamic bytes type.
func BytesType() *Type { return newScalar(FamilyBytes, 0, 0) }

// StringType returns the dynamic string type: identical wire layout to
// bytes; the byte count is the UTF-8 byte length, not the codepoint count.
func StringType() *Type { return newScalar(FamilyString, 0, 0) }

// ArrayType returns T[length], or T[] when length is DynamicLength.
func ArrayType(elem *Type, length int) *Type {
	return &Type{kind: KindArray, elem: elem, length: length}
}

// TupleType returns a tuple of the given ordered components.
func TupleType(components []TupleComponent) *Type {
	return &Type{kind: KindTuple, components: components}
}

func (t *Type) Kind() Kind      { return t.kind }
func (t *Type) IsArray() bool   { return t.kind == KindArray }
func (t *Type) IsTuple() bool   { return t.kind == KindTuple }
func (t *Type) IsScalar() bool  { return t.kind == KindScalar }

// Family returns the scalar family. Only meaningful when IsScalar().
func (t *Type) Family() Family { return t.family }

// Bits returns the integer bit width for uint/int types.
func (t *Type) Bits() int { return t.bits }

// FixedSize returns the byte width for a fixedBytes type (1..32).
func (t *Type) FixedSize() int { return t.size }

// Elem returns the inner type of an array. Only meaningful when IsArray().
func (t *Type) Elem() *Type { return t.elem }

// OuterLength returns the array's outer (rightmost-bracket) dimension, or
// DynamicLength for T[]. Only meaningful when IsArray().
func (t *Type) OuterLength() int { return t.length }

// HasLengthSuffix reports whether the array carries an explicit dimension.
func (t *Type) HasLengthSuffix() bool { return t.kind == KindArray && t.length != DynamicLength }

// Components returns the ordered (name, type) pairs of a tuple. Only
// meaningful when IsTuple().
func (t *Type) Components() []TupleComponent { return t.components }

// InnerType returns the type found after stripping exactly one array
// dimension; for a non-array type it returns t itself.
func (t *Type) InnerType() *Type {
	if t.kind == KindArray {
		return t.elem
	}
	return t
}

// BaseType returns the innermost non-array type: for nested arrays this
// descends through every dimension; for a tuple-array it returns the
// tuple; for a scalar it returns itself.
func (t *Type) BaseType() *Type {
	cur := t
	for cur.kind == KindArray {
		cur = cur.elem
	}
	return cur
}

// MultiLength returns the product of all dimensions if every dimension in
// this array's spine is fixed, or DynamicLength if any dimension (at any
// depth, down to the base type) is dynamic.
func (t *Type) MultiLength() int {
	if t.kind != KindArray {
		return 1
	}
	if t.length == DynamicLength {
		return DynamicLength
	}
	inner := t.elem.MultiLength()
	if inner == DynamicLength {
		return DynamicLength
	}
	return t.length * inner
}

// IsDynamic reports whether the type's encoded size depends on runtime
// data rather than being fixed by the type alone.
func (t *Type) IsDynamic() bool {
	switch t.kind {
	case KindScalar:
		return t.family == FamilyBytes || t.family == FamilyString
	case KindArray:
		return t.length == DynamicLength || t.elem.IsDynamic()
	case KindTuple:
		for _, c := range t.components {
			if c.Type.IsDynamic() {
				return true
			}
		}
		return false
	default:
		return false
	}
}

// BitSize returns the bit width relevant to the type: 160 for address, 8
// for bool, the declared width for uint/int, 8*N for fixedBytes<N>, and 0
// for dynamic/tuple/array types which have no single scalar width.
func (t *Type) BitSize() int {
	if t.kind != KindScalar {
		return 0
	}
	switch t.family {
	case FamilyUint, FamilyInt:
		return t.bits
	case FamilyAddress:
		return 160
	case FamilyBool:
		return 8
	case FamilyFixedBytes:
		return t.size * 8
	default:
		return 0
	}
}

// ByteSize returns the number of bytes this type occupies when static: 32
// for any static scalar, the sum of a tuple's static components, or
// length*elem-size for a static fixed array. Returns 0 for dynamic types
// (their slot contribution in a parent head is a single pointer word,
// accounted for separately by the Encoder).
func (t *Type) ByteSize() int {
	if t.IsDynamic() {
		return 0
	}
	switch t.kind {
	case KindScalar:
		return 32
	case KindArray:
		return t.length * t.elem.ByteSize()
	case KindTuple:
		total := 0
		for _, c := range t.components {
			total += c.Type.ByteSize()
		}
		return total
	default:
		return 0
	}
}

// StaticSlotCount is ByteSize in 32-byte words; valid only for static types.
func (t *Type) StaticSlotCount() int { return t.ByteSize() / 32 }

// CanonicalString renders the normalized textual form of the type: no
// parameter names, no whitespace, aliases expanded (byte -> bytes1,
// uint/int -> uint256/int256), tuples as "(t1,t2,...)", arrays with
// dimensions appended innermost-first, matching EVM convention.
func (t *Type) CanonicalString() string {
	var b strings.Builder
	t.writeCanonical(&b)
	return b.String()
}

func (t *Type) writeCanonical(b *strings.Builder) {
	switch t.kind {
	case KindScalar:
		switch t.family {
		case FamilyUint:
			fmt.Fprintf(b, "uint%d", t.bits)
		case FamilyInt:
			fmt.Fprintf(b, "int%d", t.bits)
		case FamilyAddress:
			b.WriteString("address")
		case FamilyBool:
			b.WriteString("bool")
		case FamilyFixedBytes:
			fmt.Fprintf(b, "bytes%d", t.size)
		case FamilyBytes:
			b.WriteString("bytes")
		case FamilyString:
			b.WriteString("string")
		}
	case KindArray:
		t.elem.writeCanonical(b)
		if t.length == DynamicLength {
			b.WriteString("[]")
		} else {
			fmt.Fprintf(b, "[%d]", t.length)
		}
	case KindTuple:
		b.WriteByte('(')
		for i, c := range t.components {
			if i > 0 {
				b.WriteByte(',')
			}
			c.Type.writeCanonical(b)
		}
		b.WriteByte(')')
	}
}

func (t *Type) String() string { return t.CanonicalString() }

// validIntBits reports whether bits is a legal uint/int width: 8..256 in
// steps of 8.
func validIntBits(bits int) bool {
	return bits >= 8 && bits <= 256 && bits%8 == 0
}

// validFixedBytesSize reports whether n is a legal bytesN size: 1..32.
func validFixedBytesSize(n int) bool {
	return n >= 1 && n <= 32
}
