package abi

import (
	"math/big"
	"strconv"
	"unicode/utf8"
)

// encodeScalar encodes a single static scalar Value into its one 32-byte
// slot. bytes/string are not handled here (they return ErrInternalLayout);
// their (length-slot, data-slots...) tail body is written by
// encodeDynamicBytes, and the pointer to it by the enclosing sequence.
// path identifies this scalar's position in the value tree for any error
// raised while encoding it.
func encodeScalar(t *Type, v Value, path string) ([32]byte, error) {
	var out [32]byte

	switch t.Family() {
	case FamilyUint:
		n, err := scalarUint(v, path)
		if err != nil {
			return out, err
		}
		if n.Sign() < 0 {
			return out, newErr(ErrValueOutOfRange, path, t.CanonicalString(), "negative value for unsigned type")
		}
		if err := checkUintRange(n, t.Bits(), path); err != nil {
			return out, err
		}
		if err := encodeBigInt(n, out[:], false); err != nil {
			return out, newErr(ErrValueOutOfRange, path, t.CanonicalString(), err.Error())
		}
		return out, nil

	case FamilyInt:
		n, err := scalarInt(v, path)
		if err != nil {
			return out, err
		}
		if err := checkIntRange(n, t.Bits(), path); err != nil {
			return out, err
		}
		if err := encodeBigInt(n, out[:], true); err != nil {
			return out, newErr(ErrValueOutOfRange, path, t.CanonicalString(), err.Error())
		}
		return out, nil

	case FamilyAddress:
		if v.Kind() != ValueAddress {
			return out, newErr(ErrTypeIncompatible, path, t.CanonicalString(), "expected an address value")
		}
		addr := v.Address()
		copy(out[12:], addr[:])
		return out, nil

	case FamilyBool:
		if v.Kind() != ValueBool {
			return out, newErr(ErrTypeIncompatible, path, t.CanonicalString(), "expected a bool value")
		}
		if v.Bool() {
			out[31] = 1
		}
		return out, nil

	case FamilyFixedBytes:
		if v.Kind() != ValueFixedBytes {
			return out, newErr(ErrTypeIncompatible, path, t.CanonicalString(), "expected fixed-bytes value")
		}
		b := v.FixedBytes()
		if len(b) != t.FixedSize() {
			return out, newErr(ErrValueOutOfRange, path, t.CanonicalString(), "wrong fixed-bytes length")
		}
		copy(out[:], b) // right-padded: data occupies the low indices
		return out, nil

	default:
		return out, newErr(ErrInternalLayout, path, t.CanonicalString(), "encodeScalar called on a non-scalar-slot type")
	}
}

// decodeScalar is the mirror of encodeScalar: it interprets one 32-byte
// slot as a value of a static scalar type.
func decodeScalar(t *Type, data []byte, path string) (Value, error) {
	if len(data) < WordSize {
		return Value{}, newErr(ErrTruncatedInput, path, t.CanonicalString(), "")
	}
	word := data[:WordSize]

	switch t.Family() {
	case FamilyUint:
		if t.Bits() <= 64 {
			n, err := decodeSmallUint(word, t.Bits())
			if err != nil {
				return Value{}, wrapRange(err, t, path)
			}
			return UintValue(t.Bits(), new(big.Int).SetUint64(n)), nil
		}
		n, err := decodeBigInt(word, false)
		if err != nil {
			return Value{}, wrapRange(err, t, path)
		}
		if err := checkUintRange(n, t.Bits(), path); err != nil {
			return Value{}, err
		}
		return UintValue(t.Bits(), n), nil

	case FamilyInt:
		if t.Bits() <= 64 {
			n, err := decodeSmallInt(word, t.Bits())
			if err != nil {
				return Value{}, wrapRange(err, t, path)
			}
			return IntValue(t.Bits(), big.NewInt(n)), nil
		}
		n, err := decodeBigInt(word, true)
		if err != nil {
			return Value{}, wrapRange(err, t, path)
		}
		if err := checkIntRange(n, t.Bits(), path); err != nil {
			return Value{}, err
		}
		return IntValue(t.Bits(), n), nil

	case FamilyAddress:
		var addr [20]byte
		copy(addr[:], word[12:32])
		// upper 12 bytes must be clean per EVM encoding
		for _, b := range word[:12] {
			if b != 0 {
				return Value{}, newErr(ErrValueOutOfRange, path, t.CanonicalString(), "dirty padding in address word")
			}
		}
		return AddressValue(addr), nil

	case FamilyBool:
		for _, b := range word[:31] {
			if b != 0 {
				return Value{}, newErr(ErrValueOutOfRange, path, t.CanonicalString(), "dirty padding in bool word")
			}
		}
		switch word[31] {
		case 0:
			return BoolValue(false), nil
		case 1:
			return BoolValue(true), nil
		default:
			return Value{}, newErr(ErrValueOutOfRange, path, t.CanonicalString(), "bool word not 0 or 1")
		}

	case FamilyFixedBytes:
		n := t.FixedSize()
		b := make([]byte, n)
		copy(b, word[:n])
		for _, pad := range word[n:] {
			if pad != 0 {
				return Value{}, newErr(ErrValueOutOfRange, path, t.CanonicalString(), "dirty padding in fixed-bytes word")
			}
		}
		return FixedBytesValue(b), nil

	default:
		return Value{}, newErr(ErrInternalLayout, path, t.CanonicalString(), "decodeScalar called on a non-scalar-slot type")
	}
}

// encodeDynamicBytes encodes the tail body (length slot + padded data
// slots) for a bytes/string value into buf, per spec.md §4.2.
func encodeDynamicBytes(data []byte, buf *SlotBuffer) {
	buf.AppendUint(uint64(len(data)))
	padded := Pad32(len(data))
	for off := 0; off < padded; off += WordSize {
		var word [32]byte
		end := off + WordSize
		if end > len(data) {
			end = len(data)
		}
		if off < len(data) {
			copy(word[:], data[off:end])
		}
		buf.AppendRaw(word)
	}
}

// decodeDynamicBytes reads a (length, data...) body starting at data[0:],
// bounds-checking the declared length against the remaining buffer.
func decodeDynamicBytes(data []byte, path string) ([]byte, error) {
	if len(data) < WordSize {
		return nil, newErr(ErrTruncatedInput, path, "", "missing length word")
	}
	length, err := decodeSize(data[:WordSize], path)
	if err != nil {
		return nil, err
	}
	padded := Pad32(length)
	if len(data) < WordSize+padded {
		return nil, newErr(ErrLengthOverflow, path, "", "declared length exceeds remaining data")
	}
	out := make([]byte, length)
	copy(out, data[WordSize:WordSize+length])
	return out, nil
}

// decodeSize reads a length/count word (a bytes/string/array length) as a
// non-negative int, rejecting values that could never be satisfied by real
// memory (and could otherwise be used to force a huge allocation attempt).
func decodeSize(word []byte, path string) (int, error) {
	var n big.Int
	n.SetBytes(word)
	if !n.IsInt64() || n.Int64() < 0 || n.Int64() > (1<<32) {
		return 0, newErr(ErrLengthOverflow, path, "", "length field out of representable range")
	}
	return int(n.Int64()), nil
}

// decodeOffset reads a pointer word (a head-slot reference to a dynamic
// item's tail) as a non-negative int. Unlike decodeSize, an out-of-range
// value here is reported as ErrBadPointer rather than ErrLengthOverflow:
// the word is being read as an offset, not as a declared length, and the
// two failure modes should stay distinguishable to a caller matching on
// error kind.
func decodeOffset(word []byte, path string) (int, error) {
	var n big.Int
	n.SetBytes(word)
	if !n.IsInt64() || n.Int64() < 0 || n.Int64() > (1<<32) {
		return 0, newErr(ErrBadPointer, path, "", "pointer offset out of representable range")
	}
	return int(n.Int64()), nil
}

func scalarUint(v Value, path string) (*big.Int, error) {
	if v.Kind() != ValueUint && v.Kind() != ValueInt {
		return nil, newErr(ErrTypeIncompatible, path, "", "expected an integer value")
	}
	return v.BigInt(), nil
}

func scalarInt(v Value, path string) (*big.Int, error) {
	if v.Kind() != ValueInt && v.Kind() != ValueUint {
		return nil, newErr(ErrTypeIncompatible, path, "", "expected an integer value")
	}
	return v.BigInt(), nil
}

func checkUintRange(n *big.Int, bits int, path string) error {
	if n.Sign() < 0 {
		return newErr(ErrValueOutOfRange, path, "", "negative value for unsigned type")
	}
	limit := new(big.Int).Lsh(big.NewInt(1), uint(bits))
	if n.Cmp(limit) >= 0 {
		return newErr(ErrValueOutOfRange, path, "", "value exceeds uint"+itoaBits(bits))
	}
	return nil
}

func checkIntRange(n *big.Int, bits int, path string) error {
	limit := new(big.Int).Lsh(big.NewInt(1), uint(bits-1))
	max := new(big.Int).Sub(limit, big.NewInt(1))
	min := new(big.Int).Neg(limit)
	if n.Cmp(max) > 0 || n.Cmp(min) < 0 {
		return newErr(ErrValueOutOfRange, path, "", "value out of range for int"+itoaBits(bits))
	}
	return nil
}

func wrapRange(err error, t *Type, path string) error {
	if abiErr, ok := err.(*Error); ok {
		abiErr.Type = t.CanonicalString()
		if abiErr.Path == "" {
			abiErr.Path = path
		}
		return abiErr
	}
	return newErr(err, path, t.CanonicalString(), "")
}

func itoaBits(bits int) string {
	return strconv.Itoa(bits)
}

// validText reports whether b is valid UTF-8; every decoded string value
// is checked with it.
func validText(b []byte) bool { return utf8.Valid(b) }
