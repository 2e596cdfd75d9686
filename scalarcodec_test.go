package abi

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeScalarRoundTrip(t *testing.T) {
	cases := []struct {
		typ *Type
		val Value
	}{
		{UintType(8), UintValue(8, big.NewInt(255))},
		{UintType(256), UintValue(256, MaxUint256)},
		{IntType(8), IntValue(8, big.NewInt(-128))},
		{IntType(256), IntValue(256, big.NewInt(-1))},
		{BoolType(), BoolValue(true)},
		{AddressType(), AddressValue([20]byte{0xde, 0xad, 0xbe, 0xef})},
		{FixedBytesType(4), FixedBytesValue([]byte{1, 2, 3, 4})},
	}
	for _, c := range cases {
		word, err := encodeScalar(c.typ, c.val, "")
		require.NoError(t, err, c.typ.CanonicalString())

		got, err := decodeScalar(c.typ, word[:], "")
		require.NoError(t, err, c.typ.CanonicalString())
		require.Equal(t, c.val.Kind(), got.Kind())
	}
}

func TestUint8Overflow(t *testing.T) {
	_, err := encodeScalar(UintType(8), UintValue(8, big.NewInt(256)), "")
	require.ErrorIs(t, err, ErrValueOutOfRange)
}

func TestInt8RangeBoundaries(t *testing.T) {
	_, err := encodeScalar(IntType(8), IntValue(8, big.NewInt(-129)), "")
	require.ErrorIs(t, err, ErrValueOutOfRange)

	word, err := encodeScalar(IntType(8), IntValue(8, big.NewInt(-128)), "")
	require.NoError(t, err)
	got, err := decodeScalar(IntType(8), word[:], "")
	require.NoError(t, err)
	require.Equal(t, big.NewInt(-128), got.BigInt())
}

func TestFixedBytes32ShortValueRejected(t *testing.T) {
	_, err := encodeScalar(FixedBytesType(32), FixedBytesValue(make([]byte, 31)), "")
	require.ErrorIs(t, err, ErrValueOutOfRange)
}

func TestDecodeDynamicBytesLengthOverflow(t *testing.T) {
	var lengthWord [32]byte
	big.NewInt(1 << 32).FillBytes(lengthWord[:])
	_, err := decodeDynamicBytes(lengthWord[:], "")
	require.Error(t, err)
}

func TestDecodeScalarDirtyAddressPadding(t *testing.T) {
	var word [32]byte
	word[0] = 1 // dirty byte in the zero-padding region
	_, err := decodeScalar(AddressType(), word[:], "")
	require.ErrorIs(t, err, ErrValueOutOfRange)
}

func TestDecodeHeterogeneousPointerOffsetVsLength(t *testing.T) {
	// A pointer word far beyond any representable length must surface as
	// ErrBadPointer (an offset claim), not ErrLengthOverflow (a length
	// claim), even though both currently share the same representable
	// range check.
	var word [32]byte
	big.NewInt(1 << 40).FillBytes(word[:])
	_, err := decodeOffset(word[:], "")
	require.ErrorIs(t, err, ErrBadPointer)

	_, err = decodeSize(word[:], "")
	require.ErrorIs(t, err, ErrLengthOverflow)
}
