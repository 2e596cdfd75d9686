package abi

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDecodeRoundTripScalars(t *testing.T) {
	params, err := ParseParameters("(uint256,bool,address)")
	require.NoError(t, err)

	addr := [20]byte{1, 2, 3, 4, 5}
	values := NewRecord().
		Set("0", UintValue(256, big.NewInt(9001))).
		Set("1", BoolValue(true)).
		Set("2", AddressValue(addr))

	encoded, err := Encode(params, values)
	require.NoError(t, err)

	decoded, err := Decode(params, encoded)
	require.NoError(t, err)

	v0, _ := decoded.Get("0")
	require.Equal(t, big.NewInt(9001), v0.BigInt())
	v1, _ := decoded.Get("1")
	require.True(t, v1.Bool())
	v2, _ := decoded.Get("2")
	require.Equal(t, addr, v2.Address())
}

func TestDecodeRoundTripDynamic(t *testing.T) {
	params, err := ParseParameters("(string,bytes[])")
	require.NoError(t, err)

	values := NewRecord().
		Set("0", TextValue("hello world")).
		Set("1", ListValue([]Value{BytesValue([]byte{1, 2}), BytesValue([]byte{3})}))

	encoded, err := Encode(params, values)
	require.NoError(t, err)

	decoded, err := Decode(params, encoded)
	require.NoError(t, err)

	v0, _ := decoded.Get("0")
	require.Equal(t, "hello world", v0.Text())
	v1, _ := decoded.Get("1")
	require.Len(t, v1.List(), 2)
	require.Equal(t, []byte{1, 2}, v1.List()[0].Bytes())
}

func TestDecodeBadPointer(t *testing.T) {
	params, err := ParseParameters("(string)")
	require.NoError(t, err)

	// A single head word whose "pointer" value points far past the buffer.
	data := make([]byte, 32)
	big.NewInt(1024).FillBytes(data)

	_, err = Decode(params, data)
	require.ErrorIs(t, err, ErrBadPointer)
}

func TestDecodeTruncatedInput(t *testing.T) {
	params, err := ParseParameters("(uint256,uint256)")
	require.NoError(t, err)

	data := make([]byte, 32) // only one of two static words present
	_, err = Decode(params, data)
	require.ErrorIs(t, err, ErrTruncatedInput)
}

func TestEncodeNestedFailurePathAccumulates(t *testing.T) {
	params, err := ParseParameters("(uint8[2])")
	require.NoError(t, err)

	values := NewRecord().Set("0", ListValue([]Value{
		UintValue(8, big.NewInt(1)),
		UintValue(8, big.NewInt(999)), // out of range for uint8
	}))

	_, err = Encode(params, values)
	require.ErrorIs(t, err, ErrValueOutOfRange)

	abiErr, ok := err.(*Error)
	require.True(t, ok)
	require.Equal(t, "param-0.elem-1", abiErr.Path)
}

func TestDecodeNestedFailurePathAccumulates(t *testing.T) {
	inner, err := ParseType("(uint256,string)")
	require.NoError(t, err)
	outer := TupleType([]TupleComponent{
		{Name: "pair", Type: inner},
	})

	// One head word (the pointer to "pair"'s tail) that resolves past the
	// end of the buffer.
	data := make([]byte, 32)
	big.NewInt(1024).FillBytes(data)

	_, err = DecodeValue(outer, data)
	require.ErrorIs(t, err, ErrBadPointer)

	abiErr, ok := err.(*Error)
	require.True(t, ok)
	require.Equal(t, "component-0(pair)", abiErr.Path)
}

func TestDecodeNestedTupleRoundTrip(t *testing.T) {
	innerType, err := ParseType("(uint256,string)")
	require.NoError(t, err)
	outer := TupleType([]TupleComponent{
		{Name: "pair", Type: innerType},
		{Name: "flag", Type: BoolType()},
	})

	inner := NewRecord().Set("0", UintValue(256, big.NewInt(3))).Set("1", TextValue("x"))
	outerVal := NewRecord().Set("pair", RecordValue(inner)).Set("flag", BoolValue(false))

	encoded, err := EncodeValues(outer, RecordValue(outerVal))
	require.NoError(t, err)

	decoded, err := DecodeValue(outer, encoded)
	require.NoError(t, err)

	pair, ok := decoded.Record().Get("pair")
	require.True(t, ok)
	field0, ok := pair.Record().Get("0")
	require.True(t, ok)
	require.Equal(t, big.NewInt(3), field0.BigInt())
}
