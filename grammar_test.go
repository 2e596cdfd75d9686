package abi

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseTypeScalars(t *testing.T) {
	cases := map[string]string{
		"uint256":  "uint256",
		"uint":     "uint256",
		"int":      "int256",
		"byte":     "bytes1",
		"uint8":    "uint8",
		"bytes32":  "bytes32",
		"bytes":    "bytes",
		"string":   "string",
		"address":  "address",
		"bool":     "bool",
		"uint24":   "uint24",
		"bytes[]":  "bytes[]",
		"uint8[3]": "uint8[3]",
	}
	for input, want := range cases {
		typ, err := ParseType(input)
		require.NoError(t, err, input)
		require.Equal(t, want, typ.CanonicalString(), input)
	}
}

func TestParseTypeInvalid(t *testing.T) {
	for _, input := range []string{"uint7", "uint260", "bytes33", "bytes0", "foo", "uint256["} {
		_, err := ParseType(input)
		require.Error(t, err, input)
	}
}

func TestParseTypeArrayDimensionOrder(t *testing.T) {
	// uint8[2][3] is an array of 3 elements, each uint8[2] -- the
	// leftmost bracket group is the innermost dimension.
	typ, err := ParseType("uint8[2][3]")
	require.NoError(t, err)
	require.True(t, typ.IsArray())
	require.Equal(t, 3, typ.OuterLength())
	require.True(t, typ.Elem().IsArray())
	require.Equal(t, 2, typ.Elem().OuterLength())
	require.Equal(t, "uint8", typ.Elem().Elem().CanonicalString())
}

func TestParseTypeTuple(t *testing.T) {
	typ, err := ParseType("(uint256,string)[]")
	require.NoError(t, err)
	require.True(t, typ.IsArray())
	require.True(t, typ.Elem().IsTuple())
	require.Len(t, typ.Elem().Components(), 2)
	require.Equal(t, "(uint256,string)[]", typ.CanonicalString())
}

func TestCanonicalize(t *testing.T) {
	got, err := Canonicalize("(uint,int,byte)")
	require.NoError(t, err)
	require.Equal(t, "(uint256,int256,bytes1)", got)
}

func TestParseParameters(t *testing.T) {
	params, err := ParseParameters("(address to, uint256 amount)")
	require.NoError(t, err)
	require.Len(t, params, 2)
	require.Equal(t, "to", params[0].Name)
	require.Equal(t, "address", params[0].Type.CanonicalString())
	require.Equal(t, "amount", params[1].Name)
	require.Equal(t, "uint256", params[1].Type.CanonicalString())
	require.Equal(t, "(address,uint256)", params.CanonicalType())
}

func TestParseSignature(t *testing.T) {
	name, params, err := ParseSignature("function transfer(address to, uint256 amount)")
	require.NoError(t, err)
	require.Equal(t, "transfer", name)
	require.Equal(t, "(address,uint256)", params.CanonicalType())

	name, params, err = ParseSignature("transfer(address,uint256)")
	require.NoError(t, err)
	require.Equal(t, "transfer", name)
	require.Equal(t, "(address,uint256)", params.CanonicalType())

	name, params, err = ParseSignature("event Transfer(address indexed from, address indexed to, uint256 value)")
	require.NoError(t, err)
	require.Equal(t, "Transfer", name)
	require.True(t, params[0].Indexed)
	require.False(t, params[2].Indexed)
}
