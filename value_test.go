package abi

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValueAccessors(t *testing.T) {
	u := UintValue(256, big.NewInt(42))
	require.Equal(t, ValueUint, u.Kind())
	require.Equal(t, big.NewInt(42), u.BigInt())

	b := BoolValue(true)
	require.Equal(t, ValueBool, b.Kind())
	require.True(t, b.Bool())

	addr := AddressValue([20]byte{1, 2, 3})
	require.Equal(t, ValueAddress, addr.Kind())
	require.Equal(t, [20]byte{1, 2, 3}, addr.Address())

	list := ListValue([]Value{u, b})
	require.Equal(t, ValueList, list.Kind())
	require.Len(t, list.List(), 2)
}

func TestValueAccessorPanicsOnWrongKind(t *testing.T) {
	v := BoolValue(true)
	require.Panics(t, func() { v.BigInt() })
}

func TestRecordInsertionOrder(t *testing.T) {
	r := NewRecord().Set("b", BoolValue(true)).Set("a", BoolValue(false))
	require.Equal(t, []string{"b", "a"}, r.Names())

	r.Set("b", BoolValue(false))
	require.Equal(t, []string{"b", "a"}, r.Names())
	got, ok := r.Get("b")
	require.True(t, ok)
	require.False(t, got.Bool())
}

func TestNewNamedValuesPositionalKeys(t *testing.T) {
	params, err := ParseParameters("(uint256,address)")
	require.NoError(t, err)

	values, err := NewNamedValues(params, []Value{
		UintValue(256, big.NewInt(1)),
		AddressValue([20]byte{9}),
	})
	require.NoError(t, err)

	v, ok := values.Get("0")
	require.True(t, ok)
	require.Equal(t, big.NewInt(1), v.BigInt())
}

func TestNewNamedValuesArityMismatch(t *testing.T) {
	params, err := ParseParameters("(uint256,address)")
	require.NoError(t, err)

	_, err = NewNamedValues(params, []Value{UintValue(256, big.NewInt(1))})
	require.ErrorIs(t, err, ErrArityMismatch)
}
