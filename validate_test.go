package abi

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidateAcceptsMatchingValues(t *testing.T) {
	params, err := ParseParameters("(uint8,bool)")
	require.NoError(t, err)

	values := NewRecord().Set("0", UintValue(8, big.NewInt(10))).Set("1", BoolValue(true))
	require.NoError(t, Validate(params, values))
}

func TestValidateRejectsOutOfRangeValue(t *testing.T) {
	params, err := ParseParameters("(uint8)")
	require.NoError(t, err)

	values := NewRecord().Set("0", UintValue(8, big.NewInt(1000)))
	err = Validate(params, values)
	require.ErrorIs(t, err, ErrTypeIncompatible)
}

func TestValidateRejectsMissingValue(t *testing.T) {
	params, err := ParseParameters("(uint8,bool)")
	require.NoError(t, err)

	values := NewRecord().Set("0", UintValue(8, big.NewInt(1)))
	err = Validate(params, values)
	require.ErrorIs(t, err, ErrArityMismatch)
}

func TestIsCompatibleNestedArray(t *testing.T) {
	arr, err := ParseType("uint16[2]")
	require.NoError(t, err)

	ok := IsCompatible(arr, ListValue([]Value{UintValue(16, big.NewInt(1)), UintValue(16, big.NewInt(2))}))
	require.True(t, ok)

	bad := IsCompatible(arr, ListValue([]Value{UintValue(16, big.NewInt(1))}))
	require.False(t, bad)
}
