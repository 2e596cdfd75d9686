package abi

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSlotBufferFinalizeFlatWords(t *testing.T) {
	buf := NewSlotBuffer()
	buf.AppendUint(1)
	buf.AppendUint(2)

	out, err := buf.Finalize()
	require.NoError(t, err)
	require.Len(t, out, 64)
	require.Equal(t,
		"0000000000000000000000000000000000000000000000000000000000000001"+
			"0000000000000000000000000000000000000000000000000000000000000002",
		hex.EncodeToString(out))
}

func TestSlotBufferPointerResolution(t *testing.T) {
	buf := NewSlotBuffer()
	headBase := buf.Len()
	ptr := buf.AppendPointer(0, headBase)

	tail := NewSlotBuffer()
	tail.AppendUint(0xabc)
	target := buf.Extend(tail)
	buf.slots[ptr].target = target

	out, err := buf.Finalize()
	require.NoError(t, err)
	require.Len(t, out, 64)
	// the pointer word should read 32 (one word) since the tail landed
	// immediately after the single head slot.
	require.Equal(t, uint64(32), bigEndianUint64(out[24:32]))
}

func TestSlotBufferFinalizeRejectsOutOfRangeTarget(t *testing.T) {
	buf := NewSlotBuffer()
	buf.AppendPointer(5, 0)
	_, err := buf.Finalize()
	require.ErrorIs(t, err, ErrInternalLayout)
}

func bigEndianUint64(b []byte) uint64 {
	var n uint64
	for _, c := range b {
		n = n<<8 | uint64(c)
	}
	return n
}
