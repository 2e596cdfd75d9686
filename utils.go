package abi

import (
	"math"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
)

const (
	// max values for all unsigned small integers of all bytes
	MaxUint8  = math.MaxUint8
	MaxUint16 = math.MaxUint16
	MaxUint24 = 1<<24 - 1
	MaxUint32 = math.MaxUint32
	MaxUint40 = 1<<40 - 1
	MaxUint48 = 1<<48 - 1
	MaxUint56 = 1<<56 - 1
	MaxUint64 = math.MaxUint64

	// min values for all signed small integers of all bytes
	MinInt8  = math.MinInt8
	MinInt16 = math.MinInt16
	MinInt24 = -1 << 23
	MinInt32 = math.MinInt32
	MinInt40 = -1 << 39
	MinInt48 = -1 << 47
	MinInt56 = -1 << 55
	MinInt64 = math.MinInt64

	// max values for all signed small integers of all bytes
	MaxInt8  = math.MaxInt8
	MaxInt16 = math.MaxInt16
	MaxInt24 = 1<<23 - 1
	MaxInt32 = math.MaxInt32
	MaxInt40 = 1<<39 - 1
	MaxInt48 = 1<<47 - 1
	MaxInt56 = 1<<55 - 1
	MaxInt64 = math.MaxInt64
)

var (
	tt256      = new(big.Int).Lsh(common.Big1, 256)
	MaxUint256 = new(big.Int).Sub(tt256, common.Big1)
)

// Pad32 rounds n up to the next multiple of 32, the slot-count rule used
// throughout the tail layout for bytes/string data.
func Pad32(n int) int {
	return (n + 31) / 32 * 32
}

// decodeSmallUint decodes a small unsigned integer (bits<=64) from a
// 32-byte slot using holiman/uint256's fixed-width arithmetic to avoid
// math/big allocation on the hot path, mirroring the teacher's
// utils.go DecodeUint.
func decodeSmallUint(data []byte, bits int) (uint64, error) {
	var n uint256.Int
	n.SetBytes32(data)

	maxValue := uint64(1)<<uint(bits) - 1
	if bits == 64 {
		maxValue = math.MaxUint64
	}

	result, overflow := n.Uint64WithOverflow()
	if overflow || result > maxValue {
		return 0, ErrValueOutOfRange
	}
	return result, nil
}

// decodeSmallInt decodes a small signed integer (bits<=64) from a 32-byte
// slot, checking that the sign-extension bytes above the declared width
// are clean, mirroring the teacher's utils.go DecodeInt.
func decodeSmallInt(data []byte, bits int) (int64, error) {
	var n uint256.Int
	n.SetBytes32(data)

	i64 := int64(n[0])
	negative := data[0]&0x80 != 0

	if negative {
		if n[1]&n[2]&n[3] != ^uint64(0) {
			return 0, ErrValueOutOfRange
		}
	} else if n[1]|n[2]|n[3] != 0 {
		return 0, ErrValueOutOfRange
	}

	if bits < 64 {
		maxValue := int64(1)<<uint(bits-1) - 1
		minValue := -maxValue - 1
		if i64 < minValue || i64 > maxValue {
			return 0, ErrValueOutOfRange
		}
	} else if (i64 < 0) != negative {
		return 0, ErrValueOutOfRange
	}
	return i64, nil
}

// encodeBigInt writes n into buf (32 bytes) as an unsigned big-endian
// value, or as 256-bit two's complement when signed is true and n is
// negative. Grounded on the teacher's utils.go EncodeBigInt.
func encodeBigInt(n *big.Int, buf []byte, signed bool) error {
	if n.Sign() < 0 {
		if !signed {
			return ErrValueOutOfRange
		}
		n = new(big.Int).And(n, MaxUint256)
	}

	l := (n.BitLen() + 7) / 8
	if l > 32 {
		return ErrValueOutOfRange
	}
	n.FillBytes(buf[32-l:])
	return nil
}

// decodeBigInt reads a 32-byte big-endian word as an unsigned integer, or
// as 256-bit two's complement when signed is true and the top bit is set.
// Grounded on the teacher's utils.go DecodeBigInt.
func decodeBigInt(data []byte, signed bool) (*big.Int, error) {
	if len(data) < 32 {
		return nil, newErr(ErrTruncatedInput, "", "", "")
	}

	ret := new(big.Int).SetBytes(data[:32])
	if signed && data[0]&0x80 != 0 {
		ret.Sub(ret, tt256)
	}
	return ret, nil
}
