package abi

import "math/big"

// WordSize is the size of an ABI word (a "slot") in bytes.
const WordSize = 32

// slot is one 32-byte unit of the buffer. It either holds raw bytes
// directly, or is a pointer slot whose content is computed during
// finalize from the positions of two other slots in the same arena.
//
// Grounded on the DESIGN NOTES' "index-based arena" guidance: rather than
// shared-mutable Slot objects referencing each other by pointer (the
// pattern flagged as a source of reference-cycle bugs), every slot lives
// in a single []slot owned by the SlotBuffer and refers to others purely
// by integer index. Pointers stay symbolic until finalize, then the
// buffer is effectively frozen.
type slot struct {
	raw [32]byte

	isPointer  bool
	target     int // index into buf.slots, valid only if isPointer
	relativeTo int // index into buf.slots, valid only if isPointer
}

// SlotBuffer is an ordered arena of slots supporting append, concatenation
// of a nested buffer at the current position, and a final two-pass offset
// resolution (spec.md §3/§4.3).
type SlotBuffer struct {
	slots []slot
}

// NewSlotBuffer returns an empty buffer.
func NewSlotBuffer() *SlotBuffer { return &SlotBuffer{} }

// Len returns the number of slots currently appended.
func (b *SlotBuffer) Len() int { return len(b.slots) }

// AppendRaw appends one slot holding exactly 32 bytes of raw data and
// returns its index.
func (b *SlotBuffer) AppendRaw(data [32]byte) int {
	b.slots = append(b.slots, slot{raw: data})
	return len(b.slots) - 1
}

// AppendUint appends one slot holding n big-endian, left-padded, and
// returns its index. Used for length/count words.
func (b *SlotBuffer) AppendUint(n uint64) int {
	var data [32]byte
	big.NewInt(0).SetUint64(n).FillBytes(data[:])
	return b.AppendRaw(data)
}

// AppendPointer appends a placeholder pointer slot whose final content is
// computed at Finalize time as
// (order(target) - order(relativeTo)) * WordSize, written as a big-endian
// uint256. Returns the new slot's index; the caller supplies target/
// relativeTo as indices that will be valid once this buffer and the
// buffer(s) it is later merged with via Extend are all appended.
func (b *SlotBuffer) AppendPointer(target, relativeTo int) int {
	b.slots = append(b.slots, slot{isPointer: true, target: target, relativeTo: relativeTo})
	return len(b.slots) - 1
}

// Extend appends every slot of other to b, rewriting other's internal
// pointer indices (target/relativeTo) by the offset at which other's
// slots land in b. Returns the index at which other's first slot landed.
func (b *SlotBuffer) Extend(other *SlotBuffer) int {
	base := len(b.slots)
	for _, s := range other.slots {
		if s.isPointer {
			s.target += base
			s.relativeTo += base
		}
		b.slots = append(b.slots, s)
	}
	return base
}

// Finalize resolves every pointer slot's raw bytes from its target and
// anchor indices, then returns the flat encoded byte slice. Per spec.md
// §4.3, this is two passes: (1) slot order/offset is just its index in
// the arena times WordSize, established implicitly by the append order;
// (2) every pointer slot's value becomes
// (order(target) - order(relativeTo)) * WordSize.
func (b *SlotBuffer) Finalize() ([]byte, error) {
	out := make([]byte, len(b.slots)*WordSize)
	for i, s := range b.slots {
		if !s.isPointer {
			copy(out[i*WordSize:(i+1)*WordSize], s.raw[:])
			continue
		}
		if s.target < 0 || s.target >= len(b.slots) || s.relativeTo < 0 || s.relativeTo >= len(b.slots) {
			return nil, newErr(ErrInternalLayout, "", "", "pointer slot references an out-of-range index")
		}
		offset := int64(s.target-s.relativeTo) * WordSize
		if offset < 0 {
			return nil, newErr(ErrInternalLayout, "", "", "pointer offset resolved negative")
		}
		var word [32]byte
		big.NewInt(offset).FillBytes(word[:])
		copy(out[i*WordSize:(i+1)*WordSize], word[:])
	}
	return out, nil
}

// Order returns slot index i's final 0-based position (itself, since
// indices are assigned at append time and never reordered).
func (b *SlotBuffer) Order(i int) int { return i }

// Offset returns slot index i's byte offset (order * WordSize).
func (b *SlotBuffer) Offset(i int) int { return i * WordSize }
