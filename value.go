package abi

import "math/big"

// ValueKind discriminates the tagged variants of Value, mirroring Type's
// Kind/Family split: scalar leaves, plus List (array/dynamic-array values)
// and Record (tuple values).
type ValueKind uint8

const (
	ValueUint ValueKind = iota
	ValueInt
	ValueBool
	ValueAddress
	ValueFixedBytes
	ValueBytes
	ValueText
	ValueList
	ValueRecord
)

// Value is the in-memory representation of a decoded ABI value, and the
// input to the Encoder. It is a tagged variant; exactly one of the fields
// below is meaningful, selected by Kind.
type Value struct {
	kind ValueKind

	bits    int      // for Uint/Int
	bigInt  *big.Int // for Uint/Int
	boolean bool
	address [20]byte
	fbytes  []byte // for FixedBytes, length == its declared N
	bytes   []byte // for dynamic Bytes
	text    string
	list    []Value
	record  *Record
}

func (v Value) Kind() ValueKind { return v.kind }

// Constructors.

func UintValue(bits int, n *big.Int) Value { return Value{kind: ValueUint, bits: bits, bigInt: n} }
func IntValue(bits int, n *big.Int) Value  { return Value{kind: ValueInt, bits: bits, bigInt: n} }
func BoolValue(b bool) Value               { return Value{kind: ValueBool, boolean: b} }
func AddressValue(addr [20]byte) Value     { return Value{kind: ValueAddress, address: addr} }
func FixedBytesValue(b []byte) Value       { return Value{kind: ValueFixedBytes, fbytes: b} }
func BytesValue(b []byte) Value            { return Value{kind: ValueBytes, bytes: b} }
func TextValue(s string) Value             { return Value{kind: ValueText, text: s} }
func ListValue(items []Value) Value        { return Value{kind: ValueList, list: items} }
func RecordValue(r *Record) Value          { return Value{kind: ValueRecord, record: r} }

// Accessors. Each except Bits panics if called against the wrong Kind
// (Bits returns 0 for non-integer values); callers that
// don't already know the Kind should switch on it first (this is the
// "exhaustive tagged variant" the DESIGN NOTES call for, replacing
// reflection-based dispatch).

func (v Value) Bits() int { return v.bits }

func (v Value) BigInt() *big.Int {
	mustKind(v, ValueUint, ValueInt)
	return v.bigInt
}

func (v Value) Bool() bool {
	mustKind(v, ValueBool)
	return v.boolean
}

func (v Value) Address() [20]byte {
	mustKind(v, ValueAddress)
	return v.address
}

func (v Value) FixedBytes() []byte {
	mustKind(v, ValueFixedBytes)
	return v.fbytes
}

func (v Value) Bytes() []byte {
	mustKind(v, ValueBytes)
	return v.bytes
}

func (v Value) Text() string {
	mustKind(v, ValueText)
	return v.text
}

func (v Value) List() []Value {
	mustKind(v, ValueList)
	return v.list
}

func (v Value) Record() *Record {
	mustKind(v, ValueRecord)
	return v.record
}

func mustKind(v Value, allowed ...ValueKind) {
	for _, k := range allowed {
		if v.kind == k {
			return
		}
	}
	panic("abi: Value accessor called against wrong Kind")
}
