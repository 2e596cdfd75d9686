/*
Package abi is a runtime Ethereum Contract ABI type/value engine: it
parses ABI type descriptors and parameter lists, represents ABI types and
values as in-memory trees, and encodes/decodes those trees to and from
the standard head/tail binary layout, all without code generation.

Overview

Given a parameter list descriptor and a set of values, Encode produces
the wire bytes; Decode performs the inverse. A human-readable function or
event signature can be parsed directly:

	name, params, err := abi.ParseSignature("function transfer(address to, uint256 amount)")
	if err != nil {
		return err
	}

	values := abi.NewRecord().
		Set("to", abi.AddressValue(toAddr)).
		Set("amount", abi.UintValue(256, amount))

	data, err := abi.Encode(params, values)
	if err != nil {
		return err
	}

	sel := abi.FunctionSelectorFor(name, params, nil)
	calldata := append(sel[:], data...)

Type Grammar

ParseType and ParseParameters implement the ABI type grammar directly:
elementary types (uintN, intN, address, bool, bytesN, bytes, string),
tuples "(t1,t2,...)", and array suffixes "[N]"/"[]" applied left to
right. Canonicalize normalizes a descriptor (expanding "uint"/"int"/
"byte" aliases) by parsing it with ParseType and rendering the result.

Values

Value is a tagged variant covering every ABI value shape: scalars
(UintValue, IntValue, BoolValue, AddressValue, FixedBytesValue,
BytesValue, TextValue) plus the two composite shapes, ListValue (array
elements) and RecordValue (tuple fields, backed by Record/NamedValues).

Encoding

SlotBuffer is the arena Encode builds its output in: an ordered
sequence of 32-byte slots, built by appending raw words or pointer
placeholders and resolved to a flat byte slice in one pass at the end.
Decode does not use it; it reads the input byte slice directly. This avoids the shared-mutable, pointer-chasing object graphs
that tend to accumulate reference-cycle bugs in hand-rolled ABI codecs.

Validation

IsCompatible checks a Value against a Type without attempting to encode
it, useful for validating user-supplied arguments before constructing
calldata.

Selectors and Topics

FunctionSelector and EventTopic compute the 4-byte selector and 32-byte
topic0 for a canonical signature. Both take an explicit hash function
parameter and fall back to go-ethereum's crypto.Keccak256 when nil is
passed, keeping the hash choice an injectable boundary rather than a
hidden global.
*/
package abi
