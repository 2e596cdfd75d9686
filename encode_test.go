package abi

import (
	"encoding/json"
	"math/big"
	"strings"
	"testing"

	ethabi "github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/require"
)

// oraclePack builds a minimal go-ethereum JSON ABI definition for sig and
// packs args through it, giving an independent reference encoding to
// compare against -- the same cross-check pattern the teacher's
// tests/abi_test.go ran against go-ethereum's abi.JSON/abi.Pack.
func oraclePack(t *testing.T, sig string, args ...interface{}) []byte {
	t.Helper()
	name, params, err := ParseSignature(sig)
	require.NoError(t, err)

	type jsonInput struct {
		Name string `json:"name"`
		Type string `json:"type"`
	}
	type jsonMethod struct {
		Name            string      `json:"name"`
		Type            string      `json:"type"`
		Inputs          []jsonInput `json:"inputs"`
		Outputs         []jsonInput `json:"outputs"`
		StateMutability string      `json:"stateMutability"`
	}

	inputs := make([]jsonInput, len(params))
	for i, p := range params {
		inputs[i] = jsonInput{Name: p.Name, Type: p.Type.CanonicalString()}
	}
	doc, err := json.Marshal([]jsonMethod{{
		Name: name, Type: "function", Inputs: inputs, StateMutability: "nonpayable",
	}})
	require.NoError(t, err)

	parsed, err := ethabi.JSON(strings.NewReader(string(doc)))
	require.NoError(t, err)

	packed, err := parsed.Pack(name, args...)
	require.NoError(t, err)
	return packed[4:] // strip the selector, Encode/Pack-inputs-only comparisons want the body
}

func TestEncodeSingleUint256(t *testing.T) {
	params, err := ParseParameters("(uint256)")
	require.NoError(t, err)

	values := NewRecord().Set("0", UintValue(256, big.NewInt(12345)))
	got, err := Encode(params, values)
	require.NoError(t, err)

	want := oraclePack(t, "f(uint256)", big.NewInt(12345))
	require.Equal(t, want, got)
}

func TestEncodeAddressUint256(t *testing.T) {
	params, err := ParseParameters("(address,uint256)")
	require.NoError(t, err)

	addr := common.HexToAddress("0x742d35Cc6634C0532925a3b8D4C9D7B6f7e5c3a3")
	var raw [20]byte
	copy(raw[:], addr.Bytes())

	values := NewRecord().
		Set("0", AddressValue(raw)).
		Set("1", UintValue(256, big.NewInt(1000)))
	got, err := Encode(params, values)
	require.NoError(t, err)

	want := oraclePack(t, "f(address,uint256)", addr, big.NewInt(1000))
	require.Equal(t, want, got)
}

func TestEncodeDynamicString(t *testing.T) {
	params, err := ParseParameters("(string)")
	require.NoError(t, err)

	values := NewRecord().Set("0", TextValue("dave"))
	got, err := Encode(params, values)
	require.NoError(t, err)

	want := oraclePack(t, "f(string)", "dave")
	require.Equal(t, want, got)
}

func TestEncodeFixedUint8Array(t *testing.T) {
	params, err := ParseParameters("(uint8[3])")
	require.NoError(t, err)

	values := NewRecord().Set("0", ListValue([]Value{
		UintValue(8, big.NewInt(1)),
		UintValue(8, big.NewInt(2)),
		UintValue(8, big.NewInt(3)),
	}))
	got, err := Encode(params, values)
	require.NoError(t, err)

	want := oraclePack(t, "f(uint8[3])", [3]uint8{1, 2, 3})
	require.Equal(t, want, got)
}

func TestEncodeDynamicBytesArray(t *testing.T) {
	params, err := ParseParameters("(bytes[])")
	require.NoError(t, err)

	values := NewRecord().Set("0", ListValue([]Value{
		BytesValue([]byte{0xca, 0xfe}),
		BytesValue([]byte{0xba, 0xbe, 0x01}),
	}))
	got, err := Encode(params, values)
	require.NoError(t, err)

	want := oraclePack(t, "f(bytes[])", [][]byte{{0xca, 0xfe}, {0xba, 0xbe, 0x01}})
	require.Equal(t, want, got)
}

func TestEncodeNestedTuple(t *testing.T) {
	inner, err := ParseType("(uint256,string)")
	require.NoError(t, err)
	outer := TupleType([]TupleComponent{
		{Name: "0", Type: inner},
		{Name: "1", Type: BoolType()},
	})

	innerRecord := NewRecord().
		Set("0", UintValue(256, big.NewInt(7))).
		Set("1", TextValue("hi"))
	outerRecord := NewRecord().
		Set("0", RecordValue(innerRecord)).
		Set("1", BoolValue(true))

	got, err := EncodeValues(outer, RecordValue(outerRecord))
	require.NoError(t, err)
	require.True(t, len(got) > 0)

	// Round-trip through our own Decode confirms the structure survives.
	decoded, err := DecodeValue(outer, got)
	require.NoError(t, err)
	rec := decoded.Record()
	flag, ok := rec.Get("1")
	require.True(t, ok)
	require.True(t, flag.Bool())
}

func TestEncodeFixedArrayLengthMismatch(t *testing.T) {
	params, err := ParseParameters("(uint8[3])")
	require.NoError(t, err)

	values := NewRecord().Set("0", ListValue([]Value{UintValue(8, big.NewInt(1))}))
	_, err = Encode(params, values)
	require.ErrorIs(t, err, ErrArityMismatch)
}

func TestFunctionSelectorStability(t *testing.T) {
	_, params, err := ParseSignature("transfer(address,uint256)")
	require.NoError(t, err)
	sel := FunctionSelectorFor("transfer", params, nil)
	require.Equal(t, "a9059cbb", hexEncode(sel[:]))
}

func hexEncode(b []byte) string {
	const hexDigits = "0123456789abcdef"
	out := make([]byte, len(b)*2)
	for i, c := range b {
		out[i*2] = hexDigits[c>>4]
		out[i*2+1] = hexDigits[c&0x0f]
	}
	return string(out)
}
