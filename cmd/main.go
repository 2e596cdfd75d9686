// Command abicli is a small command-line front end for the abi engine: it
// encodes or decodes calldata for a given function signature, without
// generating any Go code.
package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"log"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/common"

	abi "github.com/ethabi/core"
)

func main() {
	var (
		sig    = flag.String("sig", "", `function signature, e.g. "transfer(address,uint256)"`)
		mode   = flag.String("mode", "encode", `"encode" or "decode"`)
		args   = flag.String("args", "", "comma-separated scalar argument values, for -mode=encode")
		data   = flag.String("data", "", "hex-encoded calldata (0x prefix optional; starts with the 4-byte selector unless -selector=false), for -mode=decode")
		prefix = flag.Bool("selector", true, "prepend/strip the 4-byte function selector")
	)
	flag.Parse()

	if *sig == "" {
		log.Fatal("-sig is required")
	}
	name, params, err := abi.ParseSignature(*sig)
	if err != nil {
		log.Fatalf("invalid signature: %v", err)
	}

	switch *mode {
	case "encode":
		values, err := parseScalarArgs(params, *args)
		if err != nil {
			log.Fatalf("invalid -args: %v", err)
		}
		encoded, err := abi.Encode(params, values)
		if err != nil {
			log.Fatalf("encode failed: %v", err)
		}
		if *prefix {
			sel := abi.FunctionSelectorFor(name, params, nil)
			encoded = append(sel[:], encoded...)
		}
		fmt.Println(hex.EncodeToString(encoded))

	case "decode":
		raw, err := hex.DecodeString(strings.TrimPrefix(*data, "0x"))
		if err != nil {
			log.Fatalf("invalid -data: %v", err)
		}
		if *prefix {
			if len(raw) < 4 {
				log.Fatal("-data too short to contain a selector")
			}
			raw = raw[4:]
		}
		values, err := abi.Decode(params, raw)
		if err != nil {
			log.Fatalf("decode failed: %v", err)
		}
		for _, n := range values.Names() {
			v, _ := values.Get(n)
			fmt.Printf("%s = %s\n", n, describeValue(v))
		}

	default:
		log.Fatalf("unknown -mode %q", *mode)
	}
}

// parseScalarArgs builds a NamedValues from a comma-separated list of
// plain-text argument values, matched positionally against params. Only
// flat scalar parameter lists are supported; arrays and tuples need a
// richer caller than this demo CLI.
func parseScalarArgs(params abi.Parameters, raw string) (*abi.NamedValues, error) {
	var parts []string
	if raw != "" {
		parts = strings.Split(raw, ",")
	}
	if len(parts) != len(params) {
		return nil, fmt.Errorf("expected %d argument(s), got %d", len(params), len(parts))
	}

	values := make([]abi.Value, len(params))
	for i, p := range params {
		v, err := parseScalarArg(p.Type, strings.TrimSpace(parts[i]))
		if err != nil {
			return nil, fmt.Errorf("argument %d: %w", i, err)
		}
		values[i] = v
	}
	return abi.NewNamedValues(params, values)
}

func parseScalarArg(t *abi.Type, s string) (abi.Value, error) {
	if !t.IsScalar() {
		return abi.Value{}, fmt.Errorf("type %s is not a flat scalar, unsupported by this CLI", t.CanonicalString())
	}
	switch t.Family() {
	case abi.FamilyUint, abi.FamilyInt:
		n, ok := new(big.Int).SetString(s, 10)
		if !ok {
			return abi.Value{}, fmt.Errorf("%q is not an integer", s)
		}
		if t.Family() == abi.FamilyUint {
			return abi.UintValue(t.Bits(), n), nil
		}
		return abi.IntValue(t.Bits(), n), nil
	case abi.FamilyAddress:
		return abi.AddressValue(common.HexToAddress(s)), nil
	case abi.FamilyBool:
		return abi.BoolValue(s == "true"), nil
	case abi.FamilyBytes:
		b, err := hex.DecodeString(strings.TrimPrefix(s, "0x"))
		if err != nil {
			return abi.Value{}, err
		}
		return abi.BytesValue(b), nil
	case abi.FamilyFixedBytes:
		b, err := hex.DecodeString(strings.TrimPrefix(s, "0x"))
		if err != nil {
			return abi.Value{}, err
		}
		return abi.FixedBytesValue(b), nil
	case abi.FamilyString:
		return abi.TextValue(s), nil
	default:
		return abi.Value{}, fmt.Errorf("unsupported family for type %s", t.CanonicalString())
	}
}

func describeValue(v abi.Value) string {
	switch v.Kind() {
	case abi.ValueUint, abi.ValueInt:
		return v.BigInt().String()
	case abi.ValueBool:
		if v.Bool() {
			return "true"
		}
		return "false"
	case abi.ValueAddress:
		addr := v.Address()
		return common.BytesToAddress(addr[:]).Hex()
	case abi.ValueFixedBytes:
		return "0x" + hex.EncodeToString(v.FixedBytes())
	case abi.ValueBytes:
		return "0x" + hex.EncodeToString(v.Bytes())
	case abi.ValueText:
		return v.Text()
	case abi.ValueList:
		parts := make([]string, len(v.List()))
		for i, item := range v.List() {
			parts[i] = describeValue(item)
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case abi.ValueRecord:
		rec := v.Record()
		parts := make([]string, 0, rec.Len())
		for _, name := range rec.Names() {
			fv, _ := rec.Get(name)
			parts = append(parts, name+": "+describeValue(fv))
		}
		return "{" + strings.Join(parts, ", ") + "}"
	default:
		return "?"
	}
}
