package abi

import (
	"strconv"
	"strings"
)

// ParseType parses a single ABI type descriptor ("uint256", "bytes[]",
// "(uint8,string)[2]") into its normalized Type tree.
//
// Grammar (spec.md §4.1):
//
//	<base>  ::= "uint"|"int"|"uint"N|"int"N|"address"|"bool"|"string"|"bytes"|"bytes"N|"byte"
//	<type>  ::= <base> | "(" <type> ("," <type>)* ")" | <type> "[" <int>? "]"
//
// The trailing brackets are applied left-to-right as they appear in the
// descriptor, so "uint256[2][3]" parses as Array(Array(uint256,2),3): the
// leftmost bracket is the inner dimension, the rightmost is outer.
func ParseType(descriptor string) (*Type, error) {
	descriptor = strings.TrimSpace(descriptor)
	if descriptor == "" {
		return nil, newErr(ErrInvalidDescriptor, "", "", "empty type descriptor")
	}
	t, rest, err := parseTypeAndArrays(descriptor)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(rest) != "" {
		return nil, newErr(ErrInvalidDescriptor, "", descriptor, "unexpected trailing input: "+rest)
	}
	return t, nil
}

// parseTypeAndArrays parses a base type or tuple, then any number of
// trailing "[...]" dimensions, and returns what's left unconsumed.
func parseTypeAndArrays(s string) (*Type, string, error) {
	var base *Type
	var rest string
	var err error

	if strings.HasPrefix(s, "(") {
		base, rest, err = parseTuple(s)
	} else {
		base, rest, err = parseBase(s)
	}
	if err != nil {
		return nil, "", err
	}

	for strings.HasPrefix(rest, "[") {
		close := strings.IndexByte(rest, ']')
		if close < 0 {
			return nil, "", newErr(ErrInvalidDescriptor, "", s, "unterminated '[' in array dimension")
		}
		dim := rest[1:close]
		rest = rest[close+1:]

		length := DynamicLength
		if dim != "" {
			n, convErr := strconv.Atoi(dim)
			if convErr != nil {
				return nil, "", newErr(ErrInvalidDescriptor, "", s, "non-numeric array dimension: "+dim)
			}
			if n <= 0 {
				return nil, "", newErr(ErrInvalidDescriptor, "", s, "array dimension must be positive")
			}
			length = n
		}
		base = ArrayType(base, length)
	}

	return base, rest, nil
}

// parseTuple parses a leading "(" <type> ("," <type>)* ")" and returns the
// remainder of the string after the closing paren.
func parseTuple(s string) (*Type, string, error) {
	if len(s) == 0 || s[0] != '(' {
		return nil, "", newErr(ErrInvalidDescriptor, "", s, "expected '('")
	}

	depth := 0
	end := -1
	for i, ch := range s {
		switch ch {
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				end = i
			}
		}
		if end >= 0 {
			break
		}
	}
	if end < 0 {
		return nil, "", newErr(ErrInvalidDescriptor, "", s, "unbalanced parentheses")
	}

	inner := s[1:end]
	rest := s[end+1:]

	parts, err := splitTopLevel(inner)
	if err != nil {
		return nil, "", newErr(ErrInvalidDescriptor, "", s, err.Error())
	}

	components := make([]TupleComponent, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			return nil, "", newErr(ErrInvalidDescriptor, "", s, "empty tuple component")
		}
		elemType, elemRest, err := parseTypeAndArrays(part)
		if err != nil {
			return nil, "", err
		}
		if strings.TrimSpace(elemRest) != "" {
			return nil, "", newErr(ErrInvalidDescriptor, "", s, "unexpected trailing input in tuple component: "+elemRest)
		}
		components = append(components, TupleComponent{Type: elemType})
	}

	return TupleType(components), rest, nil
}

// splitTopLevel splits s on commas that are not nested inside parens,
// grounded on the teacher's splitByCommaOutsideParentheses.
func splitTopLevel(s string) ([]string, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	var parts []string
	var cur strings.Builder
	depth := 0
	for _, ch := range s {
		switch ch {
		case '(':
			depth++
			cur.WriteRune(ch)
		case ')':
			depth--
			cur.WriteRune(ch)
		case ',':
			if depth == 0 {
				parts = append(parts, cur.String())
				cur.Reset()
			} else {
				cur.WriteRune(ch)
			}
		default:
			cur.WriteRune(ch)
		}
	}
	parts = append(parts, cur.String())
	if depth != 0 {
		return nil, errUnbalanced
	}
	return parts, nil
}

var errUnbalanced = newErr(ErrInvalidDescriptor, "", "", "unbalanced parentheses")

// parseBase parses one base-type token (up to, but not including, any
// trailing "[...]" dimensions or a following "," / ")") and returns the
// unconsumed remainder.
func parseBase(s string) (*Type, string, error) {
	i := 0
	for i < len(s) && s[i] != '[' && s[i] != ',' && s[i] != ')' {
		i++
	}
	name := s[:i]
	rest := s[i:]

	t, err := parseBaseName(name)
	if err != nil {
		return nil, "", err
	}
	return t, rest, nil
}

// parseBaseName resolves one base-type identifier, applying the
// byte->bytes1 and uint/int->uint256/int256 aliases.
func parseBaseName(name string) (*Type, error) {
	switch {
	case name == "uint":
		return UintType(256), nil
	case name == "int":
		return IntType(256), nil
	case name == "address":
		return AddressType(), nil
	case name == "bool":
		return BoolType(), nil
	case name == "string":
		return StringType(), nil
	case name == "byte":
		return FixedBytesType(1), nil
	case name == "bytes":
		return BytesType(), nil
	case strings.HasPrefix(name, "uint"):
		n, err := strconv.Atoi(name[4:])
		if err != nil || !validIntBits(n) {
			return nil, newErr(ErrInvalidDescriptor, "", name, "invalid uint bit width")
		}
		return UintType(n), nil
	case strings.HasPrefix(name, "int"):
		n, err := strconv.Atoi(name[3:])
		if err != nil || !validIntBits(n) {
			return nil, newErr(ErrInvalidDescriptor, "", name, "invalid int bit width")
		}
		return IntType(n), nil
	case strings.HasPrefix(name, "bytes"):
		n, err := strconv.Atoi(name[5:])
		if err != nil || !validFixedBytesSize(n) {
			return nil, newErr(ErrInvalidDescriptor, "", name, "invalid bytesN size")
		}
		return FixedBytesType(n), nil
	default:
		return nil, newErr(ErrInvalidDescriptor, "", name, "unknown base type")
	}
}

// Canonicalize parses descriptor and renders its canonical form in one
// step; equivalent to ParseType(descriptor).CanonicalString() but returns
// the parse error instead of panicking on a bad descriptor.
func Canonicalize(descriptor string) (string, error) {
	t, err := ParseType(descriptor)
	if err != nil {
		return "", err
	}
	return t.CanonicalString(), nil
}
