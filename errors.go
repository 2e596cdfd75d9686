package abi

import (
	"errors"
	"fmt"
)

// Global error instances to avoid dynamic error creation on hot paths.
//
// These are the sentinel kinds from the error taxonomy: parse-time,
// validate-time, encode-time, decode-time and internal-assertion errors.
// Callers match them with errors.Is; every error the package actually
// returns is a *Error wrapping one of these so it also carries a
// traversal path.
var (
	// ErrInvalidDescriptor is returned when an ABI type or parameter
	// descriptor cannot be parsed: mismatched parens/brackets, an empty
	// dimension with an explicit size, a non-numeric dimension, an
	// unknown base type, or an invalid size for uint/int/bytes.
	ErrInvalidDescriptor = errors.New("invalid abi type descriptor")

	// ErrTypeIncompatible is returned when a host value cannot be
	// assigned to the ABI type the Validator or Encoder expects of it.
	ErrTypeIncompatible = errors.New("value incompatible with abi type")

	// ErrValueOutOfRange is returned when an encodable value does not fit
	// the target scalar type: integer overflow, wrong-length fixed bytes,
	// or dirty sign-extension/padding bits on decode.
	ErrValueOutOfRange = errors.New("value out of range for abi type")

	// ErrArityMismatch is returned when the number of supplied values
	// does not match the number of declared parameters.
	ErrArityMismatch = errors.New("argument count does not match parameters")

	// ErrNameMismatch is returned when a named value map's keys do not
	// match the parameter names, in order.
	ErrNameMismatch = errors.New("named values do not match parameter names")

	// ErrTruncatedInput is returned when a decode operation runs out of
	// bytes before the type's layout is satisfied.
	ErrTruncatedInput = errors.New("truncated abi input")

	// ErrBadPointer is returned when a decoded offset points outside the
	// buffer, or before its anchor.
	ErrBadPointer = errors.New("pointer offset out of bounds")

	// ErrLengthOverflow is returned when a decoded length field claims
	// more bytes than remain in the buffer.
	ErrLengthOverflow = errors.New("declared length exceeds remaining data")

	// ErrInvalidUtf8 is returned when the decoded bytes of a string
	// value are not valid UTF-8.
	ErrInvalidUtf8 = errors.New("invalid utf-8 in abi string")

	// ErrInternalLayout marks a condition the engine believes is
	// unreachable on any valid input. Its presence indicates a bug in
	// the engine, never a malformed caller input.
	ErrInternalLayout = errors.New("internal abi layout error")
)

// Error is the concrete error type returned at the public API boundary.
// It always wraps one of the package sentinel errors above and records
// enough context to locate the failure without re-running the operation.
type Error struct {
	// Kind is the sentinel this error wraps; match with errors.Is(err, Kind)
	// or inspect this field directly.
	Kind error

	// Type is the offending ABI type's canonical string form, when known.
	Type string

	// Path is a traversal path of the form
	// "param-<i>(<name>).component-..." identifying where in the
	// parameter/value tree the failure occurred.
	Path string

	// Detail is a short human-readable elaboration, e.g. the host Go
	// type observed where a different one was required.
	Detail string
}

func (e *Error) Error() string {
	msg := e.Kind.Error()
	if e.Path != "" {
		msg = fmt.Sprintf("%s: at %s", msg, e.Path)
	}
	if e.Type != "" {
		msg = fmt.Sprintf("%s (type %s)", msg, e.Type)
	}
	if e.Detail != "" {
		msg = fmt.Sprintf("%s: %s", msg, e.Detail)
	}
	return msg
}

func (e *Error) Unwrap() error { return e.Kind }

// newErr builds a *Error for the given sentinel kind.
func newErr(kind error, path, typ, detail string) *Error {
	return &Error{Kind: kind, Path: path, Type: typ, Detail: detail}
}

// joinPath appends a child path segment to a parent path with a ".".
func joinPath(parent, child string) string {
	if parent == "" {
		return child
	}
	return parent + "." + child
}

// paramPath renders the path segment for the i'th top-level function
// parameter, e.g. "param-0" or "param-0(amount)" when named. This is the
// root of every traversal path a deeper encode/decode failure builds on.
func paramPath(i int, name string) string {
	if name == "" {
		return fmt.Sprintf("param-%d", i)
	}
	return fmt.Sprintf("param-%d(%s)", i, name)
}

// componentPath renders the path segment for the i'th field of a tuple
// nested below the root, e.g. "component-0" or "component-0(x)" when named.
func componentPath(i int, name string) string {
	if name == "" {
		return fmt.Sprintf("component-%d", i)
	}
	return fmt.Sprintf("component-%d(%s)", i, name)
}

// elemPath renders the path segment for the i'th element of an array
// nested below the root, e.g. "elem-3".
func elemPath(i int) string {
	return fmt.Sprintf("elem-%d", i)
}
