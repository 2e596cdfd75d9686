package abi

import "strconv"

// Record is an insertion-ordered name->Value mapping, the concrete type
// backing AbiValue's Record variant (spec.md §3) and the NamedRecord half
// of the external Encode/Decode interface.
//
// Grounded on the teacher's Struct/StructField (struct.go), which held an
// ordered list of named fields for code generation; the same
// "ordered list of (name, element)" shape is what a tuple value needs at
// runtime, so the type is kept and repurposed rather than discarded.
type Record struct {
	names  []string
	values map[string]Value
}

// NewRecord builds an empty Record.
func NewRecord() *Record {
	return &Record{values: make(map[string]Value)}
}

// Set appends name->value, or overwrites the value in place if name was
// already set (insertion order is preserved on overwrite).
func (r *Record) Set(name string, v Value) *Record {
	if _, exists := r.values[name]; !exists {
		r.names = append(r.names, name)
	}
	r.values[name] = v
	return r
}

// Get returns the value for name and whether it was present.
func (r *Record) Get(name string) (Value, bool) {
	v, ok := r.values[name]
	return v, ok
}

// Names returns the field names in insertion order.
func (r *Record) Names() []string { return r.names }

// Len returns the number of fields.
func (r *Record) Len() int { return len(r.names) }

// NamedValues is the ordered name->Value map used as the top-level
// argument to Encode and the top-level result of Decode: the concrete
// type backing the logical NamedRecord in the external interface
// (spec.md §6). It is structurally the same shape as Record; kept as a
// distinct name because it always corresponds 1:1 with a Parameters list
// (including unnamed, positional parameters keyed by their string index),
// while a Record may also appear nested as a tuple component's value.
type NamedValues = Record

// NewNamedValues builds a NamedValues from a Parameters list and a
// positional slice of Values, keying unnamed parameters by the string of
// their positional index (spec.md §6: "the core treats unnamed parameters
// as positional").
func NewNamedValues(params Parameters, values []Value) (*NamedValues, error) {
	if len(params) != len(values) {
		return nil, newErr(ErrArityMismatch, "", "", "")
	}
	r := NewRecord()
	for i, p := range params {
		key := p.Name
		if key == "" {
			key = paramKey(i)
		}
		r.Set(key, values[i])
	}
	return r, nil
}

// paramKey is the positional key used for an unnamed parameter.
func paramKey(i int) string {
	return strconv.Itoa(i)
}
