// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package value

import (
	"sort"
	"strings"

	json "github.com/goccy/go-json"
)

// Kind tags the variant held by a Value.
type Kind uint8

const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindArray
	KindObject
)

// String returns the lowercase name of the kind.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	default:
		return "unknown"
	}
}

// Field is a single object member. Objects keep their fields as an ordered
// slice so that the insertion order of keys is observable; comparison
// semantics never depend on it.
type Field struct {
	Key   string
	Value Value
}

// Value is a tagged union over the JSON value domain: null, bool, number
// (float64), string, array, object. Values are immutable by convention; none
// of the accessors or package operations mutate a Value after construction.
type Value struct {
	kind   Kind
	b      bool
	num    float64
	str    string
	elems  []Value
	fields []Field
}

// Null returns the null value.
func Null() Value { return Value{kind: KindNull} }

// Bool returns a boolean value.
func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

// Number returns a numeric value. Equality between numbers is float64
// equality, not string-form equality.
func Number(f float64) Value { return Value{kind: KindNumber, num: f} }

// String returns a string value.
func String(s string) Value { return Value{kind: KindString, str: s} }

// Array returns an array value holding elems in order.
func Array(elems ...Value) Value { return Value{kind: KindArray, elems: elems} }

// Object returns an object value holding fields in the given order. Duplicate
// keys keep the last occurrence, matching decoder behavior.
func Object(fields ...Field) Value {
	seen := make(map[string]int, len(fields))
	out := make([]Field, 0, len(fields))
	for _, f := range fields {
		if i, ok := seen[f.Key]; ok {
			out[i] = f
			continue
		}
		seen[f.Key] = len(out)
		out = append(out, f)
	}
	return Value{kind: KindObject, fields: out}
}

// F is a convenience constructor for a Field.
func F(key string, v Value) Field { return Field{Key: key, Value: v} }

// Kind reports which variant this value holds.
func (v Value) Kind() Kind { return v.kind }

// Bool returns the boolean payload. Valid only for KindBool.
func (v Value) Bool() bool { return v.b }

// Number returns the numeric payload. Valid only for KindNumber.
func (v Value) Number() float64 { return v.num }

// Text returns the string payload. Valid only for KindString.
func (v Value) Text() string { return v.str }

// Elems returns the array elements. Valid only for KindArray. The returned
// slice must not be mutated.
func (v Value) Elems() []Value { return v.elems }

// Fields returns the object fields in stored order. Valid only for
// KindObject. The returned slice must not be mutated.
func (v Value) Fields() []Field { return v.fields }

// Lookup returns the value for key in an object, and whether it was present.
func (v Value) Lookup(key string) (Value, bool) {
	for _, f := range v.fields {
		if f.Key == key {
			return f.Value, true
		}
	}
	return Value{}, false
}

// Keys returns the object's keys in ascending order.
func (v Value) Keys() []string {
	keys := make([]string, len(v.fields))
	for i, f := range v.fields {
		keys[i] = f.Key
	}
	sort.Strings(keys)
	return keys
}

// Len returns the number of elements or fields for composite values, and 0
// for scalars.
func (v Value) Len() int {
	switch v.kind {
	case KindArray:
		return len(v.elems)
	case KindObject:
		return len(v.fields)
	default:
		return 0
	}
}

// IsComposite reports whether the value is an array or object.
func (v Value) IsComposite() bool {
	return v.kind == KindArray || v.kind == KindObject
}

// String renders the value as compact JSON. Object fields are emitted in
// stored order, so the output of a canonicalized value is its canonical
// serialization.
func (v Value) String() string {
	var sb strings.Builder
	v.encode(&sb)
	return sb.String()
}

func (v Value) encode(sb *strings.Builder) {
	switch v.kind {
	case KindNull:
		sb.WriteString("null")
	case KindBool:
		if v.b {
			sb.WriteString("true")
		} else {
			sb.WriteString("false")
		}
	case KindNumber:
		// goccy produces the same shortest-form rendering as encoding/json,
		// so 1.0 serializes as "1".
		b, _ := json.Marshal(v.num)
		sb.Write(b)
	case KindString:
		b, _ := json.Marshal(v.str)
		sb.Write(b)
	case KindArray:
		sb.WriteByte('[')
		for i, e := range v.elems {
			if i > 0 {
				sb.WriteByte(',')
			}
			e.encode(sb)
		}
		sb.WriteByte(']')
	case KindObject:
		sb.WriteByte('{')
		for i, f := range v.fields {
			if i > 0 {
				sb.WriteByte(',')
			}
			b, _ := json.Marshal(f.Key)
			sb.Write(b)
			sb.WriteByte(':')
			f.Value.encode(sb)
		}
		sb.WriteByte('}')
	}
}

// Interface converts the value to the generic representation used by
// encoding-agnostic consumers (map[string]interface{}, []interface{},
// float64, string, bool, nil).
func (v Value) Interface() interface{} {
	switch v.kind {
	case KindBool:
		return v.b
	case KindNumber:
		return v.num
	case KindString:
		return v.str
	case KindArray:
		out := make([]interface{}, len(v.elems))
		for i, e := range v.elems {
			out[i] = e.Interface()
		}
		return out
	case KindObject:
		out := make(map[string]interface{}, len(v.fields))
		for _, f := range v.fields {
			out[f.Key] = f.Value.Interface()
		}
		return out
	default:
		return nil
	}
}
