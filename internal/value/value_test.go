// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

// no-cloc
package value

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConstructorsAndAccessors(t *testing.T) {
	assert.Equal(t, KindNull, Null().Kind())
	assert.Equal(t, KindBool, Bool(true).Kind())
	assert.True(t, Bool(true).Bool())
	assert.Equal(t, KindNumber, Number(1.5).Kind())
	assert.Equal(t, 1.5, Number(1.5).Number())
	assert.Equal(t, KindString, String("x").Kind())
	assert.Equal(t, "x", String("x").Text())

	arr := Array(Number(1), Number(2))
	assert.Equal(t, KindArray, arr.Kind())
	assert.Len(t, arr.Elems(), 2)
	assert.Equal(t, 2, arr.Len())
	assert.True(t, arr.IsComposite())

	obj := Object(F("b", Number(2)), F("a", Number(1)))
	assert.Equal(t, KindObject, obj.Kind())
	assert.Equal(t, 2, obj.Len())
	assert.True(t, obj.IsComposite())
	assert.False(t, Number(1).IsComposite())
}

func TestObjectDuplicateKeysLastWins(t *testing.T) {
	obj := Object(F("a", Number(1)), F("b", Number(2)), F("a", Number(3)))

	assert.Equal(t, 2, obj.Len())
	v, ok := obj.Lookup("a")
	assert.True(t, ok)
	assert.Equal(t, 3.0, v.Number())
}

func TestLookup(t *testing.T) {
	obj := Object(F("name", String("Alice")))

	v, ok := obj.Lookup("name")
	assert.True(t, ok)
	assert.Equal(t, "Alice", v.Text())

	_, ok = obj.Lookup("missing")
	assert.False(t, ok)
}

func TestKeysSorted(t *testing.T) {
	obj := Object(F("z", Number(1)), F("a", Number(2)), F("m", Number(3)))
	assert.Equal(t, []string{"a", "m", "z"}, obj.Keys())
}

func TestStringCompactJSON(t *testing.T) {
	tests := []struct {
		name string
		v    Value
		want string
	}{
		{name: "null", v: Null(), want: `null`},
		{name: "true", v: Bool(true), want: `true`},
		{name: "false", v: Bool(false), want: `false`},
		{name: "integer-valued float renders without fraction", v: Number(1.0), want: `1`},
		{name: "fractional number", v: Number(1.5), want: `1.5`},
		{name: "string escaping", v: String(`a"b`), want: `"a\"b"`},
		{name: "empty array", v: Array(), want: `[]`},
		{name: "array", v: Array(Number(1), String("x")), want: `[1,"x"]`},
		{name: "empty object", v: Object(), want: `{}`},
		{
			name: "object keeps stored field order",
			v:    Object(F("b", Number(2)), F("a", Number(1))),
			want: `{"b":2,"a":1}`,
		},
		{
			name: "nested",
			v:    Object(F("a", Array(Object(F("x", Null()))))),
			want: `{"a":[{"x":null}]}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.v.String())
		})
	}
}

func TestInterface(t *testing.T) {
	v := Object(
		F("a", Number(1)),
		F("b", Array(Bool(true), Null())),
		F("c", String("x")),
	)

	want := map[string]interface{}{
		"a": 1.0,
		"b": []interface{}{true, nil},
		"c": "x",
	}
	assert.Equal(t, want, v.Interface())
}
