// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

// no-cloc
package value

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAbsent(t *testing.T) {
	for _, text := range []string{"", "   ", "\n\t "} {
		v, present, err := Parse(text)
		assert.NoError(t, err)
		assert.False(t, present)
		assert.Equal(t, Value{}, v)
	}
}

func TestParseScalars(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{name: "null", text: `null`, want: `null`},
		{name: "bool", text: `true`, want: `true`},
		{name: "number", text: `1.5`, want: `1.5`},
		{name: "integer", text: `42`, want: `42`},
		{name: "string", text: `"hi"`, want: `"hi"`},
		{name: "surrounding whitespace", text: "  7 \n", want: `7`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, present, err := Parse(tt.text)
			require.NoError(t, err)
			assert.True(t, present)
			assert.Equal(t, tt.want, v.String())
		})
	}
}

func TestParseObjectKeysSorted(t *testing.T) {
	v, present, err := Parse(`{"z":1,"a":2,"m":3}`)
	require.NoError(t, err)
	require.True(t, present)

	// The decoder's map has no order to preserve, so fields come out
	// ascending.
	assert.Equal(t, `{"a":2,"m":3,"z":1}`, v.String())
}

func TestParseArrayOrderPreserved(t *testing.T) {
	v, present, err := Parse(`[3,1,2]`)
	require.NoError(t, err)
	require.True(t, present)
	assert.Equal(t, `[3,1,2]`, v.String())
}

func TestParseDuplicateKeysLastWins(t *testing.T) {
	v, present, err := Parse(`{"a":1,"a":2}`)
	require.NoError(t, err)
	require.True(t, present)

	got, ok := v.Lookup("a")
	require.True(t, ok)
	assert.Equal(t, 2.0, got.Number())
}

func TestParseInvalid(t *testing.T) {
	_, present, err := Parse(`{"a":`)
	assert.False(t, present)

	var perr *ParseError
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, ParseErrorInvalid, perr.Kind)
}

func TestParseTrailingData(t *testing.T) {
	_, present, err := Parse(`{} {}`)
	assert.False(t, present)

	var perr *ParseError
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, ParseErrorTrailing, perr.Kind)
}

func TestParseNumberOutOfRange(t *testing.T) {
	_, present, err := Parse(`1e999`)
	assert.False(t, present)

	var perr *ParseError
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, ParseErrorNumber, perr.Kind)
}

func TestParseNested(t *testing.T) {
	v, present, err := Parse(`{"items":[{"id":2},{"id":1}],"meta":{"n":0}}`)
	require.NoError(t, err)
	require.True(t, present)

	items, ok := v.Lookup("items")
	require.True(t, ok)
	assert.Equal(t, 2, items.Len())
	// Array order is preserved at parse time; only canonicalization sorts.
	assert.Equal(t, `[{"id":2},{"id":1}]`, items.String())
}
