// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

// no-cloc
package canon

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcmp/jcmp/internal/value"
)

func mustParse(t *testing.T, text string) value.Value {
	t.Helper()
	v, present, err := value.Parse(text)
	require.NoError(t, err)
	require.True(t, present)
	return v
}

func TestCanonicalizeSortsObjectKeys(t *testing.T) {
	v := value.Object(
		value.F("z", value.Number(1)),
		value.F("a", value.Number(2)),
	)

	cv, err := Canonicalize(v)
	require.NoError(t, err)
	assert.Equal(t, `{"a":2,"z":1}`, cv.String())
}

func TestCanonicalizeSortsArraysBySerializedForm(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{name: "numbers sort lexically by serialization", text: `[3,1,20]`, want: `[1,20,3]`},
		{name: "strings", text: `["b","a","c"]`, want: `["a","b","c"]`},
		{name: "mixed kinds", text: `[true,"a",1]`, want: `["a",1,true]`},
		{
			name: "objects sorted after inner canonicalization",
			text: `[{"b":2,"a":1},{"a":0}]`,
			want: `[{"a":0},{"a":1,"b":2}]`,
		},
		{
			name: "nested arrays",
			text: `[[2,1],[1,2]]`,
			want: `[[1,2],[1,2]]`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cv, err := Canonicalize(mustParse(t, tt.text))
			require.NoError(t, err)
			assert.Equal(t, tt.want, cv.String())
		})
	}
}

func TestCanonicalizeScalarsUnchanged(t *testing.T) {
	for _, text := range []string{`null`, `true`, `1.5`, `"x"`} {
		v := mustParse(t, text)
		cv, err := Canonicalize(v)
		require.NoError(t, err)
		assert.Equal(t, text, cv.String())
	}
}

func TestCanonicalizeIdempotent(t *testing.T) {
	v := mustParse(t, `{"b":[{"y":2,"x":1},{"a":[3,1,2]}],"a":null}`)

	once, err := Canonicalize(v)
	require.NoError(t, err)
	twice, err := Canonicalize(once)
	require.NoError(t, err)

	assert.Equal(t, once.String(), twice.String())
}

func TestFingerprintOrderIndependence(t *testing.T) {
	a := mustParse(t, `{"name":"Alice","roles":["admin","user"],"meta":{"age":30}}`)
	b := mustParse(t, `{"meta":{"age":30},"roles":["user","admin"],"name":"Alice"}`)

	fa, err := Fingerprint(a)
	require.NoError(t, err)
	fb, err := Fingerprint(b)
	require.NoError(t, err)
	assert.Equal(t, fa, fb)
}

func TestFingerprintDistinguishesCounts(t *testing.T) {
	a := mustParse(t, `[1,2,2]`)
	b := mustParse(t, `[1,2]`)

	fa, err := Fingerprint(a)
	require.NoError(t, err)
	fb, err := Fingerprint(b)
	require.NoError(t, err)
	assert.NotEqual(t, fa, fb)
}

func TestOrderEquivalent(t *testing.T) {
	tests := []struct {
		name string
		a    string
		b    string
		want bool
	}{
		{name: "identical", a: `{"a":1}`, b: `{"a":1}`, want: true},
		{name: "key order", a: `{"a":1,"b":2}`, b: `{"b":2,"a":1}`, want: true},
		{name: "array order", a: `[1,2,3]`, b: `[3,2,1]`, want: true},
		{name: "deep reorder", a: `{"x":[{"a":1,"b":2}]}`, b: `{"x":[{"b":2,"a":1}]}`, want: true},
		{name: "different values", a: `{"a":1}`, b: `{"a":2}`, want: false},
		{name: "different multiplicity", a: `[1,1,2]`, b: `[1,2,2]`, want: false},
		{name: "kind mismatch", a: `1`, b: `"1"`, want: false},
		{name: "number formatting irrelevant", a: `1.0`, b: `1`, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := OrderEquivalent(mustParse(t, tt.a), mustParse(t, tt.b))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDepthGuard(t *testing.T) {
	// Nest arrays past the cap.
	v := value.Number(1)
	for i := 0; i < 10; i++ {
		v = value.Array(v)
	}

	m := NewMemo()
	m.MaxDepth = 5

	_, err := m.Canonicalize(v)
	assert.ErrorIs(t, err, ErrDepthExceeded)

	_, err = m.Fingerprint(v)
	assert.ErrorIs(t, err, ErrDepthExceeded)
}

func TestMemoReuseAcrossOperations(t *testing.T) {
	m := NewMemo()
	a := mustParse(t, `{"k":[2,1]}`)
	b := mustParse(t, `{"k":[1,2]}`)

	eq, err := m.OrderEquivalent(a, b)
	require.NoError(t, err)
	assert.True(t, eq)

	// Same memo serves repeat fingerprints of the same content.
	fp1, err := m.Fingerprint(a)
	require.NoError(t, err)
	fp2, err := m.Fingerprint(a)
	require.NoError(t, err)
	assert.Equal(t, fp1, fp2)
}
