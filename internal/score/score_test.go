// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

// no-cloc
package score

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcmp/jcmp/internal/canon"
	"github.com/jcmp/jcmp/internal/value"
)

func mustParse(t *testing.T, text string) value.Value {
	t.Helper()
	v, present, err := value.Parse(text)
	require.NoError(t, err)
	require.True(t, present)
	return v
}

func TestSimilarityEquivalentIsExactlyOne(t *testing.T) {
	tests := []struct {
		name string
		a    string
		b    string
	}{
		{name: "identical", a: `{"a":1,"b":2}`, b: `{"a":1,"b":2}`},
		{name: "reordered keys", a: `{"a":1,"b":2}`, b: `{"b":2,"a":1}`},
		{name: "reordered array", a: `[1,2,3]`, b: `[3,2,1]`},
		{name: "numeric forms", a: `1.0`, b: `1`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sim, err := Similarity(mustParse(t, tt.a), mustParse(t, tt.b))
			require.NoError(t, err)
			assert.Equal(t, 1.0, sim)
		})
	}
}

func TestSimilaritySymmetry(t *testing.T) {
	a := mustParse(t, `{"a":1,"b":[1,2,3],"c":"hello"}`)
	b := mustParse(t, `{"a":2,"b":[1,2],"d":"world"}`)

	ab, err := Similarity(a, b)
	require.NoError(t, err)
	ba, err := Similarity(b, a)
	require.NoError(t, err)

	assert.Equal(t, ab, ba)
}

func TestSimilarityRanges(t *testing.T) {
	near, err := Similarity(
		mustParse(t, `{"name":"alice","age":30,"city":"ny"}`),
		mustParse(t, `{"name":"alice","age":31,"city":"ny"}`),
	)
	require.NoError(t, err)

	far, err := Similarity(
		mustParse(t, `{"name":"alice","age":30,"city":"ny"}`),
		mustParse(t, `[true,false,null]`),
	)
	require.NoError(t, err)

	assert.Greater(t, near, 0.0)
	assert.Less(t, near, 1.0)
	assert.Less(t, far, near)
	assert.GreaterOrEqual(t, far, 0.0)
}

func TestBigrams(t *testing.T) {
	assert.Empty(t, bigrams(""))
	assert.Equal(t, map[string]struct{}{"a": {}}, bigrams("a"))
	assert.Equal(t, map[string]struct{}{"ab": {}, "bc": {}}, bigrams("abc"))
	// Repeated windows collapse.
	assert.Len(t, bigrams("aaaa"), 1)
}

func TestCollect(t *testing.T) {
	m := canon.NewMemo()
	a := mustParse(t, `{"a":1,"b":2,"c":[1,2,2]}`)
	b := mustParse(t, `{"a":1,"b":3,"c":[2,2,4],"d":5}`)

	st, res, common, ok, err := Collect(m, a, b)
	require.NoError(t, err)

	assert.Equal(t, 1, st.OnlyInA)  // $.c[] excess 1
	assert.Equal(t, 2, st.OnlyInB)  // $.d and $.c[] excess 4
	assert.Equal(t, 1, st.Modified) // $.b
	assert.Equal(t, res.Len(), st.OnlyInA+st.OnlyInB+st.Modified)

	require.True(t, ok)
	// Shared: {"a":1,"c":[2,2]} -> 1 object + a + (2 elems + 2 scalars).
	assert.Equal(t, `{"a":1,"c":[2,2]}`, common.String())
	assert.Equal(t, 6, st.Common)

	assert.Greater(t, st.Similarity, 0.0)
	assert.Less(t, st.Similarity, 1.0)
	assert.False(t, st.Equivalent())

	assert.Equal(t, len(`{"a":1,"b":2,"c":[1,2,2]}`), st.LeftBytes)
	assert.Greater(t, st.RightBytes, 0)
}

func TestCollectEquivalent(t *testing.T) {
	m := canon.NewMemo()
	a := mustParse(t, `{"x":[3,1,2]}`)
	b := mustParse(t, `{"x":[1,2,3]}`)

	st, res, _, ok, err := Collect(m, a, b)
	require.NoError(t, err)

	assert.True(t, res.Empty())
	assert.True(t, st.Equivalent())
	assert.Equal(t, 1.0, st.Similarity)
	require.True(t, ok)
	assert.Equal(t, st.LeftBytes, st.RightBytes)
}

func TestStatsSizeRendering(t *testing.T) {
	st := Stats{LeftBytes: 512, RightBytes: 2048}
	assert.Equal(t, "512 B", st.LeftSize())
	assert.Equal(t, "2.0 kB", st.RightSize())
}
