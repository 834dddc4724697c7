// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

// no-cloc
package util

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, []byte(content), 0o600))
	return p
}

func TestReadInputFile(t *testing.T) {
	p := writeTemp(t, "a.json", `{"x":1}`)

	data, err := ReadInput(p)
	require.NoError(t, err)
	assert.Equal(t, `{"x":1}`, string(data))
}

func TestReadInputMissingFile(t *testing.T) {
	_, err := ReadInput(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestReadInputStdin(t *testing.T) {
	orig := Stdin
	defer func() { Stdin = orig }()
	Stdin = strings.NewReader(`{"y":2}`)

	data, err := ReadInput("-")
	require.NoError(t, err)
	assert.Equal(t, `{"y":2}`, string(data))
}

func TestLoadPair(t *testing.T) {
	left := writeTemp(t, "a.json", `{"meta":{"age":30},"name":"Alice"}`)
	right := writeTemp(t, "b.json", `{"meta":{"age":31},"name":"Alice"}`)

	a, b, err := LoadPair(left, right, "")
	require.NoError(t, err)
	assert.Contains(t, string(a), "Alice")
	assert.Contains(t, string(b), "Alice")
}

func TestLoadPairSelect(t *testing.T) {
	left := writeTemp(t, "a.json", `{"meta":{"age":30}}`)
	right := writeTemp(t, "b.json", `{"meta":{"age":31}}`)

	a, b, err := LoadPair(left, right, "meta")
	require.NoError(t, err)
	assert.Equal(t, `{"age":30}`, string(a))
	assert.Equal(t, `{"age":31}`, string(b))
}

func TestLoadPairSelectMissing(t *testing.T) {
	left := writeTemp(t, "a.json", `{"meta":{"age":30}}`)
	right := writeTemp(t, "b.json", `{"other":1}`)

	_, _, err := LoadPair(left, right, "meta")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestLoadPairDoubleStdin(t *testing.T) {
	_, _, err := LoadPair("-", "-", "")
	assert.Error(t, err)
}
