// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

// no-cloc
package driller

import (
	"embed"
	"fmt"
	"testing"

	json "github.com/goccy/go-json"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

//go:embed testdata/*.yaml
var testDataFS embed.FS

// drillerTestCase represents a single test case for TestDriller.
type drillerTestCase struct {
	Name        string                 `yaml:"name"`
	JSON        map[string]interface{} `yaml:"json"`
	Path        string                 `yaml:"path"`
	ExpectedStr string                 `yaml:"expectedStr"`
	IsNil       bool                   `yaml:"isNil"`
	IsArray     bool                   `yaml:"isArray"`
}

// loadTestData loads test data from embedded YAML files.
func loadTestData(filename string, v interface{}) error {
	data, err := testDataFS.ReadFile("testdata/" + filename)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, v)
}

func TestDriller(t *testing.T) {
	var tests []drillerTestCase
	err := loadTestData("driller_cases.yaml", &tests)
	require.NoError(t, err)

	for _, tt := range tests {
		t.Run(tt.Name, func(t *testing.T) {
			// Convert map to JSON string for Driller function.
			jsonBytes, err := json.Marshal(tt.JSON)
			require.NoError(t, err)
			result := Driller(string(jsonBytes), tt.Path)

			if tt.IsNil {
				// Result should not exist or be null
				if result.Exists() && result.Type.String() != "Null" {
					t.Errorf("Expected nil/empty result but got: %v", result.Value())
				}
				return
			}

			if !result.Exists() {
				t.Errorf("Expected result but got nil/empty")
				return
			}

			if tt.IsArray {
				assert.True(t, result.IsArray())
				return
			}

			assert.Equal(t, tt.ExpectedStr, fmt.Sprintf("%v", result.Value()))
		})
	}
}

func TestSelect(t *testing.T) {
	doc := []byte(`{"items":[{"id":1,"qty":2},{"id":2,"qty":1}],"meta":{"age":30}}`)

	tests := []struct {
		name   string
		path   string
		want   string
		wantOK bool
	}{
		{name: "empty path selects whole document", path: "", want: string(doc), wantOK: true},
		{name: "root path selects whole document", path: "$", want: string(doc), wantOK: true},
		{name: "dollar-dot prefix is stripped", path: "$.meta", want: `{"age":30}`, wantOK: true},
		{name: "nested scalar", path: "meta.age", want: `30`, wantOK: true},
		{name: "array index", path: "items[1]", want: `{"id":2,"qty":1}`, wantOK: true},
		{name: "missing path", path: "nope", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Select(doc, tt.path)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.want, string(got))
			}
		})
	}
}
