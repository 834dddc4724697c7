// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

// no-cloc
package filters

import (
	"embed"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

//go:embed testdata/*.yaml
var testDataFS embed.FS

// testBuildFiltersCase represents a single test case for TestBuildFilters.
type testBuildFiltersCase struct {
	Name      string   `yaml:"name"`
	Spec      string   `yaml:"spec"`
	Delimiter string   `yaml:"delimiter"`
	Want      []Filter `yaml:"want"`
	WantCount int      `yaml:"wantCount"`
}

// testCheckStringOperandCase represents a single test case for
// TestCheckStringOperand.
type testCheckStringOperandCase struct {
	Name   string `yaml:"name"`
	Value  string `yaml:"value"`
	Filter Filter `yaml:"filter"`
	Want   bool   `yaml:"want"`
}

// testCheckNumericOperandCase represents a single test case for
// TestCheckNumericOperand.
type testCheckNumericOperandCase struct {
	Name   string  `yaml:"name"`
	Value  float64 `yaml:"value"`
	Filter Filter  `yaml:"filter"`
	Want   bool    `yaml:"want"`
}

// testApplyCase represents a single test case for TestApply.
type testApplyCase struct {
	Name      string   `yaml:"name"`
	Spec      string   `yaml:"spec"`
	WantCount int      `yaml:"wantCount"`
	WantPaths []string `yaml:"wantPaths"`
}

// loadTestData loads test data from embedded YAML files.
func loadTestData(filename string, v interface{}) error {
	data, err := testDataFS.ReadFile("testdata/" + filename)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, v)
}

func TestBuildFilters(t *testing.T) {
	var tests []testBuildFiltersCase
	require.NoError(t, loadTestData("filters_test_build_filters.yaml", &tests))

	for _, tt := range tests {
		t.Run(tt.Name, func(t *testing.T) {
			if tt.Delimiter != "" {
				t.Setenv("JCMP_FILTER_DELIM", tt.Delimiter)
			}

			got := BuildFilters(tt.Spec)
			assert.Len(t, got, tt.WantCount)
			if tt.Want != nil {
				for i, filter := range tt.Want {
					assert.Equal(t, filter.Key, got[i].Key)
					assert.Equal(t, filter.Operand, got[i].Operand)
					assert.Equal(t, filter.Value, got[i].Value)
					assert.Equal(t, filter.Negate, got[i].Negate)
				}
			}
		})
	}
}

func TestCheckStringOperand(t *testing.T) {
	var tests []testCheckStringOperandCase
	require.NoError(t, loadTestData("filters_test_check_string_operand.yaml", &tests))

	for _, tt := range tests {
		t.Run(tt.Name, func(t *testing.T) {
			got := checkStringOperand(tt.Value, tt.Filter)
			assert.Equal(t, tt.Want, got)
		})
	}
}

func TestCheckNumericOperand(t *testing.T) {
	var tests []testCheckNumericOperandCase
	require.NoError(t, loadTestData("filters_test_check_numeric_operand.yaml", &tests))

	for _, tt := range tests {
		t.Run(tt.Name, func(t *testing.T) {
			tgt, err := strconv.ParseFloat(tt.Filter.Value, 64)
			require.NoError(t, err)
			got := checkNumericOperand(tt.Value, tgt, tt.Filter)
			assert.Equal(t, tt.Want, got)
		})
	}
}

// testDiffRow mirrors the column shape the output package feeds through
// Apply, without importing it.
type testDiffRow struct {
	Path   string
	Left   string
	Right  string
	Status string
	Count  int
}

func testDiffRowGet(r testDiffRow, key string) (string, bool) {
	switch key {
	case "path":
		return r.Path, true
	case "left":
		return r.Left, true
	case "right":
		return r.Right, true
	case "status":
		return r.Status, true
	case "count":
		return strconv.Itoa(r.Count), true
	case "*":
		return strings.Join([]string{r.Path, r.Left, r.Right, r.Status}, " "), true
	}
	return "", false
}

func TestApply(t *testing.T) {
	var tests []testApplyCase
	require.NoError(t, loadTestData("filters_test_apply.yaml", &tests))

	dataset := []testDiffRow{
		{Path: "$.meta.age", Left: "30", Right: "31", Status: "Modified", Count: 1},
		{Path: "$.items[]", Left: `{"id":9}`, Right: "", Status: "OnlyLeft", Count: 2},
		{Path: "$.name", Left: `"Alice"`, Right: `"Bob"`, Status: "Modified", Count: 1},
		{Path: "$.items[].id", Left: "1", Right: "2", Status: "Modified", Count: 1},
	}

	for _, tt := range tests {
		t.Run(tt.Name, func(t *testing.T) {
			got := Apply(dataset, tt.Spec, testDiffRowGet)
			assert.Len(t, got, tt.WantCount)
			if tt.WantPaths != nil {
				var paths []string
				for _, r := range got {
					paths = append(paths, r.Path)
				}
				assert.ElementsMatch(t, tt.WantPaths, paths)
			}
		})
	}
}
