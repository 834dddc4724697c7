// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package output

import (
	"fmt"

	"github.com/jcmp/jcmp/internal/differ"
	"github.com/jcmp/jcmp/internal/value"
)

// Row statuses. These are the only values the Status column carries.
const (
	StatusOnlyLeft  = "OnlyLeft"
	StatusOnlyRight = "OnlyRight"
	StatusModified  = "Modified"
)

// DefaultMaxValueLen caps rendered values in table cells. Full values remain
// available through the json/yaml output modes.
const DefaultMaxValueLen = 100

// Row is the flat record shape handed to renderers: one line of the
// differences table. Count carries array multiplicity (1 otherwise); the
// rendered Path already includes the "(×N)" suffix for display.
type Row struct {
	Path   string `json:"path" yaml:"path"`
	Left   string `json:"left" yaml:"left"`
	Right  string `json:"right" yaml:"right"`
	Status string `json:"status" yaml:"status"`
	Count  int    `json:"count" yaml:"count"`
}

// Rows flattens a diff result into display records: only-left entries first,
// then only-right, then modified, each group in the differ's path order.
func Rows(res *differ.Result, maxValueLen int) []Row {
	rows := make([]Row, 0, res.Len())

	for _, e := range res.OnlyInA {
		rows = append(rows, Row{
			Path:   renderPath(e.Path, e.Count),
			Left:   RenderValue(e.Value, maxValueLen),
			Status: StatusOnlyLeft,
			Count:  e.Count,
		})
	}
	for _, e := range res.OnlyInB {
		rows = append(rows, Row{
			Path:   renderPath(e.Path, e.Count),
			Right:  RenderValue(e.Value, maxValueLen),
			Status: StatusOnlyRight,
			Count:  e.Count,
		})
	}
	for _, c := range res.Modified {
		rows = append(rows, Row{
			Path:   c.Path,
			Left:   RenderValue(c.A, maxValueLen),
			Right:  RenderValue(c.B, maxValueLen),
			Status: StatusModified,
			Count:  1,
		})
	}

	return rows
}

// RenderValue renders a value as compact JSON truncated for table display.
func RenderValue(v value.Value, maxLen int) string {
	if maxLen <= 0 {
		maxLen = DefaultMaxValueLen
	}
	s := v.String()
	if len(s) > maxLen {
		return s[:maxLen] + "..."
	}
	return s
}

func renderPath(path string, count int) string {
	if count > 1 {
		return fmt.Sprintf("%s (×%d)", path, count)
	}
	return path
}
