// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package output

import (
	"sort"
	"strings"
)

// SortRows orders rows by a comma-separated field spec. Fields are path,
// left, right, status and count; a leading "-" reverses, a leading "!" makes
// the string comparison case sensitive. An empty spec leaves the differ's
// grouping untouched.
func SortRows(rows []Row, spec string) {
	if spec == "" {
		return
	}

	fields := strings.Split(spec, ",")

	sort.SliceStable(rows, func(one, two int) bool {

		for _, field := range fields {
			ascending := true
			if strings.HasPrefix(field, "-") {
				field = strings.TrimPrefix(field, "-")
				ascending = false
			}

			caseSensitive := false
			if strings.HasPrefix(field, "!") {
				field = strings.TrimPrefix(field, "!")
				caseSensitive = true
			}

			if field == "count" {
				if rows[one].Count != rows[two].Count {
					if ascending {
						return rows[one].Count < rows[two].Count
					}
					return rows[one].Count > rows[two].Count
				}
				continue
			}

			oneStr := fieldValue(rows[one], field)
			twoStr := fieldValue(rows[two], field)

			if !caseSensitive {
				oneStr = strings.ToLower(oneStr)
				twoStr = strings.ToLower(twoStr)
			}

			if oneStr != twoStr {
				if ascending {
					return oneStr < twoStr
				}
				return oneStr > twoStr
			}

		}
		return false
	})
}

func fieldValue(row Row, field string) string {
	switch field {
	case "path":
		return row.Path
	case "left":
		return row.Left
	case "right":
		return row.Right
	case "status":
		return row.Status
	default:
		return ""
	}
}
