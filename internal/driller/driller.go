// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package driller

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"
)

// Driller resolves a dot path against a JSON document. Segments name object
// keys and may carry an array suffix: "[N]" picks an index, "[]" or "[*]"
// keeps the list, and a bare key on a single-element array unwraps it.
func Driller(jsonData string, path string) gjson.Result {
	parts := strings.Split(path, ".")
	current := gjson.Parse(jsonData)

	re := regexp.MustCompile(`^([a-zA-Z0-9_-]+)(\[(\d|\*)?\])?$`)

	for _, p := range parts {
		matches := re.FindStringSubmatch(p)
		if len(matches) == 0 {
			// Invalid path segment.
			return gjson.Result{}
		}

		key := matches[1]

		// matches[2] is the bracket pair; matches[3] the index inside it.
		// "[]" and "[*]" force the whole list through.
		wildcard := matches[2] != "" && (matches[3] == "" || matches[3] == "*")
		index := -1
		if !wildcard && matches[3] != "" {
			i, err := strconv.Atoi(matches[3])
			if err != nil {
				return gjson.Result{}
			}
			index = i
		}

		val := current.Get(key)
		if val.IsArray() && !wildcard {
			arr := val.Array()
			switch {
			case index == -1:
				// No index: unwrap a singleton, keep a longer list whole.
				if len(arr) == 1 {
					val = arr[0]
				}
			case index >= 0 && index < len(arr):
				val = arr[index]
			default:
				return gjson.Result{}
			}
		}

		current = val
	}

	return current
}

// Select drills into a raw JSON document and returns the raw JSON of the
// subtree at path, for comparing fragments of larger documents. A path of ""
// or "$" selects the whole document. The boolean result is false when the
// path does not resolve.
func Select(jsonData []byte, path string) ([]byte, bool) {
	path = strings.TrimPrefix(strings.TrimSpace(path), "$")
	path = strings.TrimPrefix(path, ".")
	if path == "" {
		return jsonData, true
	}

	result := Driller(string(jsonData), path)
	if !result.Exists() {
		return nil, false
	}
	return []byte(result.Raw), true
}
