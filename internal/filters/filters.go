// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package filters

import (
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/apex/log"
)

// filterRegex splits one expression into key, optional (possibly negated)
// operator and target. Operators are = ^ ~ < > @ /. A bare term with no
// operator is free text: "items", "status=Modified", "path^$.meta".
var filterRegex = regexp.MustCompile(`^([^!?=^~<>@/]*)(!?[=^~<>@/])?(.*)$`)

// Filter is one parsed --filter expression. Without an operand it is a
// free-text term matched against every column.
type Filter struct {
	Key     string `yaml:"key" json:"Key"`
	Negate  bool   `yaml:"negate" json:"Negate"`
	Operand string `yaml:"operand" json:"Operand"`
	Value   string `yaml:"value" json:"Value"`
}

// FreeText reports whether this filter is a bare search term rather than a
// column expression.
func (f Filter) FreeText() bool { return f.Operand == "" }

// BuildFilters parses a delimiter-separated filter spec. The delimiter is
// "," unless JCMP_FILTER_DELIM overrides it for values that contain commas.
// Malformed expressions are logged and skipped.
func BuildFilters(spec string) []Filter {
	//nolint:prealloc
	var filters []Filter
	if spec == "" {
		return filters
	}

	delim := ","
	if d, ok := os.LookupEnv("JCMP_FILTER_DELIM"); ok {
		delim = d
	}

	for _, expr := range strings.Split(spec, delim) {
		expr = strings.TrimSpace(expr)
		if expr == "" {
			continue
		}

		parts := filterRegex.FindStringSubmatch(expr)
		if parts == nil {
			log.Error("invalid filter: " + expr)
			continue
		}

		key := strings.TrimSpace(parts[1])
		if key == "" {
			log.Error("invalid filter: empty key in " + expr)
			continue
		}

		operand, negate := strings.CutPrefix(parts[2], "!")

		filters = append(filters, Filter{
			Key:     key,
			Negate:  negate,
			Operand: operand,
			Value:   parts[3],
		})
	}

	return filters
}

// Apply returns the rows matching every filter in the spec. The get callback
// resolves a column key to its string value for a row; the special key "*"
// must return the row's full searchable text, which free-text terms are
// matched against case-insensitively.
func Apply[T any](rows []T, spec string, get func(T, string) (string, bool)) []T {
	filters := BuildFilters(spec)
	if len(filters) == 0 {
		return rows
	}

	//nolint:prealloc
	var filtered []T
	for _, row := range rows {
		if matches(row, filters, get) {
			filtered = append(filtered, row)
		}
	}
	return filtered
}

// matches reports whether the row passes every filter.
func matches[T any](row T, filters []Filter, get func(T, string) (string, bool)) bool {
	for _, filter := range filters {
		if filter.FreeText() {
			all, _ := get(row, "*")
			found := strings.Contains(strings.ToLower(all), strings.ToLower(filter.Key))
			if found == filter.Negate {
				return false
			}
			continue
		}

		value, ok := get(row, filter.Key)
		if !ok {
			log.Error("filter key not found: " + filter.Key)
			continue
		}

		// Numeric semantics when both sides parse as numbers, string
		// semantics otherwise.
		if num, err := strconv.ParseFloat(strings.TrimSpace(value), 64); err == nil {
			if tgt, err := strconv.ParseFloat(strings.TrimSpace(filter.Value), 64); err == nil {
				if !checkNumericOperand(num, tgt, filter) {
					return false
				}
				continue
			}
		}

		if !checkStringOperand(value, filter) {
			return false
		}
	}

	return true
}

// checkNumericOperand compares numerically. != arrives as Negate + "=".
func checkNumericOperand(value, tgt float64, filter Filter) bool {
	switch filter.Operand {
	case "=":
		return (value == tgt) == !filter.Negate
	case ">":
		return (value > tgt) == !filter.Negate
	case "<":
		return (value < tgt) == !filter.Negate
	default:
		log.Error("unsupported numeric operand: " + filter.Operand)
		return false
	}
}

// checkStringOperand compares lexically per the operand.
func checkStringOperand(value string, filter Filter) bool {
	switch filter.Operand {
	case "=":
		return value == filter.Value == !filter.Negate
	case "~":
		return strings.EqualFold(value, filter.Value) == !filter.Negate
	case "^":
		return strings.HasPrefix(value, filter.Value) == !filter.Negate
	case ">":
		return value > filter.Value == !filter.Negate
	case "<":
		return value < filter.Value == !filter.Negate
	case "@":
		return strings.Contains(value, filter.Value) == !filter.Negate
	case "/":
		matched, err := regexp.MatchString(filter.Value, value)
		if err != nil {
			log.Error("invalid regex: " + filter.Value)
			return false
		}
		return matched == !filter.Negate
	default:
		log.Error("unsupported filtering operand: " + filter.Operand)
		return false
	}
}
