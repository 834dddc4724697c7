// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package filters provides filtering capabilities for diff result rows.
//
// The package parses filter expressions to select subsets of rows based on
// column values. Filters are specified as key-operator-target expressions and
// can be combined using a configurable delimiter (default: comma).
//
// Operators include:
//
//   - = : exact match (supports negation with !=)
//   - ^ : prefix match (supports negation with !^)
//   - ~ : case-insensitive match (supports negation with !~)
//   - < : less than (numeric when both sides are numeric)
//   - > : greater than (numeric when both sides are numeric)
//   - @ : contains substring (supports negation with !@)
//   - / : regex match (supports negation with !/)
//
// A bare term with no operator is a free-text search matched
// case-insensitively against every column, the way the interactive search
// box works.
//
// Examples:
//
//   - "status=Modified" : rows whose status is exactly Modified
//   - "path^$.items" : rows whose path starts with "$.items"
//   - "path/\[\]$" : rows whose path ends with an array marker
//   - "count>1" : rows with a multiplicity greater than 1
//   - "alice" : rows mentioning alice anywhere
//
// Filter keys are the row column names: path, left, right, status, count.
// Unknown keys are logged and skipped so a typo narrows nothing rather than
// rejecting every row.
package filters
