// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package matcher computes the order-insensitive intersection of two value
// trees: the structure and values present in both sides, with array elements
// matched as multisets so duplicate counts are honored.
package matcher
