// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package differ computes path-addressed structural diffs between two value
// trees. Object keys are compared as sets, arrays as multisets of canonical
// forms; the coarse array semantics report "present here, absent there, with
// what multiplicity" and make no attempt at minimal-edit pairing. A separate
// ordered mode renders a conventional positional diff for callers who want
// index-sensitive output.
package differ
