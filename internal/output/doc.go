// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package output flattens diff results into the row records renderers
// consume, and provides sorting, filtering, and emission in text, json, and
// yaml forms.
package output
