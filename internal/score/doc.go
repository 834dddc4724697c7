// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package score derives a scalar similarity for a pair of documents from
// their canonical serializations, and collects summary statistics for a full
// comparison run.
package score
