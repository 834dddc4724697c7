// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package canon produces the order-insensitive canonical form of a value
// tree. Two values are considered equal throughout jcmp exactly when their
// canonical forms are structurally equal, so this package is the basis for
// equality, hashing, and multiset matching in the matcher, differ, and
// scorer.
package canon
