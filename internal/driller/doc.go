// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package driller extracts subtrees from JSON documents by dot path, used by
// the --select flag to compare fragments of larger documents.
package driller
