// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package value defines the tagged tree type every comparison component
// operates on, plus the parsing boundary that produces it from JSON text.
//
// A Value is one of null, bool, number, string, array, or object. Objects
// keep fields in insertion order; arrays keep elements in input order. All
// comparison semantics in the sibling packages are defined over canonical
// forms, never over the stored order.
package value
