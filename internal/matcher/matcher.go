// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package matcher

import (
	"github.com/jcmp/jcmp/internal/canon"
	"github.com/jcmp/jcmp/internal/value"
)

// Intersect computes the deepest common structure and values of a and b under
// order-insensitive equality. The boolean result is false when nothing is
// shared (absence), mirroring the distinction between "empty" and "no common
// structure at all".
//
// For objects the result holds the shared keys (ascending) whose recursive
// intersections are non-absent. For arrays the result is the multiset
// intersection: each element occurrence is consumed once per match, and the
// emitted elements are B's originals in B's relative order. Scalars and
// mixed-kind pairs intersect to the value itself iff order-equivalent.
func Intersect(a, b value.Value) (value.Value, bool, error) {
	return IntersectMemo(canon.NewMemo(), a, b)
}

// IntersectMemo is Intersect with a caller-owned canonicalization memo, for
// use inside a comparison session that also runs the differ and scorer.
func IntersectMemo(m *canon.Memo, a, b value.Value) (value.Value, bool, error) {
	return intersect(m, a, b, 0)
}

func intersect(m *canon.Memo, a, b value.Value, depth int) (value.Value, bool, error) {
	if depth > m.MaxDepth {
		return value.Value{}, false, canon.ErrDepthExceeded
	}

	if a.Kind() == value.KindObject && b.Kind() == value.KindObject {
		var fields []value.Field
		for _, k := range a.Keys() {
			av, _ := a.Lookup(k)
			bv, ok := b.Lookup(k)
			if !ok {
				continue
			}
			sub, present, err := intersect(m, av, bv, depth+1)
			if err != nil {
				return value.Value{}, false, err
			}
			if present {
				fields = append(fields, value.F(k, sub))
			}
		}
		if len(fields) == 0 {
			return value.Value{}, false, nil
		}
		return value.Object(fields...), true, nil
	}

	if a.Kind() == value.KindArray && b.Kind() == value.KindArray {
		// Remaining occurrence counts of A's elements, keyed by canonical
		// fingerprint.
		remaining := make(map[string]int, len(a.Elems()))
		for _, e := range a.Elems() {
			fp, err := m.Fingerprint(e)
			if err != nil {
				return value.Value{}, false, err
			}
			remaining[fp]++
		}

		var common []value.Value
		for _, e := range b.Elems() {
			fp, err := m.Fingerprint(e)
			if err != nil {
				return value.Value{}, false, err
			}
			if remaining[fp] > 0 {
				remaining[fp]--
				// Emit B's original element, not its canonical form.
				common = append(common, e)
			}
		}
		if len(common) == 0 {
			return value.Value{}, false, nil
		}
		return value.Array(common...), true, nil
	}

	// Scalars or differing kinds.
	eq, err := m.OrderEquivalent(a, b)
	if err != nil {
		return value.Value{}, false, err
	}
	if eq {
		return a, true, nil
	}
	return value.Value{}, false, nil
}

// CountNodes counts the elements of a tree the way the comparison summary
// reports "common" size: one per object (plus its values), the element count
// of each array plus nested contributions, one per scalar.
func CountNodes(v value.Value) int {
	switch v.Kind() {
	case value.KindObject:
		n := 1
		for _, f := range v.Fields() {
			n += CountNodes(f.Value)
		}
		return n
	case value.KindArray:
		n := len(v.Elems())
		for _, e := range v.Elems() {
			n += CountNodes(e)
		}
		return n
	default:
		return 1
	}
}
