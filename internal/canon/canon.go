// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package canon

import (
	"errors"
	"sort"

	"github.com/jcmp/jcmp/internal/value"
)

// ErrDepthExceeded is returned when an input tree nests deeper than the
// configured cap. It is the only failure mode of the comparison core;
// pathological inputs surface this instead of exhausting the stack.
var ErrDepthExceeded = errors.New("maximum nesting depth exceeded")

// DefaultMaxDepth is the nesting cap applied when a Memo is created with
// NewMemo. Ordinary documents are nowhere near it.
const DefaultMaxDepth = 10000

// Memo owns the canonicalization cache for a single comparison. It maps the
// compact serialization of a subtree to its canonical fingerprint, so shared
// substructure is canonicalized once per comparison rather than once per
// operation. A Memo must not outlive the comparison that created it; there is
// deliberately no process-wide cache.
type Memo struct {
	// MaxDepth caps recursion. Values nested deeper fail with
	// ErrDepthExceeded.
	MaxDepth int

	fps map[string]string
}

// NewMemo returns a Memo with the default depth cap.
func NewMemo() *Memo {
	return &Memo{MaxDepth: DefaultMaxDepth, fps: map[string]string{}}
}

// Canonicalize produces the order-insensitive canonical form of v: object
// fields re-emitted in ascending key order, array elements canonicalized and
// then stably sorted by their canonical serialized byte form, scalars
// unchanged. The result is a pure function of v's content, independent of any
// input ordering.
func (m *Memo) Canonicalize(v value.Value) (value.Value, error) {
	return m.canonicalize(v, 0)
}

// Fingerprint returns the canonical serialization of v's canonical form. The
// fingerprint is a hashable multiset key only; callers keep a decoded
// representative alongside it so results always report original values.
func (m *Memo) Fingerprint(v value.Value) (string, error) {
	raw := v.String()
	if fp, ok := m.fps[raw]; ok {
		return fp, nil
	}
	cv, err := m.canonicalize(v, 0)
	if err != nil {
		return "", err
	}
	fp := cv.String()
	m.fps[raw] = fp
	return fp, nil
}

// OrderEquivalent reports whether a and b are equal ignoring object key order
// and array element order. This is the definition of equality used by every
// comparison operation.
func (m *Memo) OrderEquivalent(a, b value.Value) (bool, error) {
	fa, err := m.Fingerprint(a)
	if err != nil {
		return false, err
	}
	fb, err := m.Fingerprint(b)
	if err != nil {
		return false, err
	}
	return fa == fb, nil
}

func (m *Memo) canonicalize(v value.Value, depth int) (value.Value, error) {
	if depth > m.MaxDepth {
		return value.Value{}, ErrDepthExceeded
	}

	switch v.Kind() {
	case value.KindObject:
		fields := append([]value.Field(nil), v.Fields()...)
		sort.Slice(fields, func(i, j int) bool {
			return fields[i].Key < fields[j].Key
		})
		for i, f := range fields {
			cv, err := m.canonicalize(f.Value, depth+1)
			if err != nil {
				return value.Value{}, err
			}
			fields[i].Value = cv
		}
		return value.Object(fields...), nil

	case value.KindArray:
		type keyed struct {
			v  value.Value
			fp string
		}
		elems := make([]keyed, len(v.Elems()))
		for i, e := range v.Elems() {
			ce, err := m.canonicalize(e, depth+1)
			if err != nil {
				return value.Value{}, err
			}
			// The canonical form serializes to its own fingerprint, which
			// doubles as the sort key.
			elems[i] = keyed{v: ce, fp: ce.String()}
		}
		// Stable keeps equal-keyed elements in relative order. They are equal
		// values, so this only matters for not disturbing anything else.
		sort.SliceStable(elems, func(i, j int) bool {
			return elems[i].fp < elems[j].fp
		})
		out := make([]value.Value, len(elems))
		for i, e := range elems {
			out[i] = e.v
		}
		return value.Array(out...), nil

	default:
		return v, nil
	}
}

// Canonicalize is the one-shot form of Memo.Canonicalize for callers outside
// a comparison session.
func Canonicalize(v value.Value) (value.Value, error) {
	return NewMemo().Canonicalize(v)
}

// Fingerprint is the one-shot form of Memo.Fingerprint.
func Fingerprint(v value.Value) (string, error) {
	return NewMemo().Fingerprint(v)
}

// OrderEquivalent is the one-shot form of Memo.OrderEquivalent.
func OrderEquivalent(a, b value.Value) (bool, error) {
	return NewMemo().OrderEquivalent(a, b)
}
