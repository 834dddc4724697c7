// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package value

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	json "github.com/goccy/go-json"
)

// ParseErrorKind classifies parse failures.
type ParseErrorKind int

const (
	// ParseErrorInvalid indicates malformed JSON.
	ParseErrorInvalid ParseErrorKind = iota
	// ParseErrorTrailing indicates extra data after the first JSON value.
	ParseErrorTrailing
	// ParseErrorNumber indicates a numeric literal outside the float64 range.
	ParseErrorNumber
)

// String returns a short name for the kind.
func (k ParseErrorKind) String() string {
	switch k {
	case ParseErrorInvalid:
		return "invalid"
	case ParseErrorTrailing:
		return "trailing"
	case ParseErrorNumber:
		return "number"
	default:
		return "unknown"
	}
}

// ParseError is the only error surface of the parsing boundary. The
// comparison core itself never raises it; it requires already-parsed Values.
type ParseError struct {
	Kind ParseErrorKind
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid JSON (%s): %v", e.Kind, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Parse decodes a JSON document into a Value. Empty or whitespace-only input
// represents absence, not an error: Parse returns ok=false and a nil error.
// Any other failure is reported as a *ParseError.
func Parse(text string) (Value, bool, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return Value{}, false, nil
	}

	dec := json.NewDecoder(strings.NewReader(trimmed))
	dec.UseNumber()

	var raw interface{}
	if err := dec.Decode(&raw); err != nil {
		// The decoder rejects literals like 1e999 itself, so range failures
		// must be classified here as well as in fromDecoded.
		kind := ParseErrorInvalid
		if errors.Is(err, strconv.ErrRange) || strings.Contains(err.Error(), "out of range") {
			kind = ParseErrorNumber
		}
		return Value{}, false, &ParseError{Kind: kind, Err: err}
	}

	// Anything left over beyond the first value is rejected, the same way a
	// strict single-document parser would.
	if dec.More() {
		return Value{}, false, &ParseError{
			Kind: ParseErrorTrailing,
			Err:  fmt.Errorf("multiple JSON values at the root"),
		}
	}

	v, err := fromDecoded(raw)
	if err != nil {
		return Value{}, false, err
	}
	return v, true, nil
}

// fromDecoded converts the decoder's generic representation into a Value.
// Object keys are emitted in ascending order since the decoder map carries no
// insertion order to preserve.
func fromDecoded(raw interface{}) (Value, error) {
	switch t := raw.(type) {
	case nil:
		return Null(), nil
	case bool:
		return Bool(t), nil
	case string:
		return String(t), nil
	case json.Number:
		f, err := t.Float64()
		if err != nil {
			return Value{}, &ParseError{Kind: ParseErrorNumber, Err: err}
		}
		return Number(f), nil
	case float64:
		return Number(t), nil
	case []interface{}:
		elems := make([]Value, len(t))
		for i, e := range t {
			v, err := fromDecoded(e)
			if err != nil {
				return Value{}, err
			}
			elems[i] = v
		}
		return Array(elems...), nil
	case map[string]interface{}:
		keys := make([]string, 0, len(t))
		for k := range t {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		fields := make([]Field, len(keys))
		for i, k := range keys {
			v, err := fromDecoded(t[k])
			if err != nil {
				return Value{}, err
			}
			fields[i] = Field{Key: k, Value: v}
		}
		return Object(fields...), nil
	default:
		return Value{}, &ParseError{
			Kind: ParseErrorInvalid,
			Err:  fmt.Errorf("unsupported decoded type %T", raw),
		}
	}
}
