// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package differ

import (
	"fmt"
	"io"

	json "github.com/goccy/go-json"
	"github.com/yudai/gojsondiff"
	"github.com/yudai/gojsondiff/formatter"

	"github.com/jcmp/jcmp/internal/log"
)

// OrderedDiff renders a conventional, position-sensitive diff of two raw JSON
// documents. This is an escape hatch outside jcmp's order-insensitive
// semantics: array indexes matter, key order does not (gojsondiff compares
// objects by key). Output is the ascii delta format written to w.
func OrderedDiff(w io.Writer, left, right []byte, coloring bool) error {
	log.Debugf(">> OrderedDiff()")

	if len(left) == 0 || len(right) == 0 {
		return nil
	}

	d := gojsondiff.New()
	delta, err := d.Compare(left, right)
	if err != nil {
		return fmt.Errorf("failed to compare documents: %w", err)
	}

	if !delta.Modified() {
		fmt.Fprintln(w, "The documents are identical.")
		return nil
	}

	var jdoc map[string]interface{}
	if err := json.Unmarshal(left, &jdoc); err != nil {
		return fmt.Errorf("failed to unmarshal left document: %w", err)
	}

	config := formatter.AsciiFormatterConfig{
		ShowArrayIndex: true,
		Coloring:       coloring,
	}

	f := formatter.NewAsciiFormatter(jdoc, config)
	diffString, err := f.Format(delta)
	if err != nil {
		return err
	}

	fmt.Fprintln(w, diffString)
	return nil
}
