// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package util

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jcmp/jcmp/internal/driller"
	"github.com/jcmp/jcmp/internal/log"
)

// Stdin is the reader used when an input path is "-". Tests swap it out.
var Stdin io.Reader = os.Stdin

// ReadInput reads a JSON document from path, or from stdin when path is "-".
// At most one input per invocation may be "-".
func ReadInput(path string) ([]byte, error) {
	if path == "-" {
		data, err := io.ReadAll(Stdin)
		if err != nil {
			return nil, fmt.Errorf("reading stdin: %w", err)
		}
		return data, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return data, nil
}

// LoadInput reads a single input and optionally drills it down to the
// subtree at sel. A sel of "" selects the whole document.
func LoadInput(path, sel string) ([]byte, error) {
	doc, err := ReadInput(path)
	if err != nil {
		return nil, err
	}
	if sel = strings.TrimSpace(sel); sel != "" {
		log.Debugf("selecting %q from %s", sel, path)
		return applySelect(doc, sel, path)
	}
	return doc, nil
}

// LoadPair reads the left and right inputs and optionally drills both down to
// the subtree at sel before comparison. A sel of "" selects whole documents.
func LoadPair(left, right, sel string) ([]byte, []byte, error) {
	if left == "-" && right == "-" {
		return nil, nil, fmt.Errorf("only one input may be read from stdin")
	}

	a, err := LoadInput(left, sel)
	if err != nil {
		return nil, nil, err
	}
	b, err := LoadInput(right, sel)
	if err != nil {
		return nil, nil, err
	}

	return a, b, nil
}

func applySelect(doc []byte, sel, name string) ([]byte, error) {
	sub, ok := driller.Select(doc, sel)
	if !ok {
		return nil, fmt.Errorf("path %q not found in %s", sel, name)
	}
	return sub, nil
}
