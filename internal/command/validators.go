// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/urfave/cli/v3"
)

type FlagValidatorType func(any) error

func FlagValidators(value any, validators ...FlagValidatorType) error {
	for _, v := range validators {
		if err := v(value); err != nil {
			return err
		}
	}
	return nil
}

func GlobalFlagsValidator(ctx context.Context, c *cli.Command) error {
	return nil
}

var outputModes = []string{"text", "json", "yaml"}

func OutputValidator(value any) error {
	if s, ok := value.(string); ok && slices.Contains(outputModes, s) {
		return nil
	}
	return fmt.Errorf("must be one of %v", outputModes)
}

var sortColumns = []string{"path", "left", "right", "status", "count"}

// SortValidator checks a --sort spec: comma-separated column names, each
// optionally prefixed with "-" (descending) and "!" (case sensitive).
func SortValidator(value any) error {
	s, ok := value.(string)
	if !ok {
		return fmt.Errorf("sort columns must be one of %v", sortColumns)
	}
	if s == "" {
		return nil
	}
	for _, field := range strings.Split(s, ",") {
		field = strings.TrimPrefix(field, "-")
		field = strings.TrimPrefix(field, "!")
		if !slices.Contains(sortColumns, field) {
			return fmt.Errorf("sort columns must be one of %v", sortColumns)
		}
	}
	return nil
}
