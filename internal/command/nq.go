// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"
	"os"

	"github.com/goccy/go-json"
	"github.com/urfave/cli/v3"

	"github.com/jcmp/jcmp/internal/canon"
	"github.com/jcmp/jcmp/internal/meta"
)

// nqCommandAction is the action handler for the "nq" subcommand. It rewrites
// a single document into canonical form: object keys sorted, array elements
// ordered by their canonical serialization.
func nqCommandAction(ctx context.Context, cmd *cli.Command) error {
	runner := &CompareActionRunner{
		CommandName: "nq",
		NumInputs:   1,
		RunFn:       nqRun,
	}
	return runner.Run(ctx, cmd)
}

func nqRun(ctx context.Context, cmd *cli.Command, in []Input) error {
	doc := in[0]
	if !doc.Present {
		return fmt.Errorf("%s is empty", doc.Name)
	}

	cv, err := canon.Canonicalize(doc.Value)
	if err != nil {
		return err
	}

	if cmd.Bool("compact") {
		fmt.Fprintln(os.Stdout, cv.String())
		return nil
	}

	out, err := json.MarshalIndent(cv.Interface(), "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(os.Stdout, string(out))
	return nil
}

// nqCommandBuilder constructs the cli.Command for "nq", wiring metadata,
// flags, and action handlers.
func nqCommandBuilder(meta meta.Meta) *cli.Command {
	return (&CompareCommandBuilder{
		Name:      "nq",
		Usage:     "normalize query",
		UsageText: "jcmp nq INPUT [options]",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "compact",
				Usage: "emit the canonical form on one line",
				Value: false,
			},
		},
		Action: nqCommandAction,
		Meta:   meta,
	}).Build()
}
