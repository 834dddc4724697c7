// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/jcmp/jcmp/internal/cacheutil"
	"github.com/jcmp/jcmp/internal/canon"
	"github.com/jcmp/jcmp/internal/differ"
	"github.com/jcmp/jcmp/internal/meta"
	"github.com/jcmp/jcmp/internal/output"
	"github.com/jcmp/jcmp/internal/score"
)

// dqCommandAction is the action handler for the "dq" subcommand. It computes
// the order-insensitive structural diff of the two inputs and emits one row
// per difference, addressed by path.
func dqCommandAction(ctx context.Context, cmd *cli.Command) error {
	runner := &CompareActionRunner{
		CommandName: "dq",
		NumInputs:   2,
		RunFn:       dqRun,
	}
	return runner.Run(ctx, cmd)
}

func dqRun(ctx context.Context, cmd *cli.Command, in []Input) error {
	a, b := in[0], in[1]

	// Positional mode sidesteps the multiset semantics entirely and reports
	// index-by-index changes instead.
	if cmd.Bool("ordered") {
		return differ.OrderedDiff(os.Stdout, a.Raw, b.Raw, cmd.Bool("color"))
	}

	maxLen := cmd.Int("max-value-len")
	key := cacheutil.ResultKey(a.Raw, b.Raw, resultCacheOpts(cmd, "dq"))

	var rows []output.Row
	if !readCachedResult("dq", key, &rows) {
		memo := canon.NewMemo()
		res, err := diffInputs(memo, a, b)
		if err != nil {
			return err
		}
		res.SortByPath()
		rows = output.Rows(res, maxLen)
		writeCachedResult("dq", key, rows)
	}

	if cmd.Bool("stats") {
		memo := canon.NewMemo()
		stats, _, _, _, err := score.Collect(memo, a.Value, b.Value)
		if err != nil {
			return err
		}
		cmd.Metadata["footer"] = fmt.Sprintf(
			"only left: %d  only right: %d  modified: %d  similarity: %.4f",
			stats.OnlyInA, stats.OnlyInB, stats.Modified, stats.Similarity)
	}

	output.Spit(rows, cmd, os.Stdout)
	return nil
}

// diffInputs handles the absent-document edge before delegating to the
// differ: an empty input is a missing document, so the entire other side is
// reported at the root rather than failing to parse.
func diffInputs(m *canon.Memo, a, b Input) (*differ.Result, error) {
	switch {
	case !a.Present && !b.Present:
		return &differ.Result{}, nil
	case !a.Present:
		return &differ.Result{
			OnlyInB: []differ.Entry{{Path: differ.RootPath, Value: b.Value, Count: 1}},
		}, nil
	case !b.Present:
		return &differ.Result{
			OnlyInA: []differ.Entry{{Path: differ.RootPath, Value: a.Value, Count: 1}},
		}, nil
	}
	return differ.DiffMemo(m, a.Value, b.Value)
}

// dqCommandBuilder constructs the cli.Command for "dq", wiring metadata,
// flags, and action handlers.
func dqCommandBuilder(meta meta.Meta) *cli.Command {
	return (&CompareCommandBuilder{
		Name:      "dq",
		Usage:     "difference query",
		UsageText: "jcmp dq LEFT RIGHT [options]",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "ordered",
				Usage: "positional line diff instead of order-insensitive rows",
				Value: false,
			},
			&cli.BoolFlag{
				Name:  "stats",
				Usage: "append a summary footer to text output",
				Value: false,
			},
		},
		Action: dqCommandAction,
		Meta:   meta,
	}).Build()
}
