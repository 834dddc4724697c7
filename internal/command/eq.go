// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/goccy/go-json"
	"github.com/urfave/cli/v3"
	yamlv2 "gopkg.in/yaml.v2"

	"github.com/jcmp/jcmp/internal/cacheutil"
	"github.com/jcmp/jcmp/internal/canon"
	"github.com/jcmp/jcmp/internal/meta"
	"github.com/jcmp/jcmp/internal/score"
)

// ErrNotEquivalent is returned by the eq action when the two documents are
// not order-equivalent, so main can exit 1 without printing error noise.
var ErrNotEquivalent = errors.New("documents are not equivalent")

// eqCommandAction is the action handler for the "eq" subcommand. It reports
// the comparison summary (difference counts, similarity score, canonical
// sizes) and signals equivalence through the process exit code.
func eqCommandAction(ctx context.Context, cmd *cli.Command) error {
	runner := &CompareActionRunner{
		CommandName: "eq",
		NumInputs:   2,
		RunFn:       eqRun,
	}
	return runner.Run(ctx, cmd)
}

func eqRun(ctx context.Context, cmd *cli.Command, in []Input) error {
	a, b := in[0], in[1]

	key := cacheutil.ResultKey(a.Raw, b.Raw, resultCacheOpts(cmd, "eq"))

	var stats score.Stats
	if !readCachedResult("eq", key, &stats) {
		memo := canon.NewMemo()
		var err error
		stats, _, _, _, err = score.Collect(memo, a.Value, b.Value)
		if err != nil {
			return err
		}
		writeCachedResult("eq", key, stats)
	}

	if !cmd.Bool("quiet") {
		if err := emitStats(stats, cmd); err != nil {
			return err
		}
	}

	if threshold := cmd.Float("threshold"); threshold > 0 {
		if stats.Similarity < threshold {
			return ErrNotEquivalent
		}
		return nil
	}

	if !stats.Equivalent() {
		return ErrNotEquivalent
	}
	return nil
}

func emitStats(stats score.Stats, cmd *cli.Command) error {
	switch cmd.String("output") {
	case "json":
		out, err := json.MarshalIndent(stats, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(os.Stdout, string(out))
	case "yaml":
		out, err := yamlv2.Marshal(stats)
		if err != nil {
			return err
		}
		fmt.Fprint(os.Stdout, string(out))
	default:
		fmt.Fprintf(os.Stdout, "only left:  %d\n", stats.OnlyInA)
		fmt.Fprintf(os.Stdout, "only right: %d\n", stats.OnlyInB)
		fmt.Fprintf(os.Stdout, "modified:   %d\n", stats.Modified)
		fmt.Fprintf(os.Stdout, "common:     %d\n", stats.Common)
		fmt.Fprintf(os.Stdout, "similarity: %.4f\n", stats.Similarity)
		fmt.Fprintf(os.Stdout, "sizes:      %s / %s\n", stats.LeftSize(), stats.RightSize())
	}
	return nil
}

// eqCommandBuilder constructs the cli.Command for "eq", wiring metadata,
// flags, and action handlers.
func eqCommandBuilder(meta meta.Meta) *cli.Command {
	return (&CompareCommandBuilder{
		Name:      "eq",
		Usage:     "equivalence query",
		UsageText: "jcmp eq LEFT RIGHT [options]",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "quiet",
				Aliases: []string{"q"},
				Usage:   "suppress output, signal through the exit code only",
				Value:   false,
			},
			&cli.FloatFlag{
				Name:        "threshold",
				Usage:       "pass when similarity meets this value instead of exact equivalence",
				Value:       0,
				HideDefault: true,
			},
		},
		Action: eqCommandAction,
		Meta:   meta,
	}).Build()
}
