// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"
	"os"

	"github.com/goccy/go-json"
	"github.com/urfave/cli/v3"
	yamlv2 "gopkg.in/yaml.v2"

	"github.com/jcmp/jcmp/internal/matcher"
	"github.com/jcmp/jcmp/internal/meta"
)

// cqCommandAction is the action handler for the "cq" subcommand. It computes
// the multiset intersection of the two inputs and emits the common document,
// built from the right-hand side's original values.
func cqCommandAction(ctx context.Context, cmd *cli.Command) error {
	runner := &CompareActionRunner{
		CommandName: "cq",
		NumInputs:   2,
		RunFn:       cqRun,
	}
	return runner.Run(ctx, cmd)
}

func cqRun(ctx context.Context, cmd *cli.Command, in []Input) error {
	a, b := in[0], in[1]

	// An absent side shares nothing with anything, including another absent
	// side.
	if !a.Present || !b.Present {
		fmt.Fprintln(os.Stdout, "null")
		return nil
	}

	common, ok, err := matcher.Intersect(a.Value, b.Value)
	if err != nil {
		return err
	}
	if !ok {
		fmt.Fprintln(os.Stdout, "null")
		return nil
	}

	switch cmd.String("output") {
	case "json":
		out, err := json.MarshalIndent(common.Interface(), "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(os.Stdout, string(out))
	case "yaml":
		out, err := yamlv2.Marshal(common.Interface())
		if err != nil {
			return err
		}
		fmt.Fprint(os.Stdout, string(out))
	default:
		fmt.Fprintln(os.Stdout, common.String())
	}

	if cmd.Bool("count") {
		fmt.Fprintf(os.Stderr, "common nodes: %d\n", matcher.CountNodes(common))
	}
	return nil
}

// cqCommandBuilder constructs the cli.Command for "cq", wiring metadata,
// flags, and action handlers.
func cqCommandBuilder(meta meta.Meta) *cli.Command {
	return (&CompareCommandBuilder{
		Name:      "cq",
		Usage:     "common structure query",
		UsageText: "jcmp cq LEFT RIGHT [options]",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "count",
				Usage: "report the shared node count on stderr",
				Value: false,
			},
		},
		Action: cqCommandAction,
		Meta:   meta,
	}).Build()
}
