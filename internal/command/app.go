// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"os"
	"sort"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/jcmp/jcmp/internal/config"
	"github.com/jcmp/jcmp/internal/meta"
)

func InitApp(ctx context.Context, args []string) (*cli.Command, error) {

	sd, _ := os.Getwd()

	// The arg[1] immediately following the binary (arg[0]) is the jcmp
	// subcommand and also represents the namespace key to be used when
	// retrieving config values. arg[1] could be -h/--help, so ignore it if it
	// appears to be a flag.
	var ns string
	if len(args) > 1 && !strings.HasPrefix(args[1], "-") {
		ns = args[1]
	}

	cfg, _ := config.Load() //nolint
	cfg.Namespace = ns
	config.Config.Namespace = ns

	m := meta.Meta{
		Args:        args,
		Config:      cfg,
		Context:     ctx,
		StartingDir: sd,
	}

	// Record the input positionals for commands that take them. The CLI
	// parser owns the authoritative view; this is for logging and metadata.
	var inputs []string
	for _, a := range args[min(len(args), 2):] {
		if !strings.HasPrefix(a, "-") || a == "-" {
			inputs = append(inputs, a)
		}
		if len(inputs) == 2 {
			break
		}
	}
	if len(inputs) > 0 {
		m.Left = inputs[0]
	}
	if len(inputs) > 1 {
		m.Right = inputs[1]
	}

	app := &cli.Command{
		Name:  "jcmp",
		Usage: "order-insensitive JSON comparison",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "version",
				Aliases:     []string{"v"},
				Usage:       "jcmp version info",
				HideDefault: true,
			},
		},
	}

	app.Commands = append(app.Commands,
		dqCommandBuilder(m),
		cqCommandBuilder(m),
		eqCommandBuilder(m),
		nqCommandBuilder(m),
		iqCommandBuilder(m),
		completionCommandBuilder(m),
	)

	// Make sure flags are sorted for the --help text.
	for _, cmd := range app.Commands {
		sort.Slice(cmd.Flags, func(i, j int) bool {
			return cmd.Flags[i].Names()[0] < cmd.Flags[j].Names()[0]
		})
	}

	return app, nil
}
