// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/jcmp/jcmp/internal/meta"
)

// CompareCommandBuilder constructs a cli.Command for comparison subcommands
// (dq, cq, eq, nq) using a consistent pattern. It accepts the command name,
// usage text, optional UsageText, custom flags, the action handler, and meta.
// The builder automatically wires metadata, adds the tldr flag, applies
// global flags, and sets up validators.
type CompareCommandBuilder struct {
	Name      string
	Usage     string
	UsageText string
	Flags     []cli.Flag
	Action    func(context.Context, *cli.Command) error
	Meta      meta.Meta
}

// Build returns a configured cli.Command from the builder.
func (ccb *CompareCommandBuilder) Build() *cli.Command {
	return &cli.Command{
		Name:      ccb.Name,
		Usage:     ccb.Usage,
		UsageText: ccb.UsageText,
		Metadata: map[string]any{
			"meta": ccb.Meta,
		},
		Flags: append(ccb.Flags, append([]cli.Flag{
			tldrFlag,
		}, NewGlobalFlags(ccb.Name, ccb.Meta.Config.Source)...)...),
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			return ctx, GlobalFlagsValidator(ctx, c)
		},
		Action: ccb.Action,
	}
}
