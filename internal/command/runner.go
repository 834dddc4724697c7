// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"

	"github.com/apex/log"
	"github.com/urfave/cli/v3"

	"github.com/jcmp/jcmp/internal/config"
	"github.com/jcmp/jcmp/internal/util"
	"github.com/jcmp/jcmp/internal/value"
)

// Input is a fully loaded comparison input: the raw document bytes (after any
// --select drilling) and its parsed form. Present is false when the raw
// document was empty or whitespace only.
type Input struct {
	Name    string
	Raw     []byte
	Value   value.Value
	Present bool
}

// CompareActionRunner encapsulates the common action pattern for the
// comparison subcommands. It handles meta retrieval, short-circuit checks,
// config namespacing, and input loading/parsing, with the command-specific
// work provided by RunFn.
type CompareActionRunner struct {
	CommandName string
	NumInputs   int
	RunFn       func(context.Context, *cli.Command, []Input) error
}

// Run executes the action with the provided context and command.
func (car *CompareActionRunner) Run(ctx context.Context, cmd *cli.Command) error {
	// Step 1: GetMeta + debug.
	m := GetMeta(cmd)
	log.Debugf("Executing action for %v", m.Args)

	// Step 2: Short-circuit checks.
	if ShortCircuitTLDR(ctx, cmd, car.CommandName) {
		return nil
	}

	config.Config.Namespace = car.CommandName

	// Step 3: Resolve positional input paths.
	paths := cmd.Args().Slice()
	if len(paths) < car.NumInputs {
		return fmt.Errorf("%s requires %d input(s), got %d (see --help)",
			car.CommandName, car.NumInputs, len(paths))
	}
	paths = paths[:car.NumInputs]

	// Step 4: Load the documents. Pair loading enforces the single-stdin
	// rule for two-input commands.
	sel := cmd.String("select")
	var raws [][]byte
	if car.NumInputs == 2 {
		a, b, err := util.LoadPair(paths[0], paths[1], sel)
		if err != nil {
			return err
		}
		raws = [][]byte{a, b}
	} else {
		for _, p := range paths {
			raw, err := util.LoadInput(p, sel)
			if err != nil {
				return err
			}
			raws = append(raws, raw)
		}
	}

	// Step 5: Parse each input.
	inputs := make([]Input, 0, len(paths))
	for i, p := range paths {
		v, present, err := value.Parse(string(raws[i]))
		if err != nil {
			return fmt.Errorf("parsing %s: %w", p, err)
		}
		inputs = append(inputs, Input{Name: p, Raw: raws[i], Value: v, Present: present})
	}

	// Step 6: Command-specific work.
	return car.RunFn(ctx, cmd, inputs)
}
