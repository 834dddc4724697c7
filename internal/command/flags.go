// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"os/exec"

	altsrc "github.com/urfave/cli-altsrc/v3"
	yaml "github.com/urfave/cli-altsrc/v3/yaml"
	"github.com/urfave/cli/v3"

	"github.com/jcmp/jcmp/internal/output"
)

var tldrFlag *cli.BoolFlag = &cli.BoolFlag{
	Name:        "tldr",
	Usage:       "show tldr page",
	Hidden:      !pathHas("tldr"),
	HideDefault: true,
}

// NewGlobalFlags constructs the flag set shared by every comparison command.
// params[0] is the command namespace and params[1] the config file path; when
// both are present the string flags also source values from the config file.
func NewGlobalFlags(params ...string) (flags []cli.Flag) {
	outputFlag := &cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "output format",
		Value:   "text",
		Validator: func(value string) error {
			return FlagValidators(value, OutputValidator)
		},
	}

	sortFlag := &cli.StringFlag{
		Name:    "sort",
		Aliases: []string{"s"},
		Usage:   "comma-separated list of columns to sort the results by",
		Validator: func(value string) error {
			return FlagValidators(value, SortValidator)
		},
	}

	if len(params) == 2 && params[1] != "" {
		outputFlag = NameSpacedValueChainFlagFromConfigFile(params[0], params[1], outputFlag)
		sortFlag = NameSpacedValueChainFlagFromConfigFile(params[0], params[1], sortFlag)
	}

	flags = []cli.Flag{
		&cli.BoolFlag{
			Name:    "color",
			Aliases: []string{"c"},
			Usage:   "enable colored text output",
			Value:   false,
		},
		&cli.StringFlag{
			Name:    "filter",
			Aliases: []string{"f"},
			Usage:   "comma-separated list of filters to apply to results",
		},
		&cli.IntFlag{
			Name:   "max-value-len",
			Usage:  "truncate rendered values beyond this length",
			Value:  output.DefaultMaxValueLen,
			Hidden: true,
		},
		outputFlag,
		&cli.IntFlag{
			Name:   "padding",
			Usage:  "cell padding for text output",
			Value:  1,
			Hidden: true,
		},
		&cli.StringFlag{
			Name:    "select",
			Aliases: []string{"S"},
			Usage:   "dot path selecting the subtree to compare from both inputs",
			Sources: cli.NewValueSourceChain(
				cli.EnvVar("JCMP_SELECT"),
			),
		},
		sortFlag,
		&cli.BoolFlag{
			Name:    "titles",
			Aliases: []string{"t"},
			Usage:   "show titles with text output",
			Value:   false,
		},
	}

	return
}

// NameSpacedValueChainFlagFromConfigFile adds namespaced and global config file
// sources to the given flag's Sources chain.
func NameSpacedValueChainFlagFromConfigFile(ns string, path string, flag *cli.StringFlag) *cli.StringFlag {
	src := yaml.YAML(ns+"."+flag.Name, altsrc.StringSourcer(path))
	flag.Sources.Chain = append(flag.Sources.Chain, src)

	src = yaml.YAML(flag.Name, altsrc.StringSourcer(path))
	flag.Sources.Chain = append(flag.Sources.Chain, src)

	return flag
}

// pathHas checks if the given executable exists on PATH.
func pathHas(target string) bool {
	_, err := exec.LookPath(target)
	return err == nil
}
