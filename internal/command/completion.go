// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/jcmp/jcmp/internal/meta"
)

const bashCompletionScript = `# bash completion for jcmp
# Fallback if bash-completion is not installed
if ! declare -F _get_comp_words_by_ref >/dev/null 2>&1; then
  _get_comp_words_by_ref() {
    cur=${COMP_WORDS[COMP_CWORD]}
    prev=${COMP_WORDS[COMP_CWORD-1]}
  }
fi

_jcmp()
{
    local cur prev cmd
    COMPREPLY=()
    _get_comp_words_by_ref -n : cur prev

    if [[ ${COMP_CWORD} -eq 1 ]]; then
        COMPREPLY=( $(compgen -W "dq cq eq nq iq completion --help --version" -- "$cur") )
        return 0
    fi

    cmd=${COMP_WORDS[1]}
  local common="--color -c --filter -f --output -o --select -S --sort -s --titles -t --tldr"

    case "$cmd" in
    dq)
      local opts="$common --ordered --stats"
            ;;
        cq)
      local opts="$common --count"
            ;;
        eq)
      local opts="$common --quiet -q --threshold"
            ;;
        nq)
      local opts="$common --compact"
            ;;
        iq)
            local opts="$common"
            ;;
        completion)
            local opts="bash zsh"
            COMPREPLY=( $(compgen -W "$opts" -- "$cur") )
            return 0
            ;;
        *)
            local opts="$common"
            ;;
    esac

    if [[ "$prev" == "--output" || "$prev" == "-o" ]]; then
        COMPREPLY=( $(compgen -W "text json yaml" -- "$cur") )
        return 0
    fi

  # If current token starts with '-', offer flags
  if [[ "$cur" == -* ]]; then
    COMPREPLY=( $(compgen -W "$opts" -- "$cur") )
    return 0
  fi

  # Otherwise, we're on an input positional - complete files
  COMPREPLY=( $(compgen -o default -- "$cur") )
  return 0
}

complete -F _jcmp jcmp
`

const zshCompletionScript = `#compdef jcmp

_jcmp() {
  local -a cmds
  cmds=(
    'dq:difference query'
    'cq:common structure query'
    'eq:equivalence query'
    'nq:normalize query'
    'iq:interactive query console'
    'completion:generate shell completion script'
  )

  local -a common
  common=(
  '(-c --color)'{-c,--color}'[enable colored text]'
  '(-f --filter)'{-f,--filter}'[filters to apply]:filters'
  '(-o --output)'{-o,--output}'[output format]:format:(text json yaml)'
  '(-S --select)'{-S,--select}'[subtree to compare]:path'
  '(-s --sort)'{-s,--sort}'[sort columns]:columns'
  '(-t --titles)'{-t,--titles}'[show titles]'
  '--tldr[show tldr page]'
  )

  if (( CURRENT == 2 )); then
    _describe -t commands 'jcmp commands' cmds
    return
  fi

  local curcontext="$curcontext" state line
  case $words[2] in
    dq)
      _arguments -C \
        $common \
        '--ordered[positional line diff]' \
        '--stats[append summary footer]' \
        '1:left input:_files' \
        '2:right input:_files'
      ;;
    cq)
      _arguments -C \
        $common \
        '--count[report shared node count]' \
        '1:left input:_files' \
        '2:right input:_files'
      ;;
    eq)
      _arguments -C \
        $common \
        '(-q --quiet)'{-q,--quiet}'[exit code only]' \
        '--threshold[similarity threshold]:threshold' \
        '1:left input:_files' \
        '2:right input:_files'
      ;;
    nq)
      _arguments -C \
        $common \
        '--compact[one-line canonical form]' \
        '1:input:_files'
      ;;
    iq)
      _arguments -C \
        $common \
        '1:left input:_files' \
        '2:right input:_files'
      ;;
    completion)
      _arguments '1: :((bash zsh))'
      ;;
    *)
      _arguments -C $common '*:file:_files'
      ;;
  esac
}

# If this file is sourced directly (not autoloaded via fpath), ensure compsys
# is initialized and register the completion
if ! typeset -f compdef >/dev/null 2>&1; then
  autoload -Uz compinit && compinit -i
fi
compdef _jcmp jcmp
`

func completionCommandAction(ctx context.Context, cmd *cli.Command) error {
	shell := ""
	if args := cmd.Args().Slice(); len(args) > 0 {
		shell = args[0]
	}
	switch shell {
	case "bash":
		fmt.Fprint(os.Stdout, bashCompletionScript)
	case "zsh":
		fmt.Fprint(os.Stdout, zshCompletionScript)
	default:
		// Try to detect from SHELL or print help
		sh := os.Getenv("SHELL")
		switch {
		case strings.HasSuffix(sh, "zsh"):
			fmt.Fprint(os.Stdout, zshCompletionScript)
		case strings.HasSuffix(sh, "bash"):
			fmt.Fprint(os.Stdout, bashCompletionScript)
		default:
			fmt.Fprintln(os.Stderr, "usage: jcmp completion [bash|zsh]")
			return nil
		}
	}
	return nil
}

func completionCommandBuilder(meta meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "completion",
		Usage:     "generate shell completion script",
		UsageText: "jcmp completion [bash|zsh]",
		Metadata: map[string]any{
			"meta": meta,
		},
		Action: completionCommandAction,
	}
}
