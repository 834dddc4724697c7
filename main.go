// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/jcmp/jcmp/internal/cacheutil"
	"github.com/jcmp/jcmp/internal/command"
	"github.com/jcmp/jcmp/internal/config"
	"github.com/jcmp/jcmp/internal/log"
	"github.com/jcmp/jcmp/internal/version"
)

var ctx = context.Background()

func main() {
	os.Exit(realMain())
}

// handleVersion checks for --version/-v and returns whether it was handled.
func handleVersion(args []string) bool {
	for _, a := range args {
		if a == "--version" || a == "-v" {
			fmt.Println(version.Version)
			return true
		}
	}
	return false
}

// handleNakedCommand appends --help if no command is provided.
func handleNakedCommand(args []string) []string {
	if len(args) <= 1 {
		return append(args, "--help")
	}
	return args
}

// processCommandArgs handles command-specific argument processing.
func processCommandArgs(args []string) []string {
	switch {
	case len(args) > 1 && args[1] == "completion":
		// Short-circuit completion: pass args directly.
		return args
	default:
		// Expand any @set before normalizing flags, so set entries are
		// overridable on the command line.
		args = processSetOnly(args)
		log.Debugf("args after set processing: args=%v", args)

		args = deduplicateFlags(args)
		log.Debugf("args after flag dedupe: args=%v", args)

		return args
	}
}

// deduplicateFlags collapses repeated flags so the last occurrence wins,
// letting explicit command-line flags override expanded @set defaults.
// Positional arguments keep their relative order.
func deduplicateFlags(args []string) []string {
	type unit struct {
		name   string // flag name without dashes; "" for positionals
		tokens []string
	}

	var units []unit
	for i := 0; i < len(args); i++ {
		tok := args[i]

		// "-" is a stdin positional, not a flag.
		if !strings.HasPrefix(tok, "-") || tok == "-" {
			units = append(units, unit{tokens: []string{tok}})
			continue
		}

		name := strings.TrimLeft(tok, "-")
		if eq := strings.IndexByte(name, '='); eq >= 0 {
			units = append(units, unit{name: name[:eq], tokens: []string{tok}})
			continue
		}

		// A flag followed by a non-flag token consumes it as its value;
		// otherwise it is boolean.
		if i+1 < len(args) && (!strings.HasPrefix(args[i+1], "-") || args[i+1] == "-") {
			units = append(units, unit{name: name, tokens: []string{tok, args[i+1]}})
			i++
			continue
		}
		units = append(units, unit{name: name, tokens: []string{tok}})
	}

	// Keep only the last occurrence of each named flag.
	last := make(map[string]int, len(units))
	for i, u := range units {
		if u.name != "" {
			last[u.name] = i
		}
	}

	result := make([]string, 0, len(args))
	for i, u := range units {
		if u.name != "" && last[u.name] != i {
			continue
		}
		result = append(result, u.tokens...)
	}
	return result
}

// initAndRunApp initializes the app and runs it, returning the exit code.
func initAndRunApp(args []string) int {
	// Pre-create cache directory when caching is enabled, and age out stale
	// comparison results.
	if _, ok, err := cacheutil.EnsureBaseDir(); err != nil && ok {
		fmt.Fprintln(os.Stderr, err)
		log.Debugf("cache ensure err: err=%v", err)
	}
	if hours, err := config.GetInt("cache.purge_hours", 168); err == nil {
		if err := cacheutil.Purge(hours); err != nil {
			log.Debugf("cache purge err: err=%v", err)
		}
	}

	app, err := command.InitApp(ctx, args)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		log.Debugf("app init err: err=%v", err)
		return 2
	}

	if err := app.Run(ctx, args); err != nil {
		// eq signals non-equivalence through the exit code alone.
		if errors.Is(err, command.ErrNotEquivalent) {
			return 1
		}
		fmt.Fprintln(os.Stderr, err)
		log.Debugf("app run err: err=%v", err)
		return 2
	}

	return 0
}

func realMain() int {
	log.InitLogger()

	args := os.Args
	log.Debugf("args captured: args=%v", args)

	if handleVersion(args) {
		return 0
	}

	args = handleNakedCommand(args)

	// If --help appears anywhere, skip command processing and let the CLI handle it.
	helpFound := false
	for _, a := range args {
		if a == "--help" || a == "-h" {
			helpFound = true
			break
		}
	}

	if !helpFound {
		args = processCommandArgs(args)
	}

	return initAndRunApp(args)
}

// processSetOnly handles the @set logic for all commands, expanding set arguments at the @set position.
func processSetOnly(args []string) []string {
	// Look for an explicit @set argument starting from index 2.
	idx := 2
	set := "defaults"
	removeIdx := -1
	for i, a := range args[min(len(args), idx):] {
		if strings.HasPrefix(a, "@") {
			set = a[1:]
			removeIdx = idx + i
			break
		}
	}
	if removeIdx != -1 {
		// Remove the @set argument.
		args = append(args[:removeIdx], args[removeIdx+1:]...)
		// Expand the set arguments at the removeIdx position.
		setArgs, _ := config.GetStringSlice(args[1] + "." + set)
		for _, arg := range setArgs {
			parts := strings.Fields(arg)
			args = append(args[:removeIdx], append(parts, args[removeIdx:]...)...)
			removeIdx += len(parts)
		}
	}
	return args
}
