// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"
	"os"
	"os/exec"

	"github.com/goccy/go-json"
	"github.com/urfave/cli/v3"

	"github.com/jcmp/jcmp/internal/cacheutil"
	"github.com/jcmp/jcmp/internal/log"
	"github.com/jcmp/jcmp/internal/meta"
)

// GetMeta returns the meta.Meta stored in the command's Metadata. If missing
// or of an unexpected type, it returns the zero value.
func GetMeta(cmd *cli.Command) meta.Meta {
	if cmd == nil || cmd.Metadata == nil {
		return meta.Meta{}
	}
	if m, ok := cmd.Metadata["meta"].(meta.Meta); ok {
		return m
	}
	return meta.Meta{}
}

// ShortCircuitTLDR checks the --tldr flag and, if present and available,
// runs `tldr jcmp <subcmd>` and returns true so the caller can exit early.
func ShortCircuitTLDR(ctx context.Context, cmd *cli.Command, subcmd string) bool {
	if cmd.Bool("tldr") {
		if _, err := exec.LookPath("tldr"); err == nil {
			c := exec.CommandContext(ctx, "tldr", "jcmp", subcmd)
			c.Stdout = os.Stdout
			c.Stderr = os.Stderr
			_ = c.Run()
		}
		return true
	}
	return false
}

// resultCacheOpts builds the option component of a comparison cache key. Any
// flag that changes the computed result (not just its presentation) must be
// folded in here.
func resultCacheOpts(cmd *cli.Command, name string) string {
	return fmt.Sprintf("%s|select=%s|maxlen=%d",
		name, cmd.String("select"), cmd.Int("max-value-len"))
}

// readCachedResult unmarshals a previously cached comparison result into out.
func readCachedResult(name, key string, out any) bool {
	entry, ok := cacheutil.Read([]string{name}, key)
	if !ok {
		return false
	}
	if err := json.Unmarshal(entry.Data, out); err != nil {
		log.Debugf("cache entry unusable, recomputing: %v", err)
		return false
	}
	return true
}

// writeCachedResult marshals and stores a comparison result. Failures only
// cost a recompute next time, so they are logged and swallowed.
func writeCachedResult(name, key string, in any) {
	data, err := json.Marshal(in)
	if err != nil {
		log.Debugf("cache marshal failed: %v", err)
		return
	}
	if err := cacheutil.Write([]string{name}, key, data); err != nil {
		log.Debugf("cache write failed: %v", err)
	}
}
