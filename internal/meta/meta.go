// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package meta

import (
	"context"

	"github.com/jcmp/jcmp/internal/config"
)

// InputSpec holds the resolved input document locations for a comparison.
// Either side may be "-" to indicate stdin.
type InputSpec struct {
	Left  string
	Right string
}

// Meta contains runtime metadata shared by commands. It carries CLI arguments,
// loaded configuration, context, the resolved input specification, and the
// starting working directory.
type Meta struct {
	Args    []string
	Config  config.Type
	Context context.Context
	InputSpec
	StartingDir string
}
