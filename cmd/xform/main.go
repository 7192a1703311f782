// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command xform inspects, composes and inverts the affine transforms
// of TOML and YAML transform documents.
package main

import (
	"context"
	"os"
	"os/signal"

	"cogentcore.org/affine/base/errors"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if errors.Log(err) != nil {
		os.Exit(1)
	}
}
