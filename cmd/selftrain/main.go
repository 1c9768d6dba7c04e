// SPDX-License-Identifier: MIT

// Command selftrain runs self-training experiments on synthetic blobs.
//
//	selftrain run --config exp.yaml
//	selftrain sweep --thresholds 0.6,0.8,0.95 --metrics-textfile sweep.prom
//	selftrain compare --labeled 10,20,50
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		stop()
		os.Exit(1)
	}
}
