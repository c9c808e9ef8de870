// Command influence simulates single-seed influence spread on a random
// social network.
//
// Usage:
//
//	influence [--nodes 15] [--edge-p 0.3] [--activation-p 0.3] [--max-steps 100]
//	          [--seed N] [--ranker pagerank|degree] [--damping 0.85]
//	          [--delay 2s] [--dot-dir frames] [--top 5] [--trials 1]
//	          [--config .influence.yaml] [--verbose]
//
// Every flag can also be set through INFLUENCE_* environment variables
// (INFLUENCE_EDGE_PROBABILITY, INFLUENCE_MAX_STEPS, ...) or a YAML file.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		stop()
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
