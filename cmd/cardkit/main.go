// cardkit is the character card maintenance CLI: it synthesizes
// asset-generation configs, backfills subsystem defaults, validates a
// card corpus, and audits feature coverage.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
