// Command plantas is the CLI collaborator described in this module's
// specification §6: it reads an undirected graph in a small subset of
// GraphViz DOT (or generates a random maximal planar one with -g) and
// dispatches to one of four subcommands: print, embed, vertex-cover
// and independent-set. Styled after the teacher's flag-driven
// lnz-BalancedGo/balanced.go, wired onto cobra the way
// jinterlante1206-AleutianLocal's cmd/aleutian does.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
